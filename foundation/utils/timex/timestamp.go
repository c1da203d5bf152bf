// File: timestamp.go
// Title: Epoch Timestamp Conversion
// Description: Converts between Unix timestamps and time.Time. Values below
//              MillisecondThreshold are read as seconds, all others as
//              milliseconds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Unix/UnixMilli helpers
// - 2026-10-18 v0.2.0: Seconds/milliseconds auto-detection, clock injection

package timex

import "time"

const (
	// MillisecondThreshold separates second from millisecond timestamps.
	// Seconds at or above it (after 2286-11-20) are misread as milliseconds
	// and millisecond values below it (before 1970-04-26) as seconds.
	MillisecondThreshold int64 = 10_000_000_000

	// MaxTimestamp is the largest accepted timestamp, 2^53 - 1
	MaxTimestamp int64 = 1<<53 - 1
)

// TimestampToDate converts seconds or milliseconds since the epoch to UTC
//
// Example: TimestampToDate(1700000000) and TimestampToDate(1700000000000)
// both return 2023-11-14T22:13:20Z.
func TimestampToDate(ts int64) time.Time {
	if ts < MillisecondThreshold {
		return time.Unix(ts, 0).UTC()
	}
	return time.UnixMilli(ts).UTC()
}

// IsMilliseconds reports whether TimestampToDate reads ts as milliseconds
func IsMilliseconds(ts int64) bool {
	return ts >= MillisecondThreshold
}

// DateToTimestamp returns whole seconds since the epoch, rounded down
func DateToTimestamp(t time.Time) int64 {
	return t.Unix()
}

// DateToTimestampMilli returns milliseconds since the epoch
func DateToTimestampMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// CurrentTimestamp returns the clock's current Unix time in seconds. A nil
// clock reads the system clock.
func CurrentTimestamp(clock Clock) int64 {
	if clock == nil {
		clock = SystemClock{}
	}
	return DateToTimestamp(clock.Now())
}
