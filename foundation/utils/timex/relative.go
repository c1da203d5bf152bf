// File: relative.go
// Title: Relative Time Formatting
// Description: Human readable distance between two instants such as
//              "2 hours ago" or "in 3 days".
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-19

package timex

import (
	"fmt"
	"time"
)

type relativeUnit struct {
	name string
	// size in units of the previous step
	factor int64
}

// Months are 30 days and years 12 months.
var relativeUnits = []relativeUnit{
	{"second", 1},
	{"minute", 60},
	{"hour", 60},
	{"day", 24},
	{"month", 30},
	{"year", 12},
}

// pluralSuffix returns "s" if n != 1, empty string otherwise
func pluralSuffix(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FormatRelativeTime describes t relative to now. The signed difference in
// whole seconds is floored and then floor-divided by each unit factor while
// its magnitude still reaches the next unit. Past instants read
// "{n} {unit}(s) ago", future ones "in {n} {unit}(s)"; an equal instant is
// "0 seconds ago".
func FormatRelativeTime(t, now time.Time) string {
	// time.Duration saturates near 292 years, so subtract epoch seconds
	diff := now.Unix() - t.Unix()
	if now.Nanosecond() < t.Nanosecond() {
		diff--
	}
	future := diff < 0

	n := diff
	unit := relativeUnits[0].name
	for _, u := range relativeUnits[1:] {
		if n > -u.factor && n < u.factor {
			break
		}
		n = floorDiv(n, u.factor)
		unit = u.name
	}
	if n < 0 {
		n = -n
	}

	if future {
		return fmt.Sprintf("in %d %s%s", n, unit, pluralSuffix(n))
	}
	return fmt.Sprintf("%d %s%s ago", n, unit, pluralSuffix(n))
}

// RelativeFormatter formats against an injected clock
type RelativeFormatter struct {
	Clock Clock
}

// NewRelativeFormatter returns a formatter on clock; nil means SystemClock
func NewRelativeFormatter(clock Clock) RelativeFormatter {
	if clock == nil {
		clock = SystemClock{}
	}
	return RelativeFormatter{Clock: clock}
}

// Format describes t relative to the clock's current instant
func (f RelativeFormatter) Format(t time.Time) string {
	clock := f.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return FormatRelativeTime(t, clock.Now())
}
