// Package timex converts between Unix timestamps and calendar representations.
//
// Package: timex
// Title: Timestamp Conversion Utilities
// Description: Epoch seconds/milliseconds to time.Time and back, ISO 8601,
//              UTC and locale renderings, relative time and lenient date
//              string parsing. "Now" is always read from an injectable Clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-18 v0.2.0: Reduced to timestamp conversion, relative time and parsing
//
// # Timestamps
//
// TimestampToDate accepts seconds or milliseconds. Values below
// MillisecondThreshold (10^10) are seconds, all others milliseconds:
//
//	timex.TimestampToDate(1700000000)    // 2023-11-14 22:13:20 +0000 UTC
//	timex.TimestampToDate(1700000000000) // same instant
//
// The threshold is ambiguous for seconds after the year 2286 and for
// milliseconds within the first four months of 1970.
//
// DateToTimestamp returns whole seconds rounded down; CurrentTimestamp does
// the same for a Clock.
//
// # Formatting
//
//	timex.FormatISO(t)                 // "2023-11-14T22:13:20.000Z"
//	timex.FormatUTC(t)                 // "Tue, 14 Nov 2023 22:13:20 GMT"
//	timex.FormatLocale(t, "de", nil)   // "14.11.2023, 22:13:20"
//	timex.FormatRelativeTime(t, now)   // "2 hours ago", "in 3 days"
//
// Locale tags are matched with golang.org/x/text/language against en-US,
// en-GB, de, fr and ja; anything else renders as en-US.
//
// # Parsing
//
// ParseDate tries RFC 3339, ISO 8601, RFC 1123, date-only and several
// display layouts in order and fails with PARSE_ERROR when none matches.
// Layouts without zone information are read as UTC.
package timex
