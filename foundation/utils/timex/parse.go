// File: parse.go
// Title: Date String Parsing
// Description: Parses date strings in the common layouts, trying each in
//              turn.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial Parse and ParseDate with business layouts
// - 2026-10-18 v0.2.0: Single ParseDate entry point with PARSE_ERROR

package timex

import (
	"strings"
	"time"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// parseLayouts in the order they are tried. Layouts without a zone are read
// as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	ISO8601DateTime,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
	BusinessDateTime,
	LogTimestamp,
	BusinessDate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	ShortDateTime,
	ShortDate,
	"1/2/2006",
	"2006/1/2",
	"2006/01/02 15:04:05",
	"2.1.2006",
	"2.1.2006 15:04:05",
	DisplayDateTime,
	DisplayDate,
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	CompactDateTime,
	CompactDate,
	"2006-1-2",
}

// Layouts returns the layouts ParseDate accepts, in order
func Layouts() []string {
	layouts := make([]string, len(parseLayouts))
	copy(layouts, parseLayouts)
	return layouts
}

// ParseDate parses a date or date-time string. Surrounding whitespace is
// ignored. When no layout matches the error has code PARSE_ERROR.
//
// Example: ParseDate("2023-11-14T22:13:20Z"), ParseDate("14.11.2023")
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, mdwerrors.ParseError(mdwerrors.ModuleTimex, "ParseDate", value, nil)
}
