// File: format.go
// Title: Time Formatting
// Description: ISO 8601, HTTP-style UTC and locale-dependent renderings of an
//              instant. Locale layouts are chosen with the x/text language
//              matcher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Business format constants and Format helper
// - 2026-10-18 v0.2.0: ISO/UTC/locale renderings, cached timezone lookup

package timex

import (
	"sync"
	"time"

	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
)

// Common time layouts
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Millis   = "2006-01-02T15:04:05.000Z"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// UTCFormat matches the HTTP date format
	UTCFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

	// Common business formats
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"

	// Display formats
	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// DefaultLocale is used when a locale tag cannot be matched
const DefaultLocale = "en-US"

type localeLayout struct {
	tag    language.Tag
	layout string
}

// localeLayouts; the first entry is the fallback
var localeLayouts = []localeLayout{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// FormatISO renders t in UTC as "2006-01-02T15:04:05.000Z"
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}

// FormatUTC renders t in UTC as "Tue, 14 Nov 2023 22:13:20 GMT"
func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCFormat)
}

// LocaleLayout returns the layout for the closest supported locale
func LocaleLayout(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return localeLayouts[0].layout
	}
	_, index, confidence := localeMatcher.Match(parsed)
	if confidence == language.No {
		return localeLayouts[0].layout
	}
	return localeLayouts[index].layout
}

// FormatLocale renders t for a BCP 47 locale tag in loc. Unknown tags use
// DefaultLocale and a nil location means UTC.
//
// Example: FormatLocale(t, "de-DE", nil) -> "14.11.2023, 22:13:20"
func FormatLocale(t time.Time, tag string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(LocaleLayout(tag))
}

var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// LoadLocation returns a cached timezone location or loads and caches it.
// "" and "UTC" return time.UTC, "Local" returns time.Local.
func LoadLocation(tz string) (*time.Location, error) {
	switch tz {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}

	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, mdwerrors.ParseError(mdwerrors.ModuleTimex, "LoadLocation", tz, err)
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}
