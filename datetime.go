// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"errors"
	"time"
)

// DateTimeKind identifies which components of a parsed DateTime were
// actually present in the raw value.
type DateTimeKind int

const (
	// FullDateTime means both a date and a time of day were present.
	FullDateTime DateTimeKind = iota

	// DateOnly means only a date was present.
	DateOnly

	// TimeOnly means only a time of day was present.
	TimeOnly
)

// String implements the fmt.Stringer interface.
func (k DateTimeKind) String() string {
	switch k {
	case FullDateTime:
		return "datetime"
	case DateOnly:
		return "date"
	case TimeOnly:
		return "time"
	default:
		return "unknown"
	}
}

// DateTime is the result of parsing a raw timestamp string. Kind reports
// whether the raw value carried a bare date, a bare time of day or both.
// Time always holds the full parsed value, components absent from the
// raw value are parser fill values and should be ignored per Kind.
type DateTime struct {
	Kind DateTimeKind
	Time time.Time
}

// String implements the fmt.Stringer interface. Only the components
// reported by Kind are rendered.
func (dt DateTime) String() string {
	switch dt.Kind {
	case DateOnly:
		return dt.Time.Format(dateLayout)
	case TimeOnly:
		return dt.Time.Format(fracTimeLayout)
	default:
		return dt.Time.Format(dateLayout + " " + fracTimeLayout)
	}
}

const (
	fracTimeLayout = "15:04:05.999999"
	timeLayout     = "15:04:05"
	dateLayout     = "2006-01-02"
)

var (
	timeLayouts = []string{fracTimeLayout, timeLayout}
	dateLayouts = []string{dateLayout}
)

// candidateLayouts returns the fixed trial order: time only layouts,
// date only layouts, then every date+time combination joined by a single
// space, iterated date major and time minor.
func candidateLayouts() []string {
	layouts := make([]string, 0, len(timeLayouts)+len(dateLayouts)*(1+len(timeLayouts)))
	layouts = append(layouts, timeLayouts...)
	layouts = append(layouts, dateLayouts...)
	for _, d := range dateLayouts {
		for _, t := range timeLayouts {
			layouts = append(layouts, d+" "+t)
		}
	}
	return layouts
}

type dateTimeOptions struct {
	layout string
}

// DateTimeOption configures how a raw timestamp string is parsed.
type DateTimeOption func(*dateTimeOptions)

// DateTimeLayout sets an explicit layout, disabling the default
// candidate layout trials entirely.
func DateTimeLayout(layout string) DateTimeOption {
	return func(dto *dateTimeOptions) {
		dto.layout = layout
	}
}

// DateTimeFromString parses the raw string read from r against an
// ordered list of candidate layouts, first match wins. The parsed result
// is classified as a bare date, bare time or full timestamp by comparing
// its components against the fill values time.Parse substitutes for
// components missing from the layout.
func DateTimeFromString(r Reader[string], opts ...DateTimeOption) Reader[DateTime] {
	var dto dateTimeOptions
	for _, opt := range opts {
		opt(&dto)
	}

	layouts := candidateLayouts()
	if dto.layout != "" {
		layouts = []string{dto.layout}
	}

	return Map(r, func(_ context.Context, s string) (DateTime, error) {
		return resolveDateTime(s, layouts)
	})
}

var errNoLayoutMatched = errors.New("no datetime layout matched")

func resolveDateTime(raw string, layouts []string) (DateTime, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return classifyDateTime(t), nil
	}
	return DateTime{}, ConversionError{Raw: raw, Cause: errNoLayoutMatched}
}

// classifyDateTime decides which components were present in the raw
// value. time.Parse can not report that itself, so the parsed components
// are compared against its documented fill values: layouts without a
// date yield January 1 of year 0, layouts without a time of day yield
// midnight.
func classifyDateTime(t time.Time) DateTime {
	year, month, day := t.Date()
	if year == 0 && month == time.January && day == 1 {
		return DateTime{Kind: TimeOnly, Time: t}
	}

	hour, min, sec := t.Clock()
	if hour == 0 && min == 0 && sec == 0 && t.Nanosecond() == 0 {
		return DateTime{Kind: DateOnly, Time: t}
	}
	return DateTime{Kind: FullDateTime, Time: t}
}
