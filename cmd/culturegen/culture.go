package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	cldr "golang.org/x/text/unicode/cldr"

	momentfmt "github.com/goliatone/go-momentfmt"
)

// calendarFormats holds the Gregorian date and time patterns of a locale,
// keyed by CLDR length ("full", "long", "medium", "short").
type calendarFormats struct {
	date map[string]string
	time map[string]string
}

func newCalendarFormats() calendarFormats {
	return calendarFormats{
		date: make(map[string]string),
		time: make(map[string]string),
	}
}

// collectFormats walks chain from most to least specific and keeps the first
// pattern found for every length.
func collectFormats(chain []*cldr.LDML) calendarFormats {
	formats := newCalendarFormats()
	for _, ldml := range chain {
		cal := gregorian(ldml)
		if cal == nil {
			continue
		}

		if cal.DateFormats != nil {
			for _, length := range cal.DateFormats.DateFormatLength {
				if length == nil {
					continue
				}
				for _, format := range length.DateFormat {
					if format == nil {
						continue
					}
					for _, pattern := range format.Pattern {
						if pattern == nil || pattern.Alt != "" {
							continue
						}
						keepFirst(formats.date, length.Type, pattern.Data())
					}
				}
			}
		}

		if cal.TimeFormats != nil {
			for _, length := range cal.TimeFormats.TimeFormatLength {
				if length == nil {
					continue
				}
				for _, format := range length.TimeFormat {
					if format == nil {
						continue
					}
					for _, pattern := range format.Pattern {
						if pattern == nil || pattern.Alt != "" {
							continue
						}
						keepFirst(formats.time, length.Type, pattern.Data())
					}
				}
			}
		}
	}
	return formats
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal == nil {
			continue
		}
		if common := cal.GetCommon(); common != nil && common.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

func keepFirst(target map[string]string, length, pattern string) {
	pattern = strings.TrimSpace(pattern)
	if length == "" || pattern == "" {
		return
	}
	if _, ok := target[length]; ok {
		return
	}
	target[length] = pattern
}

// cultureFromFormats maps CLDR lengths onto the named .NET patterns.
// LongDate comes from "full" because the .NET long date carries the weekday;
// LongTime comes from "medium" because it carries seconds without a zone.
func cultureFromFormats(name string, formats calendarFormats) (momentfmt.Culture, []string, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return momentfmt.Culture{}, nil, fmt.Errorf("parse culture name: %w", err)
	}

	culture := momentfmt.Culture{
		Code:        tag.String(),
		DisplayName: display.English.Tags().Name(tag),
	}
	if parent := tag.Parent(); parent != language.Und {
		culture.Parent = parent.String()
	}

	var dropped []string
	convert := func(dst *string, source string) {
		if source == "" {
			return
		}
		pattern, lost := convertLDMLPattern(source)
		*dst = pattern
		dropped = append(dropped, lost...)
	}

	p := &culture.Patterns
	convert(&p.ShortDate, formats.date["short"])
	convert(&p.LongDate, formats.date["full"])
	convert(&p.ShortTime, formats.time["short"])
	convert(&p.LongTime, formats.time["medium"])
	if p.LongDate != "" && p.LongTime != "" {
		p.FullDateTime = p.LongDate + " " + p.LongTime
	}

	if short := formats.date["short"]; short != "" {
		culture.Separators.Date = deriveSeparator(short, dateLetters, "/")
	}
	if short := formats.time["short"]; short != "" {
		culture.Separators.Time = deriveSeparator(short, timeLetters, ":")
	}
	return culture, dropped, nil
}
