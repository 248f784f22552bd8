package momentfmt

import "fmt"

// sortableDateTime is the culture independent expansion of "s".
const sortableDateTime = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"

// standardCodes maps a standard format code to the named patterns it joins
// with a single space.
var standardCodes = map[rune][]PatternName{
	'd': {ShortDatePattern},
	'D': {LongDatePattern},
	'f': {LongDatePattern, ShortTimePattern},
	'F': {FullDateTimePattern},
	'g': {ShortDatePattern, ShortTimePattern},
	'G': {ShortDatePattern, LongTimePattern},
	'm': {MonthDayPattern},
	'M': {MonthDayPattern},
	't': {ShortTimePattern},
	'T': {LongTimePattern},
	'Y': {YearMonthPattern},
}

// customCodes are single characters read as a one-letter custom pattern
// rather than a standard code.
var customCodes = map[rune]struct{}{
	'y': {},
}

// inexpressibleCodes are round-trip, RFC1123 and universal time formats.
// They depend on calendar or UTC conversion moment patterns cannot express.
var inexpressibleCodes = map[rune]struct{}{
	'o': {}, 'O': {},
	'r': {}, 'R': {},
	'u': {}, 'U': {},
}

// expandStandard resolves a one-character standard format code against locale.
func expandStandard(code rune, mode Mode, locale Locale) (string, error) {
	if _, ok := customCodes[code]; ok {
		return string(code), nil
	}
	if _, ok := inexpressibleCodes[code]; ok {
		return "", &ConversionError{
			Err:       ErrUnsupportedSpecifier,
			Pattern:   string(code),
			Specifier: code,
			Length:    1,
			Mode:      mode,
			Reason:    "standard format",
		}
	}

	if code == 's' {
		return sortableDateTime, nil
	}

	names, ok := standardCodes[code]
	if !ok {
		return "", &ConversionError{
			Err:     ErrFormat,
			Pattern: string(code),
			Reason:  fmt.Sprintf("unknown standard format code %q", code),
		}
	}

	expanded := ""
	for i, name := range names {
		part := locale.StandardPattern(name)
		if part == "" {
			return "", &ConversionError{
				Err:     ErrFormat,
				Pattern: string(code),
				Reason:  fmt.Sprintf("culture %q defines no %s pattern", locale.Name(), name),
			}
		}
		if i > 0 {
			expanded += " "
		}
		expanded += part
	}
	return expanded, nil
}
