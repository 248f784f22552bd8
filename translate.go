package momentfmt

import "unicode/utf8"

// Translate converts a .NET style date/time pattern into a moment.js pattern.
//
// A single-character pattern is a standard format code and is first expanded
// through locale. The ":" and "/" placeholders become the locale's separators.
// A nil locale means Invariant(). The result is either complete or empty with
// an error wrapping ErrFormat or ErrUnsupportedSpecifier.
func Translate(pattern string, mode Mode, locale Locale) (string, error) {
	if pattern == "" {
		return "", nil
	}
	if locale == nil {
		locale = Invariant()
	}

	if utf8.RuneCountInString(pattern) == 1 {
		code, _ := utf8.DecodeRuneInString(pattern)
		expanded, err := expandStandard(code, mode, locale)
		if err != nil {
			return "", err
		}
		pattern = expanded
	}

	var out emitter
	if err := scan(pattern, mode, locale, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// TranslatePtr is Translate for optional input; a nil pattern fails with
// ErrArgumentNull before any scanning.
func TranslatePtr(pattern *string, mode Mode, locale Locale) (string, error) {
	if pattern == nil {
		return "", ErrArgumentNull
	}
	return Translate(*pattern, mode, locale)
}
