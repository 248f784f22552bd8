package main

import (
	"strings"
)

// ldmlField is a run of one LDML pattern letter, or a literal chunk when
// letter is zero.
type ldmlField struct {
	letter  rune
	count   int
	literal string
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// splitLDML breaks an LDML date pattern into letter runs and literal text.
// Quoted sections and doubled apostrophes are unescaped into literals.
func splitLDML(pattern string) []ldmlField {
	var (
		fields  []ldmlField
		literal strings.Builder
		quoted  bool
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		fields = append(fields, ldmlField{literal: literal.String()})
		literal.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i++
				continue
			}
			quoted = !quoted
			continue
		}
		if quoted || !isPatternLetter(r) {
			literal.WriteRune(r)
			continue
		}

		flush()
		count := 1
		for i+1 < len(runes) && runes[i+1] == r {
			count++
			i++
		}
		fields = append(fields, ldmlField{letter: r, count: count})
	}
	flush()
	return fields
}

// dotNetField maps one LDML letter run onto the custom .NET specifier that
// renders the same value. ok is false for fields with no counterpart.
func dotNetField(letter rune, count int) (string, bool) {
	switch letter {
	case 'G':
		return "g", true
	case 'y':
		if count == 2 {
			return "yy", true
		}
		return "yyyy", true
	case 'M', 'L':
		if count > 4 {
			count = 3
		}
		return strings.Repeat("M", count), true
	case 'd':
		return strings.Repeat("d", min(count, 2)), true
	case 'E':
		if count == 4 {
			return "dddd", true
		}
		return "ddd", true
	case 'c', 'e':
		switch {
		case count < 3:
			return "", false
		case count == 4:
			return "dddd", true
		default:
			return "ddd", true
		}
	case 'a', 'b', 'B':
		return "tt", true
	case 'h', 'K':
		return strings.Repeat("h", min(count, 2)), true
	case 'H', 'k':
		return strings.Repeat("H", min(count, 2)), true
	case 'm', 's':
		return strings.Repeat(string(letter), min(count, 2)), true
	case 'S':
		return strings.Repeat("f", min(count, 7)), true
	case 'z', 'Z', 'O', 'v', 'V', 'X', 'x':
		return "zzz", true
	}
	return "", false
}

// needsQuote reports whether r would be read as a specifier or escape by
// the .NET pattern grammar.
func needsQuote(r rune) bool {
	return isPatternLetter(r) || r == '\\' || r == '%' || r == '"'
}

func writeDotNetLiteral(b *strings.Builder, text string) {
	quoted := false
	for _, r := range text {
		switch {
		case r == '\'':
			if quoted {
				b.WriteRune('\'')
				quoted = false
			}
			b.WriteString(`\'`)
		case needsQuote(r):
			if !quoted {
				b.WriteRune('\'')
				quoted = true
			}
			b.WriteRune(r)
		default:
			if quoted {
				b.WriteRune('\'')
				quoted = false
			}
			b.WriteRune(r)
		}
	}
	if quoted {
		b.WriteRune('\'')
	}
}

// convertLDMLPattern rewrites an LDML date pattern into .NET custom format
// syntax. Letter runs with no .NET equivalent are dropped and returned so
// the caller can report them.
func convertLDMLPattern(pattern string) (string, []string) {
	var (
		b       strings.Builder
		dropped []string
	)
	for _, field := range splitLDML(pattern) {
		if field.letter == 0 {
			writeDotNetLiteral(&b, field.literal)
			continue
		}
		mapped, ok := dotNetField(field.letter, field.count)
		if !ok {
			dropped = append(dropped, strings.Repeat(string(field.letter), field.count))
			continue
		}
		b.WriteString(mapped)
	}
	return b.String(), dropped
}

var (
	dateLetters = "yMLd"
	timeLetters = "hHKkms"
)

// deriveSeparator returns the first non-blank literal found between two
// fields drawn from letters, or fallback when the pattern has none.
func deriveSeparator(pattern, letters, fallback string) string {
	fields := splitLDML(pattern)
	for i := 1; i+1 < len(fields); i++ {
		field := fields[i]
		if field.letter != 0 {
			continue
		}
		prev, next := fields[i-1], fields[i+1]
		if !strings.ContainsRune(letters, prev.letter) || !strings.ContainsRune(letters, next.letter) {
			continue
		}
		text := strings.TrimSpace(field.literal)
		if text == "" {
			continue
		}
		for _, r := range text {
			return string(r)
		}
	}
	return fallback
}
