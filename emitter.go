package momentfmt

import "strings"

type fragmentKind uint8

const (
	fragmentToken fragmentKind = iota + 1
	fragmentLiteral
)

// fragment is one unit of output: a moment token, or literal text that must
// be escaped.
type fragment struct {
	kind fragmentKind
	text string
}

func tokenFragment(token string) fragment {
	return fragment{kind: fragmentToken, text: token}
}

func literalFragment(text string) fragment {
	return fragment{kind: fragmentLiteral, text: text}
}

// emitter accumulates fragments into the target pattern.
type emitter struct {
	b strings.Builder
}

func (e *emitter) write(frags ...fragment) {
	for _, frag := range frags {
		switch frag.kind {
		case fragmentToken:
			e.b.WriteString(frag.text)
		case fragmentLiteral:
			writeEscaped(&e.b, frag.text)
		}
	}
}

func (e *emitter) String() string {
	return e.b.String()
}

// writeEscaped wraps every rune in moment's bracket escape. "[" cannot be
// nested inside brackets, so it is backslash escaped instead.
func writeEscaped(b *strings.Builder, text string) {
	for _, r := range text {
		if r == '[' {
			b.WriteString(`\[`)
			continue
		}
		b.WriteByte('[')
		b.WriteRune(r)
		b.WriteByte(']')
	}
}

// EscapeLiteral returns text escaped so moment renders it verbatim.
func EscapeLiteral(text string) string {
	var b strings.Builder
	writeEscaped(&b, text)
	return b.String()
}
