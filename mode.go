package momentfmt

import (
	"fmt"
	"strings"
)

// Mode controls what happens to specifiers that only have an approximate
// moment equivalent.
type Mode int

const (
	// Tolerant substitutes the closest moment token.
	Tolerant Mode = iota
	// Strict fails with ErrUnsupportedSpecifier instead.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Tolerant:
		return "tolerant"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "tolerant" or "strict", case insensitive. An empty value
// yields Tolerant.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "tolerant":
		return Tolerant, nil
	case "strict":
		return Strict, nil
	default:
		return Tolerant, fmt.Errorf("momentfmt: unknown mode %q", value)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Tolerant, Strict:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("momentfmt: invalid mode %d", int(m))
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
