package momentfmt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArgumentNull indicates that no pattern was supplied at all.
	ErrArgumentNull = errors.New("momentfmt: pattern is null")
	// ErrFormat marks a structurally invalid pattern.
	ErrFormat = errors.New("momentfmt: invalid format pattern")
	// ErrUnsupportedSpecifier marks a specifier with no moment equivalent.
	ErrUnsupportedSpecifier = errors.New("momentfmt: unsupported specifier")
	// ErrUnknownCulture is returned when a culture name cannot be resolved.
	ErrUnknownCulture = errors.New("momentfmt: unknown culture")
)

// ConversionError carries the position and specifier that failed a conversion.
type ConversionError struct {
	Err       error
	Pattern   string
	Offset    int
	Specifier rune
	Length    int
	Mode      Mode
	Reason    string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Specifier != 0 {
		fmt.Fprintf(&b, " %q", strings.Repeat(string(e.Specifier), max(e.Length, 1)))
	}
	fmt.Fprintf(&b, " at offset %d in %q", e.Offset, e.Pattern)
	if errors.Is(e.Err, ErrUnsupportedSpecifier) {
		fmt.Fprintf(&b, " (%s mode)", e.Mode)
	}
	return b.String()
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func unsupportedError(spec rune, length, offset int, mode Mode) *ConversionError {
	return &ConversionError{
		Err:       ErrUnsupportedSpecifier,
		Offset:    offset,
		Specifier: spec,
		Length:    length,
		Mode:      mode,
	}
}

func formatError(reason string, offset int) *ConversionError {
	return &ConversionError{
		Err:    ErrFormat,
		Offset: offset,
		Reason: reason,
	}
}
