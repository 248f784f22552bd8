package momentfmt

import (
	"errors"
	"testing"
)

func stepAll(t *testing.T, s scanner, input string) (scanner, []fragment) {
	t.Helper()

	var out []fragment
	for _, r := range input {
		var (
			frags []fragment
			err   error
		)
		s, frags, err = s.step(r)
		if err != nil {
			t.Fatalf("step(%q): %v", r, err)
		}
		out = append(out, frags...)
	}
	return s, out
}

func TestScannerOpensAndExtendsRun(t *testing.T) {
	s, frags := stepAll(t, newScanner(Tolerant, Invariant()), "ddddddd")

	if s.state != stateDay {
		t.Fatalf("state = %s, want %s", s.state, stateDay)
	}
	if s.run != 4 {
		t.Fatalf("run = %d, want saturated 4", s.run)
	}
	if s.offset != 7 {
		t.Fatalf("offset = %d, want 7", s.offset)
	}
	if len(frags) != 0 {
		t.Fatalf("open run should not emit, got %v", frags)
	}
}

func TestScannerStepDoesNotMutateReceiver(t *testing.T) {
	start := newScanner(Tolerant, Invariant())

	next, _, err := start.step('M')
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if start.state != stateScanning || start.offset != 0 {
		t.Fatalf("receiver changed: %+v", start)
	}
	if next.state != stateMonth || next.run != 1 {
		t.Fatalf("next = %+v", next)
	}
}

func TestScannerFlushesOnStateChange(t *testing.T) {
	s, frags := stepAll(t, newScanner(Tolerant, Invariant()), "MMx")

	if s.state != stateScanning {
		t.Fatalf("state = %s, want scanning", s.state)
	}
	want := []fragment{tokenFragment("MM"), literalFragment("x")}
	if len(frags) != len(want) {
		t.Fatalf("fragments = %v, want %v", frags, want)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Fatalf("fragment[%d] = %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestScannerSwitchesRuns(t *testing.T) {
	s, frags := stepAll(t, newScanner(Tolerant, Invariant()), "HHmm")

	if s.state != stateMinute || s.run != 2 {
		t.Fatalf("state = %s run = %d", s.state, s.run)
	}
	if len(frags) != 1 || frags[0] != tokenFragment("HH") {
		t.Fatalf("fragments = %v", frags)
	}
}

func TestScannerLiteralStates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []fragment
	}{
		{name: "single quote", input: "'ab'", want: []fragment{literalFragment("ab")}},
		{name: "double quote", input: `"a'b"`, want: []fragment{literalFragment("a'b")}},
		{name: "quote keeps specifiers", input: "'dd'", want: []fragment{literalFragment("dd")}},
		{name: "escape", input: `\d`, want: []fragment{literalFragment("d")}},
		{name: "force custom", input: "%", want: nil},
		{name: "time separator", input: ":", want: []fragment{literalFragment(":")}},
		{name: "date separator", input: "/", want: []fragment{literalFragment("/")}},
		{name: "other literal", input: "-", want: []fragment{literalFragment("-")}},
		{name: "zone marker", input: "K", want: []fragment{tokenFragment("Z")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, frags := stepAll(t, newScanner(Tolerant, Invariant()), tt.input)
			if s.state != stateScanning {
				t.Fatalf("state = %s, want scanning", s.state)
			}
			if len(frags) != len(tt.want) {
				t.Fatalf("fragments = %v, want %v", frags, tt.want)
			}
			for i := range tt.want {
				if frags[i] != tt.want[i] {
					t.Fatalf("fragment[%d] = %+v, want %+v", i, frags[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerUsesLocaleSeparators(t *testing.T) {
	locale := Culture{Separators: Separators{Date: "-", Time: "."}}

	_, frags := stepAll(t, newScanner(Tolerant, locale), "/:")
	if len(frags) != 2 || frags[0].text != "-" || frags[1].text != "." {
		t.Fatalf("fragments = %v", frags)
	}
}

func TestScannerFinish(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []fragment
		wantErr error
	}{
		{name: "idle", input: "x"},
		{name: "open run", input: "yyyy", want: []fragment{tokenFragment("YYYY")}},
		{name: "open single quote", input: "'ab", wantErr: ErrFormat},
		{name: "open double quote", input: `"ab`, wantErr: ErrFormat},
		{name: "open escape", input: `\`, wantErr: ErrFormat},
		{name: "unsupported run", input: "g", wantErr: ErrUnsupportedSpecifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := stepAll(t, newScanner(Strict, Invariant()), tt.input)
			frags, err := s.finish()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("finish error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("finish: %v", err)
			}
			if len(frags) != len(tt.want) {
				t.Fatalf("fragments = %v, want %v", frags, tt.want)
			}
			for i := range tt.want {
				if frags[i] != tt.want[i] {
					t.Fatalf("fragment[%d] = %+v, want %+v", i, frags[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerErrorOffset(t *testing.T) {
	s, _ := stepAll(t, newScanner(Strict, Invariant()), "HH:mm ")

	_, _, err := s.step('K')
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if convErr.Offset != 6 || convErr.Specifier != 'K' || convErr.Mode != Strict {
		t.Fatalf("unexpected error details: %+v", convErr)
	}
}

func TestScanWritesNothingOnError(t *testing.T) {
	var out emitter
	if err := scan("yyyy-MM-dd 'open", Tolerant, Invariant(), &out); !errors.Is(err, ErrFormat) {
		t.Fatalf("scan error = %v, want ErrFormat", err)
	}
	if out.String() != "" {
		t.Fatalf("partial output %q", out.String())
	}
}
