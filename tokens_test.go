package momentfmt

import "testing"

func TestLookupToken(t *testing.T) {
	tests := []struct {
		name   string
		state  state
		length int
		mode   Mode
		want   string
		ok     bool
	}{
		{name: "day numeric", state: stateDay, length: 1, mode: Strict, want: "D", ok: true},
		{name: "day full name", state: stateDay, length: 4, mode: Strict, want: "dddd", ok: true},
		{name: "day saturates", state: stateDay, length: 9, mode: Strict, want: "dddd", ok: true},
		{name: "fraction upper", state: stateFractionUpper, length: 3, mode: Strict, want: "SSS", ok: true},
		{name: "fraction saturates", state: stateFractionLower, length: 12, mode: Strict, want: "SSSSSSS", ok: true},
		{name: "era tolerant", state: stateEra, length: 1, mode: Tolerant, ok: false},
		{name: "era strict", state: stateEra, length: 2, mode: Strict, ok: false},
		{name: "hour12 padded", state: stateHour12, length: 2, mode: Strict, want: "hh", ok: true},
		{name: "hour24 saturates", state: stateHour24, length: 3, mode: Strict, want: "HH", ok: true},
		{name: "minute", state: stateMinute, length: 1, mode: Strict, want: "m", ok: true},
		{name: "month abbreviated", state: stateMonth, length: 3, mode: Strict, want: "MMM", ok: true},
		{name: "second padded", state: stateSecond, length: 2, mode: Strict, want: "ss", ok: true},
		{name: "meridiem one tolerant", state: stateMeridiem, length: 1, mode: Tolerant, want: "A", ok: true},
		{name: "meridiem one strict", state: stateMeridiem, length: 1, mode: Strict, ok: false},
		{name: "meridiem two strict", state: stateMeridiem, length: 2, mode: Strict, want: "A", ok: true},
		{name: "year one tolerant", state: stateYear, length: 1, mode: Tolerant, want: "YY", ok: true},
		{name: "year one strict", state: stateYear, length: 1, mode: Strict, ok: false},
		{name: "year two strict", state: stateYear, length: 2, mode: Strict, want: "YY", ok: true},
		{name: "year three tolerant", state: stateYear, length: 3, mode: Tolerant, want: "YYYY", ok: true},
		{name: "year three strict", state: stateYear, length: 3, mode: Strict, ok: false},
		{name: "year four strict", state: stateYear, length: 4, mode: Strict, want: "YYYY", ok: true},
		{name: "year five tolerant", state: stateYear, length: 5, mode: Tolerant, want: "Y", ok: true},
		{name: "year seven tolerant", state: stateYear, length: 7, mode: Tolerant, want: "Y", ok: true},
		{name: "year seven strict", state: stateYear, length: 7, mode: Strict, ok: false},
		{name: "offset two tolerant", state: stateOffset, length: 2, mode: Tolerant, want: "ZZ", ok: true},
		{name: "offset two strict", state: stateOffset, length: 2, mode: Strict, ok: false},
		{name: "offset three strict", state: stateOffset, length: 3, mode: Strict, want: "Z", ok: true},
		{name: "not a run", state: stateSingleQuote, length: 1, mode: Tolerant, ok: false},
		{name: "zero length", state: stateDay, length: 0, mode: Tolerant, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupToken(tt.state, tt.length, tt.mode)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("lookupToken(%s, %d, %s) = %q,%v want %q,%v", tt.state, tt.length, tt.mode, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMaxRun(t *testing.T) {
	expected := map[state]int{
		stateDay:           4,
		stateFractionLower: 7,
		stateFractionUpper: 7,
		stateEra:           1,
		stateHour12:        2,
		stateHour24:        2,
		stateMinute:        2,
		stateMonth:         4,
		stateSecond:        2,
		stateMeridiem:      2,
		stateYear:          5,
		stateOffset:        3,
		stateScanning:      0,
		stateEscape:        0,
	}

	for s, want := range expected {
		if got := maxRun(s); got != want {
			t.Fatalf("maxRun(%s) = %d, want %d", s, got, want)
		}
	}
}

func TestRunStateForRoundTrip(t *testing.T) {
	for s := stateDay; s <= stateOffset; s++ {
		char := specifierChar(s)
		opened, ok := runStateFor(char)
		if !ok || opened != s {
			t.Fatalf("runStateFor(%q) = %s,%v want %s", char, opened, ok, s)
		}
	}

	for _, r := range "xKT%:/'\"\\ " {
		if _, ok := runStateFor(r); ok {
			t.Fatalf("runStateFor(%q) should not open a run", r)
		}
	}
}

func TestLookupZoneMarker(t *testing.T) {
	if got, ok := lookupZoneMarker(Tolerant); !ok || got != "Z" {
		t.Fatalf("lookupZoneMarker(tolerant) = %q,%v", got, ok)
	}
	if _, ok := lookupZoneMarker(Strict); ok {
		t.Fatal("zone marker should be unsupported in strict mode")
	}
}
