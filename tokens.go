package momentfmt

// tokenEntry is one cell of a run table. Approximate entries only apply in
// Tolerant mode.
type tokenEntry struct {
	token       string
	approximate bool
}

// runTable maps a run length (index+1) to its moment token. The table length
// is the maximum meaningful run length of the specifier.
type runTable struct {
	char    rune
	entries []tokenEntry
}

func exact(token string) tokenEntry  { return tokenEntry{token: token} }
func approx(token string) tokenEntry { return tokenEntry{token: token, approximate: true} }

// unsupported marks lengths with no equivalent in any mode.
var unsupported = tokenEntry{}

var fractionEntries = []tokenEntry{
	exact("S"), exact("SS"), exact("SSS"), exact("SSSS"),
	exact("SSSSS"), exact("SSSSSS"), exact("SSSSSSS"),
}

var runTables = [...]runTable{
	stateDay:           {char: 'd', entries: []tokenEntry{exact("D"), exact("DD"), exact("ddd"), exact("dddd")}},
	stateFractionLower: {char: 'f', entries: fractionEntries},
	stateFractionUpper: {char: 'F', entries: fractionEntries},
	stateEra:           {char: 'g', entries: []tokenEntry{unsupported}},
	stateHour12:        {char: 'h', entries: []tokenEntry{exact("h"), exact("hh")}},
	stateHour24:        {char: 'H', entries: []tokenEntry{exact("H"), exact("HH")}},
	stateMinute:        {char: 'm', entries: []tokenEntry{exact("m"), exact("mm")}},
	stateMonth:         {char: 'M', entries: []tokenEntry{exact("M"), exact("MM"), exact("MMM"), exact("MMMM")}},
	stateSecond:        {char: 's', entries: []tokenEntry{exact("s"), exact("ss")}},
	// moment has no one-letter designator; "A" is the closest.
	stateMeridiem: {char: 't', entries: []tokenEntry{approx("A"), exact("A")}},
	stateYear:     {char: 'y', entries: []tokenEntry{approx("YY"), exact("YY"), approx("YYYY"), exact("YYYY"), approx("Y")}},
	stateOffset:   {char: 'z', entries: []tokenEntry{approx("ZZ"), approx("ZZ"), exact("Z")}},
}

// zoneMarker is the single-character time zone information specifier. It is
// translated on sight and never opens a run.
const zoneMarker = 'K'

var zoneMarkerEntry = approx("Z")

// runStateFor returns the run state opened by r.
func runStateFor(r rune) (state, bool) {
	switch r {
	case 'd':
		return stateDay, true
	case 'f':
		return stateFractionLower, true
	case 'F':
		return stateFractionUpper, true
	case 'g':
		return stateEra, true
	case 'h':
		return stateHour12, true
	case 'H':
		return stateHour24, true
	case 'm':
		return stateMinute, true
	case 'M':
		return stateMonth, true
	case 's':
		return stateSecond, true
	case 't':
		return stateMeridiem, true
	case 'y':
		return stateYear, true
	case 'z':
		return stateOffset, true
	default:
		return stateScanning, false
	}
}

// maxRun is the length at which a run of s saturates.
func maxRun(s state) int {
	if !s.isRun() {
		return 0
	}
	return len(runTables[s].entries)
}

// specifierChar returns the source character of a run state.
func specifierChar(s state) rune {
	if !s.isRun() {
		return 0
	}
	return runTables[s].char
}

// lookupToken maps (state, length, mode) to a moment token. Lengths past the
// maximum resolve to the maximum entry. ok is false when the combination has
// no equivalent in mode.
func lookupToken(s state, length int, mode Mode) (token string, ok bool) {
	if !s.isRun() || length < 1 {
		return "", false
	}
	entries := runTables[s].entries
	if length > len(entries) {
		length = len(entries)
	}
	return resolveEntry(entries[length-1], mode)
}

func lookupZoneMarker(mode Mode) (string, bool) {
	return resolveEntry(zoneMarkerEntry, mode)
}

func resolveEntry(entry tokenEntry, mode Mode) (string, bool) {
	if entry.token == "" {
		return "", false
	}
	if entry.approximate && mode != Tolerant {
		return "", false
	}
	return entry.token, true
}
