package momentfmt

// state is the scanner position: idle, inside a specifier run, or inside a
// literal region.
type state uint8

const (
	stateScanning state = iota
	stateDay
	stateFractionLower
	stateFractionUpper
	stateEra
	stateHour12
	stateHour24
	stateMinute
	stateMonth
	stateSecond
	stateMeridiem
	stateYear
	stateOffset
	stateSingleQuote
	stateDoubleQuote
	stateEscape
)

func (s state) isRun() bool {
	return s >= stateDay && s <= stateOffset
}

func (s state) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateSingleQuote:
		return "single-quote"
	case stateDoubleQuote:
		return "double-quote"
	case stateEscape:
		return "escape"
	}
	if s.isRun() {
		return "run(" + string(specifierChar(s)) + ")"
	}
	return "invalid"
}

const (
	singleQuote  = '\''
	doubleQuote  = '"'
	escapeMarker = '\\'
	forceCustom  = '%'
	timeSepMark  = ':'
	dateSepMark  = '/'
)

// scanner is a value type: step never mutates its receiver, it returns the
// next scanner together with the fragments the transition produced.
type scanner struct {
	state   state
	run     int
	start   int
	offset  int
	literal string
	mode    Mode
	locale  Locale
}

func newScanner(mode Mode, locale Locale) scanner {
	return scanner{mode: mode, locale: locale}
}

// step consumes one rune.
func (s scanner) step(r rune) (scanner, []fragment, error) {
	switch s.state {
	case stateScanning:
		return s.fromScanning(r)

	case stateSingleQuote, stateDoubleQuote:
		next := s.advance()
		if r == s.closingQuote() {
			next.state = stateScanning
			next.literal = ""
			return next, []fragment{literalFragment(s.literal)}, nil
		}
		next.literal += string(r)
		return next, nil, nil

	case stateEscape:
		next := s.advance()
		next.state = stateScanning
		return next, []fragment{literalFragment(string(r))}, nil

	case stateDay, stateFractionLower, stateFractionUpper, stateEra,
		stateHour12, stateHour24, stateMinute, stateMonth, stateSecond,
		stateMeridiem, stateYear, stateOffset:
		if open, ok := runStateFor(r); ok && open == s.state {
			next := s.advance()
			if next.run < maxRun(s.state) {
				next.run++
			}
			return next, nil, nil
		}

		flushed, err := s.flush()
		if err != nil {
			return s, nil, err
		}
		idle := s
		idle.state = stateScanning
		idle.run = 0
		next, frags, err := idle.step(r)
		if err != nil {
			return s, nil, err
		}
		return next, append([]fragment{flushed}, frags...), nil

	default:
		return s, nil, formatError("scanner reached state "+s.state.String(), s.offset)
	}
}

func (s scanner) fromScanning(r rune) (scanner, []fragment, error) {
	next := s.advance()
	at := s.offset

	switch r {
	case singleQuote:
		next.state = stateSingleQuote
		next.start = at
		next.literal = ""
		return next, nil, nil
	case doubleQuote:
		next.state = stateDoubleQuote
		next.start = at
		next.literal = ""
		return next, nil, nil
	case escapeMarker:
		next.state = stateEscape
		next.start = at
		return next, nil, nil
	case forceCustom:
		return next, nil, nil
	case timeSepMark:
		return next, []fragment{literalFragment(s.locale.TimeSeparator())}, nil
	case dateSepMark:
		return next, []fragment{literalFragment(s.locale.DateSeparator())}, nil
	case zoneMarker:
		token, ok := lookupZoneMarker(s.mode)
		if !ok {
			return s, nil, unsupportedError(zoneMarker, 1, at, s.mode)
		}
		return next, []fragment{tokenFragment(token)}, nil
	}

	if open, ok := runStateFor(r); ok {
		next.state = open
		next.run = 1
		next.start = at
		return next, nil, nil
	}
	return next, []fragment{literalFragment(string(r))}, nil
}

// finish handles end of input: an open run is flushed, an open literal or
// escape is a format error.
func (s scanner) finish() ([]fragment, error) {
	switch s.state {
	case stateScanning:
		return nil, nil
	case stateSingleQuote, stateDoubleQuote:
		return nil, formatError("unterminated quoted literal", s.start)
	case stateEscape:
		return nil, formatError("unterminated escape sequence", s.start)
	}

	if !s.state.isRun() {
		return nil, formatError("scanner reached state "+s.state.String(), s.offset)
	}
	flushed, err := s.flush()
	if err != nil {
		return nil, err
	}
	return []fragment{flushed}, nil
}

func (s scanner) flush() (fragment, error) {
	token, ok := lookupToken(s.state, s.run, s.mode)
	if !ok {
		return fragment{}, unsupportedError(specifierChar(s.state), s.run, s.start, s.mode)
	}
	return tokenFragment(token), nil
}

func (s scanner) advance() scanner {
	s.offset++
	return s
}

func (s scanner) closingQuote() rune {
	if s.state == stateDoubleQuote {
		return doubleQuote
	}
	return singleQuote
}

// scan folds step over pattern and writes every fragment to out. Nothing is
// written to out once an error occurs.
func scan(pattern string, mode Mode, locale Locale, out *emitter) error {
	var pending []fragment

	s := newScanner(mode, locale)
	for _, r := range pattern {
		var (
			frags []fragment
			err   error
		)
		s, frags, err = s.step(r)
		if err != nil {
			return withPattern(err, pattern)
		}
		pending = append(pending, frags...)
	}

	frags, err := s.finish()
	if err != nil {
		return withPattern(err, pattern)
	}
	pending = append(pending, frags...)

	out.write(pending...)
	return nil
}

func withPattern(err error, pattern string) error {
	if ce, ok := err.(*ConversionError); ok && ce.Pattern == "" {
		ce.Pattern = pattern
	}
	return err
}
