package momentfmt

// Locale exposes the culture data consulted while converting a pattern:
// separator characters for the ":" and "/" placeholders and the named patterns
// behind single-character standard format codes.
type Locale interface {
	Name() string
	DateSeparator() string
	TimeSeparator() string
	StandardPattern(name PatternName) string
}

// PatternName identifies one of the named standard patterns of a culture.
type PatternName string

const (
	ShortDatePattern    PatternName = "short_date"
	LongDatePattern     PatternName = "long_date"
	ShortTimePattern    PatternName = "short_time"
	LongTimePattern     PatternName = "long_time"
	FullDateTimePattern PatternName = "full_date_time"
	MonthDayPattern     PatternName = "month_day"
	YearMonthPattern    PatternName = "year_month"
)

// PatternNames lists every named pattern a culture carries.
var PatternNames = []PatternName{
	ShortDatePattern,
	LongDatePattern,
	ShortTimePattern,
	LongTimePattern,
	FullDateTimePattern,
	MonthDayPattern,
	YearMonthPattern,
}

// Separators holds the characters substituted for "/" and ":".
type Separators struct {
	Date string `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	Time string `json:"time,omitempty" yaml:"time,omitempty" toml:"time,omitempty"`
}

// Patterns holds the named patterns, written in the source notation.
type Patterns struct {
	ShortDate    string `json:"short_date,omitempty" yaml:"short_date,omitempty" toml:"short_date,omitempty"`
	LongDate     string `json:"long_date,omitempty" yaml:"long_date,omitempty" toml:"long_date,omitempty"`
	ShortTime    string `json:"short_time,omitempty" yaml:"short_time,omitempty" toml:"short_time,omitempty"`
	LongTime     string `json:"long_time,omitempty" yaml:"long_time,omitempty" toml:"long_time,omitempty"`
	FullDateTime string `json:"full_date_time,omitempty" yaml:"full_date_time,omitempty" toml:"full_date_time,omitempty"`
	MonthDay     string `json:"month_day,omitempty" yaml:"month_day,omitempty" toml:"month_day,omitempty"`
	YearMonth    string `json:"year_month,omitempty" yaml:"year_month,omitempty" toml:"year_month,omitempty"`
}

// Culture is an immutable snapshot of date/time culture data. Copies are
// independent, so a Culture can be shared between goroutines freely.
type Culture struct {
	Code        string     `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	DisplayName string     `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Parent      string     `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	Separators  Separators `json:"separators,omitempty" yaml:"separators,omitempty" toml:"separators,omitempty"`
	Patterns    Patterns   `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty"`
}

var _ Locale = Culture{}

// Invariant returns the culture-independent data set.
func Invariant() Culture {
	return builtinCultures[invariantCode]
}

func (c Culture) Name() string {
	return c.Code
}

func (c Culture) DateSeparator() string {
	return c.Separators.Date
}

func (c Culture) TimeSeparator() string {
	return c.Separators.Time
}

// StandardPattern returns the named pattern or "" when the culture has none.
func (c Culture) StandardPattern(name PatternName) string {
	switch name {
	case ShortDatePattern:
		return c.Patterns.ShortDate
	case LongDatePattern:
		return c.Patterns.LongDate
	case ShortTimePattern:
		return c.Patterns.ShortTime
	case LongTimePattern:
		return c.Patterns.LongTime
	case FullDateTimePattern:
		return c.Patterns.FullDateTime
	case MonthDayPattern:
		return c.Patterns.MonthDay
	case YearMonthPattern:
		return c.Patterns.YearMonth
	default:
		return ""
	}
}

// complete reports whether every separator and named pattern is populated.
func (c Culture) complete() bool {
	if c.Separators.Date == "" || c.Separators.Time == "" {
		return false
	}
	for _, name := range PatternNames {
		if c.StandardPattern(name) == "" {
			return false
		}
	}
	return true
}

// inherit fills the empty fields of c from parent. Identity fields are kept.
func (c Culture) inherit(parent Culture) Culture {
	if c.DisplayName == "" {
		c.DisplayName = parent.DisplayName
	}
	c.Separators = mergeSeparators(parent.Separators, c.Separators)
	c.Patterns = mergePatterns(parent.Patterns, c.Patterns)
	return c
}

// mergeCulture overlays the non-empty fields of override onto base.
func mergeCulture(base, override Culture) Culture {
	out := base
	if override.Code != "" {
		out.Code = override.Code
	}
	if override.DisplayName != "" {
		out.DisplayName = override.DisplayName
	}
	if override.Parent != "" {
		out.Parent = override.Parent
	}
	out.Separators = mergeSeparators(base.Separators, override.Separators)
	out.Patterns = mergePatterns(base.Patterns, override.Patterns)
	return out
}

func mergeSeparators(base, override Separators) Separators {
	if override.Date != "" {
		base.Date = override.Date
	}
	if override.Time != "" {
		base.Time = override.Time
	}
	return base
}

func mergePatterns(base, override Patterns) Patterns {
	pick := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	pick(&base.ShortDate, override.ShortDate)
	pick(&base.LongDate, override.LongDate)
	pick(&base.ShortTime, override.ShortTime)
	pick(&base.LongTime, override.LongTime)
	pick(&base.FullDateTime, override.FullDateTime)
	pick(&base.MonthDay, override.MonthDay)
	pick(&base.YearMonth, override.YearMonth)
	return base
}
