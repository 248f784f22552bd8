package momentfmt

// invariantCode keys the culture-independent entry of builtinCultures.
const invariantCode = ""

// invariantAlias is accepted by the registry as a name for the invariant culture.
const invariantAlias = "invariant"

// builtinCultures holds the culture data shipped with the package. Patterns
// are written in the source notation, using "/" and ":" where the culture's
// own separators apply.
var builtinCultures = map[string]Culture{
	invariantCode: {
		DisplayName: "Invariant Language (Invariant Country)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "MM/dd/yyyy",
			LongDate:     "dddd, dd MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd, dd MMMM yyyy HH:mm:ss",
			MonthDay:     "MMMM dd",
			YearMonth:    "yyyy MMMM",
		},
	},
	"en-US": {
		Code:        "en-US",
		DisplayName: "English (United States)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "M/d/yyyy",
			LongDate:     "dddd, MMMM d, yyyy",
			ShortTime:    "h:mm tt",
			LongTime:     "h:mm:ss tt",
			FullDateTime: "dddd, MMMM d, yyyy h:mm:ss tt",
			MonthDay:     "MMMM d",
			YearMonth:    "MMMM yyyy",
		},
	},
	"en-GB": {
		Code:        "en-GB",
		DisplayName: "English (United Kingdom)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd/MM/yyyy",
			LongDate:     "dd MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dd MMMM yyyy HH:mm:ss",
			MonthDay:     "d MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"de-DE": {
		Code:        "de-DE",
		DisplayName: "German (Germany)",
		Separators:  Separators{Date: ".", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd.MM.yyyy",
			LongDate:     "dddd, d. MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd, d. MMMM yyyy HH:mm:ss",
			MonthDay:     "d. MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"fr-FR": {
		Code:        "fr-FR",
		DisplayName: "French (France)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd/MM/yyyy",
			LongDate:     "dddd d MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd d MMMM yyyy HH:mm:ss",
			MonthDay:     "d MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"es-ES": {
		Code:        "es-ES",
		DisplayName: "Spanish (Spain)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd/MM/yyyy",
			LongDate:     "dddd, d' de 'MMMM' de 'yyyy",
			ShortTime:    "H:mm",
			LongTime:     "H:mm:ss",
			FullDateTime: "dddd, d' de 'MMMM' de 'yyyy H:mm:ss",
			MonthDay:     "d' de 'MMMM",
			YearMonth:    "MMMM' de 'yyyy",
		},
	},
	"it-IT": {
		Code:        "it-IT",
		DisplayName: "Italian (Italy)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd/MM/yyyy",
			LongDate:     "dddd d MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd d MMMM yyyy HH:mm:ss",
			MonthDay:     "d MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"nl-NL": {
		Code:        "nl-NL",
		DisplayName: "Dutch (Netherlands)",
		Separators:  Separators{Date: "-", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "d-M-yyyy",
			LongDate:     "dddd d MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd d MMMM yyyy HH:mm:ss",
			MonthDay:     "d MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"pt-BR": {
		Code:        "pt-BR",
		DisplayName: "Portuguese (Brazil)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd/MM/yyyy",
			LongDate:     "dddd, d' de 'MMMM' de 'yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "dddd, d' de 'MMMM' de 'yyyy HH:mm:ss",
			MonthDay:     "d' de 'MMMM",
			YearMonth:    "MMMM' de 'yyyy",
		},
	},
	"sv-SE": {
		Code:        "sv-SE",
		DisplayName: "Swedish (Sweden)",
		Separators:  Separators{Date: "-", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "yyyy-MM-dd",
			LongDate:     "'den 'd MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "'den 'd MMMM yyyy HH:mm:ss",
			MonthDay:     "'den 'd MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"fi-FI": {
		Code:        "fi-FI",
		DisplayName: "Finnish (Finland)",
		Separators:  Separators{Date: ".", Time: "."},
		Patterns: Patterns{
			ShortDate:    "d.M.yyyy",
			LongDate:     "d. MMMM'ta 'yyyy",
			ShortTime:    "H:mm",
			LongTime:     "H:mm:ss",
			FullDateTime: "d. MMMM'ta 'yyyy H:mm:ss",
			MonthDay:     "d. MMMM'ta'",
			YearMonth:    "MMMM yyyy",
		},
	},
	"pl-PL": {
		Code:        "pl-PL",
		DisplayName: "Polish (Poland)",
		Separators:  Separators{Date: ".", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd.MM.yyyy",
			LongDate:     "d MMMM yyyy",
			ShortTime:    "HH:mm",
			LongTime:     "HH:mm:ss",
			FullDateTime: "d MMMM yyyy HH:mm:ss",
			MonthDay:     "d MMMM",
			YearMonth:    "MMMM yyyy",
		},
	},
	"ru-RU": {
		Code:        "ru-RU",
		DisplayName: "Russian (Russia)",
		Separators:  Separators{Date: ".", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "dd.MM.yyyy",
			LongDate:     "d MMMM yyyy 'г.'",
			ShortTime:    "H:mm",
			LongTime:     "H:mm:ss",
			FullDateTime: "d MMMM yyyy 'г.' H:mm:ss",
			MonthDay:     "MMMM dd",
			YearMonth:    "MMMM yyyy",
		},
	},
	"ja-JP": {
		Code:        "ja-JP",
		DisplayName: "Japanese (Japan)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "yyyy/MM/dd",
			LongDate:     "yyyy'年'M'月'd'日'",
			ShortTime:    "H:mm",
			LongTime:     "H:mm:ss",
			FullDateTime: "yyyy'年'M'月'd'日' H:mm:ss",
			MonthDay:     "M'月'd'日'",
			YearMonth:    "yyyy'年'M'月'",
		},
	},
	"zh-CN": {
		Code:        "zh-CN",
		DisplayName: "Chinese (Simplified, PRC)",
		Separators:  Separators{Date: "/", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "yyyy/M/d",
			LongDate:     "yyyy'年'M'月'd'日'",
			ShortTime:    "H:mm",
			LongTime:     "H:mm:ss",
			FullDateTime: "yyyy'年'M'月'd'日' H:mm:ss",
			MonthDay:     "M'月'd'日'",
			YearMonth:    "yyyy'年'M'月'",
		},
	},
	"ko-KR": {
		Code:        "ko-KR",
		DisplayName: "Korean (Korea)",
		Separators:  Separators{Date: "-", Time: ":"},
		Patterns: Patterns{
			ShortDate:    "yyyy-MM-dd",
			LongDate:     "yyyy'년' M'월' d'일' dddd",
			ShortTime:    "tt h:mm",
			LongTime:     "tt h:mm:ss",
			FullDateTime: "yyyy'년' M'월' d'일' dddd tt h:mm:ss",
			MonthDay:     "M'월' d'일'",
			YearMonth:    "yyyy'년' M'월'",
		},
	},
}
