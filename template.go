package momentfmt

import (
	"fmt"
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the culture name.
	// Defaults to "Locale".
	LocaleKey string
	// OnError, when set, turns a failed conversion into the returned string.
	OnError func(culture, pattern string, err error) string
}

// TemplateHelpers exposes pattern conversion helpers for go-template.
//
//	{{ moment_format . "yyyy/MM/dd" }}
//	{{ moment_format_strict "de-DE" "D" }}
//	{{ culture_name . }}
func TemplateHelpers(conv *Converter, cfg HelperConfig) map[string]any {
	format := func(mode Mode) func(any, any) (string, error) {
		return func(data any, pattern any) (string, error) {
			culture := extractCulture(data, cfg.LocaleKey)
			result, err := convertValue(conv, culture, pattern, mode)
			if err != nil && cfg.OnError != nil {
				text, _ := pattern.(string)
				return cfg.OnError(culture, text, err), nil
			}
			return result, err
		}
	}

	return map[string]any{
		"moment_format":        format(conv.Mode()),
		"moment_format_strict": format(Strict),
		"culture_name": func(data any) string {
			requested := extractCulture(data, cfg.LocaleKey)
			culture, err := conv.Culture(requested)
			if err != nil {
				return requested
			}
			return culture.Name()
		},
	}
}

func convertValue(conv *Converter, culture string, pattern any, mode Mode) (string, error) {
	opts := []ConvertOption{WithMode(mode)}
	if culture != "" {
		opts = append(opts, WithCultureName(culture))
	}

	switch p := pattern.(type) {
	case nil:
		return "", ErrArgumentNull
	case string:
		return conv.Convert(p, opts...)
	case *string:
		return conv.ConvertPtr(p, opts...)
	case fmt.Stringer:
		return conv.Convert(p.String(), opts...)
	default:
		return "", fmt.Errorf("%w: pattern of type %T", ErrFormat, pattern)
	}
}

// extractCulture reads the culture name from template data. Strings are used
// as is; maps and structs are searched for localeKey. An empty result selects
// the converter's default culture.
func extractCulture(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
		return ""
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
