package momentfmt

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale turns "en_us" or " en-us " into the canonical "en-US".
// Names that are not BCP 47 tags are only trimmed and lower cased.
func normalizeLocale(locale string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if trimmed == "" {
		return ""
	}
	if strings.EqualFold(trimmed, invariantAlias) {
		return invariantAlias
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return strings.ToLower(trimmed)
	}
	return tag.String()
}

// normalizeLocales normalizes every name, dropping blanks and repeats.
func normalizeLocales(locales []string) []string {
	var out []string
	for _, locale := range locales {
		if name := normalizeLocale(locale); name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// localeParentChain lists the ancestors of locale from closest to root, so
// "zh-Hant-TW" yields ["zh-Hant", "zh"]. Names x/text cannot parse lose one
// hyphenated segment per step.
func localeParentChain(locale string) []string {
	if locale == "" || locale == invariantAlias {
		return nil
	}

	var chain []string
	for current := parentLocale(locale); current != "" && current != locale; current = parentLocale(current) {
		if slices.Contains(chain, current) {
			break
		}
		chain = append(chain, current)
	}
	return chain
}

func parentLocale(name string) string {
	if tag, err := language.Parse(name); err == nil {
		if parent := tag.Parent(); parent != language.Und {
			return parent.String()
		}
		return ""
	}
	if idx := strings.LastIndex(name, "-"); idx > 0 {
		return name[:idx]
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
