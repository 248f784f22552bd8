package momentfmt

import "testing"

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("de_CH", "de-DE", "de_ch", "de-de", "", "de")

	chain := resolver.Resolve("de-CH")
	want := []string{"de-DE", "de"}
	if len(chain) != len(want) {
		t.Fatalf("Resolve = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("Resolve[%d] = %q, want %q", i, chain[i], want[i])
		}
	}

	chain[0] = "mutated"
	if again := resolver.Resolve("de-CH"); again[0] != "de-DE" {
		t.Fatalf("Resolve should return a copy, got %v", again)
	}

	if got := resolver.Resolve("fr-FR"); got != nil {
		t.Fatalf("unknown culture chain = %v", got)
	}

	var nilResolver *StaticFallbackResolver
	if got := nilResolver.Resolve("de-CH"); got != nil {
		t.Fatalf("nil resolver = %v", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  ", want: ""},
		{in: "en_us", want: "en-US"},
		{in: " PT-br ", want: "pt-BR"},
		{in: "Invariant", want: "invariant"},
		{in: "not a locale", want: "not a locale"},
	}

	for _, tt := range tests {
		if got := normalizeLocale(tt.in); got != tt.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("fr-CA")
	if len(chain) != 1 || chain[0] != "fr" {
		t.Fatalf("localeParentChain(fr-CA) = %v", chain)
	}

	if chain := localeParentChain("invariant"); chain != nil {
		t.Fatalf("invariant chain = %v", chain)
	}

	chain = localeParentChain("custom-tag-name")
	if len(chain) == 0 || chain[len(chain)-1] != "custom" {
		t.Fatalf("unparsable chain = %v", chain)
	}
}
