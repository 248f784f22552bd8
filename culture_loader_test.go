package momentfmt

import (
	"strings"
	"testing"
)

func TestCultureDataLoaderYAML(t *testing.T) {
	data, err := NewCultureDataLoader("testdata/cultures.yaml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.DefaultCulture != "en-AU" {
		t.Fatalf("DefaultCulture = %q", data.DefaultCulture)
	}

	culture, ok := data.Cultures["en-AU"]
	if !ok {
		t.Fatalf("en-AU missing: %v", data.Cultures)
	}
	if culture.Code != "en-AU" || culture.Parent != "en-GB" {
		t.Fatalf("identity = %q/%q", culture.Code, culture.Parent)
	}
	if culture.DisplayName != "English (Australia)" {
		t.Fatalf("DisplayName = %q", culture.DisplayName)
	}
	if culture.Patterns.ShortDate != "d/MM/yyyy" || culture.Patterns.ShortTime != "h:mm tt" {
		t.Fatalf("patterns = %+v", culture.Patterns)
	}

	chain := data.Fallbacks["en-NZ"]
	if len(chain) != 1 || chain[0] != "en-AU" {
		t.Fatalf("fallbacks = %v", chain)
	}
}

func TestCultureDataLoaderJSON(t *testing.T) {
	data, err := NewCultureDataLoader("testdata/cultures.json").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := data.Cultures["de-DE"].Patterns.ShortTime; got != "HH:mm 'Uhr'" {
		t.Fatalf("de-DE short time = %q", got)
	}
	if got := data.Cultures["de-AT"].Patterns.LongDate; got != "dddd, dd. MMMM yyyy" {
		t.Fatalf("de-AT long date = %q", got)
	}

	chain := data.Fallbacks["de-LI"]
	if len(chain) != 2 || chain[0] != "de-AT" || chain[1] != "de-DE" {
		t.Fatalf("fallbacks = %v", chain)
	}
}

func TestCultureDataLoaderTOML(t *testing.T) {
	data, err := NewCultureDataLoader("testdata/cultures.toml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	culture := data.Cultures["pt-PT"]
	if culture.Parent != "pt-BR" || culture.Separators.Date != "-" || culture.Patterns.ShortDate != "dd-MM-yyyy" {
		t.Fatalf("pt-PT = %+v", culture)
	}
}

func TestCultureDataLoaderLaterFilesWin(t *testing.T) {
	data, err := NewCultureDataLoader("testdata/cultures.yaml", "testdata/cultures.toml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.DefaultCulture != "pt-PT" {
		t.Fatalf("DefaultCulture = %q, want pt-PT", data.DefaultCulture)
	}
	if _, ok := data.Cultures["en-AU"]; !ok {
		t.Fatal("cultures from earlier files should be kept")
	}
}

func TestCultureDataLoaderOverride(t *testing.T) {
	loader := NewCultureDataLoader()
	loader.AddOverride("fr_FR", "testdata/override_fr.yaml")

	data, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	culture, ok := data.Cultures["fr-FR"]
	if !ok {
		t.Fatalf("override not keyed by normalized name: %v", data.Cultures)
	}
	if culture.Code != "fr-FR" || culture.Separators.Date != "-" || culture.Patterns.ShortDate != "yyyy-MM-dd" {
		t.Fatalf("fr-FR = %+v", culture)
	}
}

func TestCultureDataLoaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{name: "missing file", paths: []string{"testdata/missing.yaml"}, want: "load culture data"},
		{name: "unsupported extension", paths: []string{"testdata/cultures.ini"}, want: "unsupported extension .ini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCultureDataLoader(tt.paths...).Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want %q", err, tt.want)
			}
		})
	}

	loader := NewCultureDataLoader()
	loader.AddOverride("fr-FR", "testdata/missing.yaml")
	if _, err := loader.Load(); err == nil || !strings.Contains(err.Error(), `override for "fr-FR"`) {
		t.Fatalf("override error = %v", err)
	}
}
