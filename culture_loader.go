package momentfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CultureData is the document shape of a culture data file.
type CultureData struct {
	DefaultCulture string              `json:"default_culture,omitempty" yaml:"default_culture,omitempty" toml:"default_culture,omitempty"`
	Cultures       map[string]Culture  `json:"cultures,omitempty" yaml:"cultures,omitempty" toml:"cultures,omitempty"`
	Fallbacks      map[string][]string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty" toml:"fallbacks,omitempty"`
}

// CultureDataLoader loads culture data files and per-culture override files
type CultureDataLoader struct {
	paths     []string
	overrides map[string]string
}

// NewCultureDataLoader creates a loader; later paths take precedence.
func NewCultureDataLoader(paths ...string) *CultureDataLoader {
	return &CultureDataLoader{
		paths:     append([]string(nil), paths...),
		overrides: make(map[string]string),
	}
}

// AddOverride adds a culture-specific override file holding a single culture
// document.
func (l *CultureDataLoader) AddOverride(culture, path string) {
	if l.overrides == nil {
		l.overrides = make(map[string]string)
	}
	l.overrides[culture] = path
}

// Load reads every file and returns the merged result. Culture keys are
// normalized and each culture's Code matches its key.
func (l *CultureDataLoader) Load() (*CultureData, error) {
	result := &CultureData{
		Cultures:  make(map[string]Culture),
		Fallbacks: make(map[string][]string),
	}

	for _, path := range l.paths {
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load culture data: %w", err)
		}

		var data CultureData
		if err := decodeCultureFile(path, raw, &data); err != nil {
			return nil, fmt.Errorf("parse culture data %s: %w", path, err)
		}
		mergeCultureData(result, &data)
	}

	for _, culture := range sortedKeys(l.overrides) {
		if err := l.loadOverride(result, culture, l.overrides[culture]); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (l *CultureDataLoader) loadOverride(base *CultureData, culture, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load culture override for %q: %w", culture, err)
	}

	var override Culture
	if err := decodeCultureFile(path, raw, &override); err != nil {
		return fmt.Errorf("parse culture override for %q: %w", culture, err)
	}

	key := cultureKey(culture)
	override.Code = key
	base.Cultures[key] = mergeCulture(base.Cultures[key], override)
	return nil
}

// mergeCultureData merges source into dest; source takes precedence
func mergeCultureData(dest, source *CultureData) {
	if source.DefaultCulture != "" {
		dest.DefaultCulture = source.DefaultCulture
	}

	for name, culture := range source.Cultures {
		key := cultureKey(name)
		culture.Code = key
		dest.Cultures[key] = mergeCulture(dest.Cultures[key], culture)
	}

	for name, chain := range source.Fallbacks {
		key := cultureKey(name)
		if key == "" {
			continue
		}
		dest.Fallbacks[key] = normalizeLocales(chain)
	}
}

func decodeCultureFile(path string, data []byte, target any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, target)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, target)
	case ".toml":
		return toml.Unmarshal(data, target)
	default:
		return fmt.Errorf("unsupported extension %s", ext)
	}
}
