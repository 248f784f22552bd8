package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"

	momentfmt "github.com/goliatone/go-momentfmt"
)

type generatorConfig struct {
	out            string
	cldrPath       string
	defaultCulture string
	cultures       []string
}

type cultureFlag struct {
	items []string
}

func (f *cultureFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *cultureFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(cfg, logger); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "culturegen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var cultureList cultureFlag

	flag.StringVar(&cfg.out, "out", "cultures.yaml", "path to the culture data file (.yaml, .yml, .json or .toml)")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.StringVar(&cfg.defaultCulture, "default", "", "default culture recorded in the generated document")
	flag.Var(&cultureList, "culture", "culture to generate, e.g. en-AU. Repeat flag to add more.")

	flag.Parse()

	if len(cultureList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -culture value is required")
	}
	cfg.cultures = cultureList.items

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig, logger *slog.Logger) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	doc := momentfmt.CultureData{
		DefaultCulture: cfg.defaultCulture,
		Cultures:       make(map[string]momentfmt.Culture, len(cfg.cultures)),
	}

	for _, name := range cfg.cultures {
		formats := collectFormats(ldmlChain(data, name))
		culture, dropped, err := cultureFromFormats(name, formats)
		if err != nil {
			return fmt.Errorf("build culture %s: %w", name, err)
		}
		if len(dropped) > 0 {
			logger.Warn("dropped LDML fields", "culture", culture.Code, "fields", dropped)
		}
		doc.Cultures[culture.Code] = culture
	}

	if err := ensureDir(cfg.out); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.out, err)
	}
	defer file.Close()

	if err := writeCultureData(file, filepath.Ext(cfg.out), doc); err != nil {
		return err
	}
	logger.Info("wrote culture data", "path", cfg.out, "cultures", len(doc.Cultures))
	return nil
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// ldmlChain returns the raw LDML documents for culture and each truncated
// ancestor, ending with root. Missing documents are skipped.
func ldmlChain(data *cldr.CLDR, culture string) []*cldr.LDML {
	if data == nil {
		return nil
	}

	var chain []*cldr.LDML
	candidate := strings.ReplaceAll(culture, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			chain = append(chain, ldml)
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	if root := data.RawLDML("root"); root != nil {
		chain = append(chain, root)
	}
	return chain
}

// writeCultureData encodes doc in the format selected by the file extension.
func writeCultureData(w io.Writer, ext string, doc momentfmt.CultureData) error {
	switch strings.ToLower(ext) {
	case ".json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case ".toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output extension %q", ext)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
