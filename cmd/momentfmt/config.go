package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	momentfmt "github.com/goliatone/go-momentfmt"
)

const envPrefix = "MOMENTFMT_"

// cliConfig is resolved in layers: defaults, then the TOML file, then
// MOMENTFMT_* variables, then explicitly set flags.
type cliConfig struct {
	ConfigPath   string              `toml:"-" env:"CONFIG"`
	Culture      string              `toml:"culture" env:"CULTURE"`
	Mode         string              `toml:"mode" env:"MODE"`
	CultureFiles []string            `toml:"culture_files" env:"CULTURE_FILES" envSeparator:","`
	Fallbacks    map[string][]string `toml:"fallbacks"`
	LogLevel     string              `toml:"log_level" env:"LOG_LEVEL"`
	Batch        bool                `toml:"batch" env:"BATCH"`

	List     bool     `toml:"-"`
	Patterns []string `toml:"-"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Mode:     momentfmt.Tolerant.String(),
		LogLevel: "warn",
	}
}

type stringList struct {
	items []string
}

func (f *stringList) String() string {
	return strings.Join(f.items, ",")
}

func (f *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

// loadDotEnv loads path into the process environment. A missing file is not
// an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadConfig(args []string, environ map[string]string, output io.Writer) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var (
		flagCfg      cliConfig
		cultureFiles stringList
	)
	flags := flag.NewFlagSet("momentfmt", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&flagCfg.ConfigPath, "config", "", "path to a TOML config file")
	flags.StringVar(&flagCfg.Culture, "culture", "", "culture used for standard format codes and separators")
	flags.StringVar(&flagCfg.Mode, "mode", "", "conversion mode: tolerant or strict")
	flags.Var(&cultureFiles, "cultures", "culture data file (.yaml, .json or .toml). Repeat flag to add more.")
	flags.StringVar(&flagCfg.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&flagCfg.Batch, "batch", false, "read JSON lines requests from stdin")
	flags.BoolVar(&flagCfg.List, "list", false, "list the known cultures and exit")
	flags.Usage = func() {
		fmt.Fprintln(output, "usage: momentfmt [flags] [pattern ...]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return cliConfig{}, err
	}
	flagCfg.CultureFiles = cultureFiles.items

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	configPath := flagCfg.ConfigPath
	if configPath == "" {
		configPath = environ[envPrefix+"CONFIG"]
	}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return cliConfig{}, fmt.Errorf("parse %s: %w", configPath, err)
		}
		cfg.ConfigPath = configPath
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return cliConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if set["culture"] {
		cfg.Culture = flagCfg.Culture
	}
	if set["mode"] {
		cfg.Mode = flagCfg.Mode
	}
	if set["cultures"] {
		cfg.CultureFiles = flagCfg.CultureFiles
	}
	if set["log-level"] {
		cfg.LogLevel = flagCfg.LogLevel
	}
	if set["batch"] {
		cfg.Batch = flagCfg.Batch
	}
	cfg.List = flagCfg.List
	cfg.Patterns = flags.Args()

	if _, err := cfg.mode(); err != nil {
		return cliConfig{}, err
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

func (c cliConfig) mode() (momentfmt.Mode, error) {
	return momentfmt.ParseMode(c.Mode)
}

// options translates the resolved CLI settings into library options.
func (c cliConfig) options(hooks ...momentfmt.ConversionHook) ([]momentfmt.Option, error) {
	mode, err := c.mode()
	if err != nil {
		return nil, err
	}

	opts := []momentfmt.Option{
		momentfmt.WithDefaultCulture(c.Culture),
		momentfmt.WithDefaultMode(mode),
		momentfmt.WithConversionHooks(hooks...),
	}
	if len(c.CultureFiles) > 0 {
		opts = append(opts, momentfmt.WithCultureFiles(c.CultureFiles...))
	}
	for culture, chain := range c.Fallbacks {
		opts = append(opts, momentfmt.WithFallback(culture, chain...))
	}
	return opts, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", value)
	}
}
