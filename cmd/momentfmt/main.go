package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	momentfmt "github.com/goliatone/go-momentfmt"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		reportError(err)
	}
	os.Exit(run(os.Args[1:], env.ToMap(os.Environ()), os.Stdin, os.Stdout, os.Stderr))
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "momentfmt: %v\n", err)
	os.Exit(1)
}

// run executes the command and returns the process exit code: 0 on success,
// 1 when any pattern failed and 2 for usage or setup errors.
func run(args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, environ, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "momentfmt: %v\n", err)
		return 2
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "momentfmt: %v\n", err)
		return 2
	}

	opts, err := cfg.options(logHook{logger: logger})
	if err != nil {
		fmt.Fprintf(stderr, "momentfmt: %v\n", err)
		return 2
	}
	libCfg, err := momentfmt.NewConfig(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "momentfmt: %v\n", err)
		return 2
	}
	conv, err := libCfg.BuildConverter()
	if err != nil {
		fmt.Fprintf(stderr, "momentfmt: %v\n", err)
		return 2
	}
	logger.Debug("converter ready",
		"culture", conv.Registry().DefaultCulture(),
		"mode", conv.Mode(),
		"culture_files", len(cfg.CultureFiles),
	)

	switch {
	case cfg.List:
		if err := listCultures(conv.Registry(), stdout); err != nil {
			fmt.Fprintf(stderr, "momentfmt: %v\n", err)
			return 2
		}
		return 0
	case cfg.Batch:
		failed, err := runBatch(conv, stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "momentfmt: %v\n", err)
			return 2
		}
		if failed > 0 {
			return 1
		}
		return 0
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns, err = readPatterns(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "momentfmt: %v\n", err)
			return 2
		}
	}

	code := 0
	for _, pattern := range patterns {
		result, err := conv.Convert(pattern)
		if err != nil {
			fmt.Fprintln(stderr, err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, result)
	}
	return code
}

// readPatterns returns one pattern per input line. Lines are kept verbatim
// apart from the line terminator, since spaces are literal pattern text.
func readPatterns(in io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	return patterns, nil
}

func listCultures(registry *momentfmt.CultureRegistry, out io.Writer) error {
	w := bufio.NewWriter(out)
	for _, name := range registry.Names() {
		culture, err := registry.Culture(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-8s %-28s %s %s\n",
			culture.Code,
			culture.DisplayName,
			culture.Patterns.ShortDate,
			culture.Patterns.ShortTime,
		)
	}
	return w.Flush()
}
