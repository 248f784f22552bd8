package main

import (
	"io"
	"log/slog"
	"time"

	momentfmt "github.com/goliatone/go-momentfmt"
)

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// logHook records every conversion at debug level and failures at warn.
type logHook struct {
	logger *slog.Logger
}

func (h logHook) BeforeConvert(ctx *momentfmt.ConversionContext) {
	ctx.SetMetadata("started", time.Now())
}

func (h logHook) AfterConvert(ctx *momentfmt.ConversionContext) {
	attrs := []any{
		"pattern", ctx.Pattern,
		"culture", ctx.Culture,
		"mode", ctx.Mode,
	}
	if v, ok := ctx.MetadataValue("started"); ok {
		if started, ok := v.(time.Time); ok {
			attrs = append(attrs, "elapsed", time.Since(started))
		}
	}

	if ctx.Error != nil {
		h.logger.Warn("conversion failed", append(attrs, "error", ctx.Error)...)
		return
	}
	h.logger.Debug("converted pattern", append(attrs, "result", ctx.Result)...)
}
