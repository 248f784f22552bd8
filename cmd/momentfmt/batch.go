package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	momentfmt "github.com/goliatone/go-momentfmt"
)

// batchRequest is one JSON line on stdin. A missing or null pattern is
// reported as argument_null rather than treated as "".
type batchRequest struct {
	Pattern *string `json:"pattern"`
	Culture string  `json:"culture,omitempty"`
	Mode    string  `json:"mode,omitempty"`
}

type batchResponse struct {
	Line    int    `json:"line"`
	Pattern string `json:"pattern,omitempty"`
	Culture string `json:"culture,omitempty"`
	Result  string `json:"result"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorCode maps library errors onto stable machine readable codes.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, momentfmt.ErrArgumentNull):
		return "argument_null"
	case errors.Is(err, momentfmt.ErrUnsupportedSpecifier):
		return "unsupported_specifier"
	case errors.Is(err, momentfmt.ErrFormat):
		return "format"
	case errors.Is(err, momentfmt.ErrUnknownCulture):
		return "unknown_culture"
	default:
		return "invalid_request"
	}
}

// runBatch answers every request line in order and reports how many failed.
// Blank lines are skipped; a line that is not JSON yields an invalid_request
// response and processing continues.
func runBatch(conv *momentfmt.Converter, in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	var failed, line int
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		resp := handleBatchLine(conv, line, text)
		if resp.Error != "" {
			failed++
		}
		if err := enc.Encode(resp); err != nil {
			return failed, fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read requests: %w", err)
	}
	return failed, nil
}

func handleBatchLine(conv *momentfmt.Converter, line int, text string) batchResponse {
	resp := batchResponse{Line: line}

	var req batchRequest
	if err := json.Unmarshal([]byte(text), &req); err != nil {
		resp.Error = fmt.Sprintf("decode request: %v", err)
		resp.Code = errorCode(err)
		return resp
	}
	if req.Pattern != nil {
		resp.Pattern = *req.Pattern
	}
	resp.Culture = req.Culture

	opts := []momentfmt.ConvertOption{momentfmt.WithCultureName(req.Culture)}
	if req.Mode != "" {
		mode, err := momentfmt.ParseMode(req.Mode)
		if err != nil {
			resp.Error = err.Error()
			resp.Code = errorCode(err)
			return resp
		}
		opts = append(opts, momentfmt.WithMode(mode))
	}

	result, err := conv.ConvertPtr(req.Pattern, opts...)
	if err != nil {
		resp.Error = err.Error()
		resp.Code = errorCode(err)
		return resp
	}
	resp.Result = result
	return resp
}
