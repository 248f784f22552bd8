package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	momentfmt "github.com/goliatone/go-momentfmt"
)

func newTestConverter(t *testing.T, opts ...momentfmt.ConverterOption) *momentfmt.Converter {
	t.Helper()
	conv, err := momentfmt.NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	return conv
}

func decodeResponses(t *testing.T, raw string) []batchResponse {
	t.Helper()
	var out []batchResponse
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		var resp batchResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", scanner.Text(), err)
		}
		out = append(out, resp)
	}
	return out
}

func TestRunBatch(t *testing.T) {
	conv := newTestConverter(t, momentfmt.WithConverterCulture("en-US"))

	input := strings.Join([]string{
		`{"pattern":"d"}`,
		`{"pattern":"d","culture":"de-DE"}`,
		``,
		`{"pattern":"y","mode":"strict"}`,
		`{"culture":"fr-FR"}`,
		`{"pattern":"'open"}`,
		`{"pattern":"d","culture":"enUS"}`,
		`{"pattern":"d","mode":"lenient"}`,
		`not json`,
		`{"pattern":"<HH>"}`,
	}, "\n")

	var out strings.Builder
	failed, err := runBatch(conv, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	responses := decodeResponses(t, out.String())
	want := []struct {
		line   int
		result string
		code   string
	}{
		{line: 1, result: "M[/]D[/]YYYY"},
		{line: 2, result: "DD[.]MM[.]YYYY"},
		{line: 4, code: "unsupported_specifier"},
		{line: 5, code: "argument_null"},
		{line: 6, code: "format"},
		{line: 7, code: "unknown_culture"},
		{line: 8, code: "invalid_request"},
		{line: 9, code: "invalid_request"},
		{line: 10, result: "[<]HH[>]"},
	}

	if len(responses) != len(want) {
		t.Fatalf("got %d responses, want %d: %s", len(responses), len(want), out.String())
	}
	for i, w := range want {
		resp := responses[i]
		if resp.Line != w.line || resp.Result != w.result || resp.Code != w.code {
			t.Fatalf("response %d = %+v, want line=%d result=%q code=%q", i, resp, w.line, w.result, w.code)
		}
		if (w.code != "") != (resp.Error != "") {
			t.Fatalf("response %d error mismatch: %+v", i, resp)
		}
	}
	if failed != 6 {
		t.Fatalf("failed = %d, want 6", failed)
	}
	if !strings.Contains(out.String(), `"[<]HH[>]"`) {
		t.Fatalf("responses should not HTML-escape: %s", out.String())
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: momentfmt.ErrArgumentNull, want: "argument_null"},
		{err: &momentfmt.ConversionError{Err: momentfmt.ErrFormat}, want: "format"},
		{err: &momentfmt.ConversionError{Err: momentfmt.ErrUnsupportedSpecifier}, want: "unsupported_specifier"},
		{err: momentfmt.ErrUnknownCulture, want: "unknown_culture"},
		{err: errors.New("other"), want: "invalid_request"},
	}

	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Fatalf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
