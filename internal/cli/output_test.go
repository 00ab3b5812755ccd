package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]float64{"total": 6})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Error("E204", "unknown kind", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E204", resp.Error.Code)
	assert.Equal(t, "unknown kind", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Error("NOT_IMPLEMENTED", "method Area must be implemented", map[string]int{"index": 1}))
	assert.Equal(t, "Error [NOT_IMPLEMENTED]: method Area must be implemented\n", buf.String())
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf, Verbose: true}

	require.NoError(t, formatter.Error("E203", "bad radius", map[string]string{"field": "radius"}))
	assert.Contains(t, buf.String(), "Error [E203]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			diag := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "text",
				Writer:    out,
				ErrWriter: diag,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Parsed %d shape(s)", 2)

			assert.Empty(t, out.String())
			if tt.wantLog {
				assert.Equal(t, "Parsed 2 shape(s)\n", diag.String())
			} else {
				assert.Empty(t, diag.String())
			}
		})
	}
}

func TestOutputFormatter_Number(t *testing.T) {
	en := &OutputFormatter{}
	assert.Equal(t, "9.14159", en.Number(9.141592653589793))
	assert.Equal(t, "1,234.50000", en.Number(1234.5))

	de := &OutputFormatter{Locale: "de"}
	assert.Equal(t, "1.234,50000", de.Number(1234.5))

	bogus := &OutputFormatter{Locale: "not a tag!"}
	assert.Equal(t, "6.00000", bogus.Number(6))
}

func TestOutputFormatter_MarkPlainOffTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	formatter := &OutputFormatter{Writer: &bytes.Buffer{}}
	assert.Equal(t, "✓", formatter.Mark(true))
	assert.Equal(t, "✗", formatter.Mark(false))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitFailure, "scenarios failed", errors.New("inner")))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Equal(t, "outer: scenarios failed: inner", wrapped.Error())
}
