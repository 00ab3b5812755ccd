package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuccess(t *testing.T) {
	stdout, _, err := execute(t, sampleYAML, "validate")
	require.NoError(t, err)
	assert.Equal(t, "✓ Document valid (2 shapes)\n", stdout)
}

func TestValidateSuccessJSON(t *testing.T) {
	stdout, _, err := execute(t, sampleYAML, "validate", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 2, resp.Data.Shapes)
	assert.Len(t, resp.Data.Digest, 64)
}

func TestValidateDigestIgnoresSourceFormat(t *testing.T) {
	cueDoc := `shapes: [
	{kind: "rectangle", dims: {height: 3, width: 2.0}},
	{name: "lid", kind: "circle", dims: radius: 1},
]`
	digest := func(stdin string, args ...string) string {
		stdout, _, err := execute(t, stdin, append([]string{"validate", "--format", "json"}, args...)...)
		require.NoError(t, err)
		var resp struct {
			Data ValidationResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		return resp.Data.Digest
	}

	assert.Equal(t, digest(sampleYAML), digest(cueDoc, "--input", "cue"))
}

func TestValidateReportsEveryError(t *testing.T) {
	doc := `shapes:
  - kind: hexagon
    dims: {side: 1}
  - kind: rectangle
    dims: {width: 2}
`
	stdout, _, err := execute(t, doc, "validate", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 2)
	assert.Equal(t, "E204", resp.Data.Errors[0].Code)
	assert.Equal(t, "E205", resp.Data.Errors[1].Code)
	assert.Equal(t, "E204", resp.Error.Code)
}

func TestValidateSyntaxError(t *testing.T) {
	stdout, _, err := execute(t, "shapes: [\n", "validate")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ Validation failed")
	assert.Contains(t, stdout, "E201")
}

func TestValidateHelpText(t *testing.T) {
	stdout, _, err := execute(t, "", "validate", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "stdin")
}
