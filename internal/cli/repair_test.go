package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiseven/jsonrepair-go/internal/testutil"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "input.json", content)
}

func TestRepairCommandSuccess(t *testing.T) {
	path := writeTempFile(t, "{name: 'Alice'}")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"repair", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Alice"}`+"\n", out.String())
}

func TestRepairCommandFailureExitCode(t *testing.T) {
	path := writeTempFile(t, "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"repair", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCodeOf(err))
}

func TestRepairCommandJSONFormat(t *testing.T) {
	path := writeTempFile(t, "{a:1}")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "repair", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"status":"ok"`)
	assert.Contains(t, out.String(), `{\"a\":1}`)
}

func TestRepairCommandIndent(t *testing.T) {
	path := writeTempFile(t, `{"a":1}`)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"repair", "--indent", "2", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "{\n  \"a\": 1\n}")
}
