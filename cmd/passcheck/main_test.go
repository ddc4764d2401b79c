package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandezvara/passcheck"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_JSONFromArg(t *testing.T) {
	out, _, err := execute(t, "", "check", "-o", "json", "123456")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Weak", got["strength"])
	assert.Equal(t, true, got["is_common"])
}

func TestCheck_Stdin(t *testing.T) {
	out, _, err := execute(t, "Tr0ub4dor&3XyZ\nignored\n", "check", "--stdin", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "strength: Strong")
	assert.Contains(t, out, "length: 14")
}

func TestCheck_NonTerminalInputWithoutFlag(t *testing.T) {
	out, _, err := execute(t, "abcdefgh\r\n", "check", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"length": 8`)
}

func TestCheck_HumanOutput(t *testing.T) {
	out, _, err := execute(t, "", "check", "password")
	require.NoError(t, err)
	assert.Contains(t, out, "Password Analysis")
	assert.Contains(t, out, "Common password: Yes (WEAK!)")
	assert.NotContains(t, out, "\x1b[")
}

func TestCheck_FailUnder(t *testing.T) {
	_, _, err := execute(t, "", "check", "-o", "json", "--fail-under", "70", "123456")
	require.Error(t, err)

	var exit *exitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.code)

	_, _, err = execute(t, "", "check", "-o", "json", "--fail-under", "70", "Tr0ub4dor&3XyZ")
	assert.NoError(t, err)
}

func TestCheck_InvalidOutputFormat(t *testing.T) {
	_, _, err := execute(t, "", "check", "-o", "xml", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Output.Format")
}

func TestCheck_CustomDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("# custom\ncorrecthorse\n"), 0o600))

	out, _, err := execute(t, "", "--dictionary", path, "check", "-o", "json", "CorrectHorse")
	require.NoError(t, err)
	assert.Contains(t, out, `"is_common": true`)

	out, _, err = execute(t, "", "--dictionary", path, "check", "-o", "json", "123456")
	require.NoError(t, err)
	assert.Contains(t, out, `"is_common": false`)
}

func TestCheck_LogsNeverContainPassword(t *testing.T) {
	const secret = "Zz9!unique-Secret"
	_, errOut, err := execute(t, "", "--log-level", "debug", "--log-format", "json", "check", "-o", "json", secret)
	require.NoError(t, err)
	assert.Contains(t, errOut, "password evaluated")
	assert.NotContains(t, errOut, secret)
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--length", "20")
	require.NoError(t, err)

	pwd := strings.TrimSpace(out)
	assert.Len(t, []rune(pwd), 20)

	r, err := passcheck.Evaluate(pwd)
	require.NoError(t, err)
	assert.Equal(t, passcheck.StrengthStrong, r.Strength)
}

func TestGenerate_BadLength(t *testing.T) {
	_, _, err := execute(t, "", "generate", "--length", "4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, passcheck.ErrGenerateLength))
}
