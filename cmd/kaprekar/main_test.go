package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-kaprekar/internal/config"
	"github.com/askiada/go-kaprekar/pkg/kaprekar"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "validate", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, `"1234" is a valid start value`)

	out, err = execute(t, "validate", "7777")
	require.ErrorIs(t, err, kaprekar.ErrInvalidInput)
	assert.Contains(t, out, `"7777" is not a valid start value`)

	out, err = execute(t, "validate", "--pad", "12")
	require.NoError(t, err)
	assert.Contains(t, out, `"0012" is a valid start value`)
}

func TestRunCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "run", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "8352")
	assert.Contains(t, out, "1234 reached 6174 in 3 steps")
	assert.Contains(t, out, "∎")

	out, err = execute(t, "run", "--no-terminal", "1234")
	require.NoError(t, err)
	assert.NotContains(t, out, "∎")
}

func TestRunCmdErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "12a4")
	require.ErrorIs(t, err, kaprekar.ErrInvalidInput)

	out, err := execute(t, "run", "--max-steps", "2", "1234")
	require.ErrorIs(t, err, kaprekar.ErrNotConverged)
	assert.Contains(t, out, "in progress after 2 steps")

	out, err = execute(t, "run", "--allow-repdigits", "9999")
	require.ErrorIs(t, err, kaprekar.ErrDegenerate)
	assert.Contains(t, out, "collapsed to 0000")

	_, err = execute(t, "run", "--max-steps", "0", "1234")
	require.ErrorIs(t, err, config.ErrMaxSteps)

	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestStepCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "step", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "1234 in progress after 1 steps, next input 3087")

	out, err = execute(t, "step", "-n", "3", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "1234 reached 6174 in 3 steps")

	out, err = execute(t, "step", "-n", "5", "1234")
	require.ErrorIs(t, err, kaprekar.ErrInvalidState)
	assert.Contains(t, out, "1234 reached 6174 in 3 steps")

	_, err = execute(t, "step", "-n", "0", "1234")
	require.ErrorIs(t, err, errCount)
}

func TestSurveyCmd(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "transitions.dot")

	out, err := execute(t, "survey", "--concurrency", "2", "--measure", "--dot", dotFile)
	require.NoError(t, err)
	assert.Contains(t, out, "9990 start values, longest sequence 7 steps")
	assert.Contains(t, out, "COMPUTED")

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"1234" -> "3087"`)
	assert.Contains(t, string(content), "depth 7")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kaprekar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terminal_step: false\nmax_steps: 2\n"), 0o600))

	out, err := execute(t, "--config", path, "run", "8352")
	require.NoError(t, err)
	assert.NotContains(t, out, "∎")

	// flags override the file
	_, err = execute(t, "--config", path, "--max-steps", "7", "run", "1234")
	require.NoError(t, err)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "run", "1234")
	require.ErrorIs(t, err, os.ErrNotExist)
}
