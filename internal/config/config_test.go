package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askiada/go-kaprekar/internal/config"
	"github.com/askiada/go-kaprekar/pkg/kaprekar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kaprekar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, kaprekar.DefaultMaxSteps, cfg.MaxSteps)
	assert.True(t, cfg.TerminalStep)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
max_steps: 10
terminal_step: false
allow_repdigits: true
concurrency: 8
log_level: debug
dot_file: graph.dot
measure: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		LogLevel:       "debug",
		DOTFile:        "graph.dot",
		MaxSteps:       10,
		Concurrency:    8,
		TerminalStep:   false,
		AllowRepdigits: true,
		Measure:        true,
	}, cfg)
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, "measure: true\n"))
	require.NoError(t, err)
	assert.Equal(t, kaprekar.DefaultMaxSteps, cfg.MaxSteps)
	assert.True(t, cfg.TerminalStep)
	assert.True(t, cfg.Measure)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		content string
		want    error
	}{
		"max steps":   {content: "max_steps: 0\n", want: config.ErrMaxSteps},
		"concurrency": {content: "concurrency: -1\n", want: config.ErrConcurrency},
		"log level":   {content: "log_level: loud\n", want: config.ErrLogLevel},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tc.content))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "max_steps: [\n"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.TerminalStep = false
	cfg.AllowRepdigits = true

	eng, err := kaprekar.New(cfg.EngineOptions(zap.NewNop())...)
	require.NoError(t, err)

	seq, err := eng.RunToFixpoint("8352")
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())

	_, err = eng.RunToFixpoint("3333")
	require.ErrorIs(t, err, kaprekar.ErrDegenerate)
}
