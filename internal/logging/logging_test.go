package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/askiada/go-kaprekar/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level string
		want  zapcore.Level
	}{
		"empty":       {level: "", want: zapcore.InfoLevel},
		"debug":       {level: "debug", want: zapcore.DebugLevel},
		"upper case":  {level: "WARN", want: zapcore.WarnLevel},
		"with spaces": {level: " error ", want: zapcore.ErrorLevel},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tc.level)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := logging.New("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New("verbose")
	require.ErrorIs(t, err, logging.ErrLevel)
}
