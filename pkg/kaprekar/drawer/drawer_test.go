package drawer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-kaprekar/pkg/kaprekar"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/drawer"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
)

func TestDOTDrawer(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "transitions.dot")
	drw := drawer.NewDOTDrawer(fileName)

	require.NoError(t, drw.AddTransition("1234", "3087"))
	require.NoError(t, drw.AddTransition("1234", "3087"))
	require.NoError(t, drw.AddTransition("3087", "8352"))
	require.NoError(t, drw.AddTransition("8352", "6174"))
	require.NoError(t, drw.AddTransition("6174", "6174"))
	require.NoError(t, drw.AddValue("6174"))

	path, err := drw.PathTo("1234", "6174")
	require.NoError(t, err)
	assert.Equal(t, []string{"1234", "3087", "8352", "6174"}, path)

	_, err = drw.PathTo("6174", "1234")
	require.Error(t, err)

	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	got := string(content)
	assert.True(t, strings.HasPrefix(got, "strict digraph {"))
	assert.Contains(t, got, `"1234" -> "3087"`)
	assert.Contains(t, got, `"3087" -> "8352"`)
	assert.Contains(t, got, `"8352" -> "6174"`)
	assert.NotContains(t, got, `"6174" -> "6174"`)
	assert.Contains(t, got, "depth 0")
	assert.Contains(t, got, "depth 3")
	assert.Contains(t, got, `color="#`)
}

func TestEngineDrawer(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "transitions.dot")
	msr := measure.NewDefaultMeasure()
	drw := drawer.NewDOTDrawer(fileName)

	eng, err := kaprekar.New(kaprekar.Observers(
		measure.EngineMeasure(msr),
		drawer.EngineDrawer(drw, msr),
	))
	require.NoError(t, err)

	for _, start := range []string{"1234", "1000", "6174"} {
		_, err := eng.RunToFixpoint(start)
		require.NoError(t, err)
	}

	require.NoError(t, eng.Finish())

	path, err := drw.PathTo("1000", "6174")
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "0999", "8991", "8082", "8532", "6174"}, path)

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	got := string(content)
	assert.Contains(t, got, `"0999" -> "8991"`)
	assert.Contains(t, got, `1 steps: 1\n3 steps: 1\n5 steps: 1`)
	assert.Contains(t, got, `labelloc="t"`)
}

func TestDOTDrawerInvalidFile(t *testing.T) {
	t.Parallel()

	drw := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "transitions.dot"))
	require.NoError(t, drw.AddValue("6174"))
	require.Error(t, drw.Draw())
}
