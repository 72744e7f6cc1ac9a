package measure_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-kaprekar/pkg/kaprekar"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
)

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("step 1")
	assert.Zero(t, mt.AVGDuration())

	mt.AddDuration(2 * time.Millisecond)
	mt.AddDuration(4 * time.Millisecond)
	assert.Equal(t, int64(2), mt.Total())
	assert.Equal(t, 3*time.Millisecond, mt.AVGDuration())

	mt.SetTotalDuration(time.Second)
	assert.Equal(t, time.Second, mt.GetTotalDuration())

	assert.Same(t, mt, msr.AddMetric("step 1"))
	assert.Same(t, mt, msr.GetMetric("step 1"))
	assert.Nil(t, msr.GetMetric("step 2"))
}

func TestDefaultMeasureConcurrent(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			msr.AddMetric("step 1").AddDuration(time.Microsecond)
			msr.AddSequence(3, true)
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(10), msr.GetMetric("step 1").Total())
	assert.Equal(t, map[int]int{3: 10}, msr.Lengths())
}

func TestEngineMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	eng, err := kaprekar.New(kaprekar.Observers(measure.EngineMeasure(msr)), kaprekar.MaxSteps(4))
	require.NoError(t, err)

	_, err = eng.RunToFixpoint("1234")
	require.NoError(t, err)
	_, err = eng.RunToFixpoint("8352")
	require.NoError(t, err)
	_, err = eng.RunToFixpoint("1000")
	require.ErrorIs(t, err, kaprekar.ErrNotConverged)
	require.NoError(t, eng.Finish())

	assert.Equal(t, map[int]int{1: 1, 3: 1}, msr.Lengths())
	assert.Equal(t, 1, msr.NonConverged())

	metrics := msr.AllMetrics()
	require.Contains(t, metrics, measure.TotalMetricName)
	assert.Positive(t, metrics[measure.TotalMetricName].GetTotalDuration())
	assert.Equal(t, int64(3), metrics[measure.StepMetricName(1)].Total())
	assert.Equal(t, int64(2), metrics[measure.StepMetricName(2)].Total())
	assert.Equal(t, int64(2), metrics[measure.StepMetricName(3)].Total())
	assert.Equal(t, int64(1), metrics[measure.StepMetricName(4)].Total())
	assert.NotContains(t, metrics, measure.StepMetricName(5))
}
