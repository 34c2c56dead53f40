package standards

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyWaistHeightBoundaries(t *testing.T) {
	cases := []struct {
		ratio float64
		want  Band
	}{
		{0.44, BandGodlike},
		{0.45, BandGodlike},
		{0.4501, BandGreat},
		{0.46, BandGreat},
		{0.4601, BandGood},
		{0.47, BandGood},
		{0.4701, BandBelow},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Classify(tc.ratio, WaistHeight), "ratio %v", tc.ratio)
	}
}

func TestClassifyHigherBetter(t *testing.T) {
	assert.Equal(t, BandBelow, Classify(1.29, ChestWaist))
	assert.Equal(t, BandGood, Classify(1.30, ChestWaist))
	assert.Equal(t, BandGreat, Classify(1.35, ChestWaist))
	assert.Equal(t, BandGodlike, Classify(1.40, ChestWaist))
	assert.Equal(t, BandGreat, Classify(1.10, InclineBW))
	assert.Equal(t, BandGodlike, Classify(0.60, ChinsBW))
	assert.Equal(t, BandGood, Classify(0.65, OHPBW))
	assert.Equal(t, BandBelow, Classify(0.44, CurlBW))
}

func TestClassifyRejectsInvalidRatios(t *testing.T) {
	for _, r := range []float64{0, -0.3, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, BandBelow, Classify(r, WaistHeight))
		assert.Equal(t, BandBelow, Classify(r, OHPBW))
	}
}

func TestEvaluatePhysiqueRequiresHeightAndWaist(t *testing.T) {
	_, err := EvaluatePhysique(Physique{Height: 180})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = EvaluatePhysique(Physique{Height: -1, Waist: 80})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluatePhysiqueSkipsAbsentMeasurements(t *testing.T) {
	results, err := EvaluatePhysique(Physique{Height: 180, Waist: 81, Arms: -2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, WaistHeight.Key, results[0].Metric.Key)
	assert.Equal(t, BandGodlike, results[0].Band)
	assert.Equal(t, "45.0%", results[0].Value())

	results, err = EvaluatePhysique(Physique{Height: 180, Waist: 80, Chest: 112, Arms: 40})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "1.40×", results[1].Value())
	assert.Equal(t, BandGodlike, results[1].Band)
	assert.Equal(t, BandGodlike, results[2].Band)
}

func TestEvaluateStrength(t *testing.T) {
	_, err := EvaluateStrength(Strength{Incline: 100})
	require.ErrorIs(t, err, ErrInvalidInput)

	results, err := EvaluateStrength(Strength{Bodyweight: 80, Incline: 100, Chins: 24, Curl: 0})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, InclineBW.Key, results[0].Metric.Key)
	assert.Equal(t, BandGodlike, results[0].Band)
	assert.Equal(t, "1.25× BW", results[0].Value())
	assert.Equal(t, ChinsBW.Key, results[1].Metric.Key)
	assert.Equal(t, BandGood, results[1].Band)
	assert.Equal(t, "30.0% BW", results[1].Value())
}
