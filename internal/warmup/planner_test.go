package warmup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/plates"
)

func TestPlanOlympus(t *testing.T) {
	tpl, err := Lookup("olympus")
	require.NoError(t, err)

	sets, err := Plan(100, 20, model.UnitMetric, tpl)
	require.NoError(t, err)
	require.Len(t, sets, 3)

	wantTargets := []float64{30, 50, 100}
	wantPercents := []int{30, 50, 100}
	for i, s := range sets {
		assert.Equal(t, i+1, s.Ordinal)
		assert.InDelta(t, wantTargets[i], s.Target, 1e-9)
		assert.Equal(t, wantPercents[i], s.Percent)
	}
	assert.Equal(t, "30", FormatWeight(sets[0].Target))
	assert.Equal(t, RoleWorking, sets[2].Role)
}

func TestPlanSovietEndToEnd(t *testing.T) {
	tpl, err := Lookup("soviet")
	require.NoError(t, err)

	sets, err := Plan(140, model.UnitMetric.DefaultBarWeight(), model.UnitMetric, tpl)
	require.NoError(t, err)
	require.Len(t, sets, 3)

	got := []string{FormatWeight(sets[0].Target), FormatWeight(sets[1].Target), FormatWeight(sets[2].Target)}
	assert.Equal(t, []string{"56", "98", "140"}, got)

	top := sets[2].Plates
	assert.False(t, top.BarOnly())
	assert.Equal(t, plates.Breakdown{{Weight: 25, Count: 2}, {Weight: 10, Count: 1}}, top)
}

func TestPlanRejectsInvalidWeights(t *testing.T) {
	tpl, err := Lookup("ramp")
	require.NoError(t, err)

	for _, w := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		sets, err := Plan(w, 20, model.UnitMetric, tpl)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, sets)

		sets, err = Plan(100, w, model.UnitMetric, tpl)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, sets)
	}
}

func TestPlanUsesUnitPlates(t *testing.T) {
	tpl, err := Lookup("olympus")
	require.NoError(t, err)

	sets, err := Plan(225, 45, model.UnitImperial, tpl)
	require.NoError(t, err)
	assert.Equal(t, plates.Breakdown{{Weight: 10, Count: 1}}, sets[0].Plates)
	// 33.75 per side leaves 1.25 that imperial plates cannot make.
	assert.Equal(t, plates.Breakdown{{Weight: 25, Count: 1}, {Weight: 5, Count: 1}, {Weight: 2.5, Count: 1}}, sets[1].Plates)
	assert.Equal(t, plates.Breakdown{{Weight: 45, Count: 2}}, sets[2].Plates)
}

func TestLookupUnknownTemplate(t *testing.T) {
	_, err := Lookup("bogus")
	require.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplatesRegistry(t *testing.T) {
	tpls := Templates()
	require.GreaterOrEqual(t, len(tpls), 3)
	for _, tpl := range tpls {
		require.NotEmpty(t, tpl.Steps, tpl.Key)
		for _, step := range tpl.Steps {
			assert.Greater(t, step.Fraction, 0.0)
			assert.LessOrEqual(t, step.Fraction, 1.0)
		}
	}
	assert.Equal(t, "olympus", tpls[0].Key)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "56", FormatWeight(56.00000000000001))
	assert.Equal(t, "56.3", FormatWeight(56.25))
	assert.Equal(t, "61.9", FormatWeight(61.88))
	assert.Equal(t, "0", FormatWeight(0))
}
