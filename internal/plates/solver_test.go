package plates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/olympus/internal/model"
)

func TestSolveMetric140(t *testing.T) {
	got := Solve(140, 20, MetricPlates)
	require.Equal(t, Breakdown{{Weight: 25, Count: 2}, {Weight: 10, Count: 1}}, got)
	assert.False(t, got.BarOnly())
	assert.InDelta(t, 60, got.PerSide(), 1e-9)
	assert.Equal(t, "25×2, 10×1", got.String())
}

func TestSolveBelowBarIsBarOnly(t *testing.T) {
	for _, target := range []float64{0, 10, 19.5, 44} {
		got := Solve(target, 45, ImperialPlates)
		assert.True(t, got.BarOnly(), "target %v", target)
		assert.Equal(t, "bar only", got.String())
	}
	assert.True(t, Solve(20, 20, MetricPlates).BarOnly())
	assert.True(t, Solve(20-1e-9, 20, MetricPlates).BarOnly())
}

func TestSolveNeverOverloadsAndResidualIsBounded(t *testing.T) {
	sets := []struct {
		bar    float64
		plates PlateSet
	}{
		{20, MetricPlates},
		{45, ImperialPlates},
		{15, PlateSet{20, 10, 5}},
	}
	for _, s := range sets {
		for target := s.bar; target <= s.bar+400; target += 0.7 {
			b := Solve(target, s.bar, s.plates)
			total := b.Total(s.bar)
			require.LessOrEqual(t, total, target+2*Epsilon, "target %v", target)
			require.Less(t, target-total, 2*s.plates.Smallest(), "target %v", target)
		}
	}
}

func TestSolveDropsUnrepresentableRemainder(t *testing.T) {
	// 1.25 per side cannot be made from imperial plates.
	got := Solve(47.5, 45, ImperialPlates)
	assert.True(t, got.BarOnly())

	got = Solve(102.5, 20, PlateSet{20, 10})
	assert.Equal(t, Breakdown{{Weight: 20, Count: 2}}, got)
}

func TestSolveIsDeterministic(t *testing.T) {
	first := Solve(187.5, 20, MetricPlates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Solve(187.5, 20, MetricPlates))
	}
}

func TestPlateSetsAreValid(t *testing.T) {
	require.NoError(t, MetricPlates.Validate())
	require.NoError(t, ImperialPlates.Validate())
	assert.Error(t, PlateSet{10, 10}.Validate())
	assert.Error(t, PlateSet{10, -5}.Validate())
	assert.Error(t, PlateSet{}.Validate())
	assert.Equal(t, ImperialPlates, ForUnit(model.UnitImperial))
	assert.Equal(t, MetricPlates, ForUnit(model.UnitMetric))
}

func TestCheckLoad(t *testing.T) {
	require.NoError(t, CheckLoad(140, 20))
	for _, tc := range []struct{ target, bar float64 }{
		{math.NaN(), 20},
		{math.Inf(1), 20},
		{math.Inf(-1), 20},
		{0, 20},
		{-5, 20},
		{100, 0},
		{100, math.NaN()},
		{100, math.Inf(1)},
	} {
		assert.ErrorIs(t, CheckLoad(tc.target, tc.bar), ErrInvalidInput, "target %v bar %v", tc.target, tc.bar)
	}
	assert.True(t, Solve(math.Inf(1), 20, MetricPlates).BarOnly())
	assert.True(t, Solve(math.NaN(), 20, MetricPlates).BarOnly())
}
