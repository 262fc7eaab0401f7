package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineOf(m map[int]float64) BaselineFunc {
	return func(slot int) (float64, bool) {
		w, ok := m[slot]
		return w, ok
	}
}

func TestGetFallsBackToBaseline(t *testing.T) {
	s := NewWeightStore()
	base := baselineOf(map[int]float64{0: 0.2, 1: 0.75})

	for slot, want := range map[int]float64{0: 0.2, 1: 0.75} {
		w, ok := s.Get(slot, base)
		require.True(t, ok)
		assert.Equal(t, want, w)
	}
	assert.Zero(t, s.Len())

	_, ok := s.Get(9, base)
	assert.False(t, ok)
}

func TestApplyAccumulatesAndClamps(t *testing.T) {
	s := NewWeightStore()
	base := baselineOf(map[int]float64{5: 0.2})

	for range 3 {
		s.Apply(5, 0.1, base)
	}
	w, _ := s.Get(5, base)
	assert.Equal(t, 0.5, w)
	assert.True(t, s.Edited(5))

	for range 50 {
		assert.LessOrEqual(t, s.Apply(5, 0.35, base), 1.0)
	}
	assert.Equal(t, 1.0, s.Apply(5, 0.1, base))

	assert.Equal(t, 0.0, s.Apply(5, -7, base))
	assert.Equal(t, 0.0, s.Apply(5, -0.01, base))
}

func TestApplyClampsAtTop(t *testing.T) {
	s := NewWeightStore()
	assert.Equal(t, 1.0, s.Apply(5, 0.1, baselineOf(map[int]float64{5: 0.95})))
}

func TestApplyWithoutBaselinePanics(t *testing.T) {
	s := NewWeightStore()
	assert.Panics(t, func() { s.Apply(3, 0.1, baselineOf(nil)) })
}

func TestResolveAll(t *testing.T) {
	s := NewWeightStore()
	base := baselineOf(map[int]float64{0: 0.1, 1: 0.2, 2: 0.3})
	s.Apply(1, 0.5, base)

	got := s.ResolveAll([]int{0, 1, 2}, base)
	assert.Equal(t, []SlotWeight{{0, 0.1}, {1, 0.7}, {2, 0.3}}, got)

	assert.Panics(t, func() { s.ResolveAll([]int{0, 4}, base) })

	s.Reset()
	assert.Zero(t, s.Len())
	assert.False(t, s.Edited(1))
}
