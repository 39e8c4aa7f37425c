package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPossibleLevels(t *testing.T) {
	tests := []struct {
		cost uint32
		want []float32
	}{
		{200, []float32{1.0, 1.5, 2.0, 2.5}},
		{1000, []float32{9.0, 9.5, 10.0, 11.5}},   // irregular tail kept
		{1600, []float32{13.0, 13.5, 14.5, 15.0}}, // irregular 14.5 kept
		{2200, []float32{17.0, 17.5, 18.0, 18.5}},
		{8000, []float32{35.0, 35.5, 36.0, 36.5}},
		{10000, []float32{39.0, 39.5, 40.0}},
	}

	for _, tt := range tests {
		got, ok := PossibleLevels(tt.cost)
		require.True(t, ok, "cost=%d", tt.cost)
		assert.Equal(t, tt.want, got, "cost=%d", tt.cost)
	}
}

func TestPossibleLevels_Unknown(t *testing.T) {
	for _, cost := range []uint32{0, 100, 2100, 11000} {
		got, ok := PossibleLevels(cost)
		assert.False(t, ok, "cost=%d", cost)
		assert.Nil(t, got, "cost=%d", cost)
	}
}

func TestPossibleLevels_ReturnsCopy(t *testing.T) {
	got, ok := PossibleLevels(200)
	require.True(t, ok)
	got[0] = 99

	again, _ := PossibleLevels(200)
	assert.Equal(t, float32(1.0), again[0])
}

func TestStardustTable_Shape(t *testing.T) {
	costs := StardustCosts()
	require.Len(t, costs, 20)
	assert.Equal(t, uint32(200), costs[0])
	assert.Equal(t, uint32(10000), costs[len(costs)-1])

	for i := 1; i < len(costs); i++ {
		if costs[i-1] >= costs[i] {
			t.Errorf("costs[%d]=%d >= costs[%d]=%d, must be strictly increasing",
				i-1, costs[i-1], i, costs[i])
		}
	}

	for _, c := range costs {
		levels, ok := PossibleLevels(c)
		require.True(t, ok)
		assert.NotEmpty(t, levels)
		for _, l := range levels {
			assert.LessOrEqual(t, l, MaxLevel)
		}
	}
}
