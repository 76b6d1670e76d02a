package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStride(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		budget int
		want   int
	}{
		{"fewer points than budget", 50, 100, 1},
		{"exactly budget", 100, 100, 1},
		{"thousand points", 1000, 100, 9},
		{"tiny budget", 10, 1, 5},
		{"non positive budget", 10, 0, 1},
		{"empty partition", 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stride(tt.total, tt.budget))
		})
	}
}

func TestBoundedStride(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		budget int
		want   int
	}{
		{"all points kept", 80, 100, 1},
		{"raised to respect budget", 1000, 100, 10},
		{"base stride already bounded", 10, 1, 10},
		{"uneven division", 250, 100, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoundedStride(tt.total, tt.budget))
		})
	}
}

func TestDownsample_ThousandPointsBudgetHundred(t *testing.T) {
	selected, stride := Downsample(1000, 100)

	assert.Equal(t, 10, stride)
	assert.Len(t, selected, 100)
	assert.Equal(t, 9, selected[0], "first kept point is sequence number stride")
	assert.Equal(t, 999, selected[len(selected)-1])
	for i := 1; i < len(selected); i++ {
		assert.Equal(t, stride, selected[i]-selected[i-1])
	}
}

func TestDownsample_NeverExceedsBudget(t *testing.T) {
	for total := 0; total <= 600; total++ {
		for _, budget := range []int{1, 2, 3, 7, 50, 100, 250} {
			selected, _ := Downsample(total, budget)
			assert.LessOrEqual(t, len(selected), budget, "total=%d budget=%d", total, budget)
			if total <= budget {
				assert.Len(t, selected, total, "total=%d budget=%d", total, budget)
			}
		}
	}
}

func TestDownsample_Deterministic(t *testing.T) {
	a, sa := Downsample(777, 42)
	b, sb := Downsample(777, 42)
	assert.Equal(t, sa, sb)
	assert.Equal(t, a, b)
}

func TestSelect(t *testing.T) {
	assert.Equal(t, []int{2, 5, 8}, Select(10, 3))
	assert.Equal(t, []int{0, 1, 2}, Select(3, 0))
	assert.Empty(t, Select(0, 1))
}
