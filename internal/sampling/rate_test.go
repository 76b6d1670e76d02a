package sampling

import (
	"testing"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name          string
		num, den, flr float64
		want          float64
	}{
		{"plain", 10, 5, 1, 2},
		{"denominator floored", 10, 0.5, 1, 10},
		{"zero elapsed", 30, 0, 1, 30},
		{"zero floor and zero denominator", 30, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.num, tt.den, tt.flr))
		})
	}
}

func TestNormalizer(t *testing.T) {
	iv := models.SampleInterval{
		Elapsed: 0,
		Deltas: map[string]float64{
			models.CounterCalls:         0,
			models.CounterRuntime:       50,
			models.CounterSharedBlksHit: 4,
		},
	}

	n := NewNormalizer()
	assert.Equal(t, 50.0, n.PerSecond(iv, models.CounterRuntime))
	assert.Equal(t, 50.0, n.Ratio(iv, models.CounterRuntime, models.CounterCalls))
	assert.Equal(t, 4.0*8192, n.Scaled(iv, models.CounterSharedBlksHit, 8192))

	n = NewNormalizer(WithRateFloor(0, 10), WithRatioFloor(-1, 5))
	assert.Equal(t, 5.0, n.PerSecond(iv, models.CounterRuntime))
	assert.Equal(t, 10.0, n.Ratio(iv, models.CounterRuntime, models.CounterCalls))
	assert.Equal(t, 2.0, n.RatioOf(10, 2))
}
