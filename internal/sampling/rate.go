package sampling

import "github.com/sbilibin2017/gophpowa/internal/models"

// Default floors of the normalizer.
const (
	DefaultRateFloor  = 1.0 // seconds
	DefaultRatioFloor = 1.0 // calls
)

// Normalizer converts interval deltas into per-second rates and ratios.
type Normalizer struct {
	rateFloor  float64
	ratioFloor float64
}

// NormalizerOpt configures a Normalizer.
type NormalizerOpt func(*Normalizer)

// NewNormalizer creates a Normalizer with 1 second and 1 call floors unless overridden.
func NewNormalizer(opts ...NormalizerOpt) *Normalizer {
	n := &Normalizer{
		rateFloor:  DefaultRateFloor,
		ratioFloor: DefaultRatioFloor,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithRateFloor sets the elapsed floor to the first positive value.
func WithRateFloor(floors ...float64) NormalizerOpt {
	return func(n *Normalizer) {
		for _, f := range floors {
			if f > 0 {
				n.rateFloor = f
				break
			}
		}
	}
}

// WithRatioFloor sets the denominator floor to the first positive value.
func WithRatioFloor(floors ...float64) NormalizerOpt {
	return func(n *Normalizer) {
		for _, f := range floors {
			if f > 0 {
				n.ratioFloor = f
				break
			}
		}
	}
}

// Rate returns delta / max(elapsed, floor).
func Rate(delta, elapsed, floor float64) float64 {
	return Ratio(delta, elapsed, floor)
}

// Ratio returns num / max(den, floor), or 0 when both are non-positive.
func Ratio(num, den, floor float64) float64 {
	d := den
	if d < floor {
		d = floor
	}
	if d <= 0 {
		return 0
	}
	return num / d
}

// PerSecond returns the rate of one counter of an interval.
func (n *Normalizer) PerSecond(iv models.SampleInterval, counter string) float64 {
	return Rate(iv.Deltas[counter], iv.Elapsed, n.rateFloor)
}

// Scaled returns the rate of one counter multiplied by factor, e.g. a block size.
func (n *Normalizer) Scaled(iv models.SampleInterval, counter string, factor float64) float64 {
	return Rate(iv.Deltas[counter]*factor, iv.Elapsed, n.rateFloor)
}

// Ratio returns the ratio of two deltas of an interval, e.g. runtime per call.
func (n *Normalizer) Ratio(iv models.SampleInterval, num, den string) float64 {
	return Ratio(iv.Deltas[num], iv.Deltas[den], n.ratioFloor)
}

// RatioOf returns num / max(den, ratio floor) for precomputed totals.
func (n *Normalizer) RatioOf(num, den float64) float64 {
	return Ratio(num, den, n.ratioFloor)
}
