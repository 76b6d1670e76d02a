package sampling

import (
	"math"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// DeltaOptions configures the clamps applied while differencing.
type DeltaOptions struct {
	ResetFloor  float64       // Lowest delta reported for a counter; a reset reports exactly this.
	MinInterval time.Duration // Lowest elapsed interval between a pair.
}

// Diff computes the interval between cur and its successor next.
// A counter present on only one side reports the reset floor.
// The second result is the number of counters that went backwards.
func Diff(cur, next models.Snapshot, opts DeltaOptions) (models.SampleInterval, int) {
	deltas := make(map[string]float64, len(cur.Counters))
	resets := 0
	for name, v := range cur.Counters {
		nv, ok := next.Counters[name]
		if !ok {
			deltas[name] = opts.ResetFloor
			continue
		}
		d := nv - v
		if d < 0 {
			resets++
		}
		deltas[name] = math.Max(d, opts.ResetFloor)
	}
	for name := range next.Counters {
		if _, ok := cur.Counters[name]; !ok {
			deltas[name] = opts.ResetFloor
		}
	}

	elapsed := next.TS.Sub(cur.TS)
	if elapsed < opts.MinInterval {
		elapsed = opts.MinInterval
	}

	return models.SampleInterval{
		Entity:  cur.Entity,
		TS:      cur.TS,
		Elapsed: elapsed.Seconds(),
		Deltas:  deltas,
	}, resets
}

// Lead pairs every selected point of a time-ordered partition with the point
// that immediately follows it in the partition. The last point has no
// successor and produces no interval.
func Lead(partition []models.Snapshot, selected []int, opts DeltaOptions) ([]models.SampleInterval, int) {
	intervals := make([]models.SampleInterval, 0, len(selected))
	resets := 0
	for _, i := range selected {
		if i < 0 || i+1 >= len(partition) {
			continue
		}
		iv, r := Diff(partition[i], partition[i+1], opts)
		intervals = append(intervals, iv)
		resets += r
	}
	return intervals, resets
}

// Total sums the clamped consecutive deltas of a counter over the whole
// partition. As in Diff, a pair where either side lacks the counter
// contributes the reset floor.
func Total(partition []models.Snapshot, counter string, opts DeltaOptions) float64 {
	var total float64
	for i := 0; i+1 < len(partition); i++ {
		v, ok := partition[i].Counters[counter]
		nv, nok := partition[i+1].Counters[counter]
		if !ok || !nok {
			total += opts.ResetFloor
			continue
		}
		total += math.Max(nv-v, opts.ResetFloor)
	}
	return total
}

// Active reports whether max(counter) - min(counter) is positive over the
// snapshots of the partition that carry the counter.
func Active(partition []models.Snapshot, counter string) bool {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range partition {
		v, ok := s.Counters[counter]
		if !ok {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi-lo > 0
}
