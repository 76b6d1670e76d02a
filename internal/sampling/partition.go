package sampling

import (
	"iter"
	"slices"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Projector maps a raw snapshot to the entity it is aggregated under and the
// counters it contributes. Returning ok=false drops the snapshot.
type Projector func(s models.Snapshot) (key models.EntityKey, counters map[string]float64, ok bool)

// CoarsenTo returns a Projector that rolls snapshots up to level.
func CoarsenTo(level models.Level) Projector {
	return func(s models.Snapshot) (models.EntityKey, map[string]float64, bool) {
		return s.Entity.Coarsen(level), s.Counters, true
	}
}

// Partitions holds time-ordered snapshots per entity.
type Partitions map[models.EntityKey][]models.Snapshot

// Partition groups snapshots by projected entity and sums counters of
// snapshots sharing an entity and timestamp, so a coarse entity sees one
// point per sampling instant.
func Partition(snaps iter.Seq[models.Snapshot], project Projector) Partitions {
	type slot struct {
		key models.EntityKey
		ts  int64
	}
	sums := make(map[slot]map[string]float64)
	times := make(map[slot]time.Time)
	for s := range snaps {
		key, counters, ok := project(s)
		if !ok {
			continue
		}
		sl := slot{key: key, ts: s.TS.UnixNano()}
		acc, found := sums[sl]
		if !found {
			acc = make(map[string]float64, len(counters))
			sums[sl] = acc
			times[sl] = s.TS
		}
		for name, v := range counters {
			acc[name] += v
		}
	}

	parts := make(Partitions)
	for sl, counters := range sums {
		parts[sl.key] = append(parts[sl.key], models.Snapshot{
			Entity:   sl.key,
			TS:       times[sl],
			Counters: counters,
		})
	}
	for key := range parts {
		slices.SortFunc(parts[key], func(a, b models.Snapshot) int {
			return a.TS.Compare(b.TS)
		})
	}
	return parts
}

// Keys returns the partition entities in ascending order.
func (p Partitions) Keys() []models.EntityKey {
	keys := make([]models.EntityKey, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b models.EntityKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return keys
}

// Stats describes one run of the sampling pipeline.
type Stats struct {
	Points    int
	Selected  int
	Intervals int
	Resets    int
}

// Sample downsamples every partition to budget points and pairs each kept
// point with its raw successor.
func Sample(parts Partitions, budget int, opts DeltaOptions) (map[models.EntityKey][]models.SampleInterval, Stats) {
	out := make(map[models.EntityKey][]models.SampleInterval, len(parts))
	var st Stats
	for key, part := range parts {
		selected, _ := Downsample(len(part), budget)
		intervals, resets := Lead(part, selected, opts)
		out[key] = intervals
		st.Points += len(part)
		st.Selected += len(selected)
		st.Intervals += len(intervals)
		st.Resets += resets
	}
	return out, st
}
