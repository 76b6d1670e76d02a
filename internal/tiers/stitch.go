// Package tiers merges the historical (coalesced) tier and the current tail
// of a snapshot store into a single ordered sequence.
package tiers

import (
	"iter"
	"slices"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Stitch yields the snapshots of both tiers within the closed window
// [from, to], grouped by entity in key order and time-ordered within an
// entity. A snapshot found in both tiers for the same entity and timestamp
// is yielded once, from the historical tier.
func Stitch(historical []models.CoalescedRange, current []models.Snapshot, from, to time.Time) iter.Seq[models.Snapshot] {
	return func(yield func(models.Snapshot) bool) {
		type slot struct {
			key models.EntityKey
			ts  int64
		}
		seen := make(map[slot]struct{})
		byEntity := make(map[models.EntityKey][]models.Snapshot)

		add := func(s models.Snapshot) {
			if s.TS.Before(from) || s.TS.After(to) {
				return
			}
			sl := slot{key: s.Entity, ts: s.TS.UnixNano()}
			if _, dup := seen[sl]; dup {
				return
			}
			seen[sl] = struct{}{}
			byEntity[s.Entity] = append(byEntity[s.Entity], s)
		}

		for _, r := range historical {
			if !r.Overlaps(from, to) {
				continue
			}
			for _, s := range r.Records {
				add(s)
			}
		}
		for _, s := range current {
			add(s)
		}

		keys := make([]models.EntityKey, 0, len(byEntity))
		for k := range byEntity {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, compareKeys)

		for _, k := range keys {
			snaps := byEntity[k]
			slices.SortStableFunc(snaps, func(a, b models.Snapshot) int {
				return a.TS.Compare(b.TS)
			})
			for _, s := range snaps {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Coalesce splits snapshots taken before cutoff into one range per entity
// and returns them with the snapshots that stay in the current tail.
func Coalesce(current []models.Snapshot, cutoff time.Time) ([]models.CoalescedRange, []models.Snapshot) {
	byEntity := make(map[models.EntityKey][]models.Snapshot)
	var keep []models.Snapshot
	for _, s := range current {
		if s.TS.Before(cutoff) {
			byEntity[s.Entity] = append(byEntity[s.Entity], s)
			continue
		}
		keep = append(keep, s)
	}

	keys := make([]models.EntityKey, 0, len(byEntity))
	for k := range byEntity {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	ranges := make([]models.CoalescedRange, 0, len(keys))
	for _, k := range keys {
		records := byEntity[k]
		slices.SortStableFunc(records, func(a, b models.Snapshot) int {
			return a.TS.Compare(b.TS)
		})
		ranges = append(ranges, models.CoalescedRange{
			Entity:  k,
			Lower:   records[0].TS,
			Upper:   records[len(records)-1].TS,
			Records: records,
		})
	}
	return ranges, keep
}

func compareKeys(a, b models.EntityKey) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
