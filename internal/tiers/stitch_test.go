package tiers

import (
	"slices"
	"testing"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func snap(k models.EntityKey, sec int, calls float64) models.Snapshot {
	return models.Snapshot{
		Entity:   k,
		TS:       t0.Add(time.Duration(sec) * time.Second),
		Counters: map[string]float64{models.CounterCalls: calls},
	}
}

func TestStitch(t *testing.T) {
	a := models.EntityKey{ServerID: 1, Database: "a"}
	b := models.EntityKey{ServerID: 1, Database: "b"}

	historical := []models.CoalescedRange{
		{Entity: a, Lower: t0, Upper: t0.Add(20 * time.Second), Records: []models.Snapshot{
			snap(a, 0, 1), snap(a, 10, 2), snap(a, 20, 3),
		}},
		{Entity: b, Lower: t0.Add(-time.Hour), Upper: t0.Add(-time.Minute), Records: []models.Snapshot{
			snap(b, -3600, 100),
		}},
	}
	current := []models.Snapshot{
		snap(b, 30, 9),
		snap(a, 30, 4),
		snap(a, 20, 999),
		snap(a, 500, 5),
	}

	got := slices.Collect(Stitch(historical, current, t0, t0.Add(60*time.Second)))

	require.Len(t, got, 5)
	assert.Equal(t, []float64{1, 2, 3, 4, 9}, []float64{
		got[0].Counters["calls"], got[1].Counters["calls"], got[2].Counters["calls"],
		got[3].Counters["calls"], got[4].Counters["calls"],
	})
	assert.Equal(t, a, got[3].Entity)
	assert.Equal(t, b, got[4].Entity)
}

func TestStitch_ClosedWindowAndEarlyStop(t *testing.T) {
	k := models.EntityKey{ServerID: 1}
	current := []models.Snapshot{snap(k, 0, 1), snap(k, 10, 2), snap(k, 20, 3)}

	got := slices.Collect(Stitch(nil, current, t0, t0.Add(20*time.Second)))
	assert.Len(t, got, 3)

	n := 0
	for range Stitch(nil, current, t0, t0.Add(20*time.Second)) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestCoalesce(t *testing.T) {
	a := models.EntityKey{ServerID: 1, Database: "a"}
	b := models.EntityKey{ServerID: 1, Database: "b"}
	current := []models.Snapshot{
		snap(b, 5, 1), snap(a, 10, 2), snap(a, 0, 1), snap(a, 60, 3),
	}

	ranges, keep := Coalesce(current, t0.Add(30*time.Second))

	require.Len(t, ranges, 2)
	assert.Equal(t, a, ranges[0].Entity)
	assert.Equal(t, t0, ranges[0].Lower)
	assert.Equal(t, t0.Add(10*time.Second), ranges[0].Upper)
	assert.Len(t, ranges[0].Records, 2)
	assert.Equal(t, b, ranges[1].Entity)
	assert.Equal(t, []models.Snapshot{snap(a, 60, 3)}, keep)
}

func TestCoalesce_ThenStitchIsLossless(t *testing.T) {
	k := models.EntityKey{ServerID: 1}
	var current []models.Snapshot
	for i := 0; i < 10; i++ {
		current = append(current, snap(k, i*10, float64(i)))
	}

	ranges, keep := Coalesce(current, t0.Add(45*time.Second))
	got := slices.Collect(Stitch(ranges, keep, t0, t0.Add(time.Hour)))

	assert.Equal(t, current, got)
}
