package sampling

import (
	"testing"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func series(entity models.EntityKey, step time.Duration, counter string, values ...float64) []models.Snapshot {
	out := make([]models.Snapshot, len(values))
	for i, v := range values {
		out[i] = models.Snapshot{
			Entity:   entity,
			TS:       base.Add(time.Duration(i) * step),
			Counters: map[string]float64{counter: v},
		}
	}
	return out
}

func TestLead_MonotonicCounter(t *testing.T) {
	key := models.EntityKey{ServerID: 1}
	part := series(key, 10*time.Second, models.CounterCalls, 10, 20, 40, 40, 70)

	selected, stride := Downsample(len(part), 100)
	require.Equal(t, 1, stride)

	intervals, resets := Lead(part, selected, DeltaOptions{})
	require.Len(t, intervals, 4)
	assert.Zero(t, resets)

	n := NewNormalizer()
	wantDeltas := []float64{10, 20, 0, 30}
	wantRates := []float64{1, 2, 0, 3}
	for i, iv := range intervals {
		assert.Equal(t, part[i].TS, iv.TS)
		assert.Equal(t, 10.0, iv.Elapsed)
		assert.Equal(t, wantDeltas[i], iv.Deltas[models.CounterCalls])
		assert.Equal(t, wantRates[i], n.PerSecond(iv, models.CounterCalls))
	}
}

func TestLead_CounterReset(t *testing.T) {
	key := models.EntityKey{ServerID: 1}
	part := series(key, 10*time.Second, models.CounterCalls, 100, 20)

	intervals, resets := Lead(part, []int{0, 1}, DeltaOptions{})
	require.Len(t, intervals, 1)
	assert.Equal(t, 1, resets)
	assert.Equal(t, 0.0, intervals[0].Deltas[models.CounterCalls])
	assert.Equal(t, 0.0, NewNormalizer().PerSecond(intervals[0], models.CounterCalls))
}

func TestLead_PairsWithRawSuccessor(t *testing.T) {
	key := models.EntityKey{ServerID: 1}
	part := series(key, time.Second, models.CounterCalls, 0, 1, 3, 6, 10, 15)

	intervals, _ := Lead(part, []int{1, 3, 5}, DeltaOptions{})
	require.Len(t, intervals, 2)
	assert.Equal(t, 2.0, intervals[0].Deltas[models.CounterCalls])
	assert.Equal(t, 4.0, intervals[1].Deltas[models.CounterCalls])
	assert.Equal(t, 1.0, intervals[1].Elapsed)
}

func TestLead_SinglePoint(t *testing.T) {
	part := series(models.EntityKey{ServerID: 1}, time.Second, models.CounterCalls, 5)
	intervals, _ := Lead(part, []int{0}, DeltaOptions{})
	assert.Empty(t, intervals)
}

func TestDiff(t *testing.T) {
	key := models.EntityKey{ServerID: 1, Database: "db"}

	tests := []struct {
		name        string
		cur, next   models.Snapshot
		opts        DeltaOptions
		wantDeltas  map[string]float64
		wantElapsed float64
		wantResets  int
	}{
		{
			name:        "zero elapsed",
			cur:         models.Snapshot{Entity: key, TS: base, Counters: map[string]float64{"calls": 1}},
			next:        models.Snapshot{Entity: key, TS: base, Counters: map[string]float64{"calls": 3}},
			wantDeltas:  map[string]float64{"calls": 2},
			wantElapsed: 0,
		},
		{
			name:        "min interval applied",
			cur:         models.Snapshot{Entity: key, TS: base, Counters: map[string]float64{"calls": 1}},
			next:        models.Snapshot{Entity: key, TS: base.Add(time.Second), Counters: map[string]float64{"calls": 3}},
			opts:        DeltaOptions{MinInterval: 5 * time.Second},
			wantDeltas:  map[string]float64{"calls": 2},
			wantElapsed: 5,
		},
		{
			name:        "counter missing on one side reports floor",
			cur:         models.Snapshot{Entity: key, TS: base, Counters: map[string]float64{"calls": 1, "count_lock": 4}},
			next:        models.Snapshot{Entity: key, TS: base.Add(2 * time.Second), Counters: map[string]float64{"calls": 3, "count_io": 7}},
			wantDeltas:  map[string]float64{"calls": 2, "count_lock": 0, "count_io": 0},
			wantElapsed: 2,
		},
		{
			name:        "reset floor",
			cur:         models.Snapshot{Entity: key, TS: base, Counters: map[string]float64{"calls": 10}},
			next:        models.Snapshot{Entity: key, TS: base.Add(time.Second), Counters: map[string]float64{"calls": 2}},
			opts:        DeltaOptions{ResetFloor: -1},
			wantDeltas:  map[string]float64{"calls": -1},
			wantElapsed: 1,
			wantResets:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, resets := Diff(tt.cur, tt.next, tt.opts)
			assert.Equal(t, tt.wantDeltas, iv.Deltas)
			assert.Equal(t, tt.wantElapsed, iv.Elapsed)
			assert.Equal(t, tt.wantResets, resets)
			assert.Equal(t, tt.cur.TS, iv.TS)
			assert.Equal(t, key, iv.Entity)
		})
	}
}

func TestTotal(t *testing.T) {
	key := models.EntityKey{ServerID: 1}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := func(sec int, counters map[string]float64) models.Snapshot {
		return models.Snapshot{Entity: key, TS: t0.Add(time.Duration(sec) * time.Second), Counters: counters}
	}
	resets := series(key, time.Second, models.CounterCalls, 10, 20, 5, 15)

	tests := []struct {
		name      string
		partition []models.Snapshot
		counter   string
		opts      DeltaOptions
		want      float64
	}{
		{name: "resets clamp to the floor", partition: resets, counter: models.CounterCalls, want: 20},
		{name: "single snapshot", partition: resets[:1], counter: models.CounterCalls, want: 0},
		{
			name: "counter appears mid partition",
			partition: []models.Snapshot{
				snap(0, map[string]float64{"calls": 10}),
				snap(10, map[string]float64{"calls": 13, "runtime": 5000}),
			},
			counter: "runtime",
			want:    0,
		},
		{
			name: "counter disappears mid partition",
			partition: []models.Snapshot{
				snap(0, map[string]float64{"calls": 10, "runtime": 5000}),
				snap(10, map[string]float64{"calls": 13}),
				snap(20, map[string]float64{"calls": 15}),
			},
			counter: "runtime",
			opts:    DeltaOptions{ResetFloor: -1},
			want:    -2,
		},
		{
			name: "present pairs still count",
			partition: []models.Snapshot{
				snap(0, map[string]float64{"calls": 10}),
				snap(10, map[string]float64{"calls": 13, "runtime": 5000}),
				snap(20, map[string]float64{"calls": 15, "runtime": 5600}),
			},
			counter: "runtime",
			want:    600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.partition, tt.counter, tt.opts))
		})
	}
}

func TestActive(t *testing.T) {
	key := models.EntityKey{ServerID: 1}
	assert.True(t, Active(series(key, time.Second, "calls", 1, 1, 2), "calls"))
	assert.False(t, Active(series(key, time.Second, "calls", 3, 3, 3), "calls"))
	assert.False(t, Active(nil, "calls"))

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := []models.Snapshot{
		{Entity: key, TS: t0, Counters: map[string]float64{"calls": 1}},
		{Entity: key, TS: t0.Add(time.Second), Counters: map[string]float64{"calls": 2, "runtime": 40}},
	}
	assert.False(t, Active(late, "runtime"))
}
