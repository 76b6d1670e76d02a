package models

import "time"

// Family is a counter family, i.e. one source table/extension.
type Family string

// Counter families.
const (
	FamilyStatements Family = "statements" // pg_stat_statements counters.
	FamilyKcache     Family = "kcache"     // pg_stat_kcache system counters.
	FamilyWaits      Family = "waits"      // pg_wait_sampling event counts.
)

// Statement counters.
const (
	CounterCalls             = "calls"
	CounterRuntime           = "runtime"
	CounterRows              = "rows"
	CounterSharedBlksRead    = "shared_blks_read"
	CounterSharedBlksHit     = "shared_blks_hit"
	CounterSharedBlksDirtied = "shared_blks_dirtied"
	CounterSharedBlksWritten = "shared_blks_written"
	CounterLocalBlksRead     = "local_blks_read"
	CounterLocalBlksHit      = "local_blks_hit"
	CounterLocalBlksDirtied  = "local_blks_dirtied"
	CounterLocalBlksWritten  = "local_blks_written"
	CounterTempBlksRead      = "temp_blks_read"
	CounterTempBlksWritten   = "temp_blks_written"
	CounterBlkReadTime       = "blk_read_time"
	CounterBlkWriteTime      = "blk_write_time"
)

// Kcache counters. reads and writes are bytes.
const (
	CounterReads      = "reads"
	CounterWrites     = "writes"
	CounterUserTime   = "user_time"
	CounterSystemTime = "system_time"
	CounterMinflts    = "minflts"
	CounterMajflts    = "majflts"
	CounterNvcsws     = "nvcsws"
	CounterNivcsws    = "nivcsws"
)

// CounterCount is the single counter of a wait-event snapshot.
const CounterCount = "count"

// Snapshot is a point-in-time reading of cumulative counters for one entity.
type Snapshot struct {
	Entity   EntityKey          `json:"entity"`   // Observed entity.
	TS       time.Time          `json:"ts"`       // Observation time.
	Counters map[string]float64 `json:"counters"` // Cumulative, non-negative counter values.
}

// CoalescedRange is a closed interval of snapshots compacted into one storage unit.
type CoalescedRange struct {
	Entity  EntityKey  `json:"entity"`
	Lower   time.Time  `json:"lower"`
	Upper   time.Time  `json:"upper"`
	Records []Snapshot `json:"records"`
}

// Overlaps reports whether the range intersects the closed window [from, to].
func (r CoalescedRange) Overlaps(from, to time.Time) bool {
	return !r.Upper.Before(from) && !r.Lower.After(to)
}

// SampleInterval pairs a selected snapshot with its immediate successor.
type SampleInterval struct {
	Entity  EntityKey          `json:"entity"`
	TS      time.Time          `json:"ts"`
	Elapsed float64            `json:"elapsed"` // Seconds between the pair.
	Deltas  map[string]float64 `json:"deltas"`
}

// FetchRequest describes a SnapshotSource read.
type FetchRequest struct {
	Family       Family
	Scope        Scope
	ServerID     int
	From         time.Time
	To           time.Time
	SampleBudget int
}
