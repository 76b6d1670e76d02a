// Package series turns sample intervals into records, joins extension
// records onto base records and assembles the final outputs.
package series

import (
	"math"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/sampling"
)

// DefaultBlockSize is the engine block size in bytes when the server does not report one.
const DefaultBlockSize = 8192

// Deriver computes the output values of one interval.
type Deriver func(iv models.SampleInterval) map[string]float64

// Statements derives the overview values of a statements interval.
func Statements(n *sampling.Normalizer, blockSize float64) Deriver {
	return func(iv models.SampleInterval) map[string]float64 {
		return map[string]float64{
			"calls":           n.PerSecond(iv, models.CounterCalls),
			"load":            n.PerSecond(iv, models.CounterRuntime),
			"avg_runtime":     n.Ratio(iv, models.CounterRuntime, models.CounterCalls),
			"total_blks_read": n.Scaled(iv, models.CounterSharedBlksRead, blockSize),
			"total_blks_hit":  n.Scaled(iv, models.CounterSharedBlksHit, blockSize),
		}
	}
}

// Kcache derives the system values of a kcache interval. total_sys_hit
// depends on the base record and is filled in by KcacheJoin.
func Kcache(n *sampling.Normalizer) Deriver {
	return func(iv models.SampleInterval) map[string]float64 {
		return map[string]float64{
			"total_disk_read": n.PerSecond(iv, models.CounterReads),
			"minflts":         n.PerSecond(iv, models.CounterMinflts),
			"majflts":         n.PerSecond(iv, models.CounterMajflts),
			"nvcsws":          n.PerSecond(iv, models.CounterNvcsws),
			"nivcsws":         n.PerSecond(iv, models.CounterNivcsws),
		}
	}
}

// Waits derives per second wait counts for the fields of a vocabulary.
func Waits(n *sampling.Normalizer, fields models.FieldSet) Deriver {
	return func(iv models.SampleInterval) map[string]float64 {
		out := make(map[string]float64, len(fields))
		for _, f := range fields {
			out[f.Name] = n.PerSecond(iv, f.Name)
		}
		return out
	}
}

// Records applies derive to every interval, in order.
func Records(intervals []models.SampleInterval, derive Deriver) []models.Record {
	out := make([]models.Record, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, models.Record{TS: iv.TS, Values: derive(iv)})
	}
	return out
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
