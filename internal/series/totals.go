package series

import (
	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/sampling"
)

// StatementTotals computes the grid values of a statements partition from
// the sum of its clamped consecutive deltas. Block counters are returned in bytes.
func StatementTotals(part []models.Snapshot, opts sampling.DeltaOptions, n *sampling.Normalizer, blockSize float64) map[string]float64 {
	total := func(counter string) float64 {
		return sampling.Total(part, counter, opts)
	}
	calls := total(models.CounterCalls)
	runtime := total(models.CounterRuntime)
	readTime := total(models.CounterBlkReadTime)
	writeTime := total(models.CounterBlkWriteTime)

	return map[string]float64{
		"calls":               calls,
		"runtime":             runtime,
		"avg_runtime":         Round2(n.RatioOf(runtime, calls)),
		"blks_read_time":      readTime,
		"blks_write_time":     writeTime,
		"io_time":             Round2(readTime + writeTime),
		"shared_blks_read":    total(models.CounterSharedBlksRead) * blockSize,
		"shared_blks_hit":     total(models.CounterSharedBlksHit) * blockSize,
		"shared_blks_dirtied": total(models.CounterSharedBlksDirtied) * blockSize,
		"shared_blks_written": total(models.CounterSharedBlksWritten) * blockSize,
		"temp_blks_read":      total(models.CounterTempBlksRead) * blockSize,
		"temp_blks_written":   total(models.CounterTempBlksWritten) * blockSize,
	}
}

// WaitTotals computes the grid values of a wait event partition.
func WaitTotals(part []models.Snapshot, opts sampling.DeltaOptions) map[string]float64 {
	return map[string]float64{
		"counts": sampling.Total(part, models.CounterCount, opts),
	}
}
