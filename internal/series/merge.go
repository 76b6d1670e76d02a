package series

import (
	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Join describes how extension records widen base records.
type Join struct {
	Fields models.FieldSet
	// Derive, when set, computes fields that need both sides of a matched pair.
	Derive func(base, ext map[string]float64)
}

// KcacheJoin joins kcache records and computes total_sys_hit as the shared
// buffer misses that were not read from disk.
func KcacheJoin(fields models.FieldSet) Join {
	return Join{
		Fields: fields,
		Derive: func(base, ext map[string]float64) {
			base["total_sys_hit"] = base["total_blks_read"] - ext["total_disk_read"]
		},
	}
}

// WaitsJoin joins wait records.
func WaitsJoin(fields models.FieldSet) Join {
	return Join{Fields: fields}
}

// Merge joins ext onto base by exact timestamp. Every field of the join is
// set on every base record: matched records take the extension values,
// records without a match get zero.
func Merge(base, ext []models.Record, j Join) []models.Record {
	byTS := make(map[int64]map[string]float64, len(ext))
	for _, r := range ext {
		byTS[r.TS.UnixNano()] = r.Values
	}

	out := make([]models.Record, 0, len(base))
	for _, r := range base {
		values := make(map[string]float64, len(r.Values)+len(j.Fields))
		for k, v := range r.Values {
			values[k] = v
		}
		match, ok := byTS[r.TS.UnixNano()]
		for _, f := range j.Fields {
			values[f.Name] = 0
			if ok {
				values[f.Name] = match[f.Name]
			}
		}
		if ok && j.Derive != nil {
			j.Derive(values, match)
		}
		out = append(out, models.Record{TS: r.TS, Values: values})
	}
	return out
}
