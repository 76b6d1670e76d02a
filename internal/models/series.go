package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Field types understood by the presentation layer.
const (
	FieldNumber   = "number"
	FieldDuration = "duration"
	FieldSize     = "size"
	FieldSizeRate = "sizerate"
)

// FieldDef describes one output field.
type FieldDef struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Type       string `json:"type,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Descending bool   `json:"descending,omitempty"` // Ranking field of a grid.
}

// FieldSet is an ordered list of field definitions.
type FieldSet []FieldDef

// Names returns the field names in order.
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name)
	}
	return names
}

// Has reports whether the set contains a field.
func (fs FieldSet) Has(name string) bool {
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Record is one row of a MetricSeries.
type Record struct {
	TS     time.Time
	Values map[string]float64
}

// MarshalJSON flattens the record into {"ts": epoch, "<field>": value}.
// Fields that are not in Values are absent, never null.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		out[k] = v
	}
	out["ts"] = float64(r.TS.UnixNano()) / float64(time.Second)
	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts := raw["ts"]
	delete(raw, "ts")
	sec := int64(ts)
	r.TS = time.Unix(sec, int64((ts-float64(sec))*float64(time.Second))).UTC()
	r.Values = raw
	return nil
}

// MetricSeries is the time-ordered output of a series request.
type MetricSeries struct {
	Group   string    `json:"group"`
	Entity  EntityKey `json:"entity"`
	Fields  FieldSet  `json:"fields"`
	Records []Record  `json:"data"`
}

// SortRecords orders the records by timestamp ascending.
func (s *MetricSeries) SortRecords() {
	sort.SliceStable(s.Records, func(i, j int) bool {
		return s.Records[i].TS.Before(s.Records[j].TS)
	})
}

// RankingRow is one row of a grid.
type RankingRow struct {
	Entity EntityKey          `json:"entity"`
	Query  string             `json:"query,omitempty"` // Text of query level rows.
	Values map[string]float64 `json:"values"`
}

// Ranking is the grid output, ordered by its ranking field.
type Ranking struct {
	Group  string       `json:"group"`
	Fields FieldSet     `json:"fields"`
	Rows   []RankingRow `json:"data"`
}

// SeriesRequest is the input of GetSeries.
type SeriesRequest struct {
	Group    string
	Scope    Scope
	ServerID int
	From     time.Time
	To       time.Time
}

// RankingRequest is the input of GetRanking.
type RankingRequest struct {
	Group    string
	Scope    Scope
	ServerID int
	From     time.Time
	To       time.Time
}
