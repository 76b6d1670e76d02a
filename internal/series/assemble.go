package series

import (
	"slices"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Assemble builds a series restricted to fields and ordered by timestamp.
func Assemble(group string, entity models.EntityKey, fields models.FieldSet, records []models.Record) *models.MetricSeries {
	out := &models.MetricSeries{
		Group:   group,
		Entity:  entity,
		Fields:  fields,
		Records: make([]models.Record, 0, len(records)),
	}
	for _, r := range records {
		values := make(map[string]float64, len(fields))
		for _, f := range fields {
			if v, ok := r.Values[f.Name]; ok {
				values[f.Name] = v
			}
		}
		out.Records = append(out.Records, models.Record{TS: r.TS, Values: values})
	}
	out.SortRecords()
	return out
}

// Rank builds a grid restricted to fields and ordered by rankBy descending,
// ties broken by entity.
func Rank(group string, fields models.FieldSet, rows []models.RankingRow, rankBy string) *models.Ranking {
	sorted := make([]models.RankingRow, 0, len(rows))
	for _, r := range rows {
		values := make(map[string]float64, len(fields))
		for _, f := range fields {
			values[f.Name] = r.Values[f.Name]
		}
		sorted = append(sorted, models.RankingRow{Entity: r.Entity, Query: r.Query, Values: values})
	}
	slices.SortStableFunc(sorted, func(a, b models.RankingRow) int {
		av, bv := a.Values[rankBy], b.Values[rankBy]
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		case a.Entity.Less(b.Entity):
			return -1
		case b.Entity.Less(a.Entity):
			return 1
		}
		return 0
	})
	return &models.Ranking{Group: group, Fields: fields, Rows: sorted}
}
