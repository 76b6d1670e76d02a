package db

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// familyTable maps a counter family onto its history tables.
type familyTable struct {
	history  string   // Coalesced ranges, one jsonb array of records per row.
	current  string   // Flat current tail.
	events   bool     // Rows are keyed by wait event as well.
	counters []string // Counter columns.
}

var familyTables = map[models.Family]familyTable{
	models.FamilyStatements: {
		history: "powa_statements_history",
		current: "powa_statements_history_current",
		counters: []string{
			models.CounterCalls, models.CounterRuntime, models.CounterRows,
			models.CounterSharedBlksRead, models.CounterSharedBlksHit,
			models.CounterSharedBlksDirtied, models.CounterSharedBlksWritten,
			models.CounterLocalBlksRead, models.CounterLocalBlksHit,
			models.CounterLocalBlksDirtied, models.CounterLocalBlksWritten,
			models.CounterTempBlksRead, models.CounterTempBlksWritten,
			models.CounterBlkReadTime, models.CounterBlkWriteTime,
		},
	},
	models.FamilyKcache: {
		history: "powa_kcache_metrics_history",
		current: "powa_kcache_metrics_history_current",
		counters: []string{
			models.CounterReads, models.CounterWrites,
			models.CounterUserTime, models.CounterSystemTime,
			models.CounterMinflts, models.CounterMajflts,
			models.CounterNvcsws, models.CounterNivcsws,
		},
	},
	models.FamilyWaits: {
		history:  "powa_wait_sampling_history",
		current:  "powa_wait_sampling_history_current",
		events:   true,
		counters: []string{models.CounterCount},
	},
}

func (t familyTable) keyColumns() string {
	if t.events {
		return ", event_type, event"
	}
	return ""
}

func (t familyTable) eventSelect(alias string) string {
	if t.events {
		return fmt.Sprintf("%[1]s.event_type, %[1]s.event", alias)
	}
	return "'' AS event_type, '' AS event"
}

func (t familyTable) counterSelect(alias string) string {
	cols := make([]string, len(t.counters))
	for i, c := range t.counters {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func (t familyTable) recordDefinition() string {
	cols := make([]string, len(t.counters))
	for i, c := range t.counters {
		cols[i] = c + " double precision"
	}
	return "ts timestamptz, " + strings.Join(cols, ", ")
}

const scopeFilter = `
	  AND ($4::text = '' OR d.datname = $4::text)
	  AND ($5::bigint = 0 OR %[1]s.queryid = $5::bigint)`

func (t familyTable) historyQuery() string {
	return fmt.Sprintf(`
	SELECT h.srvid, d.datname, h.queryid, %[1]s,
	       lower(h.coalesce_range) AS range_lower,
	       upper(h.coalesce_range) AS range_upper,
	       r.ts, %[2]s
	FROM %[3]s h
	JOIN powa_databases d ON d.srvid = h.srvid AND d.oid = h.dbid
	CROSS JOIN LATERAL jsonb_to_recordset(h.records) AS r(%[4]s)
	WHERE h.srvid = $1
	  AND h.coalesce_range && tstzrange($2::timestamptz, $3::timestamptz, '[]')`+
		fmt.Sprintf(scopeFilter, "h")+`
	ORDER BY range_lower, r.ts`,
		t.eventSelect("h"), t.counterSelect("r"), t.history, t.recordDefinition())
}

func (t familyTable) currentQuery() string {
	return fmt.Sprintf(`
	SELECT c.srvid, d.datname, c.queryid, %[1]s, c.ts, %[2]s
	FROM %[3]s c
	JOIN powa_databases d ON d.srvid = c.srvid AND d.oid = c.dbid
	WHERE c.srvid = $1
	  AND c.ts BETWEEN $2::timestamptz AND $3::timestamptz`+
		fmt.Sprintf(scopeFilter, "c")+`
	ORDER BY c.ts`,
		t.eventSelect("c"), t.counterSelect("c"), t.current)
}

func (t familyTable) coalesceQuery() string {
	return fmt.Sprintf(`
	WITH moved AS (
		DELETE FROM %[2]s WHERE ts < $1 RETURNING *
	)
	INSERT INTO %[1]s (srvid, dbid, queryid%[3]s, coalesce_range, records)
	SELECT srvid, dbid, queryid%[3]s,
	       tstzrange(min(ts), max(ts), '[]'),
	       jsonb_agg(to_jsonb(moved) ORDER BY ts)
	FROM moved
	GROUP BY srvid, dbid, queryid%[3]s`,
		t.history, t.current, t.keyColumns())
}
