package db

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

func toSnapshot(row map[string]any, counters []string) (models.Snapshot, error) {
	var (
		snap models.Snapshot
		err  error
		srv  int64
	)
	if srv, err = asInt64(row["srvid"]); err != nil {
		return snap, fmt.Errorf("srvid: %w", err)
	}
	if snap.Entity.QueryID, err = asInt64(row["queryid"]); err != nil {
		return snap, fmt.Errorf("queryid: %w", err)
	}
	if snap.TS, err = asTime(row["ts"]); err != nil {
		return snap, fmt.Errorf("ts: %w", err)
	}
	snap.Entity.ServerID = int(srv)
	snap.Entity.Database = asString(row["datname"])
	snap.Entity.EventType = asString(row["event_type"])
	snap.Entity.Event = asString(row["event"])

	snap.Counters = make(map[string]float64, len(counters))
	for _, c := range counters {
		v, err := asFloat64(row[c])
		if err != nil {
			return snap, fmt.Errorf("%s: %w", c, err)
		}
		snap.Counters[c] = v
	}
	return snap, nil
}

func asInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	case string:
		return strconv.ParseInt(x, 10, 64)
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}

func asFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case []byte:
		return strconv.ParseFloat(string(x), 64)
	case string:
		return strconv.ParseFloat(x, 64)
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}

func asTime(v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unexpected type %T", v)
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	}
	return ""
}
