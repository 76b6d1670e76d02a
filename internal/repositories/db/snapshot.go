package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/tiers"
)

// SnapshotRepository reads snapshots and server capabilities from the
// PostgreSQL history tables.
type SnapshotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSnapshotRepository creates a SnapshotRepository over db.
func NewSnapshotRepository(db *sqlx.DB, logger *zap.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, logger: logger}
}

// FetchSnapshots reads both tiers of a family and stitches them together.
func (r *SnapshotRepository) FetchSnapshots(
	ctx context.Context,
	req models.FetchRequest,
) (iter.Seq[models.Snapshot], error) {
	t, ok := familyTables[req.Family]
	if !ok {
		return nil, fmt.Errorf("family %q: %w", req.Family, models.ErrNotAvailable)
	}

	args := []any{req.ServerID, req.From, req.To, req.Scope.Database, req.Scope.QueryID}

	ranges, err := r.fetchHistory(ctx, t, args)
	if err != nil {
		r.logger.Error("history query failed", zap.String("table", t.history), zap.Error(err))
		return nil, err
	}
	current, err := r.fetchCurrent(ctx, t, args)
	if err != nil {
		r.logger.Error("current query failed", zap.String("table", t.current), zap.Error(err))
		return nil, err
	}

	r.logger.Debug("snapshots fetched",
		zap.String("family", string(req.Family)),
		zap.Int("srvid", req.ServerID),
		zap.Int("ranges", len(ranges)),
		zap.Int("current", len(current)),
	)

	seq := tiers.Stitch(ranges, current, req.From, req.To)
	for range seq {
		return seq, nil
	}
	return nil, fmt.Errorf("%s snapshots of server %d: %w", req.Family, req.ServerID, models.ErrNotAvailable)
}

func (r *SnapshotRepository) fetchHistory(
	ctx context.Context,
	t familyTable,
	args []any,
) ([]models.CoalescedRange, error) {
	rows, err := r.db.QueryxContext(ctx, t.historyQuery(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type rangeKey struct {
		entity models.EntityKey
		lower  int64
	}
	index := make(map[rangeKey]int)
	var ranges []models.CoalescedRange

	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		snap, err := toSnapshot(row, t.counters)
		if err != nil {
			return nil, err
		}
		lower, err := asTime(row["range_lower"])
		if err != nil {
			return nil, err
		}
		upper, err := asTime(row["range_upper"])
		if err != nil {
			return nil, err
		}

		key := rangeKey{entity: snap.Entity, lower: lower.UnixNano()}
		i, ok := index[key]
		if !ok {
			i = len(ranges)
			index[key] = i
			ranges = append(ranges, models.CoalescedRange{Entity: snap.Entity, Lower: lower, Upper: upper})
		}
		ranges[i].Records = append(ranges[i].Records, snap)
	}
	return ranges, rows.Err()
}

func (r *SnapshotRepository) fetchCurrent(
	ctx context.Context,
	t familyTable,
	args []any,
) ([]models.Snapshot, error) {
	rows, err := r.db.QueryxContext(ctx, t.currentQuery(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []models.Snapshot
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		snap, err := toSnapshot(row, t.counters)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

type serverRow struct {
	ID         int `db:"id"`
	VersionNum int `db:"version_num"`
}

// DetectCapabilities reads a server's engine version and enabled extensions.
func (r *SnapshotRepository) DetectCapabilities(
	ctx context.Context,
	serverID int,
) (models.CapabilitySet, error) {
	var srv serverRow
	err := r.db.GetContext(ctx, &srv, `
		SELECT id, version_num
		FROM powa_servers
		WHERE id = $1
	`, serverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CapabilitySet{}, fmt.Errorf("server %d: %w", serverID, models.ErrNotAvailable)
		}
		return models.CapabilitySet{}, err
	}

	var exts []string
	err = r.db.SelectContext(ctx, &exts, `
		SELECT extname
		FROM powa_extensions
		WHERE srvid = $1 AND enabled
		ORDER BY extname
	`, serverID)
	if err != nil {
		return models.CapabilitySet{}, err
	}

	caps := models.CapabilitySet{
		ServerID:   srv.ID,
		VersionNum: srv.VersionNum,
		Extensions: make(map[string]bool, len(exts)),
	}
	for _, e := range exts {
		caps.Extensions[e] = true
	}
	return caps, nil
}

// QueryTexts returns the texts of the server's queries, restricted to one
// database unless database is empty.
func (r *SnapshotRepository) QueryTexts(
	ctx context.Context,
	serverID int,
	database string,
) (map[models.EntityKey]string, error) {
	var rows []models.StatementText
	err := r.db.SelectContext(ctx, &rows, `
		SELECT s.srvid, d.datname, s.queryid, s.query
		FROM powa_statements s
		JOIN powa_databases d ON d.srvid = s.srvid AND d.oid = s.dbid
		WHERE s.srvid = $1
		  AND ($2::text = '' OR d.datname = $2::text)
	`, serverID, database)
	if err != nil {
		r.logger.Error("query text lookup failed", zap.Int("srvid", serverID), zap.Error(err))
		return nil, err
	}

	out := make(map[models.EntityKey]string, len(rows))
	for _, st := range rows {
		out[st.Key()] = st.Query
	}
	return out, nil
}

// Coalesce moves current rows older than cutoff into history ranges, one
// range per entity and family, and returns the number of ranges created.
func (r *SnapshotRepository) Coalesce(ctx context.Context, cutoff time.Time) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	created := 0
	for family, t := range familyTables {
		res, err := tx.ExecContext(ctx, t.coalesceQuery(), cutoff)
		if err != nil {
			r.logger.Error("coalesce failed", zap.String("family", string(family)), zap.Error(err))
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

// Ping checks the database connection.
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
