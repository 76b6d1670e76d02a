package memory

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/tiers"
)

// SnapshotRepository keeps snapshots in two tiers per family: coalesced
// historical ranges and the current tail.
type SnapshotRepository struct {
	mu         sync.RWMutex
	historical map[models.Family][]models.CoalescedRange
	current    map[models.Family][]models.Snapshot
	servers    map[int]models.CapabilitySet
	statements map[models.EntityKey]string
}

// NewSnapshotRepository creates an empty SnapshotRepository.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		historical: make(map[models.Family][]models.CoalescedRange),
		current:    make(map[models.Family][]models.Snapshot),
		servers:    make(map[int]models.CapabilitySet),
		statements: make(map[models.EntityKey]string),
	}
}

// Save appends snapshots of a family to the current tail.
func (r *SnapshotRepository) Save(
	ctx context.Context,
	family models.Family,
	snaps ...models.Snapshot,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current[family] = append(r.current[family], snaps...)
	return nil
}

// SaveServer registers or replaces what a server provides.
func (r *SnapshotRepository) SaveServer(
	ctx context.Context,
	caps models.CapabilitySet,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.servers[caps.ServerID] = caps
	return nil
}

// SaveStatement registers or replaces the text of a query.
func (r *SnapshotRepository) SaveStatement(
	ctx context.Context,
	st models.StatementText,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statements[st.Key()] = st.Query
	return nil
}

// QueryTexts returns the texts of the server's queries, restricted to one
// database unless database is empty.
func (r *SnapshotRepository) QueryTexts(
	ctx context.Context,
	serverID int,
	database string,
) (map[models.EntityKey]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.EntityKey]string)
	for k, q := range r.statements {
		if k.ServerID == serverID && (database == "" || k.Database == database) {
			out[k] = q
		}
	}
	return out, nil
}

// FetchSnapshots returns the snapshots of both tiers matching the request.
func (r *SnapshotRepository) FetchSnapshots(
	ctx context.Context,
	req models.FetchRequest,
) (iter.Seq[models.Snapshot], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match := func(k models.EntityKey) bool {
		return k.ServerID == req.ServerID && req.Scope.Matches(k)
	}

	var ranges []models.CoalescedRange
	for _, cr := range r.historical[req.Family] {
		if match(cr.Entity) && cr.Overlaps(req.From, req.To) {
			ranges = append(ranges, cr)
		}
	}
	var tail []models.Snapshot
	for _, s := range r.current[req.Family] {
		if match(s.Entity) {
			tail = append(tail, s)
		}
	}

	seq := tiers.Stitch(ranges, tail, req.From, req.To)
	for range seq {
		return seq, nil
	}
	return nil, fmt.Errorf("%s snapshots of server %d: %w", req.Family, req.ServerID, models.ErrNotAvailable)
}

// DetectCapabilities returns what a registered server provides.
func (r *SnapshotRepository) DetectCapabilities(
	ctx context.Context,
	serverID int,
) (models.CapabilitySet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, ok := r.servers[serverID]
	if !ok {
		return models.CapabilitySet{}, fmt.Errorf("server %d: %w", serverID, models.ErrNotAvailable)
	}
	exts := make(map[string]bool, len(caps.Extensions))
	for k, v := range caps.Extensions {
		exts[k] = v
	}
	caps.Extensions = exts
	return caps, nil
}

// Coalesce moves snapshots taken before cutoff from the current tail into
// historical ranges and returns the number of ranges created.
func (r *SnapshotRepository) Coalesce(
	ctx context.Context,
	cutoff time.Time,
) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := 0
	for family, tail := range r.current {
		ranges, keep := tiers.Coalesce(tail, cutoff)
		r.historical[family] = append(r.historical[family], ranges...)
		r.current[family] = keep
		created += len(ranges)
	}
	return created, nil
}

// Ping always succeeds for the in-memory store.
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
