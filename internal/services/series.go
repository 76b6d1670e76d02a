package services

//go:generate mockgen -source=series.go -destination=series_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gophpowa/internal/capabilities"
	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/sampling"
	"github.com/sbilibin2017/gophpowa/internal/schema"
	"github.com/sbilibin2017/gophpowa/internal/series"
	"github.com/sbilibin2017/gophpowa/internal/telemetry"
)

// SnapshotSource reads cumulative snapshots of one counter family.
type SnapshotSource interface {
	// FetchSnapshots returns the snapshots of the window, grouped by entity
	// and time-ordered within an entity.
	FetchSnapshots(ctx context.Context, req models.FetchRequest) (iter.Seq[models.Snapshot], error)
}

// QueryTextSource reads the normalized texts of a server's queries.
type QueryTextSource interface {
	QueryTexts(ctx context.Context, serverID int, database string) (map[models.EntityKey]string, error)
}

// CapabilityChecker answers capability questions about a server.
type CapabilityChecker interface {
	HasCapability(ctx context.Context, serverID int, name string) (bool, error)
	EngineVersion(ctx context.Context, serverID int) (int, bool, error)
}

// SeriesService builds metric series and rankings from snapshots.
type SeriesService struct {
	source     SnapshotSource
	caps       CapabilityChecker
	texts      QueryTextSource
	logger     *zap.Logger
	metrics    *telemetry.Metrics
	budget     int
	blockSize  float64
	normalizer *sampling.Normalizer
	deltaOpts  sampling.DeltaOptions
	normOpts   []sampling.NormalizerOpt
}

// SeriesOpt configures a SeriesService.
type SeriesOpt func(*SeriesService)

// WithSampleBudget sets the per entity point budget. The first non-zero value
// wins; a negative budget is kept so requests fail with ErrInvalidWindow.
func WithSampleBudget(budgets ...int) SeriesOpt {
	return func(s *SeriesService) {
		for _, b := range budgets {
			if b != 0 {
				s.budget = b
				return
			}
		}
	}
}

// WithRateFloor sets the elapsed floor, in seconds, of rate computations.
func WithRateFloor(floors ...float64) SeriesOpt {
	return func(s *SeriesService) {
		s.normOpts = append(s.normOpts, sampling.WithRateFloor(floors...))
	}
}

// WithMinInterval sets the lowest elapsed interval between two snapshots.
func WithMinInterval(d time.Duration) SeriesOpt {
	return func(s *SeriesService) {
		if d > 0 {
			s.deltaOpts.MinInterval = d
		}
	}
}

// WithBlockSize sets the engine block size in bytes. The first positive value wins.
func WithBlockSize(sizes ...int) SeriesOpt {
	return func(s *SeriesService) {
		for _, b := range sizes {
			if b > 0 {
				s.blockSize = float64(b)
				return
			}
		}
	}
}

// WithQueryTexts labels query level grid rows with their text.
func WithQueryTexts(src QueryTextSource) SeriesOpt {
	return func(s *SeriesService) {
		s.texts = src
	}
}

// WithMetrics records pipeline telemetry.
func WithMetrics(m *telemetry.Metrics) SeriesOpt {
	return func(s *SeriesService) {
		s.metrics = m
	}
}

// NewSeriesService creates a SeriesService.
func NewSeriesService(
	source SnapshotSource,
	caps CapabilityChecker,
	logger *zap.Logger,
	opts ...SeriesOpt,
) *SeriesService {
	s := &SeriesService{
		source:    source,
		caps:      caps,
		logger:    logger,
		budget:    sampling.DefaultSampleBudget,
		blockSize: series.DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.normalizer = sampling.NewNormalizer(s.normOpts...)
	return s
}

// GetSeries returns the time series of a group for one entity.
func (s *SeriesService) GetSeries(ctx context.Context, req models.SeriesRequest) (out *models.MetricSeries, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest("series", req.Group, status(err), time.Since(start)) }()

	res, err := s.resolve(ctx, req.Group, schema.KindSeries, req.ServerID, req.Scope, req.From, req.To)
	if err != nil {
		return nil, err
	}
	g := res.Group
	req.Scope.Level = g.Scope
	entity := models.EntityKey{
		ServerID: req.ServerID,
		Database: req.Scope.Database,
		QueryID:  req.Scope.QueryID,
	}.Coarsen(g.RowLevel)

	fetch := models.FetchRequest{
		Scope:        req.Scope,
		ServerID:     req.ServerID,
		From:         req.From,
		To:           req.To,
		SampleBudget: s.budget,
	}

	var base, kcache, waits sampling.Partitions
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		base, err = s.partitions(egCtx, fetch, g.Family, s.seriesProjector(g, res.Vocabulary, req.Scope))
		return err
	})
	if g.Family == models.FamilyStatements && res.Kcache {
		eg.Go(func() error {
			var err error
			kcache, err = s.optionalPartitions(egCtx, fetch, models.FamilyKcache, s.seriesProjector(g, res.Vocabulary, req.Scope))
			return err
		})
	}
	if g.Family == models.FamilyStatements && res.Waits {
		eg.Go(func() error {
			var err error
			waits, err = s.optionalPartitions(egCtx, fetch, models.FamilyWaits, s.waitProjector(g, res.Vocabulary, req.Scope))
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	part := base[entity]
	if len(part) == 0 {
		return nil, fmt.Errorf("%s for %s: %w", g.Name, entity, models.ErrNotAvailable)
	}

	selected, stride := sampling.Downsample(len(part), s.budget)
	intervals, resets := sampling.Lead(part, selected, s.deltaOpts)
	s.metrics.ObserveSampling(string(g.Family), sampling.Stats{
		Points: len(part), Selected: len(selected), Intervals: len(intervals), Resets: resets,
	})

	var derive series.Deriver
	if g.Family == models.FamilyWaits {
		derive = series.Waits(s.normalizer, res.Vocabulary.Fields)
	} else {
		derive = series.Statements(s.normalizer, s.blockSize)
	}
	records := series.Records(intervals, derive)

	if res.Kcache && g.Family == models.FamilyStatements {
		ext := s.extensionRecords(kcache[entity], stride, models.FamilyKcache, series.Kcache(s.normalizer))
		records = series.Merge(records, ext, series.KcacheJoin(kcacheFields(res.Fields)))
	}
	if res.Waits && g.Family == models.FamilyStatements {
		ext := s.extensionRecords(waits[entity], stride, models.FamilyWaits, series.Waits(s.normalizer, res.Vocabulary.Fields))
		records = series.Merge(records, ext, series.WaitsJoin(res.Vocabulary.Fields))
	}

	s.logger.Debug("series built",
		zap.String("group", g.Name),
		zap.Int("srvid", req.ServerID),
		zap.Int("points", len(part)),
		zap.Int("stride", stride),
		zap.Int("records", len(records)),
	)
	return series.Assemble(g.Name, entity, res.Fields, records), nil
}

// GetRanking returns the grid of a group.
func (s *SeriesService) GetRanking(ctx context.Context, req models.RankingRequest) (out *models.Ranking, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest("ranking", req.Group, status(err), time.Since(start)) }()

	res, err := s.resolve(ctx, req.Group, schema.KindRanking, req.ServerID, req.Scope, req.From, req.To)
	if err != nil {
		return nil, err
	}
	g := res.Group
	req.Scope.Level = g.Scope

	parts, err := s.partitions(ctx, models.FetchRequest{
		Scope:        req.Scope,
		ServerID:     req.ServerID,
		From:         req.From,
		To:           req.To,
		SampleBudget: s.budget,
	}, g.Family, rankingProjector(g, req.Scope))
	if err != nil {
		return nil, err
	}

	gate := models.CounterCalls
	if g.Family == models.FamilyWaits {
		gate = models.CounterCount
	}

	rows := make([]models.RankingRow, 0, len(parts))
	for _, key := range parts.Keys() {
		part := parts[key]
		if !sampling.Active(part, gate) {
			continue
		}
		var values map[string]float64
		if g.Family == models.FamilyWaits {
			values = series.WaitTotals(part, s.deltaOpts)
		} else {
			values = series.StatementTotals(part, s.deltaOpts, s.normalizer, s.blockSize)
		}
		rows = append(rows, models.RankingRow{Entity: key, Values: values})
	}
	if g.RowLevel == models.LevelQuery && s.texts != nil && len(rows) > 0 {
		texts, err := s.texts.QueryTexts(ctx, req.ServerID, req.Scope.Database)
		if err != nil {
			return nil, fmt.Errorf("query texts of server %d: %w", req.ServerID, err)
		}
		for i := range rows {
			rows[i].Query = texts[rows[i].Entity.Coarsen(models.LevelQuery)]
		}
	}

	s.logger.Debug("ranking built",
		zap.String("group", g.Name),
		zap.Int("srvid", req.ServerID),
		zap.Int("entities", len(parts)),
		zap.Int("rows", len(rows)),
	)
	return series.Rank(g.Name, res.Fields, rows, res.RankBy()), nil
}

func (s *SeriesService) resolve(
	ctx context.Context,
	group string,
	kind schema.Kind,
	serverID int,
	scope models.Scope,
	from, to time.Time,
) (schema.Resolved, error) {
	if to.Before(from) {
		return schema.Resolved{}, fmt.Errorf("window %s..%s: %w", from, to, models.ErrInvalidWindow)
	}
	if s.budget < 1 {
		return schema.Resolved{}, fmt.Errorf("sample budget %d: %w", s.budget, models.ErrInvalidWindow)
	}

	def, err := schema.Lookup(group)
	if err != nil {
		return schema.Resolved{}, err
	}
	if def.Kind != kind {
		return schema.Resolved{}, fmt.Errorf("%w: %q is not a %s group", models.ErrUnknownGroup, group, kind)
	}
	if err := checkScope(def.Scope, scope); err != nil {
		return schema.Resolved{}, err
	}

	ctx = capabilities.WithRequestScope(ctx)
	caps, err := s.capabilities(ctx, serverID)
	if err != nil {
		return schema.Resolved{}, err
	}
	return schema.ResolveSchema(group, caps)
}

func (s *SeriesService) capabilities(ctx context.Context, serverID int) (models.CapabilitySet, error) {
	caps := models.CapabilitySet{ServerID: serverID, Extensions: make(map[string]bool)}
	for _, ext := range []string{models.ExtensionKcache, models.ExtensionWaitSampling} {
		ok, err := s.caps.HasCapability(ctx, serverID, ext)
		if err != nil {
			return models.CapabilitySet{}, err
		}
		caps.Extensions[ext] = ok
	}
	v, known, err := s.caps.EngineVersion(ctx, serverID)
	if err != nil {
		return models.CapabilitySet{}, err
	}
	if known {
		caps.VersionNum = v
	}
	return caps, nil
}

func (s *SeriesService) partitions(
	ctx context.Context,
	req models.FetchRequest,
	family models.Family,
	project sampling.Projector,
) (sampling.Partitions, error) {
	req.Family = family
	snaps, err := s.source.FetchSnapshots(ctx, req)
	if err != nil {
		s.logger.Debug("fetch failed",
			zap.String("family", string(family)),
			zap.Int("srvid", req.ServerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch %s snapshots: %w", family, err)
	}
	return sampling.Partition(snaps, project), nil
}

// optionalPartitions treats a family without data as empty.
func (s *SeriesService) optionalPartitions(
	ctx context.Context,
	req models.FetchRequest,
	family models.Family,
	project sampling.Projector,
) (sampling.Partitions, error) {
	parts, err := s.partitions(ctx, req, family, project)
	if errors.Is(err, models.ErrNotAvailable) {
		return sampling.Partitions{}, nil
	}
	return parts, err
}

// extensionRecords samples an extension partition with the stride of its
// base partition.
func (s *SeriesService) extensionRecords(
	part []models.Snapshot,
	stride int,
	family models.Family,
	derive series.Deriver,
) []models.Record {
	selected := sampling.Select(len(part), stride)
	intervals, resets := sampling.Lead(part, selected, s.deltaOpts)
	s.metrics.ObserveSampling(string(family), sampling.Stats{
		Points: len(part), Selected: len(selected), Intervals: len(intervals), Resets: resets,
	})
	return series.Records(intervals, derive)
}

func (s *SeriesService) seriesProjector(g schema.GroupDef, vocab schema.Vocabulary, scope models.Scope) sampling.Projector {
	if g.Family == models.FamilyWaits {
		return s.waitProjector(g, vocab, scope)
	}
	return func(snap models.Snapshot) (models.EntityKey, map[string]float64, bool) {
		if !scope.Matches(snap.Entity) {
			return models.EntityKey{}, nil, false
		}
		return snap.Entity.Coarsen(g.RowLevel), snap.Counters, true
	}
}

// waitProjector renames the count of a wait snapshot after its event class
// and drops classes outside the vocabulary.
func (s *SeriesService) waitProjector(g schema.GroupDef, vocab schema.Vocabulary, scope models.Scope) sampling.Projector {
	return func(snap models.Snapshot) (models.EntityKey, map[string]float64, bool) {
		if !scope.Matches(snap.Entity) || !vocab.Has(snap.Entity.EventType) {
			return models.EntityKey{}, nil, false
		}
		return snap.Entity.Coarsen(g.RowLevel), map[string]float64{
			schema.WaitField(snap.Entity.EventType): snap.Counters[models.CounterCount],
		}, true
	}
}

func rankingProjector(g schema.GroupDef, scope models.Scope) sampling.Projector {
	return func(snap models.Snapshot) (models.EntityKey, map[string]float64, bool) {
		if !scope.Matches(snap.Entity) {
			return models.EntityKey{}, nil, false
		}
		key := snap.Entity.Coarsen(g.RowLevel)
		if g.ByEvent {
			key.EventType = snap.Entity.EventType
			key.Event = snap.Entity.Event
		}
		return key, snap.Counters, true
	}
}

func checkScope(level models.Level, scope models.Scope) error {
	switch level {
	case models.LevelQuery:
		if scope.Database == "" || scope.QueryID == 0 {
			return fmt.Errorf("query scope needs a database and a query: %w", models.ErrInvalidScope)
		}
	case models.LevelDatabase:
		if scope.Database == "" {
			return fmt.Errorf("database scope needs a database: %w", models.ErrInvalidScope)
		}
	}
	return nil
}

func kcacheFields(fields models.FieldSet) models.FieldSet {
	var out models.FieldSet
	for _, f := range fields {
		switch f.Name {
		case "total_sys_hit", "total_disk_read", "minflts", "majflts", "nvcsws", "nivcsws":
			out = append(out, f)
		}
	}
	return out
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrNotAvailable):
		return "not_available"
	case errors.Is(err, models.ErrCapabilityMissing):
		return "capability_missing"
	case errors.Is(err, models.ErrInvalidWindow), errors.Is(err, models.ErrInvalidScope):
		return "invalid"
	}
	return "error"
}
