package http

//go:generate mockgen -source=metrics.go -destination=metrics_mock.go -package=http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/schema"
)

// DefaultWindow is the window served when a request names no bounds.
const DefaultWindow = time.Hour

// SeriesGetter builds time series.
type SeriesGetter interface {
	GetSeries(ctx context.Context, req models.SeriesRequest) (*models.MetricSeries, error)
}

// RankingGetter builds ranking grids.
type RankingGetter interface {
	GetRanking(ctx context.Context, req models.RankingRequest) (*models.Ranking, error)
}

// MetricsService serves both kinds of group.
type MetricsService interface {
	SeriesGetter
	RankingGetter
}

// NewMetricsHandler serves one metric group for a server, database or query.
//
// @Summary Get metric group data
// @Description Returns the fields and data of a series or ranking group
// @Tags metrics
// @Produce json
// @Param srvid path int true "Server id"
// @Param group path string true "Group name"
// @Param database path string false "Database name"
// @Param queryid path int false "Query id"
// @Param from query string false "Window start, RFC 3339 or epoch seconds"
// @Param to query string false "Window end, RFC 3339 or epoch seconds"
// @Success 200 "OK"
// @Failure 400 "Bad Request"
// @Failure 404 "Not Found"
// @Failure 501 "Not Implemented"
// @Failure 500 "Internal Server Error"
// @Router /server/{srvid}/metrics/{group}/{database}/{queryid}/ [get]
func NewMetricsHandler(svc MetricsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		serverID, err := strconv.Atoi(chi.URLParam(r, "srvid"))
		if err != nil || serverID < 0 {
			http.Error(w, "Bad request: invalid server id", http.StatusBadRequest)
			return
		}

		group, err := schema.Lookup(chi.URLParam(r, "group"))
		if err != nil {
			writeError(w, logger, err)
			return
		}

		scope, err := parseScope(chi.URLParam(r, "database"), chi.URLParam(r, "queryid"))
		if err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		from, to, err := parseWindow(r.URL.Query().Get("from"), r.URL.Query().Get("to"), time.Now())
		if err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		var body any
		switch group.Kind {
		case schema.KindRanking:
			body, err = svc.GetRanking(ctx, models.RankingRequest{
				Group: group.Name, Scope: scope, ServerID: serverID, From: from, To: to,
			})
		default:
			body, err = svc.GetSeries(ctx, models.SeriesRequest{
				Group: group.Name, Scope: scope, ServerID: serverID, From: from, To: to,
			})
		}
		if err != nil {
			writeError(w, logger, err)
			return
		}

		writeJSON(w, logger, body)
	}
}

// MountMetrics registers h under the server, database and query data URLs.
func MountMetrics(r chi.Router, h http.Handler) {
	r.Route("/server/{srvid}/metrics/{group}", func(r chi.Router) {
		r.Method(http.MethodGet, "/", h)
		r.Method(http.MethodGet, "/{database}/", h)
		r.Method(http.MethodGet, "/{database}/{queryid}/", h)
	})
}

type groupInfo struct {
	Name     string        `json:"name"`
	Kind     schema.Kind   `json:"kind"`
	Scope    models.Level  `json:"scope"`
	Requires string        `json:"requires,omitempty"`
	Family   models.Family `json:"family"`
}

// NewGroupsHandler lists the metric groups the server knows about.
//
// @Summary List metric groups
// @Tags metrics
// @Produce json
// @Success 200 "OK"
// @Router /groups [get]
func NewGroupsHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := schema.Groups()
		out := make([]groupInfo, len(defs))
		for i, g := range defs {
			out[i] = groupInfo{Name: g.Name, Kind: g.Kind, Scope: g.Scope, Requires: g.Requires, Family: g.Family}
		}
		writeJSON(w, logger, out)
	}
}

func parseScope(database, queryID string) (models.Scope, error) {
	scope := models.Scope{Level: models.LevelServer}
	if database == "" {
		return scope, nil
	}
	scope.Level = models.LevelDatabase
	scope.Database = database
	if queryID == "" {
		return scope, nil
	}
	id, err := strconv.ParseInt(queryID, 10, 64)
	if err != nil {
		return models.Scope{}, fmt.Errorf("invalid query id %q", queryID)
	}
	scope.Level = models.LevelQuery
	scope.QueryID = id
	return scope, nil
}

func parseWindow(fromParam, toParam string, now time.Time) (time.Time, time.Time, error) {
	to := now
	if toParam != "" {
		t, err := parseTime(toParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
		}
		to = t
	}
	from := to.Add(-DefaultWindow)
	if fromParam != "" {
		t, err := parseTime(fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
		}
		from = t
	}
	return from, to, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		whole := int64(secs)
		return time.Unix(whole, int64((secs-float64(whole))*1e9)).UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrNotAvailable), errors.Is(err, models.ErrUnknownGroup):
		return http.StatusNotFound
	case errors.Is(err, models.ErrCapabilityMissing):
		return http.StatusNotImplemented
	case errors.Is(err, models.ErrInvalidWindow), errors.Is(err, models.ErrInvalidScope):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}
