// Package http is a client of the server's metrics API.
package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// StatusError is a non-2xx answer of the server.
type StatusError struct {
	Code int
	Body string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("server answered %d %s: %s", e.Code, http.StatusText(e.Code), strings.TrimSpace(e.Body))
}

// Is maps status codes back onto the domain errors they were produced from.
func (e *StatusError) Is(target error) bool {
	switch e.Code {
	case http.StatusNotFound:
		return target == models.ErrNotAvailable
	case http.StatusNotImplemented:
		return target == models.ErrCapabilityMissing
	}
	return false
}

// MetricsHTTPFacade reads series and rankings over HTTP.
type MetricsHTTPFacade struct {
	client *resty.Client
}

// NewMetricsHTTPFacade creates a facade over a configured client.
func NewMetricsHTTPFacade(client *resty.Client) *MetricsHTTPFacade {
	return &MetricsHTTPFacade{client: client}
}

// GetSeries fetches a series group.
func (f *MetricsHTTPFacade) GetSeries(ctx context.Context, req models.SeriesRequest) (*models.MetricSeries, error) {
	var out models.MetricSeries
	if err := f.get(ctx, dataPath(req.ServerID, req.Group, req.Scope), req.From, req.To, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRanking fetches a ranking group.
func (f *MetricsHTTPFacade) GetRanking(ctx context.Context, req models.RankingRequest) (*models.Ranking, error) {
	var out models.Ranking
	if err := f.get(ctx, dataPath(req.ServerID, req.Group, req.Scope), req.From, req.To, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the server reaches its snapshot store.
func (f *MetricsHTTPFacade) Ping(ctx context.Context) error {
	resp, err := f.client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (f *MetricsHTTPFacade) get(ctx context.Context, path string, from, to time.Time, out any) error {
	r := f.client.R().SetContext(ctx).SetResult(out)
	if !from.IsZero() {
		r.SetQueryParam("from", from.UTC().Format(time.RFC3339Nano))
	}
	if !to.IsZero() {
		r.SetQueryParam("to", to.UTC().Format(time.RFC3339Nano))
	}

	resp, err := r.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func dataPath(serverID int, group string, scope models.Scope) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/server/%d/metrics/%s/", serverID, url.PathEscape(group))
	if scope.Database == "" {
		return b.String()
	}
	b.WriteString(url.PathEscape(scope.Database) + "/")
	if scope.QueryID != 0 {
		b.WriteString(strconv.FormatInt(scope.QueryID, 10) + "/")
	}
	return b.String()
}
