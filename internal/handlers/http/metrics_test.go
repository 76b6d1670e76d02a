package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/schema"
)

func TestNewMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockMetricsService(ctrl)

	r := chi.NewRouter()
	MountMetrics(r, NewMetricsHandler(svc, zap.NewNop()))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	window := fmt.Sprintf("?from=%d&to=%s", from.Unix(), to.Format(time.RFC3339))

	ts := from.Add(time.Minute)
	series := &models.MetricSeries{
		Group:  schema.GroupQueryOverview,
		Fields: models.FieldSet{{Name: "calls", Type: models.FieldNumber}},
		Records: []models.Record{
			{TS: ts, Values: map[string]float64{"calls": 2.5}},
		},
	}
	ranking := &models.Ranking{
		Group:  schema.GroupByDatabases,
		Fields: models.FieldSet{{Name: "calls", Type: models.FieldNumber}},
		Rows:   []models.RankingRow{},
	}

	tests := []struct {
		name         string
		url          string
		mockSetup    func()
		expectStatus int
		expectBody   func(t *testing.T, body []byte)
	}{
		{
			name: "query series",
			url:  "/server/1/metrics/query_overview/app/42/" + window,
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), models.SeriesRequest{
					Group:    schema.GroupQueryOverview,
					Scope:    models.Scope{Level: models.LevelQuery, Database: "app", QueryID: 42},
					ServerID: 1,
					From:     from,
					To:       to,
				}).Return(series, nil)
			},
			expectStatus: http.StatusOK,
			expectBody: func(t *testing.T, body []byte) {
				var got struct {
					Fields []map[string]any `json:"fields"`
					Data   []map[string]any `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got.Data, 1)
				assert.Equal(t, 2.5, got.Data[0]["calls"])
				assert.Equal(t, float64(ts.Unix()), got.Data[0]["ts"])
			},
		},
		{
			name: "server ranking",
			url:  "/server/3/metrics/by_databases/" + window,
			mockSetup: func() {
				svc.EXPECT().GetRanking(gomock.Any(), models.RankingRequest{
					Group:    schema.GroupByDatabases,
					Scope:    models.Scope{Level: models.LevelServer},
					ServerID: 3,
					From:     from,
					To:       to,
				}).Return(ranking, nil)
			},
			expectStatus: http.StatusOK,
			expectBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"group":"by_databases","fields":[{"name":"calls","label":"","type":"number"}],"data":[]}`, string(body))
			},
		},
		{
			name: "database scope defaults window to the last hour",
			url:  "/server/1/metrics/database_overview/app/",
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req models.SeriesRequest) (*models.MetricSeries, error) {
						assert.Equal(t, models.Scope{Level: models.LevelDatabase, Database: "app"}, req.Scope)
						assert.Equal(t, DefaultWindow, req.To.Sub(req.From))
						return series, nil
					})
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "unknown group",
			url:          "/server/1/metrics/nope/",
			mockSetup:    func() {},
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "invalid server id",
			url:          "/server/abc/metrics/databases_globals/",
			mockSetup:    func() {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid query id",
			url:          "/server/1/metrics/query_overview/app/xyz/",
			mockSetup:    func() {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid time",
			url:          "/server/1/metrics/databases_globals/?from=yesterday",
			mockSetup:    func() {},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "not available",
			url:  "/server/1/metrics/databases_globals/" + window,
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("no data: %w", models.ErrNotAvailable))
			},
			expectStatus: http.StatusNotFound,
		},
		{
			name: "capability missing",
			url:  "/server/1/metrics/databases_waits/" + window,
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), gomock.Any()).
					Return(nil, &models.CapabilityMissingError{ServerID: 1, Name: models.ExtensionWaitSampling})
			},
			expectStatus: http.StatusNotImplemented,
		},
		{
			name: "invalid window",
			url:  "/server/1/metrics/databases_globals/?from=200&to=100",
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrInvalidWindow)
			},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "invalid scope",
			url:  "/server/1/metrics/query_overview/app/" + window,
			mockSetup: func() {
				svc.EXPECT().GetSeries(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrInvalidScope)
			},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			url:  "/server/1/metrics/by_databases/" + window,
			mockSetup: func() {
				svc.EXPECT().GetRanking(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectStatus, w.Code)
			if tt.expectBody != nil {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				tt.expectBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestNewGroupsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	w := httptest.NewRecorder()
	NewGroupsHandler(zap.NewNop()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []groupInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(schema.Groups()))
	assert.Equal(t, schema.GroupByDatabases, got[0].Name)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "epoch seconds", input: "1704110400"},
		{name: "rfc3339", input: "2024-01-01T12:00:00Z"},
		{name: "rfc3339 offset", input: "2024-01-01T14:00:00+02:00"},
		{name: "postgres style", input: "2024-01-01 12:00:00+00"},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestNewPingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinger := NewMockPinger(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectStatus int
	}{
		{
			name:         "store up",
			mockSetup:    func() { pinger.EXPECT().Ping(gomock.Any()).Return(nil) },
			expectStatus: http.StatusOK,
		},
		{
			name:         "store down",
			mockSetup:    func() { pinger.EXPECT().Ping(gomock.Any()).Return(assert.AnError) },
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := httptest.NewRecorder()
			NewPingHandler(pinger, zap.NewNop()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.expectStatus, w.Code)
		})
	}
}
