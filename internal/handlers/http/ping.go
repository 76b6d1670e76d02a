package http

//go:generate mockgen -source=ping.go -destination=ping_mock.go -package=http

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Pinger checks the snapshot store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPingHandler answers 200 when the snapshot store is reachable.
//
// @Summary Check snapshot store
// @Success 200 "OK"
// @Failure 500 "Internal Server Error"
// @Router /ping [get]
func NewPingHandler(p Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.Error("store ping failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
