// Package grpc exposes server state over gRPC.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the metrics API.
const ServiceName = "gophpowa.Metrics"

// HealthHandler publishes snapshot store reachability on the standard
// gRPC health service, both overall and for ServiceName.
type HealthHandler struct {
	srv *health.Server
}

// NewHealthHandler creates a handler that reports NOT_SERVING until the
// first SetServing call.
func NewHealthHandler() *HealthHandler {
	h := &HealthHandler{srv: health.NewServer()}
	h.SetServing(false)
	return h
}

// Register attaches the health service to s.
func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.srv)
}

// SetServing updates the published status.
func (h *HealthHandler) SetServing(up bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if up {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.srv.SetServingStatus("", status)
	h.srv.SetServingStatus(ServiceName, status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *HealthHandler) Shutdown() {
	h.srv.Shutdown()
}
