package runner

import (
	"context"
	"net"

	"google.golang.org/grpc"
)

// GRPCServer adapts a *grpc.Server to Server.
type GRPCServer struct {
	addr string
	srv  *grpc.Server
}

// NewGRPCServer serves srv on addr.
func NewGRPCServer(addr string, srv *grpc.Server) *GRPCServer {
	return &GRPCServer{addr: addr, srv: srv}
}

// ListenAndServe listens on the address and serves until stopped.
func (g *GRPCServer) ListenAndServe() error {
	lis, err := net.Listen("tcp", g.addr)
	if err != nil {
		return err
	}
	if err := g.srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Shutdown stops gracefully, or forcibly once ctx is done.
func (g *GRPCServer) Shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.srv.Stop()
		return ctx.Err()
	}
}
