package runner

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func TestRunner_Workers(t *testing.T) {
	workerErr := errors.New("worker failed")

	tests := []struct {
		name      string
		mockSetup func(a, b *MockWorker)
		wantErr   error
	}{
		{
			name: "all workers return",
			mockSetup: func(a, b *MockWorker) {
				a.EXPECT().Start(gomock.Any()).Return(nil)
				b.EXPECT().Start(gomock.Any()).Return(nil)
			},
		},
		{
			name: "first error stops the others",
			mockSetup: func(a, b *MockWorker) {
				a.EXPECT().Start(gomock.Any()).Return(workerErr)
				b.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				})
			},
			wantErr: workerErr,
		},
		{
			name: "cancellation is not an error",
			mockSetup: func(a, b *MockWorker) {
				a.EXPECT().Start(gomock.Any()).Return(context.Canceled)
				b.EXPECT().Start(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, b := NewMockWorker(ctrl), NewMockWorker(ctrl)
			tt.mockSetup(a, b)

			r := NewRunner(zap.NewNop())
			r.AddWorker(a)
			r.AddWorker(b)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := r.Run(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRunner_ServerGracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := NewMockServer(ctrl)
	stop := make(chan struct{})

	srv.EXPECT().ListenAndServe().DoAndReturn(func() error {
		<-stop
		return http.ErrServerClosed
	})
	srv.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		close(stop)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	r := NewRunner(zap.NewNop())
	r.AddServer(srv)
	require.NoError(t, r.Run(ctx))
}

func TestRunner_ServerListenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := NewMockServer(ctrl)
	worker := NewMockWorker(ctrl)
	listenErr := errors.New("listen error")

	srv.EXPECT().ListenAndServe().Return(listenErr)
	worker.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	r := NewRunner(zap.NewNop())
	r.AddServer(srv)
	r.AddWorker(worker)

	err := r.Run(context.Background())
	require.EqualError(t, err, listenErr.Error())
}

func TestRunner_ShutdownErrorReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := NewMockServer(ctrl)
	shutdownErr := errors.New("shutdown failed")
	stop := make(chan struct{})

	srv.EXPECT().ListenAndServe().DoAndReturn(func() error {
		<-stop
		return http.ErrServerClosed
	})
	srv.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(stop)
		return shutdownErr
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(zap.NewNop())
	r.AddServer(srv)
	assert.ErrorIs(t, r.Run(ctx), shutdownErr)
}

func TestRunner_ServeErrorAfterShutdownReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := NewMockServer(ctrl)
	serveErr := errors.New("listener reset")
	stop := make(chan struct{})
	returned := make(chan struct{})

	srv.EXPECT().ListenAndServe().DoAndReturn(func() error {
		<-stop
		time.Sleep(20 * time.Millisecond)
		close(returned)
		return serveErr
	})
	srv.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(stop)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(zap.NewNop())
	r.AddServer(srv)
	assert.ErrorIs(t, r.Run(ctx), serveErr)

	select {
	case <-returned:
	default:
		t.Fatal("Run returned before the server stopped serving")
	}
}

func TestGRPCServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	g := NewGRPCServer(addr, grpc.NewServer())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	r := NewRunner(zap.NewNop())
	r.AddServer(g)
	assert.NoError(t, r.Run(ctx))
}

func TestGRPCServer_ListenError(t *testing.T) {
	g := NewGRPCServer("not-an-address", grpc.NewServer())
	assert.Error(t, g.ListenAndServe())
}
