// Package powactl reads metric groups from a running server and prints them
// as JSON.
package powactl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gophpowa/internal/configs/address"
	grpcClient "github.com/sbilibin2017/gophpowa/internal/configs/transport/grpc"
	httpClient "github.com/sbilibin2017/gophpowa/internal/configs/transport/http"
	httpFacades "github.com/sbilibin2017/gophpowa/internal/facades/http"
	grpcHandlers "github.com/sbilibin2017/gophpowa/internal/handlers/grpc"
	"github.com/sbilibin2017/gophpowa/internal/models"
	"github.com/sbilibin2017/gophpowa/internal/schema"
)

const (
	retryWait    = 500 * time.Millisecond
	retryMaxWait = 5 * time.Second
)

// Run executes cfg and writes the result to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	addr, err := address.Parse(cfg.Address)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", cfg.Address, err)
	}

	if addr.IsGRPC() {
		return checkHealth(ctx, addr.Address, cfg, out)
	}

	client, err := httpClient.New(addr.URL(),
		httpClient.WithTimeout(cfg.Timeout),
		httpClient.WithRetryPolicy(httpClient.RetryPolicy{Count: cfg.Retries, Wait: retryWait, MaxWait: retryMaxWait}),
	)
	if err != nil {
		return err
	}
	facade := httpFacades.NewMetricsHTTPFacade(client)

	if cfg.Group == "" {
		if err := facade.Ping(ctx); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
		_, err := fmt.Fprintln(out, "ok")
		return err
	}

	def, err := schema.Lookup(cfg.Group)
	if err != nil {
		return err
	}
	scope := models.Scope{Database: cfg.Database, QueryID: cfg.QueryID}

	var result any
	switch def.Kind {
	case schema.KindRanking:
		result, err = facade.GetRanking(ctx, models.RankingRequest{
			Group: def.Name, ServerID: cfg.ServerID, Scope: scope, From: cfg.From, To: cfg.To,
		})
	default:
		result, err = facade.GetSeries(ctx, models.SeriesRequest{
			Group: def.Name, ServerID: cfg.ServerID, Scope: scope, From: cfg.From, To: cfg.To,
		})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", def.Name, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func checkHealth(ctx context.Context, target string, cfg *Config, out io.Writer) error {
	conn, err := grpcClient.New(target,
		grpcClient.WithRetryPolicy(grpcClient.RetryPolicy{Count: cfg.Retries, Wait: retryWait, MaxWait: retryMaxWait}),
	)
	if err != nil {
		return err
	}
	defer conn.Close()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: grpcHandlers.ServiceName})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if _, err := fmt.Fprintln(out, resp.GetStatus().String()); err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("server is %s", resp.GetStatus())
	}
	return nil
}
