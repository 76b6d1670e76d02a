// Package grpc configures client connections to the server's gRPC listener.
package grpc

import (
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Opt returns a grpc.DialOption, or nil to leave the defaults alone.
type Opt func() (grpc.DialOption, error)

// New creates a ClientConn for target with insecure transport credentials.
// The connection is established lazily on first use.
func New(target string, opts ...Opt) (*grpc.ClientConn, error) {
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	for _, opt := range opts {
		dialOpt, err := opt()
		if err != nil {
			return nil, err
		}
		if dialOpt != nil {
			dialOpts = append(dialOpts, dialOpt)
		}
	}

	return grpc.NewClient(target, dialOpts...)
}

// RetryPolicy configures parameters for retrying gRPC calls.
type RetryPolicy struct {
	Count   int           // Maximum number of attempts
	Wait    time.Duration // Initial backoff
	MaxWait time.Duration // Maximum backoff
}

// WithRetryPolicy retries UNAVAILABLE calls with exponential backoff.
// A policy with no positive field applies nothing.
func WithRetryPolicy(rp RetryPolicy) Opt {
	return func() (grpc.DialOption, error) {
		if rp.Count <= 0 && rp.Wait <= 0 && rp.MaxWait <= 0 {
			return nil, nil
		}
		attempts := max(rp.Count, 2)
		wait := max(rp.Wait, 100*time.Millisecond)
		maxWait := max(rp.MaxWait, wait)

		cfg := fmt.Sprintf(`{
			"methodConfig": [{
				"name": [{"service": "grpc.health.v1.Health"}],
				"retryPolicy": {
					"maxAttempts": %d,
					"initialBackoff": "%.3fs",
					"maxBackoff": "%.3fs",
					"backoffMultiplier": 2,
					"retryableStatusCodes": ["UNAVAILABLE"]
				}
			}]
		}`, attempts, wait.Seconds(), maxWait.Seconds())

		return grpc.WithDefaultServiceConfig(cfg), nil
	}
}
