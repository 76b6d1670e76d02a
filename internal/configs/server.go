package configs

import (
	"strings"
)

// ServerConfig holds configuration settings for the server.
type ServerConfig struct {
	Address           string  `json:"address"`            // HTTP listen address
	GRPCAddress       string  `json:"grpc_address"`       // gRPC health listen address, empty disables it
	DatabaseDSN       string  `json:"database_dsn"`       // PostgreSQL DSN, empty selects the memory store
	MigrationsDir     string  `json:"migrations_dir"`     // Goose migrations directory
	SeedFile          string  `json:"seed_file"`          // JSON-lines seed loaded into the memory store
	SampleBudget      int     `json:"sample_budget"`      // Points per entity and window
	RateFloor         float64 `json:"rate_floor"`         // Minimum elapsed seconds for per-second rates
	BlockSize         int     `json:"block_size"`         // Bytes per storage block
	MinInterval       float64 `json:"min_interval"`       // Lowest elapsed seconds between two snapshots, 0 keeps raw intervals
	CapabilityRefresh int     `json:"capability_refresh"` // Seconds a detected capability set stays fresh, 0 re-detects per request
	CoalesceInterval  int     `json:"coalesce_interval"`  // Seconds between coalescing passes, 0 disables them
	CoalesceAge       int     `json:"coalesce_age"`       // Seconds a snapshot stays in the current tail
	HealthInterval    int     `json:"health_interval"`    // Seconds between store health checks
	LogLevel          string  `json:"log_level"`          // zap level name
}

// ServerConfigOpt defines a function type for applying options to ServerConfig.
type ServerConfigOpt func(*ServerConfig) error

// NewServerConfig creates a new ServerConfig by applying the given options.
// Returns an error if any option returns an error.
func NewServerConfig(opts ...ServerConfigOpt) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func firstString(values []string) (string, bool) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

func firstPositive[T int | float64](values []T) (T, bool) {
	for _, v := range values {
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

func stringOpt(set func(*ServerConfig, string), values []string) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstString(values); ok {
			set(cfg, v)
		}
		return nil
	}
}

func positiveOpt[T int | float64](set func(*ServerConfig, T), values []T) ServerConfigOpt {
	return func(cfg *ServerConfig) error {
		if v, ok := firstPositive(values); ok {
			set(cfg, v)
		}
		return nil
	}
}

// WithAddress sets the HTTP address to the first non-empty value.
func WithAddress(addrs ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.Address = v }, addrs)
}

// WithGRPCAddress sets the gRPC address to the first non-empty value.
func WithGRPCAddress(addrs ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.GRPCAddress = v }, addrs)
}

// WithDatabaseDSN sets the DSN to the first non-empty value.
func WithDatabaseDSN(dsns ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.DatabaseDSN = v }, dsns)
}

// WithMigrationsDir sets the migrations directory to the first non-empty value.
func WithMigrationsDir(dirs ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.MigrationsDir = v }, dirs)
}

// WithSeedFile sets the seed file path to the first non-empty value.
func WithSeedFile(paths ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.SeedFile = v }, paths)
}

// WithLogLevel sets the log level to the first non-empty value.
func WithLogLevel(levels ...string) ServerConfigOpt {
	return stringOpt(func(c *ServerConfig, v string) { c.LogLevel = strings.ToLower(v) }, levels)
}

// WithSampleBudget sets the sample budget to the first positive value.
func WithSampleBudget(budgets ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.SampleBudget = v }, budgets)
}

// WithRateFloor sets the rate floor to the first positive value.
func WithRateFloor(floors ...float64) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v float64) { c.RateFloor = v }, floors)
}

// WithMinInterval sets the minimum snapshot interval to the first positive value.
func WithMinInterval(seconds ...float64) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v float64) { c.MinInterval = v }, seconds)
}

// WithBlockSize sets the block size to the first positive value.
func WithBlockSize(sizes ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.BlockSize = v }, sizes)
}

// WithCapabilityRefresh sets the capability refresh window to the first positive value.
func WithCapabilityRefresh(seconds ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.CapabilityRefresh = v }, seconds)
}

// WithCoalesceInterval sets the coalescing interval to the first positive value.
func WithCoalesceInterval(seconds ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.CoalesceInterval = v }, seconds)
}

// WithCoalesceAge sets the current-tail retention to the first positive value.
func WithCoalesceAge(seconds ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.CoalesceAge = v }, seconds)
}

// WithHealthInterval sets the health check interval to the first positive value.
func WithHealthInterval(seconds ...int) ServerConfigOpt {
	return positiveOpt(func(c *ServerConfig, v int) { c.HealthInterval = v }, seconds)
}
