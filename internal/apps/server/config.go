package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/sbilibin2017/gophpowa/internal/configs"
)

// Defaults applied when no source sets a value.
const (
	DefaultAddress          = "localhost:8080"
	DefaultMigrationsDir    = "migrations"
	DefaultSampleBudget     = 100
	DefaultRateFloor        = 1.0
	DefaultBlockSize        = 8192
	DefaultCoalesceInterval = 60
	DefaultCoalesceAge      = 3600
	DefaultHealthInterval   = 10
	DefaultLogLevel         = "info"
)

type flagValues struct {
	configPath        string
	address           string
	grpcAddress       string
	databaseDSN       string
	migrationsDir     string
	seedFile          string
	sampleBudget      int
	rateFloor         float64
	minInterval       float64
	blockSize         int
	capabilityRefresh int
	coalesceInterval  int
	coalesceAge       int
	healthInterval    int
	logLevel          string
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.StringVarP(&v.configPath, "config", "c", "", "path to JSON config file")
	fs.StringVarP(&v.address, "address", "a", "", "HTTP listen address")
	fs.StringVarP(&v.grpcAddress, "grpc-address", "g", "", "gRPC health listen address")
	fs.StringVarP(&v.databaseDSN, "database-dsn", "d", "", "PostgreSQL DSN, empty for the memory store")
	fs.StringVarP(&v.migrationsDir, "migrations", "m", "", "goose migrations directory")
	fs.StringVarP(&v.seedFile, "seed", "s", "", "JSON-lines seed file for the memory store")
	fs.IntVarP(&v.sampleBudget, "sample-budget", "k", 0, "points per entity and window")
	fs.Float64Var(&v.rateFloor, "rate-floor", 0, "minimum elapsed seconds of per-second rates")
	fs.Float64Var(&v.minInterval, "min-interval", 0, "lowest elapsed seconds between two snapshots")
	fs.IntVar(&v.blockSize, "block-size", 0, "bytes per storage block")
	fs.IntVar(&v.capabilityRefresh, "capability-refresh", 0, "seconds a capability set stays fresh")
	fs.IntVarP(&v.coalesceInterval, "coalesce-interval", "i", 0, "seconds between coalescing passes")
	fs.IntVar(&v.coalesceAge, "coalesce-age", 0, "seconds a snapshot stays in the current tail")
	fs.IntVar(&v.healthInterval, "health-interval", 0, "seconds between store health checks")
	fs.StringVarP(&v.logLevel, "log-level", "l", "", "log level")
	return fs
}

// ParseConfig builds the server configuration. Env vars win over flags,
// flags over the JSON file named by -c or CONFIG, the file over defaults.
func ParseConfig(args []string, getenv func(string) string) (*configs.ServerConfig, error) {
	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}

	path := v.configPath
	if env := getenv("CONFIG"); env != "" {
		path = env
	}
	var file configs.ServerConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error parsing config JSON: %w", err)
		}
	}

	var envErr error
	envInt := func(name string) int {
		s := getenv(name)
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			envErr = errors.Join(envErr, fmt.Errorf("invalid %s env variable: %w", name, err))
		}
		return n
	}
	envFloat := func(name string) float64 {
		s := getenv(name)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			envErr = errors.Join(envErr, fmt.Errorf("invalid %s env variable: %w", name, err))
		}
		return f
	}

	opts := []configs.ServerConfigOpt{
		configs.WithAddress(getenv("ADDRESS"), v.address, file.Address, DefaultAddress),
		configs.WithGRPCAddress(getenv("GRPC_ADDRESS"), v.grpcAddress, file.GRPCAddress),
		configs.WithDatabaseDSN(getenv("DATABASE_DSN"), v.databaseDSN, file.DatabaseDSN),
		configs.WithMigrationsDir(getenv("MIGRATIONS_DIR"), v.migrationsDir, file.MigrationsDir, DefaultMigrationsDir),
		configs.WithSeedFile(getenv("SEED_FILE"), v.seedFile, file.SeedFile),
		configs.WithSampleBudget(envInt("SAMPLE_BUDGET"), v.sampleBudget, file.SampleBudget, DefaultSampleBudget),
		configs.WithRateFloor(envFloat("RATE_FLOOR"), v.rateFloor, file.RateFloor, DefaultRateFloor),
		configs.WithMinInterval(envFloat("MIN_INTERVAL"), v.minInterval, file.MinInterval),
		configs.WithBlockSize(envInt("BLOCK_SIZE"), v.blockSize, file.BlockSize, DefaultBlockSize),
		configs.WithCapabilityRefresh(envInt("CAPABILITY_REFRESH"), v.capabilityRefresh, file.CapabilityRefresh),
		configs.WithCoalesceInterval(envInt("COALESCE_INTERVAL"), v.coalesceInterval, file.CoalesceInterval, DefaultCoalesceInterval),
		configs.WithCoalesceAge(envInt("COALESCE_AGE"), v.coalesceAge, file.CoalesceAge, DefaultCoalesceAge),
		configs.WithHealthInterval(envInt("HEALTH_INTERVAL"), v.healthInterval, file.HealthInterval, DefaultHealthInterval),
		configs.WithLogLevel(getenv("LOG_LEVEL"), v.logLevel, file.LogLevel, DefaultLogLevel),
	}
	if envErr != nil {
		return nil, envErr
	}

	return configs.NewServerConfig(opts...)
}
