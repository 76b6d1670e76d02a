package powactl

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Config describes one powactl invocation.
type Config struct {
	Address  string        // [scheme://]host:port of the server, grpc:// runs a health check
	Group    string        // Metric group, empty pings the server
	ServerID int           // Monitored server id
	Database string        // Database scope
	QueryID  int64         // Query scope, needs Database
	From     time.Time     // Window start, zero lets the server pick
	To       time.Time     // Window end, zero lets the server pick
	Timeout  time.Duration // Per-request timeout
	Retries  int           // Retries of failed requests
}

// ParseConfig reads flags from args. ADDRESS in env overrides --address.
func ParseConfig(args []string, getenv func(string) string) (*Config, error) {
	var (
		cfg      Config
		from, to string
		last     time.Duration
	)
	fs := pflag.NewFlagSet("powactl", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Address, "address", "a", "http://localhost:8080", "server address")
	fs.StringVarP(&cfg.Group, "group", "g", "", "metric group, empty to ping")
	fs.IntVarP(&cfg.ServerID, "srvid", "s", 0, "monitored server id")
	fs.StringVarP(&cfg.Database, "database", "d", "", "database name")
	fs.Int64VarP(&cfg.QueryID, "queryid", "q", 0, "query id")
	fs.StringVar(&from, "from", "", "window start, RFC 3339")
	fs.StringVar(&to, "to", "", "window end, RFC 3339")
	fs.DurationVar(&last, "last", 0, "window length ending at --to or now")
	fs.DurationVarP(&cfg.Timeout, "timeout", "t", 10*time.Second, "request timeout")
	fs.IntVarP(&cfg.Retries, "retries", "r", 3, "retries of failed requests")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.New("unknown flags or arguments are provided")
	}
	if env := getenv("ADDRESS"); env != "" {
		cfg.Address = env
	}

	var err error
	if cfg.To, err = parseTime(to); err != nil {
		return nil, fmt.Errorf("invalid --to: %w", err)
	}
	if cfg.From, err = parseTime(from); err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	if last > 0 {
		if !cfg.From.IsZero() {
			return nil, errors.New("--from and --last are mutually exclusive")
		}
		end := cfg.To
		if end.IsZero() {
			end = time.Now()
		}
		cfg.From = end.Add(-last)
	}
	if cfg.QueryID != 0 && cfg.Database == "" {
		return nil, errors.New("--queryid needs --database")
	}
	return &cfg, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
