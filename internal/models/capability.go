package models

import "time"

// Optional extensions that widen the available metrics.
const (
	ExtensionKcache       = "pg_stat_kcache"
	ExtensionWaitSampling = "pg_wait_sampling"
)

// VersionNum10 is the first engine version using the 10+ wait event vocabulary.
const VersionNum10 = 100000

// CapabilitySet describes what a monitored server provides.
type CapabilitySet struct {
	ServerID   int             `json:"srvid"`
	Extensions map[string]bool `json:"extensions"`
	VersionNum int             `json:"version_num"` // 0 when unknown.
	DetectedAt time.Time       `json:"detected_at"`
}

// Has reports whether an extension is available.
func (c CapabilitySet) Has(name string) bool {
	return c.Extensions[name]
}

// Version returns the engine version and whether it is known.
func (c CapabilitySet) Version() (int, bool) {
	return c.VersionNum, c.VersionNum > 0
}
