package life

import "log/slog"

// GCMode selects when a World sweeps unreachable nodes from its store.
type GCMode int

const (
	// GCDisabled never reclaims; the store grows until Shutdown.
	GCDisabled GCMode = iota
	// GCGenerations sweeps every GCEvery generations. Cheap to reason
	// about, but the store can balloon between sweeps.
	GCGenerations
	// GCNodes sweeps whenever the live store exceeds GCThreshold nodes.
	// A higher threshold runs faster at the cost of peak memory; a lower
	// one keeps per-step latency even, which matters when rendering
	// every frame.
	GCNodes
)

// Config holds the construction-time knobs for a World.
type Config struct {
	// GC picks the reclamation policy.
	GC GCMode
	// GCEvery is the generation interval used in GCGenerations mode.
	GCEvery int64
	// GCThreshold is the live-node limit used in GCNodes mode.
	GCThreshold int
	// Logger, when set, receives debug events for reclamation sweeps.
	Logger *slog.Logger
}

// DefaultConfig returns the default policy: sweep past 100000 live nodes.
func DefaultConfig() Config {
	return Config{GC: GCNodes, GCThreshold: 100000, GCEvery: 5000}
}
