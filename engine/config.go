package engine

// Config holds the engine tunables.
type Config struct {
	// IterationsPerTick is how many random positions a tick samples.
	IterationsPerTick int
	// MutationDelta bounds the per-channel color drift of a new flower.
	MutationDelta int
	// ClearRadius is the default half-size of the square wiped by ClearArea.
	ClearRadius int
}

func DefaultConfig() Config {
	return Config{
		IterationsPerTick: 8000,
		MutationDelta:     5,
		ClearRadius:       20,
	}
}
