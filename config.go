package main

// Config collects the search tuning parameters. Adjust these to trade speed
// for layout quality.
type Config struct {
	// MaxAttempts is the total attempt budget, split evenly across the
	// escalation stages.
	MaxAttempts int
	// Seed feeds the run's random source; 0 seeds from the current time.
	Seed int64
	// Verbose controls whether search progress is printed to stderr.
	Verbose bool

	// RandomTriesPerWord is how many random anchors the size-probing
	// strategy tries per word before abandoning the attempt.
	RandomTriesPerWord int
	// CandidateCap bounds the scored candidates kept per word.
	CandidateCap int
	// GreedyTopK is how many candidates the greedy strategy considers per
	// word; the first GreedyDeterministic are tried in rank order, the rest
	// at random.
	GreedyTopK          int
	GreedyDeterministic int
	// ForcedIntersections is how many shuffled intersections the
	// intersection-first strategy force-places around the grid center.
	ForcedIntersections int
	// FirstFitTopK is how many candidates are tried first-fit when placing
	// the remaining words.
	FirstFitTopK int

	// Annealing schedule: fixed iteration count, geometric cooling applied
	// every AnnealCoolEvery iterations.
	AnnealIterations int
	AnnealStartTemp  float64
	AnnealCooling    float64
	AnnealCoolEvery  int
}

// DefaultConfig returns the tuned production parameters.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:         1000,
		RandomTriesPerWord:  150,
		CandidateCap:        50,
		GreedyTopK:          10,
		GreedyDeterministic: 3,
		ForcedIntersections: 3,
		FirstFitTopK:        5,
		AnnealIterations:    100,
		AnnealStartTemp:     1000,
		AnnealCooling:       0.95,
		AnnealCoolEvery:     50,
	}
}
