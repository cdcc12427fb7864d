package problemgen

import (
	"math/rand/v2"
	"time"
)

// Generator produces question queues and multiple-choice questions.
type Generator interface {
	// BuildQueue returns count pairs for a round over the given table.
	BuildQueue(table Table, count int) ([]Pair, error)

	// NewQuestion builds a validated question for num1 x num2.
	NewQuestion(num1, num2 int) (*Question, error)
}

// RandomGenerator is the Generator used for play. It is not safe for
// concurrent use; a round is driven by a single caller.
type RandomGenerator struct {
	rng *rand.Rand
	cfg Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. A zero Seed seeds from the clock.
func New(cfg Config) *RandomGenerator {
	if cfg.MaxDecoyAttempts <= 0 {
		cfg.MaxDecoyAttempts = DefaultConfig().MaxDecoyAttempts
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomGenerator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		cfg: cfg,
	}
}

// shuffle applies a Fisher-Yates permutation in place.
func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
