package problemgen

import "fmt"

// BuildQueue returns count pairs for a round.
//
// For a single table, Num1 is fixed and Num2 walks freshly shuffled cycles
// of 1..12, so every multiplier appears once before any repeats. In mixed
// mode the 132 pairs of 2..12 x 1..12 are shuffled and the first count are
// taken, so no pair repeats within a queue.
func (g *RandomGenerator) BuildQueue(table Table, count int) ([]Pair, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("build queue for table %d: %w", int(table), ErrInvalidTable)
	}
	if count <= 0 {
		return nil, fmt.Errorf("build queue of %d: %w", count, ErrInvalidCount)
	}

	if table.IsMixed() {
		if count > MixedPoolSize {
			return nil, fmt.Errorf("build mixed queue of %d (max %d): %w", count, MixedPoolSize, ErrInvalidCount)
		}
		return g.mixedQueue(count), nil
	}
	return g.tableQueue(int(table), count), nil
}

func (g *RandomGenerator) tableQueue(num1, count int) []Pair {
	pool := make([]int, 0, count+MaxMultiplier)
	for len(pool) < count {
		cycle := multipliers()
		shuffle(g.rng, cycle)
		pool = append(pool, cycle...)
	}

	queue := make([]Pair, count)
	for i := range queue {
		queue[i] = Pair{Num1: num1, Num2: pool[i]}
	}
	return queue
}

func (g *RandomGenerator) mixedQueue(count int) []Pair {
	pairs := make([]Pair, 0, MixedPoolSize)
	for n1 := MinTable; n1 <= MaxTable; n1++ {
		for n2 := MinMultiplier; n2 <= MaxMultiplier; n2++ {
			pairs = append(pairs, Pair{Num1: n1, Num2: n2})
		}
	}
	shuffle(g.rng, pairs)
	return pairs[:count]
}

// multipliers returns a fresh slice of MinMultiplier..MaxMultiplier.
func multipliers() []int {
	out := make([]int, 0, MaxMultiplier-MinMultiplier+1)
	for n := MinMultiplier; n <= MaxMultiplier; n++ {
		out = append(out, n)
	}
	return out
}
