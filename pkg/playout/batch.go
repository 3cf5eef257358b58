package playout

import (
	"context"
	"math/rand"

	"github.com/herohde/congkak/pkg/board"
	"golang.org/x/sync/errgroup"
)

// BatchRandomPlayouts runs n independent RandomPlayouts starting from start,
// in parallel, and returns their outcomes in playout-index order. Each
// playout is seeded deterministically from (seed, index), so the result is
// identical regardless of how many goroutines happen to run it or in what
// order they finish -- unlike seeding a single shared *rand.Rand, which
// would make outcomes depend on goroutine scheduling.
func BatchRandomPlayouts(ctx context.Context, start board.State, rules board.RuleConfig, n int, seed int64) ([]Outcome, error) {
	out := make([]Outcome, n)

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(playoutSeed(seed, i)))
			out[i] = RandomPlayout(start, rules, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// playoutSeed derives a per-playout seed from the batch seed and index. A
// plain splitmix64-style mix is used rather than seed+index directly, since
// math/rand's source does not guarantee good distribution for closely
// spaced seeds.
func playoutSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z)
}
