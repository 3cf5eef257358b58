package eval

import (
	"context"
	"math/rand"

	"github.com/herohde/congkak/pkg/board"
)

// Random adds a small amount of randomized noise to an evaluation. limit
// specifies the integer range [-limit/2; limit-limit/2), in seeds, added on
// top of the wrapped evaluator's score. With limit <= 0 the wrapped score is
// returned unchanged. A zero-value Random has no wrapped evaluator and must
// not be used; construct it with NewRandom.
type Random struct {
	eval  Evaluator
	rand  *rand.Rand
	limit int
}

// NewRandom wraps eval with up to limit seeds of noise, deterministically
// derived from seed.
func NewRandom(eval Evaluator, limit int, seed int64) Random {
	return Random{
		eval:  eval,
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, s board.State, player board.Player) Score {
	base := n.eval.Evaluate(ctx, s, player)
	if n.limit <= 0 {
		return base
	}
	return Crop(base + Score(n.rand.Intn(n.limit)-n.limit/2))
}
