package engine

import (
	"math/rand/v2"
	"slices"
)

// Bag supplies piece kinds using the shuffled-bag scheme: whenever it
// runs empty it is refilled with one of each kind in uniformly random
// order. Any seven consecutive draws starting at a refill boundary
// contain each kind exactly once, so no kind can repeat or drought
// beyond a thirteen-draw window.
type Bag struct {
	kinds []Kind
}

// Draw removes and returns the next kind, refilling and shuffling the
// bag first if it is empty. The supplied random source is used only for
// the shuffle; passing a fixed-seed source makes draw sequences
// reproducible.
func (b *Bag) Draw(rng *rand.Rand) Kind {
	if len(b.kinds) == 0 {
		b.kinds = append(b.kinds, Kinds[:]...)
		rng.Shuffle(len(b.kinds), func(i, j int) {
			b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
		})
	}
	kind := b.kinds[0]
	b.kinds = b.kinds[1:]
	return kind
}

// Remaining returns a copy of the kinds left in the current shuffle
// cycle, in draw order.
func (b *Bag) Remaining() []Kind {
	return slices.Clone(b.kinds)
}
