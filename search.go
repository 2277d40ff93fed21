package bobo

import "math/rand"

// BidSearcher finds a bid to propose when the agent does not accept.
//
// It draws a fixed number of uniform random candidates from the bid space,
// discards those below a minimum own-utility floor, and keeps the highest
// scoring survivor. The floor decreases slowly with progress, so the agent
// holds firm for most of the session and concedes late (Boulware). Work per
// turn is bounded by the sample count regardless of domain size.
type BidSearcher struct {
	params  SearchParams
	space   AllBids
	utility UtilityFunc
	rng     *rand.Rand
}

// NewBidSearcher creates a searcher over the given bid space. The rng is
// owned by the searcher; pass a seeded source for reproducible runs.
func NewBidSearcher(params SearchParams, space AllBids, utility UtilityFunc, rng *rand.Rand) *BidSearcher {
	return &BidSearcher{
		params:  params,
		space:   space,
		utility: utility,
		rng:     rng,
	}
}

// Floor returns the minimum own utility a candidate must reach at the
// given progress.
func (b *BidSearcher) Floor(progress float64) float64 {
	return b.params.FloorBase * (1.0 - b.params.FloorConcession*progress)
}

// FindBid returns the best candidate found this turn. If no sampled
// candidate clears the floor with a positive score, it falls back to one
// uniform random bid so the agent always has something to propose.
func (b *BidSearcher) FindBid(scorer Scorer, progress float64) Bid {
	minUtil := b.Floor(progress)

	bestScore := 0.0
	var best Bid
	for i := 0; i < b.params.Samples; i++ {
		bid := b.space.Sample(b.rng)
		if b.utility(bid) < minUtil {
			continue
		}

		if score := scorer.Score(bid, progress); score > bestScore {
			bestScore, best = score, bid
		}
	}

	if best == nil {
		best = b.space.Sample(b.rng)
	}

	return best
}
