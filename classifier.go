package bobo

import (
	"math"

	"github.com/ciocanea/ANL-2025-bobo-agent/internal/f64"
)

// Classifier turns the trend of the opponent's predicted utility for their
// own offers into two behavior signals: greedy (the opponent rarely
// concedes) and nice (the opponent aims for a moderate, fair split).
//
// The signals are derived state: they are recomputed from the recent offer
// history and may be seeded from a persisted Profile, but no other
// component sets them directly.
type Classifier struct {
	mode   ClassificationMode
	params ClassifyParams

	// Predicted utilities of every opponent offer, in order. Only the most
	// recent window is ever read.
	utils []float64

	greedy bool
	nice   bool

	greedyWeight float64
	niceWeight   float64
}

// NewClassifier creates a neutral classifier: no signal is set until enough
// offers are observed or a profile is seeded.
func NewClassifier(mode ClassificationMode, params ClassifyParams) *Classifier {
	return &Classifier{mode: mode, params: params}
}

// Seed initializes the signals from a profile persisted in an earlier
// session against the same opponent.
func (c *Classifier) Seed(p Profile) {
	c.greedy = p.Greedy
	c.nice = p.Nice
	c.greedyWeight = p.GreedyWeight
	c.niceWeight = p.NiceWeight
}

// Observe records the predicted utility of one opponent offer and updates
// the signals. Signals stay at their current value until MinObservations
// offers have been seen.
func (c *Classifier) Observe(predictedUtil, progress float64) {
	c.utils = append(c.utils, predictedUtil)
	if len(c.utils) < c.params.MinObservations {
		return
	}

	recent := c.utils
	if len(recent) > c.params.Window {
		recent = recent[len(recent)-c.params.Window:]
	}
	avg := f64.Mean(recent)

	switch c.mode {
	case Continuous:
		damping := c.params.ProgressDamping * progress
		c.greedyWeight = f64.Clamp(math.Abs(avg-0.5)*2-damping, 0, 1)
		c.niceWeight = f64.Clamp(1.3-avg-damping, 0, 1)
		c.greedy = c.greedyWeight >= 0.5
		c.nice = c.niceWeight >= 0.5
	default:
		// Discrete flags are sticky: once set they stay set for the
		// session. The greedy and nice bands overlap in
		// (GreedyAvg, NiceHigh); both flags can be true at once and the
		// acceptance policy's branch order lets greedy win.
		if avg > c.params.GreedyAvg {
			c.greedy = true
		}
		if avg > c.params.NiceLow && avg < c.params.NiceHigh {
			c.nice = true
		}
	}
}

// Observations returns how many opponent offers have been recorded.
func (c *Classifier) Observations() int {
	return len(c.utils)
}

// IsGreedy reports whether the opponent is currently classified greedy.
func (c *Classifier) IsGreedy() bool {
	return c.greedy
}

// IsNice reports whether the opponent is currently classified nice.
func (c *Classifier) IsNice() bool {
	return c.nice
}

// GreedyWeight returns the continuous greediness weight in [0, 1].
func (c *Classifier) GreedyWeight() float64 {
	return c.greedyWeight
}

// NiceWeight returns the continuous niceness weight in [0, 1].
func (c *Classifier) NiceWeight() float64 {
	return c.niceWeight
}

// Profile returns the current signals in persistable form.
func (c *Classifier) Profile() Profile {
	return Profile{
		Greedy:       c.greedy,
		Nice:         c.nice,
		GreedyWeight: c.greedyWeight,
		NiceWeight:   c.niceWeight,
	}
}
