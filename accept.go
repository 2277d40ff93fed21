package bobo

// AcceptancePolicy decides, once per own turn, whether to accept the
// opponent's last offer or counter with a new bid.
//
// The branches are evaluated strictly in order and the first match wins;
// overlapping conditions are resolved by position, not magnitude. The
// ordering is part of the strategy and must not be rearranged.
type AcceptancePolicy struct {
	Params     Params
	Utility    UtilityFunc
	Model      *OpponentModel // nil until the opponent's first offer
	Classifier *Classifier
}

// Last-resort acceptance ladder near the deadline: at each progress step,
// accept anything above the paired utility. The threshold softens only in
// the very last moments of the session.
var deadlineLadder = []struct {
	progress, minUtil float64
}{
	{0.98, 0.70},
	{0.97, 0.75},
	{0.96, 0.80},
	{0.95, 0.85},
}

// ShouldAccept reports whether the given offer should be accepted at the
// given progress. A nil bid (no offer received yet) is never accepted.
func (a AcceptancePolicy) ShouldAccept(bid Bid, progress float64) bool {
	if bid == nil {
		return false
	}

	ap := a.Params.Accept
	u := a.Utility(bid)

	// A near-maximal deal is never left on the table.
	if u >= ap.Outright {
		return true
	}

	// A greedy opponent will not improve a decent deal; take it now.
	if a.Classifier.IsGreedy() && u > ap.GreedyDecent {
		return true
	}

	if a.Model != nil {
		v := a.Model.PredictedUtility(bid)

		if a.Classifier.IsGreedy() {
			// Hardliner: hold out until the very end, then take what is
			// not too bad rather than walk away with nothing.
			if progress > 0.99 && u > 0.6 {
				return true
			}
			if progress > 0.97 && u > 0.7 {
				return true
			}
			return false
		}

		// Mutually fair late-session deal with a nice opponent.
		if a.Classifier.IsNice() && progress > 0.95 && u > ap.FairOwn && v > ap.FairOpp {
			return true
		}

		// The opponent is conceding and our side is already decent;
		// lock it in before they have to concede further.
		if progress > 0.6 && u > 0.6 && v < 0.5 {
			return true
		}
		if progress > 0.97 && u > 0.85 && v < 0.6 {
			return true
		}

		// Nash-like reasoning: both sides do well together.
		if u*v > ap.NashProduct {
			return true
		}

		// A late offer that mostly serves the opponent is not a deal.
		if progress > 0.95 && v > 0.9 && u < 0.7 {
			return false
		}

		if progress > 0.93 && u > 0.65 && v < 0.5 {
			return true
		}
	}

	// Close to the deadline, accept a decent score rather than fail the
	// negotiation outright.
	for _, step := range deadlineLadder {
		if progress > step.progress {
			return u > step.minUtil
		}
	}

	return false
}
