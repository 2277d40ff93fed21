package bobo

import "math"

// Scorer ranks candidate bids during bid search by combining own utility,
// the opponent model's predicted utility, and time pressure. It is a pure
// function of its fields plus the progress passed per call; scoring never
// mutates the model or classifier.
//
// Scores are used only for ranking and are not bounded to [0, 1].
type Scorer struct {
	Params     Params
	Utility    UtilityFunc
	Model      *OpponentModel // nil until the opponent's first offer
	Classifier *Classifier
}

// Score computes the heuristic score of a bid at the given progress.
func (s Scorer) Score(bid Bid, progress float64) float64 {
	if s.Params.Mode == Continuous {
		return s.scoreContinuous(bid, progress)
	}

	return s.scoreDiscrete(bid, progress)
}

func (s Scorer) scoreDiscrete(bid Bid, progress float64) float64 {
	sp := s.Params.Score
	u := s.Utility(bid)
	timePressure := 1.0 - math.Pow(progress, 1/sp.Eps)

	if s.Model == nil {
		// Nothing known about the opponent yet; rank by own utility under
		// time pressure alone.
		return sp.Alpha * timePressure * u
	}

	v := s.Model.PredictedUtility(bid)
	greedy := s.Classifier.IsGreedy()

	if !greedy {
		// Bids the opponent is near-certain to reject are worthless,
		// especially early on.
		if v < sp.RejectionBase-sp.RejectionSlope*progress {
			return 0
		}
	} else {
		v = sp.NeutralUtility
	}

	if greedy {
		// A greedy opponent does not reciprocate; only our side matters.
		return u
	}

	alpha := sp.Alpha - sp.AlphaDecay*progress
	if s.Classifier.IsNice() {
		alpha = sp.AlphaNice
	}

	return alpha*timePressure*u + (1.0-alpha*timePressure)*v
}

func (s Scorer) scoreContinuous(bid Bid, progress float64) float64 {
	sp := s.Params.Score
	u := s.Utility(bid)

	var v float64
	if s.Model != nil {
		v = s.Model.PredictedUtility(bid)
	}

	alpha := math.Max(sp.AlphaFloor, sp.Alpha-sp.AlphaSlope*progress*(1.0-s.Classifier.NiceWeight()))
	return alpha*u + (1.0-alpha)*v*(1.0-s.Classifier.GreedyWeight())
}
