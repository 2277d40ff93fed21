package bobo

// OpponentModel is an online frequency-based estimate of the opponent's
// hidden utility function. It counts how often the opponent picks each
// value for each issue and predicts that frequently repeated values are
// the ones the opponent wants.
type OpponentModel struct {
	domain *Domain

	// Per issue: value -> number of times the opponent offered it.
	counts map[string]map[string]int
	// Per issue: total observations (equals the number of offers seen).
	totals map[string]int

	offers int
}

// NewOpponentModel creates an empty model scoped to the given domain.
// One model is created lazily per session, on the opponent's first offer,
// and discarded at session end.
func NewOpponentModel(d *Domain) *OpponentModel {
	counts := make(map[string]map[string]int, len(d.issues))
	totals := make(map[string]int, len(d.issues))
	for _, issue := range d.issues {
		counts[issue.Name] = make(map[string]int, len(issue.Values))
	}

	return &OpponentModel{
		domain: d,
		counts: counts,
		totals: totals,
	}
}

// Update records one opponent offer, incrementing the count of every
// (issue, value) pair the bid chooses. O(#issues).
func (m *OpponentModel) Update(bid Bid) {
	for _, issue := range m.domain.issues {
		m.counts[issue.Name][bid.Value(issue.Name)]++
		m.totals[issue.Name]++
	}

	m.offers++
}

// PredictedUtility estimates how desirable the given bid is to the
// opponent, in [0, 1]. Per issue, the estimate is the empirical frequency
// of the bid's value among everything observed for that issue; issues are
// weighted by how concentrated the opponent's choices are on them, since
// an issue on which the opponent never budges is the one they care about.
//
// It is a pure read: the model is not mutated. Before any offer has been
// observed it returns 0.
func (m *OpponentModel) PredictedUtility(bid Bid) float64 {
	if m.offers == 0 {
		return 0
	}

	var weighted, totalWeight float64
	for _, issue := range m.domain.issues {
		freq := float64(m.counts[issue.Name][bid.Value(issue.Name)]) / float64(m.totals[issue.Name])
		w := m.issueWeight(issue)
		weighted += w * freq
		totalWeight += w
	}

	if totalWeight == 0 {
		// No issue shows any concentration yet; fall back to equal weights.
		var sum float64
		for _, issue := range m.domain.issues {
			sum += float64(m.counts[issue.Name][bid.Value(issue.Name)]) / float64(m.totals[issue.Name])
		}
		return sum / float64(len(m.domain.issues))
	}

	return weighted / totalWeight
}

// issueWeight measures how far the issue's value distribution is from
// uniform, in [0, 1]: 0 when every value has been offered equally often,
// 1 when the opponent has only ever offered a single value.
func (m *OpponentModel) issueWeight(issue Issue) float64 {
	total := float64(m.totals[issue.Name])
	if total == 0 {
		return 0
	}

	maxCount := 0
	for _, c := range m.counts[issue.Name] {
		if c > maxCount {
			maxCount = c
		}
	}

	equalShare := total / float64(len(issue.Values))
	if total <= equalShare {
		// Single-valued issue: no information either way.
		return 0
	}

	return (float64(maxCount) - equalShare) / (total - equalShare)
}
