package bobo

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ClassificationMode selects how opponent behavior signals are represented.
type ClassificationMode string

const (
	// Discrete classifies the opponent with two sticky boolean flags.
	Discrete ClassificationMode = "discrete"
	// Continuous classifies the opponent with two weights in [0, 1],
	// recomputed on every observed offer.
	Continuous ClassificationMode = "continuous"
)

// Params are the tunable constants of the negotiation strategy.
// The defaults are empirically tuned values, not derived quantities;
// treat them as configuration, not invariants.
type Params struct {
	// Mode selects discrete or continuous behavior classification.
	Mode ClassificationMode `yaml:"classification_mode"`

	Classify ClassifyParams `yaml:"classify"`
	Score    ScoreParams    `yaml:"score"`
	Search   SearchParams   `yaml:"search"`
	Accept   AcceptParams   `yaml:"accept"`
}

// ClassifyParams tune the behavior classifier.
type ClassifyParams struct {
	// Window is the number of most recent opponent offers considered.
	Window int `yaml:"window"`
	// MinObservations is how many offers must be seen before the
	// classifier activates.
	MinObservations int `yaml:"min_observations"`
	// GreedyAvg is the windowed-average predicted utility above which the
	// opponent is flagged greedy (discrete mode).
	GreedyAvg float64 `yaml:"greedy_avg"`
	// NiceLow and NiceHigh bound the windowed average band in which the
	// opponent is flagged nice (discrete mode). The band deliberately
	// overlaps with GreedyAvg; the acceptance policy's branch order
	// resolves the overlap in favor of the greedy branches.
	NiceLow  float64 `yaml:"nice_low"`
	NiceHigh float64 `yaml:"nice_high"`
	// ProgressDamping shifts the continuous weights down as the deadline
	// nears, to avoid labeling deadline pressure as greed.
	ProgressDamping float64 `yaml:"progress_damping"`
}

// ScoreParams tune the bid scoring function.
type ScoreParams struct {
	// Alpha is the baseline trade-off between self interest and
	// altruistic behavior (1 = fully self-interested).
	Alpha float64 `yaml:"alpha"`
	// AlphaNice is the trade-off used against an opponent classified nice.
	AlphaNice float64 `yaml:"alpha_nice"`
	// AlphaDecay is the linear decay of alpha with progress when the
	// opponent is neither greedy nor nice.
	AlphaDecay float64 `yaml:"alpha_decay"`
	// Eps shapes the time-pressure curve 1 - progress^(1/Eps). Small Eps
	// holds firm until very late, then concedes sharply (Boulware).
	Eps float64 `yaml:"eps"`
	// RejectionBase and RejectionSlope define the progress-dependent floor
	// RejectionBase - RejectionSlope*progress below which a bid's
	// predicted opponent utility zeroes its score.
	RejectionBase  float64 `yaml:"rejection_base"`
	RejectionSlope float64 `yaml:"rejection_slope"`
	// NeutralUtility replaces the opponent's predicted utility when they
	// are classified greedy: there is no point rewarding bids that please
	// a non-reciprocating opponent.
	NeutralUtility float64 `yaml:"neutral_utility"`
	// AlphaFloor and AlphaSlope shape the continuous-mode trade-off
	// max(AlphaFloor, Alpha - AlphaSlope*progress*(1-niceWeight)).
	AlphaFloor float64 `yaml:"alpha_floor"`
	AlphaSlope float64 `yaml:"alpha_slope"`
}

// SearchParams tune the stochastic bid search.
type SearchParams struct {
	// Samples is the number of uniform random candidates drawn per turn.
	Samples int `yaml:"samples"`
	// FloorBase and FloorConcession define the minimum own utility
	// FloorBase * (1 - FloorConcession*progress) a candidate must reach.
	FloorBase       float64 `yaml:"floor_base"`
	FloorConcession float64 `yaml:"floor_concession"`
}

// AcceptParams tune the acceptance policy's headline thresholds. The
// progress-stepped last-resort ladders live in the policy itself.
type AcceptParams struct {
	// Outright accepts any offer at or above this own utility,
	// regardless of progress or classification.
	Outright float64 `yaml:"outright"`
	// GreedyDecent accepts offers above this own utility from an opponent
	// classified greedy: a greedy opponent will not improve the deal.
	GreedyDecent float64 `yaml:"greedy_decent"`
	// FairOwn and FairOpp are the late-session fairness thresholds for
	// own and predicted opponent utility against a nice opponent.
	FairOwn float64 `yaml:"fair_own"`
	FairOpp float64 `yaml:"fair_opp"`
	// NashProduct accepts when own utility times predicted opponent
	// utility exceeds this value and the opponent is not greedy.
	NashProduct float64 `yaml:"nash_product"`
}

// DefaultParams returns the tuned defaults for the discrete
// classification mode.
func DefaultParams() Params {
	return Params{
		Mode: Discrete,
		Classify: ClassifyParams{
			Window:          5,
			MinObservations: 3,
			GreedyAvg:       0.87,
			NiceLow:         0.6,
			NiceHigh:        0.9,
			ProgressDamping: 0.15,
		},
		Score: ScoreParams{
			Alpha:          0.95,
			AlphaNice:      0.7,
			AlphaDecay:     0.45,
			Eps:            0.1,
			RejectionBase:  0.1,
			RejectionSlope: 0.08,
			NeutralUtility: 0.5,
			AlphaFloor:     0.6,
			AlphaSlope:     0.3,
		},
		Search: SearchParams{
			Samples:         500,
			FloorBase:       0.85,
			FloorConcession: 0.25,
		},
		Accept: AcceptParams{
			Outright:     0.9,
			GreedyDecent: 0.7,
			FairOwn:      0.75,
			FairOpp:      0.7,
			NashProduct:  0.75,
		},
	}
}

// DefaultContinuousParams returns the tuned defaults for the continuous
// classification mode, which concedes the search floor more slowly and
// accepts outright a little earlier.
func DefaultContinuousParams() Params {
	p := DefaultParams()
	p.Mode = Continuous
	p.Search.FloorConcession = 0.15
	p.Accept.Outright = 0.85
	return p
}

// LoadParams reads YAML overrides from the given path on top of
// DefaultParams. A missing file is not an error: it yields the defaults.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return params, nil
	}
	if err != nil {
		return params, errors.Wrapf(err, "reading params %s", path)
	}

	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, errors.Wrapf(err, "parsing params %s", path)
	}

	return params, nil
}
