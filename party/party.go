// Package party implements the classic party-planning negotiation domain,
// useful as a concrete bid space for tests and examples.
package party

import (
	bobo "github.com/ciocanea/ANL-2025-bobo-agent"
)

// Issue names of the party domain.
const (
	Food        = "Food"
	Drinks      = "Drinks"
	Location    = "Location"
	Invitations = "Invitations"
	Music       = "Music"
	Cleanup     = "Cleanup"
)

// NewDomain returns the six-issue party domain (3072 bids).
func NewDomain() *bobo.Domain {
	return bobo.NewDomain(
		bobo.Issue{Name: Food, Values: []string{
			"Chips and Nuts", "Finger-Food", "Handmade Food", "Catering",
		}},
		bobo.Issue{Name: Drinks, Values: []string{
			"Beer Only", "Handmade Cocktails", "Catering", "Non-Alcoholic",
		}},
		bobo.Issue{Name: Location, Values: []string{
			"Party Tent", "Your Dorm", "Party Room", "Ballroom",
		}},
		bobo.Issue{Name: Invitations, Values: []string{
			"Plain", "Photo", "Custom Handmade", "Custom Printed",
		}},
		bobo.Issue{Name: Music, Values: []string{
			"DJ", "Band", "Handmade Music",
		}},
		bobo.Issue{Name: Cleanup, Values: []string{
			"Water and Soap", "Specialized Materials", "Special Equipment", "Hired Help",
		}},
	)
}

// NewLinearUtility builds a linear-additive utility function from per-issue
// weights and per-value utilities. Weights are normalized to sum to 1;
// value utilities must already lie in [0, 1]. Unlisted issues or values
// contribute 0.
func NewLinearUtility(weights map[string]float64, values map[string]map[string]float64) bobo.UtilityFunc {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		total = 1
	}

	return func(bid bobo.Bid) float64 {
		var u float64
		for issue, w := range weights {
			u += w / total * values[issue][bid.Value(issue)]
		}

		return u
	}
}
