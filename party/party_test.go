package party

import (
	"testing"

	bobo "github.com/ciocanea/ANL-2025-bobo-agent"
)

func TestDomainSize(t *testing.T) {
	space := bobo.NewAllBids(NewDomain())
	if got := space.Size(); got != 3072 {
		t.Errorf("Size() = %d, expected 3072", got)
	}
}

func TestDomainBidsAreComplete(t *testing.T) {
	domain := NewDomain()
	space := bobo.NewAllBids(domain)

	for _, i := range []int{0, 1, 100, 3071} {
		bid := space.Get(i)
		for _, issue := range domain.Issues() {
			if bid.Value(issue) == "" {
				t.Errorf("Get(%d) has no value for %s", i, issue)
			}
		}
	}
}

func TestLinearUtilityInUnitInterval(t *testing.T) {
	utility := NewLinearUtility(
		map[string]float64{Food: 2, Drinks: 1, Location: 1},
		map[string]map[string]float64{
			Food:     {"Catering": 1.0, "Handmade Food": 0.6, "Finger-Food": 0.3, "Chips and Nuts": 0.1},
			Drinks:   {"Handmade Cocktails": 1.0, "Catering": 0.7, "Beer Only": 0.4, "Non-Alcoholic": 0.2},
			Location: {"Ballroom": 1.0, "Party Room": 0.8, "Party Tent": 0.5, "Your Dorm": 0.2},
		},
	)

	space := bobo.NewAllBids(NewDomain())
	for i := 0; i < space.Size(); i++ {
		u := utility(space.Get(i))
		if u < 0 || u > 1 {
			t.Fatalf("utility of bid %d = %v, out of [0, 1]", i, u)
		}
	}
}

func TestLinearUtilityWeighting(t *testing.T) {
	utility := NewLinearUtility(
		map[string]float64{Food: 3, Drinks: 1},
		map[string]map[string]float64{
			Food:   {"Catering": 1.0},
			Drinks: {"Beer Only": 1.0},
		},
	)

	bid := bobo.Bid{Food: "Catering", Drinks: "Non-Alcoholic"}
	if got := utility(bid); got != 0.75 {
		t.Errorf("utility = %v, expected 0.75", got)
	}
}
