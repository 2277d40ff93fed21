package bobo

import (
	"testing"
)

func TestOpponentModelNeutralBeforeObservations(t *testing.T) {
	m := NewOpponentModel(testDomain())
	bid := Bid{"price": "low", "delivery": "fast"}
	if got := m.PredictedUtility(bid); got != 0 {
		t.Errorf("PredictedUtility before any update = %v, expected 0", got)
	}
}

func TestOpponentModelUpdateIncrementsCounts(t *testing.T) {
	m := NewOpponentModel(testDomain())
	bid := Bid{"price": "low", "delivery": "fast"}

	m.Update(bid)
	m.Update(bid)

	if got := m.counts["price"]["low"]; got != 2 {
		t.Errorf("count(price, low) = %d, expected 2", got)
	}
	if got := m.totals["price"]; got != 2 {
		t.Errorf("total(price) = %d, expected 2", got)
	}
	if got := m.totals["delivery"]; got != 2 {
		t.Errorf("total(delivery) = %d, expected 2", got)
	}
}

func TestOpponentModelPredictedUtilityIsPureRead(t *testing.T) {
	m := NewOpponentModel(testDomain())
	m.Update(Bid{"price": "low", "delivery": "fast"})
	m.Update(Bid{"price": "low", "delivery": "slow"})

	bid := Bid{"price": "mid", "delivery": "fast"}
	first := m.PredictedUtility(bid)
	second := m.PredictedUtility(bid)
	if first != second {
		t.Errorf("two consecutive reads differ: %v != %v", first, second)
	}
}

func TestOpponentModelPredictedUtilityInUnitInterval(t *testing.T) {
	m := NewOpponentModel(testDomain())
	space := NewAllBids(testDomain())

	for i := 0; i < space.Size(); i++ {
		m.Update(space.Get(i))
		for j := 0; j < space.Size(); j++ {
			u := m.PredictedUtility(space.Get(j))
			if u < 0 || u > 1 {
				t.Fatalf("PredictedUtility = %v out of [0, 1]", u)
			}
		}
	}
}

func TestOpponentModelRepeatedBidPredictsMaximal(t *testing.T) {
	m := NewOpponentModel(testDomain())
	bid := Bid{"price": "high", "delivery": "slow"}
	for i := 0; i < 5; i++ {
		m.Update(bid)
	}

	if got := m.PredictedUtility(bid); got != 1 {
		t.Errorf("PredictedUtility of the only bid ever offered = %v, expected 1", got)
	}
	other := Bid{"price": "low", "delivery": "fast"}
	if got := m.PredictedUtility(other); got != 0 {
		t.Errorf("PredictedUtility of a never-offered bid = %v, expected 0", got)
	}
}
