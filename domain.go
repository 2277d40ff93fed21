package bobo

import "math/rand"

// Bid is one concrete candidate deal: a chosen value for every issue in the
// domain. Bids are immutable by convention once constructed and are compared
// by structural equality.
type Bid map[string]string

// Value returns the chosen value for the given issue.
func (b Bid) Value(issue string) string {
	return b[issue]
}

// Equal reports whether two bids choose the same value for every issue.
func (b Bid) Equal(other Bid) bool {
	if len(b) != len(other) {
		return false
	}

	for issue, v := range b {
		if other[issue] != v {
			return false
		}
	}

	return true
}

// Issue is one negotiable dimension of a deal, with its finite set of
// admissible values.
type Issue struct {
	Name   string
	Values []string
}

// Domain is the full issue/value structure defining the space of possible
// bids. It is owned by the protocol runtime and read-only to the agent.
type Domain struct {
	issues []Issue
}

// NewDomain constructs a domain from the given issues. Issue order is
// preserved and determines the bid space indexing.
func NewDomain(issues ...Issue) *Domain {
	return &Domain{issues: issues}
}

// Issues returns the names of all issues, in domain order.
func (d *Domain) Issues() []string {
	result := make([]string, len(d.issues))
	for i, issue := range d.issues {
		result[i] = issue.Name
	}

	return result
}

// Values returns the admissible values for the given issue,
// or nil if the issue is not part of the domain.
func (d *Domain) Values(issue string) []string {
	for _, is := range d.issues {
		if is.Name == issue {
			return is.Values
		}
	}

	return nil
}

// AllBids is the finite, enumerable space of all bids over a domain.
// Bids are indexed in mixed-radix order over the domain's issues.
type AllBids struct {
	domain *Domain
}

// NewAllBids returns the bid space over the given domain.
func NewAllBids(d *Domain) AllBids {
	return AllBids{domain: d}
}

// Size returns the total number of distinct bids in the space.
func (a AllBids) Size() int {
	n := 1
	for _, issue := range a.domain.issues {
		n *= len(issue.Values)
	}

	return n
}

// Get returns the ith bid in the space. i must be in [0, Size()).
func (a AllBids) Get(i int) Bid {
	bid := make(Bid, len(a.domain.issues))
	for _, issue := range a.domain.issues {
		n := len(issue.Values)
		bid[issue.Name] = issue.Values[i%n]
		i /= n
	}

	return bid
}

// Sample draws one bid uniformly at random from the full space.
func (a AllBids) Sample(rng *rand.Rand) Bid {
	return a.Get(rng.Intn(a.Size()))
}
