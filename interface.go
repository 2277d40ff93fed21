package bobo

// UtilityFunc scores a bid under this agent's private preference profile.
// It must be deterministic, side-effect free, and return a value in [0, 1].
type UtilityFunc func(Bid) float64

// ProgressFunc reports progress towards the negotiation deadline as a value
// in [0, 1]. It must be monotonically non-decreasing over a session.
// The agent only ever reads it.
type ProgressFunc func() float64

// Action is one of the two things a party may do on its turn:
// accept the opponent's last offer, or counter with a new one.
type Action interface {
	// Bid returns the bid this action refers to: the accepted bid for an
	// Accept, the proposed bid for an Offer.
	Bid() Bid

	isAction()
}

// Accept accepts the given bid as the final agreement.
type Accept struct {
	Accepted Bid
}

// Offer proposes a new bid to the opponent.
type Offer struct {
	Proposed Bid
}

func (a Accept) Bid() Bid  { return a.Accepted }
func (a Accept) isAction() {}

func (o Offer) Bid() Bid  { return o.Proposed }
func (o Offer) isAction() {}

// Event is an inbound message from the negotiation protocol runtime.
type Event interface {
	isEvent()
}

// ActionDone informs the agent that some party (possibly itself)
// has performed an action.
type ActionDone struct {
	// Actor is the full party identity string of whoever acted,
	// e.g. "hardliner_2".
	Actor  string
	Action Action
}

// YourTurn notifies the agent that it must act.
type YourTurn struct{}

// Finished signals that the session has ended, through agreement
// or deadline.
type Finished struct{}

func (ActionDone) isEvent() {}
func (YourTurn) isEvent()   {}
func (Finished) isEvent()   {}

// Profile is the durable record of what the agent concluded about an
// opponent's behavior in past sessions. Both classification
// representations are carried; a session reads whichever its
// classification mode uses.
type Profile struct {
	Greedy bool
	Nice   bool

	GreedyWeight float64
	NiceWeight   float64
}

// ProfileStore persists opponent Profiles across sessions, keyed by the
// opponent's base identity (position suffix stripped).
//
// Stores are read exactly once at session start and written exactly once at
// session end; they are never accessed concurrently within a session.
type ProfileStore interface {
	// Load returns the stored profile for the given opponent, if any.
	Load(opponent string) (Profile, bool, error)
	// Save records the profile for the given opponent.
	Save(opponent string, p Profile) error
}
