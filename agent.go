package bobo

import (
	"math/rand"
	"strings"

	"github.com/golang/glog"
)

// Settings carries everything the protocol runtime supplies at session
// start.
type Settings struct {
	// ID is this agent's own full party identity string.
	ID string
	// Domain is the session's issue/value structure.
	Domain *Domain
	// Utility is the agent's private utility oracle.
	Utility UtilityFunc
	// Progress is the deadline progress oracle.
	Progress ProgressFunc
	// Store persists opponent profiles across sessions. Optional: with a
	// nil Store the agent negotiates without cross-session memory.
	Store ProfileStore
	// Params are the strategy constants. Zero value means DefaultParams.
	Params Params
	// Rand drives bid sampling. Optional: defaults to a new source,
	// pass a seeded one for reproducible runs.
	Rand *rand.Rand
}

// Agent is the decision core of one negotiation session. It consumes
// events from the runtime and produces at most one action per own turn.
//
// An Agent is single-threaded and turn-driven: Handle fully completes all
// derived work before returning, and nothing is shared across sessions
// except the profile store, which is only touched at the session edges.
type Agent struct {
	params   Params
	domain   *Domain
	space    AllBids
	utility  UtilityFunc
	progress ProgressFunc
	store    ProfileStore

	me       string
	opponent string

	model        *OpponentModel
	classifier   *Classifier
	lastReceived Bid
	searcher     *BidSearcher
}

// NewAgent creates an agent for one session.
func NewAgent(s Settings) *Agent {
	params := s.Params
	if params.Mode == "" {
		params = DefaultParams()
	}

	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	space := NewAllBids(s.Domain)
	return &Agent{
		params:     params,
		domain:     s.Domain,
		space:      space,
		utility:    s.Utility,
		progress:   s.Progress,
		store:      s.Store,
		me:         s.ID,
		classifier: NewClassifier(params.Mode, params.Classify),
		searcher:   NewBidSearcher(params.Search, space, s.Utility, rng),
	}
}

// Handle processes one inbound event. It returns a non-nil Action only for
// YourTurn events. Unknown event types are logged and ignored; the session
// continues.
func (a *Agent) Handle(event Event) (Action, error) {
	switch e := event.(type) {
	case ActionDone:
		a.actionDone(e)
		return nil, nil
	case YourTurn:
		return a.myTurn(), nil
	case Finished:
		a.saveProfile()
		glog.Info("session finished")
		return nil, nil
	default:
		glog.Warningf("ignoring unknown event %T", event)
		return nil, nil
	}
}

func (a *Agent) actionDone(e ActionDone) {
	if e.Actor == a.me {
		return
	}

	// First contact with the opponent: resolve their base identity and
	// seed the classifier from any prior sessions against them.
	if a.opponent == "" {
		a.opponent = baseIdentity(e.Actor)
		a.loadProfile()
	}

	offer, ok := e.Action.(Offer)
	if !ok {
		return
	}

	if a.model == nil {
		a.model = NewOpponentModel(a.domain)
	}

	bid := offer.Proposed
	a.model.Update(bid)
	a.lastReceived = bid

	predicted := a.model.PredictedUtility(bid)
	a.classifier.Observe(predicted, a.progress())
	glog.V(1).Infof("opponent offer: predicted utility %.3f, greedy=%t nice=%t",
		predicted, a.classifier.IsGreedy(), a.classifier.IsNice())
}

func (a *Agent) myTurn() Action {
	progress := a.progress()
	policy := AcceptancePolicy{
		Params:     a.params,
		Utility:    a.utility,
		Model:      a.model,
		Classifier: a.classifier,
	}

	if policy.ShouldAccept(a.lastReceived, progress) {
		glog.V(1).Infof("accepting offer at progress %.3f", progress)
		return Accept{Accepted: a.lastReceived}
	}

	scorer := Scorer{
		Params:     a.params,
		Utility:    a.utility,
		Model:      a.model,
		Classifier: a.classifier,
	}
	bid := a.searcher.FindBid(scorer, progress)
	glog.V(1).Infof("countering with utility %.3f at progress %.3f", a.utility(bid), progress)
	return Offer{Proposed: bid}
}

func (a *Agent) loadProfile() {
	if a.store == nil {
		return
	}

	profile, ok, err := a.store.Load(a.opponent)
	if err != nil {
		glog.Warningf("loading profile for %q: %v", a.opponent, err)
		return
	}
	if !ok {
		return
	}

	a.classifier.Seed(profile)
	glog.V(1).Infof("seeded classifier for %q: greedy=%t nice=%t", a.opponent, profile.Greedy, profile.Nice)
}

func (a *Agent) saveProfile() {
	if a.store == nil || a.opponent == "" {
		return
	}

	if err := a.store.Save(a.opponent, a.classifier.Profile()); err != nil {
		glog.Warningf("saving profile for %q: %v", a.opponent, err)
	}
}

// baseIdentity strips the position suffix from a full party identity,
// so "hardliner_2" and "hardliner_7" share one profile record.
func baseIdentity(actor string) string {
	if i := strings.LastIndexByte(actor, '_'); i >= 0 {
		return actor[:i]
	}

	return actor
}
