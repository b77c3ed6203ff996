package loveletter

import (
	"maps"
	"slices"
)

// Phase is the turn sub-state.
type Phase int

const (
	// PhaseInProgress waits for the turn holder to stage a card.
	PhaseInProgress Phase = 1
	// PhaseStaged holds a staged play awaiting selections and commit.
	PhaseStaged Phase = 2
)

// StagedPlay is the card a turn holder intends to play.
type StagedPlay struct {
	PlayerID     string
	Source       Source
	Card         Card
	TargetPlayer string
	TargetCard   Card
}

// Outcome describes the last committed play.
type Outcome struct {
	Actor        string
	Card         Card
	TargetPlayer string
	TargetCard   Card
	// Revealed is the target's card seen through a Priest. Only the actor
	// may see it.
	Revealed   Card
	Eliminated []string
	// RoundWinners is set when this play ended the round.
	RoundWinners []string
	// FinalHands shows the surviving hands compared at round end.
	FinalHands map[string]Card
}

// Round is the deal-scoped part of the state.
type Round struct {
	Number int
	// DrawPile is played from its tail: the last element is the top card.
	DrawPile []Card
	SetAside Card
	// Hands holds one card per active player. Eliminated players are absent.
	Hands     map[string]Card
	Discards  map[string][]Card
	Protected map[string]bool
	// Cursor indexes TurnOrder at the current turn holder.
	Cursor int
}

// State is a whole card game session.
type State struct {
	TurnOrder []string
	Wins      map[string]int
	Round     Round
	Staged    *StagedPlay
	LastPlay  *Outcome
}

// Phase derives the turn sub-state.
func (s State) Phase() Phase {
	if s.Staged != nil {
		return PhaseStaged
	}
	return PhaseInProgress
}

// Started reports whether a round has been dealt.
func (s State) Started() bool {
	return len(s.TurnOrder) > 0 && s.Round.Hands != nil
}

// CurrentPlayer returns the turn holder.
func (s State) CurrentPlayer() string {
	if !s.Started() {
		return ""
	}
	return s.TurnOrder[s.Round.Cursor]
}

// Drawn returns the draw pile's top card, the turn holder's second card.
func (s State) Drawn() Card {
	return s.Round.top()
}

// Active reports whether playerID still holds a card this round.
func (s State) Active(playerID string) bool {
	_, ok := s.Round.Hands[playerID]
	return ok
}

// ActivePlayers returns players still in the round, in turn order.
func (s State) ActivePlayers() []string {
	out := make([]string, 0, len(s.Round.Hands))
	for _, p := range s.TurnOrder {
		if s.Active(p) {
			out = append(out, p)
		}
	}
	return out
}

// HasPlayer reports whether playerID is seated in this game.
func (s State) HasPlayer(playerID string) bool {
	return slices.Contains(s.TurnOrder, playerID)
}

func (s State) available(src Source) Card {
	switch src {
	case SourceHand:
		return s.Round.Hands[s.CurrentPlayer()]
	case SourceTopOfDraw:
		return s.Drawn()
	default:
		return CardNone
	}
}

func (s State) clone() State {
	next := State{
		TurnOrder: slices.Clone(s.TurnOrder),
		Wins:      maps.Clone(s.Wins),
		Round:     s.Round.clone(),
	}
	if s.Staged != nil {
		staged := *s.Staged
		next.Staged = &staged
	}
	if s.LastPlay != nil {
		last := s.LastPlay.clone()
		next.LastPlay = &last
	}
	return next
}

func (r Round) clone() Round {
	next := r
	next.DrawPile = slices.Clone(r.DrawPile)
	next.Hands = maps.Clone(r.Hands)
	next.Protected = maps.Clone(r.Protected)
	next.Discards = make(map[string][]Card, len(r.Discards))
	for p, d := range r.Discards {
		next.Discards[p] = slices.Clone(d)
	}
	return next
}

func (o Outcome) clone() Outcome {
	next := o
	next.Eliminated = slices.Clone(o.Eliminated)
	next.RoundWinners = slices.Clone(o.RoundWinners)
	next.FinalHands = maps.Clone(o.FinalHands)
	return next
}

func (r Round) top() Card {
	if len(r.DrawPile) == 0 {
		return CardNone
	}
	return r.DrawPile[len(r.DrawPile)-1]
}

func (r *Round) pop() (Card, bool) {
	if len(r.DrawPile) == 0 {
		return CardNone, false
	}
	c := r.DrawPile[len(r.DrawPile)-1]
	r.DrawPile = r.DrawPile[:len(r.DrawPile)-1]
	return c, true
}
