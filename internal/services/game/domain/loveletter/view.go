package loveletter

import (
	"maps"
	"slices"
)

// PlayerView is the public part of one seat.
type PlayerView struct {
	PlayerID   string
	Wins       int
	Eliminated bool
	Protected  bool
	Discards   []Card
}

// View is the state as one player is allowed to see it.
type View struct {
	Players       []PlayerView
	CurrentPlayer string
	RoundNumber   int
	DrawPileSize  int
	// Hand is the viewer's card; CardNone once eliminated.
	Hand Card
	// Drawn is the top of the pile, shown only to the turn holder.
	Drawn    Card
	Staged   *StagedPlay
	LastPlay *Outcome
}

// Snapshot renders s for viewer.
func Snapshot(s State, viewer string) View {
	v := View{
		CurrentPlayer: s.CurrentPlayer(),
		RoundNumber:   s.Round.Number,
		DrawPileSize:  len(s.Round.DrawPile),
		Hand:          s.Round.Hands[viewer],
	}
	for _, p := range s.TurnOrder {
		v.Players = append(v.Players, PlayerView{
			PlayerID:   p,
			Wins:       s.Wins[p],
			Eliminated: !s.Active(p),
			Protected:  s.Round.Protected[p],
			Discards:   slices.Clone(s.Round.Discards[p]),
		})
	}
	if viewer == v.CurrentPlayer {
		v.Drawn = s.Drawn()
	}
	if s.Staged != nil && s.Staged.PlayerID == viewer {
		staged := *s.Staged
		v.Staged = &staged
	}
	if s.LastPlay != nil {
		last := *s.LastPlay
		last.Eliminated = slices.Clone(last.Eliminated)
		last.RoundWinners = slices.Clone(last.RoundWinners)
		last.FinalHands = maps.Clone(last.FinalHands)
		if last.Actor != viewer {
			last.Revealed = CardNone
		}
		v.LastPlay = &last
	}
	return v
}
