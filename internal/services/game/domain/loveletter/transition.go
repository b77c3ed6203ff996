package loveletter

import (
	"slices"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

// Stage names the card the turn holder intends to play.
//
// Staging a card of the same rank as the staged one is a no-op, whichever
// source it names. Staging a different card while one is staged is rejected;
// the player must commit first. A King or
// Prince cannot be staged while the other available card is the Countess.
func Stage(s State, playerID string, src Source) (State, error) {
	if err := checkTurn(s, playerID); err != nil {
		return s, err
	}
	if !src.Valid() {
		return s, apperrors.New(apperrors.CodeInvalidSource, "unknown card source")
	}
	if s.Staged != nil {
		if s.available(src) == s.Staged.Card {
			return s, nil
		}
		return s, apperrors.New(apperrors.CodeAlreadyStaged, "a different card is already staged")
	}

	card := s.available(src)
	if (card == CardKing || card == CardPrince) && s.available(src.other()) == CardCountess {
		return s, apperrors.WithMetadata(apperrors.CodeCountessMustBePlayed, "countess must be played", map[string]string{
			"Card": card.String(),
		})
	}

	next := s.clone()
	next.Staged = &StagedPlay{PlayerID: playerID, Source: src, Card: card}
	return next, nil
}

// SelectTargetPlayer attaches a target to the caller's staged play. It is a
// no-op when the caller has nothing staged. Validity is checked on commit.
func SelectTargetPlayer(s State, playerID, target string) (State, error) {
	if s.Staged == nil || s.Staged.PlayerID != playerID {
		return s, nil
	}
	next := s.clone()
	next.Staged.TargetPlayer = target
	return next, nil
}

// SelectTargetCard attaches a Guard guess to the caller's staged play. It is
// a no-op when the caller has nothing staged.
func SelectTargetCard(s State, playerID string, card Card) (State, error) {
	if s.Staged == nil || s.Staged.PlayerID != playerID {
		return s, nil
	}
	next := s.clone()
	next.Staged.TargetCard = card
	return next, nil
}

// Commit plays the staged card.
//
// The draw pile's top card is consumed: a hand play keeps it as the new
// hand, a top-of-draw play discards it directly. The card's effect is then
// applied and the turn passes to the next active player, whose Handmaid
// protection lapses. When the pile runs out or one player is left standing
// the round is scored and a new one is dealt from seed.
func Commit(s State, playerID string, seed int64) (State, error) {
	if err := checkTurn(s, playerID); err != nil {
		return s, err
	}
	if s.Staged == nil {
		return s, apperrors.New(apperrors.CodeNotStaged, "no card staged")
	}
	if err := validateTargets(s, *s.Staged); err != nil {
		return s, err
	}

	next := s.clone()
	play := *next.Staged
	r := &next.Round

	drawn, _ := r.pop()
	played := drawn
	if play.Source == SourceHand {
		played = r.Hands[playerID]
		r.Hands[playerID] = drawn
	}
	r.Discards[playerID] = append(r.Discards[playerID], played)

	out := &Outcome{
		Actor:        playerID,
		Card:         played,
		TargetPlayer: play.TargetPlayer,
		TargetCard:   play.TargetCard,
	}
	applyEffect(&next, play, out)

	next.Staged = nil
	next.LastPlay = out

	if active := next.ActivePlayers(); len(active) <= 1 || len(r.DrawPile) == 0 {
		return endRound(next, seed), nil
	}
	next.advance()
	return next, nil
}

func checkTurn(s State, playerID string) error {
	if !s.Started() {
		return apperrors.New(apperrors.CodeNotStarted, "no round dealt")
	}
	if !s.HasPlayer(playerID) {
		return apperrors.New(apperrors.CodePlayerNotInSession, "player not seated")
	}
	if playerID != s.CurrentPlayer() {
		return apperrors.New(apperrors.CodeNotYourTurn, "not your turn")
	}
	return nil
}

// validTargets lists players the staged card may name.
func validTargets(s State, play StagedPlay) []string {
	var out []string
	for _, p := range s.ActivePlayers() {
		if p == play.PlayerID {
			if play.Card == CardPrince {
				out = append(out, p)
			}
			continue
		}
		if s.Round.Protected[p] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func validateTargets(s State, play StagedPlay) error {
	if !play.Card.Targeted() {
		return nil
	}
	targets := validTargets(s, play)
	if play.TargetPlayer == "" {
		if len(targets) == 0 {
			return nil
		}
		return apperrors.WithMetadata(apperrors.CodeTargetRequired, "target required", map[string]string{
			"Card": play.Card.String(),
		})
	}
	if !slices.Contains(targets, play.TargetPlayer) {
		return apperrors.Newf(apperrors.CodeInvalidTarget, "%q cannot be targeted", play.TargetPlayer)
	}
	if play.Card == CardGuard {
		switch {
		case play.TargetCard == CardNone:
			return apperrors.New(apperrors.CodeTargetCardRequired, "guard needs a guess")
		case !play.TargetCard.Valid() || play.TargetCard == CardGuard:
			return apperrors.Newf(apperrors.CodeInvalidTargetCard, "cannot guess %d", int(play.TargetCard))
		}
	}
	return nil
}

// advance moves the cursor to the next active player and clears their
// protection.
func (s *State) advance() {
	n := len(s.TurnOrder)
	for i := 1; i <= n; i++ {
		idx := (s.Round.Cursor + i) % n
		if s.Active(s.TurnOrder[idx]) {
			s.Round.Cursor = idx
			delete(s.Round.Protected, s.TurnOrder[idx])
			return
		}
	}
}

// endRound credits the highest surviving hands and deals the next round.
func endRound(s State, seed int64) State {
	best := CardNone
	final := make(map[string]Card, len(s.Round.Hands))
	for p, c := range s.Round.Hands {
		final[p] = c
		best = max(best, c)
	}
	var winners []string
	for _, p := range s.TurnOrder {
		if c, ok := final[p]; ok && c == best {
			winners = append(winners, p)
			s.Wins[p]++
		}
	}
	if s.LastPlay != nil {
		s.LastPlay.RoundWinners = winners
		s.LastPlay.FinalHands = final
	}
	s.Round = Deal(s.TurnOrder, seed, s.Round.Number+1)
	return s
}
