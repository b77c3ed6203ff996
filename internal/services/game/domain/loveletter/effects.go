package loveletter

// applyEffect resolves the played card against the post-draw round. Targets
// were validated before the draw.
func applyEffect(s *State, play StagedPlay, out *Outcome) {
	r := &s.Round
	actor, target := play.PlayerID, play.TargetPlayer

	switch out.Card {
	case CardGuard:
		if target != "" && r.Hands[target] == play.TargetCard {
			eliminate(r, target, out)
		}
	case CardPriest:
		if target != "" {
			out.Revealed = r.Hands[target]
		}
	case CardBaron:
		if target == "" {
			return
		}
		mine, theirs := r.Hands[actor], r.Hands[target]
		switch {
		case mine < theirs:
			eliminate(r, actor, out)
		case theirs < mine:
			eliminate(r, target, out)
		}
	case CardHandmaid:
		r.Protected[actor] = true
	case CardPrince:
		if target == "" {
			return
		}
		if r.Hands[target] == CardPrincess {
			eliminate(r, target, out)
			return
		}
		r.Discards[target] = append(r.Discards[target], r.Hands[target])
		if c, ok := r.pop(); ok {
			r.Hands[target] = c
		} else {
			r.Hands[target] = r.SetAside
			r.SetAside = CardNone
		}
	case CardKing:
		if target == "" {
			return
		}
		r.Hands[actor], r.Hands[target] = r.Hands[target], r.Hands[actor]
	case CardPrincess:
		eliminate(r, actor, out)
	}
}

// eliminate discards the player's hand and removes them from the round.
func eliminate(r *Round, playerID string, out *Outcome) {
	if c, ok := r.Hands[playerID]; ok {
		r.Discards[playerID] = append(r.Discards[playerID], c)
		delete(r.Hands, playerID)
	}
	delete(r.Protected, playerID)
	out.Eliminated = append(out.Eliminated, playerID)
}
