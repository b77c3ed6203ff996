package loveletter

import (
	"strconv"

	"github.com/samber/lo"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/random"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
)

// NewGame seats turnOrder and deals the first round from seed.
func NewGame(turnOrder []string, seed int64) (State, error) {
	minPlayers, maxPlayers := session.GameTypeLoveLetter.PlayerBounds()
	if len(turnOrder) < minPlayers {
		return State{}, apperrors.WithMetadata(apperrors.CodeNotEnoughPlayers, "love letter needs more players", map[string]string{
			"Min": strconv.Itoa(minPlayers),
		})
	}
	if len(turnOrder) > maxPlayers {
		return State{}, apperrors.WithMetadata(apperrors.CodeLobbyFull, "love letter seats too many players", map[string]string{
			"Max": strconv.Itoa(maxPlayers),
		})
	}
	if dupes := lo.FindDuplicates(turnOrder); len(dupes) > 0 {
		return State{}, apperrors.Newf(apperrors.CodeGameCreateFailed, "duplicate player %q in turn order", dupes[0])
	}

	wins := make(map[string]int, len(turnOrder))
	for _, p := range turnOrder {
		wins[p] = 0
	}
	order := append([]string(nil), turnOrder...)
	return State{
		TurnOrder: order,
		Wins:      wins,
		Round:     Deal(order, seed, 1),
	}, nil
}

// Deal shuffles a fresh deck with seed, sets the first card aside and deals
// one card to each player starting at a seed-chosen offset into the turn
// order. That player takes the first turn. The rest of the deck is the draw
// pile.
func Deal(turnOrder []string, seed int64, number int) Round {
	deck := random.Shuffle(NewDeck(), seed)
	offset := random.Intn(seed, len(turnOrder))

	r := Round{
		Number:    number,
		SetAside:  deck[0],
		Hands:     make(map[string]Card, len(turnOrder)),
		Discards:  make(map[string][]Card, len(turnOrder)),
		Protected: map[string]bool{},
		Cursor:    offset,
	}
	next := 1
	for i := range turnOrder {
		p := turnOrder[(offset+i)%len(turnOrder)]
		r.Hands[p] = deck[next]
		r.Discards[p] = nil
		next++
	}
	r.DrawPile = append([]Card(nil), deck[next:]...)
	return r
}
