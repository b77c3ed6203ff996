package registry

import (
	"fmt"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/random"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/loveletter"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/mastermind"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
)

// game is the registry's view of one in-progress session. Implementations
// are values: apply returns the successor and leaves the receiver intact.
type game interface {
	hasPlayer(playerID string) bool
	apply(playerID string, action Action, seeds random.SeedSource) (game, error)
	snapshot(viewer string) GameMessage
	done() bool
}

type gameFactory func(players []string, seeds random.SeedSource) (game, error)

// defaultFactories is the dispatch table from game type to constructor.
func defaultFactories() map[session.GameType]gameFactory {
	return map[session.GameType]gameFactory{
		session.GameTypeLoveLetter: newLoveLetterGame,
		session.GameTypeMastermind: newMastermindGame,
	}
}

type loveLetterGame struct {
	state loveletter.State
}

func newLoveLetterGame(players []string, seeds random.SeedSource) (game, error) {
	seed, err := seeds()
	if err != nil {
		return nil, fmt.Errorf("seed love letter deal: %w", err)
	}
	state, err := loveletter.NewGame(players, seed)
	if err != nil {
		return nil, err
	}
	return loveLetterGame{state: state}, nil
}

func (g loveLetterGame) hasPlayer(playerID string) bool {
	return g.state.HasPlayer(playerID)
}

func (g loveLetterGame) apply(playerID string, action Action, seeds random.SeedSource) (game, error) {
	var (
		next loveletter.State
		err  error
	)
	switch a := action.(type) {
	case LoveLetterStage:
		next, err = loveletter.Stage(g.state, playerID, a.Source)
	case LoveLetterSelectTargetPlayer:
		next, err = loveletter.SelectTargetPlayer(g.state, playerID, a.PlayerID)
	case LoveLetterSelectTargetCard:
		next, err = loveletter.SelectTargetCard(g.state, playerID, a.Card)
	case LoveLetterCommit:
		seed, seedErr := seeds()
		if seedErr != nil {
			return g, apperrors.Wrap(apperrors.CodeUnknown, "seed next round", seedErr)
		}
		next, err = loveletter.Commit(g.state, playerID, seed)
	default:
		return g, mismatchedAction(session.GameTypeLoveLetter, action)
	}
	if err != nil {
		return g, err
	}
	return loveLetterGame{state: next}, nil
}

func (g loveLetterGame) snapshot(viewer string) GameMessage {
	return LoveLetterState{View: loveletter.Snapshot(g.state, viewer)}
}

func (g loveLetterGame) done() bool {
	return false
}

type mastermindGame struct {
	state mastermind.State
}

func newMastermindGame(players []string, _ random.SeedSource) (game, error) {
	state, err := mastermind.NewGame(players)
	if err != nil {
		return nil, err
	}
	return mastermindGame{state: state}, nil
}

func (g mastermindGame) hasPlayer(playerID string) bool {
	return g.state.HasPlayer(playerID)
}

func (g mastermindGame) apply(playerID string, action Action, _ random.SeedSource) (game, error) {
	var (
		next mastermind.State
		err  error
	)
	switch a := action.(type) {
	case MastermindSetPeg:
		next, err = mastermind.SetPeg(g.state, playerID, a.Index, a.Color)
	case MastermindCommitRow:
		next, err = mastermind.CommitRow(g.state, playerID)
	default:
		return g, mismatchedAction(session.GameTypeMastermind, action)
	}
	if err != nil {
		return g, err
	}
	return mastermindGame{state: next}, nil
}

func (g mastermindGame) snapshot(viewer string) GameMessage {
	return MastermindState{View: mastermind.Snapshot(g.state, viewer)}
}

func (g mastermindGame) done() bool {
	return g.state.Done()
}

func mismatchedAction(want session.GameType, action Action) error {
	got := session.GameTypeUnspecified
	if action != nil {
		got = action.GameType()
	}
	return apperrors.WithMetadata(apperrors.CodeInvalidGameType, fmt.Sprintf("%s action sent to %s game", got, want), map[string]string{
		"GameType": got.String(),
	})
}
