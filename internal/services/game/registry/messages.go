package registry

import (
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/lobby"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/loveletter"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/mastermind"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/push"
)

// LobbyOut delivers lobby messages to one member.
type LobbyOut = lobby.Out

// GameOut delivers game messages to one connected player.
type GameOut = *push.Channel[GameMessage]

// NewLobbyOut creates a lobby push channel.
func NewLobbyOut(connID string, size int) LobbyOut {
	return push.NewChannel[lobby.Message](connID, size)
}

// NewGameOut creates a game push channel.
func NewGameOut(connID string, size int) GameOut {
	return push.NewChannel[GameMessage](connID, size)
}

// GameMessage is a push on a game data stream.
type GameMessage interface {
	isGameMessage()
}

// LoveLetterState is a personalised card game snapshot.
type LoveLetterState struct {
	View loveletter.View
}

// MastermindState is a personalised board game snapshot.
type MastermindState struct {
	View mastermind.View
}

// ActionRejected reports a refused action. The stream stays open.
type ActionRejected struct {
	Err error
}

// StreamRejected ends the stream with Err, e.g. when the session is unknown.
type StreamRejected struct {
	Err error
}

// GameEnded ends the stream normally after the final snapshot.
type GameEnded struct{}

func (LoveLetterState) isGameMessage() {}
func (MastermindState) isGameMessage() {}
func (ActionRejected) isGameMessage()  {}
func (StreamRejected) isGameMessage()  {}
func (GameEnded) isGameMessage()       {}

// TerminalGameMessage reports whether m ends a game data stream.
func TerminalGameMessage(m GameMessage) bool {
	switch m.(type) {
	case StreamRejected, GameEnded:
		return true
	default:
		return false
	}
}

// Action is a game-specific player move.
type Action interface {
	GameType() session.GameType
}

// LoveLetterStage stages a card.
type LoveLetterStage struct {
	Source loveletter.Source
}

// LoveLetterSelectTargetPlayer names the staged play's target.
type LoveLetterSelectTargetPlayer struct {
	PlayerID string
}

// LoveLetterSelectTargetCard names the Guard's guess.
type LoveLetterSelectTargetCard struct {
	Card loveletter.Card
}

// LoveLetterCommit plays the staged card.
type LoveLetterCommit struct{}

// MastermindSetPeg edits one peg of the caller's current row.
type MastermindSetPeg struct {
	Index int
	Color mastermind.Color
}

// MastermindCommitRow locks the password or submits the guess.
type MastermindCommitRow struct{}

func (LoveLetterStage) GameType() session.GameType              { return session.GameTypeLoveLetter }
func (LoveLetterSelectTargetPlayer) GameType() session.GameType { return session.GameTypeLoveLetter }
func (LoveLetterSelectTargetCard) GameType() session.GameType   { return session.GameTypeLoveLetter }
func (LoveLetterCommit) GameType() session.GameType             { return session.GameTypeLoveLetter }
func (MastermindSetPeg) GameType() session.GameType             { return session.GameTypeMastermind }
func (MastermindCommitRow) GameType() session.GameType          { return session.GameTypeMastermind }
