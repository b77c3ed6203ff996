package session

import (
	"strings"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

// GameType is the closed set of games the server hosts.
type GameType int32

const (
	GameTypeUnspecified GameType = 0
	GameTypeLoveLetter  GameType = 1
	GameTypeMastermind  GameType = 2
)

// GameTypes lists every playable game type.
var GameTypes = []GameType{GameTypeLoveLetter, GameTypeMastermind}

// Valid reports whether t names a playable game.
func (t GameType) Valid() bool {
	switch t {
	case GameTypeLoveLetter, GameTypeMastermind:
		return true
	default:
		return false
	}
}

// String returns the lowercase game name used in logs and metric labels.
func (t GameType) String() string {
	switch t {
	case GameTypeLoveLetter:
		return "love_letter"
	case GameTypeMastermind:
		return "mastermind"
	case GameTypeUnspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// PlayerBounds returns the inclusive minimum and maximum roster size.
// Invalid game types report (0, 0).
func (t GameType) PlayerBounds() (minPlayers, maxPlayers int) {
	switch t {
	case GameTypeLoveLetter:
		return 2, 4
	case GameTypeMastermind:
		return 2, 2
	default:
		return 0, 0
	}
}

// Identifier is the registry key for a lobby or game.
type Identifier struct {
	SessionID string
	GameType  GameType
}

// NewIdentifier validates and normalizes a session identifier.
func NewIdentifier(sessionID string, gameType GameType) (Identifier, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Identifier{}, apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	if !gameType.Valid() {
		return Identifier{}, apperrors.WithMetadata(apperrors.CodeInvalidGameType, "invalid game type", map[string]string{
			"GameType": gameType.String(),
		})
	}
	return Identifier{SessionID: sessionID, GameType: gameType}, nil
}

// String renders the identifier as "<game>/<session>".
func (id Identifier) String() string {
	return id.GameType.String() + "/" + id.SessionID
}

// NormalizePlayerID trims a player id and rejects empty values.
func NormalizePlayerID(playerID string) (string, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", apperrors.New(apperrors.CodePlayerIDRequired, "player id is required")
	}
	return playerID, nil
}
