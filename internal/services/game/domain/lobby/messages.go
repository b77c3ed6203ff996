package lobby

import "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"

// Message is a push delivered to a lobby member.
type Message interface {
	isLobbyMessage()
}

// JoinAck confirms a join to the joining player.
type JoinAck struct {
	GameType session.GameType
	LeaderID string
	// OtherPlayerIDs lists every other member in join order.
	OtherPlayerIDs []string
}

// PlayerJoined tells existing members about a newcomer.
type PlayerJoined struct {
	PlayerID string
}

// GameStarting is the last message a lobby sends. Members should open a
// game data stream next.
type GameStarting struct{}

// Rejected ends the member's lobby stream with Err.
type Rejected struct {
	Err error
}

func (JoinAck) isLobbyMessage()      {}
func (PlayerJoined) isLobbyMessage() {}
func (GameStarting) isLobbyMessage() {}
func (Rejected) isLobbyMessage()     {}

// Terminal reports whether m ends a lobby stream.
func Terminal(m Message) bool {
	switch m.(type) {
	case GameStarting, Rejected:
		return true
	default:
		return false
	}
}
