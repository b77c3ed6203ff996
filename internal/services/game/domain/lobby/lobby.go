package lobby

import (
	"strconv"

	"github.com/samber/lo"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/push"
)

// Out is a member's outbound push channel.
type Out = *push.Channel[Message]

// Member is one roster entry.
type Member struct {
	PlayerID string
	Out      Out
}

// DropFunc observes pushes that could not be delivered.
type DropFunc func(playerID string, err error)

// Lobby is the pre-game roster for one session identifier.
type Lobby struct {
	id         session.Identifier
	minPlayers int
	maxPlayers int
	roster     []Member
	onDrop     DropFunc
}

// New creates an empty lobby sized by the game type's player bounds.
func New(id session.Identifier, onDrop DropFunc) *Lobby {
	minPlayers, maxPlayers := id.GameType.PlayerBounds()
	if onDrop == nil {
		onDrop = func(string, error) {}
	}
	return &Lobby{
		id:         id,
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
		onDrop:     onDrop,
	}
}

// ID returns the lobby's identifier.
func (l *Lobby) ID() session.Identifier {
	return l.id
}

// Size returns the number of members.
func (l *Lobby) Size() int {
	return len(l.roster)
}

// LeaderID returns the first joiner, or "" for an empty lobby.
func (l *Lobby) LeaderID() string {
	if len(l.roster) == 0 {
		return ""
	}
	return l.roster[0].PlayerID
}

// PlayerIDs returns member ids in join order.
func (l *Lobby) PlayerIDs() []string {
	return lo.Map(l.roster, func(m Member, _ int) string { return m.PlayerID })
}

// Join adds playerID or rebinds its channel on reconnect.
//
// The outcome is always pushed to out: a JoinAck on success or a Rejected
// when the lobby is full. The returned error mirrors the rejection so the
// caller can log it.
func (l *Lobby) Join(playerID string, out Out) error {
	playerID, err := session.NormalizePlayerID(playerID)
	if err != nil {
		l.send(playerID, out, Rejected{Err: err})
		return err
	}

	if idx := l.indexOf(playerID); idx >= 0 {
		if old := l.roster[idx].Out; old != nil && old != out {
			l.send(playerID, old, Rejected{Err: replaced(l.id.String())})
		}
		l.roster[idx].Out = out
		l.send(playerID, out, l.ackFor(playerID))
		return nil
	}

	if len(l.roster) >= l.maxPlayers {
		err := apperrors.WithMetadata(apperrors.CodeLobbyFull, "lobby "+l.id.String()+" is full", map[string]string{
			"Max": strconv.Itoa(l.maxPlayers),
		})
		l.send(playerID, out, Rejected{Err: err})
		return err
	}

	existing := l.roster
	l.roster = append(l.roster, Member{PlayerID: playerID, Out: out})
	l.send(playerID, out, l.ackFor(playerID))
	for _, m := range existing {
		l.send(m.PlayerID, m.Out, PlayerJoined{PlayerID: playerID})
	}
	return nil
}

// Start checks that requester may start the game now and returns the
// roster in join order. The lobby is not modified.
func (l *Lobby) Start(requester string) ([]string, error) {
	if requester != l.LeaderID() {
		return nil, apperrors.New(apperrors.CodeNotLeader, "only the leader can start "+l.id.String())
	}
	if len(l.roster) < l.minPlayers {
		return nil, apperrors.WithMetadata(apperrors.CodeNotEnoughPlayers, "not enough players in "+l.id.String(), map[string]string{
			"Min": strconv.Itoa(l.minPlayers),
		})
	}
	return l.PlayerIDs(), nil
}

// NotifyStarting tells every member the game is starting.
func (l *Lobby) NotifyStarting() {
	for _, m := range l.roster {
		l.send(m.PlayerID, m.Out, GameStarting{})
	}
}

// Abort ends every member's lobby stream with err.
func (l *Lobby) Abort(err error) {
	for _, m := range l.roster {
		l.send(m.PlayerID, m.Out, Rejected{Err: err})
	}
}

func (l *Lobby) indexOf(playerID string) int {
	_, idx, ok := lo.FindIndexOf(l.roster, func(m Member) bool { return m.PlayerID == playerID })
	if !ok {
		return -1
	}
	return idx
}

func (l *Lobby) ackFor(playerID string) JoinAck {
	others := lo.FilterMap(l.roster, func(m Member, _ int) (string, bool) {
		return m.PlayerID, m.PlayerID != playerID
	})
	return JoinAck{
		GameType:       l.id.GameType,
		LeaderID:       l.LeaderID(),
		OtherPlayerIDs: others,
	}
}

func (l *Lobby) send(playerID string, out Out, msg Message) {
	if out == nil {
		return
	}
	if err := out.Send(msg); err != nil {
		l.onDrop(playerID, err)
	}
}

func replaced(sessionID string) error {
	return apperrors.New(apperrors.CodeStreamReplaced, "lobby stream for "+sessionID+" replaced by a newer connection")
}
