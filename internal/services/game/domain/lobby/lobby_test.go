package lobby

import (
	"slices"
	"testing"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/push"
)

func newOut(t *testing.T) Out {
	t.Helper()
	return push.NewChannel[Message](t.Name(), 16)
}

func drain(out Out) []Message {
	var msgs []Message
	for {
		select {
		case m := <-out.C():
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

func loveLetterLobby(t *testing.T) *Lobby {
	t.Helper()
	id, err := session.NewIdentifier("s1", session.GameTypeLoveLetter)
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	return New(id, nil)
}

func TestJoinAcksAndBroadcasts(t *testing.T) {
	l := loveLetterLobby(t)
	p1, p2, p3 := newOut(t), newOut(t), newOut(t)

	if err := l.Join("p1", p1); err != nil {
		t.Fatalf("join p1: %v", err)
	}
	if err := l.Join("p2", p2); err != nil {
		t.Fatalf("join p2: %v", err)
	}
	if err := l.Join("p3", p3); err != nil {
		t.Fatalf("join p3: %v", err)
	}

	got1 := drain(p1)
	if len(got1) != 3 {
		t.Fatalf("p1 messages = %d, want 3", len(got1))
	}
	if ack, ok := got1[0].(JoinAck); !ok || ack.LeaderID != "p1" || len(ack.OtherPlayerIDs) != 0 {
		t.Fatalf("p1 ack = %#v", got1[0])
	}
	if got1[1] != (PlayerJoined{PlayerID: "p2"}) || got1[2] != (PlayerJoined{PlayerID: "p3"}) {
		t.Fatalf("p1 notifications = %#v", got1[1:])
	}

	got3 := drain(p3)
	if len(got3) != 1 {
		t.Fatalf("p3 messages = %d, want 1", len(got3))
	}
	ack3 := got3[0].(JoinAck)
	if ack3.LeaderID != "p1" || !slices.Equal(ack3.OtherPlayerIDs, []string{"p1", "p2"}) {
		t.Fatalf("p3 ack = %#v", ack3)
	}
	if ack3.GameType != session.GameTypeLoveLetter {
		t.Fatalf("p3 ack game type = %v", ack3.GameType)
	}
}

func TestJoinReconnectIsIdempotent(t *testing.T) {
	l := loveLetterLobby(t)
	first, p2 := newOut(t), newOut(t)
	_ = l.Join("p1", first)
	_ = l.Join("p2", p2)
	drain(p2)

	second := newOut(t)
	if err := l.Join("p1", second); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if l.Size() != 2 {
		t.Fatalf("size = %d, want 2", l.Size())
	}
	if l.LeaderID() != "p1" {
		t.Fatalf("leader = %q", l.LeaderID())
	}
	msgs := drain(second)
	if len(msgs) != 1 {
		t.Fatalf("expected fresh ack on new channel, got %#v", msgs)
	}
	if _, ok := msgs[0].(JoinAck); !ok {
		t.Fatalf("expected JoinAck, got %#v", msgs[0])
	}
	if extra := drain(p2); len(extra) != 0 {
		t.Fatalf("expected no broadcast on reconnect, got %#v", extra)
	}

	old := drain(first)
	if len(old) == 0 {
		t.Fatal("expected the replaced channel to be notified")
	}
	rej, ok := old[len(old)-1].(Rejected)
	if !ok || !apperrors.HasCode(rej.Err, apperrors.CodeStreamReplaced) {
		t.Fatalf("expected replaced channel to end with STREAM_REPLACED, got %#v", old)
	}
	if !Terminal(rej) {
		t.Fatal("expected the replacement notice to end the old stream")
	}
	if err := l.Join("p1", second); err != nil {
		t.Fatalf("rejoin on same channel: %v", err)
	}
	if msgs := drain(second); len(msgs) != 1 {
		t.Fatalf("expected only a fresh ack when rejoining on the same channel, got %#v", msgs)
	}

	l.NotifyStarting()
	if stale := drain(first); len(stale) != 0 {
		t.Fatalf("expected nothing on the replaced channel, got %#v", stale)
	}
	if msgs := drain(second); len(msgs) != 1 || msgs[0] != (GameStarting{}) {
		t.Fatalf("expected GameStarting on rebound channel, got %#v", msgs)
	}
}

func TestJoinFullLobby(t *testing.T) {
	l := loveLetterLobby(t)
	for _, p := range []string{"p1", "p2", "p3", "p4"} {
		if err := l.Join(p, newOut(t)); err != nil {
			t.Fatalf("join %s: %v", p, err)
		}
	}
	late := newOut(t)
	err := l.Join("p5", late)
	if !apperrors.HasCode(err, apperrors.CodeLobbyFull) {
		t.Fatalf("expected lobby full, got %v", err)
	}
	if l.Size() != 4 {
		t.Fatalf("size = %d, want 4", l.Size())
	}
	msgs := drain(late)
	if len(msgs) != 1 {
		t.Fatalf("expected one rejection, got %#v", msgs)
	}
	rej, ok := msgs[0].(Rejected)
	if !ok || !apperrors.HasCode(rej.Err, apperrors.CodeLobbyFull) {
		t.Fatalf("expected LobbyFull rejection, got %#v", msgs[0])
	}
}

func TestJoinRejectsEmptyPlayer(t *testing.T) {
	l := loveLetterLobby(t)
	out := newOut(t)
	if err := l.Join("  ", out); !apperrors.HasCode(err, apperrors.CodePlayerIDRequired) {
		t.Fatalf("expected player id required, got %v", err)
	}
	if l.Size() != 0 {
		t.Fatal("expected roster unchanged")
	}
	if msgs := drain(out); len(msgs) != 1 || !Terminal(msgs[0]) {
		t.Fatalf("expected terminal rejection, got %#v", msgs)
	}
}

func TestStartPreconditions(t *testing.T) {
	l := loveLetterLobby(t)
	_ = l.Join("p1", newOut(t))

	if _, err := l.Start("p1"); !apperrors.HasCode(err, apperrors.CodeNotEnoughPlayers) {
		t.Fatalf("expected not enough players, got %v", err)
	}
	_ = l.Join("p2", newOut(t))
	_ = l.Join("p3", newOut(t))

	if _, err := l.Start("p2"); !apperrors.HasCode(err, apperrors.CodeNotLeader) {
		t.Fatalf("expected not leader, got %v", err)
	}
	if _, err := l.Start("stranger"); !apperrors.HasCode(err, apperrors.CodeNotLeader) {
		t.Fatalf("expected not leader, got %v", err)
	}
	players, err := l.Start("p1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !slices.Equal(players, []string{"p1", "p2", "p3"}) {
		t.Fatalf("players = %v", players)
	}
	if l.Size() != 3 {
		t.Fatal("expected start to leave the lobby unmodified")
	}
}

func TestAbortRejectsEveryone(t *testing.T) {
	l := loveLetterLobby(t)
	a, b := newOut(t), newOut(t)
	_ = l.Join("p1", a)
	_ = l.Join("p2", b)
	drain(a)
	drain(b)

	l.Abort(apperrors.New(apperrors.CodeGameCreateFailed, "boom"))
	for _, out := range []Out{a, b} {
		msgs := drain(out)
		if len(msgs) != 1 {
			t.Fatalf("expected one message, got %#v", msgs)
		}
		if _, ok := msgs[0].(Rejected); !ok {
			t.Fatalf("expected Rejected, got %#v", msgs[0])
		}
	}
}

func TestSendFailuresAreReported(t *testing.T) {
	id, _ := session.NewIdentifier("s", session.GameTypeMastermind)
	var dropped []string
	l := New(id, func(playerID string, err error) { dropped = append(dropped, playerID) })

	gone := push.NewChannel[Message]("gone", 1)
	_ = l.Join("p1", gone)
	gone.Close()
	_ = l.Join("p2", newOut(t))

	if !slices.Equal(dropped, []string{"p1"}) {
		t.Fatalf("dropped = %v", dropped)
	}
	if l.Size() != 2 {
		t.Fatal("expected disconnect to leave the roster intact")
	}
}
