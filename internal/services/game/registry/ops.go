package registry

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/lobby"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
)

// CreateLobby creates the lobby for id if it does not exist yet.
func (r *Registry) CreateLobby(ctx context.Context, id session.Identifier) error {
	reply := make(chan error, 1)
	err := r.submit(ctx, event{
		kind: "create_lobby",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			var err error
			if _, ok := r.games[id]; ok {
				err = alreadyStarted(id)
			} else {
				r.ensureLobby(id, now)
			}
			reply <- err
			return err
		},
	})
	if err != nil {
		return err
	}
	res, err := await(ctx, r, reply)
	if err != nil {
		return err
	}
	return res
}

// HostLobby creates the lobby for id if needed and joins playerID to it.
// The outcome is pushed to out.
func (r *Registry) HostLobby(ctx context.Context, id session.Identifier, playerID string, out LobbyOut) error {
	return r.submit(ctx, event{
		kind: "host_lobby",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			if _, ok := r.games[id]; ok {
				return r.rejectLobby(playerID, out, alreadyStarted(id))
			}
			entry := r.ensureLobby(id, now)
			entry.lastActive = now
			return entry.lobby.Join(playerID, out)
		},
	})
}

// JoinLobby joins playerID to an existing lobby. The outcome is pushed to out.
func (r *Registry) JoinLobby(ctx context.Context, id session.Identifier, playerID string, out LobbyOut) error {
	return r.submit(ctx, event{
		kind: "join_lobby",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			entry, ok := r.lobbies[id]
			if !ok {
				return r.rejectLobby(playerID, out, r.missingLobby(id))
			}
			entry.lastActive = now
			return entry.lobby.Join(playerID, out)
		},
	})
}

// StartLobby starts the game for id on behalf of playerID and returns the
// players in turn order. Every lobby member is told the game is starting.
func (r *Registry) StartLobby(ctx context.Context, id session.Identifier, playerID string) ([]string, error) {
	type startReply struct {
		players []string
		err     error
	}
	reply := make(chan startReply, 1)
	err := r.submit(ctx, event{
		kind: "start_lobby",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			players, err := r.startLobby(id, playerID, now)
			reply <- startReply{players: players, err: err}
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	res, err := await(ctx, r, reply)
	if err != nil {
		return nil, err
	}
	return res.players, res.err
}

// OpenGameStream registers out as playerID's game push channel, replacing
// any earlier one, and pushes the current snapshot. Failures are pushed as
// StreamRejected.
func (r *Registry) OpenGameStream(ctx context.Context, id session.Identifier, playerID string, out GameOut) error {
	return r.submit(ctx, event{
		kind: "open_game_stream",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			entry, err := r.lookupGame(id, playerID)
			if err != nil {
				r.pushGame(playerID, out, StreamRejected{Err: err})
				return err
			}
			entry.lastActive = now
			if old := entry.streams[playerID]; old != nil && old != out {
				r.pushGame(playerID, old, StreamRejected{Err: apperrors.New(apperrors.CodeStreamReplaced,
					"game stream for "+id.String()+" replaced by a newer connection")})
			}
			entry.streams[playerID] = out
			r.pushGame(playerID, out, entry.game.snapshot(playerID))
			return nil
		},
	})
}

// SubmitAction applies a player's move. On success every registered stream
// receives a fresh snapshot; on failure out receives an ActionRejected.
func (r *Registry) SubmitAction(ctx context.Context, id session.Identifier, playerID string, action Action, out GameOut) error {
	return r.submit(ctx, event{
		kind: "submit_action",
		id:   id,
		handle: func(r *Registry, now time.Time) error {
			entry, err := r.lookupGame(id, playerID)
			if err != nil {
				r.pushGame(playerID, out, ActionRejected{Err: err})
				return err
			}
			entry.lastActive = now
			next, err := entry.game.apply(playerID, action, r.seeds)
			if err != nil {
				r.pushGame(playerID, out, ActionRejected{Err: err})
				return err
			}
			entry.game = next
			r.broadcast(entry)
			if next.done() {
				for p, s := range entry.streams {
					r.pushGame(p, s, GameEnded{})
				}
				delete(r.games, id)
				r.recordCounts()
				r.logger.Info("game finished", zap.Stringer("session", id))
			}
			return nil
		},
	})
}

// SweepResult reports what one sweep removed.
type SweepResult struct {
	Lobbies int
	Games   int
}

// Sweep evicts every lobby and game idle for longer than the expiry window.
func (r *Registry) Sweep(ctx context.Context) (SweepResult, error) {
	reply := make(chan SweepResult, 1)
	err := r.submit(ctx, event{
		kind: "sweep",
		handle: func(r *Registry, now time.Time) error {
			reply <- r.sweep(now)
			return nil
		},
	})
	if err != nil {
		return SweepResult{}, err
	}
	return await(ctx, r, reply)
}

// Counts reports live lobbies and games.
func (r *Registry) Counts(ctx context.Context) (lobbies, games int, err error) {
	reply := make(chan [2]int, 1)
	err = r.submit(ctx, event{
		kind: "counts",
		handle: func(r *Registry, _ time.Time) error {
			reply <- [2]int{len(r.lobbies), len(r.games)}
			return nil
		},
	})
	if err != nil {
		return 0, 0, err
	}
	res, err := await(ctx, r, reply)
	return res[0], res[1], err
}

func (r *Registry) ensureLobby(id session.Identifier, now time.Time) *lobbyEntry {
	if entry, ok := r.lobbies[id]; ok {
		return entry
	}
	entry := &lobbyEntry{lobby: lobby.New(id, r.dropped), lastActive: now}
	r.lobbies[id] = entry
	r.recordCounts()
	r.logger.Info("lobby created", zap.Stringer("session", id))
	return entry
}

func (r *Registry) startLobby(id session.Identifier, playerID string, now time.Time) ([]string, error) {
	entry, ok := r.lobbies[id]
	if !ok {
		return nil, r.missingLobby(id)
	}
	entry.lastActive = now
	players, err := entry.lobby.Start(playerID)
	if err != nil {
		return nil, err
	}

	g, err := r.factories[id.GameType](players, r.seeds)
	if err != nil {
		failure := apperrors.Wrap(apperrors.CodeGameCreateFailed, "create "+id.String(), err)
		entry.lobby.Abort(failure)
		delete(r.lobbies, id)
		r.recordCounts()
		r.logger.Error("game creation failed", zap.Stringer("session", id), zap.Error(err))
		return nil, failure
	}

	entry.lobby.NotifyStarting()
	delete(r.lobbies, id)
	r.games[id] = &gameEntry{
		id:         id,
		game:       g,
		streams:    make(map[string]GameOut, len(players)),
		lastActive: now,
	}
	r.recordCounts()
	r.logger.Info("game started", zap.Stringer("session", id), zap.Strings("players", players))
	return players, nil
}

func (r *Registry) lookupGame(id session.Identifier, playerID string) (*gameEntry, error) {
	entry, ok := r.games[id]
	if !ok {
		if _, inLobby := r.lobbies[id]; inLobby {
			return nil, apperrors.New(apperrors.CodeSessionNotStarted, id.String()+" is still in its lobby")
		}
		return nil, notFound(id)
	}
	if !entry.game.hasPlayer(playerID) {
		return nil, apperrors.Newf(apperrors.CodePlayerNotInSession, "%q is not playing %s", playerID, id)
	}
	return entry, nil
}

func (r *Registry) missingLobby(id session.Identifier) error {
	if _, ok := r.games[id]; ok {
		return alreadyStarted(id)
	}
	return notFound(id)
}

func (r *Registry) rejectLobby(playerID string, out LobbyOut, err error) error {
	if out != nil {
		if sendErr := out.Send(lobby.Rejected{Err: err}); sendErr != nil {
			r.dropped(playerID, sendErr)
		}
	}
	return err
}

func (r *Registry) broadcast(entry *gameEntry) {
	for p, out := range entry.streams {
		r.pushGame(p, out, entry.game.snapshot(p))
	}
}

func (r *Registry) sweep(now time.Time) SweepResult {
	var res SweepResult
	for id, entry := range r.lobbies {
		if now.Sub(entry.lastActive) > r.expiry {
			delete(r.lobbies, id)
			res.Lobbies++
		}
	}
	for id, entry := range r.games {
		if now.Sub(entry.lastActive) > r.expiry {
			delete(r.games, id)
			res.Games++
		}
	}
	if res.Lobbies+res.Games > 0 {
		r.metrics.Evicted("lobby", res.Lobbies)
		r.metrics.Evicted("game", res.Games)
		r.recordCounts()
		r.logger.Info("swept idle sessions", zap.Int("lobbies", res.Lobbies), zap.Int("games", res.Games))
	}
	return res
}

func notFound(id session.Identifier) error {
	return apperrors.New(apperrors.CodeNotFound, id.String()+" not found")
}

func alreadyStarted(id session.Identifier) error {
	return apperrors.New(apperrors.CodeSessionAlreadyStarted, id.String()+" already started")
}
