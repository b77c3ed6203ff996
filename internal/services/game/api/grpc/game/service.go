package game

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	gamev1 "github.com/fridge-dev/frj-game-ngn-sub000/api/gen/go/game/v1"
	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/id"
	grpcmeta "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/api/grpc/metadata"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/lobby"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/observability"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/registry"
)

const (
	DefaultPushBuffer  = 64
	DefaultActionRate  = 20
	DefaultActionBurst = 40
)

// Registry is the part of the session actor the service drives.
type Registry interface {
	HostLobby(ctx context.Context, id session.Identifier, playerID string, out registry.LobbyOut) error
	JoinLobby(ctx context.Context, id session.Identifier, playerID string, out registry.LobbyOut) error
	StartLobby(ctx context.Context, id session.Identifier, playerID string) ([]string, error)
	OpenGameStream(ctx context.Context, id session.Identifier, playerID string, out registry.GameOut) error
	SubmitAction(ctx context.Context, id session.Identifier, playerID string, action registry.Action, out registry.GameOut) error
}

// Config tunes per-stream resources. Zero values pick defaults.
type Config struct {
	PushBuffer int
	// ActionRate is the sustained actions per second one data stream may send.
	ActionRate  float64
	ActionBurst int
	Logger      *zap.Logger
	Metrics     *observability.Metrics
}

// Service implements the game.v1.GameService gRPC API.
type Service struct {
	gamev1.UnimplementedGameServiceServer
	registry    Registry
	pushBuffer  int
	actionRate  rate.Limit
	actionBurst int
	logger      *zap.Logger
	metrics     *observability.Metrics
	idGenerator func() (string, error)
}

// NewService creates a Service over reg.
func NewService(reg Registry, cfg Config) *Service {
	if cfg.PushBuffer <= 0 {
		cfg.PushBuffer = DefaultPushBuffer
	}
	if cfg.ActionRate <= 0 {
		cfg.ActionRate = DefaultActionRate
	}
	if cfg.ActionBurst <= 0 {
		cfg.ActionBurst = DefaultActionBurst
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Service{
		registry:    reg,
		pushBuffer:  cfg.PushBuffer,
		actionRate:  rate.Limit(cfg.ActionRate),
		actionBurst: cfg.ActionBurst,
		logger:      cfg.Logger.Named("game_service"),
		metrics:     cfg.Metrics,
		idGenerator: id.NewID,
	}
}

type lobbyEnqueue func(ctx context.Context, id session.Identifier, playerID string, out registry.LobbyOut) error

// HostGame creates the lobby if needed, joins it and streams lobby updates.
func (s *Service) HostGame(in *gamev1.HostGameRequest, stream grpc.ServerStreamingServer[gamev1.LobbyMessage]) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "host game request is required")
	}
	return s.serveLobby(stream, "HostGame", in.SessionID, in.GameType, in.PlayerID, s.registry.HostLobby)
}

// JoinGame joins an existing lobby and streams lobby updates.
func (s *Service) JoinGame(in *gamev1.JoinGameRequest, stream grpc.ServerStreamingServer[gamev1.LobbyMessage]) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "join game request is required")
	}
	return s.serveLobby(stream, "JoinGame", in.SessionID, in.GameType, in.PlayerID, s.registry.JoinLobby)
}

// StartGame starts the lobby's game on behalf of its leader.
func (s *Service) StartGame(ctx context.Context, in *gamev1.StartGameRequest) (*gamev1.StartGameResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "start game request is required")
	}
	locale := grpcmeta.LocaleFromContext(ctx)
	sid, playerID, err := parseScope(in.SessionID, in.GameType, in.PlayerID)
	if err != nil {
		return nil, handleDomainError(err, locale)
	}
	players, err := s.registry.StartLobby(ctx, sid, playerID)
	if err != nil {
		return nil, handleDomainError(err, locale)
	}
	return &gamev1.StartGameResponse{PlayerIDs: players}, nil
}

// serveLobby forwards lobby pushes until the game starts, the player is
// rejected or the client leaves.
func (s *Service) serveLobby(stream grpc.ServerStreamingServer[gamev1.LobbyMessage], rpc, sessionID string, gameType gamev1.GameType, playerID string, enqueue lobbyEnqueue) error {
	ctx := stream.Context()
	locale := grpcmeta.LocaleFromContext(ctx)
	sid, playerID, err := parseScope(sessionID, gameType, playerID)
	if err != nil {
		return handleDomainError(err, locale)
	}
	defer s.metrics.StreamOpened(rpc)()

	out := registry.NewLobbyOut(s.connectionID(ctx), s.pushBuffer)
	defer out.Close()
	if err := enqueue(ctx, sid, playerID, out); err != nil {
		return handleDomainError(err, locale)
	}

	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case msg := <-out.C():
			if rejected, ok := msg.(lobby.Rejected); ok {
				return handleDomainError(rejected.Err, locale)
			}
			wire := lobbyMessageToProto(msg)
			if wire == nil {
				continue
			}
			if err := stream.Send(wire); err != nil {
				return err
			}
			if lobby.Terminal(msg) {
				return nil
			}
		}
	}
}

// OpenGameDataStream binds the caller to a started game. The first message
// must be a handshake; afterwards actions flow in and snapshots flow out.
func (s *Service) OpenGameDataStream(stream grpc.BidiStreamingServer[gamev1.GameDataClientMessage, gamev1.GameDataServerMessage]) error {
	ctx := stream.Context()
	locale := grpcmeta.LocaleFromContext(ctx)

	first, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return handleDomainError(apperrors.New(apperrors.CodeHandshakeRequired, "stream closed before handshake"), locale)
	}
	if err != nil {
		return err
	}
	hs := first.GetHandshake()
	if hs == nil {
		return handleDomainError(apperrors.New(apperrors.CodeHandshakeRequired, "first message must be a handshake"), locale)
	}
	sid, playerID, err := parseScope(hs.SessionID, hs.GameType, hs.PlayerID)
	if err != nil {
		return handleDomainError(err, locale)
	}
	defer s.metrics.StreamOpened("OpenGameDataStream")()

	out := registry.NewGameOut(s.connectionID(ctx), s.pushBuffer)
	defer out.Close()
	if err := s.registry.OpenGameStream(ctx, sid, playerID, out); err != nil {
		return handleDomainError(err, locale)
	}

	limiter := rate.NewLimiter(s.actionRate, s.actionBurst)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.receiveActions(gctx, stream, sid, playerID, out, limiter)
	})

	// The receive loop stays blocked in Recv until the handler returns, so
	// only wait for it when it is the one that stopped the group.
	sendErr := s.sendUpdates(gctx, stream, out, locale)
	if gctx.Err() != nil && ctx.Err() == nil {
		if err := g.Wait(); err != nil {
			return handleDomainError(err, locale)
		}
	}
	return handleDomainError(sendErr, locale)
}

func (s *Service) receiveActions(ctx context.Context, stream grpc.BidiStreamingServer[gamev1.GameDataClientMessage, gamev1.GameDataServerMessage], sid session.Identifier, playerID string, out registry.GameOut, limiter *rate.Limiter) error {
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		action, err := actionFromProto(msg)
		if err == nil && !limiter.Allow() {
			s.metrics.ActionRateLimited()
			err = apperrors.New(apperrors.CodeRateLimited, "too many actions")
		}
		if err != nil {
			if sendErr := out.Send(registry.ActionRejected{Err: err}); sendErr != nil {
				s.logger.Debug("rejection dropped", zap.String("player_id", playerID), zap.Error(sendErr))
			}
			continue
		}
		if err := s.registry.SubmitAction(ctx, sid, playerID, action, out); err != nil {
			return err
		}
	}
}

// sendUpdates is the only goroutine that writes to the stream.
func (s *Service) sendUpdates(ctx context.Context, stream grpc.BidiStreamingServer[gamev1.GameDataClientMessage, gamev1.GameDataServerMessage], out registry.GameOut, locale string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-out.C():
			var wire *gamev1.GameDataServerMessage
			switch m := msg.(type) {
			case registry.StreamRejected:
				return handleDomainError(m.Err, locale)
			case registry.GameEnded:
				return nil
			case registry.ActionRejected:
				wire = &gamev1.GameDataServerMessage{Rejection: rejectionToProto(m.Err, locale)}
			case registry.LoveLetterState:
				wire = &gamev1.GameDataServerMessage{LoveLetterState: loveLetterStateToProto(m.View)}
			case registry.MastermindState:
				wire = &gamev1.GameDataServerMessage{MastermindState: mastermindStateToProto(m.View)}
			default:
				continue
			}
			if err := stream.Send(wire); err != nil {
				return err
			}
		}
	}
}

func (s *Service) connectionID(ctx context.Context) string {
	if requestID := grpcmeta.RequestIDFromContext(ctx); requestID != "" {
		return requestID
	}
	generated, err := s.idGenerator()
	if err != nil {
		return "unknown"
	}
	return generated
}

// parseScope validates the identifiers shared by every request.
func parseScope(sessionID string, gameType gamev1.GameType, playerID string) (session.Identifier, string, error) {
	playerID, err := session.NormalizePlayerID(playerID)
	if err != nil {
		return session.Identifier{}, "", err
	}
	sid, err := session.NewIdentifier(sessionID, gameTypeFromProto(gameType))
	if err != nil {
		return session.Identifier{}, "", err
	}
	return sid, playerID, nil
}

func rejectionToProto(err error, locale string) *gamev1.Rejection {
	return &gamev1.Rejection{
		Code:    string(apperrors.GetCode(err)),
		Message: apperrors.LocalizedMessage(err, locale),
	}
}

func handleDomainError(err error, locale string) error {
	return apperrors.HandleError(err, locale)
}
