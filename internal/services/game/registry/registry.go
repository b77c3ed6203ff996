package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/random"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/lobby"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/observability"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/push"
)

const tracerName = "github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/registry"

const (
	// DefaultMailboxSize bounds the number of queued events.
	DefaultMailboxSize = 1024
	// DefaultSessionExpiry is how long a session may go without events.
	DefaultSessionExpiry = 30 * time.Minute
)

// ErrAlreadyRunning is returned when Run is called a second time.
var ErrAlreadyRunning = errors.New("registry actor already running")

// Config configures a Registry. Zero values pick defaults.
type Config struct {
	MailboxSize   int
	SessionExpiry time.Duration
	// Seeds supplies shuffle seeds for new rounds. Defaults to crypto seeds.
	Seeds   random.SeedSource
	Clock   func() time.Time
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Tracer  trace.Tracer
}

// Registry is the session actor. Construct it with New and start it with Run.
type Registry struct {
	mailbox chan event
	stopped chan struct{}
	runOnce sync.Once

	expiry  time.Duration
	seeds   random.SeedSource
	clock   func() time.Time
	logger  *zap.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer

	// Everything below is owned by the actor goroutine.
	factories map[session.GameType]gameFactory
	lobbies   map[session.Identifier]*lobbyEntry
	games     map[session.Identifier]*gameEntry
}

type lobbyEntry struct {
	lobby      *lobby.Lobby
	lastActive time.Time
}

type gameEntry struct {
	id         session.Identifier
	game       game
	streams    map[string]GameOut
	lastActive time.Time
}

// event is one unit of actor work. handle runs on the actor goroutine and
// returns the outcome recorded in metrics and the span.
type event struct {
	kind   string
	id     session.Identifier
	link   trace.SpanContext
	handle func(r *Registry, now time.Time) error
}

// New creates a stopped registry.
func New(cfg Config) *Registry {
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = DefaultMailboxSize
	}
	if cfg.SessionExpiry <= 0 {
		cfg.SessionExpiry = DefaultSessionExpiry
	}
	if cfg.Seeds == nil {
		cfg.Seeds = random.NewSeed
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	return &Registry{
		mailbox:   make(chan event, cfg.MailboxSize),
		stopped:   make(chan struct{}),
		expiry:    cfg.SessionExpiry,
		seeds:     cfg.Seeds,
		clock:     cfg.Clock,
		logger:    cfg.Logger.Named("registry"),
		metrics:   cfg.Metrics,
		tracer:    cfg.Tracer,
		factories: defaultFactories(),
		lobbies:   map[session.Identifier]*lobbyEntry{},
		games:     map[session.Identifier]*gameEntry{},
	}
}

// Run processes events until ctx ends. It returns nil on cancellation. Once
// Run returns, every pending and future call fails with an Internal error.
func (r *Registry) Run(ctx context.Context) error {
	err := ErrAlreadyRunning
	r.runOnce.Do(func() {
		err = nil
		defer close(r.stopped)
		r.logger.Info("registry actor started", zap.Int("mailbox_size", cap(r.mailbox)))
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("registry actor stopped",
					zap.Int("lobbies", len(r.lobbies)),
					zap.Int("games", len(r.games)),
					zap.Int("dropped_events", len(r.mailbox)))
				return
			case ev := <-r.mailbox:
				r.process(ev)
			}
		}
	})
	return err
}

// Stopped is closed once the actor has exited.
func (r *Registry) Stopped() <-chan struct{} {
	return r.stopped
}

func (r *Registry) process(ev event) {
	start := time.Now()
	_, span := r.tracer.Start(context.Background(), "registry."+ev.kind,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithLinks(trace.Link{SpanContext: ev.link}),
		trace.WithAttributes(
			attribute.String("game.session_id", ev.id.SessionID),
			attribute.String("game.type", ev.id.GameType.String()),
		),
	)
	err := ev.handle(r, r.clock())
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.GetCode(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		r.logger.Debug("event rejected",
			zap.String("kind", ev.kind),
			zap.Stringer("session", ev.id),
			zap.Error(err))
	}
	span.End()

	r.metrics.ObserveEvent(ev.kind, outcome, time.Since(start))
	r.metrics.SetMailboxDepth(len(r.mailbox))
}

// submit enqueues ev, blocking while the mailbox is full.
func (r *Registry) submit(ctx context.Context, ev event) error {
	ev.link = trace.SpanContextFromContext(ctx)
	select {
	case <-r.stopped:
		return errUnavailable()
	default:
	}
	select {
	case r.mailbox <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.stopped:
		return errUnavailable()
	}
}

// await waits for a single-use reply. A reply that can no longer arrive
// because the actor stopped resolves to an Internal error.
func await[T any](ctx context.Context, r *Registry, reply <-chan T) (T, error) {
	var zero T
	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-r.stopped:
		select {
		case v := <-reply:
			return v, nil
		default:
			return zero, apperrors.New(apperrors.CodeReplyDropped, "registry stopped before replying")
		}
	}
}

func errUnavailable() error {
	return apperrors.New(apperrors.CodeRegistryUnavailable, "registry actor is not running")
}

func (r *Registry) dropped(playerID string, err error) {
	reason := "closed"
	if errors.Is(err, push.ErrFull) {
		reason = "full"
	}
	r.metrics.PushDropped(reason)
	r.logger.Debug("push dropped", zap.String("player_id", playerID), zap.String("reason", reason))
}

func (r *Registry) pushGame(playerID string, out GameOut, msg GameMessage) {
	if out == nil {
		return
	}
	if err := out.Send(msg); err != nil {
		r.dropped(playerID, err)
	}
}

func (r *Registry) recordCounts() {
	if r.metrics == nil {
		return
	}
	r.metrics.SetLobbies(len(r.lobbies))
	perType := map[session.GameType]int{}
	for id := range r.games {
		perType[id.GameType]++
	}
	for _, t := range session.GameTypes {
		r.metrics.SetGames(t.String(), perType[t])
	}
}
