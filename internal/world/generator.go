package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
)

// Generator produces dungeons. A Generator holds no per-run state and may be
// used from several goroutines at once.
type Generator struct {
	tuning  Tuning
	logger  *zap.Logger
	tracer  trace.Tracer
	holders *gamedata.KeyHolderTable
	enemies *gamedata.EnemyRegistry
}

// Option configures a Generator.
type Option func(*Generator)

// WithTuning replaces the default generation parameters.
func WithTuning(t Tuning) Option {
	return func(g *Generator) { g.tuning = t }
}

// WithLogger sets the logger attempts are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithTracer sets the tracer generation spans are recorded with.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithKeyHolders sets the weighted table of small-key holders.
func WithKeyHolders(t *gamedata.KeyHolderTable) Option {
	return func(g *Generator) { g.holders = t }
}

// WithEnemies sets the registry enemy key holders are drawn from.
func WithEnemies(r *gamedata.EnemyRegistry) Option {
	return func(g *Generator) { g.enemies = r }
}

// NewGenerator creates a Generator. Unset options fall back to the default
// tuning, a no-op logger, the global tracer and the embedded data tables.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{tuning: DefaultTuning()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.tracer == nil {
		g.tracer = telemetry.Tracer("world")
	}
	if g.holders == nil {
		g.holders = gamedata.MustLoadKeyHolderTable()
	}
	if g.enemies == nil {
		g.enemies = gamedata.MustLoadEnemyRegistry()
	}
	return g
}

// Generate builds a dungeon with the default generator.
func Generate(ctx context.Context, seed []int, roomCount, maxTries int) (*Dungeon, bool) {
	return NewGenerator().Generate(ctx, seed, roomCount, maxTries)
}

// Generate seeds one random source from seed and makes up to maxTries
// attempts with it, returning the first dungeon that passes every stage.
// The source is not reseeded between attempts, so equal arguments always
// give equal results. It returns false when roomCount or maxTries is below
// one, or when every attempt fails.
func (g *Generator) Generate(ctx context.Context, seed []int, roomCount, maxTries int) (*Dungeon, bool) {
	runID := uuid.NewString()
	ctx, span := g.tracer.Start(ctx, "dungeon.generate", trace.WithAttributes(
		attribute.String("dungeon.run_id", runID),
		attribute.IntSlice("dungeon.seed", seed),
		attribute.Int("dungeon.room_count", roomCount),
		attribute.Int("dungeon.max_tries", maxTries),
	))
	defer span.End()

	logger := g.logger.With(zap.String("run_id", runID))

	if roomCount < 1 || maxTries < 1 {
		logger.Debug("nothing to generate",
			zap.Int("room_count", roomCount),
			zap.Int("max_tries", maxTries),
		)
		span.SetStatus(codes.Error, "invalid arguments")
		return nil, false
	}
	if err := g.tuning.Validate(); err != nil {
		logger.Error("invalid tuning", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid tuning")
		return nil, false
	}

	start := time.Now()
	rng := NewSeededRand(seed)
	for try := 1; try <= maxTries; try++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("generation cancelled", zap.Int("try", try), zap.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return nil, false
		}

		d, err := g.attempt(ctx, rng, roomCount, try)
		if err != nil {
			logger.Debug("attempt discarded",
				zap.Int("try", try),
				zap.String("stage", stageName(err)),
				zap.Error(err),
			)
			continue
		}

		logger.Info("dungeon generated",
			zap.Int("try", try),
			zap.Int("rooms", d.Len()),
			zap.Int("locks", d.LockCount(LockSmallKey)),
			zap.Duration("elapsed", time.Since(start)),
		)
		span.SetAttributes(
			attribute.Bool("dungeon.success", true),
			attribute.Int("dungeon.tries", try),
			attribute.Int("dungeon.rooms", d.Len()),
			attribute.Int("dungeon.locks", d.LockCount(LockSmallKey)),
			attribute.Int64("dungeon.generation_ms", time.Since(start).Milliseconds()),
		)
		return d, true
	}

	logger.Info("no dungeon within max tries",
		zap.Int("max_tries", maxTries),
		zap.Duration("elapsed", time.Since(start)),
	)
	span.SetAttributes(
		attribute.Bool("dungeon.success", false),
		attribute.Int("dungeon.tries", maxTries),
	)
	span.SetStatus(codes.Error, "max tries exhausted")
	return nil, false
}

// Attempt runs every stage once on a fresh dungeon, drawing from rng.
// The error wraps one of the Err* sentinels when a stage rejects the layout.
func (g *Generator) Attempt(ctx context.Context, rng Rand, roomCount int) (*Dungeon, error) {
	return g.attempt(ctx, rng, roomCount, 0)
}

func (g *Generator) attempt(ctx context.Context, rng Rand, roomCount, try int) (*Dungeon, error) {
	_, span := g.tracer.Start(ctx, "dungeon.attempt", trace.WithAttributes(
		attribute.Int("dungeon.try", try),
	))
	defer span.End()

	if roomCount < 1 {
		return nil, fmt.Errorf("room count must be at least 1, got %d", roomCount)
	}

	a := &attempt{
		dungeon: newDungeon(),
		rng:     rng,
		tuning:  g.tuning,
		holders: g.holders,
		enemies: g.enemies,
	}
	d, err := a.run(roomCount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, stageName(err))
		return nil, err
	}
	span.SetAttributes(attribute.Int("dungeon.rooms", d.Len()))
	return d, nil
}

// attempt carries the state of one generation attempt through its stages.
type attempt struct {
	dungeon *Dungeon
	rng     Rand
	tuning  Tuning
	holders *gamedata.KeyHolderTable
	enemies *gamedata.EnemyRegistry
}

func (a *attempt) run(roomCount int) (*Dungeon, error) {
	a.buildRooms(roomCount)
	ends := a.classify()
	if err := a.placeSpecialRooms(ends); err != nil {
		return nil, err
	}
	if _, err := a.placeLocks(); err != nil {
		return nil, err
	}
	if err := a.placeKeys(); err != nil {
		return nil, err
	}
	return a.dungeon, nil
}

func (a *attempt) bossDef() *gamedata.EnemyDef {
	if a.enemies == nil {
		return nil
	}
	return a.enemies.FirstOfKind("boss")
}

// stageName maps a rejection to the stage that raised it.
func stageName(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientTopology),
		errors.Is(err, ErrExitArmTooShort),
		errors.Is(err, ErrBossJunction):
		return "special_rooms"
	case errors.Is(err, ErrDoubleLock), errors.Is(err, ErrLockShortfall):
		return "locks"
	case errors.Is(err, ErrKeyShortfall):
		return "keys"
	default:
		return "unknown"
	}
}
