package spawners

import (
	"errors"
	"image/color"
	"math/rand"

	"go.uber.org/zap"

	"ebiten-fall/components"
	"ebiten-fall/config"
	"ebiten-fall/ecs"
)

// EntitySpawner manages the creation of demo entities with randomized
// initial state.
type EntitySpawner struct {
	world  *ecs.World
	cfg    config.SpawnConfig
	width  float64
	height float64
	rng    *rand.Rand
	log    *zap.Logger
}

// NewEntitySpawner creates a spawner for the given window dimensions.
func NewEntitySpawner(world *ecs.World, cfg config.SpawnConfig, windowW, windowH int, seed int64, log *zap.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:  world,
		cfg:    cfg,
		width:  float64(windowW),
		height: float64(windowH),
		rng:    rand.New(rand.NewSource(seed)),
		log:    log,
	}
}

// SpawnFallingRect creates one rectangle with random position, color and
// downward velocity.
func (s *EntitySpawner) SpawnFallingRect() (ecs.Entity, error) {
	e, err := s.world.NewEntity()
	if err != nil {
		return 0, err
	}
	if err := ecs.Assign(s.world, e, components.Transform{
		X:     s.rng.Float64() * s.width,
		Y:     s.rng.Float64() * s.height,
		W:     s.cfg.RectSize,
		H:     s.cfg.RectSize,
		Color: s.randomColor(),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Assign(s.world, e, components.Physics{Velocity: s.randomVelocity()}); err != nil {
		return 0, err
	}
	return e, nil
}

// SpawnBatch creates up to count rectangles, stopping early if the entity
// pool runs out.
func (s *EntitySpawner) SpawnBatch(count int) int {
	spawned := 0
	for i := 0; i < count; i++ {
		if _, err := s.SpawnFallingRect(); err != nil {
			if errors.Is(err, ecs.ErrEntityPoolExhausted) {
				s.log.Warn("entity pool exhausted", zap.Int("spawned", spawned))
			} else {
				s.log.Error("spawn failed", zap.Error(err))
			}
			break
		}
		spawned++
	}
	s.log.Info("spawned falling rectangles", zap.Int("count", spawned))
	return spawned
}

// Recycle moves a fallen rectangle back above the top edge with a fresh
// horizontal position, color and velocity.
func (s *EntitySpawner) Recycle(e ecs.Entity) {
	transform, ok := ecs.Get[components.Transform](s.world, e)
	if !ok {
		return
	}
	transform.X = s.rng.Float64() * s.width
	transform.Y = -transform.H
	transform.Color = s.randomColor()
	if physics, ok := ecs.Get[components.Physics](s.world, e); ok {
		physics.Velocity = s.randomVelocity()
	}
}

func (s *EntitySpawner) randomVelocity() float64 {
	return s.cfg.MinVelocity + s.rng.Float64()*(s.cfg.MaxVelocity-s.cfg.MinVelocity)
}

func (s *EntitySpawner) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(s.rng.Intn(256)),
		G: uint8(s.rng.Intn(256)),
		B: uint8(s.rng.Intn(256)),
		A: 255,
	}
}
