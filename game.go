package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-fall/components"
	"ebiten-fall/config"
	"ebiten-fall/ecs"
	"ebiten-fall/spawners"
	"ebiten-fall/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	renderSystem *systems.RenderSystem
	spawner      *spawners.EntitySpawner
	log          *zap.Logger

	width, height int
	frames        int
	recycled      int
}

// NewGame builds the world: registers the component types, wires the render
// and physics systems, and spawns the initial rectangles.
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	world := ecs.NewWorldWithCapacity(cfg.World.MaxEntities, cfg.World.MaxComponentTypes)

	transformID, err := ecs.RegisterComponent[components.Transform](world)
	if err != nil {
		return nil, err
	}
	physicsID, err := ecs.RegisterComponent[components.Physics](world)
	if err != nil {
		return nil, err
	}

	renderSystem := systems.NewRenderSystem(transformID)
	physicsSystem := systems.NewPhysicsSystem(transformID, physicsID, cfg.Window.Height)
	world.RegisterSystem(renderSystem)
	world.RegisterSystem(physicsSystem)

	spawner := spawners.NewEntitySpawner(world, cfg.Spawn,
		cfg.Window.Width, cfg.Window.Height, time.Now().UnixNano(), log)

	count := cfg.Spawn.Count
	if count <= 0 {
		count = cfg.World.MaxEntities
	}
	spawner.SpawnBatch(count)

	game := &Game{
		world:        world,
		renderSystem: renderSystem,
		spawner:      spawner,
		log:          log,
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
	}

	// Rectangles that fall off the bottom come back in at the top.
	world.Events().Subscribe(systems.EventEntityFell, func(ev ecs.Event) {
		fell := ev.(systems.EntityFellEvent)
		game.spawner.Recycle(fell.Entity)
		game.recycled++
	})

	return game, nil
}

// Update advances the world by one fixed tick.
func (g *Game) Update() error {
	g.world.Tick(1.0 / float64(ebiten.TPS()))

	g.frames++
	if g.frames%600 == 0 {
		g.log.Info("frame stats",
			zap.Float64("tps", ebiten.ActualTPS()),
			zap.Float64("fps", ebiten.ActualFPS()),
			zap.Int("recycled", g.recycled))
	}
	return nil
}

// Draw renders the last completed tick.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
