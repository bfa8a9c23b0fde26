package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-fall/components"
	"ebiten-fall/ecs"
)

// RenderSystem draws every entity carrying a Transform as a filled
// rectangle. Membership is captured during Process so that Draw, which runs
// outside the tick, works from the last completed world state.
type RenderSystem struct {
	required ecs.Signature
	visible  []ecs.Entity
}

// NewRenderSystem creates a rendering system for the given Transform id.
func NewRenderSystem(transformID ecs.ComponentID) *RenderSystem {
	return &RenderSystem{required: ecs.Signature(0).Set(transformID)}
}

// RequiredSignature requires Transform.
func (s *RenderSystem) RequiredSignature() ecs.Signature { return s.required }

// Process snapshots the current member list for the next Draw.
func (s *RenderSystem) Process(dt float64, members []ecs.Entity, w *ecs.World) {
	s.visible = append(s.visible[:0], members...)
}

// Draw clears the screen and renders the snapshot.
func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	for _, e := range s.visible {
		transform, ok := ecs.Get[components.Transform](w, e)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(transform.X), float32(transform.Y),
			float32(transform.W), float32(transform.H),
			transform.Color, false)
	}
}
