// Profiling:
// go build ./profile
// go tool pprof -http=":8000" ./profile mem.pprof

package main

import (
	"github.com/pkg/profile"

	"ebiten-fall/ecs"
)

type position struct{ X, Y float64 }
type velocity struct{ V float64 }

type mover struct{ required ecs.Signature }

func (m *mover) RequiredSignature() ecs.Signature { return m.required }

func (m *mover) Process(dt float64, members []ecs.Entity, w *ecs.World) {
	for _, e := range members {
		pos, ok := ecs.Get[position](w, e)
		if !ok {
			continue
		}
		vel, ok := ecs.Get[velocity](w, e)
		if !ok {
			continue
		}
		pos.Y += vel.V * dt
	}
}

func main() {
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(100, 1000)
	p.Stop()
}

// run churns the allocator, the stores and system membership: fill the
// world, tick, strip half the velocities, then destroy everything.
func run(rounds, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorldWithCapacity(numEntities, 8)
		posID, _ := ecs.RegisterComponent[position](w)
		velID, _ := ecs.RegisterComponent[velocity](w)
		w.RegisterSystem(&mover{required: ecs.Signature(0).Set(posID).Set(velID)})

		entities := make([]ecs.Entity, 0, numEntities)
		for i := 0; i < numEntities; i++ {
			e, err := w.NewEntity()
			if err != nil {
				break
			}
			_ = ecs.Assign(w, e, position{X: float64(i)})
			_ = ecs.Assign(w, e, velocity{V: float64(i % 10)})
			entities = append(entities, e)
		}

		w.Tick(1.0 / 60.0)

		for i, e := range entities {
			if i%2 == 0 {
				_ = ecs.Unassign[velocity](w, e)
			}
		}

		w.Tick(1.0 / 60.0)

		for _, e := range entities {
			w.DestroyEntity(e)
		}
	}
}
