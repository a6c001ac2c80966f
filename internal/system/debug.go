// internal/system/debug.go
package system

import (
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/defs"
	"go-quantum-sandbox/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugRenderSystem рисует диагностические окружности: радиус наблюдения
// и фиксированный радиус временного искажения, плюс вектор скорости.
// Никакого влияния на поведение, только визуализация.
type DebugRenderSystem struct {
	ecs *entity.ECS
}

func NewDebugRenderSystem(ecs *entity.ECS) *DebugRenderSystem {
	return &DebugRenderSystem{ecs: ecs}
}

func (s *DebugRenderSystem) Draw(screen *ebiten.Image) {
	cam := s.ecs.Camera
	if cam == nil {
		return
	}
	scale := cam.WorldScale()

	for id, q := range s.ecs.Quantums {
		body, hasBody := s.ecs.Bodies[id]
		if !hasBody {
			continue
		}
		def, ok := defs.QuantumLibrary[q.DefID]
		if !ok {
			continue
		}

		x, y := cam.WorldToScreen(body.Position())
		vector.StrokeCircle(screen, float32(x), float32(y),
			float32(def.ObservationRadius*scale), 1, config.DebugObservationColor, true)
		vector.StrokeCircle(screen, float32(x), float32(y),
			float32(config.DistortionRadius*scale), 1, config.DebugDistortionColor, true)

		v := body.Velocity()
		vector.StrokeLine(screen, float32(x), float32(y),
			float32(x+v.X*scale*0.25), float32(y-v.Y*scale*0.25), 1,
			config.DebugVelocityColor, true)
	}
}
