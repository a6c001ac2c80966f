// internal/system/physics.go
package system

import (
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/pkg/physics"
)

// PhysicsSystem владеет физическим миром и продвигает его каждый кадр.
type PhysicsSystem struct {
	ecs   *entity.ECS
	world *physics.World
}

func NewPhysicsSystem(ecs *entity.ECS, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, world: world}
}

func (s *PhysicsSystem) World() *physics.World {
	return s.world
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	s.world.Step(deltaTime)
	s.ecs.GameTime += deltaTime
}
