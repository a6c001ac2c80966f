// internal/entity/ecs.go
package entity

import (
	"go-quantum-sandbox/internal/component"
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/pkg/physics"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Sprites  map[types.EntityID]*component.Sprite
	Bodies   map[types.EntityID]*physics.Body
	Quantums map[types.EntityID]*component.Quantum
	Clones   map[types.EntityID]*component.TemporalClone
	Crates   map[types.EntityID]*component.Crate

	Camera *component.Camera
}

func NewECS() *ECS {
	return &ECS{
		NextID:   1,
		Sprites:  make(map[types.EntityID]*component.Sprite),
		Bodies:   make(map[types.EntityID]*physics.Body),
		Quantums: make(map[types.EntityID]*component.Quantum),
		Clones:   make(map[types.EntityID]*component.TemporalClone),
		Crates:   make(map[types.EntityID]*component.Crate),
		Camera:   component.NewCamera(physics.Vec2{X: 0, Y: 3}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity удаляет сущность из всех карт компонентов.
// Физическое тело из мира убирает вызывающая сторона.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Sprites, id)
	delete(ecs.Bodies, id)
	delete(ecs.Quantums, id)
	delete(ecs.Clones, id)
	delete(ecs.Crates, id)
}
