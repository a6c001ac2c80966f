// internal/system/clone.go
package system

import (
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/internal/event"
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/internal/utils"
)

// CloneSystem управляет жизненным циклом временных клонов: линейное
// затухание альфы и удаление по истечении длительности. Это замена
// фоновой корутины исходного эффекта — состояние клона сверяется
// с таймером на каждом тике.
type CloneSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewCloneSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CloneSystem {
	return &CloneSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *CloneSystem) Update(deltaTime float64) {
	for id, clone := range s.ecs.Clones {
		clone.Elapsed += deltaTime
		progress := utils.Clamp(clone.Elapsed/clone.Duration, 0, 1)
		clone.Alpha = clone.InitialAlpha * (1 - progress)

		if clone.Elapsed >= clone.Duration {
			s.expire(id, clone.Owner)
		}
	}
}

// DestroyFor досрочно убирает клона владельца — например, когда сам
// владелец уничтожается до конца затухания.
func (s *CloneSystem) DestroyFor(owner types.EntityID) {
	for id, clone := range s.ecs.Clones {
		if clone.Owner == owner {
			s.expire(id, owner)
		}
	}
}

func (s *CloneSystem) expire(id, owner types.EntityID) {
	s.ecs.DestroyEntity(id)
	if q, ok := s.ecs.Quantums[owner]; ok && q.CloneID == id {
		q.CloneID = 0
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.CloneExpired,
		Data: event.ClonePayload{Owner: owner, Clone: id},
	})
}
