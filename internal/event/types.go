// internal/event/types.go
package event

import (
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/pkg/physics"
)

const (
	Teleported         EventType = "Teleported"         // Объект телепортировался
	GravityInverted    EventType = "GravityInverted"    // Гравитация объекта перевёрнута
	CloneSpawned       EventType = "CloneSpawned"       // Появился временный клон
	CloneExpired       EventType = "CloneExpired"       // Клон догорел и удалён
	ObservationChanged EventType = "ObservationChanged" // Флаг наблюдения сменился
)

// TeleportPayload — детали телепортации для подписчиков.
type TeleportPayload struct {
	Entity   types.EntityID
	From, To physics.Vec2
	Affected int // сколько тел получило импульс искажения
}

// ObservationPayload сопровождает ObservationChanged.
type ObservationPayload struct {
	Entity   types.EntityID
	Observed bool
}

// ClonePayload сопровождает CloneSpawned и CloneExpired.
type ClonePayload struct {
	Owner types.EntityID
	Clone types.EntityID
}

// GravityPayload сопровождает GravityInverted.
type GravityPayload struct {
	Entity       types.EntityID
	GravityScale float64
}
