// internal/component/quantum.go
package component

import (
	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/pkg/physics"
)

// Quantum — состояние квантового эффекта на сущности.
type Quantum struct {
	DefID string

	// Observed пересчитывается только по истечении Cooldown, а не каждый
	// кадр: частота проверки наблюдения отвязана от частоты кадров.
	Observed bool
	Cooldown float64

	// LastPosition — позиция на конец предыдущего кадра, для детекта движения.
	LastPosition physics.Vec2

	InitialGravityScale float64

	// CloneID — живой временный клон сущности, 0 если его нет.
	// Пока клон жив, новый не создаётся.
	CloneID types.EntityID
}
