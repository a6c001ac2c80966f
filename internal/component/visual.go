// internal/component/visual.go
package component

import (
	"image/color"

	"go-quantum-sandbox/internal/types"
	"go-quantum-sandbox/pkg/physics"
)

// TemporalClone — временная визуальная копия квантового объекта.
// Клон не имеет физического тела: это чисто рендерная сущность,
// которая линейно гаснет и удаляется по истечении Duration.
type TemporalClone struct {
	Owner    types.EntityID
	Position physics.Vec2
	Radius   float64
	Scale    float64
	Color    color.RGBA

	InitialAlpha float64
	Alpha        float64
	Elapsed      float64 // Сколько времени эффект уже активен
	Duration     float64 // Общая продолжительность эффекта
}
