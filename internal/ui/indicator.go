// internal/ui/indicator.go
package ui

import (
	"go-quantum-sandbox/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана: зелёный, если хотя бы один
// квантовый объект сейчас наблюдается, красный — если ни один.
type StateIndicator struct {
	X, Y   float32
	Radius float32
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, anyObserved bool) {
	fill := config.UnobservedColor
	if anyObserved {
		fill = config.ObservedColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 1.5, config.IndicatorStroke, true)
}
