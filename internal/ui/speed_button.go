// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"math"
	"time"

	"go-quantum-sandbox/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

// SpeedButton — кнопка переключения скорости симуляции (x1/x2/x4).
type SpeedButton struct {
	X, Y          float32
	Radius        float32
	SpeedIndex    int
	LastClickTime time.Time
	fontFace      font.Face
}

func NewSpeedButton(x, y, radius float32, face font.Face) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Radius: radius, fontFace: face}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.25*math.Exp(-elapsed*8)
	r := b.Radius * float32(scale)

	vector.DrawFilledCircle(screen, b.X, b.Y, r, config.SpeedButtonColors[b.SpeedIndex], true)
	vector.StrokeCircle(screen, b.X, b.Y, r, 1.5, config.IndicatorStroke, true)

	label := fmt.Sprintf("x%.0f", config.SpeedMultipliers[b.SpeedIndex])
	bounds := text.BoundString(b.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, label, b.fontFace, int(b.X)-w/2, int(b.Y)+h/2, config.TextLightColor)
}

func (b *SpeedButton) IsClicked(mx, my int) bool {
	dx := float64(float32(mx) - b.X)
	dy := float64(float32(my) - b.Y)
	return math.Sqrt(dx*dx+dy*dy) <= float64(b.Radius)*1.5
}

// Cycle переключает на следующую скорость и возвращает её множитель.
func (b *SpeedButton) Cycle() float64 {
	b.SpeedIndex = (b.SpeedIndex + 1) % len(config.SpeedMultipliers)
	b.LastClickTime = time.Now()
	return config.SpeedMultipliers[b.SpeedIndex]
}
