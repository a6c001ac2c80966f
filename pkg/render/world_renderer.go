// pkg/render/world_renderer.go
package render

import (
	"fmt"
	"math"

	"go-quantum-sandbox/internal/component"
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/pkg/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

// worldMargin — запас вокруг статической геометрии на предрендеренном
// заднике, в мировых единицах.
const worldMargin = 3.0

// WorldRenderer отрисовывает статическую часть сцены: фон, единичную
// сетку и платформы. Задник рендерится один раз в мировом разрешении,
// а затем каждый кадр выводится одним вызовом с трансформацией камеры.
type WorldRenderer struct {
	boxes    []physics.Box
	fontFace font.Face

	minX, minY float64
	maxX, maxY float64

	mapImage *ebiten.Image
}

func NewWorldRenderer(boxes []physics.Box, face font.Face) *WorldRenderer {
	r := &WorldRenderer{
		boxes:    boxes,
		fontFace: face,
		minX:     -worldMargin,
		minY:     -worldMargin,
		maxX:     worldMargin,
		maxY:     worldMargin,
	}
	for _, b := range boxes {
		r.minX = math.Min(r.minX, b.Min.X-worldMargin)
		r.minY = math.Min(r.minY, b.Min.Y-worldMargin)
		r.maxX = math.Max(r.maxX, b.Max.X+worldMargin)
		r.maxY = math.Max(r.maxY, b.Max.Y+worldMargin)
	}

	w := int((r.maxX - r.minX) * config.PixelsPerUnit)
	h := int((r.maxY - r.minY) * config.PixelsPerUnit)
	r.mapImage = ebiten.NewImage(w, h)

	// Отрисовываем задник один раз при инициализации
	r.RenderBackground()
	return r
}

// toImage переводит мировую точку в пиксели задника.
func (r *WorldRenderer) toImage(x, y float64) (float32, float32) {
	return float32((x - r.minX) * config.PixelsPerUnit),
		float32((r.maxY - y) * config.PixelsPerUnit)
}

// RenderBackground создаёт предрендеренное изображение задника.
func (r *WorldRenderer) RenderBackground() {
	r.mapImage.Fill(config.BackgroundColor)

	// Единичная сетка
	for x := math.Ceil(r.minX); x <= r.maxX; x++ {
		x0, y0 := r.toImage(x, r.maxY)
		x1, y1 := r.toImage(x, r.minY)
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, 1, config.GridColor, false)
	}
	for y := math.Ceil(r.minY); y <= r.maxY; y++ {
		x0, y0 := r.toImage(r.minX, y)
		x1, y1 := r.toImage(r.maxX, y)
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, 1, config.GridColor, false)
	}

	// Статические платформы
	for _, b := range r.boxes {
		x0, y0 := r.toImage(b.Min.X, b.Max.Y)
		x1, y1 := r.toImage(b.Max.X, b.Min.Y)
		vector.DrawFilledRect(r.mapImage, x0, y0, x1-x0, y1-y0, config.PlatformColor, true)
		vector.StrokeRect(r.mapImage, x0, y0, x1-x0, y1-y0, 2, DarkenColor(config.PlatformColor), true)
	}

	// Подписи координат по оси X каждые 5 единиц, для ориентировки
	for x := math.Ceil(r.minX/5) * 5; x <= r.maxX; x += 5 {
		label := fmt.Sprintf("%.0f", x)
		px, py := r.toImage(x, r.minY+1)
		text.Draw(r.mapImage, label, r.fontFace, int(px)+3, int(py), config.TextLightColor)
	}
}

// Draw выводит задник одним вызовом с учётом позиции и зума камеры.
func (r *WorldRenderer) Draw(screen *ebiten.Image, cam *component.Camera) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cam.Zoom, cam.Zoom)
	sx, sy := cam.WorldToScreen(physics.Vec2{X: r.minX, Y: r.maxY})
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(r.mapImage, op)
}
