// internal/system/render.go
package system

import (
	"math"

	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/entity"
	"go-quantum-sandbox/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует динамические сущности: ящики, клонов и квантовые
// орбы. Статический задник выводит WorldRenderer до вызова Draw.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	cam := s.ecs.Camera
	if cam == nil {
		return
	}
	scale := cam.WorldScale()

	// Ящики
	for id := range s.ecs.Crates {
		body, hasBody := s.ecs.Bodies[id]
		if !hasBody {
			continue
		}
		x, y := cam.WorldToScreen(body.Position())
		r := float32(body.Radius * scale)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, config.CrateColor, true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 2, render.DarkenColor(config.CrateColor), true)
		s.drawSpinMark(screen, x, y, float64(r), body.Angle(), false)
	}

	// Клоны рисуются под владельцами
	for _, clone := range s.ecs.Clones {
		x, y := cam.WorldToScreen(clone.Position)
		r := float32(clone.Radius * clone.Scale * scale)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r,
			render.WithAlpha(clone.Color, clone.Alpha), true)
	}

	// Квантовые орбы
	for id := range s.ecs.Quantums {
		body, hasBody := s.ecs.Bodies[id]
		sprite, hasSprite := s.ecs.Sprites[id]
		if !hasBody || !hasSprite {
			continue
		}
		x, y := cam.WorldToScreen(body.Position())
		r := float32(sprite.Radius * sprite.Scale * scale)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r,
			render.WithAlpha(sprite.Color, sprite.Alpha), true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 2,
			render.DarkenColor(sprite.Color), true)
		s.drawSpinMark(screen, x, y, float64(r), body.Angle(), sprite.FlipY)
	}
}

// drawSpinMark — риска от центра к краю, показывает вращение тела и
// вертикальное отражение при перевёрнутой гравитации.
func (s *RenderSystem) drawSpinMark(screen *ebiten.Image, x, y, r, angle float64, flipY bool) {
	// Экран Y-вниз: положительный угол мира крутит против часовой.
	dx := math.Cos(angle) * r
	dy := -math.Sin(angle) * r
	if flipY {
		dy = -dy
	}
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+dx), float32(y+dy), 2,
		config.TextLightColor, true)
}
