// internal/component/camera.go
package component

import (
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/pkg/physics"
)

// Camera — единственная камера сцены (синглтон в ECS, как GameState у волн).
// Мир Y-вверх, экран Y-вниз: проекция переворачивает вертикальную ось.
type Camera struct {
	Position physics.Vec2
	Zoom     float64
}

func NewCamera(position physics.Vec2) *Camera {
	return &Camera{Position: position, Zoom: config.CameraStartZoom}
}

// WorldToScreen переводит мировую точку в пиксельные координаты экрана.
func (c *Camera) WorldToScreen(w physics.Vec2) (float64, float64) {
	scale := config.PixelsPerUnit * c.Zoom
	x := (w.X-c.Position.X)*scale + float64(config.ScreenWidth)/2
	y := float64(config.ScreenHeight)/2 - (w.Y-c.Position.Y)*scale
	return x, y
}

// ScreenToWorld — обратное преобразование.
func (c *Camera) ScreenToWorld(x, y float64) physics.Vec2 {
	scale := config.PixelsPerUnit * c.Zoom
	return physics.Vec2{
		X: (x-float64(config.ScreenWidth)/2)/scale + c.Position.X,
		Y: (float64(config.ScreenHeight)/2-y)/scale + c.Position.Y,
	}
}

// WorldToViewport проецирует мировую точку в нормализованные координаты
// вьюпорта: (0,0) — левый нижний угол, (1,1) — правый верхний.
func (c *Camera) WorldToViewport(w physics.Vec2) (float64, float64) {
	x, y := c.WorldToScreen(w)
	return x / float64(config.ScreenWidth), 1 - y/float64(config.ScreenHeight)
}

// InView сообщает, лежит ли точка строго внутри вьюпорта.
func (c *Camera) InView(w physics.Vec2) bool {
	vx, vy := c.WorldToViewport(w)
	return vx > 0 && vx < 1 && vy > 0 && vy < 1
}

// WorldScale возвращает текущий коэффициент пиксели/единица.
func (c *Camera) WorldScale() float64 {
	return config.PixelsPerUnit * c.Zoom
}
