// internal/component/camera_test.go
package component

import (
	"math"
	"testing"

	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/pkg/physics"
)

func TestWorldToScreenCenter(t *testing.T) {
	cam := NewCamera(physics.Vec2{X: 2, Y: 3})
	x, y := cam.WorldToScreen(physics.Vec2{X: 2, Y: 3})
	if x != float64(config.ScreenWidth)/2 || y != float64(config.ScreenHeight)/2 {
		t.Errorf("camera position must project to screen center, got (%v, %v)", x, y)
	}
}

func TestWorldToScreenYFlip(t *testing.T) {
	cam := NewCamera(physics.Vec2{})
	_, yUp := cam.WorldToScreen(physics.Vec2{X: 0, Y: 1})
	_, yDown := cam.WorldToScreen(physics.Vec2{X: 0, Y: -1})
	if yUp >= yDown {
		t.Errorf("higher world point must be higher on screen: up=%v down=%v", yUp, yDown)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(physics.Vec2{X: -1.5, Y: 4})
	cam.Zoom = 1.7
	w := physics.Vec2{X: 3.25, Y: -2.5}
	x, y := cam.WorldToScreen(w)
	back := cam.ScreenToWorld(x, y)
	if math.Abs(back.X-w.X) > 1e-9 || math.Abs(back.Y-w.Y) > 1e-9 {
		t.Errorf("round trip drifted: %v -> %v", w, back)
	}
}

func TestWorldToViewport(t *testing.T) {
	cam := NewCamera(physics.Vec2{})
	vx, vy := cam.WorldToViewport(physics.Vec2{})
	if math.Abs(vx-0.5) > 1e-9 || math.Abs(vy-0.5) > 1e-9 {
		t.Errorf("center must be (0.5, 0.5), got (%v, %v)", vx, vy)
	}
}

func TestInView(t *testing.T) {
	cam := NewCamera(physics.Vec2{})
	if !cam.InView(physics.Vec2{}) {
		t.Error("center must be in view")
	}
	// Далеко за правым краем экрана.
	far := float64(config.ScreenWidth) / config.PixelsPerUnit
	if cam.InView(physics.Vec2{X: far, Y: 0}) {
		t.Error("point beyond the right edge must not be in view")
	}
	// Точка ровно на краю вьюпорта не считается видимой (строгое сравнение).
	halfW := float64(config.ScreenWidth) / 2 / config.PixelsPerUnit
	if cam.InView(physics.Vec2{X: halfW, Y: 0}) {
		t.Error("point exactly on the viewport edge must not be in view")
	}
}
