// internal/state/menu_state.go
package state

import (
	"log"

	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font"
)

// MenuState — титульный экран
type MenuState struct {
	sm       *StateMachine
	seed     int64
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	face, err := render.LoadFontFace(18)
	if err != nil {
		log.Fatal(err)
	}
	return &MenuState{sm: sm, seed: seed, fontFace: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{
		"QUANTUM SANDBOX",
		"",
		"Orbs teleport only while nobody is looking.",
		"Move the camera (WASD / arrows) to observe them.",
		"Right click removes an orb, Tab shows debug overlays.",
		"",
		"Space / Enter — start",
	}
	y := config.ScreenHeight/2 - len(lines)*14
	for _, line := range lines {
		bounds := text.BoundString(m.fontFace, line)
		w := bounds.Max.X - bounds.Min.X
		text.Draw(screen, line, m.fontFace, config.ScreenWidth/2-w/2, y, config.TextLightColor)
		y += 28
	}
}

func (m *MenuState) Exit() {}
