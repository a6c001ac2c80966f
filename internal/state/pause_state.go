// internal/state/pause_state.go
package state

import (
	"image/color"
	"log"

	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует игру поверх затемнения; симуляция при этом стоит.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	fontFace font.Face
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	face, err := render.LoadFontFace(26)
	if err != nil {
		log.Fatal(err)
	}
	return &PauseState{sm: sm, previous: previous, fontFace: face}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.previous.pauseButton.IsClicked(mx, my) {
			unpause = true
		}
	}

	if unpause {
		s.previous.togglePause()
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.fontFace, pauseText)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, pauseText, s.fontFace,
		config.ScreenWidth/2-w/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
