// internal/state/game_state.go
package state

import (
	"log"
	"time"

	game "go-quantum-sandbox/internal/app"
	"go-quantum-sandbox/internal/config"
	"go-quantum-sandbox/internal/ui"
	"go-quantum-sandbox/pkg/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	infoPanel     *ui.InfoPanel
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic, err := game.NewGame(seed)
	if err != nil {
		log.Fatal(err)
	}

	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	speedButton := ui.NewSpeedButton(
		float32(config.ScreenWidth-config.SpeedButtonOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.ButtonRadius),
		gameLogic.FontFace,
	)
	pauseButton := ui.NewPauseButton(
		float32(config.ScreenWidth-config.PauseButtonOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.ButtonRadius)*0.6,
		config.TextLightColor,
		config.ObservedColor,
	)

	return &GameState{
		sm:            sm,
		game:          gameLogic,
		indicator:     indicator,
		speedButton:   speedButton,
		pauseButton:   pauseButton,
		infoPanel:     ui.NewInfoPanel(gameLogic.FontFace),
		lastClickTime: time.Now(),
	}
}

func (gs *GameState) Enter() {}

func (gs *GameState) Update(deltaTime float64) {
	gs.handleInput(deltaTime)
	gs.game.Update(deltaTime)
}

func (gs *GameState) handleInput(deltaTime float64) {
	// Панорамирование камеры — так игрок "наблюдает" за объектами.
	pan := physics.Vec2{}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		pan.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		pan.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pan.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pan.Y -= 1
	}
	if pan != (physics.Vec2{}) {
		gs.game.PanCamera(pan, deltaTime)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		gs.game.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.togglePause()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		world := gs.game.ECS.Camera.ScreenToWorld(float64(mx), float64(my))
		if id, ok := gs.game.OrbAt(world); ok {
			gs.game.DestroyOrb(id)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(gs.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
			return
		}
		gs.lastClickTime = time.Now()

		mx, my := ebiten.CursorPosition()
		switch {
		case gs.pauseButton.IsClicked(mx, my):
			gs.togglePause()
		case gs.speedButton.IsClicked(mx, my):
			gs.game.SetSpeedMultiplier(gs.speedButton.Cycle())
		}
	}
}

func (gs *GameState) togglePause() {
	gs.pauseButton.Toggle()
	gs.game.TogglePause()
	if gs.game.IsPaused() {
		gs.sm.SetState(NewPauseState(gs.sm, gs))
	}
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	gs.game.Draw(screen)

	gs.indicator.Draw(screen, gs.game.ObservedCount() > 0)
	gs.speedButton.Draw(screen)
	gs.pauseButton.Draw(screen)

	teleports, inversions, clones := gs.game.EffectCounts()
	gs.infoPanel.Draw(screen, ui.PanelStats{
		Orbs:          gs.game.OrbCount(),
		ObservedCount: gs.game.ObservedCount(),
		Teleports:     teleports,
		Inversions:    inversions,
		Clones:        clones,
		Speed:         gs.game.SpeedMultiplier(),
		Debug:         gs.game.DebugEnabled(),
	})
}

func (gs *GameState) Exit() {}
