// internal/interfaces/game_context.go
package interfaces

// GameContext — методы игры, которые нужны состояниям и UI.
// Интерфейс разрывает циклическую зависимость state -> app.
type GameContext interface {
	TogglePause()
	IsPaused() bool
	ToggleDebug()
	DebugEnabled() bool
	SpeedMultiplier() float64
	SetSpeedMultiplier(m float64)
	EffectCounts() (teleports, inversions, clones int)
	ObservedCount() int
}
