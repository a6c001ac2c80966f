// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// PixelsPerUnit — масштаб мира: сколько пикселей в одной физической единице.
	PixelsPerUnit = 48.0

	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100 // миллисекунды

	// Физика
	Gravity          = -9.81
	CrateRadius      = 0.35
	CrateMass        = 2.0
	PlatformMinWidth = 2.0
	PlatformMaxWidth = 4.5

	// Наблюдение
	ObservationCooldown = 0.1 // интервал пересчёта флага наблюдения, секунды

	// Телепортация
	TeleportMinDistance   = 1.0
	TeleportRayLength     = 2.0
	TeleportLandingOffset = 0.2
	TeleportRecoilFactor  = 0.5 // доля силы искажения для импульса отдачи
	DistortionRadius      = 3.0

	// Временные клоны
	CloneSpawnChance = 0.4
	CloneScaleFactor = 0.8
	CloneSpawnAlpha  = 0.55
	MoveThreshold    = 0.1

	// Мерцание при наблюдении
	FlickerPeriod    = 0.6
	FlickerAmplitude = 0.35

	// Камера
	CameraPanSpeed  = 6.0 // единиц в секунду
	CameraStartZoom = 1.0

	// UI
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	PauseButtonOffsetX = 130
	ButtonRadius       = 14.0
	InfoPanelWidth     = 230
	InfoPanelPadding   = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{35, 35, 50, 255}
	PlatformColor   = color.RGBA{70, 100, 120, 255}
	CrateColor      = color.RGBA{150, 110, 70, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	// Цвет "запутанного" состояния по умолчанию, если определение не задало свой.
	EntangledColor = color.RGBA{120, 60, 220, 255}
	FlickerColor   = color.RGBA{255, 255, 255, 255}

	ObservedColor   = color.RGBA{50, 205, 50, 220}
	UnobservedColor = color.RGBA{220, 60, 60, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	DebugObservationColor = color.RGBA{80, 180, 255, 200}
	DebugDistortionColor  = color.RGBA{255, 160, 40, 200}
	DebugVelocityColor    = color.RGBA{255, 255, 0, 200}

	PanelColor = color.RGBA{30, 30, 45, 230}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1.0, 2.0, 4.0}
)
