// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-quantum-sandbox/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

// InfoPanel — панель статистики квантовых эффектов в левом верхнем углу.
type InfoPanel struct {
	fontFace font.Face
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{fontFace: face}
}

// PanelStats — данные для отображения за текущий кадр.
type PanelStats struct {
	Orbs          int
	ObservedCount int
	Teleports     int
	Inversions    int
	Clones        int
	Speed         float64
	Debug         bool
}

func (p *InfoPanel) Draw(screen *ebiten.Image, stats PanelStats) {
	lines := []string{
		fmt.Sprintf("Orbs: %d (observed: %d)", stats.Orbs, stats.ObservedCount),
		fmt.Sprintf("Teleports: %d", stats.Teleports),
		fmt.Sprintf("Inversions: %d", stats.Inversions),
		fmt.Sprintf("Clones: %d", stats.Clones),
		fmt.Sprintf("Speed: x%.0f", stats.Speed),
		fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()),
	}
	if stats.Debug {
		lines = append(lines, "Debug: on")
	}

	const lineHeight = 18
	height := float32(len(lines)*lineHeight + 2*config.InfoPanelPadding)
	vector.DrawFilledRect(screen, 0, 0, config.InfoPanelWidth, height, config.PanelColor, false)

	y := config.InfoPanelPadding + lineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, config.InfoPanelPadding, y, config.TextLightColor)
		y += lineHeight
	}
}
