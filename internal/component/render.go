// component/render.go
package component

import "image/color"

// Sprite — компонент для отрисовки
type Sprite struct {
	BaseColor color.RGBA // базовый "запутанный" оттенок
	Color     color.RGBA // текущий цвет с учётом мерцания
	Radius    float64    // мировой радиус
	Scale     float64
	FlipY     bool // отражение по вертикали (гравитация перевёрнута)
	Alpha     float64
}
