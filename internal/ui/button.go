// internal/ui/button.go
package ui

import (
	"image"

	"go-duel-arena/internal/config"
	"go-duel-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	fontFace font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, fontFace font.Face) *Button {
	return &Button{
		Rect:     rect,
		Text:     label,
		fontFace: fontFace,
	}
}

// Contains проверяет, попадает ли точка в границы кнопки.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; при наведении фон подсвечивается.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := config.LogPanelColor
	if hovered {
		bg = render.DarkenColor(config.LogAccentColor)
	}
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.HealthStrokeColor, true)

	bounds, _ := font.BoundString(b.fontFace, b.Text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()
	textX := b.Rect.Min.X + (b.Rect.Dx()-textW)/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+textH)/2
	text.Draw(screen, b.Text, b.fontFace, textX, textY, config.TextLightColor)
}
