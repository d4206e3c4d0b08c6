// internal/ui/health_bar.go
package ui

import (
	"fmt"

	"go-duel-arena/internal/config"
	"go-duel-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthBar отображает здоровье бойца.
type HealthBar struct {
	X, Y     float32
	Width    float32
	Height   float32
	fontFace font.Face
}

// NewHealthBar создает новую полосу здоровья.
func NewHealthBar(x, y float32, fontFace font.Face) *HealthBar {
	return &HealthBar{
		X:        x,
		Y:        y,
		Width:    config.HealthBarWidth,
		Height:   config.HealthBarHeight,
		fontFace: fontFace,
	}
}

// Draw рисует полосу здоровья: заполнение пропорционально current/max,
// цвет уходит от зелёного к красному по мере потери здоровья.
func (b *HealthBar) Draw(screen *ebiten.Image, name string, current, max int) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.HealthEmptyColor, true)

	ratio := 0.0
	if max > 0 {
		ratio = float64(current) / float64(max)
	}
	fillColor := render.LerpColor(config.HealthLowColor, config.HealthFullColor, ratio)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*float32(ratio), b.Height, fillColor, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, config.HealthBarStroke, config.HealthStrokeColor, true)

	label := fmt.Sprintf("%s  %d/%d", name, current, max)
	text.Draw(screen, label, b.fontFace, int(b.X), int(b.Y)-6, config.TextLightColor)
}
