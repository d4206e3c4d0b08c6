// internal/state/menu_state.go
package state

import (
	"image"

	"go-duel-arena/internal/config"
	"go-duel-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — состояние меню: заголовок и кнопка начала дуэли.
type MenuState struct {
	sm          *StateMachine
	cfg         config.Env
	fontFace    font.Face
	titleFace   font.Face
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, cfg config.Env, fontFace, titleFace font.Face) *MenuState {
	buttonRect := image.Rect(
		config.ScreenWidth/2-110, config.ScreenHeight/2-25,
		config.ScreenWidth/2+110, config.ScreenHeight/2+25,
	)
	return &MenuState{
		sm:          sm,
		cfg:         cfg,
		fontFace:    fontFace,
		titleFace:   titleFace,
		startButton: ui.NewButton(buttonRect, "Start the duel", fontFace),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewBattleState(m.sm, m.cfg, m.fontFace, m.titleFace))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.startButton.Contains(x, y) {
			m.sm.SetState(NewBattleState(m.sm, m.cfg, m.fontFace, m.titleFace))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "Duel Arena"
	bounds, _ := font.BoundString(m.titleFace, title)
	titleW := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, title, m.titleFace, (config.ScreenWidth-titleW)/2, config.ScreenHeight/3, config.LogAccentColor)

	x, y := ebiten.CursorPosition()
	m.startButton.Draw(screen, m.startButton.Contains(x, y))
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
