// internal/state/battle_state.go
package state

import (
	"image/color"
	"log"

	"go-duel-arena/internal/assets"
	"go-duel-arena/internal/battle"
	"go-duel-arena/internal/combat"
	"go-duel-arena/internal/config"
	"go-duel-arena/internal/defs"
	"go-duel-arena/internal/event"
	"go-duel-arena/internal/ui"
	"go-duel-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BattleState — состояние дуэли. Оркестратор шагает по ходам на таймере
// (или по нажатию), презентационный слой рисует арену, полосы здоровья
// и журнал. Боевая логика ничего не знает об этом состоянии.
//
// Управление: Space — один ход, A — автоигра, R — перезапуск, Esc — меню.
type BattleState struct {
	sm        *StateMachine
	cfg       config.Env
	fontFace  font.Face
	titleFace font.Face

	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	scenario   *defs.Scenario
	duel       *battle.Battle
	left       *combat.Combatant
	right      *combat.Combatant

	sprites     *assets.SpriteManager
	leftSprite  *ebiten.Image
	rightSprite *ebiten.Image

	leftBar   *ui.HealthBar
	rightBar  *ui.HealthBar
	battleLog *ui.BattleLog

	maxTurns  int
	autoPlay  bool
	turnTimer float64
}

func NewBattleState(sm *StateMachine, cfg config.Env, fontFace, titleFace font.Face) *BattleState {
	dispatcher := event.NewDispatcher()
	s := &BattleState{
		sm:         sm,
		cfg:        cfg,
		fontFace:   fontFace,
		titleFace:  titleFace,
		dispatcher: dispatcher,
		sprites:    assets.NewSpriteManager(),
		battleLog:  ui.NewBattleLog(fontFace, dispatcher),
		leftBar:    ui.NewHealthBar(config.LeftFighterX-config.HealthBarWidth/2, config.HealthBarY, fontFace),
		rightBar:   ui.NewHealthBar(config.RightFighterX-config.HealthBarWidth/2, config.HealthBarY, fontFace),
		maxTurns:   config.DefaultMaxTurns,
		autoPlay:   cfg.AutoPlay,
	}

	scenario, err := defs.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		log.Printf("scenario %s unavailable: %v, falling back to the default duel", cfg.ScenarioPath, err)
	} else {
		s.scenario = scenario
		if scenario.MaxTurns > 0 {
			s.maxTurns = scenario.MaxTurns
		}
	}

	seed := cfg.Seed
	if s.scenario != nil && s.scenario.Seed != 0 {
		seed = s.scenario.Seed
	}
	s.rng = utils.NewPRNGService(seed)

	s.restart()
	return s
}

func (s *BattleState) Enter() {
	// Ничего не делаем при входе
}

func (s *BattleState) Exit() {
	// Ничего не делаем при выходе
}

// restart пересоздаёт бойцов и начинает новый бой.
func (s *BattleState) restart() {
	var left, right *combat.Combatant
	if s.scenario != nil {
		var err error
		left, right, err = s.scenario.Build()
		if err != nil {
			log.Printf("failed to build scenario: %v, falling back to the default duel", err)
			left, right = nil, nil
		}
	}
	if left == nil || right == nil {
		left, right = defaultPair()
	}
	s.left, s.right = left, right
	s.loadSprites()
	s.battleLog.Clear()
	s.turnTimer = 0

	duel, err := battle.New(s.left, s.right, s.rng, s.dispatcher)
	if err != nil {
		// Ошибка конфигурации всплывает до первого хода
		log.Printf("battle setup rejected: %v", err)
		s.battleLog.Append(err.Error())
		s.duel = nil
		return
	}
	s.duel = duel
}

// defaultPair — дуэль по умолчанию, когда сценарий недоступен.
func defaultPair() (*combat.Combatant, *combat.Combatant) {
	alice := combat.NewCombatant("Alice")
	alice.Equip(combat.NewWeapon("Longsword", 70, 8))
	vim := combat.NewCombatant("Vim")
	vim.Equip(combat.NewWeapon("Longsword", 70, 8))
	return alice, vim
}

func (s *BattleState) loadSprites() {
	leftPath, leftColor := visualsFor(s.scenarioSideID(true), config.LeftFighterColor)
	rightPath, rightColor := visualsFor(s.scenarioSideID(false), config.RightFighterColor)
	s.leftSprite = s.sprites.LoadOrPlaceholder(leftPath, int(config.FighterSize), leftColor)
	s.rightSprite = s.sprites.LoadOrPlaceholder(rightPath, int(config.FighterSize), rightColor)
}

func (s *BattleState) scenarioSideID(left bool) string {
	if s.scenario == nil {
		return ""
	}
	if left {
		return s.scenario.Left.Combatant
	}
	return s.scenario.Right.Combatant
}

func visualsFor(combatantID string, fallback color.RGBA) (string, color.RGBA) {
	def, ok := defs.CombatantLibrary[combatantID]
	if !ok {
		return "", fallback
	}
	c := fallback
	if def.Visuals.Color.A > 0 {
		c = color.RGBA{def.Visuals.Color.R, def.Visuals.Color.G, def.Visuals.Color.B, def.Visuals.Color.A}
	}
	return def.Visuals.Sprite, c
}

func (s *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.cfg, s.fontFace, s.titleFace))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.autoPlay = !s.autoPlay
	}

	if s.duel == nil || s.duel.Finished() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.playTurn()
		return
	}
	if s.autoPlay {
		s.turnTimer += deltaTime
		if s.turnTimer >= config.TurnInterval {
			s.playTurn()
		}
	}
}

func (s *BattleState) playTurn() {
	s.turnTimer = 0
	s.duel.PlayTurn()
	if !s.duel.Finished() && s.duel.Turn() >= s.maxTurns {
		// Страховочный лимит: объявляем ничью вместо вечной дуэли
		s.duel.Run(s.maxTurns)
	}
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, config.ArenaGroundY,
		config.ScreenWidth, config.ScreenHeight-config.ArenaGroundY, config.GroundColor, true)

	s.drawFighter(screen, s.leftSprite, config.LeftFighterX, false, s.left)
	s.drawFighter(screen, s.rightSprite, config.RightFighterX, true, s.right)

	s.leftBar.Draw(screen, captionFor(s.left), s.left.Health.Current(), s.left.Health.Max())
	s.rightBar.Draw(screen, captionFor(s.right), s.right.Health.Current(), s.right.Health.Max())

	s.battleLog.Draw(screen)

	if s.duel != nil && s.duel.Finished() {
		s.drawBanner(screen)
	}
}

func (s *BattleState) drawFighter(screen, img *ebiten.Image, x float64, flip bool, c *combat.Combatant) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	scale := config.FighterSize / h

	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-scale, scale)
		op.GeoM.Translate(w*scale, 0)
	} else {
		op.GeoM.Scale(scale, scale)
	}
	op.GeoM.Translate(x-w*scale/2, config.ArenaGroundY-config.FighterSize)
	if c.Health.Status() == combat.Defeated {
		op.ColorScale.ScaleAlpha(0.35)
	}
	screen.DrawImage(img, op)
}

func (s *BattleState) drawBanner(screen *ebiten.Image) {
	outcome := s.duel.Outcome()
	banner := "Draw!"
	if !outcome.Draw {
		banner = outcome.Winner + " wins!"
	}
	bounds, _ := font.BoundString(s.titleFace, banner)
	bannerW := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, banner, s.titleFace, (config.ScreenWidth-bannerW)/2, config.ScreenHeight/4, config.LogAccentColor)
}

// captionFor подписывает бойца вместе с его оружием.
func captionFor(c *combat.Combatant) string {
	if w := c.CurrentWeapon(); w != nil {
		return c.Name + " (" + w.Name + ")"
	}
	return c.Name + " (unarmed)"
}
