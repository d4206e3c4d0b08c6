// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-duel-arena/internal/config"
	"go-duel-arena/internal/defs"
	"go-duel-arena/internal/state"
	"go-duel-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Библиотеки определений не обязательны: без них играется дуэль по умолчанию
	if err := defs.LoadWeaponDefinitions(config.WeaponDefsPath); err != nil {
		log.Printf("weapon definitions unavailable: %v", err)
	}
	if err := defs.LoadCombatantDefinitions(config.CombatantDefsPath); err != nil {
		log.Printf("combatant definitions unavailable: %v", err)
	}

	fontFace := render.LoadFace(config.FontPath, config.FontSize)
	titleFace := render.LoadFace(config.FontPath, config.TitleFontSize)

	sm := state.NewStateMachine() // Создаём машину состояний
	if cfg.StartInBattle {
		sm.SetState(state.NewBattleState(sm, cfg, fontFace, titleFace))
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, fontFace, titleFace))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Duel Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
