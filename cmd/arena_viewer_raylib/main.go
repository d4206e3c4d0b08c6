// cmd/arena_viewer_raylib/main.go
package main

import (
	"fmt"
	"log"

	"go-duel-arena/internal/battle"
	"go-duel-arena/internal/combat"
	"go-duel-arena/internal/config"
	"go-duel-arena/internal/defs"
	"go-duel-arena/internal/event"
	"go-duel-arena/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Отладочный просмотрщик дуэли на raylib: без спрайтов и меню,
// только прямоугольники бойцов, здоровье и журнал ходов.

const (
	screenWidth  = 960
	screenHeight = 540
	groundY      = 400
	fighterSize  = 90
	maxLogLines  = 8
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadWeaponDefinitions(config.WeaponDefsPath); err != nil {
		log.Printf("weapon definitions unavailable: %v", err)
	}
	if err := defs.LoadCombatantDefinitions(config.CombatantDefsPath); err != nil {
		log.Printf("combatant definitions unavailable: %v", err)
	}

	dispatcher := event.NewDispatcher()
	var lines []string
	appendLine := func(line string) {
		lines = append(lines, line)
		if len(lines) > maxLogLines {
			lines = lines[len(lines)-maxLogLines:]
		}
	}
	dispatcher.Subscribe(event.TurnResolved, event.ListenerFunc(func(e event.Event) {
		if r, ok := e.Data.(battle.TurnRecord); ok {
			appendLine(fmt.Sprintf("%d. %s -> %s: %s, damage %d, %s",
				r.Turn, r.Attacker, r.Defender, r.Result, r.Damage, r.DefenderStatus))
		}
	}))
	dispatcher.Subscribe(event.BattleEnded, event.ListenerFunc(func(e event.Event) {
		if o, ok := e.Data.(battle.Outcome); ok {
			if o.Draw {
				appendLine(fmt.Sprintf("Draw after %d turns", o.Turns))
			} else {
				appendLine(fmt.Sprintf("%s wins in %d turns", o.Winner, o.Turns))
			}
		}
	}))

	rng := utils.NewPRNGService(cfg.Seed)
	left, right := setupPair(cfg)
	duel, err := battle.New(left, right, rng, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(screenWidth, screenHeight, "Duel Arena Viewer | Space - Turn, R - Restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) && !duel.Finished() {
			duel.PlayTurn()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			lines = nil
			left, right = setupPair(cfg)
			duel, err = battle.New(left, right, rng, dispatcher)
			if err != nil {
				log.Fatal(err)
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))
		rl.DrawRectangle(0, groundY, screenWidth, screenHeight-groundY, rl.NewColor(40, 46, 38, 255))

		drawFighter(left, 220, rl.NewColor(70, 130, 180, 255))
		drawFighter(right, 740, rl.NewColor(180, 50, 230, 255))

		y := int32(groundY + 20)
		for _, line := range lines {
			rl.DrawText(line, 20, y, 14, rl.RayWhite)
			y += 16
		}
		rl.EndDrawing()
	}
}

// setupPair собирает бойцов из сценария либо дуэль по умолчанию.
func setupPair(cfg config.Env) (*combat.Combatant, *combat.Combatant) {
	scenario, err := defs.LoadScenario(cfg.ScenarioPath)
	if err == nil {
		left, right, buildErr := scenario.Build()
		if buildErr == nil {
			return left, right
		}
		log.Printf("failed to build scenario: %v, falling back to the default duel", buildErr)
	} else {
		log.Printf("scenario %s unavailable: %v, falling back to the default duel", cfg.ScenarioPath, err)
	}

	alice := combat.NewCombatant("Alice")
	alice.Equip(combat.NewWeapon("Longsword", 70, 8))
	vim := combat.NewCombatant("Vim")
	vim.Equip(combat.NewWeapon("Longsword", 70, 8))
	return alice, vim
}

func drawFighter(c *combat.Combatant, x int32, body rl.Color) {
	if c.Health.Status() == combat.Defeated {
		body = rl.Fade(body, 0.35)
	}
	rl.DrawRectangle(x-fighterSize/2, groundY-fighterSize, fighterSize, fighterSize, body)
	rl.DrawRectangleLines(x-fighterSize/2, groundY-fighterSize, fighterSize, fighterSize, rl.White)

	caption := fmt.Sprintf("%s %d/%d", c.Name, c.Health.Current(), c.Health.Max())
	textWidth := rl.MeasureText(caption, 18)
	rl.DrawText(caption, x-textWidth/2, groundY-fighterSize-30, 18, rl.White)

	barWidth := int32(120)
	filled := int32(0)
	if c.Health.Max() > 0 {
		filled = int32(float64(barWidth) * float64(c.Health.Current()) / float64(c.Health.Max()))
	}
	rl.DrawRectangle(x-barWidth/2, groundY-fighterSize-10, barWidth, 6, rl.NewColor(35, 35, 45, 255))
	rl.DrawRectangle(x-barWidth/2, groundY-fighterSize-10, filled, 6, rl.Red)
}
