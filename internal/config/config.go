// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	DefaultMaxTurns = 50  // страховочный лимит ходов: безоружные бойцы не закончат бой сами
	TurnInterval    = 0.9 // секунд между автоматическими ходами

	// Арена
	ArenaGroundY  = 440.0
	LeftFighterX  = 230.0
	RightFighterX = 730.0
	FighterSize   = 96.0

	// Полосы здоровья
	HealthBarWidth  = 220.0
	HealthBarHeight = 16.0
	HealthBarY      = 64.0
	HealthBarStroke = 2.0

	// Панель журнала боя
	LogPanelHeight = 140
	LogPanelMargin = 10
	LogLineHeight  = 18
	LogMaxLines    = 6

	FontSize      = 14
	TitleFontSize = 20

	// Пути к данным
	WeaponDefsPath      = "assets/data/weapons.json"
	CombatantDefsPath   = "assets/data/combatants.json"
	DefaultScenarioPath = "assets/data/scenario.yaml"
	FontPath            = "assets/fonts/arial.ttf"
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GroundColor       = color.RGBA{40, 46, 38, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	LogPanelColor     = color.RGBA{12, 12, 18, 235}
	LogAccentColor    = color.RGBA{255, 215, 0, 255}
	HealthFullColor   = color.RGBA{50, 205, 50, 255}
	HealthLowColor    = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor  = color.RGBA{35, 35, 45, 255}
	HealthStrokeColor = color.RGBA{240, 240, 240, 255}
	LeftFighterColor  = color.RGBA{70, 130, 180, 255} // плейсхолдер, если нет спрайта
	RightFighterColor = color.RGBA{180, 50, 230, 255}
)
