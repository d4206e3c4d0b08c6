// internal/ui/battle_log.go
package ui

import (
	"fmt"

	"go-duel-arena/internal/battle"
	"go-duel-arena/internal/combat"
	"go-duel-arena/internal/config"
	"go-duel-arena/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BattleLog — панель журнала боя внизу экрана. Подписывается на события
// боя и хранит последние строки; боевая логика о ней не знает.
type BattleLog struct {
	fontFace font.Face
	lines    []string
}

// NewBattleLog создает журнал и подписывает его на события боя.
func NewBattleLog(fontFace font.Face, dispatcher *event.Dispatcher) *BattleLog {
	l := &BattleLog{fontFace: fontFace}
	dispatcher.Subscribe(event.TurnResolved, l)
	dispatcher.Subscribe(event.BattleEnded, l)
	return l
}

// OnEvent реализует event.Listener.
func (l *BattleLog) OnEvent(e event.Event) {
	switch e.Type {
	case event.TurnResolved:
		if record, ok := e.Data.(battle.TurnRecord); ok {
			l.Append(formatTurn(record))
		}
	case event.BattleEnded:
		if outcome, ok := e.Data.(battle.Outcome); ok {
			l.Append(formatOutcome(outcome))
		}
	}
}

// Append добавляет строку, отбрасывая самые старые сверх лимита.
func (l *BattleLog) Append(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > config.LogMaxLines {
		l.lines = l.lines[len(l.lines)-config.LogMaxLines:]
	}
}

// Clear очищает журнал (перезапуск боя).
func (l *BattleLog) Clear() {
	l.lines = nil
}

// Draw рисует панель журнала.
func (l *BattleLog) Draw(screen *ebiten.Image) {
	top := float32(config.ScreenHeight - config.LogPanelHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.LogPanelHeight, config.LogPanelColor, true)

	y := int(top) + config.LogPanelMargin + config.LogLineHeight
	for _, line := range l.lines {
		text.Draw(screen, line, l.fontFace, config.LogPanelMargin*2, y, config.TextLightColor)
		y += config.LogLineHeight
	}
}

func formatTurn(r battle.TurnRecord) string {
	switch r.Result {
	case combat.NoWeapon:
		return fmt.Sprintf("%d. %s attacks %s barehanded — nothing happens.", r.Turn, r.Attacker, r.Defender)
	case combat.Miss:
		return fmt.Sprintf("%d. %s attacks %s and misses (roll %d).", r.Turn, r.Attacker, r.Defender, r.DiceRoll)
	case combat.DirectHit:
		return fmt.Sprintf("%d. %s lands a direct hit on %s: %d damage (roll %d, %d HP left).",
			r.Turn, r.Attacker, r.Defender, r.Damage, r.DiceRoll, r.DefenderHP)
	case combat.GlancingBlow:
		return fmt.Sprintf("%d. %s grazes %s with a glancing blow: %d damage (roll %d, %d HP left).",
			r.Turn, r.Attacker, r.Defender, r.Damage, r.DiceRoll, r.DefenderHP)
	default:
		return fmt.Sprintf("%d. %s attacks %s: %s.", r.Turn, r.Attacker, r.Defender, r.Result)
	}
}

func formatOutcome(o battle.Outcome) string {
	if o.Draw {
		return fmt.Sprintf("The duel ends in a draw after %d turns.", o.Turns)
	}
	return fmt.Sprintf("%s is defeated! %s wins in %d turns.", o.Loser, o.Winner, o.Turns)
}
