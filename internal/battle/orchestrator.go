// internal/battle/orchestrator.go
package battle

import (
	"errors"

	"go-duel-arena/internal/combat"
	"go-duel-arena/internal/event"

	"github.com/google/uuid"
)

// DieRoller — источник бросков кубика, условно из [1, 100]. В игре это
// utils.PRNGService; тесты подставляют фиксированные последовательности.
type DieRoller interface {
	Roll() int
}

var (
	ErrNilCombatant  = errors.New("battle: combatant is nil")
	ErrSameCombatant = errors.New("battle: combatants must be distinct")
	ErrNilDice       = errors.New("battle: die roller is nil")
)

// TurnRecord — наблюдаемая запись одного хода. Потребляется только
// презентационным слоем и никогда не возвращается в боевую логику.
type TurnRecord struct {
	BattleID       uuid.UUID
	Turn           int
	Attacker       string
	Defender       string
	DiceRoll       int
	Result         combat.AttackResult
	Damage         int // нанесённый урон; осмыслен только при DamageDealt
	DamageDealt    bool
	DefenderHP     int
	DefenderStatus combat.HealthStatus
}

// Outcome — итог боя.
type Outcome struct {
	BattleID uuid.UUID
	Winner   string
	Loser    string
	Draw     bool // лимит ходов исчерпан, победителя нет
	Turns    int
}

// Battle последовательно разыгрывает обмены ударами между двумя бойцами
// и применяет урон к здоровью защитника. На время хода бойцы принадлежат
// бою монопольно; ходы никогда не выполняются параллельно, поэтому каждое
// состояние завершено к концу хода и бой можно прервать на границе хода.
type Battle struct {
	id       uuid.UUID
	first    *combat.Combatant
	second   *combat.Combatant
	dice     DieRoller
	events   *event.Dispatcher
	turn     int
	finished bool
}

// New создаёт бой. Оба бойца обязаны быть различными непустыми значениями:
// нарушение — ошибка конфигурации, о которой сообщается до первого хода.
// Диспетчер событий необязателен; при nil записи ходов никуда не рассылаются.
func New(first, second *combat.Combatant, dice DieRoller, events *event.Dispatcher) (*Battle, error) {
	if first == nil || second == nil {
		return nil, ErrNilCombatant
	}
	if first == second {
		return nil, ErrSameCombatant
	}
	if dice == nil {
		return nil, ErrNilDice
	}

	b := &Battle{
		id:     uuid.New(),
		first:  first,
		second: second,
		dice:   dice,
		events: events,
	}
	b.dispatch(event.BattleStarted, b.id)
	return b, nil
}

// ID возвращает идентификатор боя, проставляемый в записи ходов.
func (b *Battle) ID() uuid.UUID {
	return b.id
}

// Turn возвращает количество уже разыгранных ходов.
func (b *Battle) Turn() int {
	return b.turn
}

// Finished сообщает, достиг ли бой терминального состояния.
func (b *Battle) Finished() bool {
	return b.finished
}

// Attacker возвращает бойца, атакующего на ближайшем ходе.
// Роли чередуются: первый боец атакует на нечётных ходах.
func (b *Battle) Attacker() *combat.Combatant {
	if b.turn%2 == 0 {
		return b.first
	}
	return b.second
}

// Defender возвращает бойца, защищающегося на ближайшем ходе.
func (b *Battle) Defender() *combat.Combatant {
	if b.turn%2 == 0 {
		return b.second
	}
	return b.first
}

// PlayTurn разыгрывает один обмен: бросок кубика, исход, урон, применение
// урона к здоровью защитника. Порядок внутри хода строгий: исход считается
// до урона, урон — до изменения здоровья, статус снимается после изменения.
// Возвращает false, если бой уже завершён и ход не разыгрывался.
func (b *Battle) PlayTurn() (TurnRecord, bool) {
	if b.finished {
		return TurnRecord{}, false
	}

	attacker := b.Attacker()
	defender := b.Defender()
	b.turn++

	roll := b.dice.Roll()
	result := combat.ResolveAttack(roll, attacker, defender)

	record := TurnRecord{
		BattleID:       b.id,
		Turn:           b.turn,
		Attacker:       attacker.Name,
		Defender:       defender.Name,
		DiceRoll:       roll,
		Result:         result,
		DefenderStatus: defender.Health.Status(),
	}

	if damage, ok := combat.CalculateDamage(result, attacker, defender); ok {
		record.Damage = damage
		record.DamageDealt = true
		record.DefenderStatus = defender.Health.Damage(damage)
	}
	record.DefenderHP = defender.Health.Current()

	if defender.Health.Status() == combat.Defeated || attacker.Health.Status() == combat.Defeated {
		b.finished = true
	}

	b.dispatch(event.TurnResolved, record)
	if b.finished {
		b.dispatch(event.BattleEnded, b.Outcome())
	}
	return record, true
}

// Run разыгрывает ходы до поражения одной из сторон либо до исчерпания
// maxTurns. Лимит — страховка: два безоружных бойца не завершат бой никогда.
func (b *Battle) Run(maxTurns int) Outcome {
	for !b.finished && b.turn < maxTurns {
		b.PlayTurn()
	}
	if !b.finished {
		b.finished = true
		b.dispatch(event.BattleEnded, b.Outcome())
	}
	return b.Outcome()
}

// Outcome возвращает текущий итог боя. До чьего-либо поражения итог — ничья.
func (b *Battle) Outcome() Outcome {
	out := Outcome{BattleID: b.id, Turns: b.turn}
	switch {
	case b.first.Health.Status() == combat.Defeated:
		out.Winner, out.Loser = b.second.Name, b.first.Name
	case b.second.Health.Status() == combat.Defeated:
		out.Winner, out.Loser = b.first.Name, b.second.Name
	default:
		out.Draw = true
	}
	return out
}

func (b *Battle) dispatch(eventType event.EventType, data interface{}) {
	if b.events != nil {
		b.events.Dispatch(event.Event{Type: eventType, Data: data})
	}
}
