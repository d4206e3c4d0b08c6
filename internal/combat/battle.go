// internal/combat/battle.go
package combat

// AttackResult — категориальный исход одной попытки атаки.
type AttackResult int

const (
	DirectHit    AttackResult = iota // полный урон
	GlancingBlow                     // половинный урон
	Miss                             // промах, урон не наносится
	NoWeapon                         // атакующий безоружен, атака не имеет эффекта
)

func (r AttackResult) String() string {
	switch r {
	case DirectHit:
		return "DirectHit"
	case GlancingBlow:
		return "GlancingBlow"
	case Miss:
		return "Miss"
	case NoWeapon:
		return "NoWeapon"
	default:
		return "Unknown"
	}
}

// GlancingMultiplier — множитель урона скользящего удара.
const GlancingMultiplier = 0.5

// CalculateHitRate вычисляет шанс попадания атакующего по защитнику:
// hit_rate оружия + меткость атакующего - уклонение защитника.
// Возвращает ok=false, если атакующий безоружен.
//
// Результат не ограничивается диапазоном [0, 100]: при броске из [1, 100]
// значение выше 100 гарантирует прямое попадание, значение не выше 0 —
// скользящий удар.
func CalculateHitRate(attacker, defender *Combatant) (int, bool) {
	weapon := attacker.CurrentWeapon()
	if weapon == nil {
		return 0, false
	}

	hitRate := weapon.HitRate
	hitRate += attacker.Stats.Accuracy
	hitRate -= defender.Stats.Evasion

	return hitRate, true
}

// ResolveAttack определяет исход атаки по броску кубика и характеристикам
// сторон. Равенство броска и шанса попадания трактуется в пользу атакующего:
// «если добросил — попал».
func ResolveAttack(diceRoll int, attacker, defender *Combatant) AttackResult {
	if attacker.CurrentWeapon() == nil {
		return NoWeapon
	}

	hitRate, ok := CalculateHitRate(attacker, defender)
	if !ok {
		// Недостижимо, пока оружие проверено выше; ветка сохранена,
		// чтобы исход Miss оставался полноценной частью набора.
		return Miss
	}

	if diceRoll <= hitRate {
		return DirectHit
	}
	return GlancingBlow
}

// CalculateDamage вычисляет урон атаки по её исходу и характеристикам сторон:
// урон оружия + сила атакующего - защита защитника, умноженный на множитель
// исхода. Для Miss и NoWeapon возвращает ok=false — урон не применяется.
//
// Итог усекается к нулю, а не округляется: -5 * 0.5 даёт -2, не -3.
func CalculateDamage(result AttackResult, attacker, defender *Combatant) (int, bool) {
	var multiplier float64
	switch result {
	case Miss, NoWeapon:
		return 0, false
	case DirectHit:
		multiplier = 1.0
	case GlancingBlow:
		multiplier = GlancingMultiplier
	default:
		return 0, false
	}

	// Оружие проверяется заново: функция может вызываться и отдельно от ResolveAttack.
	weapon := attacker.CurrentWeapon()
	if weapon == nil {
		return 0, false
	}

	damage := weapon.Damage
	damage += attacker.Stats.Strength
	damage -= defender.Stats.Defense

	// Преобразование float64 -> int в Go усекает дробную часть к нулю.
	return int(float64(damage) * multiplier), true
}
