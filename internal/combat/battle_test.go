// internal/combat/battle_test.go
package combat

import "testing"

func newArmedCombatant(name string, hitRate, damage int) *Combatant {
	c := NewCombatant(name)
	c.Equip(NewWeapon("Dummy Weapon", hitRate, damage))
	return c
}

func TestCalculateHitRateWithoutWeapon(t *testing.T) {
	attacker := NewCombatant("Attacker")
	defender := NewCombatant("Defender")

	if _, ok := CalculateHitRate(attacker, defender); ok {
		t.Fatal("hit rate must have no value for an unarmed attacker")
	}
}

func TestCalculateHitRateFormula(t *testing.T) {
	tests := []struct {
		name     string
		hitRate  int
		accuracy int
		evasion  int
		want     int
	}{
		{"weapon only", 50, 0, 0, 50},
		{"accuracy bonus", 50, 10, 0, 60},
		{"accuracy penalty", 50, -10, 0, 40},
		{"evasion penalty", 50, 0, 10, 40},
		{"evasion bonus", 50, 0, -10, 60},
		{"above hundred, unclamped", 90, 25, 0, 115},
		{"below zero, unclamped", 40, 0, 55, -15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attacker := newArmedCombatant("Attacker", tc.hitRate, 5)
			attacker.Stats.Accuracy = tc.accuracy
			defender := NewCombatant("Defender")
			defender.Stats.Evasion = tc.evasion

			got, ok := CalculateHitRate(attacker, defender)
			if !ok {
				t.Fatal("hit rate must have a value for an armed attacker")
			}
			if got != tc.want {
				t.Fatalf("hit rate = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveAttackNoWeapon(t *testing.T) {
	attacker := NewCombatant("Attacker")
	defender := NewCombatant("Defender")

	// Безоружный атакующий даёт NoWeapon при любом броске и любых статах
	attacker.Stats.Accuracy = 100
	for _, roll := range []int{1, 50, 100} {
		if got := ResolveAttack(roll, attacker, defender); got != NoWeapon {
			t.Fatalf("roll %d: result = %s, want NoWeapon", roll, got)
		}
	}
}

func TestResolveAttackTieFavorsAttacker(t *testing.T) {
	attacker := newArmedCombatant("Attacker", 50, 10)
	defender := NewCombatant("Defender")

	if got := ResolveAttack(50, attacker, defender); got != DirectHit {
		t.Fatalf("result = %s, want DirectHit when roll equals hit rate", got)
	}
	if got := ResolveAttack(51, attacker, defender); got != GlancingBlow {
		t.Fatalf("result = %s, want GlancingBlow when roll exceeds hit rate", got)
	}
}

func TestResolveAttackHighHitRateAlwaysDirect(t *testing.T) {
	attacker := newArmedCombatant("Attacker", 90, 10)
	attacker.Stats.Accuracy = 15 // итоговый шанс 105
	defender := NewCombatant("Defender")

	for roll := 1; roll <= 100; roll++ {
		if got := ResolveAttack(roll, attacker, defender); got != DirectHit {
			t.Fatalf("roll %d: result = %s, want DirectHit for hit rate above 100", roll, got)
		}
	}
}

func TestResolveAttackNonPositiveHitRateAlwaysGlancing(t *testing.T) {
	attacker := newArmedCombatant("Attacker", 50, 10)
	defender := NewCombatant("Defender")
	defender.Stats.Evasion = 55 // итоговый шанс -5

	for roll := 1; roll <= 100; roll++ {
		if got := ResolveAttack(roll, attacker, defender); got != GlancingBlow {
			t.Fatalf("roll %d: result = %s, want GlancingBlow for non-positive hit rate", roll, got)
		}
	}
}

func TestCalculateDamageDirectHit(t *testing.T) {
	attacker := newArmedCombatant("Attacker", 50, 10)
	defender := NewCombatant("Defender")

	damage, ok := CalculateDamage(DirectHit, attacker, defender)
	if !ok || damage != 10 {
		t.Fatalf("damage = %d, %v; want 10, true", damage, ok)
	}

	attacker.Stats.Strength = 5
	damage, _ = CalculateDamage(DirectHit, attacker, defender)
	if damage != 15 {
		t.Fatalf("damage with strength = %d, want 15", damage)
	}

	attacker.Stats.Strength = 0
	defender.Stats.Defense = 5
	damage, _ = CalculateDamage(DirectHit, attacker, defender)
	if damage != 5 {
		t.Fatalf("damage against defense = %d, want 5", damage)
	}
}

func TestCalculateDamageGlancingTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name     string
		weapon   int
		strength int
		defense  int
		want     int
	}{
		{"even base", 10, 0, 0, 5},
		{"odd base truncates", 9, 0, 0, 4},
		{"negative base truncates toward zero", 0, 0, 5, -2}, // -5 * 0.5 -> -2, не -3
		{"negative even base", 0, 0, 4, -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attacker := newArmedCombatant("Attacker", 50, tc.weapon)
			attacker.Stats.Strength = tc.strength
			defender := NewCombatant("Defender")
			defender.Stats.Defense = tc.defense

			damage, ok := CalculateDamage(GlancingBlow, attacker, defender)
			if !ok {
				t.Fatal("glancing blow must produce a damage value")
			}
			if damage != tc.want {
				t.Fatalf("damage = %d, want %d", damage, tc.want)
			}
		})
	}
}

func TestCalculateDamageMissAndNoWeapon(t *testing.T) {
	attacker := newArmedCombatant("Attacker", 50, 10)
	defender := NewCombatant("Defender")

	if _, ok := CalculateDamage(Miss, attacker, defender); ok {
		t.Fatal("miss must not produce a damage value")
	}
	if _, ok := CalculateDamage(NoWeapon, attacker, defender); ok {
		t.Fatal("no-weapon result must not produce a damage value")
	}
}

func TestCalculateDamageUnarmedAttacker(t *testing.T) {
	// Функция может вызываться отдельно от ResolveAttack,
	// поэтому отсутствие оружия проверяется и здесь
	attacker := NewCombatant("Attacker")
	defender := NewCombatant("Defender")

	if _, ok := CalculateDamage(DirectHit, attacker, defender); ok {
		t.Fatal("unarmed attacker must not produce a damage value")
	}
}

// Сквозные сценарии из дизайна боёвки.
func TestScenarioDirectHitAtFifty(t *testing.T) {
	attacker := NewCombatant("Alice")
	attacker.Equip(NewWeapon("Longsword", 70, 8))
	defender := NewCombatant("Vim")

	result := ResolveAttack(50, attacker, defender)
	if result != DirectHit {
		t.Fatalf("result = %s, want DirectHit", result)
	}
	damage, ok := CalculateDamage(result, attacker, defender)
	if !ok || damage != 8 {
		t.Fatalf("damage = %d, %v; want 8, true", damage, ok)
	}
}

func TestScenarioGlancingBlowAtSixty(t *testing.T) {
	attacker := NewCombatant("Attacker")
	attacker.Equip(NewWeapon("Oak Staff", 50, 10))
	defender := NewCombatant("Defender")

	result := ResolveAttack(60, attacker, defender)
	if result != GlancingBlow {
		t.Fatalf("result = %s, want GlancingBlow", result)
	}
	damage, ok := CalculateDamage(result, attacker, defender)
	if !ok || damage != 5 {
		t.Fatalf("damage = %d, %v; want 5, true", damage, ok)
	}
}
