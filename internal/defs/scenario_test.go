// internal/defs/scenario_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func setupLibraries(t *testing.T) {
	t.Helper()
	oldWeapons, oldCombatants := WeaponLibrary, CombatantLibrary
	t.Cleanup(func() {
		WeaponLibrary, CombatantLibrary = oldWeapons, oldCombatants
	})

	WeaponLibrary = map[string]WeaponDefinition{
		"longsword":    {ID: "longsword", Name: "Longsword", HitRate: 70, Damage: 8},
		"thorn_dagger": {ID: "thorn_dagger", Name: "Thorn Dagger", HitRate: 85, Damage: 4},
	}
	CombatantLibrary = map[string]CombatantDefinition{
		"hero_alice": {
			ID: "hero_alice", Name: "Alice", MaxHealth: 10, WeaponID: "longsword",
		},
		"villain_vim": {
			ID: "villain_vim", Name: "Vim", MaxHealth: 10, WeaponID: "longsword",
		},
		"unarmed_bandit": {
			ID: "unarmed_bandit", Name: "Bandit", Strength: 3,
		},
	}
}

func TestLoadScenarioParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `
name: "Test duel"
seed: 7
max_turns: 12
left:
  combatant: hero_alice
right:
  combatant: villain_vim
  weapon: thorn_dagger
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario returned error: %v", err)
	}
	if scenario.Name != "Test duel" || scenario.Seed != 7 || scenario.MaxTurns != 12 {
		t.Fatalf("scenario header = %+v", scenario)
	}
	if scenario.Right.Weapon != "thorn_dagger" {
		t.Fatalf("right weapon = %q, want thorn_dagger", scenario.Right.Weapon)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing scenario file must return an error")
	}
}

func TestScenarioBuild(t *testing.T) {
	setupLibraries(t)

	scenario := &Scenario{
		Name:  "Build test",
		Left:  ScenarioSide{Combatant: "hero_alice"},
		Right: ScenarioSide{Combatant: "villain_vim", Weapon: "thorn_dagger"},
	}

	left, right, err := scenario.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if left.Name != "Alice" || right.Name != "Vim" {
		t.Fatalf("pair = %s vs %s, want Alice vs Vim", left.Name, right.Name)
	}
	if w := left.CurrentWeapon(); w == nil || w.Name != "Longsword" {
		t.Fatalf("left weapon = %v, want template Longsword", w)
	}
	// Сценарий переопределяет оружие стороны
	if w := right.CurrentWeapon(); w == nil || w.Name != "Thorn Dagger" {
		t.Fatalf("right weapon = %v, want override Thorn Dagger", w)
	}
}

func TestScenarioBuildUnknownIDs(t *testing.T) {
	setupLibraries(t)

	scenario := &Scenario{
		Left:  ScenarioSide{Combatant: "nobody"},
		Right: ScenarioSide{Combatant: "villain_vim"},
	}
	if _, _, err := scenario.Build(); err == nil {
		t.Fatal("unknown combatant must be rejected before the battle starts")
	}

	scenario = &Scenario{
		Left:  ScenarioSide{Combatant: "hero_alice"},
		Right: ScenarioSide{Combatant: "villain_vim", Weapon: "excalibur"},
	}
	if _, _, err := scenario.Build(); err == nil {
		t.Fatal("unknown weapon override must be rejected")
	}
}

func TestNewCombatantFromDefinition(t *testing.T) {
	setupLibraries(t)

	// Шаблон без здоровья и оружия получает значения по умолчанию
	c := NewCombatantFromDefinition(CombatantLibrary["unarmed_bandit"])
	if c.Health.Max() != 10 {
		t.Fatalf("max health = %d, want default 10", c.Health.Max())
	}
	if c.Stats.Strength != 3 {
		t.Fatalf("strength = %d, want 3", c.Stats.Strength)
	}
	if c.CurrentWeapon() != nil {
		t.Fatal("bandit template must be unarmed")
	}
}

func TestLoadWeaponDefinitions(t *testing.T) {
	setupLibraries(t)

	path := filepath.Join(t.TempDir(), "weapons.json")
	content := `[{"id": "oak_staff", "name": "Oak Staff", "hit_rate": 50, "damage": 10}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadWeaponDefinitions(path); err != nil {
		t.Fatalf("LoadWeaponDefinitions returned error: %v", err)
	}
	def, ok := WeaponLibrary["oak_staff"]
	if !ok {
		t.Fatal("oak_staff not loaded into the library")
	}
	if def.HitRate != 50 || def.Damage != 10 {
		t.Fatalf("definition = %+v", def)
	}
}
