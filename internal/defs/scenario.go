// internal/defs/scenario.go
package defs

import (
	"fmt"
	"os"

	"go-duel-arena/internal/combat"

	"gopkg.in/yaml.v3"
)

// ScenarioSide describes one participant of a scenario battle.
type ScenarioSide struct {
	Combatant string `yaml:"combatant"`        // ID из CombatantLibrary
	Weapon    string `yaml:"weapon,omitempty"` // ID из WeaponLibrary; переопределяет оружие шаблона
}

// Scenario describes a complete battle setup loaded from a YAML file.
type Scenario struct {
	Name     string       `yaml:"name"`
	Seed     int64        `yaml:"seed"`      // 0 — случайный сид
	MaxTurns int          `yaml:"max_turns"` // 0 — лимит по умолчанию из config
	Left     ScenarioSide `yaml:"left"`
	Right    ScenarioSide `yaml:"right"`
}

// LoadScenario reads and parses a battle scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(file, &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	return &scenario, nil
}

// Build materializes both participants from the loaded libraries.
// Ошибки конфигурации (неизвестные ID) всплывают здесь, до начала боя.
func (s *Scenario) Build() (left, right *combat.Combatant, err error) {
	left, err = buildSide(s.Left)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q, left side: %w", s.Name, err)
	}
	right, err = buildSide(s.Right)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q, right side: %w", s.Name, err)
	}
	return left, right, nil
}

func buildSide(side ScenarioSide) (*combat.Combatant, error) {
	def, ok := CombatantLibrary[side.Combatant]
	if !ok {
		return nil, fmt.Errorf("unknown combatant %q", side.Combatant)
	}

	c := NewCombatantFromDefinition(def)

	// Переопределение оружия сценарием
	if side.Weapon != "" {
		weaponDef, ok := WeaponLibrary[side.Weapon]
		if !ok {
			return nil, fmt.Errorf("unknown weapon %q", side.Weapon)
		}
		c.Equip(combat.NewWeapon(weaponDef.Name, weaponDef.HitRate, weaponDef.Damage))
	}

	return c, nil
}

// NewCombatantFromDefinition builds a combat.Combatant from a template,
// equipping the template weapon when one is set.
func NewCombatantFromDefinition(def CombatantDefinition) *combat.Combatant {
	c := combat.NewCombatant(def.Name)
	if def.MaxHealth > 0 {
		c.Health = combat.NewHealth(def.MaxHealth)
	}
	c.Stats = combat.CombatStats{
		Accuracy: def.Accuracy,
		Evasion:  def.Evasion,
		Strength: def.Strength,
		Defense:  def.Defense,
	}
	if def.WeaponID != "" {
		if weaponDef, ok := WeaponLibrary[def.WeaponID]; ok {
			c.Equip(combat.NewWeapon(weaponDef.Name, weaponDef.HitRate, weaponDef.Damage))
		}
	}
	return c
}
