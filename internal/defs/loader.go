// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWeaponDefinitions reads the weapon configuration file and populates the WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}

// LoadCombatantDefinitions reads the combatant configuration file and populates the CombatantLibrary.
func LoadCombatantDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read combatant definitions file: %w", err)
	}

	var combatantDefs []CombatantDefinition
	if err := json.Unmarshal(file, &combatantDefs); err != nil {
		return fmt.Errorf("failed to unmarshal combatant definitions: %w", err)
	}

	CombatantLibrary = make(map[string]CombatantDefinition)
	for _, def := range combatantDefs {
		CombatantLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d combatant definitions\n", len(CombatantLibrary))
	return nil
}
