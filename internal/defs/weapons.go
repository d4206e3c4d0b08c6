// internal/defs/weapons.go
package defs

// WeaponDefinition holds all the static data for a weapon that can be
// equipped by a combatant.
type WeaponDefinition struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HitRate int    `json:"hit_rate"`
	Damage  int    `json:"damage"`
}

// WeaponLibrary is a map to hold all weapon definitions, keyed by their ID.
var WeaponLibrary map[string]WeaponDefinition
