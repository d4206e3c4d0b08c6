// internal/defs/combatants.go
package defs

// Visuals contains parameters for rendering a combatant in the arena.
type Visuals struct {
	Sprite string `json:"sprite"` // путь к PNG-спрайту относительно корня репозитория
	Color  RGBA   `json:"color"`  // цвет плейсхолдера, если спрайта нет
}

// RGBA mirrors image/color.RGBA with JSON tags for definition files.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// CombatantDefinition holds all the static data for a combatant template.
type CombatantDefinition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MaxHealth int     `json:"max_health"`
	Accuracy  int     `json:"accuracy"`
	Evasion   int     `json:"evasion"`
	Strength  int     `json:"strength"`
	Defense   int     `json:"defense"`
	WeaponID  string  `json:"weapon_id"` // пустая строка — боец безоружен
	Visuals   Visuals `json:"visuals"`
}

// CombatantLibrary is a map to hold all combatant definitions, keyed by their ID.
var CombatantLibrary map[string]CombatantDefinition
