// internal/event/types.go
package event

const (
	BattleStarted  EventType = "BattleStarted"  // Бой начался
	TurnResolved   EventType = "TurnResolved"   // Ход разыгран, в Data — запись хода
	BattleEnded    EventType = "BattleEnded"    // Бой завершён, в Data — итог боя
	WeaponEquipped EventType = "WeaponEquipped" // Боец сменил оружие
)
