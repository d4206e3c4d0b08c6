// internal/combat/combatant.go
package combat

// DefaultMaxHealth — здоровье нового бойца.
const DefaultMaxHealth = 10

// CombatStats — набор модификаторов, участвующих в боевых формулах.
// Поля изменяются напрямую; любые значения допустимы, включая отрицательные.
type CombatStats struct {
	Accuracy int // повышает шанс прямого попадания
	Evasion  int // снижает шанс прямого попадания по бойцу
	Strength int // увеличивает наносимый урон
	Defense  int // уменьшает получаемый урон
}

// HealthStatus — производная классификация текущего здоровья.
// Нигде не хранится, всегда вычисляется заново.
type HealthStatus int

const (
	Healthy  HealthStatus = iota // здоровье на максимуме
	Hurt                         // здоровье между нулём и максимумом
	Defeated                     // здоровье на нуле
)

func (s HealthStatus) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Hurt:
		return "Hurt"
	case Defeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// Health — запас жизненных сил, удерживаемый в диапазоне [0, max].
type Health struct {
	current int
	max     int
}

// NewHealth создаёт здоровье с текущим значением, равным максимуму.
func NewHealth(max int) Health {
	return Health{current: max, max: max}
}

// Current возвращает текущее здоровье.
func (h *Health) Current() int {
	return h.current
}

// Max возвращает максимальное здоровье.
func (h *Health) Max() int {
	return h.max
}

// Damage уменьшает текущее здоровье на amount и возвращает новый статус.
// Отрицательный amount лечит — это документированное поведение, не ошибка.
func (h *Health) Damage(amount int) HealthStatus {
	h.current -= amount
	h.clamp()
	return h.Status()
}

// clamp удерживает текущее здоровье в [0, max].
// Вызывается после каждого изменения current.
func (h *Health) clamp() {
	if h.current < 0 {
		h.current = 0
	}
	if h.current > h.max {
		h.current = h.max
	}
}

// Status возвращает классификацию здоровья, не изменяя его.
func (h *Health) Status() HealthStatus {
	if h.current >= h.max {
		return Healthy
	}
	if h.current <= 0 {
		return Defeated
	}
	return Hurt
}

// Combatant — участник боя: имя, характеристики, здоровье и, возможно, оружие.
// Поражение бойца не уничтожает: Defeated — лишь производный статус,
// значение остаётся корректным и доступным для чтения.
type Combatant struct {
	Name   string
	Stats  CombatStats
	Health Health
	weapon *Weapon
}

// NewCombatant создаёт бойца со здоровьем DefaultMaxHealth,
// нулевыми характеристиками и без оружия.
func NewCombatant(name string) *Combatant {
	return &Combatant{
		Name:   name,
		Health: NewHealth(DefaultMaxHealth),
	}
}

// Equip вооружает бойца, заменяя текущее оружие. Инвентаря нет:
// предыдущее оружие при замене теряется.
func (c *Combatant) Equip(weapon Weapon) {
	c.weapon = &weapon
}

// CurrentWeapon возвращает текущее оружие бойца или nil, если он безоружен.
func (c *Combatant) CurrentWeapon() *Weapon {
	return c.weapon
}

func (c *Combatant) String() string {
	return c.Name
}
