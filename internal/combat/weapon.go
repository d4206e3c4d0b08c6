// internal/combat/weapon.go
package combat

// Weapon — описание оружия: имя, базовый шанс попадания и базовый урон.
// После создания не изменяется; им владеет экипировавший его боец.
type Weapon struct {
	Name    string
	HitRate int // сравнивается с броском кубика из [1, 100]
	Damage  int // базовый урон при прямом попадании
}

// NewWeapon создаёт оружие с заданными параметрами.
// Диапазоны не проверяются: HitRate выше 100 или ниже 0 — допустимые значения.
func NewWeapon(name string, hitRate, damage int) Weapon {
	return Weapon{Name: name, HitRate: hitRate, Damage: damage}
}

func (w Weapon) String() string {
	return w.Name
}
