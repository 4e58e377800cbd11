// internal/component/enemy.go
package component

import "go-waypoint-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID       string // ID из библиотеки врагов
	Health      float64
	MaxHealth   float64
	Armor       float64 // плоское снижение входящего урона
	Resistances map[defs.DamageType]float64
	Bounty      int     // награда за убийство
	Radius      float64 // радиус тела для засчитывания попаданий
	Dead        bool
	ReachedEnd  bool // достиг ли враг конца пути
}
