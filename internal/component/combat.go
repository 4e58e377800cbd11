// internal/component/combat.go
package component

import "go-waypoint-defense/internal/defs"

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	FireRate     float64 // Скорострельность (выстрелов в секунду)
	FireCooldown float64 // Оставшееся время до следующего выстрела
	Damage       float64 // Базовый урон до уровневого множителя и разброса
	DamageType   defs.DamageType
	Variance     float64 // доля симметричного разброса урона
	Targeting    defs.TargetingMode
	Projectile   defs.ProjectileDef
	Effect       *defs.EffectDef
}
