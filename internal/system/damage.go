// internal/system/damage.go
package system

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
)

// ApplyDamage наносит урон врагу с учётом брони и сопротивлений и
// возвращает фактически списанное здоровье (для статистики).
//
// Порядок: сначала плоская броня с нижней границей в 1 (любая атака,
// пробившая проверку попадания, оставляет след), затем процентное
// сопротивление типу урона. Здоровье не уходит ниже нуля.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, amount float64, damageType defs.DamageType) float64 {
	enemy, ok := ecs.Enemies[entityID]
	if !ok || enemy.Dead || amount <= 0 {
		return 0
	}

	effective := amount - enemy.Armor
	if effective < 1 {
		effective = 1
	}
	if r, has := enemy.Resistances[damageType]; has {
		effective *= 1 - r
	}

	applied := effective
	if applied > enemy.Health {
		applied = enemy.Health
	}
	enemy.Health -= effective
	if enemy.Health <= 0 {
		enemy.Health = 0
		enemy.Dead = true
	}
	return applied
}

// ApplyUnmitigatedDamage списывает здоровье напрямую, без брони и
// сопротивлений. Так работает периодический урон (горение): дробные
// порции за тик не должны раздуваться нижней границей брони.
func ApplyUnmitigatedDamage(ecs *entity.ECS, entityID types.EntityID, amount float64) float64 {
	enemy, ok := ecs.Enemies[entityID]
	if !ok || enemy.Dead || amount <= 0 {
		return 0
	}

	applied := amount
	if applied > enemy.Health {
		applied = enemy.Health
	}
	enemy.Health -= amount
	if enemy.Health <= 0 {
		enemy.Health = 0
		enemy.Dead = true
	}
	return applied
}
