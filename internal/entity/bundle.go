// internal/entity/bundle.go
package entity

import "go-waypoint-defense/internal/component"

// Бандлы — единицы пулинга: все компоненты одной сущности в одном
// блоке памяти. Карты ECS указывают внутрь бандла; при реапе сущности
// владелец удаляет записи из карт и возвращает бандл в пул целиком.

// EnemyBundle — компоненты одного врага.
type EnemyBundle struct {
	Enemy      component.Enemy
	Follower   component.PathFollower
	Velocity   component.Velocity
	Effects    component.StatusEffects
	Position   component.Position
	Renderable component.Renderable
}

// ResetEnemyBundle приводит бандл в состояние "как новый".
// Карта сопротивлений не очищается: враг делит её с определением типа
// и никогда не владеет ею.
func ResetEnemyBundle(b *EnemyBundle) {
	*b = EnemyBundle{}
}

// ProjectileBundle — компоненты одного снаряда.
type ProjectileBundle struct {
	Projectile component.Projectile
	Position   component.Position
	Renderable component.Renderable
}

// ResetProjectileBundle сохраняет карту попаданий, но очищает её.
func ResetProjectileBundle(b *ProjectileBundle) {
	hits := b.Projectile.HitIDs
	for id := range hits {
		delete(hits, id)
	}
	*b = ProjectileBundle{}
	b.Projectile.HitIDs = hits
}

// TowerBundle — компоненты одной башни.
type TowerBundle struct {
	Tower      component.Tower
	Combat     component.Combat
	Position   component.Position
	Renderable component.Renderable
}

// ResetTowerBundle приводит бандл в состояние "как новый".
func ResetTowerBundle(b *TowerBundle) {
	*b = TowerBundle{}
}
