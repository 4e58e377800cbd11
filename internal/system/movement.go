// internal/system/movement.go
package system

import (
	"go-waypoint-defense/internal/entity"
)

// MovementSystem продвигает врагов вдоль пути. Источник истины —
// PathFollower (индекс сегмента + прогресс); мировая позиция каждый
// тик пересчитывается и кэшируется в Positions для прицеливания,
// коллизий и рендера.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		follower, hasPath := s.ecs.PathFollowers[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPath || !hasVel {
			continue
		}

		speed := vel.Speed
		if fx, hasFx := s.ecs.StatusEffects[id]; hasFx {
			speed *= fx.SpeedMultiplier()
			if fx.IsStunned() {
				speed = 0
			}
		}

		if speed > 0 {
			follower.Advance(speed, deltaTime)
		}

		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			world := follower.Position()
			pos.X = world.X
			pos.Y = world.Y
		}

		if follower.HasReachedEnd() {
			enemy.ReachedEnd = true
		}
	}
}
