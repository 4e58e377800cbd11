package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

func addWalker(ecs *entity.ECS, speed float64, waypoints []geom.Point) types.EntityID {
	id := addEnemy(ecs, component.Enemy{Health: 10, MaxHealth: 10})
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.PathFollowers[id] = &component.PathFollower{Waypoints: waypoints}
	ecs.StatusEffects[id] = &component.StatusEffects{}
	ecs.Positions[id] = &component.Position{X: waypoints[0].X, Y: waypoints[0].Y}
	return id
}

func straightPath() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
}

func TestMovementSystem_MovesAndCachesPosition(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, 50, straightPath())

	NewMovementSystem(ecs).Update(0.5)

	assert.InDelta(t, 25.0, ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 0.0, ecs.Positions[id].Y, 1e-9)
	assert.False(t, ecs.Enemies[id].ReachedEnd)
}

func TestMovementSystem_SlowAndFreeze(t *testing.T) {
	ecs := entity.NewECS()
	slowed := addWalker(ecs, 50, straightPath())
	frozen := addWalker(ecs, 50, straightPath())
	ecs.StatusEffects[slowed].ApplySlow(0.5, 10)
	ecs.StatusEffects[frozen].ApplyFreeze(10)

	NewMovementSystem(ecs).Update(1.0)

	assert.InDelta(t, 25.0, ecs.Positions[slowed].X, 1e-9)
	assert.InDelta(t, 0.0, ecs.Positions[frozen].X, 1e-9)
}

func TestMovementSystem_StunBlocksMovement(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, 50, straightPath())
	ecs.StatusEffects[id].ApplyStun(10)

	NewMovementSystem(ecs).Update(1.0)

	assert.InDelta(t, 0.0, ecs.Positions[id].X, 1e-9)
}

func TestMovementSystem_MarksReachedEnd(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, 50, straightPath())

	sys := NewMovementSystem(ecs)
	sys.Update(10)

	assert.True(t, ecs.Enemies[id].ReachedEnd)
	assert.InDelta(t, 100.0, ecs.Positions[id].X, 1e-9)

	// Достигший конца враг больше не двигается.
	sys.Update(1)
	assert.InDelta(t, 100.0, ecs.Positions[id].X, 1e-9)
}

func TestMovementSystem_SkipsDead(t *testing.T) {
	ecs := entity.NewECS()
	id := addWalker(ecs, 50, straightPath())
	ecs.Enemies[id].Dead = true

	NewMovementSystem(ecs).Update(1.0)

	assert.InDelta(t, 0.0, ecs.Positions[id].X, 1e-9)
}
