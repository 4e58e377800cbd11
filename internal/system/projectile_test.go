package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

func homingSpawn(target types.EntityID) ProjectileSpawn {
	return ProjectileSpawn{
		Origin:     geom.Point{X: 0, Y: 0},
		TargetID:   target,
		Damage:     10,
		DamageType: defs.DamagePhysical,
		Def:        defs.ProjectileDef{Speed: 100, Lifetime: 5, MaxDistance: 500, Homing: true},
	}
}

func TestProjectileSystem_HomingHitsTarget(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addTargetAt(ecs, 50, 0, 30)
	sys := NewProjectileSystem(ecs)

	projID := sys.Spawn(homingSpawn(enemyID))
	require.Contains(t, ecs.Projectiles, projID)

	// 50 единиц до цели, скорость 100: попадание в пределах секунды.
	for i := 0; i < 20; i++ {
		sys.Update(0.05)
	}

	assert.InDelta(t, 20.0, ecs.Enemies[enemyID].Health, 1e-9)
	assert.True(t, ecs.Projectiles[projID].IsDead)
	assert.True(t, ecs.Projectiles[projID].AlreadyHit(enemyID))
}

func TestProjectileSystem_DeadTargetKeepsCourse(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addTargetAt(ecs, 50, 0, 30)
	sys := NewProjectileSystem(ecs)

	projID := sys.Spawn(homingSpawn(enemyID))
	sys.Update(0.1)
	dirBefore := ecs.Projectiles[projID].Direction

	// Цель умерла в полёте: снаряд летит по последнему курсу.
	ecs.Enemies[enemyID].Dead = true
	ecs.Positions[enemyID].Y = 300 // смена позиции мёртвой цели игнорируется
	sys.Update(0.1)

	assert.Equal(t, dirBefore, ecs.Projectiles[projID].Direction)
	assert.False(t, ecs.Projectiles[projID].IsDead)
}

func TestProjectileSystem_PiercingHitsEachEnemyOnce(t *testing.T) {
	ecs := entity.NewECS()
	first := addTargetAt(ecs, 30, 0, 50)
	second := addTargetAt(ecs, 60, 0, 50)
	sys := NewProjectileSystem(ecs)

	spawn := ProjectileSpawn{
		Origin:     geom.Point{X: 0, Y: 0},
		TargetID:   first,
		Damage:     10,
		DamageType: defs.DamagePure,
		Def:        defs.ProjectileDef{Speed: 100, Lifetime: 5, MaxDistance: 500, Piercing: true},
	}
	projID := sys.Spawn(spawn)

	for i := 0; i < 20; i++ {
		sys.Update(0.05)
	}

	// Оба врага получили урон ровно по одному разу.
	assert.InDelta(t, 40.0, ecs.Enemies[first].Health, 1e-9)
	assert.InDelta(t, 40.0, ecs.Enemies[second].Health, 1e-9)
	proj, alive := ecs.Projectiles[projID]
	if alive {
		assert.False(t, proj.IsDead)
	}
}

func TestProjectileSystem_ExpiresByLifetime(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs)

	spawn := homingSpawn(0)
	spawn.Def.Lifetime = 0.2
	spawn.Def.MaxDistance = 1e9
	spawn.Def.Homing = false
	projID := sys.Spawn(spawn)

	sys.Update(0.1)
	assert.False(t, ecs.Projectiles[projID].IsDead)
	sys.Update(0.15)
	assert.True(t, ecs.Projectiles[projID].IsDead)
}

func TestProjectileSystem_ExpiresByDistance(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addTargetAt(ecs, 1000, 0, 30)
	sys := NewProjectileSystem(ecs)

	spawn := homingSpawn(enemyID)
	spawn.Def.MaxDistance = 30
	projID := sys.Spawn(spawn)

	sys.Update(0.2) // 20 единиц
	assert.False(t, ecs.Projectiles[projID].IsDead)
	sys.Update(0.2) // 40 единиц > 30
	assert.True(t, ecs.Projectiles[projID].IsDead)
	assert.InDelta(t, 30.0, ecs.Enemies[enemyID].Health, 1e-9, "no hit on expiry")
}

func TestProjectileSystem_AppliesEffectOnHit(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addTargetAt(ecs, 20, 0, 50)
	ecs.StatusEffects[enemyID] = &component.StatusEffects{}
	sys := NewProjectileSystem(ecs)

	spawn := homingSpawn(enemyID)
	spawn.Effect = &defs.EffectDef{
		Slow: &defs.SlowDef{Factor: 0.5, Duration: 2},
		Burn: &defs.BurnDef{DamagePerSecond: 5, Duration: 3},
	}
	sys.Spawn(spawn)

	for i := 0; i < 10; i++ {
		sys.Update(0.05)
	}

	fx := ecs.StatusEffects[enemyID]
	require.NotNil(t, fx.Slow)
	assert.Equal(t, 0.5, fx.Slow.Factor)
	require.NotNil(t, fx.Burn)
	assert.Equal(t, 5.0, fx.Burn.DamagePerSecond)
}

func TestProjectileSystem_FreeReturnsToPool(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs)

	projID := sys.Spawn(homingSpawn(0))
	require.Equal(t, 0, sys.PoolFreeCount())

	sys.Free(projID)

	assert.Equal(t, 1, sys.PoolFreeCount())
	assert.NotContains(t, ecs.Projectiles, projID)
	assert.NotContains(t, ecs.Positions, projID)

	// Переиспользованный бандл чист.
	nextID := sys.Spawn(homingSpawn(0))
	assert.Equal(t, 0, sys.PoolFreeCount())
	next := ecs.Projectiles[nextID]
	assert.False(t, next.HasHit)
	assert.Empty(t, next.HitIDs)
	assert.Equal(t, 0.0, next.Age)
}
