package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
)

func TestStatusEffectSystem_ExpiresEffects(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, component.Enemy{Health: 100, MaxHealth: 100})
	fx := &component.StatusEffects{}
	fx.ApplySlow(0.5, 1.0)
	fx.ApplyStun(0.5)
	fx.ApplyFreeze(0.3)
	ecs.StatusEffects[id] = fx

	sys := NewStatusEffectSystem(ecs)

	sys.Update(0.4)
	assert.NotNil(t, fx.Slow)
	assert.NotNil(t, fx.Stun)
	assert.Nil(t, fx.Freeze, "freeze expired first")

	sys.Update(0.2)
	assert.NotNil(t, fx.Slow)
	assert.Nil(t, fx.Stun)

	sys.Update(0.5)
	assert.Nil(t, fx.Slow)
}

func TestStatusEffectSystem_BurnDealsDamageOverTime(t *testing.T) {
	ecs := entity.NewECS()
	// Броня не должна влиять на горение.
	id := addEnemy(ecs, component.Enemy{Health: 100, MaxHealth: 100, Armor: 10})
	fx := &component.StatusEffects{}
	fx.ApplyBurn(10, 1.0)
	ecs.StatusEffects[id] = fx

	sys := NewStatusEffectSystem(ecs)

	for i := 0; i < 5; i++ {
		sys.Update(0.1)
	}
	// 5 тиков по 10*0.1 урона.
	assert.InDelta(t, 95.0, ecs.Enemies[id].Health, 1e-9)

	// Дожигаем остаток длительности: последний тик уже после истечения
	// эффекта урона не наносит.
	for i := 0; i < 10; i++ {
		sys.Update(0.1)
	}
	assert.Nil(t, fx.Burn)
	assert.Greater(t, ecs.Enemies[id].Health, 89.0)
}

func TestStatusEffectSystem_BurnCanKill(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, component.Enemy{Health: 1, MaxHealth: 30})
	fx := &component.StatusEffects{}
	fx.ApplyBurn(100, 2.0)
	ecs.StatusEffects[id] = fx

	NewStatusEffectSystem(ecs).Update(0.1)

	require.True(t, ecs.Enemies[id].Dead)
	assert.Equal(t, 0.0, ecs.Enemies[id].Health)
}
