package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-waypoint-defense/internal/types"
)

func TestECS_NewEntity(t *testing.T) {
	ecs := NewECS()

	// 0 зарезервирован как «нет сущности», счётчик стартует с 1.
	first := ecs.NewEntity()
	second := ecs.NewEntity()

	assert.Equal(t, types.EntityID(1), first)
	assert.Equal(t, types.EntityID(2), second)
	assert.NotEqual(t, types.EntityID(0), first)
}

func TestECS_MapsInitialized(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()

	// Карты компонентов готовы к записи сразу после NewECS.
	assert.NotPanics(t, func() {
		ecs.Enemies[id] = nil
		delete(ecs.Enemies, id)
	})
	assert.Empty(t, ecs.Towers)
	assert.Empty(t, ecs.Projectiles)
}
