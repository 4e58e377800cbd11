// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
)

// ECS — контекст симуляции: все живые коллекции компонентов. Экземпляр
// принадлежит одной партии; глобального состояния нет, что позволяет
// держать несколько независимых симуляций (тесты, повторы).
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollowers map[types.EntityID]*component.PathFollower
	Enemies       map[types.EntityID]*component.Enemy
	StatusEffects map[types.EntityID]*component.StatusEffects
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Projectiles   map[types.EntityID]*component.Projectile
	Renderables   map[types.EntityID]*component.Renderable

	Wave  *component.Wave
	Phase component.GamePhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollowers: make(map[types.EntityID]*component.PathFollower),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Wave:          nil,
		Phase:         component.BuildPhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs возвращает ключи карты компонентов по возрастанию.
// Итерация по картам в Go недетерминирована; системы обходят сущности
// в порядке ID, чтобы повтор с тем же сидом давал тот же результат.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
