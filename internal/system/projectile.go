// internal/system/projectile.go
package system

import (
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Система владеет пулом снарядов: Spawn берёт бандл из пула, Free
// сначала удаляет компоненты из ECS и только потом возвращает бандл.
type ProjectileSystem struct {
	ecs     *entity.ECS
	pool    *entity.Pool[entity.ProjectileBundle]
	bundles map[types.EntityID]*entity.ProjectileBundle
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		pool:    entity.NewPool(entity.ResetProjectileBundle),
		bundles: make(map[types.EntityID]*entity.ProjectileBundle),
	}
}

// Spawn создаёт снаряд по заявке башни.
func (s *ProjectileSystem) Spawn(req ProjectileSpawn) types.EntityID {
	id := s.ecs.NewEntity()
	b := s.pool.Get()

	var dir geom.Point
	if req.Def.Homing {
		if pos, ok := s.ecs.Positions[req.TargetID]; ok {
			dir = geom.Point{X: pos.X, Y: pos.Y}.Sub(req.Origin).Normalized()
		}
	} else {
		// Курс фиксируется на упреждённую точку и больше не меняется.
		aim := PredictImpactPoint(s.ecs, req.TargetID, req.Origin, req.Def.Speed)
		dir = aim.Sub(req.Origin).Normalized()
	}

	b.Projectile = component.Projectile{
		Direction:   dir,
		Speed:       req.Def.Speed,
		Damage:      req.Damage,
		DamageType:  req.DamageType,
		Piercing:    req.Def.Piercing,
		Lifetime:    req.Def.Lifetime,
		MaxDistance: req.Def.MaxDistance,
		Effect:      req.Effect,
		HitIDs:      b.Projectile.HitIDs,
	}
	if req.Def.Homing {
		b.Projectile.TargetID = req.TargetID
	}
	b.Position = component.Position{X: req.Origin.X, Y: req.Origin.Y}
	b.Renderable = component.Renderable{Color: req.Color, Radius: config.ProjectileRadius}

	s.ecs.Projectiles[id] = &b.Projectile
	s.ecs.Positions[id] = &b.Position
	s.ecs.Renderables[id] = &b.Renderable
	s.bundles[id] = b
	return id
}

// Free удаляет снаряд из живых коллекций и возвращает бандл в пул.
func (s *ProjectileSystem) Free(id types.EntityID) {
	b, ok := s.bundles[id]
	if !ok {
		return
	}
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Positions, id)
	delete(s.ecs.Renderables, id)
	delete(s.bundles, id)
	s.pool.Put(b)
}

// PoolFreeCount — число снарядов, ожидающих переиспользования.
func (s *ProjectileSystem) PoolFreeCount() int {
	return s.pool.FreeCount()
}

// Update двигает снаряды и разрешает столкновения с живыми врагами.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		if proj.IsDead {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			proj.IsDead = true
			continue
		}

		// Самонаведение: пока цель жива, курс обновляется на её текущую
		// позицию; мёртвая цель не ошибка — летим по последнему курсу.
		if proj.TargetID != 0 {
			if enemy, alive := s.ecs.Enemies[proj.TargetID]; alive && !enemy.Dead {
				if targetPos, ok := s.ecs.Positions[proj.TargetID]; ok {
					proj.Direction = geom.Point{X: targetPos.X, Y: targetPos.Y}.
						Sub(geom.Point{X: pos.X, Y: pos.Y}).Normalized()
				}
			}
		}

		step := proj.Speed * deltaTime
		pos.X += proj.Direction.X * step
		pos.Y += proj.Direction.Y * step
		proj.Traveled += step
		proj.Age += deltaTime

		if proj.Traveled >= proj.MaxDistance || proj.Age >= proj.Lifetime {
			proj.IsDead = true
			continue
		}

		s.resolveCollisions(id, proj, pos)
	}
}

// resolveCollisions — проверка снаряда против всех живых врагов.
// Попадание — расстояние до центра врага не больше радиуса его тела
// плюс малого допуска. Пробивающий снаряд продолжает полёт, но в один
// и тот же ID дважды не попадает; обычный умирает на первом попадании.
func (s *ProjectileSystem) resolveCollisions(projID types.EntityID, proj *component.Projectile, pos *component.Position) {
	projPoint := geom.Point{X: pos.X, Y: pos.Y}
	for _, enemyID := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[enemyID]
		if enemy.Dead || proj.AlreadyHit(enemyID) {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}

		dist := geom.Dist(projPoint, geom.Point{X: enemyPos.X, Y: enemyPos.Y})
		if dist > enemy.Radius+config.CollisionEpsilon {
			continue
		}

		ApplyDamage(s.ecs, enemyID, proj.Damage, proj.DamageType)
		proj.MarkHit(enemyID)
		s.applyEffect(enemyID, proj)

		if !proj.Piercing {
			proj.IsDead = true
			return
		}
	}
}

func (s *ProjectileSystem) applyEffect(enemyID types.EntityID, proj *component.Projectile) {
	if proj.Effect == nil {
		return
	}
	fx, ok := s.ecs.StatusEffects[enemyID]
	if !ok {
		return
	}
	if def := proj.Effect.Slow; def != nil {
		fx.ApplySlow(def.Factor, def.Duration)
	}
	if def := proj.Effect.Burn; def != nil {
		fx.ApplyBurn(def.DamagePerSecond, def.Duration)
	}
	if def := proj.Effect.Stun; def != nil {
		fx.ApplyStun(def.Duration)
	}
	if def := proj.Effect.Freeze; def != nil {
		fx.ApplyFreeze(def.Duration)
	}
}
