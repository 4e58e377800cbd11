// internal/system/combat.go
package system

import (
	"image/color"
	"math"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
)

// ProjectileSpawn — заявка башни на выстрел. Башня никогда не трогает
// врагов напрямую: урон доставляет только снаряд.
type ProjectileSpawn struct {
	Origin     geom.Point
	TargetID   types.EntityID
	Damage     float64
	DamageType defs.DamageType
	Def        defs.ProjectileDef
	Effect     *defs.EffectDef
	Color      color.RGBA
}

// CombatSystem управляет атакой башен: перепроверка цели, поиск новой
// по стратегии башни, отсчёт перезарядки и выстрел.
//
// Цель — слабая ссылка по ID: каждый тик она заново ищется в живой
// таблице врагов; умерла, дошла до выхода или вышла из радиуса —
// ссылка сбрасывается и цель ищется заново в том же тике.
type CombatSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{ecs: ecs, rng: rng}
}

// Update возвращает заявки на снаряды, созданные за этот тик.
func (s *CombatSystem) Update(deltaTime float64) []ProjectileSpawn {
	var spawns []ProjectileSpawn

	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower {
			continue
		}
		towerPos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		origin := geom.Point{X: towerPos.X, Y: towerPos.Y}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
		}

		if !s.targetValid(tower.TargetID, origin, tower.Range) {
			tower.TargetID = s.acquireTarget(origin, tower.Range, combat.Targeting)
		}
		if tower.TargetID == 0 {
			continue
		}

		if combat.FireCooldown > 0 {
			continue
		}

		damage := combat.Damage * (1 + config.TowerDamagePerLevel*float64(tower.Level-1))
		if combat.Variance > 0 {
			damage *= 1 + s.rng.Symmetric()*combat.Variance
		}
		damage = math.Round(damage)

		spawns = append(spawns, ProjectileSpawn{
			Origin:     origin,
			TargetID:   tower.TargetID,
			Damage:     damage,
			DamageType: combat.DamageType,
			Def:        combat.Projectile,
			Effect:     combat.Effect,
			Color:      projectileColor(combat),
		})
		combat.FireCooldown = 1.0 / combat.FireRate
	}

	return spawns
}

// targetValid проверяет слабую ссылку на цель.
func (s *CombatSystem) targetValid(id types.EntityID, origin geom.Point, rangeRadius float64) bool {
	if id == 0 {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dead || enemy.ReachedEnd {
		return false
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return false
	}
	return geom.Dist(origin, geom.Point{X: pos.X, Y: pos.Y}) <= rangeRadius
}

// acquireTarget выбирает цель среди врагов в радиусе по стратегии башни.
// Кандидаты обходятся по возрастанию ID со строгими сравнениями, поэтому
// при равных оценках побеждает наименьший ID — самый старый спавн.
func (s *CombatSystem) acquireTarget(origin geom.Point, rangeRadius float64, mode defs.TargetingMode) types.EntityID {
	var best types.EntityID
	var bestScore float64

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.Dead || enemy.ReachedEnd {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dist := geom.Dist(origin, geom.Point{X: pos.X, Y: pos.Y})
		if dist > rangeRadius {
			continue
		}

		var score float64
		switch mode {
		case defs.TargetClosest:
			score = -dist
		case defs.TargetFurthest:
			score = dist
		case defs.TargetWeakest:
			score = -enemy.Health
		case defs.TargetStrongest:
			score = enemy.Health
		case defs.TargetProgress:
			if follower, has := s.ecs.PathFollowers[id]; has {
				score = follower.ProgressFraction()
			}
		default:
			score = -dist
		}

		if best == 0 || score > bestScore {
			best = id
			bestScore = score
		}
	}

	return best
}

// PredictImpactPoint оценивает точку встречи снаряда с врагом, итеративно
// уточняя время подлёта по движению цели вдоль её пути. Используется
// неуправляемыми снарядами, курс которых фиксируется в момент выстрела.
func PredictImpactPoint(ecs *entity.ECS, enemyID types.EntityID, origin geom.Point, projSpeed float64) geom.Point {
	follower, hasPath := ecs.PathFollowers[enemyID]
	vel, hasVel := ecs.Velocities[enemyID]
	pos, hasPos := ecs.Positions[enemyID]
	if !hasPos {
		return origin
	}
	current := geom.Point{X: pos.X, Y: pos.Y}
	if !hasPath || !hasVel || projSpeed <= 0 {
		return current
	}

	speed := vel.Speed
	if fx, has := ecs.StatusEffects[enemyID]; has {
		speed *= fx.SpeedMultiplier()
		if fx.IsStunned() {
			speed = 0
		}
	}

	const maxIterations = 3
	timeToHit := 0.0
	predicted := current
	for iter := 0; iter < maxIterations; iter++ {
		sim := *follower // копия: продвигаем без изменения оригинала
		sim.Advance(speed, timeToHit)
		predicted = sim.Position()
		newTime := geom.Dist(origin, predicted) / projSpeed
		if math.Abs(newTime-timeToHit) < 0.01 {
			break
		}
		timeToHit = newTime
	}
	return predicted
}

// projectileColor подбирает цвет снаряда по типу урона; снаряды с
// замедлением и заморозкой всегда синие.
func projectileColor(combat *component.Combat) color.RGBA {
	if combat.Effect != nil && (combat.Effect.Slow != nil || combat.Effect.Freeze != nil) {
		return config.ColorBlue
	}
	switch combat.DamageType {
	case defs.DamagePhysical:
		return config.ColorYellow
	case defs.DamageMagical:
		return config.ColorRed
	default:
		return config.ColorWhite
	}
}
