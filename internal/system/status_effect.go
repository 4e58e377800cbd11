// internal/system/status_effect.go
package system

import "go-waypoint-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов: замедление,
// оглушение, горение, заморозка.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты. Порядок за тик: сначала
// списываются длительности и снимаются истёкшие эффекты, затем ещё
// активное горение наносит урон пропорционально deltaTime.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.StatusEffects) {
		fx := s.ecs.StatusEffects[id]

		if fx.Slow != nil {
			fx.Slow.Remaining -= deltaTime
			if fx.Slow.Remaining <= 0 {
				fx.Slow = nil
			}
		}
		if fx.Stun != nil {
			fx.Stun.Remaining -= deltaTime
			if fx.Stun.Remaining <= 0 {
				fx.Stun = nil
			}
		}
		if fx.Freeze != nil {
			fx.Freeze.Remaining -= deltaTime
			if fx.Freeze.Remaining <= 0 {
				fx.Freeze = nil
			}
		}
		if fx.Burn != nil {
			fx.Burn.Remaining -= deltaTime
			if fx.Burn.Remaining <= 0 {
				fx.Burn = nil
			} else {
				ApplyUnmitigatedDamage(s.ecs, id, fx.Burn.DamagePerSecond*deltaTime)
			}
		}
	}
}
