// internal/component/projectile.go
package component

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

// Projectile представляет летящий снаряд.
//
// Самонаводящийся снаряд каждый тик обновляет направление на живую цель;
// если цель умерла в полёте, он продолжает лететь по последнему курсу.
// Пробивающий снаряд после попадания живёт дальше, но один и тот же враг
// не может пострадать от него дважды (HitIDs).
type Projectile struct {
	TargetID    types.EntityID // 0 для неуправляемых снарядов
	Direction   geom.Point     // единичный вектор текущего курса
	Speed       float64
	Damage      float64
	DamageType  defs.DamageType
	Piercing    bool
	HasHit      bool
	IsDead      bool
	Age         float64
	Lifetime    float64
	Traveled    float64
	MaxDistance float64
	Effect      *defs.EffectDef
	HitIDs      map[types.EntityID]struct{}
}

// MarkHit регистрирует попадание по врагу.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.HitIDs == nil {
		p.HitIDs = make(map[types.EntityID]struct{})
	}
	p.HitIDs[id] = struct{}{}
	p.HasHit = true
}

// AlreadyHit сообщает, был ли враг уже поражён этим снарядом.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	_, ok := p.HitIDs[id]
	return ok
}
