// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Cost        int         `json:"cost"`
	UpgradeCost int         `json:"upgrade_cost"`
	MaxLevel    int         `json:"max_level"`
	Combat      CombatStats `json:"combat"`
	Visuals     Visuals     `json:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage     float64       `json:"damage"`
	DamageType DamageType    `json:"damage_type"`
	FireRate   float64       `json:"fire_rate"` // Shots per second
	Range      float64       `json:"range"`     // world units
	Variance   float64       `json:"variance"`  // симметричный разброс урона, доля (0.1 = ±10%)
	Targeting  TargetingMode `json:"targeting"`
	Projectile ProjectileDef `json:"projectile"`
	Effect     *EffectDef    `json:"effect,omitempty"` // накладывается при попадании
}

// ProjectileDef describes the projectile a tower fires.
type ProjectileDef struct {
	Speed       float64 `json:"speed"`
	Lifetime    float64 `json:"lifetime"`     // seconds
	MaxDistance float64 `json:"max_distance"` // world units
	Piercing    bool    `json:"piercing"`
	Homing      bool    `json:"homing"`
}

// EffectDef — статус-эффекты, которые снаряд накладывает на цель.
// Using pointers to avoid including all fields for all effect types.
type EffectDef struct {
	Slow   *SlowDef   `json:"slow,omitempty"`
	Burn   *BurnDef   `json:"burn,omitempty"`
	Stun   *StunDef   `json:"stun,omitempty"`
	Freeze *FreezeDef `json:"freeze,omitempty"`
}

type SlowDef struct {
	Factor   float64 `json:"factor"` // множитель скорости, 0.5 = вдвое медленнее
	Duration float64 `json:"duration"`
}

type BurnDef struct {
	DamagePerSecond float64 `json:"damage_per_second"`
	Duration        float64 `json:"duration"`
}

type StunDef struct {
	Duration float64 `json:"duration"`
}

type FreezeDef struct {
	Duration float64 `json:"duration"`
}

// DefaultTowerDefinitions returns the built-in tower set, used when no
// towers.json is supplied.
func DefaultTowerDefinitions() []TowerDefinition {
	return []TowerDefinition{
		{
			ID: "TOWER_ARROW", Name: "Arrow Tower",
			Cost: 40, UpgradeCost: 30, MaxLevel: 3,
			Combat: CombatStats{
				Damage: 10, DamageType: DamagePhysical,
				FireRate: 1.5, Range: 150, Variance: 0.1,
				Targeting: TargetClosest,
				Projectile: ProjectileDef{
					Speed: 320, Lifetime: 2.0, MaxDistance: 400, Homing: true,
				},
			},
			Visuals: Visuals{Color: color.RGBA{255, 50, 50, 255}},
		},
		{
			ID: "TOWER_SNIPER", Name: "Sniper Tower",
			Cost: 70, UpgradeCost: 55, MaxLevel: 3,
			Combat: CombatStats{
				Damage: 34, DamageType: DamagePhysical,
				FireRate: 0.5, Range: 300, Variance: 0.15,
				Targeting: TargetProgress,
				Projectile: ProjectileDef{
					Speed: 600, Lifetime: 1.5, MaxDistance: 700, Homing: true,
				},
			},
			Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}},
		},
		{
			ID: "TOWER_FROST", Name: "Frost Tower",
			Cost: 55, UpgradeCost: 45, MaxLevel: 3,
			Combat: CombatStats{
				Damage: 4, DamageType: DamageMagical,
				FireRate: 1.0, Range: 130,
				Targeting: TargetClosest,
				Projectile: ProjectileDef{
					Speed: 260, Lifetime: 2.0, MaxDistance: 320, Homing: true,
				},
				Effect: &EffectDef{
					Slow: &SlowDef{Factor: 0.5, Duration: 2.0},
				},
			},
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}},
		},
		{
			ID: "TOWER_FLAME", Name: "Flame Tower",
			Cost: 60, UpgradeCost: 50, MaxLevel: 3,
			Combat: CombatStats{
				Damage: 6, DamageType: DamageMagical,
				FireRate: 1.2, Range: 120,
				Targeting: TargetWeakest,
				Projectile: ProjectileDef{
					Speed: 240, Lifetime: 1.5, MaxDistance: 280, Homing: true,
				},
				Effect: &EffectDef{
					Burn: &BurnDef{DamagePerSecond: 8, Duration: 3.0},
				},
			},
			Visuals: Visuals{Color: color.RGBA{230, 120, 30, 255}},
		},
		{
			ID: "TOWER_BALLISTA", Name: "Ballista",
			Cost: 85, UpgradeCost: 65, MaxLevel: 3,
			Combat: CombatStats{
				Damage: 18, DamageType: DamagePhysical,
				FireRate: 0.8, Range: 200, Variance: 0.1,
				Targeting: TargetStrongest,
				// Болт летит по прямой сквозь строй.
				Projectile: ProjectileDef{
					Speed: 420, Lifetime: 2.0, MaxDistance: 420, Piercing: true,
				},
			},
			Visuals: Visuals{Color: color.RGBA{180, 50, 230, 255}},
		},
	}
}
