// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Health      float64                `json:"health"`
	Speed       float64                `json:"speed"` // world units per second
	Armor       float64                `json:"armor"` // плоское снижение урона
	Resistances map[DamageType]float64 `json:"resistances,omitempty"`
	Bounty      int                    `json:"bounty"`
	Radius      float64                `json:"radius"` // радиус тела, он же радиус попадания
	SpawnCost   float64                `json:"spawn_cost"`
	IntroWave   int                    `json:"intro_wave"` // с какой волны тип допускается
	RampWaves   int                    `json:"ramp_waves"` // за сколько волн шанс растёт до 1
	Visuals     Visuals                `json:"visuals"`
}

// DefaultEnemyDefinitions returns the built-in enemy roster, used when no
// enemies.json is supplied.
func DefaultEnemyDefinitions() []EnemyDefinition {
	return []EnemyDefinition{
		{
			ID: "ENEMY_NORMAL", Name: "Walker",
			Health: 30, Speed: 80, Armor: 0,
			Bounty: 5, Radius: 10, SpawnCost: 2,
			IntroWave: 1, RampWaves: 1,
			Visuals: Visuals{Color: color.RGBA{200, 60, 60, 255}},
		},
		{
			ID: "ENEMY_FAST", Name: "Runner",
			Health: 18, Speed: 140, Armor: 0,
			Bounty: 6, Radius: 8, SpawnCost: 3,
			IntroWave: 2, RampWaves: 2,
			Visuals: Visuals{Color: color.RGBA{230, 160, 40, 255}},
		},
		{
			ID: "ENEMY_TOUGH", Name: "Brute",
			Health: 70, Speed: 55, Armor: 4,
			Bounty: 9, Radius: 13, SpawnCost: 5,
			IntroWave: 3, RampWaves: 3,
			Visuals: Visuals{Color: color.RGBA{120, 80, 40, 255}, StrokeWidth: 2},
		},
		{
			ID: "ENEMY_MAGIC_RESIST", Name: "Hexed",
			Health: 45, Speed: 70, Armor: 1,
			Resistances: map[DamageType]float64{DamageMagical: 0.6},
			Bounty:      10, Radius: 11, SpawnCost: 6,
			IntroWave: 4, RampWaves: 3,
			Visuals: Visuals{Color: color.RGBA{90, 60, 160, 255}},
		},
		{
			ID: "ENEMY_PHYS_RESIST", Name: "Shelled",
			Health: 45, Speed: 65, Armor: 2,
			Resistances: map[DamageType]float64{DamagePhysical: 0.6},
			Bounty:      10, Radius: 11, SpawnCost: 6,
			IntroWave: 4, RampWaves: 3,
			Visuals: Visuals{Color: color.RGBA{60, 140, 140, 255}},
		},
		{
			ID: "ENEMY_BOSS", Name: "Colossus",
			Health: 400, Speed: 40, Armor: 6,
			Resistances: map[DamageType]float64{DamagePhysical: 0.25, DamageMagical: 0.25},
			Bounty:      60, Radius: 18, SpawnCost: 25,
			IntroWave: 7, RampWaves: 4,
			Visuals: Visuals{Color: color.RGBA{20, 20, 20, 255}, StrokeWidth: 3},
		},
	}
}
