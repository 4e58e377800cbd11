// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// LoadDefaults populates both libraries with the built-in definitions.
func LoadDefaults() error {
	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range DefaultTowerDefinitions() {
		TowerLibrary[def.ID] = def
	}
	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range DefaultEnemyDefinitions() {
		EnemyLibrary[def.ID] = def
	}
	return Validate()
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// Validate проверяет целостность загруженных определений. Ошибка здесь —
// ошибка данных, игра не должна стартовать.
func Validate() error {
	if len(EnemyLibrary) == 0 {
		return fmt.Errorf("enemy library is empty")
	}
	if len(TowerLibrary) == 0 {
		return fmt.Errorf("tower library is empty")
	}

	for id, def := range EnemyLibrary {
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %v", id, def.Health)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %v", id, def.Speed)
		}
		if def.SpawnCost <= 0 {
			return fmt.Errorf("enemy %s: spawn cost must be positive, got %v", id, def.SpawnCost)
		}
		if def.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %v", id, def.Radius)
		}
		for dtype, r := range def.Resistances {
			if r < 0 || r >= 1 {
				return fmt.Errorf("enemy %s: resistance %s out of [0,1): %v", id, dtype, r)
			}
			if !validDamageType(dtype) {
				return fmt.Errorf("enemy %s: unknown damage type %q", id, dtype)
			}
		}
	}

	for id, def := range TowerLibrary {
		c := def.Combat
		if c.FireRate <= 0 {
			return fmt.Errorf("tower %s: fire rate must be positive, got %v", id, c.FireRate)
		}
		if c.Range <= 0 {
			return fmt.Errorf("tower %s: range must be positive, got %v", id, c.Range)
		}
		if !validDamageType(c.DamageType) {
			return fmt.Errorf("tower %s: unknown damage type %q", id, c.DamageType)
		}
		if !validTargeting(c.Targeting) {
			return fmt.Errorf("tower %s: unknown targeting mode %q", id, c.Targeting)
		}
		if c.Projectile.Speed <= 0 {
			return fmt.Errorf("tower %s: projectile speed must be positive, got %v", id, c.Projectile.Speed)
		}
		if c.Projectile.Lifetime <= 0 || c.Projectile.MaxDistance <= 0 {
			return fmt.Errorf("tower %s: projectile lifetime and max distance must be positive", id)
		}
		if def.MaxLevel < 1 {
			return fmt.Errorf("tower %s: max level must be at least 1, got %d", id, def.MaxLevel)
		}
	}
	return nil
}

func validDamageType(t DamageType) bool {
	switch t {
	case DamagePhysical, DamageMagical, DamagePure:
		return true
	}
	return false
}

func validTargeting(m TargetingMode) bool {
	switch m {
	case TargetClosest, TargetFurthest, TargetWeakest, TargetStrongest, TargetProgress:
		return true
	}
	return false
}
