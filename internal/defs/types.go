// internal/defs/types.go
package defs

import "image/color"

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageMagical  DamageType = "MAGICAL"
	DamagePure     DamageType = "PURE"
)

// TargetingMode defines how a tower picks its target among enemies in range.
type TargetingMode string

const (
	TargetClosest   TargetingMode = "CLOSEST"
	TargetFurthest  TargetingMode = "FURTHEST"
	TargetWeakest   TargetingMode = "WEAKEST"
	TargetStrongest TargetingMode = "STRONGEST"
	TargetProgress  TargetingMode = "PROGRESS" // ближайший к выходу
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	StrokeWidth float64    `json:"stroke_width"`
}
