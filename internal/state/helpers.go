// internal/state/helpers.go
package state

import (
	"image"

	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/pkg/geom"
)

func cursorPoint(x, y int) geom.Point {
	return geom.Point{X: float64(x), Y: float64(y)}
}

func imagePoint(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

func towerDef(id string) (defs.TowerDefinition, bool) {
	def, ok := defs.TowerLibrary[id]
	return def, ok
}
