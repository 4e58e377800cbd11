// component/tower.go
package component

import (
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/gridmap"
)

// Tower — стационарная сущность на клетке сетки. Клетка неизменна после
// постройки; уровень влияет на урон и радиус через множители.
type Tower struct {
	DefID    string       // ID из библиотеки башен
	Cell     gridmap.Cell // клетка, на которой стоит башня
	Level    int          // >= 1
	Range    float64      // текущий радиус с учётом уровня
	TargetID types.EntityID // слабая ссылка: перепроверяется каждый тик, 0 — нет цели
}
