package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-waypoint-defense/pkg/geom"
)

func newTestMap() *Map {
	return NewMap(10, 8, 32)
}

func TestNewMap(t *testing.T) {
	m := newTestMap()

	require.NotNil(t, m)
	assert.Len(t, m.Tiles, 80)
	assert.Equal(t, Cell{0, 4}, m.Entry)
	assert.Equal(t, Cell{9, 4}, m.Exit)
	assert.Len(t, m.Checkpoints, 2)

	// Вход, выход и чекпоинты проходимы, но не застраиваемы.
	for _, c := range append([]Cell{m.Entry, m.Exit}, m.Checkpoints...) {
		assert.True(t, m.IsPassable(c), "cell %v should be passable", c)
		assert.False(t, m.IsBuildable(c), "cell %v should not be buildable", c)
	}

	assert.True(t, m.IsBuildable(Cell{1, 1}))
}

func TestMap_InBounds(t *testing.T) {
	m := newTestMap()

	assert.True(t, m.InBounds(Cell{0, 0}))
	assert.True(t, m.InBounds(Cell{9, 7}))
	assert.False(t, m.InBounds(Cell{-1, 0}))
	assert.False(t, m.InBounds(Cell{10, 0}))
	assert.False(t, m.InBounds(Cell{0, 8}))
}

func TestMap_SetPassable(t *testing.T) {
	m := newTestMap()
	c := Cell{2, 2}

	m.SetPassable(c, false)
	assert.False(t, m.IsPassable(c))
	assert.False(t, m.IsBuildable(c))

	m.SetPassable(c, true)
	assert.True(t, m.IsPassable(c))
}

func TestMap_CellCenterAndCellAt(t *testing.T) {
	m := newTestMap()

	center := m.CellCenter(Cell{2, 3})
	assert.InDelta(t, 80.0, center.X, 1e-9)
	assert.InDelta(t, 112.0, center.Y, 1e-9)

	// Центр клетки всегда попадает обратно в неё же.
	assert.Equal(t, Cell{2, 3}, m.CellAt(center))
	assert.Equal(t, Cell{0, 0}, m.CellAt(geom.Point{X: 1, Y: 1}))
}

func TestMap_BuildPathCells(t *testing.T) {
	m := newTestMap()

	cells := m.BuildPathCells()
	require.NotNil(t, cells)
	assert.Equal(t, m.Entry, cells[0])
	assert.Equal(t, m.Exit, cells[len(cells)-1])

	// Маршрут проходит через оба чекпоинта по порядку.
	firstCP, secondCP := -1, -1
	for i, c := range cells {
		if c == m.Checkpoints[0] && firstCP == -1 {
			firstCP = i
		}
		if c == m.Checkpoints[1] {
			secondCP = i
		}
	}
	require.NotEqual(t, -1, firstCP)
	require.NotEqual(t, -1, secondCP)
	assert.Less(t, firstCP, secondCP)

	// Соседние клетки маршрута ортогонально смежны.
	for i := 1; i < len(cells); i++ {
		assert.Equal(t, 1, cells[i-1].Distance(cells[i]),
			"cells %v and %v are not adjacent", cells[i-1], cells[i])
	}
}

func TestMap_BuildPathCells_Blocked(t *testing.T) {
	m := newTestMap()

	// Отрезаем вход от остального поля.
	m.SetPassable(Cell{0, 3}, false)
	m.SetPassable(Cell{0, 5}, false)
	m.SetPassable(Cell{1, 4}, false)

	assert.Nil(t, m.BuildPathCells())
	assert.Nil(t, m.BuildWaypoints())
}

func TestMap_BuildWaypoints(t *testing.T) {
	m := newTestMap()

	points := m.BuildWaypoints()
	require.NotNil(t, points)
	require.GreaterOrEqual(t, len(points), 2)
	assert.Equal(t, m.CellCenter(m.Entry), points[0])
	assert.Equal(t, m.CellCenter(m.Exit), points[len(points)-1])
}

func TestAStar(t *testing.T) {
	m := newTestMap()

	path := AStar(Cell{0, 0}, Cell{3, 0}, m)
	require.NotNil(t, path)
	assert.Equal(t, Cell{0, 0}, path[0])
	assert.Equal(t, Cell{3, 0}, path[len(path)-1])
	assert.Len(t, path, 4) // кратчайший путь по прямой

	// Недостижимая цель
	m.SetPassable(Cell{3, 0}, false)
	assert.Nil(t, AStar(Cell{0, 0}, Cell{3, 0}, m))
}

func TestCell_Distance(t *testing.T) {
	assert.Equal(t, 0, Cell{1, 1}.Distance(Cell{1, 1}))
	assert.Equal(t, 7, Cell{0, 0}.Distance(Cell{3, 4}))
	assert.Equal(t, 7, Cell{3, 4}.Distance(Cell{0, 0}))
}
