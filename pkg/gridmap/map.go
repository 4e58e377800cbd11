// pkg/gridmap/map.go
package gridmap

import (
	"go-waypoint-defense/pkg/geom"
)

// Cell — координаты клетки на прямоугольной сетке.
type Cell struct {
	Col, Row int
}

// Neighbors возвращает четырёх ортогональных соседей клетки.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{c.Col + 1, c.Row},
		{c.Col - 1, c.Row},
		{c.Col, c.Row + 1},
		{c.Col, c.Row - 1},
	}
}

// Distance возвращает манхэттенское расстояние между клетками.
func (c Cell) Distance(o Cell) int {
	return abs(c.Col-o.Col) + abs(c.Row-o.Row)
}

type Tile struct {
	Passable      bool
	CanPlaceTower bool
}

// Map — игровое поле. Враги идут от Entry через Checkpoints к Exit,
// башни занимают клетки и делают их непроходимыми.
type Map struct {
	Cols, Rows  int
	CellSize    float64
	Tiles       map[Cell]Tile
	Entry       Cell
	Exit        Cell
	Checkpoints []Cell
}

// NewMap создаёт поле cols x rows со входом слева, выходом справа
// и двумя чекпоинтами, заставляющими путь петлять.
func NewMap(cols, rows int, cellSize float64) *Map {
	tiles := make(map[Cell]Tile, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			tiles[Cell{col, row}] = Tile{Passable: true, CanPlaceTower: true}
		}
	}

	entry := Cell{0, rows / 2}
	exit := Cell{cols - 1, rows / 2}
	tiles[entry] = Tile{Passable: true, CanPlaceTower: false}
	tiles[exit] = Tile{Passable: true, CanPlaceTower: false}

	m := &Map{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Tiles:    tiles,
		Entry:    entry,
		Exit:     exit,
	}

	// Чекпоинты в противоположных четвертях поля
	m.Checkpoints = []Cell{
		{cols / 3, rows / 4},
		{2 * cols / 3, 3 * rows / 4},
	}
	for _, cp := range m.Checkpoints {
		m.Tiles[cp] = Tile{Passable: true, CanPlaceTower: false}
	}

	return m
}

func (m *Map) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.Cols && c.Row >= 0 && c.Row < m.Rows
}

func (m *Map) IsPassable(c Cell) bool {
	tile, ok := m.Tiles[c]
	return ok && tile.Passable
}

func (m *Map) IsBuildable(c Cell) bool {
	tile, ok := m.Tiles[c]
	return ok && tile.Passable && tile.CanPlaceTower
}

// SetPassable переключает проходимость клетки (постройка/продажа башни).
func (m *Map) SetPassable(c Cell, passable bool) {
	if tile, ok := m.Tiles[c]; ok {
		tile.Passable = passable
		m.Tiles[c] = tile
	}
}

// CellCenter возвращает мировые координаты центра клетки.
func (m *Map) CellCenter(c Cell) geom.Point {
	return geom.Point{
		X: (float64(c.Col) + 0.5) * m.CellSize,
		Y: (float64(c.Row) + 0.5) * m.CellSize,
	}
}

// CellAt возвращает клетку, содержащую мировую точку.
func (m *Map) CellAt(p geom.Point) Cell {
	return Cell{
		Col: int(p.X / m.CellSize),
		Row: int(p.Y / m.CellSize),
	}
}

// BuildWaypoints строит полный маршрут Entry -> Checkpoints -> Exit
// и возвращает его центрами клеток. nil — если маршрута нет.
func (m *Map) BuildWaypoints() []geom.Point {
	cells := m.BuildPathCells()
	if cells == nil {
		return nil
	}
	points := make([]geom.Point, len(cells))
	for i, c := range cells {
		points[i] = m.CellCenter(c)
	}
	return points
}

// BuildPathCells строит маршрут по клеткам, сшивая сегменты между
// чекпоинтами. Первая клетка каждого следующего сегмента совпадает
// с последней предыдущего и отбрасывается.
func (m *Map) BuildPathCells() []Cell {
	full := []Cell{}
	current := m.Entry
	for _, cp := range m.Checkpoints {
		segment := AStar(current, cp, m)
		if segment == nil {
			return nil
		}
		if len(full) == 0 {
			full = segment
		} else {
			full = append(full, segment[1:]...)
		}
		current = cp
	}

	toExit := AStar(current, m.Exit, m)
	if toExit == nil {
		return nil
	}
	if len(full) == 0 {
		return toExit
	}
	return append(full, toExit[1:]...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
