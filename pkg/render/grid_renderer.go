// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapColors — палитра отрисовки поля.
type MapColors struct {
	Background color.RGBA
	Tile       color.RGBA
	Path       color.RGBA
	Entry      color.RGBA
	Exit       color.RGBA
	GridLine   color.RGBA
}

// GridRenderer рисует поле и сущности. Карта предрендеривается в
// отдельное изображение и перерисовывается только при изменении
// застройки или маршрута.
type GridRenderer struct {
	m        *gridmap.Map
	colors   *MapColors
	mapImage *ebiten.Image
}

func NewGridRenderer(m *gridmap.Map, screenWidth, screenHeight int, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		m:        m,
		colors:   colors,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage(nil)
	return r
}

// RenderMapImage перерисовывает кэш карты; pathCells — клетки маршрута
// текущей волны для подсветки (nil — без маршрута).
func (r *GridRenderer) RenderMapImage(pathCells []gridmap.Cell) {
	r.mapImage.Fill(r.colors.Background)
	cs := float32(r.m.CellSize)

	onPath := make(map[gridmap.Cell]bool, len(pathCells))
	for _, c := range pathCells {
		onPath[c] = true
	}

	for col := 0; col < r.m.Cols; col++ {
		for row := 0; row < r.m.Rows; row++ {
			cell := gridmap.Cell{Col: col, Row: row}
			x := float32(col) * cs
			y := float32(row) * cs

			fill := r.colors.Tile
			switch {
			case cell == r.m.Entry:
				fill = r.colors.Entry
			case cell == r.m.Exit:
				fill = r.colors.Exit
			case onPath[cell]:
				fill = r.colors.Path
			}
			vector.DrawFilledRect(r.mapImage, x, y, cs, cs, fill, false)
			vector.StrokeRect(r.mapImage, x, y, cs, cs, 1, r.colors.GridLine, false)
		}
	}
}

// Draw выводит кэш карты и поверх него все живые сущности.
func (r *GridRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.DrawImage(r.mapImage, nil)
	r.drawTowers(screen, ecs)
	r.drawEnemies(screen, ecs)
	r.drawProjectiles(screen, ecs)
}

func (r *GridRenderer) drawTowers(screen *ebiten.Image, ecs *entity.ECS) {
	for id := range ecs.Towers {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		rend := ecs.Renderables[id]
		if rend == nil {
			continue
		}
		half := rend.Radius
		vector.DrawFilledRect(screen,
			float32(pos.X)-half, float32(pos.Y)-half,
			half*2, half*2, rend.Color, true)
		if rend.HasStroke {
			vector.StrokeRect(screen,
				float32(pos.X)-half, float32(pos.Y)-half,
				half*2, half*2, 2, config.TextLightColor, true)
		}
	}
}

func (r *GridRenderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS) {
	for id, enemy := range ecs.Enemies {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		rend := ecs.Renderables[id]
		if rend == nil {
			continue
		}
		// Радиус сжимается с потерей здоровья, как индикатор без полоски.
		frac := float32(0)
		if enemy.MaxHealth > 0 {
			frac = float32(enemy.Health / enemy.MaxHealth)
		}
		radius := (0.6 + 0.4*frac) * rend.Radius

		body := rend.Color
		if fx, has := ecs.StatusEffects[id]; has && fx.IsFrozen() {
			body = config.ColorBlue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, body, true)
		if rend.HasStroke {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, 2, config.TextLightColor, true)
		}
	}
}

func (r *GridRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for id := range ecs.Projectiles {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		rend := ecs.Renderables[id]
		if rend == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, rend.Color, true)
	}
}

// DrawRange подсвечивает радиус выбранной башни.
func (r *GridRenderer) DrawRange(screen *ebiten.Image, x, y, radius float64) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), config.RangeColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1, config.TextLightColor, true)
}
