// internal/app/tower_management.go
package app

import (
	"math"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/gridmap"
)

// PlacementReason — код исхода постройки/улучшения. Отказ — ожидаемое
// состояние, не ошибка: вызывающий показывает причину игроку и живёт
// дальше.
type PlacementReason string

const (
	PlacementOK           PlacementReason = "OK"
	PlacementOffMap       PlacementReason = "OFF_MAP"
	PlacementNotBuildable PlacementReason = "NOT_BUILDABLE"
	PlacementOccupied     PlacementReason = "OCCUPIED"
	PlacementBlocksPath   PlacementReason = "BLOCKS_PATH"
	PlacementNoFunds      PlacementReason = "INSUFFICIENT_FUNDS"
	PlacementWrongPhase   PlacementReason = "WRONG_PHASE"
	PlacementUnknownType  PlacementReason = "UNKNOWN_TYPE"
	PlacementMaxLevel     PlacementReason = "MAX_LEVEL"
	PlacementNotFound     PlacementReason = "NOT_FOUND"
)

// PlaceTower attempts to place a tower of the given type at the cell.
func (g *Game) PlaceTower(defID string, cell gridmap.Cell) (types.EntityID, PlacementReason) {
	if g.ECS.Phase != component.BuildPhase {
		return 0, PlacementWrongPhase
	}
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, PlacementUnknownType
	}
	if !g.Map.InBounds(cell) {
		return 0, PlacementOffMap
	}
	// Занятую клетку отличаем от непригодной: постройка делает клетку
	// непроходимой, так что проверка IsBuildable её тоже отбраковала бы.
	if _, occupied := g.TowerAt(cell); occupied {
		return 0, PlacementOccupied
	}
	if !g.Map.IsBuildable(cell) {
		return 0, PlacementNotBuildable
	}
	if g.placementBlocksPath(cell) {
		return 0, PlacementBlocksPath
	}
	if !g.economy.CanAfford(def.Cost) {
		return 0, PlacementNoFunds
	}
	g.economy.Spend(def.Cost)

	id := g.createTowerEntity(def, cell)
	g.Map.SetPassable(cell, false)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: cell})
	return id, PlacementOK
}

// placementBlocksPath временно закрывает клетку и проверяет, что маршрут
// Entry -> Checkpoints -> Exit всё ещё существует.
func (g *Game) placementBlocksPath(cell gridmap.Cell) bool {
	g.Map.SetPassable(cell, false)
	defer g.Map.SetPassable(cell, true)
	return g.Map.BuildPathCells() == nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, cell gridmap.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	b := g.towerPool.Get()

	center := g.Map.CellCenter(cell)
	b.Tower = component.Tower{
		DefID: def.ID,
		Cell:  cell,
		Level: 1,
		Range: def.Combat.Range,
	}
	b.Combat = component.Combat{
		FireRate:   def.Combat.FireRate,
		Damage:     def.Combat.Damage,
		DamageType: def.Combat.DamageType,
		Variance:   def.Combat.Variance,
		Targeting:  def.Combat.Targeting,
		Projectile: def.Combat.Projectile,
		Effect:     def.Combat.Effect,
	}
	b.Position = component.Position{X: center.X, Y: center.Y}
	b.Renderable = component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(g.Map.CellSize * 0.35),
		HasStroke: true,
	}

	g.ECS.Towers[id] = &b.Tower
	g.ECS.Combats[id] = &b.Combat
	g.ECS.Positions[id] = &b.Position
	g.ECS.Renderables[id] = &b.Renderable
	g.towers[id] = b
	return id
}

// SellTower убирает башню и возвращает часть вложенных денег.
func (g *Game) SellTower(id types.EntityID) (int, PlacementReason) {
	if g.ECS.Phase != component.BuildPhase {
		return 0, PlacementWrongPhase
	}
	b, ok := g.towers[id]
	if !ok {
		return 0, PlacementNotFound
	}
	def := defs.TowerLibrary[b.Tower.DefID]
	invested := def.Cost + (b.Tower.Level-1)*def.UpgradeCost
	refund := int(math.Round(float64(invested) * config.TowerSellRefund))

	cell := b.Tower.Cell
	delete(g.ECS.Towers, id)
	delete(g.ECS.Combats, id)
	delete(g.ECS.Positions, id)
	delete(g.ECS.Renderables, id)
	delete(g.towers, id)
	g.towerPool.Put(b)

	g.Map.SetPassable(cell, true)
	g.economy.Earn(refund)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: cell})
	return refund, PlacementOK
}

// UpgradeTower поднимает уровень башни: урон и радиус растут
// мультипликативно от уровня.
func (g *Game) UpgradeTower(id types.EntityID) PlacementReason {
	b, ok := g.towers[id]
	if !ok {
		return PlacementNotFound
	}
	def := defs.TowerLibrary[b.Tower.DefID]
	if b.Tower.Level >= def.MaxLevel {
		return PlacementMaxLevel
	}
	if !g.economy.CanAfford(def.UpgradeCost) {
		return PlacementNoFunds
	}
	g.economy.Spend(def.UpgradeCost)

	b.Tower.Level++
	b.Tower.Range = def.Combat.Range * (1 + config.TowerRangePerLevel*float64(b.Tower.Level-1))
	return PlacementOK
}

// TowerAt возвращает башню на клетке, если она там есть.
func (g *Game) TowerAt(cell gridmap.Cell) (types.EntityID, bool) {
	for id, b := range g.towers {
		if b.Tower.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// TowerPoolFreeCount — число бандлов башен, ожидающих переиспользования.
func (g *Game) TowerPoolFreeCount() int {
	return g.towerPool.FreeCount()
}
