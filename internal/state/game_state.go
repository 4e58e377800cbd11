// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	game "go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/pkg/gridmap"
	"go-waypoint-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Горячие клавиши 1..5 выбирают тип башни в этом порядке.
var towerHotkeys = []string{
	"TOWER_ARROW",
	"TOWER_SNIPER",
	"TOWER_FROST",
	"TOWER_FLAME",
	"TOWER_BALLISTA",
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	wallet   *game.Wallet
	gridMap  *gridmap.Map
	renderer *render.GridRenderer
	face     font.Face

	indicator     *ui.StateIndicator
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	infoPanel     *ui.InfoPanel

	selectedTower string // ID типа башни для постройки, "" — ничего
	lastRefusal   string // причина последнего отказа постройки
	refusalUntil  time.Time
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gridMap := gridmap.NewMap(config.GridCols, config.GridRows, config.CellSize)
	wallet := game.NewWallet(config.StartingGold)
	gameLogic := game.NewGame(gridMap, wallet, defs.DefaultWaveConfig(), seed)

	mapColors := &render.MapColors{
		Background: config.BackgroundColor,
		Tile:       config.PassableColor,
		Path:       config.PathColor,
		Entry:      config.EntryColor,
		Exit:       config.ExitColor,
		GridLine:   config.GridLineColor,
	}
	renderer := render.NewGridRenderer(gridMap, config.ScreenWidth, config.ScreenHeight, mapColors)
	renderer.RenderMapImage(gridMap.BuildPathCells())

	face := render.DefaultFace()

	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	pauseButton := ui.NewPauseButton(
		float32(config.ScreenWidth-config.IndicatorOffsetX*3),
		float32(config.SpeedButtonY),
		10,
		config.BuildStateColor,
		config.WaveStateColor,
	)
	speedButton := ui.NewSpeedButton(
		float32(config.ScreenWidth-config.IndicatorOffsetX*5),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
		config.SpeedButtonColors,
	)
	waveIndicator := ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorOffsetX+8)

	return &GameState{
		sm:            sm,
		game:          gameLogic,
		wallet:        wallet,
		gridMap:       gridMap,
		renderer:      renderer,
		face:          face,
		indicator:     indicator,
		pauseButton:   pauseButton,
		speedButton:   speedButton,
		waveIndicator: waveIndicator,
		infoPanel:     ui.NewInfoPanel(face),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.game.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.enterPause()
		return
	}

	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleMapClick(x, y)
		}
	}

	report := g.game.Update(deltaTime)
	if report.WaveEnded {
		// В фазе строительства показываем предварительный маршрут.
		g.renderer.RenderMapImage(g.gridMap.BuildPathCells())
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.selectedTower = ""
		g.infoPanel.Hide()
	}

	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectedTower = towerHotkeys[i]
			g.infoPanel.Hide()
		}
	}
}

func (g *GameState) startWave() {
	if g.game.StartNextWave() {
		g.renderer.RenderMapImage(g.gridMap.BuildPathCells())
		g.infoPanel.Hide()
		g.selectedTower = ""
	}
}

func (g *GameState) toggleSpeed() {
	g.speedButton.ToggleState()
	g.game.SpeedMultiplier = g.speedButton.Multiplier()
}

func (g *GameState) enterPause() {
	g.pauseButton.SetPaused(true)
	g.game.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g, g.face))
}

// handleUIClick возвращает true, если клик пришелся на элемент интерфейса.
func (g *GameState) handleUIClick(x, y int) bool {
	if g.indicator.IsClicked(x, y) {
		g.indicator.HandleClick()
		g.startWave()
		return true
	}
	if g.pauseButton.IsClicked(x, y) {
		g.enterPause()
		return true
	}
	if g.speedButton.IsClicked(x, y) {
		g.toggleSpeed()
		return true
	}
	if g.infoPanel.IsVisible {
		pt := imagePoint(x, y)
		if pt.In(g.infoPanel.UpgradeButton.Rect) {
			if reason := g.game.UpgradeTower(g.infoPanel.TargetEntity); reason != game.PlacementOK {
				g.showRefusal(string(reason))
			}
			return true
		}
		if pt.In(g.infoPanel.SellButton.Rect) {
			g.game.SellTower(g.infoPanel.TargetEntity)
			g.infoPanel.Hide()
			g.renderer.RenderMapImage(g.gridMap.BuildPathCells())
			return true
		}
	}
	return false
}

func (g *GameState) handleMapClick(x, y int) {
	cell := g.gridMap.CellAt(cursorPoint(x, y))
	if !g.gridMap.InBounds(cell) {
		return
	}

	// Клик по существующей башне — открыть панель.
	if id, ok := g.game.TowerAt(cell); ok {
		g.infoPanel.SetTarget(id)
		return
	}

	if g.selectedTower == "" {
		return
	}
	if _, reason := g.game.PlaceTower(g.selectedTower, cell); reason != game.PlacementOK {
		g.showRefusal(string(reason))
		return
	}
	g.renderer.RenderMapImage(g.gridMap.BuildPathCells())
}

func (g *GameState) showRefusal(reason string) {
	g.lastRefusal = reason
	g.refusalUntil = time.Now().Add(2 * time.Second)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	g.drawRangePreview(screen)
	g.drawHUD(screen)

	if g.game.IsGameOver() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawRangePreview(screen *ebiten.Image) {
	// Радиус выбранной башни.
	if g.infoPanel.IsVisible {
		if tower, ok := g.game.ECS.Towers[g.infoPanel.TargetEntity]; ok {
			center := g.gridMap.CellCenter(tower.Cell)
			g.renderer.DrawRange(screen, center.X, center.Y, tower.Range)
		}
	}

	// Превью постройки под курсором.
	if g.selectedTower != "" && g.game.Phase() == component.BuildPhase {
		x, y := ebiten.CursorPosition()
		cell := g.gridMap.CellAt(cursorPoint(x, y))
		if g.gridMap.InBounds(cell) {
			if def, ok := towerDef(g.selectedTower); ok {
				center := g.gridMap.CellCenter(cell)
				g.renderer.DrawRange(screen, center.X, center.Y, def.Combat.Range)
			}
		}
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	stateColor := config.BuildStateColor
	if g.game.Phase() == component.WavePhase {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
	g.waveIndicator.Draw(screen, g.game.CurrentWaveNumber(), g.face)
	g.infoPanel.Draw(screen, g.game.ECS)

	hud := fmt.Sprintf("GOLD %d   LIVES %d   KILLS %d", g.wallet.Gold(), g.game.Lives(), g.game.Kills())
	text.Draw(screen, hud, g.face, config.HUDMargin, config.HUDMargin+12, config.TextLightColor)

	if g.selectedTower != "" {
		if def, ok := towerDef(g.selectedTower); ok {
			label := fmt.Sprintf("BUILD: %s (%dg)", def.Name, def.Cost)
			text.Draw(screen, label, g.face, config.HUDMargin, config.HUDMargin+32, config.ColorYellow)
		}
	}
	if time.Now().Before(g.refusalUntil) {
		text.Draw(screen, g.lastRefusal, g.face, config.HUDMargin, config.HUDMargin+52, config.ColorRed)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 160}, false)
	msg := fmt.Sprintf("GAME OVER\nwaves survived: %d\nkills: %d",
		g.game.CurrentWaveNumber()-1, g.game.Kills())
	text.Draw(screen, msg, g.face, config.ScreenWidth/2-80, config.ScreenHeight/2-20, config.TextLightColor)
}

func (g *GameState) Exit() {}
