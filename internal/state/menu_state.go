// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран. Любая из клавиш Space/Enter начинает игру.
type MenuState struct {
	sm   *StateMachine
	seed int64
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{sm: sm, seed: seed}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	msg := "WAYPOINT DEFENSE\n\n" +
		"Space  - start / next wave\n" +
		"1..5   - select tower type\n" +
		"LMB    - place / inspect tower\n" +
		"P      - pause, F  - speed"
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-120, config.ScreenHeight/2-60)
}

func (m *MenuState) Exit() {}
