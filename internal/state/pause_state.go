// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние
// под полупрозрачной заливкой.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if !unpause && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		unpause = true
	}

	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	w := font.MeasureString(s.face, pauseText).Ceil()
	text.Draw(screen, pauseText, s.face,
		(config.ScreenWidth-w)/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
