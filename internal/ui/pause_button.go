// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы: две полоски в игре, треугольник play на паузе.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:              x,
		Y:              y,
		Size:           size,
		LastClickTime:  time.Time{},
		LastToggleTime: time.Time{},
		PauseColor:     pauseColor,
		PlayColor:      playColor,
		IsPaused:       false,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var p vector.Path
		p.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		p.LineTo(b.X+rectSize, b.Y)
		p.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		p.Close()
		drawFilledPath(screen, &p, b.PlayColor)
		strokePath(screen, &p, 2, color.White)
	} else {
		// Два прямоугольника (pause)
		width := rectSize * 0.6
		height := rectSize * 2.0
		spacing := rectSize * 0.4
		// Левый
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, true)
		// Правый
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
