// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — двойной треугольник "перемотки", циклически переключает
// скорость симуляции x1/x2/x4.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:              x,
		Y:              y,
		Size:           size,
		LastClickTime:  time.Time{},
		LastToggleTime: time.Time{},
		StateColors:    stateColors,
		CurrentState:   0,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	r, g, bb, a := b.StateColors[b.CurrentState].RGBA()
	clr := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bb >> 8), uint8(a >> 8)}

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	b.drawTriangle(screen, b.X-width, b.Y, width, height, clr)
	// Правый треугольник
	b.drawTriangle(screen, b.X-width+offset, b.Y, width, height, clr)
}

func (b *SpeedButton) drawTriangle(screen *ebiten.Image, x, y, width, height float32, clr color.RGBA) {
	var p vector.Path
	p.MoveTo(x, y-height/2)
	p.LineTo(x+width, y)
	p.LineTo(x, y+height/2)
	p.Close()
	drawFilledPath(screen, &p, clr)
	strokePath(screen, &p, 1, color.White)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Multiplier возвращает текущий множитель скорости: 1, 2 или 4.
func (b *SpeedButton) Multiplier() float64 {
	return float64(int(1) << b.CurrentState)
}
