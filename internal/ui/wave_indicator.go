// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.BuildStateColor,
		OutlineColor: config.TextLightColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.ColorRed // Красный для босс-волн
	}

	width := font.MeasureString(face, label).Ceil()
	x := i.X - width/2
	y := i.Y

	// Обводка в один пиксель по четырём направлениям
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, face, x+d[0], y+d[1], i.OutlineColor)
	}
	text.Draw(screen, label, face, x, y, textColor)
}
