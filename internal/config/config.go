// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	GridCols = 24
	GridRows = 18
	CellSize = 48.0

	// Ограничение кадрового времени: защита от рывка после возврата
	// во вкладку/разворачивания окна.
	MaxDeltaTime = 0.1

	BaseLives    = 20
	StartingGold = 120

	// Радиус засчитывания попадания поверх радиуса врага.
	CollisionEpsilon = 2.0

	ProjectileRadius = 5.0

	TowerDamagePerLevel = 0.15 // множитель урона за уровень сверх первого
	TowerRangePerLevel  = 0.10 // множитель радиуса за уровень сверх первого
	TowerSellRefund     = 0.7  // доля стоимости при продаже

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 18.0
	HUDMargin        = 12
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PassableColor   = color.RGBA{40, 48, 62, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	GridLineColor   = color.RGBA{30, 36, 48, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	RangeColor      = color.RGBA{240, 240, 240, 40}

	ColorYellow = color.RGBA{255, 215, 0, 255}
	ColorRed    = color.RGBA{220, 60, 60, 255}
	ColorBlue   = color.RGBA{50, 100, 255, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
