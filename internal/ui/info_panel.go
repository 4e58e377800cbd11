// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	buttonWidth    = 110
	buttonHeight   = 28
)

// Button — кликабельная кнопка в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel показывает информацию о выбранной башне и кнопки
// улучшения/продажи. Выезжает снизу экрана.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	currentY      float64
	targetY       float64
	UpgradeButton Button
	SellButton    Button
}

// NewInfoPanel создает новую панель.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		IsVisible: false,
		fontFace:  face,
		currentY:  config.ScreenHeight,
		targetY:   config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает анимацию панели и сбрасывает цель, когда панель уехала.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}

	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

// Draw отрисовывает панель с характеристиками выбранной башни.
func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible {
		return
	}
	tower, ok := ecs.Towers[p.TargetEntity]
	if !ok {
		p.Hide()
		return
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return
	}

	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, panelHeight, color.RGBA{15, 18, 28, 235}, false)
	vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 1, config.GridLineColor, false)

	textY := int(p.currentY) + panelMargin + lineHeight
	title := fmt.Sprintf("%s  (lvl %d/%d)", def.Name, tower.Level, def.MaxLevel)
	text.Draw(screen, title, p.fontFace, config.HUDMargin, textY, config.TextLightColor)

	combat := ecs.Combats[p.TargetEntity]
	if combat != nil {
		stats := fmt.Sprintf("DMG %.0f %s   RATE %.1f/s   RANGE %.0f",
			combat.Damage, combat.DamageType, combat.FireRate, tower.Range)
		text.Draw(screen, stats, p.fontFace, config.HUDMargin, textY+lineHeight, config.TextLightColor)
	}

	// Кнопки в правой части панели
	bx := config.ScreenWidth - buttonWidth - config.HUDMargin
	by := int(p.currentY) + panelMargin + 10
	p.UpgradeButton = Button{
		Rect: image.Rect(bx, by, bx+buttonWidth, by+buttonHeight),
		Text: fmt.Sprintf("Upgrade %dg", def.UpgradeCost),
	}
	p.SellButton = Button{
		Rect: image.Rect(bx, by+buttonHeight+8, bx+buttonWidth, by+2*buttonHeight+8),
		Text: "Sell",
	}
	if tower.Level >= def.MaxLevel {
		p.UpgradeButton.Text = "MAX"
	}
	p.drawButton(screen, p.UpgradeButton)
	p.drawButton(screen, p.SellButton)
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, b Button) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), config.BuildStateColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), 1, config.TextLightColor, false)
	w := font.MeasureString(p.fontFace, b.Text).Ceil()
	text.Draw(screen, b.Text, p.fontFace,
		r.Min.X+(r.Dx()-w)/2, r.Min.Y+r.Dy()/2+5, config.TextLightColor)
}
