// internal/component/render.go
package component

import "image/color"

// Renderable — компонент отрисовки. Логика его только заполняет,
// читает исключительно рендерер.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
