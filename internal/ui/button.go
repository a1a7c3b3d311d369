// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/config"
)

// Button представляет собой кликабельную кнопку с подписью по центру.
type Button struct {
	Rect  image.Rectangle
	Label string
	Face  font.Face
}

// NewButton создает кнопку с верхним левым углом в (x, y).
func NewButton(x, y, w, h int, label string, face font.Face) *Button {
	return &Button{
		Rect:  image.Rect(x, y, x+w, y+h),
		Label: label,
		Face:  face,
	}
}

// Contains сообщает, попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := config.ButtonColor
	if b.Contains(mouseX, mouseY) {
		bg = config.ButtonHoverColor
	}

	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), bg, true)
	vector.StrokeRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), 2, config.TextLightColor, true)

	bounds := text.BoundString(b.Face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Label, b.Face, tx, ty, config.TextLightColor)
}
