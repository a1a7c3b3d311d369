// internal/ui/upgrade_menu.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/render"
)

// UpgradeMenu это модальное окно выбора улучшения после повышения уровня.
// Варианты раскладываются вертикально по центру экрана, цифровые клавиши
// дублируют клик мышью.
type UpgradeMenu struct {
	TitleFace font.Face
	TextFace  font.Face
	slots     []image.Rectangle
}

// NewUpgradeMenu создает меню под фиксированное число вариантов.
func NewUpgradeMenu(screenW, screenH, count int, titleFace, textFace font.Face) *UpgradeMenu {
	totalH := count*config.MenuButtonH + (count-1)*config.MenuButtonGap
	startY := (screenH - totalH) / 2
	x := (screenW - config.MenuButtonW) / 2

	m := &UpgradeMenu{TitleFace: titleFace, TextFace: textFace}
	for i := 0; i < count; i++ {
		y := startY + i*(config.MenuButtonH+config.MenuButtonGap)
		m.slots = append(m.slots, image.Rect(x, y, x+config.MenuButtonW, y+config.MenuButtonH))
	}
	return m
}

// HitTest возвращает индекс варианта под точкой экрана.
func (m *UpgradeMenu) HitTest(x, y int) (int, bool) {
	for i, rect := range m.slots {
		if image.Pt(x, y).In(rect) {
			return i, true
		}
	}
	return 0, false
}

// Draw рисует затемнение, заголовок и карточки вариантов. Вариант под
// курсором подсвечивается.
func (m *UpgradeMenu) Draw(screen *ebiten.Image, options []defs.UpgradeKind, mouseX, mouseY int) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, true)

	title := "LEVEL UP"
	tb := text.BoundString(m.TitleFace, title)
	text.Draw(screen, title, m.TitleFace,
		(w-tb.Dx())/2-tb.Min.X, m.slots[0].Min.Y-24, config.TextLightColor)

	for i, rect := range m.slots {
		if i >= len(options) {
			break
		}

		bg := config.ButtonColor
		if image.Pt(mouseX, mouseY).In(rect) {
			bg = config.ButtonHoverColor
		}
		vector.DrawFilledRect(screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()), bg, true)
		vector.StrokeRect(screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()), 2, config.TextLightColor, true)

		def := defs.UpgradeCatalog[options[i]]
		name := fmt.Sprintf("%d. %s", i+1, def.Name)
		text.Draw(screen, name, m.TextFace, rect.Min.X+12, rect.Min.Y+20, config.TextLightColor)
		text.Draw(screen, def.Description, m.TextFace, rect.Min.X+12, rect.Min.Y+41,
			render.WithAlpha(config.TextLightColor, 180))
	}
}
