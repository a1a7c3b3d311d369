// internal/ui/game_over.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/pkg/render"
)

// GameOverScreen это экран поражения: затемнение, итоги забега и подсказка
// управления.
type GameOverScreen struct {
	TitleFace font.Face
	TextFace  font.Face
}

// NewGameOverScreen создает экран поражения.
func NewGameOverScreen(titleFace, textFace font.Face) *GameOverScreen {
	return &GameOverScreen{TitleFace: titleFace, TextFace: textFace}
}

// Draw рисует экран поверх замершего мира.
func (s *GameOverScreen) Draw(screen *ebiten.Image, level, xp, ticks, tps int) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, true)

	panelW, panelH := float32(420), float32(150)
	px := (float32(w) - panelW) / 2
	py := float32(h)/2 - 90
	vector.DrawFilledRect(screen, px, py, panelW, panelH, config.PanelColor, true)
	vector.StrokeRect(screen, px, py, panelW, panelH, 2, config.TextLightColor, true)

	centerText(screen, "GAME OVER", s.TitleFace, w, h/2-60, config.HealthSlotFull)

	seconds := ticks / tps
	stats := fmt.Sprintf("level %d   xp %d   time %d:%02d", level, xp, seconds/60, seconds%60)
	centerText(screen, stats, s.TextFace, w, h/2-10, config.TextLightColor)

	centerText(screen, "R to restart, Esc for menu", s.TextFace, w, h/2+30,
		render.WithAlpha(config.TextLightColor, 200))
}

// centerText рисует строку, центрированную по горизонтали, с базовой линией
// на y.
func centerText(screen *ebiten.Image, s string, face font.Face, screenW, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (screenW-b.Dx())/2-b.Min.X, y, c)
}
