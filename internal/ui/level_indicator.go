// internal/ui/level_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/config"
)

const (
	xpBarWidth  = 132
	xpBarHeight = 12
	xpBarBorder = 1
)

// LevelIndicator отображает уровень игрока и полосу прогресса до следующего.
type LevelIndicator struct {
	X, Y float32
	Face font.Face
}

// NewLevelIndicator создает индикатор уровня с верхним левым углом в (x, y).
func NewLevelIndicator(x, y float32, face font.Face) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, Face: face}
}

// Draw рисует номер уровня и полосу опыта. have и need считаются от порога
// предыдущего уровня, так что полоса всегда растет от нуля до полного.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, have, need int) {
	label := fmt.Sprintf("LVL %d", level)
	text.Draw(screen, label, i.Face, int(i.X), int(i.Y)+14, config.TextLightColor)

	barX := i.X + 76
	vector.StrokeRect(screen, barX, i.Y+2, xpBarWidth, xpBarHeight, xpBarBorder, config.TextLightColor, true)

	ratio := 0.0
	if need > 0 {
		ratio = float64(have) / float64(need)
	}
	if ratio > 1 {
		ratio = 1
	}
	fill := float32(float64(xpBarWidth-xpBarBorder*2) * ratio)
	if fill > 0 {
		vector.DrawFilledRect(screen, barX+xpBarBorder, i.Y+2+xpBarBorder,
			fill, xpBarHeight-xpBarBorder*2, config.CoinColor, true)
	}
}
