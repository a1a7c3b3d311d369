// internal/ui/health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survival-shooter/internal/config"
)

// HealthIndicator отображает здоровье игрока рядом сегментов: заполненные
// слоты слева, пустые справа.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator создает индикатор здоровья с верхним левым углом в
// (x, y).
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует ряд из maxHealth сегментов, первые health из них заполнены.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(config.HealthSlotW+config.HealthSlotGap)
		c := config.HealthSlotEmpty
		if j < health {
			c = config.HealthSlotFull
		}
		vector.DrawFilledRect(screen, x, i.Y, config.HealthSlotW, config.HealthSlotH, c, true)
		vector.StrokeRect(screen, x, i.Y, config.HealthSlotW, config.HealthSlotH, 1, config.TextLightColor, true)
	}
}

// Height возвращает высоту индикатора для раскладки HUD.
func (i *HealthIndicator) Height() float32 {
	return config.HealthSlotH
}
