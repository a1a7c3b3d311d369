// internal/ui/effect_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/entity"
)

// EffectPanel перечисляет активные временные эффекты игрока с остатком
// действия в секундах. Неактивные эффекты строк не занимают.
type EffectPanel struct {
	X, Y float32
	Face font.Face
}

// NewEffectPanel создает панель эффектов с верхним левым углом в (x, y).
func NewEffectPanel(x, y float32, face font.Face) *EffectPanel {
	return &EffectPanel{X: x, Y: y, Face: face}
}

// Draw выводит по строке на каждый активный эффект.
func (p *EffectPanel) Draw(screen *ebiten.Image, player *entity.Player, tps int) {
	effects := []struct {
		name string
		flag component.TimedFlag
	}{
		{"shield", player.Shield},
		{"speed", player.SpeedBoost},
		{"damage", player.DamageBoost},
		{"magnet", player.Magnet},
	}

	y := int(p.Y)
	for _, e := range effects {
		if !e.flag.Active {
			continue
		}
		seconds := float64(e.flag.Ticks) / float64(tps)
		text.Draw(screen, fmt.Sprintf("%s %.1fs", e.name, seconds), p.Face, int(p.X), y, config.TextLightColor)
		y += 22
	}
}
