// internal/system/render.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/pkg/render"
)

// RenderSystem рисует мир: фон, подбираемые предметы, снаряды, врагов с
// полосками здоровья, босса и игрока с кольцами активных эффектов. Симуляция
// не держит ссылок на картинки, кадр выбирается по индексу анимации.
type RenderSystem struct {
	cfg *config.Config
	lib *assets.Library
}

// NewRenderSystem создает отрисовщик мира поверх библиотеки ресурсов.
func NewRenderSystem(cfg *config.Config, lib *assets.Library) *RenderSystem {
	return &RenderSystem{cfg: cfg, lib: lib}
}

// Draw отрисовывает один кадр мира в порядке слоев: фон, предметы, снаряды,
// враги, босс, игрок.
func (r *RenderSystem) Draw(screen *ebiten.Image, p *entity.Player, w *entity.World) {
	screen.DrawImage(r.lib.Background, nil)

	for _, c := range w.Coins {
		render.FilledCircle(screen, c.X, c.Y, c.Size/2, config.CoinColor)
	}
	for _, hp := range w.HealthPacks {
		render.FilledRect(screen, hp.X, hp.Y, hp.Size, hp.Size, config.HealthPackColor)
		render.FilledRect(screen, hp.X, hp.Y, hp.Size*0.6, hp.Size*0.2, config.HealthCrossColor)
		render.FilledRect(screen, hp.X, hp.Y, hp.Size*0.2, hp.Size*0.6, config.HealthCrossColor)
	}
	for _, pu := range w.PowerUps {
		render.FilledRect(screen, pu.X, pu.Y, pu.Size, pu.Size, defs.PowerUpTable[pu.Kind].Color)
	}

	for _, b := range p.Bullets {
		render.FilledRect(screen, b.X, b.Y, b.Size, b.Size, config.BulletColor)
	}

	for _, e := range w.Enemies {
		r.drawEnemy(screen, e)
	}
	if w.Boss != nil {
		r.drawBoss(screen, w.Boss)
	}

	frames := r.lib.PlayerFrames(p.AnimState)
	render.Sprite(screen, frames[p.Anim.Frame%len(frames)], p.X, p.Y, p.FacingLeft)
	if p.Shield.Active {
		render.Ring(screen, p.X, p.Y, p.Size*0.75, 3, config.ShieldRingColor)
	}
	if p.Magnet.Active {
		render.Ring(screen, p.X, p.Y, r.cfg.MagnetRadius, 1.5, config.MagnetRingColor)
	}
}

// drawEnemy рисует врага и полоску здоровья над раненым.
func (r *RenderSystem) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	frames := r.lib.Enemy[e.Kind]
	render.Sprite(screen, frames[e.Anim.Frame%len(frames)], e.X, e.Y, e.FacingLeft)

	if e.Health < e.MaxHealth {
		render.Bar(screen, e.X-e.Size/2, e.Y-e.Size/2-8, e.Size, 4,
			e.Health/e.MaxHealth, config.HealthBarBack, config.HealthBarFill)
	}
}

// drawBoss рисует босса, его снаряды и широкую полоску здоровья над ним.
func (r *RenderSystem) drawBoss(screen *ebiten.Image, boss *entity.Boss) {
	for _, bb := range boss.Bullets {
		render.FilledRect(screen, bb.X, bb.Y, bb.Size, bb.Size, config.BossBulletColor)
	}

	render.Sprite(screen, r.lib.Boss[boss.Anim.Frame%len(r.lib.Boss)], boss.X, boss.Y, boss.DirX < 0)
	render.Bar(screen,
		boss.X-config.BossBarWidth/2,
		boss.Y-boss.Size/2-config.BossBarOffsetY,
		config.BossBarWidth, config.BossBarHeight,
		boss.Health/boss.MaxHealth,
		config.HealthBarBack, config.HealthBarFill)
}
