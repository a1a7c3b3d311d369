// internal/entity/boss.go
package entity

import (
	"math"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/utils"
	"go-survival-shooter/pkg/geom"
)

// Boss это одиночный противник боссовой встречи. В отличие от обычных врагов
// он не преследует игрока: дрейфует в случайном направлении, перевыбираемом
// по таймеру, держится в пределах арены и периодически стреляет веером из
// трех ядовитых снарядов.
type Boss struct {
	cfg *config.Config
	rng *utils.PRNGService

	X, Y      float64
	Size      float64
	Speed     float64
	Health    float64
	MaxHealth float64

	DirX, DirY  float64
	moveTimer   int
	attackTimer int

	Anim    component.Animation
	Bullets []*BossBullet
}

// NewBoss создает босса очередной встречи у верхнего края арены. Здоровье
// растет экспоненциально: base * growth^(spawnIndex-1).
func NewBoss(cfg *config.Config, rng *utils.PRNGService, spawnIndex int) *Boss {
	health := cfg.BossBaseHealth * math.Pow(cfg.BossHealthGrowth, float64(spawnIndex-1))
	return &Boss{
		cfg:       cfg,
		rng:       rng,
		X:         float64(cfg.ScreenWidth) / 2,
		Y:         cfg.BossEdgeMargin + cfg.BossSize/2,
		Size:      cfg.BossSize,
		Speed:     cfg.BossSpeed,
		Health:    health,
		MaxHealth: health,
		Anim:      component.NewAnimation(cfg.AnimationFrames, cfg.AnimationInterval),
	}
}

// Update выполняет один тик босса: дрейф с зажимом к арене, атака по таймеру
// и полет собственных снарядов вместе с их уроном по игроку.
func (b *Boss) Update(p *Player) {
	b.moveTimer++
	if b.moveTimer >= b.cfg.BossMoveInterval {
		b.moveTimer = 0
		b.DirX = b.rng.FloatRange(-1, 1)
		b.DirY = b.rng.FloatRange(-1, 1)
	}
	b.X += b.DirX * b.Speed
	b.Y += b.DirY * b.Speed

	margin := b.cfg.BossEdgeMargin
	b.X = geom.Clamp(b.X, margin, float64(b.cfg.ScreenWidth)-margin)
	b.Y = geom.Clamp(b.Y, margin, float64(b.cfg.ScreenHeight)-margin)

	b.attackTimer++
	if b.attackTimer >= b.cfg.BossAttackInterval {
		b.attackTimer = 0
		b.fireSpread(p)
	}

	b.Anim.Advance()

	w, h := float64(b.cfg.ScreenWidth), float64(b.cfg.ScreenHeight)
	alive := b.Bullets[:0]
	for _, bullet := range b.Bullets {
		bullet.Update(p, b.cfg)
		if !bullet.OffScreen(w, h) {
			alive = append(alive, bullet)
		}
	}
	b.Bullets = alive
}

// fireSpread выпускает три снаряда веером вокруг направления на игрока.
// Если игрок стоит ровно в центре босса, атака пропускается.
func (b *Boss) fireSpread(p *Player) {
	dir, ok := geom.Vec2{X: p.X - b.X, Y: p.Y - b.Y}.Normalized()
	if !ok {
		return
	}
	base := dir.Scale(b.cfg.BossBulletSpeed)
	spread := b.cfg.BossSpreadDegrees * math.Pi / 180
	for _, offset := range []float64{-spread, 0, spread} {
		v := base.Rotated(offset)
		b.Bullets = append(b.Bullets, NewBossBullet(b.X, b.Y, v.X, v.Y, b.cfg))
	}
}

// TakeDamage уменьшает здоровье и возвращает true, когда босс погиб.
func (b *Boss) TakeDamage(amount float64) bool {
	b.Health -= amount
	return b.Health <= 0
}

// Rect возвращает хитбокс босса.
func (b *Boss) Rect() geom.Rect {
	return geom.RectAt(b.X, b.Y, b.Size)
}
