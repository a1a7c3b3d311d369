// internal/entity/boss_bullet.go
package entity

import (
	"go-survival-shooter/internal/config"
	"go-survival-shooter/pkg/geom"
)

// BossBullet это ядовитый снаряд босса. Первое касание наносит контактный
// урон и переводит снаряд в режим отравления: дальше он периодически наносит
// малый урон независимо от пересечения с игроком, пока не вылетит за экран.
type BossBullet struct {
	X, Y        float64
	VX, VY      float64
	Size        float64
	Damage      int
	HasHit      bool
	PoisonTimer int
}

// NewBossBullet создает снаряд с готовым вектором скорости.
func NewBossBullet(x, y, vx, vy float64, cfg *config.Config) *BossBullet {
	return &BossBullet{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Size:   cfg.BossBulletSize,
		Damage: cfg.BossBulletDamage,
	}
}

// Update продвигает снаряд и применяет его урон: контактный до первого
// попадания, после него только периодический ядовитый тик. Урон всегда идет
// через TakeDamage игрока, так что щит и неуязвимость учитываются.
func (bb *BossBullet) Update(p *Player, cfg *config.Config) {
	bb.X += bb.VX
	bb.Y += bb.VY

	if bb.HasHit {
		bb.PoisonTimer++
		if bb.PoisonTimer >= cfg.PoisonInterval {
			bb.PoisonTimer = 0
			p.TakeDamage(cfg.PoisonDamage)
		}
		return
	}
	if bb.Rect().Overlaps(p.Rect()) {
		p.TakeDamage(bb.Damage)
		bb.HasHit = true
	}
}

// OffScreen сообщает, что центр снаряда вышел за границы экрана. Попавший в
// игрока снаряд живет и отравляет до фактического выхода за экран, но не
// дольше.
func (bb *BossBullet) OffScreen(width, height float64) bool {
	return bb.X < 0 || bb.X > width || bb.Y < 0 || bb.Y > height
}

// Rect возвращает хитбокс снаряда.
func (bb *BossBullet) Rect() geom.Rect {
	return geom.RectAt(bb.X, bb.Y, bb.Size)
}
