// internal/entity/enemy.go
package entity

import (
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Enemy преследует игрока с постоянной скоростью. Контакт с игроком может
// отбросить его: тогда враг движется по заранее вычисленному направлению от
// источника, пока не истратит дистанцию, и только потом снова преследует.
type Enemy struct {
	X, Y       float64
	Kind       defs.EnemyKind
	Speed      float64
	Health     float64
	MaxHealth  float64
	Size       float64
	FacingLeft bool
	Anim       component.Animation

	KnockDX        float64
	KnockDY        float64
	KnockRemaining float64
	knockSpeed     float64
}

// NewEnemy создает врага указанного типа. Здоровье масштабируется текущим
// множителем сложности один раз при создании и дальше не меняется.
func NewEnemy(kind defs.EnemyKind, x, y, healthMultiplier float64, cfg *config.Config) *Enemy {
	def := defs.EnemyLibrary[kind]
	health := def.Health * healthMultiplier
	return &Enemy{
		X:          x,
		Y:          y,
		Kind:       kind,
		Speed:      def.Speed,
		Health:     health,
		MaxHealth:  health,
		Size:       cfg.EnemySize * def.Visuals.Scale,
		knockSpeed: cfg.KnockbackSpeed,
		Anim:       component.NewAnimation(cfg.AnimationFrames, cfg.AnimationInterval),
	}
}

// Update выполняет один тик: отброс, пока он активен, иначе преследование.
func (e *Enemy) Update(playerX, playerY float64) {
	if e.KnockRemaining > 0 {
		e.applyKnockback()
	} else {
		e.seek(playerX, playerY)
	}
	e.Anim.Advance()
}

func (e *Enemy) seek(playerX, playerY float64) {
	dir, ok := geom.Vec2{X: playerX - e.X, Y: playerY - e.Y}.Normalized()
	if !ok {
		return // уже стоит в точке игрока
	}
	e.X += dir.X * e.Speed
	e.Y += dir.Y * e.Speed
	if dir.X != 0 {
		e.FacingLeft = dir.X < 0
	}
}

func (e *Enemy) applyKnockback() {
	step := min(e.knockSpeed, e.KnockRemaining)
	e.X += e.KnockDX * step
	e.Y += e.KnockDY * step
	e.KnockRemaining -= step
	if e.KnockDX != 0 {
		e.FacingLeft = e.KnockDX < 0
	}
}

// SetKnockback один раз вычисляет направление от источника и записывает
// дистанцию отброса. Если враг стоит ровно в источнике, прежние направление
// и дистанция остаются нетронутыми.
func (e *Enemy) SetKnockback(sourceX, sourceY, distance float64) {
	dir, ok := geom.Vec2{X: e.X - sourceX, Y: e.Y - sourceY}.Normalized()
	if !ok {
		return
	}
	e.KnockDX = dir.X
	e.KnockDY = dir.Y
	e.KnockRemaining = distance
}

// TakeDamage уменьшает здоровье и возвращает true, если враг погиб.
// Удаление из мира и дроп лута остаются на вызывающем.
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health -= amount
	return e.Health <= 0
}

// Rect возвращает хитбокс врага.
func (e *Enemy) Rect() geom.Rect {
	return geom.RectAt(e.X, e.Y, e.Size)
}
