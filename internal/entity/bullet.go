// internal/entity/bullet.go
package entity

import "go-survival-shooter/pkg/geom"

// Bullet описывает пулю игрока. Урон фиксируется в момент выстрела, пробитие
// расходуется на каждого нового задетого противника.
type Bullet struct {
	X, Y        float64
	VX, VY      float64
	Size        float64
	Damage      float64
	MaxPierce   int
	PierceCount int

	hitEnemies map[*Enemy]struct{}
	hitBoss    bool
}

// NewBullet создает пулю с готовым вектором скорости.
func NewBullet(x, y, vx, vy, size, damage float64, maxPierce int) *Bullet {
	return &Bullet{
		X:          x,
		Y:          y,
		VX:         vx,
		VY:         vy,
		Size:       size,
		Damage:     damage,
		MaxPierce:  maxPierce,
		hitEnemies: make(map[*Enemy]struct{}),
	}
}

// Update продвигает пулю на один тик.
func (b *Bullet) Update() {
	b.X += b.VX
	b.Y += b.VY
}

// OffScreen сообщает, что центр пули вышел за границы экрана.
func (b *Bullet) OffScreen(width, height float64) bool {
	return b.X < 0 || b.X > width || b.Y < 0 || b.Y > height
}

// Rect возвращает хитбокс пули.
func (b *Bullet) Rect() geom.Rect {
	return geom.RectAt(b.X, b.Y, b.Size)
}

// HasHit сообщает, задевала ли пуля этого врага раньше.
func (b *Bullet) HasHit(e *Enemy) bool {
	_, ok := b.hitEnemies[e]
	return ok
}

// MarkHit запоминает врага: одна пуля никогда не ранит одного врага дважды.
func (b *Bullet) MarkHit(e *Enemy) {
	b.hitEnemies[e] = struct{}{}
}

// HasHitBoss сообщает, задевала ли пуля босса.
func (b *Bullet) HasHitBoss() bool {
	return b.hitBoss
}

// MarkBossHit запоминает попадание в босса: босс участвует в том же учете
// попаданий, что и обычные враги.
func (b *Bullet) MarkBossHit() {
	b.hitBoss = true
}

// ConsumePierce расходует единицу пробития и возвращает true, когда запас
// исчерпан и пулю пора убирать.
func (b *Bullet) ConsumePierce() bool {
	b.PierceCount++
	return b.PierceCount > b.MaxPierce
}
