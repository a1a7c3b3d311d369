// internal/entity/pickup.go
package entity

import (
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Coin даёт одну единицу опыта при подборе. Активный магнит подтягивает
// монеты к игроку в пределах своего радиуса.
type Coin struct {
	X, Y float64
	Size float64
}

// NewCoin создает монету в точке гибели врага.
func NewCoin(x, y, size float64) *Coin {
	return &Coin{X: x, Y: y, Size: size}
}

// Rect возвращает хитбокс монеты.
func (c *Coin) Rect() geom.Rect {
	return geom.RectAt(c.X, c.Y, c.Size)
}

// HealthPack восстанавливает одну единицу здоровья при подборе.
type HealthPack struct {
	X, Y float64
	Size float64
}

// NewHealthPack создает аптечку.
func NewHealthPack(x, y, size float64) *HealthPack {
	return &HealthPack{X: x, Y: y, Size: size}
}

// Rect возвращает хитбокс аптечки.
func (h *HealthPack) Rect() geom.Rect {
	return geom.RectAt(h.X, h.Y, h.Size)
}

// PowerUp при подборе включает игроку временный эффект своего типа.
type PowerUp struct {
	X, Y float64
	Size float64
	Kind defs.PowerUpKind
}

// NewPowerUp создает усиление указанного типа.
func NewPowerUp(x, y, size float64, kind defs.PowerUpKind) *PowerUp {
	return &PowerUp{X: x, Y: y, Size: size, Kind: kind}
}

// Rect возвращает хитбокс усиления.
func (p *PowerUp) Rect() geom.Rect {
	return geom.RectAt(p.X, p.Y, p.Size)
}
