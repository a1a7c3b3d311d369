// internal/entity/world.go
package entity

// World содержит активные коллекции сущностей одного забега. Создание
// принадлежит спавнеру, удаление резолверу столкновений; больше никто
// структуру коллекций не мутирует. Пули игрока живут у самого игрока.
type World struct {
	Enemies     []*Enemy
	Coins       []*Coin
	HealthPacks []*HealthPack
	PowerUps    []*PowerUp
	Boss        *Boss
}

// NewWorld создает пустой мир.
func NewWorld() *World {
	return &World{}
}

// Reset очищает все коллекции для нового забега.
func (w *World) Reset() {
	w.Enemies = nil
	w.Coins = nil
	w.HealthPacks = nil
	w.PowerUps = nil
	w.Boss = nil
}
