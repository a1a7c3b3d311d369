// internal/component/weapon.go
package component

// Weapon описывает текущую конфигурацию стрельбы игрока. Все поля, кроме
// таймера, изменяются улучшениями при повышении уровня.
type Weapon struct {
	BulletSpeed      float64
	BulletSize       float64
	BulletCount      int
	ShootCooldown    int
	ShootTimer       int
	BulletBaseDamage float64
	BulletPierce     int
}
