// internal/entity/player.go
package entity

import (
	"math"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/pkg/geom"
)

// Player это управляемый персонаж: здоровье, накопленный опыт, таймеры
// временных эффектов, конфигурация оружия и собственный список живых пуль.
type Player struct {
	cfg *config.Config

	X, Y       float64
	Size       float64
	Health     int
	XP         int
	Level      int
	BaseSpeed  float64
	Speed      float64
	FacingLeft bool

	AnimState component.AnimState
	Anim      component.Animation

	Invuln           component.TimedFlag
	Shield           component.TimedFlag
	Magnet           component.TimedFlag
	SpeedBoost       component.TimedFlag
	DamageBoost      component.TimedFlag
	DamageMultiplier float64

	Weapon  component.Weapon
	Bullets []*Bullet
}

// NewPlayer создает игрока в центре экрана с базовым оружием. Таймер
// перезарядки начинается истекшим, чтобы первый выстрел не ждал.
func NewPlayer(cfg *config.Config) *Player {
	return &Player{
		cfg:              cfg,
		X:                float64(cfg.ScreenWidth) / 2,
		Y:                float64(cfg.ScreenHeight) / 2,
		Size:             cfg.PlayerSize,
		Health:           cfg.PlayerMaxHealth,
		Level:            1,
		BaseSpeed:        cfg.PlayerSpeed,
		Speed:            cfg.PlayerSpeed,
		DamageMultiplier: 1,
		Anim:             component.NewAnimation(cfg.AnimationFrames, cfg.AnimationInterval),
		Weapon: component.Weapon{
			BulletSpeed:      cfg.BulletSpeed,
			BulletSize:       cfg.BulletSize,
			BulletCount:      cfg.BulletCount,
			ShootCooldown:    cfg.ShootCooldown,
			ShootTimer:       cfg.ShootCooldown,
			BulletBaseDamage: cfg.BulletBaseDamage,
			BulletPierce:     cfg.BulletPierce,
		},
	}
}

// HandleInput превращает нажатые клавиши в осевое смещение с текущей
// скоростью. Позиция зажимается границами экрана; направление взгляда меняет
// только горизонтальное движение.
func (p *Player) HandleInput(in Input) {
	var vx, vy float64
	if in.Left {
		vx -= p.Speed
	}
	if in.Right {
		vx += p.Speed
	}
	if in.Up {
		vy -= p.Speed
	}
	if in.Down {
		vy += p.Speed
	}

	p.X = geom.Clamp(p.X+vx, 0, float64(p.cfg.ScreenWidth))
	p.Y = geom.Clamp(p.Y+vy, 0, float64(p.cfg.ScreenHeight))

	if vx != 0 {
		p.FacingLeft = vx < 0
	}
	if vx != 0 || vy != 0 {
		p.AnimState = component.AnimRun
	} else {
		p.AnimState = component.AnimIdle
	}
}

// Update выполняет один тик: таймер стрельбы, полет пуль, анимация и
// обратный отсчет всех временных эффектов с восстановлением исходных
// значений ровно в тик истечения.
func (p *Player) Update() {
	p.Weapon.ShootTimer++

	w, h := float64(p.cfg.ScreenWidth), float64(p.cfg.ScreenHeight)
	alive := p.Bullets[:0]
	for _, b := range p.Bullets {
		b.Update()
		if !b.OffScreen(w, h) {
			alive = append(alive, b)
		}
	}
	p.Bullets = alive

	p.Anim.Advance()

	p.Invuln.Tick()
	p.Shield.Tick()
	p.Magnet.Tick()
	if p.SpeedBoost.Tick() {
		p.Speed = p.BaseSpeed
	}
	if p.DamageBoost.Tick() {
		p.DamageMultiplier = 1
	}
}

// TakeDamage применяет урон с учетом неуязвимости и щита. Щит гасит удар
// целиком, здоровье не тратится и окно неуязвимости не открывается.
func (p *Player) TakeDamage(amount int) {
	if p.Invuln.Active {
		return
	}
	if p.Shield.Active {
		p.Shield.Clear()
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invuln.Set(p.cfg.InvulnerabilityTicks)
}

// Heal восстанавливает здоровье, не превышая максимум.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.cfg.PlayerMaxHealth {
		p.Health = p.cfg.PlayerMaxHealth
	}
}

// AddXP увеличивает суммарный опыт. Опыт только растет, остаток до
// следующего уровня всегда считается производно.
func (p *Player) AddXP(amount int) {
	p.XP += amount
}

// XPNeeded возвращает суммарный опыт, необходимый для следующего уровня.
func (p *Player) XPNeeded() int {
	return p.Level * p.Level * p.cfg.XPLevelFactor
}

// ShootTowardPosition выпускает веер пуль в точку (tx, ty). Стрельба
// возможна только с истекшей перезарядкой; нулевой вектор прицеливания
// отменяет выстрел целиком, не трогая таймер.
func (p *Player) ShootTowardPosition(tx, ty float64) {
	if p.Weapon.ShootTimer < p.Weapon.ShootCooldown {
		return
	}
	dir, ok := geom.Vec2{X: tx - p.X, Y: ty - p.Y}.Normalized()
	if !ok {
		return
	}

	baseAngle := math.Atan2(dir.Y, dir.X)
	n := p.Weapon.BulletCount
	damage := p.Weapon.BulletBaseDamage * p.DamageMultiplier
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * p.cfg.BulletSpreadStep * math.Pi / 180
		angle := baseAngle + offset
		vx := math.Cos(angle) * p.Weapon.BulletSpeed
		vy := math.Sin(angle) * p.Weapon.BulletSpeed
		p.Bullets = append(p.Bullets, NewBullet(p.X, p.Y, vx, vy, p.Weapon.BulletSize, damage, p.Weapon.BulletPierce))
	}
	p.Weapon.ShootTimer = 0
}

// ShootTowardNearest целится в ближайшего врага. Без врагов выстрела нет.
func (p *Player) ShootTowardNearest(enemies []*Enemy) {
	var nearest *Enemy
	best := math.MaxFloat64
	for _, e := range enemies {
		d := geom.Dist(geom.Vec2{X: p.X, Y: p.Y}, geom.Vec2{X: e.X, Y: e.Y})
		if d < best {
			best = d
			nearest = e
		}
	}
	if nearest == nil {
		return
	}
	p.ShootTowardPosition(nearest.X, nearest.Y)
}

// ApplyPowerUp включает эффект усиления. Повторный подбор того же типа
// обновляет таймер: множители выставляются от базы, а не перемножаются.
func (p *Player) ApplyPowerUp(kind defs.PowerUpKind, duration int) {
	switch kind {
	case defs.PowerUpShield:
		p.Shield.Set(duration)
	case defs.PowerUpSpeed:
		p.Speed = p.BaseSpeed * p.cfg.SpeedBoostFactor
		p.SpeedBoost.Set(duration)
	case defs.PowerUpDamage:
		p.DamageMultiplier = p.cfg.DamageBoostFactor
		p.DamageBoost.Set(duration)
	case defs.PowerUpMagnet:
		p.Magnet.Set(duration)
	}
}

// ApplyUpgrade применяет выбранное в меню улучшение к оружию.
func (p *Player) ApplyUpgrade(kind defs.UpgradeKind) {
	switch kind {
	case defs.UpgradeBiggerBullet:
		p.Weapon.BulletSize += p.cfg.UpgradeSizeBonus
	case defs.UpgradeFasterBullet:
		p.Weapon.BulletSpeed += p.cfg.UpgradeSpeedBonus
	case defs.UpgradeExtraBullet:
		p.Weapon.BulletCount++
	case defs.UpgradeShorterCooldown:
		p.Weapon.ShootCooldown -= p.cfg.UpgradeCooldownCut
		if p.Weapon.ShootCooldown < p.cfg.MinShootCooldown {
			p.Weapon.ShootCooldown = p.cfg.MinShootCooldown
		}
	case defs.UpgradeIncreasedDamage:
		p.Weapon.BulletBaseDamage += p.cfg.UpgradeDamageBonus
	case defs.UpgradeBulletPierce:
		p.Weapon.BulletPierce++
	}
}

// Reset возвращает игрока к стартовому состоянию нового забега, сохраняя
// сам указатель: подписчики и системы продолжают держать ту же ссылку.
func (p *Player) Reset() {
	*p = *NewPlayer(p.cfg)
}

// Rect возвращает хитбокс игрока.
func (p *Player) Rect() geom.Rect {
	return geom.RectAt(p.X, p.Y, p.Size)
}
