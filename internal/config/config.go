// internal/config/config.go
package config

import "image/color"

// Config содержит все настраиваемые параметры симуляции. Структура собирается
// один раз через Default() и дальше не изменяется, конструкторы получают её
// явно вместо глобальных констант.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	TPS          int

	// Игрок
	PlayerSize           float64
	PlayerSpeed          float64
	PlayerMaxHealth      int
	InvulnerabilityTicks int
	AnimationInterval    int
	AnimationFrames      int

	// Оружие
	BulletSpeed      float64
	BulletSize       float64
	BulletCount      int
	ShootCooldown    int
	BulletBaseDamage float64
	BulletPierce     int
	BulletSpreadStep float64 // градусы на один слот веера

	// Усиления
	PowerUpDuration   int
	SpeedBoostFactor  float64
	DamageBoostFactor float64
	MagnetRadius      float64
	MagnetPullSpeed   float64

	// Враги
	EnemySize          float64
	EnemySpawnInterval int
	SpawnMargin        float64
	KnockbackSpeed     float64
	PushbackDistance   float64

	// Подбираемые предметы
	CoinSize             float64
	HealthPackSize       float64
	PowerUpSize          float64
	HealthPackDropOdds   int // аптечка выпадает с шансом 1 к N
	PowerUpSpawnInterval int
	PowerUpSpawnChance   float64

	// Прогрессия
	XPLevelFactor        int
	UpgradeChoices       int
	HealthMultiplierStep float64
	HealthMultiplierCap  float64
	BossLevelInterval    int

	// Босс
	BossBaseHealth     float64
	BossHealthGrowth   float64
	BossSpeed          float64
	BossSize           float64
	BossEdgeMargin     float64
	BossMoveInterval   int
	BossAttackInterval int
	BossSpreadDegrees  float64
	BossBulletSpeed    float64
	BossBulletSize     float64
	BossBulletDamage   int
	PoisonInterval     int
	PoisonDamage       int

	// Улучшения оружия
	UpgradeSizeBonus   float64
	UpgradeSpeedBonus  float64
	UpgradeCooldownCut int
	MinShootCooldown   int
	UpgradeDamageBonus float64
}

// Default возвращает конфигурацию с боевыми значениями.
func Default() *Config {
	return &Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TPS:          60,

		PlayerSize:           32,
		PlayerSpeed:          4,
		PlayerMaxHealth:      5,
		InvulnerabilityTicks: 60,
		AnimationInterval:    8,
		AnimationFrames:      4,

		BulletSpeed:      10,
		BulletSize:       10,
		BulletCount:      1,
		ShootCooldown:    20,
		BulletBaseDamage: 1,
		BulletPierce:     0,
		BulletSpreadStep: 10,

		PowerUpDuration:   300,
		SpeedBoostFactor:  1.5,
		DamageBoostFactor: 2.0,
		MagnetRadius:      175,
		MagnetPullSpeed:   5,

		EnemySize:          32,
		EnemySpawnInterval: 60,
		SpawnMargin:        50,
		KnockbackSpeed:     8,
		PushbackDistance:   80,

		CoinSize:             15,
		HealthPackSize:       20,
		PowerUpSize:          20,
		HealthPackDropOdds:   45,
		PowerUpSpawnInterval: 300,
		PowerUpSpawnChance:   0.25,

		XPLevelFactor:        6,
		UpgradeChoices:       4,
		HealthMultiplierStep: 0.15,
		HealthMultiplierCap:  3.0,
		BossLevelInterval:    5,

		BossBaseHealth:     2000,
		BossHealthGrowth:   1.3,
		BossSpeed:          3,
		BossSize:           96,
		BossEdgeMargin:     50,
		BossMoveInterval:   120,
		BossAttackInterval: 180,
		BossSpreadDegrees:  15,
		BossBulletSpeed:    5,
		BossBulletSize:     30,
		BossBulletDamage:   2,
		PoisonInterval:     60,
		PoisonDamage:       1,

		UpgradeSizeBonus:   5,
		UpgradeSpeedBonus:  2,
		UpgradeCooldownCut: 3,
		MinShootCooldown:   5,
		UpgradeDamageBonus: 1,
	}
}

// Раскладка HUD.
const (
	HUDMarginX     = 10
	HUDMarginY     = 10
	HealthSlotW    = 30.0
	HealthSlotH    = 14.0
	HealthSlotGap  = 4.0
	BossBarWidth   = 100.0
	BossBarHeight  = 10.0
	BossBarOffsetY = 20.0
	MenuButtonW    = 360
	MenuButtonH    = 48
	MenuButtonGap  = 16
)

var (
	BackgroundColor  = color.RGBA{46, 102, 58, 255}
	GrassTintColor   = color.RGBA{58, 124, 70, 255}
	PlayerColor      = color.RGBA{70, 130, 180, 255}
	BossColor        = color.RGBA{150, 70, 170, 255}
	BulletColor      = color.RGBA{245, 245, 245, 255}
	BossBulletColor  = color.RGBA{220, 60, 60, 255}
	CoinColor        = color.RGBA{255, 215, 0, 255}
	HealthPackColor  = color.RGBA{235, 235, 235, 255}
	HealthCrossColor = color.RGBA{220, 60, 60, 255}
	ShieldRingColor  = color.RGBA{80, 140, 255, 180}
	MagnetRingColor  = color.RGBA{255, 230, 80, 110}
	HealthBarBack    = color.RGBA{90, 30, 30, 220}
	HealthBarFill    = color.RGBA{60, 200, 80, 255}
	HealthSlotEmpty  = color.RGBA{60, 60, 70, 220}
	HealthSlotFull   = color.RGBA{220, 60, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 170}
	PanelColor       = color.RGBA{30, 34, 44, 235}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 235}
)
