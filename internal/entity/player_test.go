// internal/entity/player_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
)

func testConfig() *config.Config {
	return config.Default()
}

func TestPlayerTakeDamage(t *testing.T) {
	t.Run("damage floors at zero and opens the invulnerability window", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.Health = 1

		p.TakeDamage(3)

		assert.Equal(t, 0, p.Health)
		assert.True(t, p.Invuln.Active)
	})

	t.Run("no-op while invulnerable", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.TakeDamage(1)
		require.Equal(t, 4, p.Health)
		require.True(t, p.Invuln.Active)

		p.TakeDamage(1)

		assert.Equal(t, 4, p.Health)
	})

	t.Run("shield absorbs the hit without granting invulnerability", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.ApplyPowerUp(defs.PowerUpShield, 300)

		p.TakeDamage(1)

		assert.Equal(t, 5, p.Health)
		assert.False(t, p.Shield.Active)
		assert.False(t, p.Invuln.Active)
	})
}

func TestPlayerHealthStaysInRange(t *testing.T) {
	p := NewPlayer(testConfig())
	for i := 0; i < 50; i++ {
		p.TakeDamage(2)
		p.Invuln.Clear()
		p.Heal(3)
		require.GreaterOrEqual(t, p.Health, 0)
		require.LessOrEqual(t, p.Health, 5)
	}
}

func TestPlayerHealCapsAtMax(t *testing.T) {
	p := NewPlayer(testConfig())
	p.Health = 4

	p.Heal(1)
	p.Heal(1)

	assert.Equal(t, 5, p.Health)
}

func TestPlayerHandleInput(t *testing.T) {
	t.Run("axis-aligned movement, facing follows horizontal sign only", func(t *testing.T) {
		cfg := testConfig()
		p := NewPlayer(cfg)
		startX, startY := p.X, p.Y

		p.HandleInput(Input{Left: true})
		assert.Equal(t, startX-cfg.PlayerSpeed, p.X)
		assert.True(t, p.FacingLeft)
		assert.Equal(t, component.AnimRun, p.AnimState)

		p.HandleInput(Input{Up: true})
		assert.Equal(t, startY-cfg.PlayerSpeed, p.Y)
		assert.True(t, p.FacingLeft, "vertical movement must not change facing")

		p.HandleInput(Input{Right: true})
		assert.False(t, p.FacingLeft)

		p.HandleInput(Input{})
		assert.Equal(t, component.AnimIdle, p.AnimState)
	})

	t.Run("position clamps to the playfield", func(t *testing.T) {
		cfg := testConfig()
		p := NewPlayer(cfg)
		p.X, p.Y = 1, 1

		for i := 0; i < 10; i++ {
			p.HandleInput(Input{Left: true, Up: true})
		}

		assert.Equal(t, 0.0, p.X)
		assert.Equal(t, 0.0, p.Y)
	})
}

func TestPlayerTimedEffectsExpireExactly(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)

	p.ApplyPowerUp(defs.PowerUpSpeed, 3)
	p.ApplyPowerUp(defs.PowerUpDamage, 3)
	require.Equal(t, cfg.PlayerSpeed*cfg.SpeedBoostFactor, p.Speed)
	require.Equal(t, cfg.DamageBoostFactor, p.DamageMultiplier)

	p.Update()
	p.Update()
	assert.True(t, p.SpeedBoost.Active)
	assert.True(t, p.DamageBoost.Active)

	p.Update()
	assert.False(t, p.SpeedBoost.Active)
	assert.Equal(t, cfg.PlayerSpeed, p.Speed)
	assert.False(t, p.DamageBoost.Active)
	assert.Equal(t, 1.0, p.DamageMultiplier)
}

func TestPlayerPowerUpRefreshDoesNotStack(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)

	p.ApplyPowerUp(defs.PowerUpSpeed, 300)
	p.ApplyPowerUp(defs.PowerUpSpeed, 300)

	assert.Equal(t, cfg.PlayerSpeed*cfg.SpeedBoostFactor, p.Speed)
	assert.Equal(t, 300, p.SpeedBoost.Ticks)
}

func TestPlayerShootTowardPosition(t *testing.T) {
	t.Run("cooldown gates the shot and resets after firing", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.Weapon.ShootTimer = 0

		p.ShootTowardPosition(p.X+100, p.Y)
		assert.Empty(t, p.Bullets)

		p.Weapon.ShootTimer = p.Weapon.ShootCooldown
		p.ShootTowardPosition(p.X+100, p.Y)
		require.Len(t, p.Bullets, 1)
		assert.Equal(t, 0, p.Weapon.ShootTimer)
	})

	t.Run("aiming at own position fires nothing and keeps the timer", func(t *testing.T) {
		p := NewPlayer(testConfig())
		before := p.Weapon.ShootTimer

		p.ShootTowardPosition(p.X, p.Y)

		assert.Empty(t, p.Bullets)
		assert.Equal(t, before, p.Weapon.ShootTimer)
	})

	t.Run("spread distributes bullets symmetrically around the aim", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.Weapon.BulletCount = 3

		p.ShootTowardPosition(p.X+100, p.Y)
		require.Len(t, p.Bullets, 3)

		for i, want := range []float64{-10, 0, 10} {
			got := math.Atan2(p.Bullets[i].VY, p.Bullets[i].VX) * 180 / math.Pi
			assert.InDelta(t, want, got, 1e-9)
		}
		for _, b := range p.Bullets {
			assert.InDelta(t, p.Weapon.BulletSpeed, math.Hypot(b.VX, b.VY), 1e-9)
		}
	})

	t.Run("bullet damage bakes in the multiplier at fire time", func(t *testing.T) {
		cfg := testConfig()
		p := NewPlayer(cfg)
		p.ApplyPowerUp(defs.PowerUpDamage, 300)

		p.ShootTowardPosition(p.X+100, p.Y)

		require.Len(t, p.Bullets, 1)
		assert.Equal(t, cfg.BulletBaseDamage*cfg.DamageBoostFactor, p.Bullets[0].Damage)
	})
}

func TestPlayerShootTowardNearest(t *testing.T) {
	t.Run("no enemies means no shot", func(t *testing.T) {
		p := NewPlayer(testConfig())
		p.ShootTowardNearest(nil)
		assert.Empty(t, p.Bullets)
	})

	t.Run("aims at the closest enemy", func(t *testing.T) {
		cfg := testConfig()
		p := NewPlayer(cfg)
		far := NewEnemy(defs.EnemyDemon, p.X+300, p.Y, 1, cfg)
		near := NewEnemy(defs.EnemyDemon, p.X, p.Y-50, 1, cfg)

		p.ShootTowardNearest([]*Enemy{far, near})

		require.Len(t, p.Bullets, 1)
		assert.InDelta(t, 0, p.Bullets[0].VX, 1e-9)
		assert.Less(t, p.Bullets[0].VY, 0.0)
	})
}

func TestPlayerUpdateRemovesOffscreenBullets(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	p.X = float64(cfg.ScreenWidth) - 5

	p.ShootTowardPosition(p.X+100, p.Y)
	require.Len(t, p.Bullets, 1)

	p.Update()
	assert.Empty(t, p.Bullets)
}

func TestPlayerApplyUpgrade(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		kind   defs.UpgradeKind
		verify func(t *testing.T, p *Player)
	}{
		{defs.UpgradeBiggerBullet, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.BulletSize+cfg.UpgradeSizeBonus, p.Weapon.BulletSize)
		}},
		{defs.UpgradeFasterBullet, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.BulletSpeed+cfg.UpgradeSpeedBonus, p.Weapon.BulletSpeed)
		}},
		{defs.UpgradeExtraBullet, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.BulletCount+1, p.Weapon.BulletCount)
		}},
		{defs.UpgradeShorterCooldown, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.ShootCooldown-cfg.UpgradeCooldownCut, p.Weapon.ShootCooldown)
		}},
		{defs.UpgradeIncreasedDamage, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.BulletBaseDamage+cfg.UpgradeDamageBonus, p.Weapon.BulletBaseDamage)
		}},
		{defs.UpgradeBulletPierce, func(t *testing.T, p *Player) {
			assert.Equal(t, cfg.BulletPierce+1, p.Weapon.BulletPierce)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := NewPlayer(cfg)
			p.ApplyUpgrade(tt.kind)
			tt.verify(t, p)
		})
	}
}

func TestPlayerCooldownUpgradeFloors(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)

	for i := 0; i < 20; i++ {
		p.ApplyUpgrade(defs.UpgradeShorterCooldown)
	}

	assert.Equal(t, cfg.MinShootCooldown, p.Weapon.ShootCooldown)
}

func TestPlayerXPNeeded(t *testing.T) {
	p := NewPlayer(testConfig())
	assert.Equal(t, 6, p.XPNeeded())

	p.Level = 2
	assert.Equal(t, 24, p.XPNeeded())

	p.Level = 5
	assert.Equal(t, 150, p.XPNeeded())
}
