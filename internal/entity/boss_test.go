// internal/entity/boss_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survival-shooter/internal/utils"
)

func testRNG() *utils.PRNGService {
	return utils.NewPRNGService(42)
}

func TestBossHealthScaling(t *testing.T) {
	cfg := testConfig()

	first := NewBoss(cfg, testRNG(), 1)
	assert.Equal(t, cfg.BossBaseHealth, first.MaxHealth)

	third := NewBoss(cfg, testRNG(), 3)
	want := cfg.BossBaseHealth * cfg.BossHealthGrowth * cfg.BossHealthGrowth
	assert.InDelta(t, want, third.MaxHealth, 1e-9)
	assert.Equal(t, third.MaxHealth, third.Health)
}

func TestBossStaysWithinMargin(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)
	p := NewPlayer(cfg)

	for i := 0; i < 2000; i++ {
		b.Update(p)
		require.GreaterOrEqual(t, b.X, cfg.BossEdgeMargin)
		require.LessOrEqual(t, b.X, float64(cfg.ScreenWidth)-cfg.BossEdgeMargin)
		require.GreaterOrEqual(t, b.Y, cfg.BossEdgeMargin)
		require.LessOrEqual(t, b.Y, float64(cfg.ScreenHeight)-cfg.BossEdgeMargin)
	}
}

func TestBossAttackSpread(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)
	p := NewPlayer(cfg)
	p.X, p.Y = b.X, b.Y+200

	b.fireSpread(p)
	require.Len(t, b.Bullets, 3)

	for i, want := range []float64{90 - cfg.BossSpreadDegrees, 90, 90 + cfg.BossSpreadDegrees} {
		got := math.Atan2(b.Bullets[i].VY, b.Bullets[i].VX) * 180 / math.Pi
		assert.InDelta(t, want, got, 1e-9)
	}
	for _, bb := range b.Bullets {
		assert.InDelta(t, cfg.BossBulletSpeed, math.Hypot(bb.VX, bb.VY), 1e-9)
	}
}

func TestBossSpreadDegenerateAim(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)
	p := NewPlayer(cfg)
	p.X, p.Y = b.X, b.Y

	b.fireSpread(p)

	assert.Empty(t, b.Bullets)
}

func TestBossAttackCadence(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)
	p := NewPlayer(cfg)

	for i := 0; i < cfg.BossAttackInterval-1; i++ {
		b.Update(p)
	}
	assert.Empty(t, b.Bullets)

	b.Update(p)
	assert.Len(t, b.Bullets, 3)
}

func TestBossTakeDamage(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)

	assert.False(t, b.TakeDamage(b.MaxHealth-1))
	assert.True(t, b.TakeDamage(1))
}

func TestBossBulletContactAndPoison(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	bb := NewBossBullet(p.X, p.Y, 0, 0, cfg)

	bb.Update(p, cfg)
	require.True(t, bb.HasHit)
	assert.Equal(t, cfg.PlayerMaxHealth-cfg.BossBulletDamage, p.Health)
	assert.True(t, p.Invuln.Active)

	p.X += 300
	p.Invuln.Clear()
	for i := 0; i < cfg.PoisonInterval-1; i++ {
		bb.Update(p, cfg)
	}
	require.Equal(t, cfg.PlayerMaxHealth-cfg.BossBulletDamage, p.Health)

	bb.Update(p, cfg)
	assert.Equal(t, cfg.PlayerMaxHealth-cfg.BossBulletDamage-cfg.PoisonDamage, p.Health,
		"poison tick lands independent of overlap")
}

func TestBossKeepsHitBulletsUntilOffscreen(t *testing.T) {
	cfg := testConfig()
	b := NewBoss(cfg, testRNG(), 1)
	p := NewPlayer(cfg)
	p.X, p.Y = 100, 500

	hit := NewBossBullet(400, 300, cfg.BossBulletSpeed, 0, cfg)
	hit.HasHit = true
	missed := NewBossBullet(2, 2, -cfg.BossBulletSpeed, 0, cfg)
	b.Bullets = []*BossBullet{hit, missed}

	b.Update(p)
	require.Len(t, b.Bullets, 1, "the bullet that never hit exits and is dropped")
	assert.Same(t, hit, b.Bullets[0])

	for i := 0; i < 100; i++ {
		b.Update(p)
	}
	assert.Empty(t, b.Bullets, "the hit bullet is dropped only after leaving the screen")
}
