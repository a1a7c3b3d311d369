// internal/system/collision_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/utils"
)

type collisionFixture struct {
	cfg        *config.Config
	dispatcher *event.Dispatcher
	world      *entity.World
	player     *entity.Player
	spawner    *SpawnSystem
	collisions *CollisionSystem
}

func newCollisionFixture(seed int64) *collisionFixture {
	cfg := config.Default()
	dispatcher := event.NewDispatcher()
	world := entity.NewWorld()
	return &collisionFixture{
		cfg:        cfg,
		dispatcher: dispatcher,
		world:      world,
		player:     entity.NewPlayer(cfg),
		spawner:    NewSpawnSystem(cfg, utils.NewPRNGService(seed), world, dispatcher),
		collisions: NewCollisionSystem(cfg, dispatcher),
	}
}

func TestContactDamagesOnceAndKnocksBackAll(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300

	near := entity.NewEnemy(defs.EnemyDemon, 400, 285, 1, f.cfg)
	far := entity.NewEnemy(defs.EnemyDemon, 700, 500, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{near, far}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 4, f.player.Health)
	assert.True(t, f.player.Invuln.Active)

	assert.Equal(t, f.cfg.PushbackDistance, near.KnockRemaining)
	assert.Negative(t, near.KnockDY, "enemy north of the player is pushed further north")

	assert.Equal(t, f.cfg.PushbackDistance, far.KnockRemaining, "knockback reaches enemies out of contact range too")
	assert.Positive(t, far.KnockDX)
	assert.Positive(t, far.KnockDY)
}

func TestContactIsSingleAggregateEvent(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300

	f.world.Enemies = []*entity.Enemy{
		entity.NewEnemy(defs.EnemyDemon, 390, 300, 1, f.cfg),
		entity.NewEnemy(defs.EnemyDemon, 410, 300, 1, f.cfg),
		entity.NewEnemy(defs.EnemyDemon, 400, 310, 1, f.cfg),
	}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 4, f.player.Health, "three touching enemies still cost one health")
}

func TestContactConsumesShieldAndStillKnocksBack(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300
	f.player.ApplyPowerUp(defs.PowerUpShield, f.cfg.PowerUpDuration)

	e := entity.NewEnemy(defs.EnemyDemon, 400, 285, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{e}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 5, f.player.Health)
	assert.False(t, f.player.Shield.Active)
	assert.False(t, f.player.Invuln.Active, "shield absorbs the hit without granting invulnerability")
	assert.Equal(t, f.cfg.PushbackDistance, e.KnockRemaining)
}

func TestBulletPierceHitsTwoEnemiesOnceEach(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 100, 500

	e1 := entity.NewEnemy(defs.EnemyBrute, 400, 100, 1, f.cfg)
	e2 := entity.NewEnemy(defs.EnemyBrute, 420, 100, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{e1, e2}
	f.player.Bullets = []*entity.Bullet{entity.NewBullet(410, 100, 0, 0, f.cfg.BulletSize, 1, 1)}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, e1.MaxHealth-1, e1.Health)
	assert.Equal(t, e2.MaxHealth-1, e2.Health)
	assert.Empty(t, f.player.Bullets, "pierce budget of one is spent on the second enemy")
	assert.Len(t, f.world.Enemies, 2)
}

func TestBulletNeverHitsSameEnemyTwice(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 100, 500

	e := entity.NewEnemy(defs.EnemyBrute, 400, 100, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{e}
	f.player.Bullets = []*entity.Bullet{entity.NewBullet(400, 100, 0, 0, f.cfg.BulletSize, 1, 5)}

	f.collisions.Resolve(f.player, f.world)
	f.collisions.Resolve(f.player, f.world)
	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, e.MaxHealth-1, e.Health, "hit ledger spans frames")
	assert.Len(t, f.player.Bullets, 1)
}

func TestEnemyDeathDropsCoinAtDeathSpot(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 100, 500

	imp := entity.NewEnemy(defs.EnemyImp, 400, 100, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{imp}
	f.player.Bullets = []*entity.Bullet{entity.NewBullet(400, 100, 0, 0, f.cfg.BulletSize, imp.MaxHealth, 0)}

	f.collisions.Resolve(f.player, f.world)

	assert.Empty(t, f.world.Enemies)
	assert.Empty(t, f.player.Bullets, "zero pierce bullet is spent on the first hit")
	require.Len(t, f.world.Coins, 1)
	assert.Equal(t, 400.0, f.world.Coins[0].X)
	assert.Equal(t, 100.0, f.world.Coins[0].Y)
}

func TestDeadEnemyIsSkippedBySubsequentBullets(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 100, 500

	imp := entity.NewEnemy(defs.EnemyImp, 400, 100, 1, f.cfg)
	survivor := entity.NewEnemy(defs.EnemyBrute, 400, 100, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{imp, survivor}
	f.player.Bullets = []*entity.Bullet{
		entity.NewBullet(400, 100, 0, 0, f.cfg.BulletSize, imp.MaxHealth, 0),
		entity.NewBullet(400, 100, 0, 0, f.cfg.BulletSize, 1, 1),
	}

	f.collisions.Resolve(f.player, f.world)

	require.Len(t, f.world.Enemies, 1)
	assert.Same(t, survivor, f.world.Enemies[0])
	assert.Equal(t, survivor.MaxHealth-1, survivor.Health, "the second bullet skips the corpse and lands once")
	require.Len(t, f.world.Coins, 1)
	assert.Len(t, f.player.Bullets, 1, "only the spent bullet is removed")
}

func TestDeferredRemovalKeepsSliceOrder(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 100, 500

	e1 := entity.NewEnemy(defs.EnemyImp, 200, 100, 1, f.cfg)
	e2 := entity.NewEnemy(defs.EnemyImp, 400, 100, 1, f.cfg)
	e3 := entity.NewEnemy(defs.EnemyImp, 600, 100, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{e1, e2, e3}
	f.player.Bullets = []*entity.Bullet{
		entity.NewBullet(200, 100, 0, 0, f.cfg.BulletSize, e1.MaxHealth, 0),
		entity.NewBullet(600, 100, 0, 0, f.cfg.BulletSize, e3.MaxHealth, 0),
	}

	f.collisions.Resolve(f.player, f.world)

	require.Len(t, f.world.Enemies, 1)
	assert.Same(t, e2, f.world.Enemies[0])
	assert.Len(t, f.world.Coins, 2)
}

func TestContactResolvesBeforeBullets(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300

	imp := entity.NewEnemy(defs.EnemyImp, 400, 285, 1, f.cfg)
	f.world.Enemies = []*entity.Enemy{imp}
	f.player.Bullets = []*entity.Bullet{entity.NewBullet(400, 285, 0, 0, f.cfg.BulletSize, imp.MaxHealth, 0)}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 4, f.player.Health, "contact lands even though the enemy dies this frame")
	assert.Empty(t, f.world.Enemies)
	assert.Len(t, f.world.Coins, 1)
}

func TestCoinPickupGrantsXPThroughEvents(t *testing.T) {
	f := newCollisionFixture(1)
	NewProgressionSystem(f.cfg, utils.NewPRNGService(1), f.player, f.spawner, f.dispatcher)

	f.world.Coins = []*entity.Coin{
		entity.NewCoin(f.player.X, f.player.Y, f.cfg.CoinSize),
		entity.NewCoin(f.player.X+4, f.player.Y, f.cfg.CoinSize),
		entity.NewCoin(700, 60, f.cfg.CoinSize),
	}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 2, f.player.XP)
	require.Len(t, f.world.Coins, 1)
	assert.Equal(t, 700.0, f.world.Coins[0].X)
}

func TestMagnetPullsCoinsWithinRadius(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300
	f.player.ApplyPowerUp(defs.PowerUpMagnet, f.cfg.PowerUpDuration)

	inRange := entity.NewCoin(400, 200, f.cfg.CoinSize)
	outOfRange := entity.NewCoin(400, 50, f.cfg.CoinSize)
	f.world.Coins = []*entity.Coin{inRange, outOfRange}

	f.collisions.Resolve(f.player, f.world)

	assert.InDelta(t, 200+f.cfg.MagnetPullSpeed, inRange.Y, 1e-9)
	assert.Equal(t, 50.0, outOfRange.Y)
}

func TestCoinsStayPutWithoutMagnet(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.X, f.player.Y = 400, 300

	c := entity.NewCoin(400, 200, f.cfg.CoinSize)
	f.world.Coins = []*entity.Coin{c}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 200.0, c.Y)
	assert.Len(t, f.world.Coins, 1)
}

func TestPowerUpPickupActivatesEffect(t *testing.T) {
	f := newCollisionFixture(1)
	f.world.PowerUps = []*entity.PowerUp{
		entity.NewPowerUp(f.player.X, f.player.Y, f.cfg.PowerUpSize, defs.PowerUpSpeed),
	}

	f.collisions.Resolve(f.player, f.world)

	assert.Empty(t, f.world.PowerUps)
	assert.True(t, f.player.SpeedBoost.Active)
	assert.InDelta(t, f.cfg.PlayerSpeed*f.cfg.SpeedBoostFactor, f.player.Speed, 1e-9)
}

func TestHealthPackHealsAndCapsAtMax(t *testing.T) {
	f := newCollisionFixture(1)
	f.player.Health = 3
	f.world.HealthPacks = []*entity.HealthPack{
		entity.NewHealthPack(f.player.X, f.player.Y, f.cfg.HealthPackSize),
		entity.NewHealthPack(f.player.X, f.player.Y, f.cfg.HealthPackSize),
		entity.NewHealthPack(f.player.X, f.player.Y, f.cfg.HealthPackSize),
	}

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, f.cfg.PlayerMaxHealth, f.player.Health)
	assert.Empty(t, f.world.HealthPacks)
}

func TestBossContactCostsOneHealth(t *testing.T) {
	f := newCollisionFixture(1)
	boss := entity.NewBoss(f.cfg, utils.NewPRNGService(1), 1)
	f.world.Boss = boss
	f.player.X, f.player.Y = boss.X, boss.Y

	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, 4, f.player.Health)
	assert.True(t, f.player.Invuln.Active)
}

func TestBulletHitLedgerAppliesToBoss(t *testing.T) {
	f := newCollisionFixture(1)
	boss := entity.NewBoss(f.cfg, utils.NewPRNGService(1), 1)
	f.world.Boss = boss
	f.player.X, f.player.Y = 100, 500

	f.player.Bullets = []*entity.Bullet{entity.NewBullet(boss.X, boss.Y, 0, 0, f.cfg.BulletSize, 1, 9)}

	f.collisions.Resolve(f.player, f.world)
	f.collisions.Resolve(f.player, f.world)

	assert.Equal(t, boss.MaxHealth-1, boss.Health, "a bullet damages the boss at most once")
}

func TestBossDefeatEndsEncounterAndDropsCoin(t *testing.T) {
	f := newCollisionFixture(1)
	boss := entity.NewBoss(f.cfg, utils.NewPRNGService(1), 1)
	boss.Health = 1
	f.world.Boss = boss
	f.player.X, f.player.Y = 100, 500

	bossX, bossY := boss.X, boss.Y
	f.player.Bullets = []*entity.Bullet{entity.NewBullet(bossX, bossY, 0, 0, f.cfg.BulletSize, 1, 0)}

	f.collisions.Resolve(f.player, f.world)

	assert.Nil(t, f.world.Boss)
	require.Len(t, f.world.Coins, 1)
	assert.Equal(t, bossX, f.world.Coins[0].X)
	assert.Equal(t, bossY, f.world.Coins[0].Y)
	assert.Empty(t, f.player.Bullets)
}
