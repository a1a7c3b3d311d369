// internal/system/spawn.go
package system

import (
	"log"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/utils"
)

// SpawnSystem владеет появлением всех сущностей мира: волны врагов по
// таймеру, случайные усиления, лут с убитых и босс. Параметры сложности
// (размер волны и множитель здоровья) поднимает система прогрессии через
// IncreaseDifficulty.
type SpawnSystem struct {
	cfg        *config.Config
	rng        *utils.PRNGService
	world      *entity.World
	dispatcher *event.Dispatcher

	enemyTimer   int
	powerUpTimer int

	EnemiesPerSpawn  int
	HealthMultiplier float64
	BossCount        int
}

// NewSpawnSystem создает спавнер и подписывает его на события гибели, чтобы
// ронять лут на месте смерти.
func NewSpawnSystem(cfg *config.Config, rng *utils.PRNGService, world *entity.World, dispatcher *event.Dispatcher) *SpawnSystem {
	s := &SpawnSystem{
		cfg:              cfg,
		rng:              rng,
		world:            world,
		dispatcher:       dispatcher,
		EnemiesPerSpawn:  1,
		HealthMultiplier: 1,
	}
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.BossDefeated, s)
	return s
}

// Update продвигает таймеры спавна на один тик. Пока на арене жив босс,
// обычные враги не появляются и их таймер стоит.
func (s *SpawnSystem) Update() {
	if s.world.Boss == nil {
		s.enemyTimer++
		if s.enemyTimer >= s.cfg.EnemySpawnInterval {
			s.enemyTimer = 0
			for i := 0; i < s.EnemiesPerSpawn; i++ {
				s.world.Enemies = append(s.world.Enemies, s.randomEdgeEnemy())
			}
		}
	}

	s.powerUpTimer++
	if s.powerUpTimer >= s.cfg.PowerUpSpawnInterval {
		s.powerUpTimer = 0
		if s.rng.Float64() < s.cfg.PowerUpSpawnChance {
			s.world.PowerUps = append(s.world.PowerUps, s.randomPowerUp())
		}
	}
}

// randomEdgeEnemy выбирает случайную грань экрана, точку сразу за ней и
// случайный тип врага из библиотеки.
func (s *SpawnSystem) randomEdgeEnemy() *entity.Enemy {
	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)
	margin := s.cfg.SpawnMargin

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // верхняя грань
		x = s.rng.FloatRange(0, w)
		y = -margin
	case 1: // нижняя
		x = s.rng.FloatRange(0, w)
		y = h + margin
	case 2: // левая
		x = -margin
		y = s.rng.FloatRange(0, h)
	default: // правая
		x = w + margin
		y = s.rng.FloatRange(0, h)
	}

	kind := defs.EnemyKind(s.rng.Intn(defs.EnemyKindCount))
	return entity.NewEnemy(kind, x, y, s.HealthMultiplier, s.cfg)
}

// randomPowerUp кладет усиление случайного типа внутри арены с отступом от
// краев.
func (s *SpawnSystem) randomPowerUp() *entity.PowerUp {
	margin := s.cfg.SpawnMargin
	x := s.rng.FloatRange(margin, float64(s.cfg.ScreenWidth)-margin)
	y := s.rng.FloatRange(margin, float64(s.cfg.ScreenHeight)-margin)
	kind := defs.PowerUpKind(s.rng.Intn(defs.PowerUpKindCount))
	return entity.NewPowerUp(x, y, s.cfg.PowerUpSize, kind)
}

// SpawnBoss выводит на арену очередного босса. Здоровье каждого следующего
// растет геометрически, обычный спавн замирает до конца встречи.
func (s *SpawnSystem) SpawnBoss() {
	s.BossCount++
	s.world.Boss = entity.NewBoss(s.cfg, s.rng, s.BossCount)
	s.dispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: s.BossCount})
	log.Printf("boss %d spawned, max health %.0f", s.BossCount, s.world.Boss.MaxHealth)
}

// IncreaseDifficulty вызывается после каждого повышения уровня: на четных
// уровнях волна растет на одного врага, множитель здоровья поднимается на
// фиксированный шаг до потолка.
func (s *SpawnSystem) IncreaseDifficulty(level int) {
	if level%2 == 0 {
		s.EnemiesPerSpawn++
	}
	s.HealthMultiplier = min(s.HealthMultiplier+s.cfg.HealthMultiplierStep, s.cfg.HealthMultiplierCap)
}

// OnEvent роняет лут на месте гибели: с врага монета всегда и аптечка с
// шансом один к N, с босса монета.
func (s *SpawnSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		kill := e.Data.(event.KillPayload)
		s.world.Coins = append(s.world.Coins, entity.NewCoin(kill.X, kill.Y, s.cfg.CoinSize))
		if s.rng.Intn(s.cfg.HealthPackDropOdds) == 0 {
			s.world.HealthPacks = append(s.world.HealthPacks, entity.NewHealthPack(kill.X, kill.Y, s.cfg.HealthPackSize))
		}
	case event.BossDefeated:
		kill := e.Data.(event.KillPayload)
		s.world.Coins = append(s.world.Coins, entity.NewCoin(kill.X, kill.Y, s.cfg.CoinSize))
	}
}

// Reset возвращает спавнер к стартовой сложности нового забега.
func (s *SpawnSystem) Reset() {
	s.enemyTimer = 0
	s.powerUpTimer = 0
	s.EnemiesPerSpawn = 1
	s.HealthMultiplier = 1
	s.BossCount = 0
}
