// internal/system/progression.go
package system

import (
	"log"

	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/utils"
)

// ProgressionSystem ведет опыт и уровни игрока. Порог очередного уровня
// считается от суммарного накопленного опыта, поэтому опыт никогда не
// списывается. На повышении система выбирает варианты улучшений, поднимает
// сложность спавна и раз в несколько уровней взводит флаг босса.
type ProgressionSystem struct {
	cfg        *config.Config
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	player     *entity.Player
	spawner    *SpawnSystem

	PendingOptions []defs.UpgradeKind
	bossPending    bool
}

// NewProgressionSystem создает систему прогрессии и подписывает её на подбор
// монет.
func NewProgressionSystem(cfg *config.Config, rng *utils.PRNGService, player *entity.Player, spawner *SpawnSystem, dispatcher *event.Dispatcher) *ProgressionSystem {
	s := &ProgressionSystem{
		cfg:        cfg,
		rng:        rng,
		dispatcher: dispatcher,
		player:     player,
		spawner:    spawner,
	}
	dispatcher.Subscribe(event.CoinCollected, s)
	return s
}

// OnEvent начисляет опыт за каждую подобранную монету.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type == event.CoinCollected {
		s.player.AddXP(1)
	}
}

// CheckLevelUp сравнивает суммарный опыт с порогом текущего уровня и
// возвращает true, когда уровень вырос и нужно открыть меню улучшений.
// Проверка выполняется раз в кадр, так что уровень растет не чаще одного за
// тик даже при большом запасе опыта.
func (s *ProgressionSystem) CheckLevelUp() bool {
	if s.player.XP < s.player.XPNeeded() {
		return false
	}

	s.player.Level++
	s.spawner.IncreaseDifficulty(s.player.Level)
	if s.player.Level%s.cfg.BossLevelInterval == 0 {
		s.bossPending = true
	}
	s.PendingOptions = s.sampleUpgrades()

	log.Printf("level %d reached, xp %d, next at %d", s.player.Level, s.player.XP, s.player.XPNeeded())
	s.dispatcher.Dispatch(event.Event{Type: event.LevelReached, Data: event.LevelPayload{Level: s.player.Level}})
	return true
}

// sampleUpgrades выбирает варианты улучшений без повторов из полного
// каталога.
func (s *ProgressionSystem) sampleUpgrades() []defs.UpgradeKind {
	perm := s.rng.Perm(defs.UpgradeKindCount)
	options := make([]defs.UpgradeKind, 0, s.cfg.UpgradeChoices)
	for _, idx := range perm[:s.cfg.UpgradeChoices] {
		options = append(options, defs.UpgradeKind(idx))
	}
	return options
}

// ChooseUpgrade применяет вариант по индексу меню и возвращает true, если
// выбор принят. Индекс вне диапазона молча игнорируется, меню остается
// открытым.
func (s *ProgressionSystem) ChooseUpgrade(i int) bool {
	if i < 0 || i >= len(s.PendingOptions) {
		return false
	}
	kind := s.PendingOptions[i]
	s.player.ApplyUpgrade(kind)
	s.PendingOptions = nil
	log.Printf("upgrade chosen: %s", kind)
	return true
}

// TakePendingBoss снимает и возвращает флаг ожидающего босса. Флаг взводится
// на каждом кратном уровне и потребляется ровно один раз.
func (s *ProgressionSystem) TakePendingBoss() bool {
	pending := s.bossPending
	s.bossPending = false
	return pending
}

// Reset сбрасывает состояние прогрессии для нового забега.
func (s *ProgressionSystem) Reset() {
	s.PendingOptions = nil
	s.bossPending = false
}
