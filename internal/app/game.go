// internal/app/game.go
package app

import (
	"log"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/internal/system"
	"go-survival-shooter/internal/utils"
	"go-survival-shooter/pkg/geom"
)

// Game связывает игрока, мир и системы в один детерминированный цикл.
// Симуляция продвигается целыми тиками через Step с уже разобранным вводом,
// поэтому ядро не знает ни про окно, ни про устройство ввода: при одинаковом
// зерне и одинаковой последовательности ввода забег воспроизводится точно.
type Game struct {
	Cfg        *config.Config
	Player     *entity.Player
	World      *entity.World
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	Spawner     *system.SpawnSystem
	Progression *system.ProgressionSystem
	Collisions  *system.CollisionSystem

	phase component.Phase
	ticks int
}

// NewGame собирает новую игру. Нулевое зерно дает невоспроизводимый забег,
// любое другое полностью детерминирует случайности симуляции.
func NewGame(cfg *config.Config, seed int64) *Game {
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	world := entity.NewWorld()
	player := entity.NewPlayer(cfg)

	g := &Game{
		Cfg:        cfg,
		Player:     player,
		World:      world,
		Dispatcher: dispatcher,
		Rng:        rng,
		phase:      component.PhasePlaying,
	}
	g.Spawner = system.NewSpawnSystem(cfg, rng, world, dispatcher)
	g.Progression = system.NewProgressionSystem(cfg, rng, player, g.Spawner, dispatcher)
	g.Collisions = system.NewCollisionSystem(cfg, dispatcher)

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.BossDefeated, listener)
	dispatcher.Subscribe(event.PowerUpCollected, listener)

	return g
}

// Step продвигает симуляцию на один тик. Вне боевой фазы мир заморожен:
// меню улучшений и экран поражения ждут команд ChooseUpgrade и Reset.
//
// Порядок внутри тика фиксирован: отложенный босс, ввод и игрок, враги,
// босс, разрешение столкновений, спавн, проверка смерти и уровня.
func (g *Game) Step(in entity.Input) {
	if g.phase != component.PhasePlaying {
		return
	}
	g.ticks++

	if g.World.Boss == nil && g.Progression.TakePendingBoss() {
		g.Spawner.SpawnBoss()
	}

	g.Player.HandleInput(in)
	g.Player.Update()

	for _, e := range g.World.Enemies {
		e.Update(g.Player.X, g.Player.Y)
	}
	if g.World.Boss != nil {
		g.World.Boss.Update(g.Player)
	}

	g.Collisions.Resolve(g.Player, g.World)
	g.Spawner.Update()

	if g.Player.Health <= 0 {
		g.phase = component.PhaseGameOver
		g.Dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		log.Printf("run over: level %d, xp %d, ticks %d", g.Player.Level, g.Player.XP, g.ticks)
		return
	}

	if g.Progression.CheckLevelUp() {
		g.phase = component.PhaseLevelUp
	}
}

// ShootAt выпускает веер пуль в мировую точку. Команда действует только в
// боевой фазе, перезарядку и прицеливание проверяет сам игрок.
func (g *Game) ShootAt(x, y float64) {
	if g.phase != component.PhasePlaying {
		return
	}
	g.Player.ShootTowardPosition(x, y)
}

// ShootNearest стреляет в ближайшую цель. Во время встречи с боссом он
// соперничает с врагами за цель на общих основаниях.
func (g *Game) ShootNearest() {
	if g.phase != component.PhasePlaying {
		return
	}
	boss := g.World.Boss
	if boss == nil {
		g.Player.ShootTowardNearest(g.World.Enemies)
		return
	}

	from := geom.Vec2{X: g.Player.X, Y: g.Player.Y}
	tx, ty := boss.X, boss.Y
	best := geom.Dist(from, geom.Vec2{X: boss.X, Y: boss.Y})
	for _, e := range g.World.Enemies {
		if d := geom.Dist(from, geom.Vec2{X: e.X, Y: e.Y}); d < best {
			best = d
			tx, ty = e.X, e.Y
		}
	}
	g.Player.ShootTowardPosition(tx, ty)
}

// ChooseUpgrade применяет вариант меню улучшений и возвращает игру в бой.
// Неверный индекс оставляет меню открытым.
func (g *Game) ChooseUpgrade(i int) {
	if g.phase != component.PhaseLevelUp {
		return
	}
	if g.Progression.ChooseUpgrade(i) {
		g.phase = component.PhasePlaying
	}
}

// Reset начинает новый забег. Генератор случайностей переживает перезапуск,
// чтобы забеги в одном процессе не повторяли друг друга.
func (g *Game) Reset() {
	g.Player.Reset()
	g.World.Reset()
	g.Spawner.Reset()
	g.Progression.Reset()
	g.phase = component.PhasePlaying
	g.ticks = 0
	log.Printf("new run started")
}

// Phase возвращает текущую фазу игры.
func (g *Game) Phase() component.Phase {
	return g.phase
}

// Ticks возвращает число прожитых тиков текущего забега.
func (g *Game) Ticks() int {
	return g.ticks
}

// gameEventListener пишет в журнал вехи забега.
type gameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BossDefeated:
		log.Printf("boss %d defeated at level %d", l.game.Spawner.BossCount, l.game.Player.Level)
	case event.PowerUpCollected:
		if kind, ok := e.Data.(defs.PowerUpKind); ok {
			log.Printf("power-up picked: %s", kind)
		}
	}
}
