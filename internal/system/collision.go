// internal/system/collision.go
package system

import (
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/event"
	"go-survival-shooter/pkg/geom"
)

// CollisionSystem разрешает все взаимодействия кадра в фиксированном порядке
// фаз: контакт игрока с врагами, пули по врагам, монеты, усиления, аптечки и
// в конце босс. Внутри фазы коллекции обходятся в порядке срезов, удаления
// откладываются до конца фазы и применяются уплотнением, поэтому результат
// кадра детерминирован.
type CollisionSystem struct {
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

// NewCollisionSystem создает резолвер столкновений.
func NewCollisionSystem(cfg *config.Config, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{cfg: cfg, dispatcher: dispatcher}
}

// Resolve выполняет все фазы разрешения одного кадра.
func (s *CollisionSystem) Resolve(p *entity.Player, w *entity.World) {
	s.resolvePlayerEnemyContact(p, w)
	s.resolveBulletsEnemies(p, w)
	s.resolveCoins(p, w)
	s.resolvePowerUps(p, w)
	s.resolveHealthPacks(p, w)
	if w.Boss != nil {
		s.resolveBoss(p, w)
	}
}

// resolvePlayerEnemyContact обрабатывает касание врагов как одно агрегатное
// событие кадра: ровно один удар по игроку, сколько бы врагов ни касалось, и
// отброс всем врагам сразу. Щит и неуязвимость учитываются внутри
// TakeDamage, отброс применяется в любом случае.
func (s *CollisionSystem) resolvePlayerEnemyContact(p *entity.Player, w *entity.World) {
	playerRect := p.Rect()
	touched := false
	for _, e := range w.Enemies {
		if e.Rect().Overlaps(playerRect) {
			touched = true
			break
		}
	}
	if !touched {
		return
	}

	p.TakeDamage(1)
	for _, e := range w.Enemies {
		e.SetKnockback(p.X, p.Y, s.cfg.PushbackDistance)
	}
}

// resolveBulletsEnemies прогоняет каждую пулю по врагам. Попадание
// записывается в учет пули, так что один враг не ранится дважды одной пулей;
// убитые враги помечаются и не задеваются следующими пулями этого же кадра.
func (s *CollisionSystem) resolveBulletsEnemies(p *entity.Player, w *entity.World) {
	if len(p.Bullets) == 0 || len(w.Enemies) == 0 {
		return
	}

	deadEnemies := make([]bool, len(w.Enemies))
	deadBullets := make([]bool, len(p.Bullets))

	for bi, b := range p.Bullets {
		bulletRect := b.Rect()
		for ei, e := range w.Enemies {
			if deadEnemies[ei] || b.HasHit(e) {
				continue
			}
			if !bulletRect.Overlaps(e.Rect()) {
				continue
			}

			b.MarkHit(e)
			if e.TakeDamage(b.Damage) {
				deadEnemies[ei] = true
				s.dispatcher.Dispatch(event.Event{
					Type: event.EnemyKilled,
					Data: event.KillPayload{X: e.X, Y: e.Y},
				})
			}
			if b.ConsumePierce() {
				deadBullets[bi] = true
				break
			}
		}
	}

	w.Enemies = compact(w.Enemies, deadEnemies)
	p.Bullets = compact(p.Bullets, deadBullets)
}

// resolveCoins сначала подтягивает монеты активным магнитом, затем подбирает
// пересекающиеся с игроком. Начисление опыта уходит событием.
func (s *CollisionSystem) resolveCoins(p *entity.Player, w *entity.World) {
	if len(w.Coins) == 0 {
		return
	}
	playerRect := p.Rect()
	picked := make([]bool, len(w.Coins))

	for i, c := range w.Coins {
		if p.Magnet.Active {
			s.attractCoin(p, c)
		}
		if c.Rect().Overlaps(playerRect) {
			picked[i] = true
			s.dispatcher.Dispatch(event.Event{Type: event.CoinCollected})
		}
	}
	w.Coins = compact(w.Coins, picked)
}

// attractCoin тянет монету к игроку с постоянной скоростью внутри радиуса
// магнита. Монета ровно в центре игрока остается на месте.
func (s *CollisionSystem) attractCoin(p *entity.Player, c *entity.Coin) {
	delta := geom.Vec2{X: p.X - c.X, Y: p.Y - c.Y}
	dist := delta.Len()
	if dist == 0 || dist > s.cfg.MagnetRadius {
		return
	}
	dir, _ := delta.Normalized()
	step := min(s.cfg.MagnetPullSpeed, dist)
	c.X += dir.X * step
	c.Y += dir.Y * step
}

// resolvePowerUps включает игроку эффект каждого подобранного усиления.
// Несколько усилений одного типа за кадр обрабатываются независимо.
func (s *CollisionSystem) resolvePowerUps(p *entity.Player, w *entity.World) {
	if len(w.PowerUps) == 0 {
		return
	}
	playerRect := p.Rect()
	picked := make([]bool, len(w.PowerUps))

	for i, pu := range w.PowerUps {
		if pu.Rect().Overlaps(playerRect) {
			picked[i] = true
			p.ApplyPowerUp(pu.Kind, s.cfg.PowerUpDuration)
			s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Kind})
		}
	}
	w.PowerUps = compact(w.PowerUps, picked)
}

// resolveHealthPacks лечит игрока за каждую подобранную аптечку, не превышая
// максимум здоровья.
func (s *CollisionSystem) resolveHealthPacks(p *entity.Player, w *entity.World) {
	if len(w.HealthPacks) == 0 {
		return
	}
	playerRect := p.Rect()
	picked := make([]bool, len(w.HealthPacks))

	for i, hp := range w.HealthPacks {
		if hp.Rect().Overlaps(playerRect) {
			picked[i] = true
			p.Heal(1)
			s.dispatcher.Dispatch(event.Event{Type: event.HealthPackCollected})
		}
	}
	w.HealthPacks = compact(w.HealthPacks, picked)
}

// resolveBoss обрабатывает контакт игрока с боссом и попадания пуль по нему.
// Модель урона общая с врагами: учет попаданий и расход пробития на пуле.
// Смерть босса завершает встречу, оставшиеся пули не проверяются.
func (s *CollisionSystem) resolveBoss(p *entity.Player, w *entity.World) {
	boss := w.Boss
	bossRect := boss.Rect()
	if bossRect.Overlaps(p.Rect()) {
		p.TakeDamage(1)
	}

	deadBullets := make([]bool, len(p.Bullets))
	for bi, b := range p.Bullets {
		if b.HasHitBoss() || !b.Rect().Overlaps(bossRect) {
			continue
		}

		b.MarkBossHit()
		died := boss.TakeDamage(b.Damage)
		if b.ConsumePierce() {
			deadBullets[bi] = true
		}
		if died {
			s.dispatcher.Dispatch(event.Event{
				Type: event.BossDefeated,
				Data: event.KillPayload{X: boss.X, Y: boss.Y},
			})
			w.Boss = nil
			break
		}
	}
	p.Bullets = compact(p.Bullets, deadBullets)
}

// compact уплотняет срез на месте, сохраняя порядок живых элементов.
func compact[T any](items []T, dead []bool) []T {
	n := 0
	for i, it := range items {
		if !dead[i] {
			items[n] = it
			n++
		}
	}
	return items[:n]
}
