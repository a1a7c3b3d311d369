// internal/event/types.go
package event

const (
	EnemyKilled         EventType = "EnemyKilled"         // Враг уничтожен пулей
	BossSpawned         EventType = "BossSpawned"         // Босс вышел на арену
	BossDefeated        EventType = "BossDefeated"        // Босс уничтожен
	CoinCollected       EventType = "CoinCollected"       // Монета подобрана
	PowerUpCollected    EventType = "PowerUpCollected"    // Усиление подобрано
	HealthPackCollected EventType = "HealthPackCollected" // Аптечка подобрана
	LevelReached        EventType = "LevelReached"        // Достигнут новый уровень
	PlayerDied          EventType = "PlayerDied"          // Здоровье игрока упало до нуля
)

// KillPayload указывает, где погибла сущность. Точка нужна для дропа лута.
type KillPayload struct {
	X, Y float64
}

// LevelPayload сообщает достигнутый уровень.
type LevelPayload struct {
	Level int
}
