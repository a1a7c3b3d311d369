// internal/component/phase.go
package component

// Phase задаёт режим игрового цикла. Мир симулируется только в PhasePlaying,
// меню улучшений и экран поражения замораживают симуляцию целиком.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelUp
	PhaseGameOver
)

// String возвращает имя фазы для логов.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "level_up"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
