// internal/component/animation.go
package component

// AnimState задаёт набор кадров, который проигрывает сущность.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
)

// Animation хранит чистое состояние анимации без ссылок на картинки: рендер
// сам находит текущий кадр по индексу. Кадр переключается раз в Interval
// тиков и циклически возвращается к нулевому.
type Animation struct {
	Frame      int
	FrameCount int
	Interval   int
	Ticks      int
}

// NewAnimation создает анимацию на frameCount кадров с заданным интервалом.
func NewAnimation(frameCount, interval int) Animation {
	return Animation{FrameCount: frameCount, Interval: interval}
}

// Advance продвигает таймер на один тик и по истечении интервала
// переключает кадр.
func (a *Animation) Advance() {
	if a.FrameCount <= 1 {
		return
	}
	a.Ticks++
	if a.Ticks >= a.Interval {
		a.Ticks = 0
		a.Frame = (a.Frame + 1) % a.FrameCount
	}
}
