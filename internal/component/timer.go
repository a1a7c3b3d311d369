// internal/component/timer.go
package component

// TimedFlag представляет временный эффект с обратным отсчетом в тиках:
// неуязвимость, щит, магнит, ускорение, усиление урона.
type TimedFlag struct {
	Active bool
	Ticks  int
}

// Set включает эффект на duration тиков. Повторное применение обновляет
// таймер, длительность не накапливается.
func (f *TimedFlag) Set(duration int) {
	f.Active = true
	f.Ticks = duration
}

// Clear мгновенно снимает эффект.
func (f *TimedFlag) Clear() {
	f.Active = false
	f.Ticks = 0
}

// Tick уменьшает счетчик активного эффекта и возвращает true ровно в тот
// тик, когда эффект истёк. Для неактивного эффекта ничего не делает.
func (f *TimedFlag) Tick() bool {
	if !f.Active {
		return false
	}
	f.Ticks--
	if f.Ticks <= 0 {
		f.Clear()
		return true
	}
	return false
}
