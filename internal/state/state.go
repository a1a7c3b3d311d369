// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State это одно экранное состояние приложения: меню, игра, пауза.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает состояния, вызывая хуки входа и выхода.
type StateMachine struct {
	current State
}

// NewStateMachine создает машину состояний без начального состояния.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переводит машину в новое состояние.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update продвигает текущее состояние на один тик.
func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

// Draw отрисовывает текущее состояние.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
