// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survival-shooter/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние и рисует его под затемнением.
// Выход из паузы возвращает предыдущее состояние как есть, без пересоздания.
type PauseState struct {
	sm   *StateMachine
	prev State
	face font.Face
}

// NewPauseState создает паузу поверх предыдущего состояния.
func NewPauseState(sm *StateMachine, prev State, face font.Face) *PauseState {
	return &PauseState{sm: sm, prev: prev, face: face}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.prev)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.prev != nil {
		s.prev.Draw(screen)
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, true)

	label := "PAUSED"
	b := text.BoundString(s.face, label)
	text.Draw(screen, label, s.face, (w-b.Dx())/2-b.Min.X, h/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
