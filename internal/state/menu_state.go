// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/ui"
	"go-survival-shooter/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState это титульный экран с кнопками запуска забега и выхода.
type MenuState struct {
	sm  *StateMachine
	cfg *config.Config
	lib *assets.Library

	startButton *ui.Button
	quitButton  *ui.Button
}

// NewMenuState создает титульный экран.
func NewMenuState(sm *StateMachine, cfg *config.Config, lib *assets.Library) *MenuState {
	x := (cfg.ScreenWidth - config.MenuButtonW) / 2
	startY := cfg.ScreenHeight/2 - config.MenuButtonH - config.MenuButtonGap/2
	quitY := cfg.ScreenHeight/2 + config.MenuButtonGap/2

	return &MenuState{
		sm:          sm,
		cfg:         cfg,
		lib:         lib,
		startButton: ui.NewButton(x, startY, config.MenuButtonW, config.MenuButtonH, "Start Run", lib.FaceSmall),
		quitButton:  ui.NewButton(x, quitY, config.MenuButtonW, config.MenuButtonH, "Quit", lib.FaceSmall),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.startRun()
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case m.startButton.Contains(x, y):
			m.startRun()
		case m.quitButton.Contains(x, y):
			return ebiten.Termination
		}
	}
	return nil
}

func (m *MenuState) startRun() {
	m.sm.SetState(NewPlayingState(m.sm, m.cfg, m.lib))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.DrawImage(m.lib.Background, nil)
	vector.DrawFilledRect(screen, 0, 0,
		float32(m.cfg.ScreenWidth), float32(m.cfg.ScreenHeight), config.OverlayColor, true)

	title := "SURVIVORS"
	tb := text.BoundString(m.lib.FaceLarge, title)
	text.Draw(screen, title, m.lib.FaceLarge,
		(m.cfg.ScreenWidth-tb.Dx())/2-tb.Min.X, m.cfg.ScreenHeight/2-110, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	m.startButton.Draw(screen, mx, my)
	m.quitButton.Draw(screen, mx, my)

	hint := "WASD to move, mouse or Space to shoot"
	hb := text.BoundString(m.lib.FaceSmall, hint)
	text.Draw(screen, hint, m.lib.FaceSmall,
		(m.cfg.ScreenWidth-hb.Dx())/2-hb.Min.X, m.quitButton.Rect.Max.Y+44,
		render.WithAlpha(config.TextLightColor, 200))
}

func (m *MenuState) Exit() {}
