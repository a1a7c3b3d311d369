// internal/state/playing_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survival-shooter/internal/app"
	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/entity"
	"go-survival-shooter/internal/system"
	"go-survival-shooter/internal/ui"
)

var _ State = (*PlayingState)(nil)

// upgradeKeys сопоставляет цифровые клавиши пунктам меню улучшений.
var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// PlayingState ведет один забег: читает ввод, продвигает симуляцию на тик
// и рисует мир с HUD. Меню улучшений и экран поражения обрабатываются
// здесь же, поверх замершего мира.
type PlayingState struct {
	sm   *StateMachine
	cfg  *config.Config
	lib  *assets.Library
	game *app.Game

	renderer    *system.RenderSystem
	health      *ui.HealthIndicator
	level       *ui.LevelIndicator
	effects     *ui.EffectPanel
	upgradeMenu *ui.UpgradeMenu
	gameOver    *ui.GameOverScreen
}

// NewPlayingState создает новый забег с временным зерном случайности.
func NewPlayingState(sm *StateMachine, cfg *config.Config, lib *assets.Library) *PlayingState {
	return &PlayingState{
		sm:          sm,
		cfg:         cfg,
		lib:         lib,
		game:        app.NewGame(cfg, 0),
		renderer:    system.NewRenderSystem(cfg, lib),
		health:      ui.NewHealthIndicator(config.HUDMarginX, config.HUDMarginY),
		level:       ui.NewLevelIndicator(config.HUDMarginX, config.HUDMarginY+22, lib.FaceSmall),
		effects:     ui.NewEffectPanel(config.HUDMarginX, config.HUDMarginY+62, lib.FaceSmall),
		upgradeMenu: ui.NewUpgradeMenu(cfg.ScreenWidth, cfg.ScreenHeight, cfg.UpgradeChoices, lib.FaceLarge, lib.FaceSmall),
		gameOver:    ui.NewGameOverScreen(lib.FaceLarge, lib.FaceSmall),
	}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update() error {
	switch s.game.Phase() {
	case component.PhasePlaying:
		s.updatePlaying()
	case component.PhaseLevelUp:
		s.updateLevelUp()
	case component.PhaseGameOver:
		s.updateGameOver()
	}
	return nil
}

func (s *PlayingState) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.cfg, s.lib))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s, s.lib.FaceLarge))
		return
	}

	in := entity.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.game.ShootAt(float64(x), float64(y))
	} else if ebiten.IsKeyPressed(ebiten.KeySpace) {
		s.game.ShootNearest()
	}

	s.game.Step(in)
}

func (s *PlayingState) updateLevelUp() {
	for i, key := range upgradeKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.game.ChooseUpgrade(i)
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i, ok := s.upgradeMenu.HitTest(x, y); ok {
			s.game.ChooseUpgrade(i)
		}
	}
}

func (s *PlayingState) updateGameOver() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.Reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.cfg, s.lib))
	}
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.Player, s.game.World)
	s.drawHUD(screen)

	mx, my := ebiten.CursorPosition()
	switch s.game.Phase() {
	case component.PhaseLevelUp:
		s.upgradeMenu.Draw(screen, s.game.Progression.PendingOptions, mx, my)
	case component.PhaseGameOver:
		p := s.game.Player
		s.gameOver.Draw(screen, p.Level, p.XP, s.game.Ticks(), s.cfg.TPS)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS %.0f  enemies %d", ebiten.ActualTPS(), len(s.game.World.Enemies)),
		s.cfg.ScreenWidth-130, s.cfg.ScreenHeight-18)
}

// drawHUD рисует полосу здоровья, уровень с прогрессом опыта и активные
// эффекты. Прогресс нормируется от порога предыдущего уровня, чтобы полоса
// начиналась пустой после каждого повышения.
func (s *PlayingState) drawHUD(screen *ebiten.Image) {
	p := s.game.Player
	s.health.Draw(screen, p.Health, s.cfg.PlayerMaxHealth)

	base := (p.Level - 1) * (p.Level - 1) * s.cfg.XPLevelFactor
	s.level.Draw(screen, p.Level, p.XP-base, p.XPNeeded()-base)

	s.effects.Draw(screen, p, s.cfg.TPS)
}

func (s *PlayingState) Exit() {}
