// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survival-shooter/internal/assets"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/state"
	"go-survival-shooter/internal/utils"
)

const startFromMenu = true // false: начинать забег сразу, минуя меню

// AppGame прокидывает игровой цикл ebiten в машину состояний.
type AppGame struct {
	stateMachine *state.StateMachine
	cfg          *config.Config
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	cfg := config.Default()

	// Генерация спрайтов использует собственный генератор, чтобы зерно
	// симуляции оставалось независимым от оформления.
	lib, err := assets.NewLibrary(cfg, utils.NewPRNGService(time.Now().UnixNano()))
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, cfg, lib))
	} else {
		sm.SetState(state.NewPlayingState(sm, cfg, lib))
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Survivors")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, cfg: cfg}); err != nil {
		log.Fatal(err)
	}
}
