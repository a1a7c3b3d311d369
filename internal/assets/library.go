// internal/assets/library.go
package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-survival-shooter/internal/component"
	"go-survival-shooter/internal/config"
	"go-survival-shooter/internal/defs"
	"go-survival-shooter/internal/utils"
	"go-survival-shooter/pkg/render"
)

// Library хранит все картинки и шрифты игры. Спрайты рисуются процедурно на
// старте, внешних файлов у игры нет, так что загрузка может упасть только на
// разборе встроенного шрифта.
type Library struct {
	Background *ebiten.Image

	PlayerIdle []*ebiten.Image
	PlayerRun  []*ebiten.Image
	Enemy      map[defs.EnemyKind][]*ebiten.Image
	Boss       []*ebiten.Image

	FaceSmall font.Face
	FaceLarge font.Face
}

// NewLibrary собирает библиотеку ресурсов. Генератор случайностей нужен
// только для раскладки травы на фоне и не должен разделяться с симуляцией.
func NewLibrary(cfg *config.Config, rng *utils.PRNGService) (*Library, error) {
	src, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	small, err := opentype.NewFace(src, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("build small font face: %w", err)
	}
	large, err := opentype.NewFace(src, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("build large font face: %w", err)
	}

	lib := &Library{
		Background: makeBackground(cfg, rng),
		PlayerIdle: makeCharacterFrames(cfg.PlayerSize, config.PlayerColor, cfg.AnimationFrames, false),
		PlayerRun:  makeCharacterFrames(cfg.PlayerSize, config.PlayerColor, cfg.AnimationFrames, true),
		Enemy:      make(map[defs.EnemyKind][]*ebiten.Image, len(defs.EnemyLibrary)),
		Boss:       makeCharacterFrames(cfg.BossSize, config.BossColor, cfg.AnimationFrames, true),
		FaceSmall:  small,
		FaceLarge:  large,
	}
	for kind, def := range defs.EnemyLibrary {
		size := cfg.EnemySize * def.Visuals.Scale
		lib.Enemy[kind] = makeCharacterFrames(size, def.Visuals.Color, cfg.AnimationFrames, true)
	}
	return lib, nil
}

// PlayerFrames возвращает набор кадров для состояния анимации игрока.
func (l *Library) PlayerFrames(state component.AnimState) []*ebiten.Image {
	if state == component.AnimRun {
		return l.PlayerRun
	}
	return l.PlayerIdle
}

// makeBackground заливает поле ровным цветом и разбрасывает пучки травы.
func makeBackground(cfg *config.Config, rng *utils.PRNGService) *ebiten.Image {
	img := ebiten.NewImage(cfg.ScreenWidth, cfg.ScreenHeight)
	img.Fill(config.BackgroundColor)

	for i := 0; i < 600; i++ {
		x := rng.FloatRange(0, float64(cfg.ScreenWidth))
		y := rng.FloatRange(0, float64(cfg.ScreenHeight))
		w := rng.FloatRange(2, 5)
		h := rng.FloatRange(4, 9)
		render.FilledRect(img, x, y, w, h, config.GrassTintColor)
	}
	return img
}

// makeCharacterFrames рисует набор кадров простого персонажа: две ноги,
// корпус со скругленной головой и глаз. Кадры бега качают ноги в
// противофазе, кадры покоя слегка приподнимают корпус.
func makeCharacterFrames(size float64, body color.RGBA, frames int, run bool) []*ebiten.Image {
	px := int(math.Ceil(size))
	if px < 4 {
		px = 4
	}
	set := make([]*ebiten.Image, 0, frames)
	for i := 0; i < frames; i++ {
		img := ebiten.NewImage(px, px)
		drawCharacter(img, size, body, i, frames, run)
		set = append(set, img)
	}
	return set
}

func drawCharacter(img *ebiten.Image, size float64, body color.RGBA, frame, frames int, run bool) {
	cx := size / 2
	phase := 2 * math.Pi * float64(frame) / float64(frames)

	bob := 0.0
	if !run && frame%2 == 1 {
		bob = -size * 0.03
	}

	legW := size * 0.18
	legH := size * 0.22
	legY := size - legH/2
	swing := 0.0
	if run {
		swing = size * 0.12 * math.Sin(phase)
	}
	legColor := render.DarkenColor(body)
	render.FilledRect(img, cx-size*0.18, legY+swing/2, legW, legH, legColor)
	render.FilledRect(img, cx+size*0.18, legY-swing/2, legW, legH, legColor)

	bodyH := size * 0.62
	bodyY := size*0.48 + bob
	render.FilledRect(img, cx, bodyY, size*0.56, bodyH, body)
	render.FilledCircle(img, cx, bodyY-bodyH/2, size*0.28, body)

	// Глаз смотрит вправо, влево его зеркалит отрисовка спрайта.
	eyeX := cx + size*0.14
	eyeY := bodyY - bodyH*0.25
	render.FilledCircle(img, eyeX, eyeY, size*0.10, color.RGBA{245, 245, 245, 255})
	render.FilledCircle(img, eyeX+size*0.03, eyeY, size*0.05, color.RGBA{25, 25, 30, 255})
}
