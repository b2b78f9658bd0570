package app

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// setupRow 准备界面的一行选项
type setupRow struct {
	label   string
	options []string
	details []string
	index   int
}

func (r *setupRow) value() string {
	if len(r.options) == 0 {
		return ""
	}
	return r.options[r.index]
}

// cycle 向前或向后切换选项，首尾循环
func (r *setupRow) cycle(delta int) {
	n := len(r.options)
	if n == 0 {
		return
	}
	r.index = ((r.index+delta)%n + n) % n
}

// selectValue 选中指定值，不存在时保持原选项
func (r *setupRow) selectValue(v string) {
	if i := slices.Index(r.options, v); i >= 0 {
		r.index = i
	}
}

// loadoutRows 从目录生成机车、初始车厢和难度三行选项
func loadoutRows(c *config.Catalog, def Loadout) []*setupRow {
	engines := &setupRow{label: "ENGINE"}
	for _, e := range c.Engines {
		engines.options = append(engines.options, e.ID)
		engines.details = append(engines.details,
			fmt.Sprintf("%s  HP %.0f  SPEED %.1f  MAGNET %.0f  %s", e.Name, e.HP, e.Speed, e.Magnet, e.Desc))
	}

	wagons := &setupRow{label: "WAGON"}
	for _, t := range types.AllWagonTypes() {
		card, ok := c.WagonCard(t)
		if !ok {
			continue
		}
		wagons.options = append(wagons.options, t.String())
		wagons.details = append(wagons.details, fmt.Sprintf("%s  %s", card.Title, card.Desc))
	}

	difficulties := &setupRow{label: "DIFFICULTY"}
	for _, d := range c.Difficulties {
		difficulties.options = append(difficulties.options, d.ID)
		difficulties.details = append(difficulties.details,
			fmt.Sprintf("%s  enemy hp x%.1f  spawn every %d ticks", d.Label, d.Multiplier, d.SpawnRateBase))
	}

	engines.selectValue(def.Engine)
	wagons.selectValue(def.Wagon)
	difficulties.selectValue(def.Difficulty)
	return []*setupRow{engines, wagons, difficulties}
}

// SetupScene 开局准备界面
type SetupScene struct {
	app    *App
	rows   []*setupRow
	cursor int
	err    string
}

func newSetupScene(a *App) *SetupScene {
	return &SetupScene{app: a, rows: loadoutRows(a.catalog, a.defaultLoadout())}
}

// loadout 当前选中的开局组合
func (s *SetupScene) loadout() Loadout {
	return Loadout{Engine: s.rows[0].value(), Wagon: s.rows[1].value(), Difficulty: s.rows[2].value()}
}

// Update 上下选择行，左右切换选项，回车开局
func (s *SetupScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.cursor = (s.cursor + len(s.rows) - 1) % len(s.rows)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.cursor = (s.cursor + 1) % len(s.rows)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.rows[s.cursor].cycle(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.rows[s.cursor].cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := s.app.StartGame(s.loadout()); err != nil {
			log.Printf("[SetupScene] %v", err)
			s.err = err.Error()
		}
	}
}

// Draw 绘制三行选项和当前选项说明
func (s *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	cx := float64(config.GameWindowWidth) / 2
	drawTextCentered(screen, "LOOPLINE", cx, 90, 5, entities.ColorWarning)
	drawTextCentered(screen, "build the track, grow the train, survive the waves", cx, 170, 1, colorDim)

	y := 240.0
	for i, r := range s.rows {
		clr := colorDim
		if i == s.cursor {
			clr = colorText
			vector.DrawFilledRect(screen, float32(cx-300), float32(y-10), 600, 70, colorPanel, false)
			vector.StrokeRect(screen, float32(cx-300), float32(y-10), 600, 70, 2, entities.ColorWarning, false)
		}
		drawTextCentered(screen, r.label, cx, y, 1, colorDim)
		drawTextCentered(screen, "< "+strings.ToUpper(r.value())+" >", cx, y+18, 2, clr)
		if r.index < len(r.details) {
			drawTextCentered(screen, r.details[r.index], cx, y+46, 1, clr)
		}
		y += 100
	}

	drawTextCentered(screen, "ARROWS select   ENTER depart   F11 fullscreen", cx, float64(config.GameWindowHeight)-60, 1, colorDim)
	if s.err != "" {
		drawTextCentered(screen, s.err, cx, float64(config.GameWindowHeight)-30, 1, entities.ColorDamage)
	}
}
