package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rarityColor 卡牌边框颜色
func rarityColor(r config.Rarity) color.RGBA {
	switch r {
	case config.RarityLegendary:
		return entities.ColorWarning
	case config.RarityRare:
		return entities.ColorShield
	}
	return colorDim
}

// drawBar 绘制进度条，frac 超出 [0,1] 时截断
func drawBar(screen *ebiten.Image, x, y, w, h float64, frac float64, fill color.Color) {
	frac = max(0, min(1, frac))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorPanel, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorDim, false)
}

func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// drawHUD 左上角状态栏与右侧车厢列表
func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	x, y := config.HUDPadding, config.HUDPadding

	drawBar(screen, x, y, config.HUDBarWidth, config.HUDBarHeight, ratio(snap.HP, snap.MaxHP), entities.ColorDamage)
	drawText(screen, fmt.Sprintf("HULL %.0f/%.0f", snap.HP, snap.MaxHP), x+config.HUDBarWidth+8, y, 1, colorText)
	y += config.HUDBarHeight + 6
	if snap.MaxShield > 0 {
		drawBar(screen, x, y, config.HUDBarWidth, config.HUDBarHeight/2, ratio(snap.Shield, snap.MaxShield), entities.ColorShield)
		y += config.HUDBarHeight/2 + 6
	}
	drawBar(screen, x, y, config.HUDBarWidth, config.HUDBarHeight/2, ratio(float64(snap.XP), float64(snap.MaxXP)), entities.ColorXP)
	drawText(screen, fmt.Sprintf("LV %d", snap.Level), x+config.HUDBarWidth+8, y-4, 1, colorText)
	y += config.HUDBarHeight + 8

	lines := []string{
		fmt.Sprintf("SCRAP %d", snap.Scrap),
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("WAVE %d  %ds", snap.Wave, max(0, snap.WaveDuration-snap.WaveTimer)/60),
		fmt.Sprintf("GEAR %d  SPEED %.1f", snap.Gear, snap.Speed),
		fmt.Sprintf("WAGONS %d/%d", snap.WagonCount, snap.MaxWagonCount),
	}
	for _, l := range lines {
		drawText(screen, l, x, y, 1, colorText)
		y += 16
	}

	var flags []string
	if snap.GodMode {
		flags = append(flags, "GOD")
	}
	if snap.Muted {
		flags = append(flags, "MUTED")
	}
	flags = append(flags, strings.ToUpper(snap.CameraMode.String()))
	drawText(screen, strings.Join(flags, "  "), x, y, 1, colorDim)

	wx := float64(config.GameWindowWidth) - 180
	wy := config.HUDPadding
	for _, w := range snap.OwnedWagons {
		vector.DrawFilledRect(screen, float32(wx), float32(wy+2), 10, 10, entities.WagonColor(w.Type), false)
		drawText(screen, fmt.Sprintf("%s L%d/%d", strings.ToUpper(w.Type.String()), w.Level, w.MaxLevel), wx+16, wy, 1, colorText)
		wy += 16
	}

	help := "W/S gear  SPACE salvo  C camera  TAB glossary  drag nodes  SHIFT+click add  right-click delete"
	drawText(screen, help, x, float64(config.GameWindowHeight)-config.HUDPadding-13, 1, colorDim)
}

// drawCards 升级选卡界面
func drawCards(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorPanel, false)
	cx := float64(config.GameWindowWidth) / 2
	drawTextCentered(screen, fmt.Sprintf("LEVEL %d", snap.Level), cx, 120, 3, entities.ColorXP)

	n := len(snap.PendingCards)
	total := float64(n)*config.CardWidth + float64(n-1)*config.CardSpacing
	x := cx - total/2
	y := float64(config.GameWindowHeight)/2 - config.CardHeight/2
	for i, c := range snap.PendingCards {
		clr := rarityColor(c.Rarity)
		vector.DrawFilledRect(screen, float32(x), float32(y), config.CardWidth, config.CardHeight, colorBackground, false)
		vector.StrokeRect(screen, float32(x), float32(y), config.CardWidth, config.CardHeight, 3, clr, false)
		mid := x + config.CardWidth/2
		drawTextCentered(screen, fmt.Sprintf("[%d]", i+1), mid, y+14, 1, colorDim)
		drawTextCentered(screen, c.Title, mid, y+50, 1.5, clr)
		drawTextCentered(screen, strings.ToUpper(string(c.Rarity)), mid, y+80, 1, colorDim)
		drawTextCentered(screen, c.Desc, mid, y+120, 1, colorText)
		x += config.CardWidth + config.CardSpacing
	}

	drawTextCentered(screen, fmt.Sprintf("R: reroll (%d scrap, you have %d)", snap.RerollCost, snap.Scrap),
		cx, y+config.CardHeight+40, 1, colorDim)
}

// drawGlossary 图鉴：可抽取卡牌和当前车厢
func drawGlossary(screen *ebiten.Image, snap game.Snapshot, pool []config.CardDef) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorPanel, false)
	drawTextCentered(screen, "GLOSSARY", float64(config.GameWindowWidth)/2, 40, 3, colorText)

	x, y := 80.0, 110.0
	for _, c := range pool {
		drawText(screen, c.Title, x, y, 1, rarityColor(c.Rarity))
		drawText(screen, c.Desc, x+200, y, 1, colorText)
		y += 18
		if y > float64(config.GameWindowHeight)-60 {
			x += 600
			y = 110
		}
	}
	drawTextCentered(screen, fmt.Sprintf("%d wagons attached. TAB or ESC to return", snap.WagonCount),
		float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)-30, 1, colorDim)
}

// drawGameOver 结算界面
func drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorPanel, false)
	cx, cy := float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2
	drawTextCentered(screen, "TRAIN DESTROYED", cx, cy-80, 4, entities.ColorDamage)
	drawTextCentered(screen, fmt.Sprintf("WAVE %d   LEVEL %d   SCORE %d", snap.Wave, snap.Level, snap.Score), cx, cy, 1.5, colorText)
	drawTextCentered(screen, "ENTER to return to the depot", cx, cy+60, 1, colorDim)
}
