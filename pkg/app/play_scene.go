package app

import (
	"fmt"
	"log"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/scenes"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// debugScrapGrant K 键增加的废料
const debugScrapGrant = 500

// cardKeys 选卡快捷键
var cardKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// PlayScene 游戏画面：把键鼠输入转换为 GameScene 命令并绘制快照
type PlayScene struct {
	app     *App
	session *scenes.GameScene

	dragging bool
	track    trackCache
	// debugEnemy 下一次 P 键生成的敌人种类下标
	debugEnemy int
}

func newPlayScene(a *App) *PlayScene {
	return &PlayScene{app: a, session: a.session}
}

// Update 处理输入后推进一个 tick
func (s *PlayScene) Update(deltaTime float64) {
	if s.dragging && s.session.Phase() != game.PhasePlay {
		s.session.CancelDrag()
		s.dragging = false
	}

	switch s.session.Phase() {
	case game.PhaseLevelUp:
		s.handleCards()
	case game.PhaseGlossary:
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.session.CloseGlossary()
		}
	case game.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.app.Restart()
			return
		}
	case game.PhasePlay:
		s.handleKeys()
		s.handleMouse()
	}
	s.session.Update()
}

func (s *PlayScene) handleCards() {
	for i, k := range cardKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.session.SelectCard(i)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.session.RerollCards()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.session.OpenGlossary()
	}
}

func (s *PlayScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyW), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.session.ShiftGear(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.session.ShiftGear(-1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.session.FireSalvo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.session.ToggleCamera()
		s.app.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.session.ToggleMute()
		s.app.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.session.OpenGlossary()
	}

	// 调试命令
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.session.ToggleGodMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.session.AdvanceWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.session.ForceLevelUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		s.session.DebugGrantScrap(debugScrapGrant)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		all := types.AllEnemyTypes()
		t := all[s.debugEnemy%len(all)]
		s.debugEnemy++
		if err := s.session.DebugSpawn(t.String()); err != nil {
			log.Printf("[PlayScene] debug spawn failed: %v", err)
		}
	}
}

// cursorWorld 鼠标位置对应的世界坐标
func (s *PlayScene) cursorWorld() utils.Vec2 {
	mx, my := ebiten.CursorPosition()
	return cameraFor(s.session.Snapshot()).ScreenToWorld(utils.Vec2{X: float64(mx), Y: float64(my)})
}

func (s *PlayScene) handleMouse() {
	pos := s.cursorWorld()

	if s.dragging {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.session.CancelDrag()
			s.dragging = false
			return
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			res := s.session.EndDrag()
			s.dragging = false
			if res.OK {
				log.Printf("[PlayScene] node moved (cost %d)", res.Cost)
			}
			return
		}
		s.session.UpdateDrag(pos)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.session.DeleteNode(pos)
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		s.session.AddNode(pos)
		return
	}
	res := s.session.BeginDrag(pos)
	s.dragging = res.OK
	if !res.OK && res.Reason != components.ReasonNoTarget {
		log.Printf("[PlayScene] drag rejected: %s", res.Reason)
	}
}

// Draw 绘制世界和当前阶段的界面层
func (s *PlayScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	drawWorld(screen, snap, &s.track)
	drawHUD(screen, snap)

	switch snap.Phase {
	case game.PhaseLevelUp:
		drawCards(screen, snap)
	case game.PhaseGlossary:
		drawGlossary(screen, snap, s.session.CardPool())
	case game.PhaseGameOver:
		drawGameOver(screen, snap)
	}

	if s.app.IsVerbose() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  TICK %d  ENEMIES %d  SHOTS %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), snap.Tick, len(snap.Enemies), len(snap.Projectiles)),
			config.GameWindowWidth-420, config.GameWindowHeight-20)
	}
}
