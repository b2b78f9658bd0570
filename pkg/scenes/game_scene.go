package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/systems"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// GameScene 一局游戏的门面
//
// 持有 World 和全部系统，对外只暴露命令和快照：
// 界面层每帧调用 Update，读取 Snapshot 绘制画面，输入转换成命令调用。
// GameScene 本身不做任何渲染，可以在无窗口环境下驱动。
type GameScene struct {
	catalog *config.Catalog
	seed    int64
	world   *game.World

	locomotion *systems.LocomotionSystem
	editor     *systems.TrackEditorSystem
	waves      *systems.WaveDirectorSystem
	grid       *systems.GridSystem
	wagons     *systems.WagonSystem
	drones     *systems.DroneSystem
	autofire   *systems.AutoFireSystem
	enemies    *systems.EnemySystem
	projectile *systems.ProjectileSystem
	mines      *systems.MineSystem
	crystals   *systems.CrystalSystem
	loot       *systems.LootSystem
	depots     *systems.DepotSystem
	cards      *systems.CardSystem
	effects    *systems.EffectsSystem
	lifetime   *systems.LifetimeSystem

	// glossaryReturn 关闭图鉴后回到的阶段
	glossaryReturn game.Phase

	snapshot game.Snapshot
}

// NewGameScene 创建处于准备阶段的游戏
// catalog 为 nil 时使用内置目录
func NewGameScene(catalog *config.Catalog, seed int64) *GameScene {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	s := &GameScene{catalog: catalog, seed: seed}
	s.reset()
	return s
}

// reset 丢弃当前对局，重新创建世界和系统
func (s *GameScene) reset() {
	w := game.NewWorld(s.catalog, s.seed)
	s.world = w

	s.locomotion = systems.NewLocomotionSystem(w)
	s.editor = systems.NewTrackEditorSystem(w)
	s.waves = systems.NewWaveDirectorSystem(w)
	s.grid = systems.NewGridSystem(w)
	s.wagons = systems.NewWagonSystem(w)
	s.drones = systems.NewDroneSystem(w)
	s.autofire = systems.NewAutoFireSystem(w)
	s.enemies = systems.NewEnemySystem(w)
	s.projectile = systems.NewProjectileSystem(w)
	s.mines = systems.NewMineSystem(w)
	s.crystals = systems.NewCrystalSystem(w)
	s.loot = systems.NewLootSystem(w)
	s.depots = systems.NewDepotSystem(w, s.wagons)
	s.cards = systems.NewCardSystem(w, s.wagons)
	s.effects = systems.NewEffectsSystem(w.EntityManager)
	s.lifetime = systems.NewLifetimeSystem(w.EntityManager)

	s.loot.OnLevelUp = s.cards.OnLevelUp
	s.glossaryReturn = game.PhasePlay
	s.snapshot = game.BuildSnapshot(w)
}

// Restart 放弃当前对局回到准备阶段，保留静音和摄像机偏好
func (s *GameScene) Restart() {
	muted, camera := s.world.State.Muted, s.world.State.CameraMode
	s.seed++
	s.reset()
	s.world.State.Muted = muted
	s.world.State.CameraMode = camera
	s.snapshot = game.BuildSnapshot(s.world)
	log.Printf("[GameScene] restarted (seed %d)", s.seed)
}

// World 返回当前世界，供测试和调试工具使用
func (s *GameScene) World() *game.World {
	return s.world
}

// Phase 当前阶段
func (s *GameScene) Phase() game.Phase {
	return s.world.State.Phase
}

// StartGame 按开局选择初始化对局并进入游戏阶段
func (s *GameScene) StartGame(engineID, wagon, difficulty string) error {
	w := s.world
	st := w.State
	if st.Phase != game.PhaseSetup {
		return fmt.Errorf("cannot start game in phase %s", st.Phase)
	}

	engine, ok := s.catalog.Engine(engineID)
	if !ok {
		return fmt.Errorf("unknown engine %q", engineID)
	}
	diff, ok := s.catalog.Difficulty(difficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	startWagon, err := types.ParseWagonType(wagon)
	if err != nil {
		return fmt.Errorf("failed to parse starting wagon: %w", err)
	}

	trackID, err := entities.NewTrackEntity(w.EntityManager, engine.Track.Points())
	if err != nil {
		return fmt.Errorf("failed to create track for engine %q: %w", engineID, err)
	}
	trainID, err := entities.NewLocomotiveEntity(w.EntityManager, engine)
	if err != nil {
		return fmt.Errorf("failed to create locomotive: %w", err)
	}
	w.TrackID, w.TrainID = trackID, trainID
	w.MarkTrackChanged()

	train, _ := w.Train()
	systems.InitHistory(train)
	w.RefreshWagonCapacity()

	st.EngineID = engine.ID
	st.DifficultyID = diff.ID
	st.DifficultyMult = diff.Multiplier
	st.SpawnRateBase = diff.SpawnRateBase
	st.Scrap = config.StartScrap
	if engine.Scrap > 0 {
		st.Scrap = engine.Scrap
	}

	if _, ok := s.wagons.AddWagon(startWagon); !ok {
		return fmt.Errorf("failed to attach starting wagon %q", wagon)
	}

	st.Phase = game.PhasePlay
	s.snapshot = game.BuildSnapshot(w)
	log.Printf("[GameScene] game started: engine=%s wagon=%s difficulty=%s", engine.ID, startWagon, diff.ID)
	return nil
}

// Update 推进一个 tick，非游戏阶段直接返回
func (s *GameScene) Update() {
	w := s.world
	st := w.State
	if st.Phase != game.PhasePlay {
		return
	}

	st.Tick++
	s.step("actions", func() { w.Actions.Drain(st.Tick) })
	s.step("editor", s.editor.Update)
	s.step("locomotion", s.locomotion.Update)
	s.step("waves", s.waves.Update)
	s.step("grid", s.grid.Update)
	s.step("wagons", s.wagons.Update)
	s.step("drones", s.drones.Update)
	s.step("autofire", s.autofire.Update)
	s.step("enemies", s.enemies.Update)
	s.step("projectiles", s.projectile.Update)
	s.step("deaths", func() { s.enemies.ResolveDeaths() })
	s.step("mines", s.mines.Update)
	s.step("crystals", s.crystals.Update)
	s.step("loot", s.loot.Update)
	s.step("depots", s.depots.Update)
	s.step("effects", s.effects.Update)
	s.step("lifetime", s.lifetime.Update)
	w.EntityManager.RemoveMarkedEntities()

	if health, ok := w.TrainHealth(); ok && health.HP <= 0 && !st.GodMode {
		st.Phase = game.PhaseGameOver
		log.Printf("[GameScene] game over: wave %d, level %d, score %d", st.Wave, st.Level, st.Score)
	}

	s.snapshot = game.BuildSnapshot(w)
}

// step 运行一个系统，单个系统的 panic 只丢弃该系统本 tick 的结果
func (s *GameScene) step(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[GameScene] recovered from panic in %s: %v", name, r)
		}
	}()
	fn()
}

// Snapshot 最近一次 Update 或命令之后的状态快照
func (s *GameScene) Snapshot() game.Snapshot {
	return s.snapshot
}

// refresh 命令修改状态后重建快照，暂停阶段界面也能看到变化
func (s *GameScene) refresh() {
	s.snapshot = game.BuildSnapshot(s.world)
}

// SelectCard 选择第 index 张待选卡牌
func (s *GameScene) SelectCard(index int) bool {
	ok := s.cards.SelectCard(index)
	if ok {
		s.refresh()
	}
	return ok
}

// ApplyCard 直接应用一张卡牌
func (s *GameScene) ApplyCard(card config.CardDef) bool {
	st := s.world.State
	if st.Phase != game.PhasePlay && st.Phase != game.PhaseLevelUp {
		return false
	}
	ok := s.cards.ApplyCard(card)
	if ok {
		s.refresh()
	}
	return ok
}

// RerollCards 花费废料重抽
func (s *GameScene) RerollCards() bool {
	ok := s.cards.RerollCards()
	if ok {
		s.refresh()
	}
	return ok
}

// ToggleCamera 在跟随和俯瞰之间切换
func (s *GameScene) ToggleCamera() utils.CameraMode {
	st := s.world.State
	if st.CameraMode == utils.CameraFollow {
		st.CameraMode = utils.CameraBirdseye
	} else {
		st.CameraMode = utils.CameraFollow
	}
	s.refresh()
	return st.CameraMode
}

// SetCameraMode 恢复保存的摄像机模式
func (s *GameScene) SetCameraMode(mode utils.CameraMode) {
	s.world.State.CameraMode = mode
	s.refresh()
}

// ToggleGodMode 切换无敌，只在游戏阶段生效
func (s *GameScene) ToggleGodMode() bool {
	st := s.world.State
	if !st.IsPlaying() {
		return st.GodMode
	}
	st.GodMode = !st.GodMode
	label := "GOD MODE OFF"
	if st.GodMode {
		label = "GOD MODE ON"
	}
	s.floater(label, entities.ColorWarning, 24)
	s.refresh()
	return st.GodMode
}

// ToggleMute 切换静音标记
func (s *GameScene) ToggleMute() bool {
	st := s.world.State
	st.Muted = !st.Muted
	s.refresh()
	return st.Muted
}

// SetMuted 恢复保存的静音设置
func (s *GameScene) SetMuted(muted bool) {
	s.world.State.Muted = muted
	s.refresh()
}

// AdvanceWave 让当前波次在下一个 tick 结束
func (s *GameScene) AdvanceWave() {
	if !s.world.State.IsPlaying() {
		return
	}
	s.waves.AdvanceWave()
}

// ForceLevelUp 立即升一级
func (s *GameScene) ForceLevelUp() {
	if !s.world.State.IsPlaying() {
		return
	}
	s.cards.ForceLevelUp()
	s.refresh()
}

// DebugSpawn 在机车附近生成指定种类的敌人
func (s *GameScene) DebugSpawn(enemyType string) error {
	if !s.world.State.IsPlaying() {
		return fmt.Errorf("cannot spawn in phase %s", s.world.State.Phase)
	}
	t, err := types.ParseEnemyType(enemyType)
	if err != nil {
		return fmt.Errorf("failed to parse enemy type: %w", err)
	}
	if _, ok := s.waves.DebugSpawn(t); !ok {
		return fmt.Errorf("no catalog entry for enemy %q", enemyType)
	}
	s.refresh()
	return nil
}

// DebugGrantScrap 增加废料
func (s *GameScene) DebugGrantScrap(n int) {
	if !s.world.State.IsPlaying() || n <= 0 {
		return
	}
	s.world.State.AddScrap(n)
	s.floater(fmt.Sprintf("+%d SCRAP", n), entities.ColorScrap, 20)
	s.refresh()
}

// OpenGlossary 打开图鉴，暂停模拟
func (s *GameScene) OpenGlossary() bool {
	st := s.world.State
	if st.Phase != game.PhasePlay && st.Phase != game.PhaseLevelUp {
		return false
	}
	s.glossaryReturn = st.Phase
	st.Phase = game.PhaseGlossary
	s.refresh()
	return true
}

// CloseGlossary 关闭图鉴，回到打开前的阶段
func (s *GameScene) CloseGlossary() bool {
	st := s.world.State
	if st.Phase != game.PhaseGlossary {
		return false
	}
	st.Phase = s.glossaryReturn
	s.refresh()
	return true
}

// ShiftGear 换挡，返回新的档位；非游戏阶段档位不变
func (s *GameScene) ShiftGear(delta int) int {
	if !s.world.State.IsPlaying() {
		return s.snapshot.Gear
	}
	gear := s.locomotion.ShiftGear(delta)
	s.refresh()
	return gear
}

// FireSalvo 消耗废料发射齐射
func (s *GameScene) FireSalvo() bool {
	if !s.world.State.IsPlaying() {
		return false
	}
	return s.autofire.FireSalvo()
}

// PickNode 返回 pos 附近的轨道节点下标，没有时返回 -1
func (s *GameScene) PickNode(pos utils.Vec2) int {
	return s.editor.PickNode(pos)
}

// BeginDrag 开始拖拽 pos 附近的节点
func (s *GameScene) BeginDrag(pos utils.Vec2) systems.EditResult {
	if !s.world.State.IsPlaying() {
		return systems.EditResult{}
	}
	res := s.editor.BeginDrag(pos)
	s.refresh()
	return res
}

// UpdateDrag 移动拖拽虚影
func (s *GameScene) UpdateDrag(pos utils.Vec2) systems.EditResult {
	if !s.world.State.IsPlaying() {
		return systems.EditResult{}
	}
	res := s.editor.UpdateDrag(pos)
	s.refresh()
	return res
}

// EndDrag 提交拖拽；非游戏阶段只放弃拖拽
func (s *GameScene) EndDrag() systems.EditResult {
	if !s.world.State.IsPlaying() {
		s.CancelDrag()
		return systems.EditResult{}
	}
	res := s.editor.EndDrag()
	s.refresh()
	return res
}

// CancelDrag 放弃拖拽
func (s *GameScene) CancelDrag() {
	s.editor.CancelDrag()
	s.refresh()
}

// AddNode 在 pos 处插入轨道节点
func (s *GameScene) AddNode(pos utils.Vec2) systems.EditResult {
	if !s.world.State.IsPlaying() {
		return systems.EditResult{}
	}
	res := s.editor.AddNode(pos)
	s.refresh()
	return res
}

// DeleteNode 删除 pos 附近的轨道节点
func (s *GameScene) DeleteNode(pos utils.Vec2) systems.EditResult {
	if !s.world.State.IsPlaying() {
		return systems.EditResult{}
	}
	res := s.editor.DeleteNode(pos)
	s.refresh()
	return res
}

// CardPool 当前可抽取的卡牌，供图鉴界面展示
func (s *GameScene) CardPool() []config.CardDef {
	return s.cards.CardPool()
}

func (s *GameScene) floater(text string, c color.RGBA, size float64) {
	if _, err := entities.NewFloaterEntity(s.world.EntityManager, s.world.TrainPos(), text, c, size); err != nil {
		log.Printf("[GameScene] failed to spawn floater %q: %v", text, err)
	}
}
