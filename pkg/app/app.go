// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
//
// 模拟本身在 scenes.GameScene 中，这里只负责窗口、输入映射和绘制快照。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/scenes"
	"github.com/gonewx/loopline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 场景名称
const (
	SceneSetup = "setup"
	ScenePlay  = "play"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// Engine / Wagon / Difficulty 非空时跳过准备阶段直接开局
	Engine     string
	Wagon      string
	Difficulty string

	// Seed 随机种子，0 表示使用当前时间
	Seed int64

	// CatalogPath 从磁盘加载内容目录，为空时使用嵌入的 data/catalog.yaml
	CatalogPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *SceneManager
	session      *scenes.GameScene
	catalog      *config.Catalog
	settings     *game.SettingsManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	// 设置持久化失败不影响游戏，降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "loopline"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		sceneManager: NewSceneManager(),
		session:      scenes.NewGameScene(catalog, seed),
		catalog:      catalog,
		settings:     settings,
		verbose:      cfg.Verbose,
	}
	a.applySettings()

	a.sceneManager.SetSceneFactory(func(name string) Scene {
		switch name {
		case SceneSetup:
			return newSetupScene(a)
		case ScenePlay:
			return newPlayScene(a)
		}
		return nil
	})

	if cfg.Engine != "" {
		loadout := a.defaultLoadout()
		loadout.Engine = cfg.Engine
		if cfg.Wagon != "" {
			loadout.Wagon = cfg.Wagon
		}
		if cfg.Difficulty != "" {
			loadout.Difficulty = cfg.Difficulty
		}
		if err := a.StartGame(loadout); err != nil {
			return nil, err
		}
	} else {
		a.sceneManager.Load(SceneSetup)
	}

	log.Printf("[App] initialized (seed %d, %d engines, %d cards)", seed, len(catalog.Engines), len(catalog.Cards))
	return a, nil
}

// loadCatalog 加载内容目录，path 为空时读取嵌入资源
func loadCatalog(path string) (*config.Catalog, error) {
	if path != "" {
		c, err := config.LoadCatalogFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
		}
		log.Printf("[Config] catalog loaded from %s", path)
		return c, nil
	}

	c, err := config.LoadEmbeddedCatalog()
	if err != nil {
		log.Printf("[Config] Warning: embedded catalog unavailable: %v (using built-in defaults)", err)
		return config.DefaultCatalog(), nil
	}
	return c, nil
}

// applySettings 把保存的偏好同步到对局
func (a *App) applySettings() {
	s := a.settings.GetSettings()
	a.session.SetMuted(s.Muted)
	if s.CameraMode == utils.CameraBirdseye.String() {
		a.session.SetCameraMode(utils.CameraBirdseye)
	} else {
		a.session.SetCameraMode(utils.CameraFollow)
	}
	if s.Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// Loadout 开局选择
type Loadout struct {
	Engine     string
	Wagon      string
	Difficulty string
}

// defaultLoadout 上一局的开局选择
func (a *App) defaultLoadout() Loadout {
	s := a.settings.GetSettings()
	return Loadout{Engine: s.LastEngine, Wagon: s.LastWagon, Difficulty: s.LastDifficulty}
}

// StartGame 开局并切换到游戏场景
func (a *App) StartGame(l Loadout) error {
	if err := a.session.StartGame(l.Engine, l.Wagon, l.Difficulty); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	a.settings.RememberLoadout(l.Engine, l.Wagon, l.Difficulty)
	a.saveSettings()
	a.sceneManager.Load(ScenePlay)
	return nil
}

// Restart 结束当前对局回到准备界面
func (a *App) Restart() {
	a.session.Restart()
	a.sceneManager.Load(SceneSetup)
}

// saveSettings 持久化偏好，失败只记录日志
func (a *App) saveSettings() {
	snap := a.session.Snapshot()
	a.settings.SetMuted(snap.Muted)
	a.settings.SetCameraMode(snap.CameraMode.String())
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Close 退出前保存设置
func (a *App) Close() {
	a.saveSettings()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回当前对局
func (a *App) Session() *scenes.GameScene {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
