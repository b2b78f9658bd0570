package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 界面层的一个画面
// 同一时刻只有一个场景接收 Update 和 Draw
type Scene interface {
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// SceneFactory 按名称创建场景，避免场景之间直接互相引用
type SceneFactory func(name string) Scene

// SceneManager 管理当前活动的场景
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 用工厂函数创建并切换到指定场景
func (sm *SceneManager) Load(name string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] scene factory not set, cannot load %q", name)
		return false
	}
	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] factory returned no scene for %q", name)
		return false
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] switched to %s", name)
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
