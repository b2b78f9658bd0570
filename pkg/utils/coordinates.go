// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统
//
//   - 世界坐标：轨道、敌人、掉落物所在的平面，世界中心为 (0, 0)
//   - 屏幕坐标：相对于游戏窗口左上角
//
// 转换公式：
//
//	screen = (world - camera.Center) * camera.Zoom + screenSize/2
package utils

// CameraMode 摄像机模式
type CameraMode int

const (
	CameraFollow   CameraMode = iota // 跟随机车
	CameraBirdseye                   // 俯瞰整个世界
)

func (m CameraMode) String() string {
	if m == CameraBirdseye {
		return "birdseye"
	}
	return "follow"
}

// Camera 2D 摄像机
type Camera struct {
	Center Vec2
	Zoom   float64
	Width  float64
	Height float64
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c Camera) WorldToScreen(p Vec2) Vec2 {
	z := c.zoom()
	return Vec2{
		X: (p.X-c.Center.X)*z + c.Width/2,
		Y: (p.Y-c.Center.Y)*z + c.Height/2,
	}
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (c Camera) ScreenToWorld(p Vec2) Vec2 {
	z := c.zoom()
	return Vec2{
		X: (p.X-c.Width/2)/z + c.Center.X,
		Y: (p.Y-c.Height/2)/z + c.Center.Y,
	}
}

func (c Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// BirdseyeZoom 俯瞰模式下恰好容纳半径 worldRadius 的世界所需的缩放
func BirdseyeZoom(width, height, worldRadius float64) float64 {
	minDim := width
	if height < minDim {
		minDim = height
	}
	return minDim / (worldRadius*2 + 100)
}
