package config

// 窗口与界面布局常量
// 逻辑分辨率固定，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth / GameWindowHeight 逻辑屏幕尺寸
	GameWindowWidth  = 1280
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Loopline"

	// HUDPadding 状态栏与屏幕边缘的间距
	HUDPadding = 12.0

	// HUDBarWidth / HUDBarHeight 血条和经验条尺寸
	HUDBarWidth  = 240.0
	HUDBarHeight = 12.0

	// CardWidth / CardHeight 升级卡牌尺寸
	CardWidth   = 260.0
	CardHeight  = 200.0
	CardSpacing = 30.0

	// FollowZoom 跟随模式下的缩放
	FollowZoom = 1.0

	// TrackNodeRadius 编辑器中轨道节点的绘制半径
	TrackNodeRadius = 8.0

	// TrackSamplesPerSegment 绘制轨道时每段样条的采样数
	TrackSamplesPerSegment = 16
)
