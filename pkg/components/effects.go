package components

import (
	"image/color"

	"github.com/gonewx/loopline/pkg/utils"
)

// FloaterComponent 上浮的提示文字
type FloaterComponent struct {
	Text  string
	Color color.RGBA
	Size  float64
}

// ParticleComponent 粒子
// 闪电粒子不移动，从实体位置画线到 End
type ParticleComponent struct {
	Color     color.RGBA
	Size      float64
	Lightning bool
	End       utils.Vec2
}
