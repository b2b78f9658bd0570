package components

import (
	"image/color"

	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
)

// ProjectileComponent 子弹状态
// 位置和速度分别在 PositionComponent 和 VelocityComponent 中
type ProjectileComponent struct {
	Damage    float64
	Speed     float64
	Size      float64
	Life      int // 剩余 tick，到期时集束弹分裂
	Knockback float64
	Flags     types.ProjectileFlag
	Target    ecs.EntityID // 追踪目标，不持有所有权
	Hostile   bool         // 敌方子弹，只与列车碰撞
	Color     color.RGBA
}
