package components

import "github.com/gonewx/loopline/pkg/types"

// WagonComponent 车厢状态
// 车厢位置由 LocomotionSystem 根据机车历史每 tick 重新计算
type WagonComponent struct {
	Type     types.WagonType
	Index    int // 在车厢链中的位置
	Level    int // 1..MaxLevel，只增不减
	MaxLevel int
	Stats    types.WagonStats

	T           float64 // 当前轨道参数
	Angle       float64 // 车身朝向
	TurretAngle float64 // 炮塔朝向
	Weight      float64 // 影响机车加速度

	Cooldown    float64 // 剩余冷却
	MaxCooldown float64 // 上次开火设置的冷却
	Targeting   types.TargetingStrategy

	PassiveTimer int // 被动效果计时（采矿、维修、护盾回复）
}
