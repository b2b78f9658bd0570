package components

import (
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// EnemyComponent 敌人状态
// 生命值在同一实体的 HealthComponent 中
type EnemyComponent struct {
	Type  types.EnemyType
	Elite bool
	Rare  bool

	Speed float64 // 基础移动速度
	Size  float64 // 碰撞半径
	Score int
	XP    int

	SpeedMult   float64    // 减速效果（冰冻、停滞场），每 tick 重置
	FreezeTimer int        // 冰冻剩余 tick
	AcidTimer   int        // 酸蚀剩余 tick
	BuffTimer   int        // 尖叫者加速剩余 tick
	Knockback   utils.Vec2 // 击退速度，每 tick 衰减
	Velocity    utils.Vec2 // 上一 tick 的位移，用于弹道预判

	SkillTimer   int     // 技能计时（Boss 技能、辅助技能、布雷）
	DashTimer    int     // 冲刺者阶段计时
	Dashing      bool    // 冲刺者是否处于冲刺阶段
	ChargeTimer  int     // 碾压者冲锋剩余 tick
	SwarmAngle   float64 // 蜂群者的环绕相位
	HoldPosition bool    // 射手进入射程后停步
}

// IsBoss 是否为 Boss
func (e *EnemyComponent) IsBoss() bool {
	return e.Type.IsBoss()
}
