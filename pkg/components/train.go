package components

import "github.com/gonewx/loopline/pkg/ecs"

// HistoryPoint 机车位置历史采样点
// 车厢通过累计里程在历史中回溯自己的轨道参数
type HistoryPoint struct {
	Dist float64 // 累计里程
	T    float64 // 轨道参数
}

// TrainComponent 机车状态
// 生命值与护盾存放在同一实体的 HealthComponent 中
type TrainComponent struct {
	T         float64 // 轨道参数，不取模
	TotalDist float64 // 累计行驶里程（倒车时减少）
	Angle     float64 // 车头朝向
	Speed     float64 // 当前速度（像素/tick，可为负）
	Gear      int     // 挡位 -1..3
	MaxSpeed  float64 // 三挡目标速度

	AutoDmg            float64 // 机车基础伤害
	GlobalDmgMult      float64 // 全局伤害倍率
	GlobalFireRateMult float64 // 全局射速倍率
	Magnet             float64 // 磁吸半径

	RamDamage    float64 // 本 tick 的撞击伤害（含加成）
	RamBonus     float64 // 撞击伤害加成（机车、卡牌、站台）
	RamReduction float64 // 撞击减伤比例 0..1

	History []HistoryPoint // 位置历史，Dist 单调不减

	Wagons     []ecs.EntityID // 车厢链，顺序即挂接顺序
	MaxWagons  int            // 车厢上限 = 节点数 + BonusSlots
	BonusSlots int            // 扩展站台提供的额外容量

	FireTimer int // 自动射击计时
}

// NewTrainComponent 创建开局状态的机车
func NewTrainComponent(maxSpeed, autoDmg, magnet, ramBonus float64) *TrainComponent {
	return &TrainComponent{
		MaxSpeed:           maxSpeed,
		AutoDmg:            autoDmg,
		GlobalDmgMult:      1,
		GlobalFireRateMult: 1,
		Magnet:             magnet,
		RamBonus:           ramBonus,
	}
}

// WagonCount 当前车厢数量
func (t *TrainComponent) WagonCount() int {
	return len(t.Wagons)
}

// HasCapacity 是否还能挂接新车厢
func (t *TrainComponent) HasCapacity() bool {
	return len(t.Wagons) < t.MaxWagons
}
