package types

// ProjectileFlag 子弹命中效果的位掩码
type ProjectileFlag uint16

const (
	FlagExplosive ProjectileFlag = 1 << iota // 爆炸溅射
	FlagCryo                                 // 冰冻
	FlagAcid                                 // 酸蚀
	FlagGravity                              // 引力牵引
	FlagCluster                              // 命中/到期时分裂
	FlagHoming                               // 追踪
)

// Has 是否包含指定标记
func (f ProjectileFlag) Has(flag ProjectileFlag) bool {
	return f&flag != 0
}

// WagonStats 车厢的属性倍率
type WagonStats struct {
	Damage   float64 `yaml:"damage"`   // 伤害倍率
	FireRate float64 `yaml:"fireRate"` // 射速倍率（冷却 = 基础冷却 / FireRate）
	Range    float64 `yaml:"range"`    // 射程倍率
	TurnRate float64 `yaml:"turnRate"` // 炮塔每 tick 最大转角（弧度）
}

// DefaultWagonStats 默认属性
func DefaultWagonStats() WagonStats {
	return WagonStats{Damage: 1, FireRate: 1, Range: 1, TurnRate: 0.1}
}
