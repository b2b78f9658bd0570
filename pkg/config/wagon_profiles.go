package config

import "github.com/gonewx/loopline/pkg/types"

// FireMode 车厢的开火方式
type FireMode int

const (
	FirePassive    FireMode = iota // 不开火（被动效果）
	FireProjectile                 // 发射子弹，需要炮塔锁定
	FireInstant                    // 瞬间命中，不需要锁定
	FireShockwave                  // 以自身为中心的冲击波
	FireDrone                      // 释放无人机
	FireCross                      // 十字齐射，不需要锁定
)

// UpgradeTweak 升级时在通用成长（伤害×1.2，射速×1.1）之外的专属成长
type UpgradeTweak struct {
	DamageMult   float64 // 伤害额外倍率（0 表示不变）
	FireRateMult float64 // 射速额外倍率
	RangeMult    float64 // 射程额外倍率
	TurnRateAdd  float64 // 转速增量
	DamageAdd    float64 // 伤害增量（工坊用作加成强度）
}

// WagonProfile 车厢种类的静态参数
type WagonProfile struct {
	Mode            FireMode
	Stats           types.WagonStats     // 初始属性
	Range           float64              // 基础射程（乘以 Stats.Range）
	Cooldown        float64              // 基础冷却（除以 Stats.FireRate）
	ProjectileSpeed float64              // 子弹速度
	DamageFactor    float64              // 相对机车伤害的倍数
	Knockback       float64              // 击退力度
	Flags           types.ProjectileFlag // 命中效果
	Targeting       types.TargetingStrategy
	Upgrade         UpgradeTweak
}

// HasTurret 是否有可旋转炮塔
func (p WagonProfile) HasTurret() bool {
	return p.Mode == FireProjectile
}

func stats(damage, fireRate, rng, turnRate float64) types.WagonStats {
	return types.WagonStats{Damage: damage, FireRate: fireRate, Range: rng, TurnRate: turnRate}
}

var wagonProfiles = map[types.WagonType]WagonProfile{
	types.WagonGunner: {
		Mode: FireProjectile, Stats: stats(1, 1, 1, 0.1),
		Range: 250, Cooldown: 35, ProjectileSpeed: 8, DamageFactor: 1, Knockback: 2,
		Upgrade: UpgradeTweak{FireRateMult: 1.15},
	},
	types.WagonSniper: {
		Mode: FireProjectile, Stats: stats(2, 0.5, 1.5, 0.02),
		Range: 500, Cooldown: 90, ProjectileSpeed: 20, DamageFactor: 5, Knockback: 10,
		Targeting: types.TargetStrongest,
		Upgrade:   UpgradeTweak{TurnRateAdd: 0.02, DamageMult: 1.1},
	},
	types.WagonFlame: {
		Mode: FireProjectile, Stats: stats(1, 5, 0.6, 0.15),
		Range: 180, Cooldown: 5, ProjectileSpeed: 6, DamageFactor: 0.4,
		Upgrade: UpgradeTweak{RangeMult: 1.1, FireRateMult: 1.2},
	},
	types.WagonShield: {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1)},
	types.WagonMiner:  {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1)},
	types.WagonTesla: {
		Mode: FireInstant, Stats: stats(1, 1.2, 0.8, 0.1),
		Range: 150, Cooldown: 45, DamageFactor: 1.5,
		Upgrade: UpgradeTweak{RangeMult: 1.1},
	},
	types.WagonMortar: {
		Mode: FireProjectile, Stats: stats(1.5, 0.3, 1.2, 0.05),
		Range: 400, Cooldown: 120, ProjectileSpeed: 5, DamageFactor: 4, Flags: types.FlagExplosive,
		Targeting: types.TargetClustered,
		Upgrade:   UpgradeTweak{RangeMult: 1.15},
	},
	types.WagonCryo: {
		Mode: FireProjectile, Stats: stats(1, 2, 0.8, 0.1),
		Range: 250, Cooldown: 25, ProjectileSpeed: 7, DamageFactor: 0.5, Flags: types.FlagCryo,
		Upgrade: UpgradeTweak{RangeMult: 1.1},
	},
	types.WagonDrone:      {Mode: FireDrone, Stats: stats(1, 1, 1, 0.1), Cooldown: 300},
	types.WagonSpike:      {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1)},
	types.WagonFabricator: {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1), Upgrade: UpgradeTweak{DamageAdd: 0.1}},
	types.WagonStasis:     {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1), Range: 150, Upgrade: UpgradeTweak{RangeMult: 1.15}},
	types.WagonMedic:      {Mode: FirePassive, Stats: stats(1, 1, 1, 0.1), Cooldown: 120, Upgrade: UpgradeTweak{FireRateMult: 1.2}},
	types.WagonRailgun: {
		Mode: FireProjectile, Stats: stats(3, 0.2, 2, 0.02),
		Range: 600, Cooldown: 120, ProjectileSpeed: 25, DamageFactor: 4, Knockback: 25,
		Targeting: types.TargetStrongest,
		Upgrade:   UpgradeTweak{DamageMult: 1.15},
	},
	types.WagonAcid: {
		Mode: FireProjectile, Stats: stats(1, 3, 0.8, 0.1),
		Range: 200, Cooldown: 10, ProjectileSpeed: 7, DamageFactor: 0.2, Flags: types.FlagAcid,
		Upgrade: UpgradeTweak{RangeMult: 1.1},
	},
	types.WagonGravity: {
		Mode: FireProjectile, Stats: stats(0.5, 0.2, 1.5, 0.05),
		Range: 300, Cooldown: 120, ProjectileSpeed: 10, DamageFactor: 1, Flags: types.FlagGravity,
		Targeting: types.TargetClustered,
		Upgrade:   UpgradeTweak{RangeMult: 1.1},
	},
	types.WagonThumper: {
		Mode: FireShockwave, Stats: stats(1, 0.3, 1, 0.1),
		Range: ShockwaveRadius, Cooldown: 180,
		Upgrade: UpgradeTweak{DamageMult: 1.2},
	},
	types.WagonMissile: {
		Mode: FireProjectile, Stats: stats(1, 1, 1, 0.1),
		Range: 350, Cooldown: 60, ProjectileSpeed: 6, DamageFactor: 1.5, Knockback: 3, Flags: types.FlagHoming,
		Targeting: types.TargetStrongest,
	},
	types.WagonCluster: {
		Mode: FireProjectile, Stats: stats(1, 1, 1, 0.08),
		Range: 350, Cooldown: 150, ProjectileSpeed: 6, DamageFactor: 2, Flags: types.FlagCluster,
		Targeting: types.TargetClustered,
	},
	types.WagonOmni: {
		Mode: FireCross, Stats: stats(1, 1, 1, 0.1),
		Range: 250, Cooldown: 20, ProjectileSpeed: 9, DamageFactor: 0.8,
	},
}

// GetWagonProfile 返回车厢种类的静态参数
// 未知种类返回一个不开火的被动配置
func GetWagonProfile(t types.WagonType) WagonProfile {
	if p, ok := wagonProfiles[t]; ok {
		return p
	}
	return WagonProfile{Mode: FirePassive, Stats: types.DefaultWagonStats()}
}
