package types

import "fmt"

// WagonType 定义车厢的种类
type WagonType int

const (
	// WagonUnknown 未知车厢
	WagonUnknown WagonType = iota

	WagonGunner     // 机枪
	WagonSniper     // 狙击
	WagonFlame      // 火焰
	WagonShield     // 护盾（被动）
	WagonMiner      // 采矿（被动产出废料）
	WagonTesla      // 电弧（瞬发，无需瞄准锁定）
	WagonMortar     // 迫击炮
	WagonCryo       // 冰冻
	WagonDrone      // 无人机巢
	WagonSpike      // 尖刺（接触伤害）
	WagonFabricator // 工坊（为相邻车厢提供伤害加成）
	WagonStasis     // 停滞场（范围减速）
	WagonMedic      // 医疗（被动回血）
	WagonRailgun    // 轨道炮
	WagonAcid       // 酸液
	WagonGravity    // 引力
	WagonThumper    // 震荡锤（冲击波）
	WagonMissile    // 导弹（追踪）
	WagonCluster    // 集束（分裂弹）
	WagonOmni       // 全向（十字齐射）

	wagonTypeCount
)

var wagonTypeNames = [wagonTypeCount]string{
	WagonUnknown:    "unknown",
	WagonGunner:     "gunner",
	WagonSniper:     "sniper",
	WagonFlame:      "flame",
	WagonShield:     "shield",
	WagonMiner:      "miner",
	WagonTesla:      "tesla",
	WagonMortar:     "mortar",
	WagonCryo:       "cryo",
	WagonDrone:      "drone",
	WagonSpike:      "spike",
	WagonFabricator: "fabricator",
	WagonStasis:     "stasis",
	WagonMedic:      "medic",
	WagonRailgun:    "railgun",
	WagonAcid:       "acid",
	WagonGravity:    "gravity",
	WagonThumper:    "thumper",
	WagonMissile:    "missile",
	WagonCluster:    "cluster",
	WagonOmni:       "omni",
}

// String 返回配置文件中使用的标识符
func (t WagonType) String() string {
	if t < 0 || t >= wagonTypeCount {
		return fmt.Sprintf("WagonType(%d)", int(t))
	}
	return wagonTypeNames[t]
}

// ParseWagonType 将标识符解析为 WagonType
func ParseWagonType(s string) (WagonType, error) {
	for i, name := range wagonTypeNames {
		if WagonType(i) != WagonUnknown && name == s {
			return WagonType(i), nil
		}
	}
	return WagonUnknown, fmt.Errorf("unknown wagon type %q", s)
}

// AllWagonTypes 返回所有有效的车厢类型（不含 WagonUnknown）
func AllWagonTypes() []WagonType {
	out := make([]WagonType, 0, wagonTypeCount-1)
	for t := WagonGunner; t < wagonTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// UnmarshalText 支持在 YAML 中直接使用标识符
func (t *WagonType) UnmarshalText(text []byte) error {
	parsed, err := ParseWagonType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText 输出标识符
func (t WagonType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TargetingStrategy 车厢的索敌策略
type TargetingStrategy int

const (
	TargetNearest   TargetingStrategy = iota // 最近
	TargetStrongest                          // 血量最高
	TargetClustered                          // 最密集
)

func (s TargetingStrategy) String() string {
	switch s {
	case TargetNearest:
		return "nearest"
	case TargetStrongest:
		return "strongest"
	case TargetClustered:
		return "clustered"
	default:
		return fmt.Sprintf("TargetingStrategy(%d)", int(s))
	}
}
