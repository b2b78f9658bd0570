package components

import "github.com/gonewx/loopline/pkg/ecs"

// LootKind 掉落物种类
type LootKind int

const (
	LootScrap LootKind = iota
	LootXP
)

func (k LootKind) String() string {
	if k == LootXP {
		return "xp"
	}
	return "scrap"
}

// LootComponent 掉落物
type LootComponent struct {
	Kind  LootKind
	Value int
}

// MineComponent 布雷者留下的地雷
type MineComponent struct {
	Radius float64
	Damage float64
}

// CrystalComponent 可收获的水晶，随时间生长
type CrystalComponent struct {
	Stage       int
	GrowthTimer int
}

// DroneComponent 环绕车厢的攻击无人机
type DroneComponent struct {
	Owner     ecs.EntityID // 所属车厢，车厢消失时无人机随之销毁
	Angle     float64
	Radius    float64
	FireTimer int
}
