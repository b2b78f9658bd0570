package systems

import (
	"fmt"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// LootSystem 掉落物系统
// 磁吸范围内的掉落物飞向机车，进入拾取半径后结算
type LootSystem struct {
	world *game.World

	// OnLevelUp 升级时的回调，参数为本次升级的次数
	OnLevelUp func(levels int)
}

// NewLootSystem 创建掉落物系统
func NewLootSystem(world *game.World) *LootSystem {
	return &LootSystem{world: world}
}

// Update 移动并拾取掉落物
func (s *LootSystem) Update() {
	w := s.world
	em := w.EntityManager
	train, ok := w.Train()
	if !ok {
		return
	}
	trainPos := w.TrainPos()

	for _, id := range ecs.GetEntitiesWith2[*components.LootComponent, *components.PositionComponent](em) {
		loot, _ := ecs.GetComponent[*components.LootComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		d := pos.Vec().Dist(trainPos)
		if d >= train.Magnet {
			continue
		}
		pos.Set(pos.Vec().Add(trainPos.Sub(pos.Vec()).Scale(config.LootMagnetLerp)))
		if d < config.LootCollectRadius {
			s.Collect(id, loot, pos.Vec())
		}
	}
}

// Collect 结算一个掉落物并销毁
// 经验可能触发升级，此时调用 OnLevelUp
func (s *LootSystem) Collect(id ecs.EntityID, loot *components.LootComponent, at utils.Vec2) {
	w := s.world
	switch loot.Kind {
	case components.LootXP:
		spawnFloater(w, at, fmt.Sprintf("+%d XP", loot.Value), entities.ColorXP, 0)
		if levels := w.State.GainXP(loot.Value); levels > 0 && s.OnLevelUp != nil {
			s.OnLevelUp(levels)
		}
	default:
		w.State.AddScrap(loot.Value)
		spawnFloater(w, at, fmt.Sprintf("+%d", loot.Value), entities.ColorScrap, 0)
	}
	w.EntityManager.DestroyEntity(id)
}
