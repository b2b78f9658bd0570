package entities

import (
	"fmt"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// NewTrackEntity 创建轨道实体
// 控制点按顺序首尾相连构成闭合样条
func NewTrackEntity(em *ecs.EntityManager, points []utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if len(points) < config.MinTrackNodes {
		return 0, fmt.Errorf("track needs at least %d nodes, got %d", config.MinTrackNodes, len(points))
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewTrackComponent(points))
	return id, nil
}

// NewLocomotiveEntity 根据机车定义创建机车实体
//
// 机车的速度、磁吸和撞击加成来自机车定义，血量和护盾放在 HealthComponent 中，
// 位置由 LocomotionSystem 每 tick 根据轨道参数重新计算
func NewLocomotiveEntity(em *ecs.EntityManager, engine config.EngineDef) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if engine.HP <= 0 {
		return 0, fmt.Errorf("engine %q has invalid hp %v", engine.ID, engine.HP)
	}

	id := em.CreateEntity()
	train := components.NewTrainComponent(engine.Speed, config.LocomotiveBaseDamage, engine.Magnet, engine.Ram)
	train.Gear = config.StartGear
	train.Speed = config.StartSpeed

	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, train)
	ecs.AddComponent(em, id, &components.HealthComponent{
		HP:        engine.HP,
		MaxHP:     engine.HP,
		Shield:    engine.Shield,
		MaxShield: engine.Shield,
	})
	return id, nil
}

// NewWagonEntity 创建车厢实体
// maxLevel <= 0 时使用默认最高等级
func NewWagonEntity(em *ecs.EntityManager, wagonType types.WagonType, index int, weight float64, maxLevel int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if wagonType == types.WagonUnknown {
		return 0, fmt.Errorf("cannot create wagon of unknown type")
	}
	if maxLevel <= 0 {
		maxLevel = config.WagonMaxLevel
	}

	profile := config.GetWagonProfile(wagonType)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.WagonComponent{
		Type:      wagonType,
		Index:     index,
		Level:     1,
		MaxLevel:  maxLevel,
		Stats:     profile.Stats,
		Weight:    weight,
		Targeting: profile.Targeting,
	})
	return id, nil
}
