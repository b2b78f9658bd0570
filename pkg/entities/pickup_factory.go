package entities

import (
	"fmt"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/utils"
)

// NewLootEntity 创建掉落物（废料或经验）
func NewLootEntity(em *ecs.EntityManager, kind components.LootKind, value int, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if value <= 0 {
		return 0, fmt.Errorf("loot value must be positive, got %d", value)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.LootComponent{Kind: kind, Value: value})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.LootLife, Max: config.LootLife})
	return id, nil
}

// NewMineEntity 创建地雷，寿命结束后自动消失
func NewMineEntity(em *ecs.EntityManager, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.MineComponent{Radius: config.MineRadius, Damage: config.MineDamage})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.MineLife, Max: config.MineLife})
	return id, nil
}

// NewCrystalEntity 创建可收获的水晶
func NewCrystalEntity(em *ecs.EntityManager, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.CrystalComponent{})
	return id, nil
}

// NewDroneEntity 创建环绕车厢的无人机
func NewDroneEntity(em *ecs.EntityManager, owner ecs.EntityID, angle float64, ownerPos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !em.IsAlive(owner) {
		return 0, fmt.Errorf("drone owner %d is not alive", owner)
	}

	pos := ownerPos.Add(utils.FromAngle(angle, config.DroneOrbitRadius))
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.DroneComponent{
		Owner:  owner,
		Angle:  angle,
		Radius: config.DroneOrbitRadius,
	})
	return id, nil
}

// NewDepotEntity 创建站台
// 入口和出口位于站台左右两侧，两端都接入轨道后才会生效
func NewDepotEntity(em *ecs.EntityManager, def config.DepotDef, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if def.ID == "" {
		return 0, fmt.Errorf("depot definition has empty id")
	}

	offset := utils.Vec2{X: config.DepotConnectorOffset}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.DepotComponent{
		Reward:         def.ID,
		Title:          def.Title,
		Entrance:       pos.Sub(offset),
		Exit:           pos.Add(offset),
		LastLapVisited: -1,
	})
	return id, nil
}
