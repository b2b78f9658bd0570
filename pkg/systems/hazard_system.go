package systems

import (
	"log"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// MineSystem 地雷系统
// 机车或任一车厢进入触发半径时引爆
type MineSystem struct {
	world *game.World
}

// NewMineSystem 创建地雷系统
func NewMineSystem(world *game.World) *MineSystem {
	return &MineSystem{world: world}
}

// Update 检查地雷触发
func (s *MineSystem) Update() {
	w := s.world
	em := w.EntityManager
	train, ok := w.Train()
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.MineComponent, *components.PositionComponent](em) {
		mine, _ := ecs.GetComponent[*components.MineComponent](em, id)
		pos, _ := positionOf(em, id)

		triggered := pos.Dist(w.TrainPos()) < mine.Radius
		for _, wid := range train.Wagons {
			if triggered {
				break
			}
			if wpos, ok := positionOf(em, wid); ok && pos.Dist(wpos) < mine.Radius {
				triggered = true
			}
		}
		if !triggered {
			continue
		}

		spawnExplosion(w, pos, entities.ColorDamage, 10)
		damageTrain(w, mine.Damage)
		em.DestroyEntity(id)
	}
}

// CrystalSystem 水晶系统
// 水晶随时间生长，机车经过时收获
type CrystalSystem struct {
	world *game.World
}

// NewCrystalSystem 创建水晶系统
func NewCrystalSystem(world *game.World) *CrystalSystem {
	return &CrystalSystem{world: world}
}

// Update 生长并检查收获
func (s *CrystalSystem) Update() {
	w := s.world
	em := w.EntityManager
	trainPos := w.TrainPos()

	for _, id := range ecs.GetEntitiesWith2[*components.CrystalComponent, *components.PositionComponent](em) {
		crystal, _ := ecs.GetComponent[*components.CrystalComponent](em, id)
		pos, _ := positionOf(em, id)

		if crystal.Stage < config.CrystalMaxStage {
			crystal.GrowthTimer++
			if crystal.GrowthTimer > config.CrystalStageTicks {
				crystal.Stage++
				crystal.GrowthTimer = 0
				spawnExplosion(w, pos, entities.ColorShield, 15)
			}
		}

		if pos.Dist(trainPos) >= config.CrystalHarvestRadius {
			continue
		}
		value := config.CrystalScrapPerStage * (crystal.Stage + 1)
		if _, err := entities.NewLootEntity(em, components.LootScrap, value, pos); err != nil {
			log.Printf("[CrystalSystem] failed to drop scrap: %v", err)
		}
		healTrain(w, config.CrystalHeal)
		spawnFloater(w, pos, "HARVESTED", entities.ColorShield, 20)
		spawnExplosion(w, pos, entities.ColorShield, 25)
		em.DestroyEntity(id)
	}
}

// DroneSystem 无人机系统
// 无人机环绕所属车厢并向附近敌人射击，车厢拆除后随之销毁
type DroneSystem struct {
	world *game.World
}

// NewDroneSystem 创建无人机系统
func NewDroneSystem(world *game.World) *DroneSystem {
	return &DroneSystem{world: world}
}

const droneOrbitSpeed = 0.05

// Update 更新所有无人机
func (s *DroneSystem) Update() {
	w := s.world
	em := w.EntityManager

	for _, id := range ecs.GetEntitiesWith2[*components.DroneComponent, *components.PositionComponent](em) {
		drone, _ := ecs.GetComponent[*components.DroneComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		ownerPos, ok := positionOf(em, drone.Owner)
		if !ok || !em.IsAlive(drone.Owner) {
			em.DestroyEntity(id)
			continue
		}

		drone.Angle += droneOrbitSpeed
		pos.Set(ownerPos.Add(utils.FromAngle(drone.Angle, drone.Radius)))

		if drone.FireTimer > 0 {
			drone.FireTimer--
			continue
		}
		target, ok := TargetNearest(em, w.Grid, pos.Vec(), config.DroneRange)
		if !ok {
			continue
		}
		drone.FireTimer = config.DroneFireInterval
		if _, err := FireAt(w, Shot{From: pos.Vec(), Target: target, Speed: config.DroneShotSpeed, Damage: config.DroneDamage, Color: entities.ColorDrone}); err != nil {
			log.Printf("[DroneSystem] failed to fire: %v", err)
		}
	}
}
