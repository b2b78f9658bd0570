package systems

import (
	"math"
	"sort"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// gearResponse 前进挡的基础速度响应系数（按总重缩放）
var gearResponse = map[int]float64{1: 0.1, 2: 0.08, 3: 0.05}

// gearRatio 前进挡目标速度占最高速度的比例
var gearRatio = map[int]float64{1: 0.25, 2: 0.6, 3: 1}

// LocomotionSystem 机车物理与车厢跟随
//
// 速度按挡位逼近目标速度，再根据轨道局部的像素/参数比换算成参数增量，
// 使节点疏密不影响实际行驶速度。车厢按机车的位置历史摆放在机车后方。
type LocomotionSystem struct {
	world *game.World
}

// NewLocomotionSystem 创建机车物理系统
func NewLocomotionSystem(world *game.World) *LocomotionSystem {
	return &LocomotionSystem{world: world}
}

// InitHistory 开局预填充位置历史：{-i, -0.01i}，i 从 300 到 0
func InitHistory(train *components.TrainComponent) {
	train.History = make([]components.HistoryPoint, 0, config.HistoryPrefill+1)
	for i := config.HistoryPrefill; i >= 0; i-- {
		train.History = append(train.History, components.HistoryPoint{
			Dist: -float64(i),
			T:    -0.01 * float64(i),
		})
	}
	train.T = 0
	train.TotalDist = 0
}

// ShiftGear 换挡，结果限制在 [-1, 3]
func (s *LocomotionSystem) ShiftGear(delta int) int {
	train, ok := s.world.Train()
	if !ok {
		return 0
	}
	train.Gear = max(config.MinGear, min(config.MaxGear, train.Gear+delta))
	return train.Gear
}

// TotalWeight 机车自重加所有车厢重量
func (s *LocomotionSystem) TotalWeight() float64 {
	train, ok := s.world.Train()
	if !ok {
		return config.LocomotiveWeight
	}
	weight := config.LocomotiveWeight
	for _, id := range train.Wagons {
		if wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id); ok {
			weight += wagon.Weight
		}
	}
	return weight
}

// targetSpeed 挡位对应的目标速度和响应系数
func targetSpeed(gear int, maxSpeed, weight float64) (float64, float64) {
	switch {
	case gear < 0:
		return config.ReverseSpeed, config.ReverseResponse
	case gear == 0:
		return 0, config.NeutralBrake
	default:
		return maxSpeed * gearRatio[gear], gearResponse[gear] * config.LocomotiveWeight / weight
	}
}

// Update 推进一 tick 的机车物理
func (s *LocomotionSystem) Update() {
	train, ok := s.world.Train()
	if !ok {
		return
	}
	track, ok := s.world.Track()
	if !ok || track.Len() < 2 {
		return
	}
	points := track.Points()

	weight := s.TotalWeight()
	target, k := targetSpeed(train.Gear, train.MaxSpeed, weight)
	train.Speed += (target - train.Speed) * k
	if train.Gear == 0 && math.Abs(train.Speed) < config.StopThreshold {
		train.Speed = 0
	}
	train.RamDamage = weight*math.Abs(train.Speed)*config.RamSpeedFactor + train.RamBonus

	train.T += train.Speed / math.Max(1, utils.LocalPixelsPerT(points, train.T))
	train.TotalDist += train.Speed

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EntityManager, s.world.TrainID); ok {
		pos.Set(utils.SplinePoint(points, train.T))
	}
	train.Angle = utils.SplineHeading(points, train.T)

	recordHistory(train)
	s.placeWagons(train, points)
}

// recordHistory 追加位置历史并保持 Dist 单调不减
func recordHistory(train *components.TrainComponent) {
	h := train.History
	for len(h) > 0 && h[len(h)-1].Dist > train.TotalDist {
		h = h[:len(h)-1]
	}
	if len(h) == 0 || train.TotalDist-h[len(h)-1].Dist > config.HistoryMinStep {
		h = append(h, components.HistoryPoint{Dist: train.TotalDist, T: train.T})
	}
	if over := len(h) - config.HistoryMaxLen; over > 0 {
		h = append(h[:0], h[over:]...)
	}
	train.History = h
}

// LookupHistory 在历史中查找里程 dist 处的轨道参数
// dist 早于最早记录时返回 false
func LookupHistory(history []components.HistoryPoint, dist float64) (float64, bool) {
	if len(history) == 0 || dist < history[0].Dist {
		return 0, false
	}
	i := sort.Search(len(history), func(i int) bool { return history[i].Dist >= dist })
	if i >= len(history) {
		return history[len(history)-1].T, true
	}
	if i == 0 || history[i].Dist == dist {
		return history[i].T, true
	}
	a, b := history[i-1], history[i]
	ratio := (dist - a.Dist) / (b.Dist - a.Dist)
	return utils.Lerp(a.T, b.T, ratio), true
}

func (s *LocomotionSystem) placeWagons(train *components.TrainComponent, points []utils.Vec2) {
	em := s.world.EntityManager
	for k, id := range train.Wagons {
		wagon, ok := ecs.GetComponent[*components.WagonComponent](em, id)
		if !ok {
			continue
		}
		wagon.Index = k

		t, ok := LookupHistory(train.History, train.TotalDist-config.WagonSpacing*float64(k+1))
		if !ok {
			continue
		}
		wagon.T = t
		wagon.Angle = utils.SplineHeading(points, t)
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			pos.Set(utils.SplinePoint(points, t))
		}
	}
}
