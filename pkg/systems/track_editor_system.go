package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// EditResult 编辑操作的结果
// 被拒绝的操作不修改任何状态，Reason 给出原因
type EditResult struct {
	OK     bool
	Reason components.RejectReason
	Cost   int
}

func rejected(reason components.RejectReason) EditResult {
	return EditResult{Reason: reason}
}

// TrackEditorSystem 轨道编辑器
//
// 拖拽节点时只更新虚影位置（DragState），松开后才提交：
// 合法则让节点缓动到新位置并扣除费用，不合法则回退并提示原因。
// 新增和删除节点立即生效。
type TrackEditorSystem struct {
	world *game.World
}

// NewTrackEditorSystem 创建轨道编辑器
func NewTrackEditorSystem(world *game.World) *TrackEditorSystem {
	return &TrackEditorSystem{world: world}
}

// Update 节点缓动：每 tick 向目标移动剩余距离的 20%
func (s *TrackEditorSystem) Update() {
	track, ok := s.world.Track()
	if !ok {
		return
	}
	for i := range track.Nodes {
		n := &track.Nodes[i]
		if !n.HasTarget {
			continue
		}
		pos, done := utils.Approach(n.Pos, n.Target, config.NodeEaseFactor, config.NodeEaseSnap)
		n.Pos = pos
		if done {
			n.HasTarget = false
		}
		s.world.MarkTrackChanged()
	}
}

// PickNode 返回 pos 拾取半径内的第一个节点，没有时返回 -1
func (s *TrackEditorSystem) PickNode(pos utils.Vec2) int {
	track, ok := s.world.Track()
	if !ok {
		return -1
	}
	for i, n := range track.Nodes {
		if n.Pos.Dist(pos) < config.NodePickRadius {
			return i
		}
	}
	return -1
}

// IsNodeLocked 机车或任一车厢所在线段与节点 i 的环形下标距离不超过 1 时，节点被锁定
func (s *TrackEditorSystem) IsNodeLocked(i int) bool {
	track, ok := s.world.Track()
	if !ok {
		return false
	}
	n := track.Len()
	if n == 0 {
		return false
	}

	near := func(t float64) bool {
		seg := int(math.Floor(t)) % n
		if seg < 0 {
			seg += n
		}
		d := (seg - i) % n
		if d < 0 {
			d += n
		}
		return d <= 1 || d >= n-1
	}

	train, ok := s.world.Train()
	if !ok {
		return false
	}
	if near(train.T) {
		return true
	}
	for _, id := range train.Wagons {
		if wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id); ok && near(wagon.T) {
			return true
		}
	}
	return false
}

// BeginDrag 开始拖拽 pos 处的节点
func (s *TrackEditorSystem) BeginDrag(pos utils.Vec2) EditResult {
	track, ok := s.world.Track()
	if !ok {
		return rejected(components.ReasonNoTarget)
	}
	idx := s.PickNode(pos)
	if idx < 0 {
		return rejected(components.ReasonNoTarget)
	}

	node := track.Nodes[idx]
	if node.Fixed {
		spawnFloater(s.world, node.Pos, string(components.ReasonFixedNode), entities.ColorDamage, 10)
		return rejected(components.ReasonFixedNode)
	}
	if s.IsNodeLocked(idx) {
		spawnFloater(s.world, node.Pos, string(components.ReasonTrainOnTrack), entities.ColorDamage, 10)
		return rejected(components.ReasonTrainOnTrack)
	}

	track.Drag = components.DragState{Active: true, Index: idx, Pos: node.Pos, Valid: true}
	return EditResult{OK: true}
}

// UpdateDrag 更新虚影位置并重新校验
//
// 候选位置会吸附到 30 像素内的站台接口。与相邻节点距离过近时虚影标记为非法，
// 其余校验顺序：转角过急、机车占用、废料不足，后者覆盖前者的原因。
func (s *TrackEditorSystem) UpdateDrag(pos utils.Vec2) EditResult {
	track, ok := s.world.Track()
	if !ok || !track.Drag.Active {
		return rejected(components.ReasonNoTarget)
	}
	idx := track.Drag.Index
	node := track.Nodes[idx]

	if node.Fixed {
		spawnFloater(s.world, node.Pos, string(components.ReasonFixedNode), entities.ColorDamage, 10)
		track.Drag = components.DragState{}
		return rejected(components.ReasonFixedNode)
	}

	candidate := s.snapToConnector(pos)

	n := track.Len()
	prev := track.Nodes[(idx-1+n)%n].Pos
	next := track.Nodes[(idx+1)%n].Pos
	if candidate.Dist(prev) < config.NodeMinSpacing || candidate.Dist(next) < config.NodeMinSpacing {
		track.Drag = components.DragState{Active: true, Index: idx, Pos: candidate, Reason: components.ReasonTooClose}
		return rejected(components.ReasonTooClose)
	}

	drag := components.DragState{Active: true, Index: idx, Pos: candidate, Valid: true}

	if utils.TurnAngle(prev, candidate, next) > config.MaxTurnAngle {
		drag.Valid = false
		drag.Reason = components.ReasonTooSharp
	}

	if s.IsNodeLocked(idx) || !s.world.State.IsPlaying() {
		drag.Valid = false
		drag.Reason = components.ReasonTrainOnTrack
	}

	points := track.Points()
	oldLen := utils.SplineLength(points)
	points[idx] = candidate
	diff := utils.SplineLength(points) - oldLen
	if diff > 0 {
		drag.Cost = int(math.Ceil(diff * config.TrackCostPerPixel))
		if s.world.State.Scrap < drag.Cost {
			drag.Valid = false
			drag.Reason = components.ReasonNoScrap
		}
	}

	track.Drag = drag
	return EditResult{OK: drag.Valid, Reason: drag.Reason, Cost: drag.Cost}
}

// EndDrag 松开拖拽：合法则提交，否则回退
func (s *TrackEditorSystem) EndDrag() EditResult {
	track, ok := s.world.Track()
	if !ok || !track.Drag.Active {
		return rejected(components.ReasonNoTarget)
	}
	drag := track.Drag
	track.Drag = components.DragState{}

	if !drag.Valid {
		reason := drag.Reason
		if reason == components.ReasonNone {
			reason = "INVALID"
		}
		spawnFloater(s.world, drag.Pos, string(reason), entities.ColorDamage, 12)
		return rejected(drag.Reason)
	}

	node := &track.Nodes[drag.Index]
	if drag.Cost > 0 {
		if !s.world.State.SpendScrap(drag.Cost) {
			spawnFloater(s.world, drag.Pos, string(components.ReasonNoScrap), entities.ColorDamage, 12)
			return rejected(components.ReasonNoScrap)
		}
		spawnFloater(s.world, node.Pos, fmt.Sprintf("-%d", drag.Cost), entities.ColorDamage, 12)
	}

	node.Target = drag.Pos
	node.HasTarget = true

	if s.nearConnector(drag.Pos, config.NodeFixRadius) {
		node.Fixed = true
		spawnFloater(s.world, drag.Pos, "CONNECTED", entities.ColorHeal, 12)
	}

	s.afterCommit()
	log.Printf("[TrackEditorSystem] node %d moved to (%.0f, %.0f) for %d scrap", drag.Index, drag.Pos.X, drag.Pos.Y, drag.Cost)
	return EditResult{OK: true, Cost: drag.Cost}
}

// CancelDrag 放弃当前拖拽，不产生任何效果
func (s *TrackEditorSystem) CancelDrag() {
	if track, ok := s.world.Track(); ok {
		track.Drag = components.DragState{}
	}
}

// AddNode 在 pos 附近的轨道上插入节点
//
// 进行中的拖拽会先被取消。
// 插入后重新定位机车的轨道参数并把历史重置为当前一点，车厢在历史重新积累前保持原位
func (s *TrackEditorSystem) AddNode(pos utils.Vec2) EditResult {
	track, ok := s.world.Track()
	if !ok {
		return rejected(components.ReasonNoTarget)
	}
	track.Drag = components.DragState{}
	points := track.Points()
	t, d := utils.NearestSample(points, pos, config.AddNodeSampleStep)
	if d >= config.NodePickRadius {
		return rejected(components.ReasonNoTarget)
	}
	if s.world.State.Scrap < config.NodeCost {
		spawnFloater(s.world, pos, string(components.ReasonNoScrap), entities.ColorDamage, 12)
		return rejected(components.ReasonNoScrap)
	}
	if pos.Len() > s.world.State.WorldRadius {
		spawnFloater(s.world, pos, string(components.ReasonOutOfBounds), entities.ColorDamage, 12)
		return rejected(components.ReasonOutOfBounds)
	}

	idx := int(math.Floor(t)) + 1
	n := len(points)
	prev := points[(idx-1+n)%n]
	next := points[idx%n]
	if utils.TurnAngle(prev, pos, next) > config.MaxTurnAngle {
		spawnFloater(s.world, pos, string(components.ReasonTooSharp), entities.ColorDamage, 12)
		return rejected(components.ReasonTooSharp)
	}

	track.Nodes = append(track.Nodes, components.TrackNode{})
	copy(track.Nodes[idx+1:], track.Nodes[idx:])
	track.Nodes[idx] = components.TrackNode{Pos: pos, Target: pos}

	s.world.State.SpendScrap(config.NodeCost)
	spawnFloater(s.world, pos, fmt.Sprintf("-%d", config.NodeCost), entities.ColorDamage, 12)

	if train, ok := s.world.Train(); ok {
		train.T = utils.ClosestT(track.Points(), s.world.TrainPos())
		train.History = []components.HistoryPoint{{Dist: train.TotalDist, T: train.T}}
	}

	s.afterCommit()
	log.Printf("[TrackEditorSystem] node inserted at %d, track now has %d nodes", idx, track.Len())
	return EditResult{OK: true, Cost: config.NodeCost}
}

// DeleteNode 删除 pos 处的节点，固定节点也可以删除
func (s *TrackEditorSystem) DeleteNode(pos utils.Vec2) EditResult {
	track, ok := s.world.Track()
	if !ok {
		return rejected(components.ReasonNoTarget)
	}
	idx := s.PickNode(pos)
	if idx < 0 {
		return rejected(components.ReasonNoTarget)
	}
	if track.Len() <= config.MinTrackNodes {
		spawnFloater(s.world, pos, string(components.ReasonMinNodes), entities.ColorDamage, 12)
		return rejected(components.ReasonMinNodes)
	}
	if !s.world.State.SpendScrap(config.NodeDeleteCost) {
		spawnFloater(s.world, pos, string(components.ReasonNoScrap), entities.ColorDamage, 12)
		return rejected(components.ReasonNoScrap)
	}

	track.Nodes = append(track.Nodes[:idx], track.Nodes[idx+1:]...)
	if track.Drag.Active {
		track.Drag = components.DragState{}
	}

	s.afterCommit()
	log.Printf("[TrackEditorSystem] node %d deleted, track now has %d nodes", idx, track.Len())
	return EditResult{OK: true, Cost: config.NodeDeleteCost}
}

func (s *TrackEditorSystem) afterCommit() {
	s.world.RefreshWagonCapacity()
	s.world.MarkTrackChanged()
}

// snapToConnector 吸附到吸附半径内的站台接口
func (s *TrackEditorSystem) snapToConnector(pos utils.Vec2) utils.Vec2 {
	em := s.world.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.DepotComponent](em) {
		depot, _ := ecs.GetComponent[*components.DepotComponent](em, id)
		if pos.Dist(depot.Entrance) < config.NodeSnapRadius {
			return depot.Entrance
		}
		if pos.Dist(depot.Exit) < config.NodeSnapRadius {
			return depot.Exit
		}
	}
	return pos
}

func (s *TrackEditorSystem) nearConnector(pos utils.Vec2, radius float64) bool {
	em := s.world.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.DepotComponent](em) {
		depot, _ := ecs.GetComponent[*components.DepotComponent](em, id)
		if pos.Dist(depot.Entrance) < radius || pos.Dist(depot.Exit) < radius {
			return true
		}
	}
	return false
}
