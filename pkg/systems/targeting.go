package systems

import (
	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// candidate 射程内的一个可攻击敌人
type candidate struct {
	id   ecs.EntityID
	pos  utils.Vec2
	dist float64
	hp   float64
}

// candidatesInRange 通过空间网格查询射程内仍然存活的敌人
// 网格在本 tick 较早时重建，这里使用敌人的当前位置重新计算距离
func candidatesInRange(em *ecs.EntityManager, grid *utils.SpatialGrid, origin utils.Vec2, rng float64) []candidate {
	entries := grid.Query(origin.X, origin.Y, rng)
	out := make([]candidate, 0, len(entries))
	for _, e := range entries {
		if !em.IsAlive(e.ID) {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](em, e.ID)
		if !ok || health.IsDead() {
			continue
		}
		pos, ok := positionOf(em, e.ID)
		if !ok {
			continue
		}
		d := origin.Dist(pos)
		if d > rng {
			continue
		}
		out = append(out, candidate{id: e.ID, pos: pos, dist: d, hp: health.HP})
	}
	return out
}

// TargetNearest 射程内最近的敌人
func TargetNearest(em *ecs.EntityManager, grid *utils.SpatialGrid, origin utils.Vec2, rng float64) (ecs.EntityID, bool) {
	var best ecs.EntityID
	bestD := rng
	found := false
	for _, c := range candidatesInRange(em, grid, origin, rng) {
		if !found || c.dist < bestD {
			best, bestD, found = c.id, c.dist, true
		}
	}
	return best, found
}

// TargetStrongest 射程内血量最高的敌人，血量相同时取较近者
func TargetStrongest(em *ecs.EntityManager, grid *utils.SpatialGrid, origin utils.Vec2, rng float64) (ecs.EntityID, bool) {
	var best candidate
	found := false
	for _, c := range candidatesInRange(em, grid, origin, rng) {
		if !found || c.hp > best.hp || (c.hp == best.hp && c.dist < best.dist) {
			best, found = c, true
		}
	}
	return best.id, found
}

// TargetClustered 射程内周围邻居最多的敌人，没有任何敌人有邻居时退化为最近
func TargetClustered(em *ecs.EntityManager, grid *utils.SpatialGrid, origin utils.Vec2, rng float64) (ecs.EntityID, bool) {
	var best ecs.EntityID
	bestN := 0
	for _, c := range candidatesInRange(em, grid, origin, rng) {
		n := 0
		for _, e := range grid.Query(c.pos.X, c.pos.Y, config.ClusterRadius) {
			if e.ID != c.id && em.IsAlive(e.ID) {
				n++
			}
		}
		if n > bestN {
			best, bestN = c.id, n
		}
	}
	if bestN > 0 {
		return best, true
	}
	return TargetNearest(em, grid, origin, rng)
}

// FindTarget 按索敌策略选择目标
func FindTarget(em *ecs.EntityManager, grid *utils.SpatialGrid, strategy types.TargetingStrategy, origin utils.Vec2, rng float64) (ecs.EntityID, bool) {
	switch strategy {
	case types.TargetStrongest:
		return TargetStrongest(em, grid, origin, rng)
	case types.TargetClustered:
		return TargetClustered(em, grid, origin, rng)
	default:
		return TargetNearest(em, grid, origin, rng)
	}
}
