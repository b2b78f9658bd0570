package systems

import (
	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/game"
)

// GridSystem 每 tick 用存活敌人的位置重建空间网格
type GridSystem struct {
	world *game.World
}

// NewGridSystem 创建空间网格系统
func NewGridSystem(world *game.World) *GridSystem {
	return &GridSystem{world: world}
}

// Update 清空网格并重新插入所有存活敌人
func (s *GridSystem) Update() {
	em := s.world.EntityManager
	s.world.Grid.Clear()

	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.world.Grid.Add(id, pos.Vec())
	}
}
