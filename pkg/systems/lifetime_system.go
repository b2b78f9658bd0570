package systems

import (
	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 每 tick 递减剩余寿命，到期的实体标记删除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update() {
	ids := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range ids {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Remaining--
		if lifetime.Remaining <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
