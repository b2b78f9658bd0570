package systems

import (
	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/ecs"
)

// EffectsSystem 移动粒子和飘字
// 子弹虽然也有速度组件，但由 ProjectileSystem 负责移动
type EffectsSystem struct {
	entityManager *ecs.EntityManager
}

// NewEffectsSystem 创建特效系统
func NewEffectsSystem(em *ecs.EntityManager) *EffectsSystem {
	return &EffectsSystem{entityManager: em}
}

// Update 按速度移动粒子和飘字
func (s *EffectsSystem) Update() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.VelocityComponent](em) {
		s.move(id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.FloaterComponent, *components.VelocityComponent](em) {
		s.move(id)
	}
}

func (s *EffectsSystem) move(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	pos.X += vel.VX
	pos.Y += vel.VY
}
