package systems

import (
	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// ProjectileSystem 子弹系统
// 移动子弹、修正追踪弹方向，并处理与敌人或列车的碰撞
type ProjectileSystem struct {
	world *game.World
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(world *game.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update 更新所有子弹
func (s *ProjectileSystem) Update() {
	em := s.world.EntityManager
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		guardEntity("ProjectileSystem", em, id, func() { s.updateProjectile(id) })
	}
}

// updateProjectile 移动一枚子弹并结算命中
func (s *ProjectileSystem) updateProjectile(id ecs.EntityID) {
	em := s.world.EntityManager
	p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

	if p.Flags.Has(types.FlagHoming) {
		s.steer(p, pos, vel)
	}
	pos.Set(pos.Vec().Add(vel.Vec()))
	p.Life--

	hit := false
	if p.Hostile {
		hit = s.hitTrain(p, pos.Vec())
	} else {
		hit = s.hitEnemy(p, pos.Vec())
	}

	if hit || p.Life <= 0 {
		if p.Flags.Has(types.FlagCluster) {
			SplitCluster(s.world, pos.Vec(), p.Damage, p.Color)
		}
		em.DestroyEntity(id)
	}
}

// steer 追踪弹向存活目标转向，目标消失后直线飞行
func (s *ProjectileSystem) steer(p *components.ProjectileComponent, pos *components.PositionComponent, vel *components.VelocityComponent) {
	em := s.world.EntityManager
	if p.Target == 0 || !em.IsAlive(p.Target) {
		return
	}
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, p.Target); ok && h.IsDead() {
		return
	}
	tpos, ok := positionOf(em, p.Target)
	if !ok {
		return
	}
	current := vel.Vec()
	angle, _ := utils.StepAngle(utils.Vec2{}.AngleTo(current), pos.Vec().AngleTo(tpos), config.HomingTurnRate)
	vel.Set(utils.FromAngle(angle, p.Speed))
}

// hitEnemy 友方子弹与敌人碰撞，每颗子弹最多命中一个敌人
func (s *ProjectileSystem) hitEnemy(p *components.ProjectileComponent, at utils.Vec2) bool {
	w := s.world
	em := w.EntityManager
	for _, entry := range w.Grid.Query(at.X, at.Y, config.ProjectileQueryRadius) {
		if !em.IsAlive(entry.ID) {
			continue
		}
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, entry.ID)
		if !ok {
			continue
		}
		if h, ok := ecs.GetComponent[*components.HealthComponent](em, entry.ID); ok && h.IsDead() {
			continue
		}
		epos, _ := positionOf(em, entry.ID)
		if at.Dist(epos) >= enemy.Size+config.ProjectileHitPadding {
			continue
		}

		ApplyDamage(w, entry.ID, p.Damage)
		spawnExplosion(w, at, p.Color, 3)
		if p.Knockback > 0 {
			Knockback(w, entry.ID, epos.Sub(at), p.Knockback)
		}
		ApplyStatus(w, entry.ID, p.Flags)
		if p.Flags.Has(types.FlagGravity) {
			GravityPull(w, at, config.GravityRadius, config.GravityForce, entry.ID)
		}
		if p.Flags.Has(types.FlagExplosive) {
			Explode(w, at, p.Damage*config.ExplosionDamageRatio, config.ExplosionRadius)
		}
		return true
	}
	return false
}

// hitTrain 敌方子弹与机车或车厢碰撞
func (s *ProjectileSystem) hitTrain(p *components.ProjectileComponent, at utils.Vec2) bool {
	w := s.world
	hit := at.Dist(w.TrainPos()) < config.LocomotiveHitRadius
	if !hit {
		if train, ok := w.Train(); ok {
			for _, id := range train.Wagons {
				if wpos, ok := positionOf(w.EntityManager, id); ok && at.Dist(wpos) < config.LocomotiveHitRadius {
					hit = true
					break
				}
			}
		}
	}
	if !hit {
		return false
	}

	damageTrain(w, p.Damage)
	n := 3
	if p.Flags.Has(types.FlagExplosive) {
		n = 10
	}
	spawnExplosion(w, at, entities.ColorDamage, n)
	return true
}
