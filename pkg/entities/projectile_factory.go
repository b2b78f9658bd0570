package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// ProjectileSpec 子弹参数
type ProjectileSpec struct {
	Pos       utils.Vec2
	Vel       utils.Vec2
	Damage    float64
	Size      float64 // 0 使用默认值 3
	Life      int     // 0 使用默认寿命
	Knockback float64
	Flags     types.ProjectileFlag
	Target    ecs.EntityID // 追踪目标，可为 0
	Hostile   bool
	Color     color.RGBA
}

// NewProjectileEntity 创建子弹实体
func NewProjectileEntity(em *ecs.EntityManager, spec ProjectileSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Size <= 0 {
		spec.Size = 3
	}
	if spec.Life <= 0 {
		spec.Life = config.ProjectileLife
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.Pos.X, Y: spec.Pos.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: spec.Vel.X, VY: spec.Vel.Y})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Damage:    spec.Damage,
		Speed:     spec.Vel.Len(),
		Size:      spec.Size,
		Life:      spec.Life,
		Knockback: spec.Knockback,
		Flags:     spec.Flags,
		Target:    spec.Target,
		Hostile:   spec.Hostile,
		Color:     spec.Color,
	})
	return id, nil
}
