package entities

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/utils"
)

const (
	// floaterRiseSpeed 飘字每 tick 上升的距离
	floaterRiseSpeed = 0.5

	// defaultFloaterSize 飘字默认字号
	defaultFloaterSize = 12

	// lightningLife 闪电持续时间
	lightningLife = 5
)

// NewFloaterEntity 创建飘字
// size <= 0 时使用默认字号
func NewFloaterEntity(em *ecs.EntityManager, pos utils.Vec2, text string, c color.RGBA, size float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if size <= 0 {
		size = defaultFloaterSize
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: -floaterRiseSpeed})
	ecs.AddComponent(em, id, &components.FloaterComponent{Text: text, Color: c, Size: size})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: config.FloaterLife, Max: config.FloaterLife})
	return id, nil
}

// NewParticleBurst 在 pos 处生成 count 个随机飞散的粒子
func NewParticleBurst(em *ecs.EntityManager, rng *rand.Rand, pos utils.Vec2, c color.RGBA, count int) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		life := config.ParticleLife + rng.Intn(20)
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
		ecs.AddComponent(em, id, &components.VelocityComponent{
			VX: (rng.Float64() - 0.5) * 8,
			VY: (rng.Float64() - 0.5) * 8,
		})
		ecs.AddComponent(em, id, &components.ParticleComponent{Color: c, Size: 3})
		ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: life, Max: life})
		ids = append(ids, id)
	}
	return ids, nil
}

// NewLightningEntity 创建一道从 from 到 to 的闪电
func NewLightningEntity(em *ecs.EntityManager, from, to utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: from.X, Y: from.Y})
	ecs.AddComponent(em, id, &components.ParticleComponent{Color: ColorWhite, Size: 2, Lightning: true, End: to})
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: lightningLife, Max: lightningLife})
	return id, nil
}
