package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/utils"
)

// EnemySpawn 描述一次刷怪的上下文
type EnemySpawn struct {
	Pos            utils.Vec2
	Wave           int
	DifficultyMult float64 // 0 按 1 处理
	Elite          bool
	Rare           bool
}

// NewEnemyEntity 根据原型定义创建敌人实体
//
// 血量 = 基础血量 × (1 + 0.08 × 波次) × 难度倍率；
// 精英血量和经验 ×2.5、体型 ×1.5；稀有血量 ×1.5、速度 ×1.2、经验和分数 ×3。
// Boss 不会成为精英或稀有。
func NewEnemyEntity(em *ecs.EntityManager, def config.EnemyDef, spawn EnemySpawn) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if def.HP <= 0 {
		return 0, fmt.Errorf("enemy %s has invalid hp %v", def.Type, def.HP)
	}

	mult := spawn.DifficultyMult
	if mult <= 0 {
		mult = 1
	}
	if def.Type.IsBoss() {
		spawn.Elite = false
		spawn.Rare = false
	}

	hp := def.HP * (1 + float64(spawn.Wave)*config.WaveHPScaling) * mult
	speed := def.Speed
	size := def.Size
	xp := float64(def.XP)
	score := float64(def.Score)

	if spawn.Elite {
		hp *= config.EliteMultiplier
		xp *= config.EliteMultiplier
		size *= config.EliteScale
	} else if spawn.Rare {
		hp *= config.RareHPMultiplier
		speed *= config.RareSpeedMultiplier
		xp *= config.RareRewardMultiplier
		score *= config.RareRewardMultiplier
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spawn.Pos.X, Y: spawn.Pos.Y})
	ecs.AddComponent(em, id, &components.HealthComponent{HP: hp, MaxHP: hp})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Type:      def.Type,
		Elite:     spawn.Elite,
		Rare:      spawn.Rare,
		Speed:     speed,
		Size:      size,
		Score:     int(math.Round(score)),
		XP:        int(math.Round(xp)),
		SpeedMult: 1,
	})
	return id, nil
}
