package systems

import (
	"image/color"
	"log"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// guardEntity 运行单个实体的更新
// fn 发生 panic 时记录日志并销毁该实体，同一循环中的其余实体照常更新
func guardEntity(system string, em *ecs.EntityManager, id ecs.EntityID, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] entity %d panicked and was removed: %v", system, id, r)
			em.DestroyEntity(id)
			ok = false
		}
	}()
	fn()
	return true
}

// positionOf 读取实体位置
func positionOf(em *ecs.EntityManager, id ecs.EntityID) (utils.Vec2, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Vec2{}, false
	}
	return pos.Vec(), true
}

// spawnFloater 创建飘字，失败只记录日志
func spawnFloater(w *game.World, pos utils.Vec2, text string, c color.RGBA, size float64) {
	if _, err := entities.NewFloaterEntity(w.EntityManager, pos, text, c, size); err != nil {
		log.Printf("[Systems] failed to spawn floater %q: %v", text, err)
	}
}

// spawnExplosion 创建爆炸粒子
func spawnExplosion(w *game.World, pos utils.Vec2, c color.RGBA, count int) {
	if _, err := entities.NewParticleBurst(w.EntityManager, w.Rand, pos, c, count); err != nil {
		log.Printf("[Systems] failed to spawn explosion: %v", err)
	}
}

// damageTrain 对机车造成伤害，护盾优先吸收
// 上帝模式下不造成伤害；返回实际扣除的血量
func damageTrain(w *game.World, amount float64) float64 {
	if w.State.GodMode {
		return 0
	}
	health, ok := w.TrainHealth()
	if !ok {
		return 0
	}
	return health.Damage(amount)
}

// healTrain 为机车回血
func healTrain(w *game.World, amount float64) {
	if health, ok := w.TrainHealth(); ok {
		health.Heal(amount)
	}
}
