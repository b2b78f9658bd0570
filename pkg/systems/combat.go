package systems

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// Shot 一次瞄准射击的参数
type Shot struct {
	From      utils.Vec2
	Target    ecs.EntityID
	Speed     float64
	Damage    float64
	Knockback float64
	Flags     types.ProjectileFlag
	Color     color.RGBA
}

// ApplyDamage 对敌人造成伤害并显示伤害数字
// 护盾优先吸收；死亡由 EnemySystem 统一结算
func ApplyDamage(w *game.World, target ecs.EntityID, dmg float64) float64 {
	dealt := damageEnemy(w, target, dmg)
	if dmg > 0 && w.EntityManager.IsAlive(target) {
		if pos, ok := positionOf(w.EntityManager, target); ok {
			spawnFloater(w, pos.Add(utils.Vec2{Y: -15}), strconv.Itoa(int(math.Floor(dmg))), entities.ColorWhite, 10)
		}
	}
	return dealt
}

// damageEnemy 扣血但不产生飘字，用于范围伤害
func damageEnemy(w *game.World, target ecs.EntityID, dmg float64) float64 {
	if dmg <= 0 || !w.EntityManager.IsAlive(target) {
		return 0
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](w.EntityManager, target)
	if !ok {
		return 0
	}
	return health.Damage(dmg)
}

// PredictAim 线性预判：目标位置 + 目标速度 × 飞行时间
func PredictAim(from, targetPos, targetVel utils.Vec2, speed float64) utils.Vec2 {
	if speed <= 0 {
		return targetPos
	}
	tof := from.Dist(targetPos) / speed
	return targetPos.Add(targetVel.Scale(tof))
}

// FireAt 向目标发射带预判的子弹
// 追踪弹记录目标，飞行中持续修正方向
func FireAt(w *game.World, shot Shot) (ecs.EntityID, error) {
	em := w.EntityManager
	targetPos, ok := positionOf(em, shot.Target)
	if !ok {
		return 0, fmt.Errorf("target %d has no position", shot.Target)
	}

	aim := targetPos
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, shot.Target); ok {
		aim = PredictAim(shot.From, targetPos, enemy.Velocity, shot.Speed)
	}

	spec := entities.ProjectileSpec{
		Pos:       shot.From,
		Vel:       aim.Sub(shot.From).Normalize().Scale(shot.Speed),
		Damage:    shot.Damage,
		Knockback: shot.Knockback,
		Flags:     shot.Flags,
		Color:     shot.Color,
	}
	if shot.Flags.Has(types.FlagHoming) {
		spec.Target = shot.Target
	}
	return entities.NewProjectileEntity(em, spec)
}

// fireDirection 沿固定方向发射子弹
func fireDirection(w *game.World, from utils.Vec2, angle, speed, dmg float64, flags types.ProjectileFlag, c color.RGBA) {
	spec := entities.ProjectileSpec{
		Pos:    from,
		Vel:    utils.FromAngle(angle, speed),
		Damage: dmg,
		Flags:  flags,
		Color:  c,
	}
	if _, err := entities.NewProjectileEntity(w.EntityManager, spec); err != nil {
		log.Printf("[Combat] failed to fire projectile: %v", err)
	}
}

// fireHostile 敌方向 to 发射子弹
func fireHostile(w *game.World, from, to utils.Vec2, speed, dmg float64, flags types.ProjectileFlag) {
	spec := entities.ProjectileSpec{
		Pos:     from,
		Vel:     to.Sub(from).Normalize().Scale(speed),
		Damage:  dmg,
		Size:    4,
		Flags:   flags,
		Hostile: true,
		Color:   entities.ColorHostile,
	}
	if _, err := entities.NewProjectileEntity(w.EntityManager, spec); err != nil {
		log.Printf("[Combat] failed to fire hostile projectile: %v", err)
	}
}

// enemiesWithin 返回 pos 半径内的存活敌人
// 直接遍历实体而不是查网格，范围效果也能命中本 tick 新生成的敌人
func enemiesWithin(w *game.World, pos utils.Vec2, radius float64) []ecs.EntityID {
	em := w.EntityManager
	var out []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		p, _ := positionOf(em, id)
		if p.Dist(pos) < radius {
			out = append(out, id)
		}
	}
	return out
}

// Knockback 为敌人叠加击退冲量
func Knockback(w *game.World, id ecs.EntityID, dir utils.Vec2, force float64) {
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](w.EntityManager, id); ok {
		enemy.Knockback = enemy.Knockback.Add(dir.Normalize().Scale(force))
	}
}

// Explode 对半径内所有敌人造成溅射伤害
func Explode(w *game.World, pos utils.Vec2, dmg, radius float64) {
	spawnExplosion(w, pos, entities.ColorDamage, 10)
	for _, id := range enemiesWithin(w, pos, radius) {
		damageEnemy(w, id, dmg)
	}
}

// Shockwave 以 pos 为中心的冲击波：伤害并向外击退
func Shockwave(w *game.World, pos utils.Vec2, radius, force, dmg float64) {
	spawnExplosion(w, pos, entities.ColorWhite, 10)
	for _, id := range enemiesWithin(w, pos, radius) {
		p, _ := positionOf(w.EntityManager, id)
		Knockback(w, id, p.Sub(pos), force)
		damageEnemy(w, id, dmg)
	}
}

// GravityPull 把半径内除 exclude 以外的敌人拉向 pos
func GravityPull(w *game.World, pos utils.Vec2, radius, force float64, exclude ecs.EntityID) {
	for _, id := range enemiesWithin(w, pos, radius) {
		if id == exclude {
			continue
		}
		p, _ := positionOf(w.EntityManager, id)
		Knockback(w, id, pos.Sub(p), force)
	}
}

// ApplyStatus 根据子弹标记施加冰冻和酸蚀
func ApplyStatus(w *game.World, id ecs.EntityID, flags types.ProjectileFlag) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](w.EntityManager, id)
	if !ok {
		return
	}
	if flags.Has(types.FlagCryo) {
		enemy.FreezeTimer = config.FreezeDuration
	}
	if flags.Has(types.FlagAcid) {
		enemy.AcidTimer = config.AcidDuration
	}
}

// SplitCluster 集束弹分裂为 6 个径向小弹，小弹不再分裂
func SplitCluster(w *game.World, pos utils.Vec2, dmg float64, c color.RGBA) {
	for j := 0; j < config.ClusterChildren; j++ {
		angle := float64(j) / config.ClusterChildren * 2 * math.Pi
		spec := entities.ProjectileSpec{
			Pos:       pos.Add(utils.FromAngle(angle, 10)),
			Vel:       utils.FromAngle(angle, config.ClusterChildSpeed),
			Damage:    dmg * config.ClusterChildDamage,
			Life:      config.ClusterChildLife,
			Knockback: config.ClusterChildKnockback,
			Flags:     types.FlagExplosive,
			Size:      2,
			Color:     c,
		}
		if _, err := entities.NewProjectileEntity(w.EntityManager, spec); err != nil {
			log.Printf("[Combat] failed to split cluster shell: %v", err)
		}
	}
	spawnExplosion(w, pos, entities.ColorWarning, 15)
}

// FabricatorBuff 相邻工坊车厢提供的伤害倍率，每次开火时重新计算
func FabricatorBuff(em *ecs.EntityManager, wagons []ecs.EntityID, idx int) float64 {
	buff := 1.0
	for _, j := range [2]int{idx - 1, idx + 1} {
		if j < 0 || j >= len(wagons) {
			continue
		}
		if wc, ok := ecs.GetComponent[*components.WagonComponent](em, wagons[j]); ok && wc.Type == types.WagonFabricator {
			buff += config.FabricatorBaseBuff + config.FabricatorLevelBuff*float64(wc.Level)
		}
	}
	return buff
}
