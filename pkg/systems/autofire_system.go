package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
)

// AutoFireSystem 机车自带炮塔
// 每隔固定 tick 向射程内最近的敌人开火，并负责手动齐射
type AutoFireSystem struct {
	world *game.World
}

// NewAutoFireSystem 创建机车炮塔系统
func NewAutoFireSystem(world *game.World) *AutoFireSystem {
	return &AutoFireSystem{world: world}
}

// Update 推进自动射击计时
func (s *AutoFireSystem) Update() {
	train, ok := s.world.Train()
	if !ok {
		return
	}
	train.FireTimer++
	if train.FireTimer < config.LocomotiveAutoFireInterval {
		return
	}
	train.FireTimer = 0
	s.fireAtNearest(config.LocomotiveAutoFireRange, config.LocomotiveAutoFireSpeed, train.AutoDmg*train.GlobalDmgMult)
}

// fireAtNearest 向机车附近最近的敌人开一枪，没有目标时返回 false
func (s *AutoFireSystem) fireAtNearest(rng, speed, dmg float64) bool {
	w := s.world
	origin := w.TrainPos()
	target, ok := TargetNearest(w.EntityManager, w.Grid, origin, rng)
	if !ok {
		return false
	}
	_, err := FireAt(w, Shot{From: origin, Target: target, Speed: speed, Damage: dmg, Color: entities.ColorScrap})
	if err != nil {
		log.Printf("[AutoFireSystem] failed to fire: %v", err)
		return false
	}
	return true
}

// FireSalvo 花费废料安排一轮齐射
// 每发在各自的 tick 重新索敌；废料不足时显示提示并返回 false
func (s *AutoFireSystem) FireSalvo() bool {
	w := s.world
	if !w.State.SpendScrap(config.SalvoCost) {
		spawnFloater(w, w.TrainPos(), string(components.ReasonNoScrap), entities.ColorDamage, 12)
		return false
	}
	spawnFloater(w, w.TrainPos(), "SALVO!", entities.ColorWarning, 16)

	now := w.State.Tick
	for k := 0; k < config.SalvoShots; k++ {
		w.Actions.Schedule(now+config.SalvoInterval*k, fmt.Sprintf("salvo-%d", k), func() {
			train, ok := w.Train()
			if !ok {
				return
			}
			dmg := train.AutoDmg * config.SalvoDamageMultiplier * train.GlobalDmgMult
			if s.fireAtNearest(config.SalvoRange, config.SalvoSpeed, dmg) {
				spawnExplosion(w, w.TrainPos(), entities.ColorWarning, 2)
			}
		})
	}
	return true
}
