package systems

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// TestApplyDamageNonLethal 测试非致命伤害不会掉落
func TestApplyDamageNonLethal(t *testing.T) {
	w := newTestWorld(t)
	w.State.Wave = 0
	id := spawnTestEnemy(t, w, types.EnemySwarmer, utils.V(300, 0))

	ApplyDamage(w, id, 8)
	if n := NewEnemySystem(w).ResolveDeaths(); n != 0 {
		t.Errorf("Expected no deaths, got %d", n)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](w.EntityManager, id)
	if health.HP != 2 {
		t.Errorf("Expected hp 2, got %v", health.HP)
	}
	if !w.EntityManager.IsAlive(id) {
		t.Error("swarmer should still be alive")
	}
	if n := countWith[*components.LootComponent](w); n != 0 {
		t.Errorf("Expected no loot, got %d", n)
	}
}

// TestResolveDeaths 测试死亡敌人恰好掉落一份废料和一份经验
func TestResolveDeaths(t *testing.T) {
	w := newTestWorld(t)
	w.State.Wave = 0
	id := spawnTestEnemy(t, w, types.EnemySwarmer, utils.V(300, 0))
	enemies := NewEnemySystem(w)

	ApplyDamage(w, id, 50)
	if n := enemies.ResolveDeaths(); n != 1 {
		t.Fatalf("Expected 1 death, got %d", n)
	}
	if n := enemies.ResolveDeaths(); n != 0 {
		t.Errorf("dead enemy resolved twice (%d)", n)
	}
	w.EntityManager.RemoveMarkedEntities()

	if w.EntityManager.IsAlive(id) {
		t.Error("dead enemy should be removed")
	}
	scrap, xp := lootOf(w, components.LootScrap), lootOf(w, components.LootXP)
	if len(scrap) != 1 || len(xp) != 1 {
		t.Fatalf("Expected 1 scrap and 1 xp drop, got %d and %d", len(scrap), len(xp))
	}
	if scrap[0].Value != 5 || xp[0].Value != 5 {
		t.Errorf("Expected drop values 5/5, got %d/%d", scrap[0].Value, xp[0].Value)
	}
	if w.State.Score != 5 {
		t.Errorf("Expected score 5, got %d", w.State.Score)
	}
}

// TestBossDeathDropsDepot 测试 Boss 死亡留下站台和水晶
func TestBossDeathDropsDepot(t *testing.T) {
	w := newTestWorld(t)
	id := spawnTestEnemy(t, w, types.EnemyCrusher, utils.V(400, 0))
	health, _ := ecs.GetComponent[*components.HealthComponent](w.EntityManager, id)
	health.HP = 0

	NewEnemySystem(w).ResolveDeaths()

	if n := countWith[*components.DepotComponent](w); n != 1 {
		t.Errorf("Expected 1 depot, got %d", n)
	}
	if n := countWith[*components.CrystalComponent](w); n != 1 {
		t.Errorf("Expected 1 crystal, got %d", n)
	}
}

// TestEnemyContact 测试敌人接触列车
func TestEnemyContact(t *testing.T) {
	tests := []struct {
		name      string
		typ       types.EnemyType
		godMode   bool
		wantHurt  bool
		wantAlive bool
	}{
		{"普通敌人撞击", types.EnemyNormal, false, true, true},
		{"自爆者引爆", types.EnemyBoomer, false, true, false},
		{"上帝模式无伤", types.EnemyNormal, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.State.GodMode = tt.godMode
			id := spawnTestEnemy(t, w, tt.typ, utils.V(5, 0))

			NewEnemySystem(w).Update()

			health, _ := w.TrainHealth()
			if hurt := health.HP < health.MaxHP; hurt != tt.wantHurt {
				t.Errorf("train hurt: expected %v, got %v (hp %v)", tt.wantHurt, hurt, health.HP)
			}
			if alive := w.EntityManager.IsAlive(id); alive != tt.wantAlive {
				t.Errorf("enemy alive: expected %v, got %v", tt.wantAlive, alive)
			}
		})
	}
}

// TestEnemyMovesTowardTrain 测试敌人向机车靠近并记录速度
func TestEnemyMovesTowardTrain(t *testing.T) {
	w := newTestWorld(t)
	id := spawnTestEnemy(t, w, types.EnemyNormal, utils.V(500, 0))

	NewEnemySystem(w).Update()

	pos, _ := positionOf(w.EntityManager, id)
	if pos.X >= 500 {
		t.Errorf("enemy should move toward the train, x=%v", pos.X)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.EntityManager, id)
	if enemy.Velocity.Len() == 0 {
		t.Error("velocity should be recorded for aim prediction")
	}
	if enemy.SpeedMult != 1 {
		t.Errorf("speed multiplier should reset to 1, got %v", enemy.SpeedMult)
	}
}

// TestExplode 测试范围伤害只影响半径内的敌人
func TestExplode(t *testing.T) {
	w := newTestWorld(t)
	inside := spawnTestEnemy(t, w, types.EnemyNormal, utils.V(320, 0))
	outside := spawnTestEnemy(t, w, types.EnemyNormal, utils.V(420, 0))

	Explode(w, utils.V(300, 0), 10, config.ExplosionRadius)

	hIn, _ := ecs.GetComponent[*components.HealthComponent](w.EntityManager, inside)
	hOut, _ := ecs.GetComponent[*components.HealthComponent](w.EntityManager, outside)
	if hIn.HP != hIn.MaxHP-10 {
		t.Errorf("Expected inside enemy to lose 10 hp, got %v/%v", hIn.HP, hIn.MaxHP)
	}
	if hOut.HP != hOut.MaxHP {
		t.Errorf("outside enemy should be untouched, got %v/%v", hOut.HP, hOut.MaxHP)
	}
}

// TestEnemyPanicIsolated 测试单个敌人出错时只移除该敌人
func TestEnemyPanicIsolated(t *testing.T) {
	saved := enemyBehaviors[types.EnemyTank]
	enemyBehaviors[types.EnemyTank] = enemyBehavior{skill: func(s *EnemySystem, c *enemyTick) {
		panic("broken skill")
	}}
	defer func() { enemyBehaviors[types.EnemyTank] = saved }()

	w := newTestWorld(t)
	bad := spawnTestEnemy(t, w, types.EnemyTank, utils.V(400, 0))
	good := spawnTestEnemy(t, w, types.EnemyNormal, utils.V(500, 0))
	system := NewEnemySystem(w)

	system.Update()
	if w.EntityManager.IsAlive(bad) {
		t.Error("Expected the failing enemy to be removed")
	}
	first, _ := positionOf(w.EntityManager, good)
	if first.X >= 500 {
		t.Errorf("Expected the other enemy to keep moving, x=%v", first.X)
	}

	w.EntityManager.RemoveMarkedEntities()
	system.Update()
	second, _ := positionOf(w.EntityManager, good)
	if second.X >= first.X {
		t.Errorf("Expected movement on the next tick, x=%v then %v", first.X, second.X)
	}
}
