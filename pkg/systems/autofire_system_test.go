package systems

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// TestAutoFire 测试机车炮塔的射击间隔
func TestAutoFire(t *testing.T) {
	w := newTestWorld(t)
	autofire := NewAutoFireSystem(w)
	spawnTestEnemy(t, w, types.EnemyNormal, utils.V(100, 0))

	for i := 0; i < config.LocomotiveAutoFireInterval-1; i++ {
		autofire.Update()
	}
	if n := countWith[*components.ProjectileComponent](w); n != 0 {
		t.Fatalf("fired too early: %d projectiles", n)
	}
	autofire.Update()
	if n := countWith[*components.ProjectileComponent](w); n != 1 {
		t.Errorf("Expected 1 projectile, got %d", n)
	}
}

// TestAutoFireOutOfRange 测试射程外不开火
func TestAutoFireOutOfRange(t *testing.T) {
	w := newTestWorld(t)
	autofire := NewAutoFireSystem(w)
	spawnTestEnemy(t, w, types.EnemyNormal, utils.V(config.LocomotiveAutoFireRange+50, 0))

	for i := 0; i < config.LocomotiveAutoFireInterval*3; i++ {
		autofire.Update()
	}
	if n := countWith[*components.ProjectileComponent](w); n != 0 {
		t.Errorf("Expected no projectiles, got %d", n)
	}
}

// TestFireSalvo 测试齐射
func TestFireSalvo(t *testing.T) {
	t.Run("废料不足", func(t *testing.T) {
		w := newTestWorld(t)
		w.State.Scrap = config.SalvoCost - 1
		if NewAutoFireSystem(w).FireSalvo() {
			t.Error("salvo should fail without scrap")
		}
		if w.State.Scrap != config.SalvoCost-1 || w.Actions.Len() != 0 {
			t.Error("failed salvo must not spend scrap or schedule shots")
		}
	})

	t.Run("按间隔发射", func(t *testing.T) {
		w := newTestWorld(t)
		w.State.Scrap = 100
		spawnTestEnemy(t, w, types.EnemyNormal, utils.V(300, 0))

		if !NewAutoFireSystem(w).FireSalvo() {
			t.Fatal("FireSalvo failed")
		}
		if w.State.Scrap != 100-config.SalvoCost {
			t.Errorf("Expected scrap %d, got %d", 100-config.SalvoCost, w.State.Scrap)
		}
		if w.Actions.Len() != config.SalvoShots {
			t.Fatalf("Expected %d scheduled shots, got %d", config.SalvoShots, w.Actions.Len())
		}

		w.Actions.Drain(w.State.Tick)
		if n := countWith[*components.ProjectileComponent](w); n != 1 {
			t.Errorf("Expected first shot immediately, got %d", n)
		}
		w.Actions.Drain(w.State.Tick + config.SalvoInterval*(config.SalvoShots-1))
		if n := countWith[*components.ProjectileComponent](w); n != config.SalvoShots {
			t.Errorf("Expected %d projectiles, got %d", config.SalvoShots, n)
		}
	})
}
