package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

func TestFactoriesRejectNilManager(t *testing.T) {
	catalog := config.DefaultCatalog()
	def, _ := catalog.Enemy(types.EnemyNormal)
	engine, _ := catalog.Engine("pioneer")

	checks := []struct {
		name string
		fn   func() error
	}{
		{"轨道", func() error { _, err := NewTrackEntity(nil, engine.Track.Points()); return err }},
		{"机车", func() error { _, err := NewLocomotiveEntity(nil, engine); return err }},
		{"车厢", func() error { _, err := NewWagonEntity(nil, types.WagonGunner, 0, 10, 5); return err }},
		{"敌人", func() error { _, err := NewEnemyEntity(nil, def, EnemySpawn{}); return err }},
		{"子弹", func() error { _, err := NewProjectileEntity(nil, ProjectileSpec{}); return err }},
		{"掉落物", func() error { _, err := NewLootEntity(nil, components.LootScrap, 5, utils.Vec2{}); return err }},
		{"飘字", func() error { _, err := NewFloaterEntity(nil, utils.Vec2{}, "x", ColorWhite, 0); return err }},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if err := c.fn(); err == nil {
				t.Error("Expected error for nil entity manager")
			}
		})
	}
}

func TestNewEnemyEntityScaling(t *testing.T) {
	catalog := config.DefaultCatalog()

	tests := []struct {
		name      string
		enemy     types.EnemyType
		spawn     EnemySpawn
		wantHP    float64
		wantSize  float64
		wantXP    int
		wantScore int
	}{
		{"基础蜂群", types.EnemySwarmer, EnemySpawn{}, 10, 8, 5, 5},
		{"第五波普通", types.EnemyNormal, EnemySpawn{Wave: 5}, 40 * 1.4, 14, 10, 10},
		{"精英", types.EnemyNormal, EnemySpawn{Elite: true}, 100, 21, 25, 10},
		{"稀有", types.EnemyNormal, EnemySpawn{Rare: true}, 60, 14, 30, 30},
		{"Boss 不会精英", types.EnemyCrusher, EnemySpawn{Elite: true, DifficultyMult: 1.5}, 3000, 40, 200, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			def, ok := catalog.Enemy(tt.enemy)
			if !ok {
				t.Fatalf("enemy %s missing from catalog", tt.enemy)
			}
			id, err := NewEnemyEntity(em, def, tt.spawn)
			if err != nil {
				t.Fatalf("NewEnemyEntity() error: %v", err)
			}

			health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
			if math.Abs(health.HP-tt.wantHP) > 1e-9 || health.MaxHP != health.HP {
				t.Errorf("HP: expected %v, got %v/%v", tt.wantHP, health.HP, health.MaxHP)
			}
			if math.Abs(enemy.Size-tt.wantSize) > 1e-9 {
				t.Errorf("Size: expected %v, got %v", tt.wantSize, enemy.Size)
			}
			if enemy.XP != tt.wantXP || enemy.Score != tt.wantScore {
				t.Errorf("XP/Score: expected %d/%d, got %d/%d", tt.wantXP, tt.wantScore, enemy.XP, enemy.Score)
			}
			if enemy.SpeedMult != 1 {
				t.Errorf("SpeedMult should start at 1, got %v", enemy.SpeedMult)
			}
		})
	}
}

func TestNewLocomotiveEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	engine, _ := config.DefaultCatalog().Engine("bastion")

	id, err := NewLocomotiveEntity(em, engine)
	if err != nil {
		t.Fatalf("NewLocomotiveEntity() error: %v", err)
	}

	train, ok := ecs.GetComponent[*components.TrainComponent](em, id)
	if !ok {
		t.Fatal("locomotive missing TrainComponent")
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.HP != 150 || health.Shield != 50 {
		t.Errorf("unexpected health %+v", health)
	}
	if train.MaxSpeed != 4.5 || train.RamBonus != 20 || train.Gear != config.StartGear {
		t.Errorf("unexpected train %+v", train)
	}

	if _, err := NewLocomotiveEntity(em, config.EngineDef{ID: "broken"}); err == nil {
		t.Error("Expected error for zero hp engine")
	}
}

func TestNewTrackEntityMinNodes(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewTrackEntity(em, []utils.Vec2{{}, {X: 1}, {Y: 1}}); err == nil {
		t.Error("Expected error for a three node track")
	}
	id, err := NewTrackEntity(em, config.TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200}.Points())
	if err != nil {
		t.Fatalf("NewTrackEntity() error: %v", err)
	}
	track, _ := ecs.GetComponent[*components.TrackComponent](em, id)
	if track.Len() != 8 {
		t.Errorf("Expected 8 nodes, got %d", track.Len())
	}
}

func TestNewWagonEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewWagonEntity(em, types.WagonSniper, 2, 5, 0)
	if err != nil {
		t.Fatalf("NewWagonEntity() error: %v", err)
	}
	wagon, _ := ecs.GetComponent[*components.WagonComponent](em, id)
	if wagon.Level != 1 || wagon.MaxLevel != config.WagonMaxLevel || wagon.Index != 2 {
		t.Errorf("unexpected wagon %+v", wagon)
	}
	if wagon.Targeting != types.TargetStrongest {
		t.Errorf("sniper should target strongest, got %v", wagon.Targeting)
	}

	if _, err := NewWagonEntity(em, types.WagonUnknown, 0, 10, 5); err == nil {
		t.Error("Expected error for unknown wagon type")
	}
}

func TestNewDepotEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	def, _ := config.DefaultCatalog().Depot(config.DepotArmory)

	id, err := NewDepotEntity(em, def, utils.Vec2{X: 100, Y: 50})
	if err != nil {
		t.Fatalf("NewDepotEntity() error: %v", err)
	}
	depot, _ := ecs.GetComponent[*components.DepotComponent](em, id)
	if depot.LastLapVisited != -1 {
		t.Errorf("LastLapVisited should start at -1, got %d", depot.LastLapVisited)
	}
	if depot.Entrance != (utils.Vec2{X: 40, Y: 50}) || depot.Exit != (utils.Vec2{X: 160, Y: 50}) {
		t.Errorf("unexpected connectors %v %v", depot.Entrance, depot.Exit)
	}
}

func TestPickupLifetimes(t *testing.T) {
	em := ecs.NewEntityManager()

	loot, err := NewLootEntity(em, components.LootXP, 10, utils.Vec2{})
	if err != nil {
		t.Fatalf("NewLootEntity() error: %v", err)
	}
	if l, _ := ecs.GetComponent[*components.LifetimeComponent](em, loot); l.Remaining != config.LootLife {
		t.Errorf("loot life: expected %d, got %d", config.LootLife, l.Remaining)
	}
	if _, err := NewLootEntity(em, components.LootScrap, 0, utils.Vec2{}); err == nil {
		t.Error("Expected error for zero value loot")
	}

	mine, _ := NewMineEntity(em, utils.Vec2{})
	if l, _ := ecs.GetComponent[*components.LifetimeComponent](em, mine); l.Remaining != config.MineLife {
		t.Errorf("mine life: expected %d, got %d", config.MineLife, l.Remaining)
	}

	floater, _ := NewFloaterEntity(em, utils.Vec2{}, "+5", ColorScrap, 0)
	f, _ := ecs.GetComponent[*components.FloaterComponent](em, floater)
	if f.Size != defaultFloaterSize {
		t.Errorf("floater size: expected default, got %v", f.Size)
	}
}

func TestNewParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	ids, err := NewParticleBurst(em, rand.New(rand.NewSource(1)), utils.Vec2{}, ColorDamage, 10)
	if err != nil {
		t.Fatalf("NewParticleBurst() error: %v", err)
	}
	if len(ids) != 10 || em.Count() != 10 {
		t.Fatalf("Expected 10 particles, got %d (count %d)", len(ids), em.Count())
	}
	for _, id := range ids {
		l, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if l.Remaining < config.ParticleLife || l.Remaining >= config.ParticleLife+20 {
			t.Errorf("particle life out of range: %d", l.Remaining)
		}
	}

	if _, err := NewParticleBurst(em, nil, utils.Vec2{}, ColorDamage, 1); err == nil {
		t.Error("Expected error for nil random source")
	}
}

func TestDroneRequiresLiveOwner(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewDroneEntity(em, 42, 0, utils.Vec2{}); err == nil {
		t.Error("Expected error for missing owner")
	}

	owner, _ := NewWagonEntity(em, types.WagonDrone, 0, 5, 0)
	id, err := NewDroneEntity(em, owner, 0, utils.Vec2{X: 10})
	if err != nil {
		t.Fatalf("NewDroneEntity() error: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-(10+config.DroneOrbitRadius)) > 1e-9 {
		t.Errorf("drone should start on its orbit, got %v", pos.X)
	}
}
