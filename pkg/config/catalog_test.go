package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/loopline/pkg/embedded"
	"github.com/gonewx/loopline/pkg/types"
)

const minimalCatalog = `
cards:
  - { id: gunner, kind: wagon, title: GUNNER CAR, rarity: common }
  - { id: repair, kind: stat, title: FULL REPAIR, rarity: common }
engines:
  - id: pioneer
    name: THE PIONEER
    hp: 100
    speed: 5
    magnet: 120
    track: { kind: circle, nodes: 8, radiusX: 200 }
difficulties:
  - { id: normal, label: ENGINEER, multiplier: 1.0, spawnRateBase: 180 }
enemies:
  - { type: normal, hp: 40, speed: 1.2, size: 14, score: 10, xp: 10 }
  - { type: swarmer, hp: 10, speed: 2.8, size: 8, score: 5, xp: 5, band: { afterWave: 2, min: 0, max: 0.3 } }
  - { type: crusher, hp: 2000, speed: 0.8, size: 40, score: 500, xp: 200 }
bosses: [crusher]
`

func TestParseCatalog(t *testing.T) {
	t.Run("解析有效目录", func(t *testing.T) {
		c, err := ParseCatalog([]byte(minimalCatalog))
		if err != nil {
			t.Fatalf("ParseCatalog failed: %v", err)
		}

		gunner, ok := c.Card("gunner")
		if !ok {
			t.Fatal("gunner card not found")
		}
		if gunner.Wagon != types.WagonGunner {
			t.Errorf("gunner wagon type: expected %v, got %v", types.WagonGunner, gunner.Wagon)
		}
		if gunner.MaxLevel != WagonMaxLevel {
			t.Errorf("gunner maxLevel default: expected %d, got %d", WagonMaxLevel, gunner.MaxLevel)
		}
		if gunner.Weight != DefaultWagonWeight {
			t.Errorf("gunner weight default: expected %v, got %v", DefaultWagonWeight, gunner.Weight)
		}

		swarmer, ok := c.Enemy(types.EnemySwarmer)
		if !ok {
			t.Fatal("swarmer definition not found")
		}
		if swarmer.Band == nil || swarmer.Band.AfterWave != 2 || swarmer.Band.Max != 0.3 {
			t.Errorf("swarmer band not parsed: %+v", swarmer.Band)
		}
		if len(c.Bosses) != 1 || c.Bosses[0] != types.EnemyCrusher {
			t.Errorf("boss roster: expected [crusher], got %v", c.Bosses)
		}
	})

	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "未知车厢卡",
			mutate:  func(s string) string { return strings.Replace(s, "id: gunner", "id: ballista", 1) },
			wantErr: "card ballista",
		},
		{
			name:    "未知属性卡",
			mutate:  func(s string) string { return strings.Replace(s, "id: repair", "id: luck", 1) },
			wantErr: "unknown stat effect",
		},
		{
			name:    "未知稀有度",
			mutate:  func(s string) string { return strings.Replace(s, "kind: stat, title: FULL REPAIR, rarity: common", "kind: stat, rarity: mythic", 1) },
			wantErr: "unknown rarity",
		},
		{
			name:    "轨道节点不足",
			mutate:  func(s string) string { return strings.Replace(s, "nodes: 8", "nodes: 3", 1) },
			wantErr: "at least 4 nodes",
		},
		{
			name:    "未知轨道形状",
			mutate:  func(s string) string { return strings.Replace(s, "kind: circle", "kind: square", 1) },
			wantErr: "unknown track kind",
		},
		{
			name:    "刷怪间隔过低",
			mutate:  func(s string) string { return strings.Replace(s, "spawnRateBase: 180", "spawnRateBase: 10", 1) },
			wantErr: "spawnRateBase",
		},
		{
			name:    "Boss 轮换包含普通敌人",
			mutate:  func(s string) string { return strings.Replace(s, "bosses: [crusher]", "bosses: [tank]", 1) },
			wantErr: "not a boss type",
		},
		{
			name:    "Boss 缺少定义",
			mutate:  func(s string) string { return strings.Replace(s, "bosses: [crusher]", "bosses: [queen]", 1) },
			wantErr: "has no enemy definition",
		},
		{
			name:    "区间上下限颠倒",
			mutate:  func(s string) string { return strings.Replace(s, "min: 0, max: 0.3", "min: 0.5, max: 0.3", 1) },
			wantErr: "band min",
		},
		{
			name:    "缺少普通敌人",
			mutate:  func(s string) string { return strings.Replace(s, "type: normal", "type: tank", 1) },
			wantErr: "enemy definition for normal is required",
		},
		{
			name:    "YAML 语法错误",
			mutate:  func(s string) string { return s + "\n  - [unclosed" },
			wantErr: "failed to parse catalog YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.mutate(minimalCatalog)))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("从内嵌资源加载", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultCatalogPath: &fstest.MapFile{Data: []byte(minimalCatalog)},
		})
		defer embedded.Reset()

		c, err := LoadCatalog(DefaultCatalogPath)
		if err != nil {
			t.Fatalf("LoadCatalog failed: %v", err)
		}
		if _, ok := c.Engine("pioneer"); !ok {
			t.Error("pioneer engine not found")
		}
	})

	t.Run("内嵌资源缺失", func(t *testing.T) {
		embedded.Init(fstest.MapFS{})
		defer embedded.Reset()

		if _, err := LoadCatalog(DefaultCatalogPath); err == nil {
			t.Error("expected error for missing catalog")
		}
	})

	t.Run("未内嵌时使用内置目录", func(t *testing.T) {
		embedded.Init(fstest.MapFS{})
		defer embedded.Reset()

		c, err := LoadEmbeddedCatalog()
		if err != nil {
			t.Fatalf("LoadEmbeddedCatalog failed: %v", err)
		}
		if len(c.Engines) != len(DefaultCatalog().Engines) {
			t.Errorf("Expected built-in engines, got %d", len(c.Engines))
		}
	})

	t.Run("内嵌目录非法", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultCatalogPath: &fstest.MapFile{Data: []byte("engines: [")},
		})
		defer embedded.Reset()

		if _, err := LoadEmbeddedCatalog(); err == nil {
			t.Error("expected error for malformed embedded catalog")
		}
	})

	t.Run("内嵌目录优先", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			DefaultCatalogPath: &fstest.MapFile{Data: []byte(minimalCatalog)},
		})
		defer embedded.Reset()

		c, err := LoadEmbeddedCatalog()
		if err != nil {
			t.Fatalf("LoadEmbeddedCatalog failed: %v", err)
		}
		if d, ok := c.Difficulty("normal"); !ok || d.SpawnRateBase != 180 {
			t.Errorf("Expected embedded catalog, got %+v, ok=%v", d, ok)
		}
	})

	t.Run("从磁盘加载", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, []byte(minimalCatalog), 0644); err != nil {
			t.Fatalf("Failed to write test catalog: %v", err)
		}
		c, err := LoadCatalogFile(path)
		if err != nil {
			t.Fatalf("LoadCatalogFile failed: %v", err)
		}
		if d, ok := c.Difficulty("normal"); !ok || d.SpawnRateBase != 180 {
			t.Errorf("normal difficulty: got %+v, ok=%v", d, ok)
		}
	})

	t.Run("磁盘文件不存在", func(t *testing.T) {
		if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

// TestCatalogFileMatchesDefaults 确保仓库中的 data/catalog.yaml 与内置目录一致
func TestCatalogFileMatchesDefaults(t *testing.T) {
	fromFile, err := LoadCatalogFile(filepath.Join("..", "..", DefaultCatalogPath))
	if err != nil {
		t.Fatalf("LoadCatalogFile failed: %v", err)
	}
	def := DefaultCatalog()

	if len(fromFile.Cards) != len(def.Cards) {
		t.Fatalf("card count: file %d, defaults %d", len(fromFile.Cards), len(def.Cards))
	}
	for i, want := range def.Cards {
		got := fromFile.Cards[i]
		if got.ID != want.ID || got.Kind != want.Kind || got.Rarity != want.Rarity ||
			got.Weight != want.Weight || got.Amount != want.Amount || got.Wagon != want.Wagon {
			t.Errorf("card %d: file %+v, defaults %+v", i, got, want)
		}
	}

	for _, want := range def.Engines {
		got, ok := fromFile.Engine(want.ID)
		if !ok {
			t.Errorf("engine %s missing from file", want.ID)
			continue
		}
		if got.HP != want.HP || got.Speed != want.Speed || got.Scrap != want.Scrap || got.Track != want.Track {
			t.Errorf("engine %s: file %+v, defaults %+v", want.ID, got, want)
		}
	}

	for _, want := range def.Enemies {
		got, ok := fromFile.Enemy(want.Type)
		if !ok {
			t.Errorf("enemy %s missing from file", want.Type)
			continue
		}
		if got.HP != want.HP || got.Speed != want.Speed || got.Size != want.Size || got.XP != want.XP {
			t.Errorf("enemy %s: file %+v, defaults %+v", want.Type, got, want)
		}
		if (got.Band == nil) != (want.Band == nil) || (got.Band != nil && *got.Band != *want.Band) {
			t.Errorf("enemy %s band: file %+v, defaults %+v", want.Type, got.Band, want.Band)
		}
	}

	for _, want := range def.Depots {
		got, ok := fromFile.Depot(want.ID)
		if !ok || got.Amount != want.Amount {
			t.Errorf("depot %s: file %+v, defaults %+v", want.ID, got, want)
		}
	}

	if len(fromFile.Bosses) != len(def.Bosses) {
		t.Fatalf("boss roster length: file %d, defaults %d", len(fromFile.Bosses), len(def.Bosses))
	}
	for i := range def.Bosses {
		if fromFile.Bosses[i] != def.Bosses[i] {
			t.Errorf("boss %d: file %v, defaults %v", i, fromFile.Bosses[i], def.Bosses[i])
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if err := validateCatalog(c); err != nil {
		t.Fatalf("default catalog is invalid: %v", err)
	}

	for _, wt := range types.AllWagonTypes() {
		if _, ok := c.WagonCard(wt); !ok {
			t.Errorf("wagon %s has no card", wt)
		}
	}
	for _, et := range types.AllEnemyTypes() {
		if _, ok := c.Enemy(et); !ok {
			t.Errorf("enemy %s has no definition", et)
		}
	}

	d, ok := c.Difficulty("hard")
	if !ok || d.Multiplier != 1.2 || d.SpawnRateBase != 120 {
		t.Errorf("hard difficulty: got %+v", d)
	}
	if c.WagonWeight(types.WagonShield) != 20 {
		t.Errorf("shield weight: expected 20, got %v", c.WagonWeight(types.WagonShield))
	}
	if c.WagonWeight(types.WagonUnknown) != DefaultWagonWeight {
		t.Errorf("unknown wagon weight should fall back to default")
	}
}

func TestTrackShapePoints(t *testing.T) {
	tests := []struct {
		name  string
		shape TrackShape
		check func(t *testing.T, i int, x, y float64)
	}{
		{
			name:  "圆形",
			shape: TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200},
			check: func(t *testing.T, i int, x, y float64) {
				if r := math.Hypot(x, y); math.Abs(r-200) > 1e-9 {
					t.Errorf("node %d radius: expected 200, got %v", i, r)
				}
			},
		},
		{
			name:  "八字形",
			shape: TrackShape{Kind: "lissajous", Nodes: 12, RadiusX: 200, RadiusY: 100},
			check: func(t *testing.T, i int, x, y float64) {
				if math.Abs(x) > 200+1e-9 || math.Abs(y) > 100+1e-9 {
					t.Errorf("node %d out of bounds: (%v, %v)", i, x, y)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := tt.shape.Points()
			if len(pts) != tt.shape.Nodes {
				t.Fatalf("expected %d points, got %d", tt.shape.Nodes, len(pts))
			}
			for i, p := range pts {
				tt.check(t, i, p.X, p.Y)
			}
		})
	}
}

func TestSpawnBandMatches(t *testing.T) {
	band := SpawnBand{AfterWave: 2, Min: 0.5, Max: 0.6}
	tests := []struct {
		name string
		wave int
		r    float64
		want bool
	}{
		{"波次未到", 2, 0.55, false},
		{"区间内", 3, 0.55, true},
		{"下限不含", 3, 0.5, false},
		{"上限不含", 3, 0.6, false},
		{"区间外", 10, 0.7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := band.Matches(tt.wave, tt.r); got != tt.want {
				t.Errorf("Matches(%d, %v) = %v, want %v", tt.wave, tt.r, got, tt.want)
			}
		})
	}
}

func TestWagonProfiles(t *testing.T) {
	for _, wt := range types.AllWagonTypes() {
		t.Run(wt.String(), func(t *testing.T) {
			p := GetWagonProfile(wt)
			if p.Stats.TurnRate <= 0 {
				t.Errorf("turn rate must be positive, got %v", p.Stats.TurnRate)
			}
			switch p.Mode {
			case FireProjectile, FireCross:
				if p.Range <= 0 || p.Cooldown <= 0 || p.ProjectileSpeed <= 0 {
					t.Errorf("shooting wagon needs range, cooldown and speed: %+v", p)
				}
			case FireInstant, FireShockwave:
				if p.Range <= 0 || p.Cooldown <= 0 {
					t.Errorf("area wagon needs range and cooldown: %+v", p)
				}
			}
		})
	}

	if GetWagonProfile(types.WagonUnknown).Mode != FirePassive {
		t.Error("unknown wagon should be passive")
	}
	if !GetWagonProfile(types.WagonSniper).HasTurret() {
		t.Error("sniper should have a turret")
	}
	if GetWagonProfile(types.WagonTesla).HasTurret() {
		t.Error("tesla should not need a turret")
	}
}
