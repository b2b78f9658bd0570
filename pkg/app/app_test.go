package app

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	name    string
	updates int
	draws   int
}

func (f *fakeScene) Update(deltaTime float64)  { f.updates++ }
func (f *fakeScene) Draw(screen *ebiten.Image) { f.draws++ }

// TestSceneManager 测试场景切换与分发
func TestSceneManager(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60)
	sm.Draw(nil)
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no active scene")
	}

	if sm.Load("setup") {
		t.Error("Expected Load to fail without factory")
	}

	created := map[string]*fakeScene{}
	sm.SetSceneFactory(func(name string) Scene {
		if name == "missing" {
			return nil
		}
		f := &fakeScene{name: name}
		created[name] = f
		return f
	})

	if !sm.Load("setup") {
		t.Fatal("Expected Load(setup) to succeed")
	}
	sm.Update(1.0 / 60)
	sm.Draw(nil)
	if created["setup"].updates != 1 || created["setup"].draws != 1 {
		t.Errorf("Expected 1 update and 1 draw, got %d/%d", created["setup"].updates, created["setup"].draws)
	}

	if sm.Load("missing") {
		t.Error("Expected Load(missing) to fail")
	}
	if sm.GetCurrentScene() != created["setup"] {
		t.Error("Expected failed load to keep the current scene")
	}

	sm.Load("play")
	sm.Update(1.0 / 60)
	if created["setup"].updates != 1 || created["play"].updates != 1 {
		t.Error("Expected only the active scene to receive updates")
	}
}

// TestLoadoutRows 测试准备界面的选项生成与默认值
func TestLoadoutRows(t *testing.T) {
	c := config.DefaultCatalog()
	rows := loadoutRows(c, Loadout{Engine: "bastion", Wagon: "tesla", Difficulty: "hard"})
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	tests := []struct {
		name    string
		row     *setupRow
		count   int
		initial string
	}{
		{"机车", rows[0], len(c.Engines), "bastion"},
		{"车厢", rows[1], 20, "tesla"},
		{"难度", rows[2], len(c.Difficulties), "hard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.row.options) != tt.count {
				t.Errorf("Expected %d options, got %d", tt.count, len(tt.row.options))
			}
			if len(tt.row.details) != len(tt.row.options) {
				t.Errorf("Expected a detail line per option")
			}
			if tt.row.value() != tt.initial {
				t.Errorf("Expected initial %s, got %s", tt.initial, tt.row.value())
			}
		})
	}

	unknown := loadoutRows(c, Loadout{Engine: "steamer"})
	if unknown[0].value() != c.Engines[0].ID {
		t.Errorf("Expected unknown engine to fall back to %s, got %s", c.Engines[0].ID, unknown[0].value())
	}
}

// TestSetupRowCycle 测试选项循环切换
func TestSetupRowCycle(t *testing.T) {
	r := &setupRow{options: []string{"a", "b", "c"}}

	tests := []struct {
		delta int
		want  string
	}{
		{1, "b"},
		{1, "c"},
		{1, "a"},
		{-1, "c"},
		{-4, "b"},
	}
	for _, tt := range tests {
		r.cycle(tt.delta)
		if r.value() != tt.want {
			t.Errorf("cycle(%d): expected %s, got %s", tt.delta, tt.want, r.value())
		}
	}

	empty := &setupRow{}
	empty.cycle(1)
	if empty.value() != "" {
		t.Error("Expected empty row to have no value")
	}
}

// TestCameraFor 测试两种摄像机模式的视口
func TestCameraFor(t *testing.T) {
	snap := game.Snapshot{TrainPos: utils.Vec2{X: 50, Y: -20}, WorldRadius: 600}

	follow := cameraFor(snap)
	if follow.Center != snap.TrainPos || follow.Zoom != config.FollowZoom {
		t.Errorf("Expected follow camera on train, got %+v", follow)
	}
	center := follow.WorldToScreen(snap.TrainPos)
	if center.X != config.GameWindowWidth/2 || center.Y != config.GameWindowHeight/2 {
		t.Errorf("Expected train at screen center, got %v", center)
	}

	snap.CameraMode = utils.CameraBirdseye
	bird := cameraFor(snap)
	if bird.Center != (utils.Vec2{}) {
		t.Errorf("Expected birdseye centered on origin, got %v", bird.Center)
	}
	edge := bird.WorldToScreen(utils.Vec2{Y: snap.WorldRadius})
	if edge.Y > config.GameWindowHeight {
		t.Errorf("Expected world edge on screen, got y=%v", edge.Y)
	}
}

// TestTrackPolyline 测试轨道采样闭合
func TestTrackPolyline(t *testing.T) {
	if trackPolyline(make([]components.TrackNode, 2)) != nil {
		t.Error("Expected nil polyline for degenerate track")
	}

	var nodes []components.TrackNode
	for _, p := range (config.TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200}).Points() {
		nodes = append(nodes, components.TrackNode{Pos: p})
	}
	poly := trackPolyline(nodes)
	if len(poly) != 8*config.TrackSamplesPerSegment+1 {
		t.Fatalf("Expected %d samples, got %d", 8*config.TrackSamplesPerSegment+1, len(poly))
	}
	if poly[0].Dist(poly[len(poly)-1]) > 1e-6 {
		t.Errorf("Expected closed polyline, ends at %v and %v", poly[0], poly[len(poly)-1])
	}
}

// TestTrackCache 测试轨道折线只在版本变化时重建
func TestTrackCache(t *testing.T) {
	var nodes []components.TrackNode
	for _, p := range (config.TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200}).Points() {
		nodes = append(nodes, components.TrackNode{Pos: p})
	}
	snap := game.Snapshot{TrackNodes: nodes, TrackVersion: 1}

	var cache trackCache
	first := cache.polyline(snap)
	if len(first) == 0 {
		t.Fatal("Expected a polyline for a valid track")
	}

	snap.TrackNodes = append([]components.TrackNode(nil), nodes...)
	snap.TrackNodes[0].Pos = utils.Vec2{X: 260}
	if got := cache.polyline(snap); got[0] != first[0] {
		t.Errorf("Expected cached polyline for the same version, got start %v", got[0])
	}

	snap.TrackVersion++
	if got := cache.polyline(snap); got[0] != snap.TrackNodes[0].Pos {
		t.Errorf("Expected rebuilt polyline starting at %v, got %v", snap.TrackNodes[0].Pos, got[0])
	}
}
