package systems

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
)

// TestLookupHistory 测试历史插值
func TestLookupHistory(t *testing.T) {
	history := []components.HistoryPoint{{Dist: 0, T: 0}, {Dist: 10, T: 1}, {Dist: 20, T: 1.5}}
	tests := []struct {
		name   string
		dist   float64
		want   float64
		wantOK bool
	}{
		{"早于最早记录", -1, 0, false},
		{"恰好命中", 10, 1, true},
		{"线性插值", 5, 0.5, true},
		{"晚于最新记录", 30, 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupHistory(history, tt.dist)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("LookupHistory(%v): expected %v/%v, got %v/%v", tt.dist, tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

// TestHistoryOrdering 测试前进和倒车后历史里程保持单调
func TestHistoryOrdering(t *testing.T) {
	w := newTestWorld(t)
	loco := NewLocomotionSystem(w)
	train, _ := w.Train()

	loco.ShiftGear(2)
	for i := 0; i < 200; i++ {
		loco.Update()
	}
	loco.ShiftGear(-10)
	for i := 0; i < 200; i++ {
		loco.Update()
	}

	if train.Gear != config.MinGear {
		t.Errorf("Expected gear clamped to %d, got %d", config.MinGear, train.Gear)
	}
	if train.Speed >= 0 {
		t.Errorf("Expected reversing speed, got %v", train.Speed)
	}
	for i := 1; i < len(train.History); i++ {
		if train.History[i].Dist < train.History[i-1].Dist {
			t.Fatalf("history not monotonic at %d: %v < %v", i, train.History[i].Dist, train.History[i-1].Dist)
		}
	}
	if last := train.History[len(train.History)-1].Dist; last > train.TotalDist {
		t.Errorf("history runs ahead of the train: %v > %v", last, train.TotalDist)
	}
}

// TestWagonsFollowTrain 测试车厢按间距排在机车后方
func TestWagonsFollowTrain(t *testing.T) {
	w := newTestWorld(t)
	loco := NewLocomotionSystem(w)
	wagons := NewWagonSystem(w)
	first, _ := wagons.AddWagon(types.WagonGunner)
	second, _ := wagons.AddWagon(types.WagonMiner)
	train, _ := w.Train()

	loco.ShiftGear(2)
	for i := 0; i < 120; i++ {
		loco.Update()
	}

	a, _ := ecs.GetComponent[*components.WagonComponent](w.EntityManager, first)
	b, _ := ecs.GetComponent[*components.WagonComponent](w.EntityManager, second)
	if !(train.T > a.T && a.T > b.T) {
		t.Errorf("Expected train.T > wagon1.T > wagon2.T, got %v %v %v", train.T, a.T, b.T)
	}
	pa, _ := positionOf(w.EntityManager, first)
	if d := pa.Dist(w.TrainPos()); d < config.WagonSpacing*0.5 || d > config.WagonSpacing*1.5 {
		t.Errorf("first wagon should trail by about %v px, got %v", config.WagonSpacing, d)
	}
}

// TestTotalWeight 测试车厢重量影响总重
func TestTotalWeight(t *testing.T) {
	w := newTestWorld(t)
	loco := NewLocomotionSystem(w)
	if got := loco.TotalWeight(); got != config.LocomotiveWeight {
		t.Errorf("Expected %v, got %v", config.LocomotiveWeight, got)
	}
	NewWagonSystem(w).AddWagon(types.WagonGunner)
	if got := loco.TotalWeight(); got != config.LocomotiveWeight+w.Catalog.WagonWeight(types.WagonGunner) {
		t.Errorf("wagon weight not counted, got %v", got)
	}
}
