package systems

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/utils"
)

// TestBeginDragLocked 测试机车所在节点不可拖拽
func TestBeginDragLocked(t *testing.T) {
	w := newTestWorld(t)
	editor := NewTrackEditorSystem(w)
	track, _ := w.Track()

	tests := []struct {
		name       string
		node       int
		wantOK     bool
		wantReason components.RejectReason
	}{
		{"机车所在节点", 0, false, components.ReasonTrainOnTrack},
		{"相邻节点", 1, false, components.ReasonTrainOnTrack},
		{"对侧节点", 4, true, components.ReasonNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor.CancelDrag()
			res := editor.BeginDrag(track.Nodes[tt.node].Pos)
			if res.OK != tt.wantOK || res.Reason != tt.wantReason {
				t.Errorf("Expected ok=%v reason=%q, got ok=%v reason=%q", tt.wantOK, tt.wantReason, res.OK, res.Reason)
			}
			if track.Drag.Active != tt.wantOK {
				t.Errorf("drag active: expected %v, got %v", tt.wantOK, track.Drag.Active)
			}
		})
	}
}

// TestDragCommit 测试合法拖拽提交后扣费并缓动
func TestDragCommit(t *testing.T) {
	w := newTestWorld(t)
	editor := NewTrackEditorSystem(w)
	track, _ := w.Track()
	target := utils.V(-215, 0)

	if res := editor.BeginDrag(track.Nodes[4].Pos); !res.OK {
		t.Fatalf("BeginDrag failed: %q", res.Reason)
	}
	res := editor.UpdateDrag(target)
	if !res.OK || res.Cost <= 0 {
		t.Fatalf("Expected valid drag with cost, got %+v", res)
	}
	if track.Nodes[4].Pos == target {
		t.Error("node must not move while dragging")
	}

	scrap := w.State.Scrap
	if res := editor.EndDrag(); !res.OK {
		t.Fatalf("EndDrag failed: %q", res.Reason)
	}
	if w.State.Scrap != scrap-res.Cost {
		t.Errorf("Expected scrap %d, got %d", scrap-res.Cost, w.State.Scrap)
	}
	for i := 0; i < 100; i++ {
		editor.Update()
	}
	if track.Nodes[4].Pos != target || track.Nodes[4].HasTarget {
		t.Errorf("node should settle at target, got %+v", track.Nodes[4])
	}
}

// TestDragReject 测试非法拖拽回退且不扣费
func TestDragReject(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(w *game.World)
		target     func(track *components.TrackComponent) utils.Vec2
		wantReason components.RejectReason
	}{
		{
			name:       "转角过急",
			target:     func(*components.TrackComponent) utils.Vec2 { return utils.V(-600, 0) },
			wantReason: components.ReasonTooSharp,
		},
		{
			name: "拖拽中机车驶入",
			setup: func(w *game.World) {
				train, _ := w.Train()
				train.T = 4.5
			},
			target:     func(*components.TrackComponent) utils.Vec2 { return utils.V(-215, 0) },
			wantReason: components.ReasonTrainOnTrack,
		},
		{
			name: "距相邻节点过近",
			target: func(track *components.TrackComponent) utils.Vec2 {
				return track.Nodes[3].Pos.Add(utils.V(1, 0))
			},
			wantReason: components.ReasonTooClose,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			editor := NewTrackEditorSystem(w)
			track, _ := w.Track()
			orig := track.Nodes[4].Pos

			if res := editor.BeginDrag(orig); !res.OK {
				t.Fatalf("BeginDrag failed: %q", res.Reason)
			}
			if res := editor.UpdateDrag(utils.V(-215, 0)); !res.OK {
				t.Fatalf("Expected a valid drag first, got %q", res.Reason)
			}
			if tt.setup != nil {
				tt.setup(w)
			}

			res := editor.UpdateDrag(tt.target(track))
			if res.OK || res.Reason != tt.wantReason {
				t.Errorf("Expected reason %q, got ok=%v reason=%q", tt.wantReason, res.OK, res.Reason)
			}
			if track.Drag.Valid {
				t.Error("drag ghost should be marked invalid")
			}

			scrap := w.State.Scrap
			if res := editor.EndDrag(); res.OK || res.Reason != tt.wantReason {
				t.Errorf("Expected EndDrag rejected with %q, got ok=%v reason=%q", tt.wantReason, res.OK, res.Reason)
			}
			if w.State.Scrap != scrap {
				t.Errorf("Expected scrap %d, got %d", scrap, w.State.Scrap)
			}
			if track.Nodes[4].Pos != orig || track.Nodes[4].HasTarget {
				t.Errorf("rejected drag must not move the node, got %+v", track.Nodes[4])
			}
			if track.Drag.Active {
				t.Error("drag should be cleared")
			}
		})
	}
}

// TestAddNodeCancelsDrag 测试插入节点会取消进行中的拖拽
func TestAddNodeCancelsDrag(t *testing.T) {
	w := newTestWorld(t)
	editor := NewTrackEditorSystem(w)
	track, _ := w.Track()
	w.State.Scrap = 1000

	if res := editor.BeginDrag(track.Nodes[4].Pos); !res.OK {
		t.Fatalf("BeginDrag failed: %q", res.Reason)
	}
	editor.UpdateDrag(utils.V(-215, 0))

	mid := utils.SplinePoint(track.Points(), 2.5)
	if res := editor.AddNode(mid); !res.OK {
		t.Fatalf("AddNode failed: %q", res.Reason)
	}
	if track.Drag.Active {
		t.Error("Expected AddNode to cancel the pending drag")
	}
	if res := editor.EndDrag(); res.OK {
		t.Error("Expected EndDrag to find nothing to commit")
	}
}

// TestTrackVersion 测试轨道几何变化时版本号递增
func TestTrackVersion(t *testing.T) {
	w := newTestWorld(t)
	editor := NewTrackEditorSystem(w)
	track, _ := w.Track()

	v := w.TrackVersion
	editor.Update()
	if w.TrackVersion != v {
		t.Errorf("Expected version %d while idle, got %d", v, w.TrackVersion)
	}

	editor.BeginDrag(track.Nodes[4].Pos)
	editor.UpdateDrag(utils.V(-215, 0))
	if w.TrackVersion != v {
		t.Error("dragging alone must not change the version")
	}
	if res := editor.EndDrag(); !res.OK {
		t.Fatalf("EndDrag failed: %q", res.Reason)
	}
	committed := w.TrackVersion
	if committed <= v {
		t.Errorf("Expected version to grow after commit, got %d", committed)
	}
	editor.Update()
	if w.TrackVersion <= committed {
		t.Error("Expected easing to bump the version")
	}
}

// TestAddNode 测试插入节点
func TestAddNode(t *testing.T) {
	t.Run("插入成功", func(t *testing.T) {
		w := newTestWorld(t)
		editor := NewTrackEditorSystem(w)
		track, _ := w.Track()
		w.State.Scrap = 100
		pos := utils.SplinePoint(track.Points(), 0.5)

		res := editor.AddNode(pos)
		if !res.OK {
			t.Fatalf("AddNode rejected: %q", res.Reason)
		}
		train, _ := w.Train()
		if w.State.Scrap != 60 || track.Len() != 9 || train.MaxWagons != 9 {
			t.Errorf("Expected scrap 60 nodes 9 capacity 9, got %d/%d/%d", w.State.Scrap, track.Len(), train.MaxWagons)
		}
		if track.Nodes[1].Pos != pos {
			t.Errorf("new node should sit at index 1, got %+v", track.Nodes[1].Pos)
		}
		if len(train.History) != 1 {
			t.Errorf("history should reset to one point, got %d", len(train.History))
		}
	})

	t.Run("废料不足", func(t *testing.T) {
		w := newTestWorld(t)
		editor := NewTrackEditorSystem(w)
		track, _ := w.Track()
		w.State.Scrap = config.NodeCost - 1

		res := editor.AddNode(utils.SplinePoint(track.Points(), 0.5))
		if res.OK || res.Reason != components.ReasonNoScrap {
			t.Errorf("Expected NO SCRAP, got %+v", res)
		}
		if track.Len() != 8 || w.State.Scrap != config.NodeCost-1 {
			t.Error("rejected insert must not change state")
		}
	})

	t.Run("远离轨道", func(t *testing.T) {
		w := newTestWorld(t)
		res := NewTrackEditorSystem(w).AddNode(utils.Vec2{})
		if res.OK || res.Reason != components.ReasonNoTarget {
			t.Errorf("Expected NO TARGET, got %+v", res)
		}
	})
}

// TestDeleteNode 测试删除节点
func TestDeleteNode(t *testing.T) {
	w := newTestWorld(t)
	editor := NewTrackEditorSystem(w)
	track, _ := w.Track()
	train, _ := w.Train()

	if res := editor.DeleteNode(track.Nodes[4].Pos); !res.OK {
		t.Fatalf("DeleteNode rejected: %q", res.Reason)
	}
	if track.Len() != 7 || train.MaxWagons != 7 || w.State.Scrap != 100-config.NodeDeleteCost {
		t.Errorf("Expected 7 nodes, capacity 7, scrap %d; got %d/%d/%d", 100-config.NodeDeleteCost, track.Len(), train.MaxWagons, w.State.Scrap)
	}

	for track.Len() > config.MinTrackNodes {
		editor.DeleteNode(track.Nodes[track.Len()-1].Pos)
	}
	if res := editor.DeleteNode(track.Nodes[0].Pos); res.OK || res.Reason != components.ReasonMinNodes {
		t.Errorf("Expected MIN NODES, got %+v", res)
	}
}
