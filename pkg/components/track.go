package components

import "github.com/gonewx/loopline/pkg/utils"

// TrackNode 轨道控制点
type TrackNode struct {
	Pos       utils.Vec2 // 当前位置（列车沿此位置行驶）
	Target    utils.Vec2 // 缓动目标位置
	HasTarget bool       // 是否正在向 Target 缓动
	Fixed     bool       // 已接入站台接口，不可拖拽
}

// RejectReason 轨道编辑被拒绝的原因，同时作为飘字文本
type RejectReason string

const (
	ReasonNone         RejectReason = ""
	ReasonTooSharp     RejectReason = "TOO SHARP"
	ReasonTrainOnTrack RejectReason = "TRAIN ON TRACK"
	ReasonNoScrap      RejectReason = "NO SCRAP"
	ReasonFixedNode    RejectReason = "LOCKED"
	ReasonOutOfBounds  RejectReason = "OUT OF BOUNDS"
	ReasonTooClose     RejectReason = "TOO CLOSE"
	ReasonMinNodes     RejectReason = "MIN NODES"
	ReasonNoTarget     RejectReason = "NO TARGET"
)

// DragState 拖拽中的幽灵节点
// 拖拽期间节点本身不动，提交后才写入 Target
type DragState struct {
	Active bool
	Index  int
	Pos    utils.Vec2
	Valid  bool
	Reason RejectReason
	Cost   int
}

// TrackComponent 闭合 Catmull-Rom 轨道
// Nodes 为循环有序列表，长度不少于 4
type TrackComponent struct {
	Nodes []TrackNode
	Drag  DragState
}

// NewTrackComponent 用控制点创建轨道，目标位置初始化为自身
func NewTrackComponent(points []utils.Vec2) *TrackComponent {
	nodes := make([]TrackNode, len(points))
	for i, p := range points {
		nodes[i] = TrackNode{Pos: p, Target: p}
	}
	return &TrackComponent{Nodes: nodes}
}

// Len 节点数量
func (t *TrackComponent) Len() int {
	return len(t.Nodes)
}

// Points 返回当前节点位置的副本
func (t *TrackComponent) Points() []utils.Vec2 {
	pts := make([]utils.Vec2, len(t.Nodes))
	for i, n := range t.Nodes {
		pts[i] = n.Pos
	}
	return pts
}
