package utils

import (
	"math"

	"github.com/gonewx/loopline/pkg/ecs"
)

// DefaultGridCellSize 空间网格默认单元格边长
const DefaultGridCellSize = 150.0

// GridEntry 网格中的一个条目
type GridEntry struct {
	ID  ecs.EntityID
	Pos Vec2
}

type cellKey struct {
	cx, cy int
}

// SpatialGrid 均匀网格空间索引
// 每帧 Clear 后重新填充，不做增量更新
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey][]GridEntry
	count    int
}

// NewSpatialGrid 创建空间网格，cellSize <= 0 时使用默认值
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DefaultGridCellSize
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]GridEntry),
	}
}

func (g *SpatialGrid) keyFor(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / g.cellSize)),
		cy: int(math.Floor(y / g.cellSize)),
	}
}

// Clear 清空网格（保留已分配的桶以复用内存）
func (g *SpatialGrid) Clear() {
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	g.count = 0
}

// Add 按当前位置将实体放入对应的桶
func (g *SpatialGrid) Add(id ecs.EntityID, pos Vec2) {
	k := g.keyFor(pos.X, pos.Y)
	g.cells[k] = append(g.cells[k], GridEntry{ID: id, Pos: pos})
	g.count++
}

// Len 返回网格中的条目数
func (g *SpatialGrid) Len() int {
	return g.count
}

// Query 返回与 (x, y) 欧氏距离不超过 r 的所有条目
// 扫描 ceil(r/cellSize) 圈相邻桶后做精确距离过滤
func (g *SpatialGrid) Query(x, y, r float64) []GridEntry {
	if r < 0 {
		return nil
	}
	center := g.keyFor(x, y)
	rings := int(math.Ceil(r / g.cellSize))
	origin := Vec2{x, y}

	var out []GridEntry
	for dy := -rings; dy <= rings; dy++ {
		for dx := -rings; dx <= rings; dx++ {
			bucket := g.cells[cellKey{center.cx + dx, center.cy + dy}]
			for _, e := range bucket {
				if e.Pos.Dist(origin) <= r {
					out = append(out, e)
				}
			}
		}
	}
	return out
}
