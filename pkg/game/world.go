package game

import (
	"math"
	"math/rand"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/utils"
)

// World 一局游戏的全部可变状态
// 各系统通过它读写实体、空间索引和数值状态
type World struct {
	EntityManager *ecs.EntityManager
	Grid          *utils.SpatialGrid
	Catalog       *config.Catalog
	State         *GameState
	Rand          *rand.Rand
	Actions       *ActionQueue

	TrainID ecs.EntityID
	TrackID ecs.EntityID

	// TrackVersion 轨道几何每变化一次加一，渲染层据此重建轨道缓存
	TrackVersion int
}

// NewWorld 创建空世界
func NewWorld(catalog *config.Catalog, seed int64) *World {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	return &World{
		EntityManager: ecs.NewEntityManager(),
		Grid:          utils.NewSpatialGrid(utils.DefaultGridCellSize),
		Catalog:       catalog,
		State:         NewGameState(),
		Rand:          rand.New(rand.NewSource(seed)),
		Actions:       NewActionQueue(),
	}
}

// Train 返回机车组件
func (w *World) Train() (*components.TrainComponent, bool) {
	return ecs.GetComponent[*components.TrainComponent](w.EntityManager, w.TrainID)
}

// TrainHealth 返回机车生命值组件
func (w *World) TrainHealth() (*components.HealthComponent, bool) {
	return ecs.GetComponent[*components.HealthComponent](w.EntityManager, w.TrainID)
}

// TrainPos 返回机车位置，机车不存在时返回原点
func (w *World) TrainPos() utils.Vec2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.TrainID)
	if !ok {
		return utils.Vec2{}
	}
	return pos.Vec()
}

// Track 返回轨道组件
func (w *World) Track() (*components.TrackComponent, bool) {
	return ecs.GetComponent[*components.TrackComponent](w.EntityManager, w.TrackID)
}

// WagonCount 当前车厢数量
func (w *World) WagonCount() int {
	train, ok := w.Train()
	if !ok {
		return 0
	}
	return len(train.Wagons)
}

// RefreshWagonCapacity 按节点数重算车厢上限
func (w *World) RefreshWagonCapacity() {
	train, ok := w.Train()
	if !ok {
		return
	}
	track, ok := w.Track()
	if !ok {
		return
	}
	train.MaxWagons = track.Len() + train.BonusSlots
}

// MarkTrackChanged 记录一次轨道几何变化
func (w *World) MarkTrackChanged() {
	w.TrackVersion++
}

// RandomAngle 均匀分布的随机角度
func (w *World) RandomAngle() float64 {
	return w.Rand.Float64() * 2 * math.Pi
}
