package systems

import (
	"testing"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// newTestWorld 创建一局已开始的游戏：8 节点圆形轨道，pioneer 机车停在原点
func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	w := game.NewWorld(nil, 42)

	engine, ok := w.Catalog.Engine("pioneer")
	if !ok {
		t.Fatal("pioneer engine missing from default catalog")
	}
	trackID, err := entities.NewTrackEntity(w.EntityManager, engine.Track.Points())
	if err != nil {
		t.Fatalf("NewTrackEntity failed: %v", err)
	}
	trainID, err := entities.NewLocomotiveEntity(w.EntityManager, engine)
	if err != nil {
		t.Fatalf("NewLocomotiveEntity failed: %v", err)
	}
	w.TrackID, w.TrainID = trackID, trainID

	train, _ := w.Train()
	InitHistory(train)
	w.RefreshWagonCapacity()
	w.State.Phase = game.PhasePlay
	return w
}

// spawnTestEnemy 在指定位置生成敌人并重建网格
func spawnTestEnemy(t *testing.T, w *game.World, typ types.EnemyType, pos utils.Vec2) ecs.EntityID {
	t.Helper()
	id, ok := spawnEnemy(w, typ, pos, false, false)
	if !ok {
		t.Fatalf("failed to spawn %s", typ)
	}
	NewGridSystem(w).Update()
	return id
}

func countWith[T any](w *game.World) int {
	return len(ecs.GetEntitiesWith1[T](w.EntityManager))
}

func lootOf(w *game.World, kind components.LootKind) []*components.LootComponent {
	var out []*components.LootComponent
	for _, id := range ecs.GetEntitiesWith1[*components.LootComponent](w.EntityManager) {
		l, _ := ecs.GetComponent[*components.LootComponent](w.EntityManager, id)
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}
