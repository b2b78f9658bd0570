package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// DepotSystem 站台系统
// 维护站台的接入状态，机车每圈经过已接入的站台时发放一次奖励
type DepotSystem struct {
	world  *game.World
	wagons *WagonSystem
}

// NewDepotSystem 创建站台系统
func NewDepotSystem(world *game.World, wagons *WagonSystem) *DepotSystem {
	return &DepotSystem{world: world, wagons: wagons}
}

// Update 刷新接入状态并检查机车经过
func (s *DepotSystem) Update() {
	w := s.world
	em := w.EntityManager
	track, ok := w.Track()
	if !ok || track.Len() == 0 {
		return
	}
	train, ok := w.Train()
	if !ok {
		return
	}
	lap := int(math.Floor(train.T / float64(track.Len())))

	for _, id := range ecs.GetEntitiesWith1[*components.DepotComponent](em) {
		depot, _ := ecs.GetComponent[*components.DepotComponent](em, id)
		depot.Connected = nodeNear(track, depot.Entrance) && nodeNear(track, depot.Exit)
		s.CheckPassage(id, lap)
	}
}

// nodeNear 是否有轨道节点位于接口附近
func nodeNear(track *components.TrackComponent, p utils.Vec2) bool {
	for _, n := range track.Nodes {
		if n.Pos.Dist(p) < config.DepotConnectRadius {
			return true
		}
	}
	return false
}

// CheckPassage 机车在第 lap 圈经过站台时发放奖励
// 站台未接入、机车不在附近或本圈已领取时返回 false
func (s *DepotSystem) CheckPassage(id ecs.EntityID, lap int) bool {
	w := s.world
	depot, ok := ecs.GetComponent[*components.DepotComponent](w.EntityManager, id)
	if !ok || !depot.Connected || lap <= depot.LastLapVisited {
		return false
	}
	pos, _ := positionOf(w.EntityManager, id)
	if pos.Dist(w.TrainPos()) >= config.DepotPassRadius {
		return false
	}

	depot.LastLapVisited = lap
	depot.Claimed++
	s.grant(depot, pos)
	return true
}

// grant 发放站台奖励
func (s *DepotSystem) grant(depot *components.DepotComponent, at utils.Vec2) {
	w := s.world
	train, ok := w.Train()
	if !ok {
		return
	}
	health, _ := w.TrainHealth()
	def, _ := w.Catalog.Depot(depot.Reward)
	text := depot.Title

	switch depot.Reward {
	case config.DepotGearbox:
		train.MaxSpeed += def.Amount
	case config.DepotExtender:
		train.BonusSlots += int(def.Amount)
		w.RefreshWagonCapacity()
	case config.DepotRecycler:
		if !s.wagons.RemoveLastWagon() {
			text = "NO WAGON"
			break
		}
		w.State.AddScrap(int(def.Amount))
		text = fmt.Sprintf("+%d SCRAP", int(def.Amount))
	case config.DepotRepair:
		if health != nil {
			health.MaxHP += def.Amount
			health.HP = health.MaxHP
		}
	case config.DepotArmory:
		train.GlobalDmgMult *= def.Amount
	case config.DepotReactor:
		train.GlobalFireRateMult *= def.Amount
	case config.DepotShield:
		if health != nil {
			health.MaxShield += def.Amount
			health.Shield += def.Amount
		}
	case config.DepotMagnet:
		train.Magnet *= def.Amount
	case config.DepotDrill:
		train.RamBonus += def.Amount
	case config.DepotLab:
		text = s.grantLab(train, int(def.Amount))
	default:
		log.Printf("[DepotSystem] unknown depot reward %q", depot.Reward)
		return
	}

	spawnFloater(w, at, text, entities.DepotColor(depot.Reward), 16)
	log.Printf("[DepotSystem] granted %s", depot.Reward)
}

// grantLab 挂接一节随机稀有车厢，容量已满时改发废料
func (s *DepotSystem) grantLab(train *components.TrainComponent, fallbackScrap int) string {
	w := s.world
	var pool []types.WagonType
	for _, c := range w.Catalog.Cards {
		if c.Kind == config.CardWagon && c.Rarity == config.RarityRare {
			pool = append(pool, c.Wagon)
		}
	}
	if len(pool) > 0 && train.HasCapacity() {
		t := pool[w.Rand.Intn(len(pool))]
		if _, ok := s.wagons.AddWagon(t); ok {
			return fmt.Sprintf("NEW %s", t)
		}
	}
	w.State.AddScrap(fallbackScrap)
	return fmt.Sprintf("+%d SCRAP", fallbackScrap)
}
