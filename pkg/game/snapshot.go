package game

import (
	"image/color"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// OwnedWagon 已挂接车厢的摘要
type OwnedWagon struct {
	ID       ecs.EntityID
	Type     types.WagonType
	Level    int
	MaxLevel int
}

// WagonView 车厢的绘制数据
type WagonView struct {
	OwnedWagon
	Pos          utils.Vec2
	Angle        float64
	TurretAngle  float64
	CooldownFrac float64 // 0 表示可开火
}

// EnemyView 敌人的绘制数据
type EnemyView struct {
	ID     ecs.EntityID
	Type   types.EnemyType
	Pos    utils.Vec2
	Size   float64
	HP     float64
	MaxHP  float64
	Shield float64
	Elite  bool
	Rare   bool
	Frozen bool
}

// ProjectileView 子弹的绘制数据
type ProjectileView struct {
	Pos     utils.Vec2
	Vel     utils.Vec2
	Size    float64
	Color   color.RGBA
	Hostile bool
}

// LootView 掉落物的绘制数据
type LootView struct {
	Pos   utils.Vec2
	Kind  components.LootKind
	Value int
}

// DepotView 站台的绘制数据
type DepotView struct {
	Pos       utils.Vec2
	Entrance  utils.Vec2
	Exit      utils.Vec2
	Reward    config.DepotReward
	Title     string
	Connected bool
}

// CrystalView 水晶的绘制数据
type CrystalView struct {
	Pos   utils.Vec2
	Stage int
}

// MineView 地雷的绘制数据
type MineView struct {
	Pos    utils.Vec2
	Radius float64
	Fade   float64
}

// FloaterView 飘字的绘制数据
type FloaterView struct {
	Pos   utils.Vec2
	Text  string
	Color color.RGBA
	Size  float64
	Fade  float64
}

// ParticleView 粒子的绘制数据，闪电从 Pos 画到 End
type ParticleView struct {
	Pos       utils.Vec2
	End       utils.Vec2
	Color     color.RGBA
	Size      float64
	Lightning bool
	Fade      float64
}

// Snapshot 一个 tick 结束时对外发布的只读状态
// 所有字段都是值拷贝，持有者修改它不会影响模拟
type Snapshot struct {
	Tick  int
	Phase Phase

	HP        float64
	MaxHP     float64
	Shield    float64
	MaxShield float64

	Scrap int
	Score int
	Wave  int
	Level int
	XP    int
	MaxXP int

	WagonCount    int
	MaxWagonCount int
	OwnedWagons   []OwnedWagon

	Speed      float64
	Gear       int
	TrainPos   utils.Vec2
	TrainAngle float64

	WaveTimer    int
	WaveDuration int
	WorldRadius  float64

	CameraMode utils.CameraMode
	Muted      bool
	GodMode    bool

	PendingCards []config.CardDef
	RerollCost   int

	TrackNodes   []components.TrackNode
	TrackVersion int
	Drag         components.DragState

	Wagons      []WagonView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Loot        []LootView
	Depots      []DepotView
	Crystals    []CrystalView
	Mines       []MineView
	Drones      []utils.Vec2
	Floaters    []FloaterView
	Particles   []ParticleView
}

// BuildSnapshot 从世界状态生成快照
func BuildSnapshot(w *World) Snapshot {
	st := w.State
	snap := Snapshot{
		Tick:         st.Tick,
		Phase:        st.Phase,
		Scrap:        st.Scrap,
		Score:        st.Score,
		Wave:         st.Wave,
		Level:        st.Level,
		XP:           st.XP,
		MaxXP:        st.MaxXP,
		WaveTimer:    st.WaveTimer,
		WaveDuration: st.WaveDuration,
		WorldRadius:  st.WorldRadius,
		CameraMode:   st.CameraMode,
		Muted:        st.Muted,
		GodMode:      st.GodMode,
		RerollCost:   st.RerollCost,
		TrackVersion: w.TrackVersion,
		PendingCards: append([]config.CardDef(nil), st.PendingCards...),
		TrainPos:     w.TrainPos(),
	}

	if health, ok := w.TrainHealth(); ok {
		snap.HP, snap.MaxHP = health.HP, health.MaxHP
		snap.Shield, snap.MaxShield = health.Shield, health.MaxShield
	}
	if train, ok := w.Train(); ok {
		snap.Speed = train.Speed
		snap.Gear = train.Gear
		snap.TrainAngle = train.Angle
		snap.WagonCount = len(train.Wagons)
		snap.MaxWagonCount = train.MaxWagons
		snap.Wagons = wagonViews(w.EntityManager, train.Wagons)
		snap.OwnedWagons = make([]OwnedWagon, len(snap.Wagons))
		for i, v := range snap.Wagons {
			snap.OwnedWagons[i] = v.OwnedWagon
		}
	}
	if track, ok := w.Track(); ok {
		snap.TrackNodes = append([]components.TrackNode(nil), track.Nodes...)
		snap.Drag = track.Drag
	}

	collectDrawables(w.EntityManager, &snap)
	return snap
}

func wagonViews(em *ecs.EntityManager, ids []ecs.EntityID) []WagonView {
	out := make([]WagonView, 0, len(ids))
	for _, id := range ids {
		wagon, ok := ecs.GetComponent[*components.WagonComponent](em, id)
		if !ok {
			continue
		}
		v := WagonView{
			OwnedWagon:  OwnedWagon{ID: id, Type: wagon.Type, Level: wagon.Level, MaxLevel: wagon.MaxLevel},
			Angle:       wagon.Angle,
			TurretAngle: wagon.TurretAngle,
		}
		if wagon.MaxCooldown > 0 {
			v.CooldownFrac = wagon.Cooldown / wagon.MaxCooldown
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			v.Pos = pos.Vec()
		}
		out = append(out, v)
	}
	return out
}

func fadeOf(em *ecs.EntityManager, id ecs.EntityID) float64 {
	if l, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok {
		return l.Fraction()
	}
	return 1
}

func collectDrawables(em *ecs.EntityManager, snap *Snapshot) {
	pos := func(id ecs.EntityID) utils.Vec2 {
		p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return p.Vec()
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](em) {
		e, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID: id, Type: e.Type, Pos: pos(id), Size: e.Size,
			HP: h.HP, MaxHP: h.MaxHP, Shield: h.Shield,
			Elite: e.Elite, Rare: e.Rare, Frozen: e.FreezeTimer > 0,
		})
	}
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		v, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Pos: pos(id), Vel: v.Vec(), Size: p.Size, Color: p.Color, Hostile: p.Hostile})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.LootComponent, *components.PositionComponent](em) {
		l, _ := ecs.GetComponent[*components.LootComponent](em, id)
		snap.Loot = append(snap.Loot, LootView{Pos: pos(id), Kind: l.Kind, Value: l.Value})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.DepotComponent, *components.PositionComponent](em) {
		d, _ := ecs.GetComponent[*components.DepotComponent](em, id)
		snap.Depots = append(snap.Depots, DepotView{Pos: pos(id), Entrance: d.Entrance, Exit: d.Exit, Reward: d.Reward, Title: d.Title, Connected: d.Connected})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.CrystalComponent, *components.PositionComponent](em) {
		c, _ := ecs.GetComponent[*components.CrystalComponent](em, id)
		snap.Crystals = append(snap.Crystals, CrystalView{Pos: pos(id), Stage: c.Stage})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.MineComponent, *components.PositionComponent](em) {
		m, _ := ecs.GetComponent[*components.MineComponent](em, id)
		snap.Mines = append(snap.Mines, MineView{Pos: pos(id), Radius: m.Radius, Fade: fadeOf(em, id)})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.DroneComponent, *components.PositionComponent](em) {
		snap.Drones = append(snap.Drones, pos(id))
	}
	for _, id := range ecs.GetEntitiesWith2[*components.FloaterComponent, *components.PositionComponent](em) {
		f, _ := ecs.GetComponent[*components.FloaterComponent](em, id)
		snap.Floaters = append(snap.Floaters, FloaterView{Pos: pos(id), Text: f.Text, Color: f.Color, Size: f.Size, Fade: fadeOf(em, id)})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		snap.Particles = append(snap.Particles, ParticleView{Pos: pos(id), End: p.End, Color: p.Color, Size: p.Size, Lightning: p.Lightning, Fade: fadeOf(em, id)})
	}
}
