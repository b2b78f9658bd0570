package systems

import (
	"log"
	"math"
	"slices"
	"strconv"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

const (
	// shieldWagonCapacity 护盾车厢挂接时提供的护盾与上限
	shieldWagonCapacity = 50.0

	// shieldRegenInterval 护盾车厢的回复间隔
	shieldRegenInterval = 60

	// stasisBaseSlow / stasisLevelSlow 停滞场减速 = base - level × perLevel
	stasisBaseSlow  = 0.5
	stasisLevelSlow = 0.05

	// upgradeDamageMult / upgradeFireRateMult 升级的通用成长
	upgradeDamageMult   = 1.2
	upgradeFireRateMult = 1.1
)

// wagonTick 单节车厢一个 tick 的上下文
type wagonTick struct {
	id      ecs.EntityID
	wagon   *components.WagonComponent
	pos     utils.Vec2
	profile config.WagonProfile
	train   *components.TrainComponent
	buff    float64
}

// damage 本次开火的伤害
func (c *wagonTick) damage() float64 {
	return c.train.AutoDmg * c.profile.DamageFactor * c.wagon.Stats.Damage * c.buff * c.train.GlobalDmgMult
}

// rng 当前射程
func (c *wagonTick) rng() float64 {
	return c.profile.Range * c.wagon.Stats.Range
}

// resetCooldown 按射速设置冷却
func (c *wagonTick) resetCooldown(base float64) {
	rate := c.wagon.Stats.FireRate * c.train.GlobalFireRateMult
	if rate <= 0 {
		rate = 1
	}
	c.wagon.MaxCooldown = base / rate
	c.wagon.Cooldown = c.wagon.MaxCooldown
}

// wagonBehavior 车厢的行为
// passive 每 tick 执行；fire 在冷却结束时执行
type wagonBehavior struct {
	passive func(s *WagonSystem, c *wagonTick)
	fire    func(s *WagonSystem, c *wagonTick)
}

var wagonBehaviors = map[types.WagonType]wagonBehavior{
	types.WagonGunner:     {fire: fireAimed},
	types.WagonSniper:     {fire: fireAimed},
	types.WagonFlame:      {fire: fireAimed},
	types.WagonShield:     {passive: regenShield},
	types.WagonMiner:      {passive: mineScrap},
	types.WagonTesla:      {fire: fireTesla},
	types.WagonMortar:     {fire: fireAimed},
	types.WagonCryo:       {fire: fireAimed},
	types.WagonDrone:      {fire: launchDrone},
	types.WagonSpike:      {},
	types.WagonFabricator: {},
	types.WagonStasis:     {passive: projectStasis},
	types.WagonMedic:      {passive: repairHull},
	types.WagonRailgun:    {fire: fireAimed},
	types.WagonAcid:       {fire: fireAimed},
	types.WagonGravity:    {fire: fireAimed},
	types.WagonThumper:    {fire: fireThumper},
	types.WagonMissile:    {fire: fireAimed},
	types.WagonCluster:    {fire: fireAimed},
	types.WagonOmni:       {passive: spinTurret, fire: fireCross},
}

// WagonSystem 车厢系统
// 负责车厢的被动效果、索敌开火，以及挂接、升级和拆除
type WagonSystem struct {
	world *game.World
}

// NewWagonSystem 创建车厢系统
func NewWagonSystem(world *game.World) *WagonSystem {
	return &WagonSystem{world: world}
}

// Update 按挂接顺序更新每节车厢
func (s *WagonSystem) Update() {
	em := s.world.EntityManager
	train, ok := s.world.Train()
	if !ok {
		return
	}

	var failed []ecs.EntityID
	for idx, id := range train.Wagons {
		wagon, ok := ecs.GetComponent[*components.WagonComponent](em, id)
		if !ok {
			continue
		}
		if !guardEntity("WagonSystem", em, id, func() { s.updateWagon(train, idx, id, wagon) }) {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		s.detachWagon(id)
	}
}

// updateWagon 被动效果、冷却与开火
func (s *WagonSystem) updateWagon(train *components.TrainComponent, idx int, id ecs.EntityID, wagon *components.WagonComponent) {
	em := s.world.EntityManager
	pos, _ := positionOf(em, id)
	c := &wagonTick{
		id:      id,
		wagon:   wagon,
		pos:     pos,
		profile: config.GetWagonProfile(wagon.Type),
		train:   train,
	}
	behavior := wagonBehaviors[wagon.Type]

	if behavior.passive != nil {
		behavior.passive(s, c)
	}
	if behavior.fire == nil {
		return
	}
	if wagon.Cooldown > 0 {
		wagon.Cooldown--
		return
	}
	c.buff = FabricatorBuff(em, train.Wagons, idx)
	behavior.fire(s, c)
}

// fireAimed 转动炮塔，锁定后发射子弹
func fireAimed(s *WagonSystem, c *wagonTick) {
	w := s.world
	target, ok := FindTarget(w.EntityManager, w.Grid, c.wagon.Targeting, c.pos, c.rng())
	if !ok {
		return
	}
	tpos, _ := positionOf(w.EntityManager, target)

	var remaining float64
	c.wagon.TurretAngle, remaining = utils.StepAngle(c.wagon.TurretAngle, c.pos.AngleTo(tpos), c.wagon.Stats.TurnRate)
	if remaining > 0 {
		return
	}

	c.resetCooldown(c.profile.Cooldown)
	_, err := FireAt(w, Shot{
		From:      c.pos,
		Target:    target,
		Speed:     c.profile.ProjectileSpeed,
		Damage:    c.damage(),
		Knockback: c.profile.Knockback,
		Flags:     c.profile.Flags,
		Color:     entities.WagonColor(c.wagon.Type),
	})
	if err != nil {
		log.Printf("[WagonSystem] %s failed to fire: %v", c.wagon.Type, err)
	}
}

// fireTesla 瞬间电击最近的敌人，无需锁定
func fireTesla(s *WagonSystem, c *wagonTick) {
	w := s.world
	target, ok := TargetNearest(w.EntityManager, w.Grid, c.pos, c.rng())
	if !ok {
		return
	}
	c.resetCooldown(c.profile.Cooldown)
	dmg := c.damage()
	damageEnemy(w, target, dmg)

	tpos, _ := positionOf(w.EntityManager, target)
	if _, err := entities.NewLightningEntity(w.EntityManager, c.pos, tpos); err != nil {
		log.Printf("[WagonSystem] failed to spawn lightning: %v", err)
	}
	spawnFloater(w, tpos.Add(utils.Vec2{Y: -10}), strconv.Itoa(int(math.Floor(dmg))), entities.WagonColor(types.WagonTesla), 10)
}

// fireThumper 以自身为中心释放冲击波
func fireThumper(s *WagonSystem, c *wagonTick) {
	c.resetCooldown(c.profile.Cooldown)
	Shockwave(s.world, c.pos, config.ShockwaveRadius*c.wagon.Stats.Range, config.ShockwaveForce, config.ShockwaveDamage*c.wagon.Stats.Damage)
}

// launchDrone 无人机数量未达上限时释放一架
func launchDrone(s *WagonSystem, c *wagonTick) {
	if s.DroneCount(c.id) >= config.DroneBaseLimit+c.wagon.Level {
		return
	}
	c.resetCooldown(c.profile.Cooldown)
	if _, err := entities.NewDroneEntity(s.world.EntityManager, c.id, s.world.RandomAngle(), c.pos); err != nil {
		log.Printf("[WagonSystem] failed to launch drone: %v", err)
	}
}

// spinTurret 全向车厢的炮塔持续旋转
func spinTurret(_ *WagonSystem, c *wagonTick) {
	c.wagon.TurretAngle = utils.NormalizeAngle(c.wagon.TurretAngle + c.wagon.Stats.TurnRate)
}

// fireCross 射程内有敌人时沿炮塔方向十字齐射
func fireCross(s *WagonSystem, c *wagonTick) {
	w := s.world
	if _, ok := TargetNearest(w.EntityManager, w.Grid, c.pos, c.rng()); !ok {
		return
	}
	c.resetCooldown(c.profile.Cooldown)
	dmg := c.damage()
	for k := 0; k < 4; k++ {
		angle := c.wagon.TurretAngle + float64(k)*math.Pi/2
		fireDirection(w, c.pos, angle, c.profile.ProjectileSpeed, dmg, c.profile.Flags, entities.WagonColor(c.wagon.Type))
	}
}

// regenShield 周期性为机车回复护盾，不超过上限
func regenShield(s *WagonSystem, c *wagonTick) {
	c.wagon.PassiveTimer++
	if c.wagon.PassiveTimer < shieldRegenInterval {
		return
	}
	c.wagon.PassiveTimer = 0
	if health, ok := s.world.TrainHealth(); ok && health.Shield < health.MaxShield {
		health.Shield = min(health.MaxShield, health.Shield+float64(c.wagon.Level))
	}
}

// mineScrap 周期性产出废料
func mineScrap(s *WagonSystem, c *wagonTick) {
	c.wagon.PassiveTimer++
	if c.wagon.PassiveTimer < max(60, 180-20*c.wagon.Level) {
		return
	}
	c.wagon.PassiveTimer = 0
	if _, err := entities.NewLootEntity(s.world.EntityManager, components.LootScrap, 5*c.wagon.Level, c.pos); err != nil {
		log.Printf("[WagonSystem] failed to spawn scrap: %v", err)
	}
}

// repairHull 周期性为机车回血
func repairHull(s *WagonSystem, c *wagonTick) {
	c.wagon.PassiveTimer++
	interval := max(30, int(c.profile.Cooldown/c.wagon.Stats.FireRate))
	if c.wagon.PassiveTimer < interval {
		return
	}
	c.wagon.PassiveTimer = 0
	healTrain(s.world, float64(c.wagon.Level))
}

// projectStasis 对范围内的敌人施加减速
func projectStasis(s *WagonSystem, c *wagonTick) {
	slow := stasisBaseSlow - stasisLevelSlow*float64(c.wagon.Level)
	for _, id := range enemiesWithin(s.world, c.pos, c.rng()) {
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.world.EntityManager, id); ok {
			enemy.SpeedMult = min(enemy.SpeedMult, slow)
		}
	}
}

// DroneCount 统计某节车厢释放的存活无人机
func (s *WagonSystem) DroneCount(owner ecs.EntityID) int {
	em := s.world.EntityManager
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.DroneComponent](em) {
		if d, _ := ecs.GetComponent[*components.DroneComponent](em, id); d.Owner == owner {
			n++
		}
	}
	return n
}

// AddWagon 在车厢链尾部挂接一节新车厢
// 容量已满或种类未知时返回 false
func (s *WagonSystem) AddWagon(t types.WagonType) (ecs.EntityID, bool) {
	w := s.world
	train, ok := w.Train()
	if !ok || !train.HasCapacity() {
		return 0, false
	}

	maxLevel := config.WagonMaxLevel
	if card, ok := w.Catalog.WagonCard(t); ok && card.MaxLevel > 0 {
		maxLevel = card.MaxLevel
	}
	id, err := entities.NewWagonEntity(w.EntityManager, t, len(train.Wagons), w.Catalog.WagonWeight(t), maxLevel)
	if err != nil {
		log.Printf("[WagonSystem] failed to add wagon %s: %v", t, err)
		return 0, false
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](w.EntityManager, id); ok {
		pos.Set(w.TrainPos())
	}
	train.Wagons = append(train.Wagons, id)

	if t == types.WagonShield {
		if health, ok := w.TrainHealth(); ok {
			health.MaxShield += shieldWagonCapacity
			health.Shield += shieldWagonCapacity
		}
	}

	log.Printf("[WagonSystem] attached %s (%d/%d)", t, len(train.Wagons), train.MaxWagons)
	return id, true
}

// UpgradeWagon 车厢升一级，已满级时不做任何修改
func (s *WagonSystem) UpgradeWagon(id ecs.EntityID) bool {
	wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id)
	if !ok || wagon.Level >= wagon.MaxLevel {
		return false
	}

	wagon.Level++
	wagon.Stats.Damage *= upgradeDamageMult
	wagon.Stats.FireRate *= upgradeFireRateMult

	tweak := config.GetWagonProfile(wagon.Type).Upgrade
	if tweak.DamageMult > 0 {
		wagon.Stats.Damage *= tweak.DamageMult
	}
	if tweak.FireRateMult > 0 {
		wagon.Stats.FireRate *= tweak.FireRateMult
	}
	if tweak.RangeMult > 0 {
		wagon.Stats.Range *= tweak.RangeMult
	}
	wagon.Stats.TurnRate += tweak.TurnRateAdd
	wagon.Stats.Damage += tweak.DamageAdd
	return true
}

// FindUpgradable 第一节未满级的指定种类车厢
func (s *WagonSystem) FindUpgradable(t types.WagonType) (ecs.EntityID, bool) {
	train, ok := s.world.Train()
	if !ok {
		return 0, false
	}
	for _, id := range train.Wagons {
		wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id)
		if ok && wagon.Type == t && wagon.Level < wagon.MaxLevel {
			return id, true
		}
	}
	return 0, false
}

// RemoveLastWagon 拆除最后一节车厢及其无人机
func (s *WagonSystem) RemoveLastWagon() bool {
	train, ok := s.world.Train()
	if !ok || len(train.Wagons) == 0 {
		return false
	}
	s.detachWagon(train.Wagons[len(train.Wagons)-1])
	return true
}

// detachWagon 从编组中移除车厢，撤销护盾加成并销毁其无人机
func (s *WagonSystem) detachWagon(id ecs.EntityID) {
	w := s.world
	train, ok := w.Train()
	if !ok {
		return
	}
	train.Wagons = slices.DeleteFunc(train.Wagons, func(x ecs.EntityID) bool { return x == id })

	if wagon, ok := ecs.GetComponent[*components.WagonComponent](w.EntityManager, id); ok && wagon != nil && wagon.Type == types.WagonShield {
		if health, ok := w.TrainHealth(); ok {
			health.MaxShield = math.Max(0, health.MaxShield-shieldWagonCapacity)
			health.Shield = min(health.Shield, health.MaxShield)
		}
	}
	for _, did := range ecs.GetEntitiesWith1[*components.DroneComponent](w.EntityManager) {
		if d, _ := ecs.GetComponent[*components.DroneComponent](w.EntityManager, did); d.Owner == id {
			w.EntityManager.DestroyEntity(did)
		}
	}
	w.EntityManager.DestroyEntity(id)
}

// OwnedWagons 当前车厢的种类与等级，按挂接顺序
func (s *WagonSystem) OwnedWagons() []*components.WagonComponent {
	train, ok := s.world.Train()
	if !ok {
		return nil
	}
	out := make([]*components.WagonComponent, 0, len(train.Wagons))
	for _, id := range train.Wagons {
		if wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id); ok {
			out = append(out, wagon)
		}
	}
	return out
}
