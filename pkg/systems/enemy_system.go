package systems

import (
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

// 敌人行为参数
const (
	buffSpeedMult = 1.5

	swarmWobbleStep = 0.1
	swarmWobbleAmp  = 0.5

	dashWalkTicks = 90
	dashRushTicks = 20
	dashWalkMult  = 0.25 // 冲刺速度是步行的 4 倍

	minerFleeRadius = 200.0

	shooterHoldRange   = 250.0
	shooterInterval    = 120
	shooterShotSpeed   = 5.0
	shooterShotDamage  = 8.0
	screamerInterval   = 240
	screamerRadius     = 150.0
	screamerBuffTicks  = 180
	healerInterval     = 120
	healerRadius       = 120.0
	healerAmount       = 10.0
	shielderInterval   = 300
	shielderRadius     = 120.0
	shielderAmount     = 20.0
	crusherInterval    = 240
	crusherChargeTicks = 60
	crusherChargeMult  = 3.0
	queenInterval      = 120
	queenBrood         = 3
	queenSpread        = 20.0
	sniperBossInterval = 180
	sniperBossSpeed    = 15.0
	sniperBossDamage   = 30.0
	teslaBossInterval  = 90
	teslaBossRadius    = 200.0
	teslaBossDamage    = 10.0
	fortressInterval   = 300
	fortressGuards     = 2
	phantomInterval    = 200
	phantomJump        = 300.0
)

// enemyTick 单个敌人一个 tick 的上下文
type enemyTick struct {
	id       ecs.EntityID
	enemy    *components.EnemyComponent
	health   *components.HealthComponent
	pos      *components.PositionComponent
	trainPos utils.Vec2
}

// heading 行进方向和速度倍率
type heading struct {
	angle float64
	mult  float64
}

// enemyBehavior 敌人原型的行为
// steer 为空时直接朝机车前进；skill 每 tick 在移动之后执行
type enemyBehavior struct {
	steer func(s *EnemySystem, c *enemyTick) heading
	skill func(s *EnemySystem, c *enemyTick)
}

var enemyBehaviors = map[types.EnemyType]enemyBehavior{
	types.EnemyNormal:     {},
	types.EnemyBoomer:     {},
	types.EnemyTank:       {},
	types.EnemySwarmer:    {steer: steerSwarm},
	types.EnemyDasher:     {steer: steerDash},
	types.EnemyMiner:      {steer: steerMiner, skill: layMine},
	types.EnemyShooter:    {steer: steerShooter, skill: shootTrain},
	types.EnemyScreamer:   {skill: screamBuff},
	types.EnemyHealer:     {skill: healAllies},
	types.EnemyShielder:   {skill: shieldAllies},
	types.EnemyCrusher:    {steer: steerCrusher},
	types.EnemyQueen:      {skill: broodSwarm},
	types.EnemySniperBoss: {skill: sniperVolley},
	types.EnemyTeslaBoss:  {skill: teslaPulse},
	types.EnemyFortress:   {skill: deployGuards},
	types.EnemyPhantom:    {skill: phantomBlink},
}

// EnemySystem 敌人系统
// 负责状态效果、移动、技能、与机车的碰撞以及死亡结算
type EnemySystem struct {
	world *game.World
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(world *game.World) *EnemySystem {
	return &EnemySystem{world: world}
}

// Update 更新所有存活的敌人
func (s *EnemySystem) Update() {
	w := s.world
	em := w.EntityManager
	trainPos := w.TrainPos()

	s.ResolveDeaths()

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](em) {
		guardEntity("EnemySystem", em, id, func() {
			c := &enemyTick{id: id, trainPos: trainPos}
			c.enemy, _ = ecs.GetComponent[*components.EnemyComponent](em, id)
			c.health, _ = ecs.GetComponent[*components.HealthComponent](em, id)
			c.pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)

			s.tickStatus(c)
			s.move(c)
			if b := enemyBehaviors[c.enemy.Type]; b.skill != nil {
				b.skill(s, c)
			}
			s.checkContact(c)

			c.enemy.SpeedMult = 1
		})
	}

	s.ResolveDeaths()
}

// tickStatus 酸蚀、冰冻、加速计时
func (s *EnemySystem) tickStatus(c *enemyTick) {
	e := c.enemy
	if e.AcidTimer > 0 {
		e.AcidTimer--
		if e.AcidTimer%config.AcidTickInterval == 0 {
			c.health.Damage(config.AcidTickDamage)
			spawnFloater(s.world, c.pos.Vec(), "5", entities.ColorAcid, 10)
		}
	}
	if e.FreezeTimer > 0 {
		e.FreezeTimer--
		e.SpeedMult = min(e.SpeedMult, config.FreezeSpeedMult)
	}
	if e.BuffTimer > 0 {
		e.BuffTimer--
	}
	e.Knockback = e.Knockback.Scale(config.KnockbackDecay)
}

// move 按行为决定方向，叠加击退后移动
func (s *EnemySystem) move(c *enemyTick) {
	e := c.enemy
	h := heading{angle: c.pos.Vec().AngleTo(c.trainPos), mult: 1}
	if b := enemyBehaviors[e.Type]; b.steer != nil {
		h = b.steer(s, c)
	}

	speed := e.Speed * e.SpeedMult * h.mult
	if e.BuffTimer > 0 {
		speed *= buffSpeedMult
	}
	e.Velocity = utils.FromAngle(h.angle, speed).Add(e.Knockback)
	c.pos.Set(c.pos.Vec().Add(e.Velocity))
}

// checkContact 与机车的撞击
func (s *EnemySystem) checkContact(c *enemyTick) {
	w := s.world
	e := c.enemy
	pos := c.pos.Vec()
	if pos.Dist(c.trainPos) >= config.ContactRadius+e.Size {
		return
	}
	train, ok := w.Train()
	if !ok {
		return
	}

	if s.hasWagon(train, types.WagonSpike) {
		c.health.Damage(config.SpikeContactDamage)
	}
	e.Knockback = pos.Sub(c.trainPos).Normalize().Scale(config.ContactKnockback)

	dmg := config.ContactBaseDamage
	switch {
	case e.IsBoss():
		dmg = config.ContactBossDamage
	case e.Type == types.EnemyTank:
		dmg = config.ContactTankDamage
	}
	if e.Elite {
		dmg *= config.ContactEliteMultiplier
	}
	dmg *= (1 - train.RamReduction) * config.ContactDamageScale
	damageTrain(w, dmg)

	c.health.Damage(config.ContactEnemyDamage + train.RamDamage)
	spawnExplosion(w, pos, entities.ColorDamage, 5)

	if e.Type == types.EnemyBoomer {
		spawnExplosion(w, pos, entities.ColorWarning, 40)
		damageTrain(w, config.BoomerBlastDamage)
		c.health.HP = 0
	}
}

func (s *EnemySystem) hasWagon(train *components.TrainComponent, t types.WagonType) bool {
	for _, id := range train.Wagons {
		if wagon, ok := ecs.GetComponent[*components.WagonComponent](s.world.EntityManager, id); ok && wagon.Type == t {
			return true
		}
	}
	return false
}

// ResolveDeaths 结算所有血量耗尽的敌人
// 每个敌人恰好掉落一份废料和一份经验，加分后销毁；Boss 额外留下站台和水晶
func (s *EnemySystem) ResolveDeaths() int {
	w := s.world
	em := w.EntityManager
	n := 0
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](em) {
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !health.IsDead() {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := positionOf(em, id)

		if enemy.Score > 0 {
			if _, err := entities.NewLootEntity(em, components.LootScrap, enemy.Score, pos); err != nil {
				log.Printf("[EnemySystem] failed to drop scrap: %v", err)
			}
		}
		if enemy.XP > 0 {
			if _, err := entities.NewLootEntity(em, components.LootXP, enemy.XP, pos); err != nil {
				log.Printf("[EnemySystem] failed to drop xp: %v", err)
			}
		}
		w.State.Score += enemy.Score
		spawnExplosion(w, pos, entities.EnemyColor(enemy.Type), 10)

		if enemy.IsBoss() {
			s.dropBossReward(pos)
		}
		em.DestroyEntity(id)
		n++
	}
	return n
}

// dropBossReward Boss 死亡处留下随机站台和一颗水晶
func (s *EnemySystem) dropBossReward(pos utils.Vec2) {
	w := s.world
	if len(w.Catalog.Depots) > 0 {
		def := w.Catalog.Depots[w.Rand.Intn(len(w.Catalog.Depots))]
		if _, err := entities.NewDepotEntity(w.EntityManager, def, pos); err != nil {
			log.Printf("[EnemySystem] failed to drop depot: %v", err)
		} else {
			spawnFloater(w, pos, "DEPOT DROPPED!", entities.ColorScrap, 20)
			log.Printf("[EnemySystem] boss dropped depot %s", def.ID)
		}
	}
	if _, err := entities.NewCrystalEntity(w.EntityManager, pos.Add(utils.Vec2{Y: config.DepotConnectorOffset})); err != nil {
		log.Printf("[EnemySystem] failed to drop crystal: %v", err)
	}
}

// alliesWithin 半径内的其他敌人
func (s *EnemySystem) alliesWithin(c *enemyTick, radius float64) []ecs.EntityID {
	out := enemiesWithin(s.world, c.pos.Vec(), radius)
	for i, id := range out {
		if id == c.id {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// every 推进技能计时，每 interval tick 返回一次 true
func every(c *enemyTick, interval int) bool {
	c.enemy.SkillTimer++
	return c.enemy.SkillTimer%interval == 0
}

func steerSwarm(_ *EnemySystem, c *enemyTick) heading {
	c.enemy.SwarmAngle += swarmWobbleStep
	return heading{angle: c.pos.Vec().AngleTo(c.trainPos) + math.Sin(c.enemy.SwarmAngle)*swarmWobbleAmp, mult: 1}
}

func steerDash(_ *EnemySystem, c *enemyTick) heading {
	e := c.enemy
	e.DashTimer++
	if e.Dashing && e.DashTimer >= dashRushTicks {
		e.Dashing, e.DashTimer = false, 0
	} else if !e.Dashing && e.DashTimer >= dashWalkTicks {
		e.Dashing, e.DashTimer = true, 0
	}
	h := heading{angle: c.pos.Vec().AngleTo(c.trainPos), mult: dashWalkMult}
	if e.Dashing {
		h.mult = 1
	}
	return h
}

// steerMiner 走向最近的轨道节点，机车靠近时逃离
func steerMiner(s *EnemySystem, c *enemyTick) heading {
	pos := c.pos.Vec()
	h := heading{angle: pos.AngleTo(c.trainPos), mult: 1}
	track, ok := s.world.Track()
	if !ok || track.Len() == 0 {
		return h
	}
	nearest := track.Nodes[0].Pos
	for _, n := range track.Nodes[1:] {
		if pos.Dist(n.Pos) < pos.Dist(nearest) {
			nearest = n.Pos
		}
	}
	h.angle = pos.AngleTo(nearest)
	if pos.Dist(c.trainPos) < minerFleeRadius {
		h.angle = c.trainPos.AngleTo(pos)
	}
	return h
}

func layMine(s *EnemySystem, c *enemyTick) {
	if !every(c, config.MineLayInterval) {
		return
	}
	if _, err := entities.NewMineEntity(s.world.EntityManager, c.pos.Vec()); err != nil {
		log.Printf("[EnemySystem] failed to lay mine: %v", err)
	}
}

func steerShooter(_ *EnemySystem, c *enemyTick) heading {
	pos := c.pos.Vec()
	c.enemy.HoldPosition = pos.Dist(c.trainPos) < shooterHoldRange
	h := heading{angle: pos.AngleTo(c.trainPos), mult: 1}
	if c.enemy.HoldPosition {
		h.mult = 0
	}
	return h
}

func shootTrain(s *EnemySystem, c *enemyTick) {
	if !every(c, shooterInterval) || !c.enemy.HoldPosition {
		return
	}
	fireHostile(s.world, c.pos.Vec(), c.trainPos, shooterShotSpeed, shooterShotDamage, 0)
}

func screamBuff(s *EnemySystem, c *enemyTick) {
	if !every(c, screamerInterval) {
		return
	}
	for _, id := range s.alliesWithin(c, screamerRadius) {
		if e, ok := ecs.GetComponent[*components.EnemyComponent](s.world.EntityManager, id); ok {
			e.BuffTimer = screamerBuffTicks
		}
	}
	spawnExplosion(s.world, c.pos.Vec(), entities.EnemyColor(types.EnemyScreamer), 6)
}

func healAllies(s *EnemySystem, c *enemyTick) {
	if !every(c, healerInterval) {
		return
	}
	for _, id := range s.alliesWithin(c, healerRadius) {
		if h, ok := ecs.GetComponent[*components.HealthComponent](s.world.EntityManager, id); ok && !h.IsDead() {
			h.Heal(healerAmount)
		}
	}
}

func shieldAllies(s *EnemySystem, c *enemyTick) {
	if !every(c, shielderInterval) {
		return
	}
	for _, id := range s.alliesWithin(c, shielderRadius) {
		if h, ok := ecs.GetComponent[*components.HealthComponent](s.world.EntityManager, id); ok {
			h.Shield += shielderAmount
		}
	}
}

func steerCrusher(_ *EnemySystem, c *enemyTick) heading {
	e := c.enemy
	h := heading{angle: c.pos.Vec().AngleTo(c.trainPos), mult: 1}
	if every(c, crusherInterval) {
		e.ChargeTimer = crusherChargeTicks
	}
	if e.ChargeTimer > 0 {
		e.ChargeTimer--
		h.mult = crusherChargeMult
	}
	return h
}

func broodSwarm(s *EnemySystem, c *enemyTick) {
	if !every(c, queenInterval) {
		return
	}
	w := s.world
	for i := 0; i < queenBrood; i++ {
		offset := utils.Vec2{X: w.Rand.Float64()*2*queenSpread - queenSpread, Y: w.Rand.Float64()*2*queenSpread - queenSpread}
		spawnEnemy(w, types.EnemySwarmer, c.pos.Vec().Add(offset), false, false)
	}
}

func sniperVolley(s *EnemySystem, c *enemyTick) {
	if !every(c, sniperBossInterval) {
		return
	}
	fireHostile(s.world, c.pos.Vec(), c.trainPos, sniperBossSpeed, sniperBossDamage, types.FlagExplosive)
}

func teslaPulse(s *EnemySystem, c *enemyTick) {
	if !every(c, teslaBossInterval) {
		return
	}
	if c.pos.Vec().Dist(c.trainPos) >= teslaBossRadius {
		return
	}
	if _, err := entities.NewLightningEntity(s.world.EntityManager, c.pos.Vec(), c.trainPos); err != nil {
		log.Printf("[EnemySystem] failed to spawn lightning: %v", err)
	}
	damageTrain(s.world, teslaBossDamage)
}

func deployGuards(s *EnemySystem, c *enemyTick) {
	if !every(c, fortressInterval) {
		return
	}
	for i := 0; i < fortressGuards; i++ {
		side := float64(2*i - 1)
		spawnEnemy(s.world, types.EnemyShooter, c.pos.Vec().Add(utils.Vec2{X: side * c.enemy.Size}), false, false)
	}
}

func phantomBlink(s *EnemySystem, c *enemyTick) {
	if !every(c, phantomInterval) {
		return
	}
	w := s.world
	jump := func() float64 {
		if w.Rand.Float64() > 0.5 {
			return phantomJump
		}
		return -phantomJump
	}
	c.pos.Set(c.trainPos.Add(utils.Vec2{X: jump(), Y: jump()}))
	spawnExplosion(w, c.pos.Vec(), entities.ColorWhite, 20)
}
