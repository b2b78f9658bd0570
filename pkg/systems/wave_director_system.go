package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/loopline/pkg/components"
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/ecs"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
)

// squadLeaders 小队首领及其随从种类
var squadLeaders = []struct {
	leader, escort types.EnemyType
}{
	{types.EnemyScreamer, types.EnemySwarmer},
	{types.EnemyHealer, types.EnemyShooter},
	{types.EnemyShielder, types.EnemyTank},
}

// squadOffsets 随从相对首领的位置
var squadOffsets = []utils.Vec2{
	{X: -config.SquadOffset, Y: -config.SquadOffset},
	{X: config.SquadOffset, Y: -config.SquadOffset},
	{X: -config.SquadOffset, Y: config.SquadOffset},
	{X: config.SquadOffset, Y: config.SquadOffset},
}

// WaveDirectorSystem 波次系统
// 推进波次计时，按刷怪间隔生成普通敌人、小队和 Boss
type WaveDirectorSystem struct {
	world *game.World
}

// NewWaveDirectorSystem 创建波次系统
func NewWaveDirectorSystem(world *game.World) *WaveDirectorSystem {
	return &WaveDirectorSystem{world: world}
}

// Update 推进一个 tick
func (s *WaveDirectorSystem) Update() {
	st := s.world.State
	st.WaveTimer++

	if st.WaveTimer%st.SpawnRate() == 0 {
		s.spawnOnCadence()
	}

	if st.WaveTimer >= st.WaveDuration {
		st.EndWave()
		spawnFloater(s.world, s.world.TrainPos(), fmt.Sprintf("WAVE %d", st.Wave), entities.ColorWarning, 32)
		log.Printf("[WaveDirectorSystem] wave %d started (mult %.1f, radius %.0f)", st.Wave, st.DifficultyMult, st.WorldRadius)
	}
}

// AdvanceWave 让当前波次在下一个 tick 结束
func (s *WaveDirectorSystem) AdvanceWave() {
	s.world.State.WaveTimer = s.world.State.WaveDuration
}

func (s *WaveDirectorSystem) spawnOnCadence() {
	w := s.world
	wave := w.State.Wave
	switch {
	case wave%config.BossWaveInterval == 0 && !s.BossAlive():
		s.SpawnBoss(wave)
	case wave > config.SquadMinWave && w.Rand.Float64() < config.SquadChance:
		s.SpawnSquad()
	default:
		s.SpawnOneEnemy(wave)
	}
}

// BossAlive 场上是否有 Boss
func (s *WaveDirectorSystem) BossAlive() bool {
	em := s.world.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if e, _ := ecs.GetComponent[*components.EnemyComponent](em, id); e.IsBoss() {
			return true
		}
	}
	return false
}

// spawnPoint 世界中心周围半径 r 圆环上的随机点
func (s *WaveDirectorSystem) spawnPoint(r float64) utils.Vec2 {
	return utils.FromAngle(s.world.RandomAngle(), r)
}

// RollEnemyType 按波次和随机数选择标准刷怪的原型
// 各原型的区间按目录顺序判断，后命中的覆盖先命中的
func RollEnemyType(catalog *config.Catalog, wave int, r float64) types.EnemyType {
	t := types.EnemyNormal
	for _, def := range catalog.Enemies {
		if def.Band != nil && def.Band.Matches(wave, r) {
			t = def.Type
		}
	}
	return t
}

// SpawnOneEnemy 在世界边缘生成一个标准敌人
func (s *WaveDirectorSystem) SpawnOneEnemy(wave int) (ecs.EntityID, types.EnemyType) {
	w := s.world
	t := RollEnemyType(w.Catalog, wave, w.Rand.Float64())
	elite := w.Rand.Float64() < config.EliteBaseChance+float64(wave)*config.EliteChancePerWave
	rare := !elite && w.Rand.Float64() < config.RareChance

	id, _ := spawnEnemy(w, t, s.spawnPoint(w.State.WorldRadius+config.SpawnRingOffset), elite, rare)
	return id, t
}

// SpawnBoss 生成本轮的 Boss 和两名坦克护卫
func (s *WaveDirectorSystem) SpawnBoss(wave int) (ecs.EntityID, bool) {
	w := s.world
	if len(w.Catalog.Bosses) == 0 {
		return 0, false
	}
	t := w.Catalog.Bosses[(wave/config.BossWaveInterval)%len(w.Catalog.Bosses)]
	pos := s.spawnPoint(w.State.WorldRadius + config.BossRingOffset)

	id, ok := spawnEnemy(w, t, pos, false, false)
	if !ok {
		return 0, false
	}
	spawnFloater(w, pos, "BOSS APPROACHING!", entities.ColorDamage, 32)
	escort := utils.Vec2{X: config.BossEscortOffset, Y: config.BossEscortOffset}
	spawnEnemy(w, types.EnemyTank, pos.Add(escort), false, false)
	spawnEnemy(w, types.EnemyTank, pos.Sub(escort), false, false)
	log.Printf("[WaveDirectorSystem] boss %s spawned at wave %d", t, wave)
	return id, true
}

// SpawnSquad 生成一支精英首领带 4 名随从的小队
func (s *WaveDirectorSystem) SpawnSquad() {
	w := s.world
	squad := squadLeaders[w.Rand.Intn(len(squadLeaders))]
	pos := s.spawnPoint(w.State.WorldRadius + config.SpawnRingOffset)

	if _, ok := spawnEnemy(w, squad.leader, pos, true, false); !ok {
		return
	}
	spawnFloater(w, pos, "SQUAD DETECTED", entities.ColorWarning, 20)
	for _, off := range squadOffsets {
		spawnEnemy(w, squad.escort, pos.Add(off), false, false)
	}
}

// DebugSpawn 在机车附近生成指定种类的敌人
func (s *WaveDirectorSystem) DebugSpawn(t types.EnemyType) (ecs.EntityID, bool) {
	pos := s.world.TrainPos().Add(utils.FromAngle(s.world.RandomAngle(), config.SalvoRange))
	return spawnEnemy(s.world, t, pos, false, false)
}

// spawnEnemy 按目录原型和当前波次生成敌人
func spawnEnemy(w *game.World, t types.EnemyType, pos utils.Vec2, elite, rare bool) (ecs.EntityID, bool) {
	def, ok := w.Catalog.Enemy(t)
	if !ok {
		log.Printf("[WaveDirectorSystem] enemy %s not in catalog", t)
		return 0, false
	}
	id, err := entities.NewEnemyEntity(w.EntityManager, def, entities.EnemySpawn{
		Pos:            pos,
		Wave:           w.State.Wave,
		DifficultyMult: w.State.DifficultyMult,
		Elite:          elite,
		Rare:           rare,
	})
	if err != nil {
		log.Printf("[WaveDirectorSystem] failed to spawn %s: %v", t, err)
		return 0, false
	}
	return id, true
}
