package systems

import (
	"log"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/entities"
	"github.com/gonewx/loopline/pkg/game"
)

// 抽卡稀有度阈值
const (
	legendaryRoll = 0.9
	rareRoll      = 0.6
)

// CardSystem 升级选卡
// 升级时抽取卡牌，玩家选择后应用效果并回到游戏阶段
type CardSystem struct {
	world  *game.World
	wagons *WagonSystem

	// queued 一次获得多级时尚未处理的升级次数
	queued int
}

// NewCardSystem 创建选卡系统
func NewCardSystem(world *game.World, wagons *WagonSystem) *CardSystem {
	return &CardSystem{world: world, wagons: wagons}
}

// OnLevelUp 记录升级并在没有待选卡牌时发牌
func (s *CardSystem) OnLevelUp(levels int) {
	s.queued += levels
	if len(s.world.State.PendingCards) == 0 {
		s.OfferCards()
	}
}

// OfferCards 抽取一组卡牌并进入选卡阶段，重抽费用重置
func (s *CardSystem) OfferCards() []config.CardDef {
	st := s.world.State
	if s.queued > 0 {
		s.queued--
	}
	st.RerollCost = config.RerollBaseCost
	st.PendingCards = s.draw()
	st.Phase = game.PhaseLevelUp
	return st.PendingCards
}

// RerollCards 花费废料重新抽卡，每次重抽费用递增
func (s *CardSystem) RerollCards() bool {
	st := s.world.State
	if st.Phase != game.PhaseLevelUp {
		return false
	}
	if !st.SpendScrap(st.RerollCost) {
		return false
	}
	st.RerollCost += config.RerollCostStep
	st.PendingCards = s.draw()
	return true
}

// SelectCard 选择待选卡牌中的第 index 张
func (s *CardSystem) SelectCard(index int) bool {
	st := s.world.State
	if st.Phase != game.PhaseLevelUp || index < 0 || index >= len(st.PendingCards) {
		return false
	}
	return s.ApplyCard(st.PendingCards[index])
}

// ApplyCard 应用卡牌效果，清空待选卡牌并回到游戏阶段
// 仍有未处理的升级时立即发下一组
func (s *CardSystem) ApplyCard(card config.CardDef) bool {
	w := s.world
	train, ok := w.Train()
	if !ok {
		return false
	}

	switch card.Kind {
	case config.CardWagon:
		s.applyWagonCard(card)
	case config.CardStat:
		health, _ := w.TrainHealth()
		switch card.ID {
		case config.StatRepair:
			if health != nil {
				health.HP = health.MaxHP
			}
		case config.StatDamage:
			train.AutoDmg *= card.Amount
		case config.StatSpeed:
			train.MaxSpeed += card.Amount
		case config.StatMagnet:
			train.Magnet += card.Amount
		case config.StatRam:
			train.RamReduction = card.Reduction
			train.RamBonus += card.Amount
		default:
			log.Printf("[CardSystem] unknown stat card %q", card.ID)
		}
	default:
		log.Printf("[CardSystem] unknown card kind %q", card.Kind)
		return false
	}

	w.State.PendingCards = nil
	w.State.Phase = game.PhasePlay
	if s.queued > 0 {
		s.OfferCards()
	}
	return true
}

// applyWagonCard 升级已有车厢，否则挂接新车厢，容量已满时补偿废料
func (s *CardSystem) applyWagonCard(card config.CardDef) {
	w := s.world
	if id, ok := s.wagons.FindUpgradable(card.Wagon); ok {
		s.wagons.UpgradeWagon(id)
		if pos, ok := positionOf(w.EntityManager, id); ok {
			spawnFloater(w, pos, "LEVEL UP!", entities.ColorScrap, 16)
		}
		return
	}
	if _, ok := s.wagons.AddWagon(card.Wagon); ok {
		return
	}
	w.State.AddScrap(config.CapacityFullScrap)
	spawnFloater(w, w.TrainPos(), "CAPACITY FULL (+100 SCRAP)", entities.ColorDamage, 16)
}

// CardPool 当前可抽的卡牌
// 车厢已满时只保留属性卡和已拥有种类的车厢卡
func (s *CardSystem) CardPool() []config.CardDef {
	w := s.world
	train, ok := w.Train()
	if !ok || train.HasCapacity() {
		return w.Catalog.Cards
	}

	owned := make(map[string]bool)
	for _, wagon := range s.wagons.OwnedWagons() {
		owned[wagon.Type.String()] = true
	}
	var pool []config.CardDef
	for _, c := range w.Catalog.Cards {
		if c.Kind == config.CardStat || owned[c.ID] {
			pool = append(pool, c)
		}
	}
	return pool
}

// draw 独立抽取若干张卡牌，允许重复
func (s *CardSystem) draw() []config.CardDef {
	w := s.world
	pool := s.CardPool()
	if len(pool) == 0 {
		return nil
	}

	byRarity := make(map[config.Rarity][]config.CardDef)
	for _, c := range pool {
		byRarity[c.Rarity] = append(byRarity[c.Rarity], c)
	}

	out := make([]config.CardDef, 0, config.CardOfferCount)
	for i := 0; i < config.CardOfferCount; i++ {
		r := w.Rand.Float64()
		rarity := config.RarityCommon
		switch {
		case r > legendaryRoll:
			rarity = config.RarityLegendary
		case r > rareRoll:
			rarity = config.RarityRare
		}

		band := byRarity[rarity]
		if len(band) == 0 {
			band = byRarity[config.RarityCommon]
		}
		if len(band) == 0 {
			band = pool
		}
		out = append(out, band[w.Rand.Intn(len(band))])
	}
	return out
}

// ForceLevelUp 补足当前等级所需经验
func (s *CardSystem) ForceLevelUp() {
	st := s.world.State
	if levels := st.GainXP(st.MaxXP - st.XP); levels > 0 {
		s.OnLevelUp(levels)
	}
}
