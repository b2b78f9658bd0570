package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gonewx/loopline/pkg/embedded"
	"github.com/gonewx/loopline/pkg/types"
	"github.com/gonewx/loopline/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath 内嵌目录文件的路径
const DefaultCatalogPath = "data/catalog.yaml"

// CardKind 卡牌种类
type CardKind string

const (
	CardWagon CardKind = "wagon" // 车厢卡：新增或升级车厢
	CardStat  CardKind = "stat"  // 属性卡：永久属性加成
)

// Rarity 卡牌稀有度
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// 属性卡标识
const (
	StatRepair = "repair" // 修满血量
	StatDamage = "dmg"    // 机车伤害倍率
	StatSpeed  = "speed"  // 最高速度
	StatMagnet = "magnet" // 磁吸范围
	StatRam    = "ram"    // 撞击伤害与减伤
)

// CardDef 升级卡牌定义
type CardDef struct {
	ID        string   `yaml:"id"`
	Kind      CardKind `yaml:"kind"`
	Title     string   `yaml:"title"`
	Desc      string   `yaml:"desc"`
	Rarity    Rarity   `yaml:"rarity"`
	MaxLevel  int      `yaml:"maxLevel,omitempty"`  // 车厢卡的最高等级
	Weight    float64  `yaml:"weight,omitempty"`    // 车厢重量，影响加速度
	Amount    float64  `yaml:"amount,omitempty"`    // 属性卡数值
	Reduction float64  `yaml:"reduction,omitempty"` // 撞击减伤比例（仅 ram）

	// Wagon 车厢卡对应的车厢种类，由 ID 解析
	Wagon types.WagonType `yaml:"-"`
}

// DepotReward 站台奖励标识
type DepotReward string

const (
	DepotGearbox  DepotReward = "gearbox"
	DepotExtender DepotReward = "extender"
	DepotRecycler DepotReward = "recycler"
	DepotRepair   DepotReward = "repair"
	DepotArmory   DepotReward = "armory"
	DepotReactor  DepotReward = "reactor"
	DepotShield   DepotReward = "shield"
	DepotMagnet   DepotReward = "magnet"
	DepotDrill    DepotReward = "drill"
	DepotLab      DepotReward = "lab"
)

var knownDepotRewards = map[DepotReward]bool{
	DepotGearbox: true, DepotExtender: true, DepotRecycler: true, DepotRepair: true, DepotArmory: true,
	DepotReactor: true, DepotShield: true, DepotMagnet: true, DepotDrill: true, DepotLab: true,
}

// DepotDef 站台奖励定义
type DepotDef struct {
	ID     DepotReward `yaml:"id"`
	Title  string      `yaml:"title"`
	Desc   string      `yaml:"desc"`
	Amount float64     `yaml:"amount"`
}

// TrackShape 开局轨道形状
type TrackShape struct {
	Kind    string  `yaml:"kind"` // circle | lissajous
	Nodes   int     `yaml:"nodes"`
	RadiusX float64 `yaml:"radiusX"`
	RadiusY float64 `yaml:"radiusY,omitempty"`
}

// Points 生成以世界中心为原点的控制点
func (s TrackShape) Points() []utils.Vec2 {
	pts := make([]utils.Vec2, s.Nodes)
	for i := range pts {
		a := float64(i) / float64(s.Nodes) * 2 * math.Pi
		switch s.Kind {
		case "lissajous":
			pts[i] = utils.Vec2{X: s.RadiusX * math.Sin(a), Y: s.RadiusY * math.Sin(2*a)}
		default:
			pts[i] = utils.Vec2{X: math.Cos(a) * s.RadiusX, Y: math.Sin(a) * s.RadiusX}
		}
	}
	return pts
}

// EngineDef 机车定义
type EngineDef struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Desc   string     `yaml:"desc"`
	HP     float64    `yaml:"hp"`
	Speed  float64    `yaml:"speed"`
	Ram    float64    `yaml:"ram"`
	Magnet float64    `yaml:"magnet"`
	Shield float64    `yaml:"shield,omitempty"`
	Scrap  int        `yaml:"scrap,omitempty"` // 0 表示使用默认初始废料
	Track  TrackShape `yaml:"track"`
}

// DifficultyDef 难度定义
type DifficultyDef struct {
	ID            string  `yaml:"id"`
	Label         string  `yaml:"label"`
	Multiplier    float64 `yaml:"multiplier"`    // 初始难度倍率（血量、分数）
	SpawnRateBase int     `yaml:"spawnRateBase"` // 刷怪间隔基数
}

// SpawnBand 标准刷怪的概率区间
// 当 wave > AfterWave 且 Min < r < Max 时命中
type SpawnBand struct {
	AfterWave int     `yaml:"afterWave"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
}

// Matches 判断波次和随机数是否落在区间内
func (b SpawnBand) Matches(wave int, r float64) bool {
	return wave > b.AfterWave && r > b.Min && r < b.Max
}

// EnemyDef 敌人原型定义
type EnemyDef struct {
	Type  types.EnemyType `yaml:"type"`
	HP    float64         `yaml:"hp"`
	Speed float64         `yaml:"speed"`
	Size  float64         `yaml:"size"`
	Score int             `yaml:"score"`
	XP    int             `yaml:"xp"`
	Band  *SpawnBand      `yaml:"band,omitempty"` // nil 表示不参与标准刷怪区间
}

// Catalog 内容目录：卡牌、站台、机车、难度、敌人原型与 Boss 轮换
// 模拟层只通过注入的 Catalog 读取这些数据
type Catalog struct {
	Cards        []CardDef         `yaml:"cards"`
	Depots       []DepotDef        `yaml:"depots"`
	Engines      []EngineDef       `yaml:"engines"`
	Difficulties []DifficultyDef   `yaml:"difficulties"`
	Enemies      []EnemyDef        `yaml:"enemies"`
	Bosses       []types.EnemyType `yaml:"bosses"`

	cardIndex   map[string]int
	enemyIndex  map[types.EnemyType]int
	engineIndex map[string]int
}

// LoadCatalog 从内嵌资源加载内容目录
func LoadCatalog(path string) (*Catalog, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// LoadEmbeddedCatalog 加载内嵌的 data/catalog.yaml
// 未内嵌该文件时返回内置目录；文件存在但内容非法时返回错误
func LoadEmbeddedCatalog() (*Catalog, error) {
	if !embedded.Exists(DefaultCatalogPath) {
		log.Printf("[Config] %s not embedded, using built-in defaults", DefaultCatalogPath)
		return DefaultCatalog(), nil
	}
	return LoadCatalog(DefaultCatalogPath)
}

// LoadCatalogFile 从磁盘加载内容目录（用于覆盖内嵌数据）
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog 解析并校验 YAML 内容目录
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &catalog, nil
}

// validateCatalog 校验内容目录并建立索引
func validateCatalog(c *Catalog) error {
	if len(c.Cards) == 0 {
		return fmt.Errorf("at least one card is required")
	}
	if len(c.Engines) == 0 {
		return fmt.Errorf("at least one engine is required")
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty is required")
	}
	if len(c.Bosses) == 0 {
		return fmt.Errorf("boss roster cannot be empty")
	}

	for i := range c.Cards {
		card := &c.Cards[i]
		switch card.Kind {
		case CardWagon:
			wt, err := types.ParseWagonType(card.ID)
			if err != nil {
				return fmt.Errorf("card %s: %w", card.ID, err)
			}
			card.Wagon = wt
			if card.MaxLevel <= 0 {
				card.MaxLevel = WagonMaxLevel
			}
			if card.Weight <= 0 {
				card.Weight = DefaultWagonWeight
			}
		case CardStat:
			switch card.ID {
			case StatRepair, StatDamage, StatSpeed, StatMagnet, StatRam:
			default:
				return fmt.Errorf("card %s: unknown stat effect", card.ID)
			}
		default:
			return fmt.Errorf("card %s: unknown kind %q", card.ID, card.Kind)
		}
		switch card.Rarity {
		case RarityCommon, RarityRare, RarityLegendary:
		default:
			return fmt.Errorf("card %s: unknown rarity %q", card.ID, card.Rarity)
		}
	}

	for _, d := range c.Depots {
		if !knownDepotRewards[d.ID] {
			return fmt.Errorf("depot %s: unknown reward", d.ID)
		}
	}

	for _, e := range c.Engines {
		if e.HP <= 0 {
			return fmt.Errorf("engine %s: hp must be positive, got %v", e.ID, e.HP)
		}
		if e.Speed <= 0 {
			return fmt.Errorf("engine %s: speed must be positive, got %v", e.ID, e.Speed)
		}
		if e.Track.Nodes < MinTrackNodes {
			return fmt.Errorf("engine %s: track needs at least %d nodes, got %d", e.ID, MinTrackNodes, e.Track.Nodes)
		}
		if e.Track.Kind != "circle" && e.Track.Kind != "lissajous" {
			return fmt.Errorf("engine %s: unknown track kind %q", e.ID, e.Track.Kind)
		}
	}

	for _, d := range c.Difficulties {
		if d.Multiplier <= 0 {
			return fmt.Errorf("difficulty %s: multiplier must be positive", d.ID)
		}
		if d.SpawnRateBase < SpawnRateFloor {
			return fmt.Errorf("difficulty %s: spawnRateBase must be at least %d", d.ID, SpawnRateFloor)
		}
	}

	for _, e := range c.Enemies {
		if e.Type == types.EnemyUnknown {
			return fmt.Errorf("enemy definition without type")
		}
		if e.HP <= 0 || e.Size <= 0 {
			return fmt.Errorf("enemy %s: hp and size must be positive", e.Type)
		}
		if e.Band != nil && e.Band.Min >= e.Band.Max {
			return fmt.Errorf("enemy %s: band min %v must be below max %v", e.Type, e.Band.Min, e.Band.Max)
		}
	}

	c.index()
	for _, b := range c.Bosses {
		if !b.IsBoss() {
			return fmt.Errorf("boss roster entry %s is not a boss type", b)
		}
		if _, ok := c.Enemy(b); !ok {
			return fmt.Errorf("boss %s has no enemy definition", b)
		}
	}
	if _, ok := c.Enemy(types.EnemyNormal); !ok {
		return fmt.Errorf("enemy definition for %s is required", types.EnemyNormal)
	}
	return nil
}

func (c *Catalog) index() {
	c.cardIndex = make(map[string]int, len(c.Cards))
	for i, card := range c.Cards {
		c.cardIndex[card.ID] = i
	}
	c.enemyIndex = make(map[types.EnemyType]int, len(c.Enemies))
	for i, e := range c.Enemies {
		c.enemyIndex[e.Type] = i
	}
	c.engineIndex = make(map[string]int, len(c.Engines))
	for i, e := range c.Engines {
		c.engineIndex[e.ID] = i
	}
}

// Card 按 ID 查找卡牌
func (c *Catalog) Card(id string) (CardDef, bool) {
	i, ok := c.cardIndex[id]
	if !ok {
		return CardDef{}, false
	}
	return c.Cards[i], true
}

// WagonCard 查找车厢种类对应的卡牌
func (c *Catalog) WagonCard(t types.WagonType) (CardDef, bool) {
	card, ok := c.Card(t.String())
	if !ok || card.Kind != CardWagon {
		return CardDef{}, false
	}
	return card, true
}

// WagonWeight 车厢重量，未收录的种类使用默认值
func (c *Catalog) WagonWeight(t types.WagonType) float64 {
	if card, ok := c.WagonCard(t); ok {
		return card.Weight
	}
	return DefaultWagonWeight
}

// Enemy 查找敌人原型
func (c *Catalog) Enemy(t types.EnemyType) (EnemyDef, bool) {
	i, ok := c.enemyIndex[t]
	if !ok {
		return EnemyDef{}, false
	}
	return c.Enemies[i], true
}

// Engine 按 ID 查找机车
func (c *Catalog) Engine(id string) (EngineDef, bool) {
	i, ok := c.engineIndex[id]
	if !ok {
		return EngineDef{}, false
	}
	return c.Engines[i], true
}

// Difficulty 按 ID 查找难度
func (c *Catalog) Difficulty(id string) (DifficultyDef, bool) {
	for _, d := range c.Difficulties {
		if d.ID == id {
			return d, true
		}
	}
	return DifficultyDef{}, false
}

// Depot 按奖励标识查找站台
func (c *Catalog) Depot(id DepotReward) (DepotDef, bool) {
	for _, d := range c.Depots {
		if d.ID == id {
			return d, true
		}
	}
	return DepotDef{}, false
}
