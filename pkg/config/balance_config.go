package config

// 平衡性常量
// 所有时间单位均为 tick（60 tick = 1 秒），距离单位为世界像素

// Track Configuration (轨道配置)
const (
	// MinTrackNodes 闭合轨道的最少节点数
	MinTrackNodes = 4

	// NodeCost 新增一个轨道节点的废料花费
	NodeCost = 40

	// NodeDeleteCost 删除一个轨道节点的废料花费
	NodeDeleteCost = 10

	// NodePickRadius 鼠标拾取节点/线段的判定半径
	NodePickRadius = 20.0

	// NodeSnapRadius 拖拽时吸附到站台接口的半径
	NodeSnapRadius = 30.0

	// NodeFixRadius 提交时距接口小于该值则节点被固定
	NodeFixRadius = 10.0

	// NodeMinSpacing 节点与相邻节点的最小间距
	NodeMinSpacing = 30.0

	// MaxTurnAngle 节点处允许的最大转向角（约 72°）
	MaxTurnAngle = 3.141592653589793 / 2.5

	// TrackCostPerPixel 轨道每增长 1 像素的废料花费
	TrackCostPerPixel = 0.5

	// NodeEaseFactor 节点提交后每 tick 逼近目标的比例
	NodeEaseFactor = 0.2

	// NodeEaseSnap 剩余距离小于该值时直接到位
	NodeEaseSnap = 0.5

	// AddNodeSampleStep 新增节点时沿样条的采样步长
	AddNodeSampleStep = 0.1
)

// Train Configuration (列车配置)
const (
	// LocomotiveWeight 机车自重
	LocomotiveWeight = 100.0

	// DefaultWagonWeight 卡牌未声明重量时的车厢重量
	DefaultWagonWeight = 10.0

	// ReverseSpeed 倒挡目标速度
	ReverseSpeed = -1.5

	// NeutralBrake 空挡时的速度响应系数
	NeutralBrake = 0.2

	// ReverseResponse 倒挡时的速度响应系数
	ReverseResponse = 0.1

	// StopThreshold 空挡且速度低于该值时直接停车
	StopThreshold = 0.05

	// RamSpeedFactor 撞击伤害 = 总重 × |速度| × 该系数
	RamSpeedFactor = 0.1

	// HistoryMinStep 位置历史的最小采样间距
	HistoryMinStep = 0.5

	// HistoryMaxLen 位置历史的最大长度
	HistoryMaxLen = 2000

	// HistoryPrefill 开局预填充的历史点数（不含 0 点）
	HistoryPrefill = 300

	// WagonSpacing 车厢之间的间距
	WagonSpacing = 30.0

	// MinGear / MaxGear 挡位范围
	MinGear = -1
	MaxGear = 3

	// StartGear 开局挡位
	StartGear = 1

	// StartSpeed 开局速度
	StartSpeed = 1.0

	// LocomotiveAutoFireInterval 机车自动射击间隔
	LocomotiveAutoFireInterval = 30

	// LocomotiveAutoFireRange 机车自动射击范围
	LocomotiveAutoFireRange = 200.0

	// LocomotiveAutoFireSpeed 机车自动射击弹速
	LocomotiveAutoFireSpeed = 10.0

	// LocomotiveBaseDamage 机车基础伤害
	LocomotiveBaseDamage = 10.0

	// LocomotiveHitRadius 敌方子弹/地雷命中列车的判定半径
	LocomotiveHitRadius = 20.0
)

// Salvo Configuration (齐射配置)
const (
	// SalvoCost 齐射的废料花费
	SalvoCost = 20

	// SalvoShots 齐射发数
	SalvoShots = 5

	// SalvoInterval 每发之间的间隔（50ms ≈ 3 tick）
	SalvoInterval = 3

	// SalvoRange 齐射索敌范围
	SalvoRange = 400.0

	// SalvoSpeed 齐射弹速
	SalvoSpeed = 12.0

	// SalvoDamageMultiplier 齐射伤害相对机车伤害的倍数
	SalvoDamageMultiplier = 2.0
)

// Wave Configuration (波次配置)
const (
	// WaveDuration 每波持续时间
	WaveDuration = 1800

	// BaseWorldRadius 初始世界半径
	BaseWorldRadius = 600.0

	// WorldRadiusGrowth 每波世界半径增长
	WorldRadiusGrowth = 100.0

	// DifficultyGrowth 每波难度倍率增长
	DifficultyGrowth = 0.1

	// SpawnRateFloor 刷怪间隔下限
	SpawnRateFloor = 30

	// SpawnRateDecay 每波刷怪间隔缩短量
	SpawnRateDecay = 5

	// SpawnRingOffset 普通刷怪点距世界边界的距离
	SpawnRingOffset = 50.0

	// BossRingOffset Boss 刷怪点距世界边界的距离
	BossRingOffset = 100.0

	// BossWaveInterval Boss 波间隔
	BossWaveInterval = 10

	// BossEscortOffset Boss 护卫的偏移
	BossEscortOffset = 40.0

	// SquadMinWave 小队最早出现的波次（大于该值）
	SquadMinWave = 4

	// SquadChance 小队出现概率
	SquadChance = 0.15

	// SquadOffset 小队成员相对首领的偏移
	SquadOffset = 30.0

	// EliteBaseChance / EliteChancePerWave 精英概率 = base + wave × perWave
	EliteBaseChance    = 0.05
	EliteChancePerWave = 0.005

	// RareChance 非精英时成为稀有的概率
	RareChance = 0.05

	// WaveHPScaling 每波血量增幅
	WaveHPScaling = 0.08

	// EliteMultiplier 精英血量/经验倍率
	EliteMultiplier = 2.5

	// EliteScale 精英体型倍率
	EliteScale = 1.5

	// RareHPMultiplier / RareSpeedMultiplier / RareRewardMultiplier 稀有倍率
	RareHPMultiplier     = 1.5
	RareSpeedMultiplier  = 1.2
	RareRewardMultiplier = 3.0
)

// Combat Configuration (战斗配置)
const (
	// ProjectileLife 子弹默认寿命
	ProjectileLife = 80

	// ProjectileQueryRadius 子弹碰撞的网格查询半径
	ProjectileQueryRadius = 60.0

	// ProjectileHitPadding 子弹命中判定 = 敌人尺寸 + 该值
	ProjectileHitPadding = 5.0

	// HomingTurnRate 追踪弹每 tick 最大转向
	HomingTurnRate = 0.15

	// FreezeDuration 冰冻持续时间
	FreezeDuration = 120

	// FreezeSpeedMult 冰冻时的速度倍率
	FreezeSpeedMult = 0.5

	// AcidDuration 酸蚀持续时间
	AcidDuration = 300

	// AcidTickInterval 酸蚀伤害间隔
	AcidTickInterval = 60

	// AcidTickDamage 酸蚀每跳伤害
	AcidTickDamage = 5.0

	// KnockbackDecay 击退速度每 tick 衰减系数
	KnockbackDecay = 0.8

	// GravityRadius 引力弹牵引半径
	GravityRadius = 150.0

	// GravityForce 引力弹牵引力度
	GravityForce = 5.0

	// ExplosionRadius 爆炸溅射半径
	ExplosionRadius = 50.0

	// ExplosionDamageRatio 溅射伤害占本体伤害的比例
	ExplosionDamageRatio = 0.5

	// ClusterChildren 集束弹分裂数量
	ClusterChildren = 6

	// ClusterChildSpeed / ClusterChildDamage / ClusterChildLife / ClusterChildKnockback 子弹参数
	ClusterChildSpeed     = 8.0
	ClusterChildDamage    = 0.3
	ClusterChildLife      = 30
	ClusterChildKnockback = 2.0

	// ClusterRadius 集束索敌策略的邻居判定半径
	ClusterRadius = 120.0

	// FabricatorBaseBuff / FabricatorLevelBuff 工坊对相邻车厢的伤害加成
	FabricatorBaseBuff  = 0.2
	FabricatorLevelBuff = 0.1

	// ShockwaveDamage / ShockwaveForce / ShockwaveRadius 震荡锤冲击波
	ShockwaveDamage = 5.0
	ShockwaveForce  = 15.0
	ShockwaveRadius = 150.0
)

// Contact Configuration (接触伤害配置)
const (
	// ContactRadius 敌人与列车接触判定 = 该值 + 敌人尺寸
	ContactRadius = 24.0

	// ContactBossDamage / ContactTankDamage / ContactBaseDamage 接触时列车受到的伤害
	ContactBossDamage = 20.0
	ContactTankDamage = 8.0
	ContactBaseDamage = 1.0

	// ContactEliteMultiplier 精英接触伤害倍率
	ContactEliteMultiplier = 2.0

	// ContactDamageScale 接触伤害的全局缩放
	ContactDamageScale = 0.8

	// ContactEnemyDamage 接触时敌人受到的基础伤害（另加撞击伤害）
	ContactEnemyDamage = 5.0

	// ContactKnockback 接触后敌人的击退速度
	ContactKnockback = 10.0

	// SpikeContactDamage 尖刺车厢的接触伤害
	SpikeContactDamage = 2.0

	// BoomerBlastDamage 自爆者对列车的额外伤害
	BoomerBlastDamage = 20.0
)

// Pickup Configuration (拾取物配置)
const (
	// LootLife 掉落物寿命
	LootLife = 1800

	// LootMagnetLerp 磁吸时每 tick 逼近机车的比例
	LootMagnetLerp = 0.15

	// LootCollectRadius 拾取半径
	LootCollectRadius = 30.0

	// FloaterLife 飘字寿命
	FloaterLife = 60

	// ParticleLife 粒子默认寿命
	ParticleLife = 30

	// CrystalStageTicks 水晶每阶段生长时间
	CrystalStageTicks = 600

	// CrystalMaxStage 水晶最高阶段
	CrystalMaxStage = 2

	// CrystalHarvestRadius 水晶收获半径
	CrystalHarvestRadius = 40.0

	// CrystalScrapPerStage 每阶段的废料收益
	CrystalScrapPerStage = 100

	// CrystalHeal 收获水晶的回血量
	CrystalHeal = 15.0

	// MineLife 地雷寿命
	MineLife = 600

	// MineRadius 地雷触发半径
	MineRadius = 30.0

	// MineDamage 地雷伤害
	MineDamage = 15.0

	// MineLayInterval 布雷者布雷间隔
	MineLayInterval = 180

	// DroneOrbitRadius 无人机环绕半径
	DroneOrbitRadius = 40.0

	// DroneFireInterval 无人机射击间隔
	DroneFireInterval = 30

	// DroneRange 无人机射程
	DroneRange = 150.0

	// DroneShotSpeed 无人机弹速
	DroneShotSpeed = 10.0

	// DroneDamage 无人机伤害
	DroneDamage = 5.0

	// DroneBaseLimit 无人机数量上限 = 该值 + 车厢等级
	DroneBaseLimit = 3
)

// Depot Configuration (站台配置)
const (
	// DepotConnectorOffset 接口相对站台中心的距离
	DepotConnectorOffset = 60.0

	// DepotConnectRadius 节点距接口小于该值视为已接入
	DepotConnectRadius = 10.0

	// DepotPassRadius 机车经过站台的判定半径
	DepotPassRadius = 60.0
)

// Progression Configuration (成长配置)
const (
	// StartScrap 默认初始废料
	StartScrap = 100

	// StartMaxXP 初始升级所需经验
	StartMaxXP = 100

	// MaxXPGrowth 每级经验需求增长倍率
	MaxXPGrowth = 1.2

	// CardOfferCount 每次升级提供的卡牌数
	CardOfferCount = 3

	// RerollBaseCost / RerollCostStep 重抽卡牌花费及其递增
	RerollBaseCost = 50
	RerollCostStep = 50

	// CapacityFullScrap 车厢已满时选择新车厢卡的补偿
	CapacityFullScrap = 100

	// WagonMaxLevel 车厢最高等级
	WagonMaxLevel = 5

	// ExtenderSlots 扩展站台增加的车厢容量
	ExtenderSlots = 3

	// RecyclerScrap 回收站台的废料收益
	RecyclerScrap = 200
)
