package game

import (
	"math"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/utils"
)

// GameState 存储一局游戏的全局数值状态
// 由 World 持有并显式传递给各系统，不存在全局单例
type GameState struct {
	Phase Phase

	Scrap int
	Score int
	Wave  int
	Level int
	XP    int
	MaxXP int

	EngineID       string
	DifficultyID   string
	DifficultyMult float64 // 每波 +0.1，作用于敌人血量
	SpawnRateBase  int

	WorldRadius  float64
	WaveTimer    int
	WaveDuration int
	Tick         int

	GodMode    bool
	Muted      bool
	CameraMode utils.CameraMode

	PendingCards []config.CardDef // 待选卡牌，仅在 PhaseLevelUp 有效
	RerollCost   int
}

// NewGameState 创建处于准备阶段的状态
func NewGameState() *GameState {
	return &GameState{
		Phase:          PhaseSetup,
		Wave:           1,
		Level:          1,
		MaxXP:          config.StartMaxXP,
		Scrap:          config.StartScrap,
		DifficultyMult: 1,
		SpawnRateBase:  180,
		WorldRadius:    config.BaseWorldRadius,
		WaveDuration:   config.WaveDuration,
		RerollCost:     config.RerollBaseCost,
	}
}

// AddScrap 增加废料
func (gs *GameState) AddScrap(amount int) {
	gs.Scrap += amount
}

// SpendScrap 扣除废料，如果废料不足返回 false
// 只有当废料充足时才会扣除
func (gs *GameState) SpendScrap(amount int) bool {
	if gs.Scrap < amount {
		return false
	}
	gs.Scrap -= amount
	return true
}

// GainXP 增加经验，返回本次升级的次数
// 每次升级扣除当前 MaxXP，MaxXP 增长 20%（向下取整），并进入选卡阶段
func (gs *GameState) GainXP(amount int) int {
	gs.XP += amount
	levels := 0
	for gs.MaxXP > 0 && gs.XP >= gs.MaxXP {
		gs.XP -= gs.MaxXP
		gs.Level++
		gs.MaxXP = int(math.Floor(float64(gs.MaxXP) * config.MaxXPGrowth))
		levels++
	}
	if levels > 0 {
		gs.Phase = PhaseLevelUp
	}
	return levels
}

// SpawnRate 当前波次的刷怪间隔
func (gs *GameState) SpawnRate() int {
	return max(config.SpawnRateFloor, gs.SpawnRateBase-gs.Wave*config.SpawnRateDecay)
}

// EndWave 结束当前波次：波次 +1，难度与世界半径增长，计时归零
func (gs *GameState) EndWave() {
	gs.Wave++
	gs.WaveTimer = 0
	gs.DifficultyMult += config.DifficultyGrowth
	gs.WorldRadius += config.WorldRadiusGrowth
}

// IsPlaying 是否处于游戏阶段
func (gs *GameState) IsPlaying() bool {
	return gs.Phase == PhasePlay
}
