package game

// Phase 对局阶段
// 只有 PhasePlay 会推进模拟，其余阶段 Update 直接返回
type Phase int

const (
	PhaseSetup    Phase = iota // 选择机车、初始车厢和难度
	PhasePlay                  // 正常游戏
	PhaseLevelUp               // 升级选卡
	PhaseGlossary              // 图鉴
	PhaseGameOver              // 游戏结束
)

var phaseNames = [...]string{
	PhaseSetup:    "SETUP",
	PhasePlay:     "PLAY",
	PhaseLevelUp:  "LEVEL_UP",
	PhaseGlossary: "GLOSSARY",
	PhaseGameOver: "GAME_OVER",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}
