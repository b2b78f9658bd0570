package components

import (
	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/utils"
)

// DepotComponent 站台
// 入口和出口都接入轨道后，机车每圈经过一次可领取一次奖励
type DepotComponent struct {
	Reward         config.DepotReward
	Title          string
	Entrance       utils.Vec2
	Exit           utils.Vec2
	Connected      bool
	LastLapVisited int // 初始为 -1
	Claimed        int // 已领取次数
}
