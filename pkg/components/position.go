package components

import "github.com/gonewx/loopline/pkg/utils"

// PositionComponent 存储实体的世界坐标
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以向量形式返回坐标
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 设置坐标
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// VelocityComponent 存储实体每 tick 的位移
type VelocityComponent struct {
	VX float64
	VY float64
}

// Vec 以向量形式返回速度
func (v *VelocityComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: v.VX, Y: v.VY}
}

// Set 设置速度
func (v *VelocityComponent) Set(vel utils.Vec2) {
	v.VX, v.VY = vel.X, vel.Y
}
