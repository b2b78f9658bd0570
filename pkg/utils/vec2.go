package utils

import "math"

// Vec2 二维世界坐标/向量
type Vec2 struct {
	X, Y float64
}

// V 构造 Vec2
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2   { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64    { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec2) AngleTo(o Vec2) float64 { return math.Atan2(o.Y-v.Y, o.X-v.X) }

// Normalize 返回单位向量，零向量保持不变
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle 由角度和长度构造向量
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// NormalizeAngle 将角度归一化到 (-π, π]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// StepAngle 以不超过 maxStep 的步长将 current 转向 target
// 返回新角度以及转向后剩余的角度差（绝对值）
func StepAngle(current, target, maxStep float64) (float64, float64) {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) <= maxStep {
		return target, 0
	}
	if diff > 0 {
		current += maxStep
	} else {
		current -= maxStep
	}
	return NormalizeAngle(current), math.Abs(diff) - maxStep
}
