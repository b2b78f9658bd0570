package utils

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 指数逼近：每次调用向 target 移动剩余距离的 factor 比例
// 剩余距离小于 snap 时直接到达并返回 true
func Approach(current, target Vec2, factor, snap float64) (Vec2, bool) {
	if current.Dist(target) < snap {
		return target, true
	}
	return Vec2{
		X: Lerp(current.X, target.X, factor),
		Y: Lerp(current.Y, target.Y, factor),
	}, false
}
