package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（掉落物、飘字、粒子、地雷）
type LifetimeComponent struct {
	Remaining int // 剩余 tick
	Max       int // 初始 tick
}

// Fraction 剩余寿命比例，用于渐隐
func (l *LifetimeComponent) Fraction() float64 {
	if l.Max <= 0 {
		return 0
	}
	return float64(l.Remaining) / float64(l.Max)
}
