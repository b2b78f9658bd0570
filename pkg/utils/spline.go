package utils

import "math"

// 样条采样参数
const (
	// SplineLengthStep 计算轨道长度时的积分步长
	SplineLengthStep = 0.1
	// SplineHeadingEpsilon 估算朝向时的前视偏移
	SplineHeadingEpsilon = 0.01
	// SplineLocalStep 估算局部像素/参数比时的步长
	SplineLocalStep = 0.05
)

// wrapIndex 闭合轨道的下标取模（支持负数）
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// catmullRom 标准 Catmull-Rom 插值
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// SplinePoint 返回闭合 Catmull-Rom 样条在参数 t 处的位置
// t 的整数部分选择线段，小数部分为段内插值；任意实数 t 都合法
// 少于 2 个控制点时返回退化结果（空集为原点，单点为该点）
func SplinePoint(points []Vec2, t float64) Vec2 {
	n := len(points)
	if n == 0 {
		return Vec2{}
	}
	if n == 1 {
		return points[0]
	}

	base := math.Floor(t)
	local := t - base
	i := int(base)

	p0 := points[wrapIndex(i-1, n)]
	p1 := points[wrapIndex(i, n)]
	p2 := points[wrapIndex(i+1, n)]
	p3 := points[wrapIndex(i+2, n)]

	return Vec2{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, local),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, local),
	}
}

// SplineLength 以固定步长累加弦长近似整条闭合轨道的长度
func SplineLength(points []Vec2) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	total := 0.0
	prev := SplinePoint(points, 0)
	steps := int(math.Round(float64(n) / SplineLengthStep))
	for k := 1; k <= steps; k++ {
		p := SplinePoint(points, float64(k)*SplineLengthStep)
		total += prev.Dist(p)
		prev = p
	}
	return total
}

// SplineHeading 估算参数 t 处的切线朝向（弧度）
func SplineHeading(points []Vec2, t float64) float64 {
	p := SplinePoint(points, t)
	ahead := SplinePoint(points, t+SplineHeadingEpsilon)
	return p.AngleTo(ahead)
}

// LocalPixelsPerT 参数 t 附近每单位参数对应的像素长度
// 用于将像素速度换算为参数增量，使节点疏密不影响实际速度
func LocalPixelsPerT(points []Vec2, t float64) float64 {
	a := SplinePoint(points, t)
	b := SplinePoint(points, t+SplineLocalStep)
	return math.Max(0.1, a.Dist(b)) / SplineLocalStep
}

// NearestSample 以 step 为步长采样，返回离 p 最近的参数及距离
func NearestSample(points []Vec2, p Vec2, step float64) (float64, float64) {
	n := len(points)
	if n < 2 || step <= 0 {
		return 0, math.Inf(1)
	}
	bestT, bestD := 0.0, math.Inf(1)
	steps := int(math.Round(float64(n) / step))
	for k := 0; k < steps; k++ {
		t := float64(k) * step
		if d := SplinePoint(points, t).Dist(p); d < bestD {
			bestT, bestD = t, d
		}
	}
	return bestT, bestD
}

// ClosestT 返回轨道上离 p 最近的参数（先粗扫 0.5，再在 ±0.5 内以 0.05 细化）
// 结果位于 [0, n)
func ClosestT(points []Vec2, p Vec2) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	coarse, _ := NearestSample(points, p, 0.5)

	bestT, bestD := coarse, SplinePoint(points, coarse).Dist(p)
	for t := coarse - 0.5; t <= coarse+0.5; t += 0.05 {
		if d := SplinePoint(points, t).Dist(p); d < bestD {
			bestT, bestD = t, d
		}
	}
	return math.Mod(math.Mod(bestT, float64(n))+float64(n), float64(n))
}

// TurnAngle 计算 prev→cur→next 在 cur 处的转向角，范围 [0, π]
func TurnAngle(prev, cur, next Vec2) float64 {
	a1 := prev.AngleTo(cur)
	a2 := cur.AngleTo(next)
	return math.Abs(NormalizeAngle(a2 - a1))
}
