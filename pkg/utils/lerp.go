package utils

import "github.com/decker502/confetti/pkg/types"

// Interpolation helpers (插值函数)
//
// 所有函数都是纯函数：t=0 返回 a，t=1 返回 b。
// 调用方负责把 t 限制在 [0, 1]（见 Clamp01）。

// Lerp 线性插值
// 使用 a*(1-t) + b*t 形式，保证 t=1 时精确返回 b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpVec2 对二维向量逐分量插值
func LerpVec2(a, b types.Vec2, t float64) types.Vec2 {
	return types.Vec2{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// LerpColor 对颜色逐通道插值（R、G、B、A 独立，非感知插值）
func LerpColor(a, b types.Color, t float64) types.Color {
	return types.Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
