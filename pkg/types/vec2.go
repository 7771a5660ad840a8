// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Vec2 二维向量（屏幕坐标系，Y 轴向下为正）
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Viewport 视口尺寸（只读输入，用于计算发射基准点）
type Viewport struct {
	Width  float64
	Height float64
}

// Valid 视口宽高都必须为正
func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0
}

// SpawnBase 返回发射基准点：水平居中，顶部对齐
func (vp Viewport) SpawnBase() Vec2 {
	return Vec2{X: vp.Width / 2, Y: 0}
}
