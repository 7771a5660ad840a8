package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/systems"
)

// RenderSystem 粒子渲染系统
// 每个可见粒子绘制为一个 Size × Size 的实心正方形，左上角位于粒子位置。
// 快照缓冲区跨帧复用。
type RenderSystem struct {
	snapshots []components.ParticleSnapshot
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// DrawParticles 绘制所有发射器的可见粒子，返回绘制数量
func (r *RenderSystem) DrawParticles(screen *ebiten.Image, ps *systems.ParticleSystem) int {
	r.snapshots = ps.Snapshots(r.snapshots[:0])

	drawn := 0
	for i := range r.snapshots {
		p := &r.snapshots[i]
		if !visible(p) {
			continue
		}
		size := float32(p.Size)
		vector.DrawFilledRect(screen, float32(p.Position.X), float32(p.Position.Y), size, size, p.Color.NRGBA(), false)
		drawn++
	}
	return drawn
}

// visible 隐藏的、零尺寸的和完全透明的粒子不绘制
func visible(p *components.ParticleSnapshot) bool {
	return p.Visible && p.Size > 0 && p.Color.A > 0
}
