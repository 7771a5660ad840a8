package systems

import (
	"fmt"

	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/types"
)

// EffectSelector 特效选择器
// 在特效目录中循环切换当前特效，并通过粒子系统生成它。
// GUI 查看器和终端查看器共用。
type EffectSelector struct {
	catalog *particle.Catalog
	ps      *ParticleSystem
	index   int
}

// NewEffectSelector 创建特效选择器
// start 为初始特效名称，找不到时从第一个特效开始
func NewEffectSelector(catalog *particle.Catalog, ps *ParticleSystem, start string) *EffectSelector {
	e := &EffectSelector{catalog: catalog, ps: ps}
	e.Select(start)
	return e
}

// Current 返回当前选中的特效配置
func (e *EffectSelector) Current() *particle.SpawnerConfig {
	return e.catalog.At(e.index)
}

// Index 返回当前特效在目录中的位置（从 0 开始）
func (e *EffectSelector) Index() int {
	return e.index
}

// Len 返回特效总数
func (e *EffectSelector) Len() int {
	return e.catalog.Len()
}

// Next 切换到下一个特效（末尾回到开头）
func (e *EffectSelector) Next() *particle.SpawnerConfig {
	return e.jump(1)
}

// Previous 切换到上一个特效（开头回到末尾）
func (e *EffectSelector) Previous() *particle.SpawnerConfig {
	return e.jump(-1)
}

func (e *EffectSelector) jump(delta int) *particle.SpawnerConfig {
	n := e.catalog.Len()
	if n == 0 {
		return nil
	}
	e.index = ((e.index+delta)%n + n) % n
	return e.Current()
}

// Select 按名称选中特效，返回是否找到
func (e *EffectSelector) Select(name string) bool {
	i := e.catalog.IndexOf(name)
	if i < 0 {
		return false
	}
	e.index = i
	return true
}

// SpawnCurrent 在视口顶部中央生成当前特效
func (e *EffectSelector) SpawnCurrent(vp types.Viewport) (*components.SpawnerComponent, error) {
	config := e.Current()
	if config == nil {
		return nil, fmt.Errorf("%w: effect catalog is empty", particle.ErrInvalidConfig)
	}
	return e.ps.Spawn(config, vp)
}
