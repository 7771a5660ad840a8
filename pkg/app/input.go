package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tapAction 触摸/点击对应的操作
type tapAction int

const (
	tapNone tapAction = iota
	tapSpawn
	tapPrevious
	tapNext
)

// edgeFraction 屏幕左右两侧用于切换特效的区域宽度比例
const edgeFraction = 0.15

// justTapped 返回本帧新的触摸或鼠标左键点击位置，优先检测触摸
func justTapped() (bool, int, int) {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// classifyTap 将点击位置映射为操作
// 移动端没有方向键，左右边缘区域切换特效；桌面端点击任意位置都只生成
func classifyTap(x int, width float64, mobile bool) tapAction {
	if width <= 0 {
		return tapNone
	}
	if mobile {
		switch fx := float64(x); {
		case fx < width*edgeFraction:
			return tapPrevious
		case fx > width*(1-edgeFraction):
			return tapNext
		}
	}
	return tapSpawn
}
