package components

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时器：到期后停在 Duration，保持完成状态
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到期后从溢出量继续计时
	TimerRepeating
)

// TimerComponent 通用计时器组件
// 用于发射器爆发节奏、发射器寿命、收尾宽限期以及粒子年龄
//
// 纯数据组件，推进逻辑见 systems.TickTimer
type TimerComponent struct {
	Mode     TimerMode
	Duration float64 // 目标时间（秒）
	Elapsed  float64 // 当前已过时间（秒）

	Finished     bool // 单次计时器是否已完成（循环计时器：本帧是否至少完成一次）
	JustFinished bool // 是否在本帧刚刚完成
	// TimesFinishedThisTick 本帧完成的次数（循环计时器在大 dt 下可能 > 1）
	TimesFinishedThisTick int
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) TimerComponent {
	return TimerComponent{Mode: mode, Duration: duration}
}
