package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/confetti/pkg/components"
)

func TestTickTimer_Once(t *testing.T) {
	timer := components.NewTimer(1.0, components.TimerOnce)

	overflow := TickTimer(&timer, 0.4)
	assert.False(t, timer.Finished)
	assert.False(t, timer.JustFinished)
	assert.Zero(t, overflow)
	assert.InDelta(t, 0.4, TimerFraction(timer), 1e-12)

	overflow = TickTimer(&timer, 0.8)
	assert.True(t, timer.Finished)
	assert.True(t, timer.JustFinished)
	assert.Equal(t, 1, timer.TimesFinishedThisTick)
	assert.InDelta(t, 0.2, overflow, 1e-12)
	assert.Equal(t, 1.0, timer.Elapsed, "once-timer clamps at its duration")
	assert.Equal(t, 1.0, TimerFraction(timer))

	// 完成后继续推进：保持完成状态，但不再 JustFinished
	overflow = TickTimer(&timer, 0.5)
	assert.True(t, timer.Finished)
	assert.False(t, timer.JustFinished)
	assert.Zero(t, overflow)

	ResetTimer(&timer)
	assert.False(t, timer.Finished)
	assert.Zero(t, timer.Elapsed)
	assert.Zero(t, TimerFraction(timer))
}

func TestTickTimer_Repeating(t *testing.T) {
	tests := []struct {
		name          string
		duration      float64
		steps         []float64
		wantTimes     int
		wantRemainder float64
	}{
		{"未到期", 0.5, []float64{0.2}, 0, 0.2},
		{"恰好到期", 0.5, []float64{0.25, 0.25}, 1, 0},
		{"单帧多次到期", 0.1, []float64{0.35}, 3, 0.05},
		{"跨帧溢出", 0.5, []float64{0.4, 0.3}, 1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := components.NewTimer(tt.duration, components.TimerRepeating)
			for _, dt := range tt.steps {
				TickTimer(&timer, dt)
			}
			assert.Equal(t, tt.wantTimes, timer.TimesFinishedThisTick)
			assert.Equal(t, tt.wantTimes > 0, timer.JustFinished)
			assert.InDelta(t, tt.wantRemainder, timer.Elapsed, 1e-9)
		})
	}
}

// TestTickTimer_FloatAccumulation 60 帧 × 1/60 秒必须在第 60 帧完成
func TestTickTimer_FloatAccumulation(t *testing.T) {
	timer := components.NewTimer(1.0, components.TimerOnce)
	for i := 1; i <= 60; i++ {
		TickTimer(&timer, 1.0/60.0)
		if i < 60 {
			assert.False(t, timer.Finished, "frame %d", i)
		}
	}
	assert.True(t, timer.Finished)

	repeating := components.NewTimer(0.5, components.TimerRepeating)
	completions := 0
	for i := 0; i < 60; i++ {
		TickTimer(&repeating, 1.0/60.0)
		completions += repeating.TimesFinishedThisTick
	}
	assert.Equal(t, 2, completions)
}

func TestTimerFraction_ZeroDuration(t *testing.T) {
	timer := components.NewTimer(0, components.TimerOnce)
	assert.Equal(t, 1.0, TimerFraction(timer))

	overflow := TickTimer(&timer, 0.1)
	assert.True(t, timer.Finished)
	assert.InDelta(t, 0.1, overflow, 1e-12)
}
