package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/systems"
	"github.com/decker502/confetti/pkg/types"
	"github.com/decker502/confetti/pkg/utils"
)

// 每个终端字符格对应的世界坐标尺寸（字符约为 1:2 的长方形）
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var background = colorful.Color{R: 0, G: 0, B: 0}

// Viewer draws particles as colored block cells in a terminal.
type Viewer struct {
	screen   tcell.Screen
	ps       *systems.ParticleSystem
	selector *systems.EffectSelector
	sound    *confettiSound
	log      *zap.SugaredLogger

	width, height int
	snapshots     []components.ParticleSnapshot
	status        string
}

// NewViewer wires a viewer on an initialized screen. sound may be nil.
func NewViewer(screen tcell.Screen, ps *systems.ParticleSystem, selector *systems.EffectSelector, sound *confettiSound, logger *zap.SugaredLogger) *Viewer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	v := &Viewer{
		screen:   screen,
		ps:       ps,
		selector: selector,
		sound:    sound,
		log:      logger.Named("Viewer"),
	}
	v.width, v.height = screen.Size()
	return v
}

// viewport maps the terminal grid to world units.
func (v *Viewer) viewport() types.Viewport {
	return types.Viewport{Width: float64(v.width) * cellWidth, Height: float64(v.height) * cellHeight}
}

func (v *Viewer) spawn() {
	vp := v.viewport()
	if !vp.Valid() {
		return
	}
	if _, err := v.selector.SpawnCurrent(vp); err != nil {
		v.status = err.Error()
		v.log.Errorw("spawn failed", "error", err)
	}
}

// handleInput returns false when the viewer should exit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			v.status = "Selected: " + v.selector.Next().Name
		case tcell.KeyLeft:
			v.status = "Selected: " + v.selector.Previous().Name
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				v.spawn()
			case 'q':
				return false
			case 'm':
				if v.sound != nil {
					if v.sound.toggleMute() {
						v.status = "Sound muted"
					} else {
						v.status = "Sound on"
					}
				}
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// tick advances the simulation by dt seconds and redraws.
func (v *Viewer) tick(dt float64) {
	v.ps.Update(dt)
	v.draw()
}

func (v *Viewer) draw() {
	v.screen.Clear()

	v.snapshots = v.ps.Snapshots(v.snapshots[:0])
	for i := range v.snapshots {
		p := &v.snapshots[i]
		if !p.Visible || p.Size <= 0 {
			continue
		}
		x, y := cellOf(p.Position)
		if x < 0 || x >= v.width || y < 0 || y >= v.height {
			continue
		}
		v.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(cellColor(p.Color)).Background(tcell.ColorBlack))
	}

	v.drawHUD()
	v.screen.Show()
}

func (v *Viewer) drawHUD() {
	stats := v.ps.Stats()
	effect := v.selector.Current()
	lines := []string{
		fmt.Sprintf("Effect %d/%d: %s", v.selector.Index()+1, v.selector.Len(), effect.Name),
		fmt.Sprintf("Spawners: %d  Particles: %d  Dropped: %d", stats.ActiveSpawners, stats.ActiveParticles, stats.ParticlesDropped),
		v.status,
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for row, line := range lines {
		drawText(v.screen, 0, row, line, style)
	}
	drawText(v.screen, 0, v.height-1, "Space = Spawn  <-/-> = Effect  m = Mute  q/Esc = Quit", style.Dim(true))
}

// run is the event/ticker loop.
func (v *Viewer) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			v.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// cellOf maps a world position to its terminal cell.
func cellOf(pos types.Vec2) (int, int) {
	return int(math.Floor(pos.X / cellWidth)), int(math.Floor(pos.Y / cellHeight))
}

// cellColor premultiplies alpha against the black background.
func cellColor(c types.Color) tcell.Color {
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	blended := background.BlendRgb(fg, utils.Clamp01(c.A))
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
