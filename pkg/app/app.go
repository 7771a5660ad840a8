// Package app 提供 confetti 查看器的 ebiten 应用包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载应用配置、日志、用户设置、
// 特效目录和音频，然后驱动粒子系统并绘制。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/game"
	"github.com/decker502/confetti/pkg/systems"
	"github.com/decker502/confetti/pkg/types"
	"github.com/decker502/confetti/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 应用配置文件路径，为空使用 config.DefaultAppConfigPath
	ConfigPath string
	// Effect 启动时选中的特效，为空时依次使用上次选中的特效和配置中的默认特效
	Effect string
	// Verbose 强制 debug 级别日志
	Verbose bool
	// Windowed 忽略全屏设置
	Windowed bool
}

// App 是查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	appConfig *config.AppConfig
	log       *zap.SugaredLogger

	particleSystem  *systems.ParticleSystem
	renderSystem    *RenderSystem
	selector        *systems.EffectSelector
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	viewport     types.Viewport
	mobile       bool
	spawnPending bool // 首帧 Layout 之后再生成，使用真实视口
	drawn        int
	statusMsg    string
	closed       bool
}

// NewApp 创建并初始化查看器
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultAppConfigPath
	}
	appConfig, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		appConfig.Log.Level = "debug"
	}

	logger, err := utils.NewLogger(appConfig.Log)
	if err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}
	log := logger.Named("App")

	// 用户设置（gdata 不可用时降级为内存模式）
	if err := utils.EnsureStorageDir(); err != nil {
		log.Warnw("storage directory unavailable", "error", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "confetti"})
	if err != nil {
		log.Warnw("gdata unavailable, settings will not persist", "error", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager, logger)

	catalog, err := particle.LoadCatalog(appConfig.SpawnerDir)
	if err != nil {
		return nil, fmt.Errorf("特效目录加载失败: %w", err)
	}
	log.Infow("effect catalog loaded", "dir", appConfig.SpawnerDir, "effects", catalog.Names())

	seed := appConfig.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	particleSystem := systems.NewParticleSystem(logger, systems.NewRand(seed))

	// 音频
	audioContext := audio.NewContext(appConfig.Audio.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager, appConfig.Audio.Volume, logger)
	if appConfig.Audio.Sound != "" {
		if err := audioManager.LoadSound(game.SoundConfetti, appConfig.Audio.Sound); err != nil {
			log.Warnw("confetti sound unavailable", "error", err)
		}
	}
	particleSystem.AddSpawnListener(audioManager)

	// 优先级：命令行 > 上次选中 > 配置默认
	selector := systems.NewEffectSelector(catalog, particleSystem, appConfig.Spawner)
	if cfg.Effect != "" {
		if !selector.Select(cfg.Effect) {
			log.Warnw("unknown effect, using default", "effect", cfg.Effect, "default", selector.Current().Name)
		}
	} else if last := settingsManager.GetSettings().LastEffect; last != "" {
		selector.Select(last)
	}

	ebiten.SetWindowTitle(appConfig.Window.Title)
	ebiten.SetWindowSize(appConfig.Window.Width, appConfig.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	fullscreen := appConfig.Window.Fullscreen || settingsManager.GetSettings().Fullscreen
	ebiten.SetFullscreen(fullscreen && !cfg.Windowed)

	a := &App{
		appConfig:       appConfig,
		log:             log,
		particleSystem:  particleSystem,
		renderSystem:    NewRenderSystem(),
		selector:        selector,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		viewport:        types.Viewport{Width: float64(appConfig.Window.Width), Height: float64(appConfig.Window.Height)},
		spawnPending:    true,
		mobile:          utils.IsMobile(),
	}
	log.Infow("viewer initialized", "effect", selector.Current().Name, "seed", seed)
	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次，dt = 1 / TPS
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		a.persistSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.selectEffect(a.selector.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.selectEffect(a.selector.Previous())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleSound()
	}

	spawn := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if tapped, x, _ := justTapped(); tapped {
		switch classifyTap(x, a.viewport.Width, a.mobile) {
		case tapSpawn:
			spawn = true
		case tapPrevious:
			a.selectEffect(a.selector.Previous())
		case tapNext:
			a.selectEffect(a.selector.Next())
		}
	}

	if a.spawnPending || spawn {
		a.spawnPending = false
		a.spawn()
	}

	a.particleSystem.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) selectEffect(effect *particle.SpawnerConfig) {
	if effect == nil {
		return
	}
	a.settingsManager.SetLastEffect(effect.Name)
	a.persistSettings()
	a.statusMsg = fmt.Sprintf("Selected: %s", effect.Name)
	a.log.Debugw("effect selected", "effect", effect.Name)
}

func (a *App) toggleSound() {
	if a.settingsManager.ToggleSound() {
		a.statusMsg = "Sound on"
	} else {
		a.statusMsg = "Sound muted"
	}
	a.persistSettings()
}

// persistSettings 设置变化后立即保存
// 移动端进程可能被系统直接结束，不会经过 shutdown
func (a *App) persistSettings() {
	if err := a.settingsManager.Save(); err != nil {
		a.log.Warnw("failed to save settings", "error", err)
	}
}

func (a *App) spawn() {
	if _, err := a.selector.SpawnCurrent(a.viewport); err != nil {
		a.statusMsg = err.Error()
		a.log.Errorw("spawn failed", "error", err)
	}
}

// shutdown 保存设置并记录统计，只执行一次
func (a *App) shutdown() {
	if a.closed {
		return
	}
	a.closed = true

	a.persistSettings()
	stats := a.particleSystem.Stats()
	a.log.Infow("viewer closed",
		"spawners", stats.SpawnersCreated,
		"bursts", stats.Bursts,
		"emitted", stats.ParticlesEmitted,
		"dropped", stats.ParticlesDropped)
	_ = a.log.Sync()
}

// Draw 绘制画面：黑色背景、粒子、调试信息
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.drawn = a.renderSystem.DrawParticles(screen, a.particleSystem)
	a.drawHUD(screen)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	stats := a.particleSystem.Stats()
	effect := a.selector.Current()

	lines := []string{
		fmt.Sprintf("Effect %d/%d: %s", a.selector.Index()+1, a.selector.Len(), effect.Name),
		fmt.Sprintf("Spawners: %d  Particles: %d  Drawn: %d", stats.ActiveSpawners, stats.ActiveParticles, a.drawn),
		fmt.Sprintf("Bursts: %d  Emitted: %d  Dropped: %d", stats.Bursts, stats.ParticlesEmitted, stats.ParticlesDropped),
		fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if a.statusMsg != "" {
		lines = append(lines, a.statusMsg)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*20)
	}

	help := "Space/Click = Spawn  <-/-> = Effect  M = Mute  F11 = Fullscreen  Esc = Quit"
	if a.mobile {
		help = "Tap = Spawn  Tap edges = Effect"
	}
	ebitenutil.DebugPrintAt(screen, help, 10, int(a.viewport.Height)-30)
}

// Layout 逻辑屏幕尺寸与窗口一致，粒子铺满整个窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.viewport = types.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	}
	return outsideWidth, outsideHeight
}

// Run 启动 ebiten 主循环，Esc 或关闭窗口正常退出时返回 nil
// 无论以何种方式退出都会保存设置
func (a *App) Run() error {
	err := ebiten.RunGame(a)
	a.shutdown()
	return err
}
