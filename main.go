// Command confetti 是粒子爆发特效的桌面查看器
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   应用配置文件（默认 assets/config/app.yaml）
//	--effect <name>   启动时选中的特效（如 --effect=fountain）
//	--windowed        忽略全屏设置
//	--verbose         debug 级别日志
//
// Controls:
//
//	Space             - 在屏幕顶部中央生成当前特效
//	Left/Right Arrow  - 切换特效
//	M                 - 静音 / 取消静音
//	F11               - 切换全屏
//	Escape            - 退出
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/confetti/pkg/app"
	"github.com/decker502/confetti/pkg/embedded"
)

var (
	configFlag   = flag.String("config", "", "Path to the app config (default assets/config/app.yaml)")
	effectFlag   = flag.String("effect", "", "Start with a specific effect name")
	windowedFlag = flag.Bool("windowed", false, "Ignore the fullscreen setting")
	verboseFlag  = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(assetsFS)

	viewer, err := app.NewApp(app.Config{
		ConfigPath: *configFlag,
		Effect:     *effectFlag,
		Verbose:    *verboseFlag,
		Windowed:   *windowedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if err := viewer.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", err)
		os.Exit(1)
	}
}
