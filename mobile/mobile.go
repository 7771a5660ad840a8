//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	cp -r assets mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.confetti -o build/android/confetti.aar -v ./mobile
package mobile

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/confetti/pkg/app"
	"github.com/decker502/confetti/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS)

	// 移动端始终全屏，使用配置中的默认特效
	viewer, err := app.NewApp(app.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	mobile.SetGame(viewer)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
