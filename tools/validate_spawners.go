//go:build ignore

// validate_spawners 检查 spawner 配置目录中的每个 YAML 文件
//
// Usage:
//
//	go run tools/validate_spawners.go [dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/confetti/internal/particle"
)

func main() {
	dir := "assets/config/spawners"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ 无法列出目录: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("❌ %s 中没有 spawner 配置\n", dir)
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		config, err := particle.LoadSpawnerConfig(file)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", file, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: pool=%d interval=%.3fs burst=%d duration=%.2fs\n",
			file, config.PoolCapacity(), config.BurstInterval, config.ParticlesPerBurst, config.TotalDuration())
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个配置无效\n", failed, len(files))
		os.Exit(1)
	}
	fmt.Printf("✅ 全部 %d 个配置有效\n", len(files))
}
