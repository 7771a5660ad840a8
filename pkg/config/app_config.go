package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/confetti/pkg/embedded"
	"github.com/decker502/confetti/pkg/utils"
)

// DefaultAppConfigPath 默认应用配置文件路径
const DefaultAppConfigPath = "assets/config/app.yaml"

// AppConfig 应用配置
//
// 描述查看器窗口、特效目录、音频和日志的设置。
// 粒子特效本身的参数在 spawner_dir 下的发射器配置中定义。
//
// 配置文件位置: assets/config/app.yaml
type AppConfig struct {
	Window WindowConfig `yaml:"window"`

	// SpawnerDir 发射器配置目录
	SpawnerDir string `yaml:"spawner_dir"`
	// Spawner 启动时选中的特效名称（文件名，不含扩展名）
	Spawner string `yaml:"spawner"`

	Audio AudioConfig     `yaml:"audio"`
	Log   utils.LogConfig `yaml:"log"`

	// Seed 随机种子，0 表示使用当前时间
	Seed uint64 `yaml:"seed"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	// SampleRate 音频上下文采样率
	SampleRate int `yaml:"sample_rate"`
	// Volume 特效音量基准（0.0-1.0），实际播放时再乘以用户设置的音量
	Volume float64 `yaml:"volume"`
	// Sound 发射器创建时播放的音效文件（.wav / .ogg / .mp3），空表示静音
	Sound string `yaml:"sound"`
}

// DefaultAppConfig 返回默认配置
// 配置文件中缺省的字段使用这里的值
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Particles Test",
			Width:  1280,
			Height: 720,
		},
		SpawnerDir: "assets/config/spawners",
		Spawner:    "basic_spawner",
		Audio: AudioConfig{
			SampleRate: 48000,
			Volume:     0.5,
			Sound:      "assets/sounds/confetti.wav",
		},
		Log: utils.LogConfig{Level: "info"},
	}
}

// ParseAppConfig 解析应用配置（严格模式：未知字段报错）
func ParseAppConfig(data []byte) (*AppConfig, error) {
	config := DefaultAppConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return config, nil
}

// LoadAppConfig 加载应用配置
//
// 优先从嵌入资源读取，不存在时读取磁盘文件。
func LoadAppConfig(path string) (*AppConfig, error) {
	var data []byte
	var err error
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseAppConfig(data)
}

// Validate 验证配置的有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.SpawnerDir == "" {
		return fmt.Errorf("spawner_dir is required")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	if _, err := utils.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
