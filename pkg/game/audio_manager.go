package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"

	auaudio "github.com/decker502/confetti/internal/audio"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/embedded"
)

// SoundConfetti 发射器创建时播放的音效 ID
const SoundConfetti = "confetti"

// AudioManager 音频管理器
// 职责：
//   - 加载并缓存解码后的音效 PCM 数据
//   - 每次播放创建独立的 player，同一音效可以叠加播放
//   - 音量 = 配置中的基准音量 × 用户设置音量
//
// 作为 SpawnListener 注册到粒子系统：每创建一个发射器播放一次 confetti 音效。
// 播放即发即弃，不随发射器结束而停止。
type AudioManager struct {
	context         *audio.Context   // 可为 nil（无音频设备时静音运行）
	settingsManager *SettingsManager // 可为 nil
	baseVolume      float64
	sounds          map[string][]byte // 音效ID -> 16bit 立体声 PCM
	log             *zap.SugaredLogger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，nil 时所有播放请求直接返回 false
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - baseVolume: 特效音量基准 0.0 ~ 1.0
//   - logger: 可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, baseVolume float64, logger *zap.SugaredLogger) *AudioManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		baseVolume:      clampVolume(baseVolume),
		sounds:          make(map[string][]byte),
		log:             logger.Named("AudioManager"),
	}
}

// LoadSound 加载音效文件并以 soundID 缓存
// 支持 .wav / .ogg / .mp3，解码时重采样到音频上下文的采样率
func (am *AudioManager) LoadSound(soundID, path string) error {
	data, err := readAsset(path)
	if err != nil {
		return fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	sampleRate := 48000
	if am.context != nil {
		sampleRate = am.context.SampleRate()
	}

	pcm, err := decodeSound(path, data, sampleRate)
	if err != nil {
		return err
	}
	am.sounds[soundID] = pcm
	am.log.Debugw("sound loaded", "id", soundID, "path", path, "bytes", len(pcm))
	return nil
}

// PlaySound 播放音效（单次）
//
// 返回是否真正开始播放：音效关闭、音量为 0、未加载或无音频上下文时返回 false
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := am.SoundVolume()
	if volume <= 0 {
		return false
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		am.log.Warnw("sound not loaded", "id", soundID)
		return false
	}
	if am.context == nil {
		return false
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	return true
}

// SoundVolume 返回实际播放音量
func (am *AudioManager) SoundVolume() float64 {
	if am.settingsManager == nil {
		return am.baseVolume
	}
	return am.baseVolume * am.settingsManager.EffectiveSoundVolume()
}

// OnSpawnerCreated 发射器创建时播放 confetti 音效
func (am *AudioManager) OnSpawnerCreated(s *components.SpawnerComponent) {
	if am.PlaySound(SoundConfetti) {
		am.log.Debugw("confetti sound played", "spawner", s.ID)
	}
}

// decodeSound 按扩展名解码音频数据为 16bit 立体声 PCM
func decodeSound(path string, data []byte, sampleRate int) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", path, err)
		}
		stream = s
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound %s: %w", path, err)
		}
		stream = s
	case ".au":
		clip, err := auaudio.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU sound %s: %w", path, err)
		}
		if clip.SampleRate == sampleRate {
			return clip.PCM, nil
		}
		stream = audio.Resample(bytes.NewReader(clip.PCM), int64(len(clip.PCM)), clip.SampleRate, sampleRate)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3, .au)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound %s: %w", path, err)
	}
	return pcm, nil
}

// readAsset 优先从嵌入资源读取，否则读取磁盘文件
func readAsset(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
