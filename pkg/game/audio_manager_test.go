package game

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/decker502/confetti/pkg/components"
)

const confettiSoundPath = "../../assets/sounds/confetti.wav"

// TestDecodeSound_Wav 解码仓库自带的 confetti 音效
func TestDecodeSound_Wav(t *testing.T) {
	data, err := readAsset(confettiSoundPath)
	if err != nil {
		t.Fatalf("readAsset() error: %v", err)
	}

	pcm, err := decodeSound(confettiSoundPath, data, 48000)
	if err != nil {
		t.Fatalf("decodeSound() error: %v", err)
	}
	if len(pcm) == 0 {
		t.Fatal("decoded PCM is empty")
	}
	// 16bit 立体声：每帧 4 字节
	if len(pcm)%4 != 0 {
		t.Errorf("PCM length %d is not a whole number of frames", len(pcm))
	}
}

// auSound 构造单声道 μ-law .au 数据
func auSound(sampleRate uint32, samples []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{0x2e736e64, 24, uint32(len(samples)), 1, sampleRate, 1} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(samples)
	return buf.Bytes()
}

// TestDecodeSound_AU 单声道 μ-law 转为双声道 PCM
func TestDecodeSound_AU(t *testing.T) {
	pcm, err := decodeSound("pop.au", auSound(48000, []byte{0x80, 0x7f, 0x00}), 48000)
	if err != nil {
		t.Fatalf("decodeSound() error: %v", err)
	}
	if len(pcm) != 3*4 {
		t.Errorf("len(pcm) = %d, want 12", len(pcm))
	}
}

// TestDecodeSound_AUResampled 采样率与音频上下文不同时重采样
func TestDecodeSound_AUResampled(t *testing.T) {
	samples := bytes.Repeat([]byte{0x80, 0x00}, 400)

	pcm, err := decodeSound("pop.au", auSound(24000, samples), 48000)
	if err != nil {
		t.Fatalf("decodeSound() error: %v", err)
	}
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		t.Errorf("len(pcm) = %d, want a non-empty whole number of frames", len(pcm))
	}
}

func TestDecodeSound_Unsupported(t *testing.T) {
	if _, err := decodeSound("pop.flac", []byte("fLaC"), 48000); err == nil {
		t.Error("decodeSound() should reject .flac")
	}
	if _, err := decodeSound("pop.wav", []byte("not a wav"), 48000); err == nil {
		t.Error("decodeSound() should reject malformed WAV data")
	}
}

func TestAudioManager_LoadSound(t *testing.T) {
	am := NewAudioManager(nil, nil, 0.5, nil)

	if err := am.LoadSound(SoundConfetti, confettiSoundPath); err != nil {
		t.Fatalf("LoadSound() error: %v", err)
	}
	if _, ok := am.sounds[SoundConfetti]; !ok {
		t.Error("sound was not cached")
	}

	if err := am.LoadSound("missing", filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("LoadSound() should fail for a missing file")
	}
}

// TestAudioManager_SoundVolume 实际音量 = 基准音量 × 用户音量
func TestAudioManager_SoundVolume(t *testing.T) {
	sm := NewSettingsManager(nil, nil)
	am := NewAudioManager(nil, sm, 0.5, nil)

	if got := am.SoundVolume(); got != 0.5 {
		t.Errorf("SoundVolume: got %v, want 0.5", got)
	}

	sm.SetSoundVolume(0.5)
	if got := am.SoundVolume(); got != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", got)
	}

	sm.SetSoundEnabled(false)
	if got := am.SoundVolume(); got != 0 {
		t.Errorf("SoundVolume when muted: got %v, want 0", got)
	}

	if got := NewAudioManager(nil, nil, 3, nil).SoundVolume(); got != 1 {
		t.Errorf("base volume should be clamped, got %v", got)
	}
}

// TestAudioManager_PlayWithoutContext 无音频上下文时静默跳过
func TestAudioManager_PlayWithoutContext(t *testing.T) {
	sm := NewSettingsManager(nil, nil)
	am := NewAudioManager(nil, sm, 0.5, nil)

	if am.PlaySound(SoundConfetti) {
		t.Error("PlaySound() should fail for an unloaded sound")
	}

	am.sounds[SoundConfetti] = make([]byte, 64)
	if am.PlaySound(SoundConfetti) {
		t.Error("PlaySound() should fail without an audio context")
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound(SoundConfetti) {
		t.Error("PlaySound() should fail when sound is disabled")
	}

	// 作为监听器调用不应 panic
	am.OnSpawnerCreated(&components.SpawnerComponent{ID: 1})
}
