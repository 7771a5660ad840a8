package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/decker502/confetti/pkg/components"
)

const soundSampleRate = beep.SampleRate(48000)

// confettiSound plays a one-shot pop through the speaker every time a
// spawner is created. Playback is fire-and-forget.
type confettiSound struct {
	buffer *beep.Buffer
	volume float64
	muted  bool
	ready  bool
}

// newConfettiSound decodes the WAV at path into memory. A missing file falls
// back to a short synthesized tone; any other read or decode error is returned.
func newConfettiSound(path string, volume float64, logger *zap.SugaredLogger) (*confettiSound, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	buffer, err := loadWav(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infow("sound file not found, using synthesized pop", "path", path)
		buffer, err = synthPop()
	}
	if err != nil {
		return nil, err
	}
	return &confettiSound{buffer: buffer, volume: volume}, nil
}

func loadWav(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{SampleRate: soundSampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == soundSampleRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(4, format.SampleRate, soundSampleRate, streamer))
	}
	return buffer, nil
}

// synthPop 80ms 880Hz 正弦音
func synthPop() (*beep.Buffer, error) {
	sine, err := generators.SineTone(soundSampleRate, 880)
	if err != nil {
		return nil, err
	}
	buffer := beep.NewBuffer(beep.Format{SampleRate: soundSampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Take(soundSampleRate.N(80*time.Millisecond), sine))
	return buffer, nil
}

// init opens the speaker. Failure is not fatal; the viewer runs silently.
func (cs *confettiSound) init() error {
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/10)); err != nil {
		return err
	}
	cs.ready = true
	return nil
}

func (cs *confettiSound) close() {
	if cs.ready {
		speaker.Close()
		cs.ready = false
	}
}

// toggleMute returns the new muted state.
func (cs *confettiSound) toggleMute() bool {
	cs.muted = !cs.muted
	return cs.muted
}

// streamer returns a fresh, volume-adjusted stream of the whole pop.
func (cs *confettiSound) streamer() beep.Streamer {
	return &effects.Volume{
		Streamer: cs.buffer.Streamer(0, cs.buffer.Len()),
		Base:     2,
		Volume:   math.Log2(math.Max(cs.volume, 1e-6)),
		Silent:   cs.muted || cs.volume <= 0,
	}
}

// OnSpawnerCreated implements systems.SpawnListener.
func (cs *confettiSound) OnSpawnerCreated(*components.SpawnerComponent) {
	if !cs.ready || cs.muted {
		return
	}
	speaker.Play(cs.streamer())
}
