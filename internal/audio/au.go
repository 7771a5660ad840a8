// Package audio 解码 Sun/NeXT .au 音效
//
// ebiten 自带 wav/ogg/mp3 解码器，.au 需要自行处理。输出格式与
// ebiten 音频上下文一致：16 位小端、双声道交错 PCM。
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	auMagic      = 0x2e736e64 // ".snd"
	auHeaderSize = 24

	encodingULaw  = 1
	encodingPCM16 = 3
)

// Clip 解码后的音效
type Clip struct {
	PCM        []byte // 16-bit LE stereo
	SampleRate int
}

// Frames 返回采样帧数（每帧 4 字节）
func (c *Clip) Frames() int {
	return len(c.PCM) / 4
}

// DecodeAU 读取完整的 .au 数据并转换为双声道 PCM
// 支持 μ-law 和 16 位线性编码，单声道会复制到左右声道
func DecodeAU(r io.Reader) (*Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU data: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU data too short: %d bytes", len(data))
	}

	be := binary.BigEndian
	if magic := be.Uint32(data[0:]); magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x", magic)
	}
	offset := int(be.Uint32(data[4:]))
	encoding := be.Uint32(data[12:])
	sampleRate := int(be.Uint32(data[16:]))
	channels := int(be.Uint32(data[20:]))

	if offset < auHeaderSize || offset > len(data) {
		return nil, fmt.Errorf("invalid AU data offset: %d", offset)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported AU channel count: %d", channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid AU sample rate: %d", sampleRate)
	}

	var samples []int16
	body := data[offset:]
	switch encoding {
	case encodingULaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = ulawToLinear(b)
		}
	case encodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(be.Uint16(body[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d", encoding)
	}

	frames := len(samples) / channels
	pcm := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		left := samples[i*channels]
		right := left
		if channels == 2 {
			right = samples[i*channels+1]
		}
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(left))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(right))
	}

	return &Clip{PCM: pcm, SampleRate: sampleRate}, nil
}

// ulawToLinear G.711 μ-law 解码
func ulawToLinear(u byte) int16 {
	u = ^u
	t := (int32(u&0x0f) << 3) + 0x84
	t <<= (u & 0x70) >> 4
	if u&0x80 != 0 {
		return int16(0x84 - t)
	}
	return int16(t - 0x84)
}
