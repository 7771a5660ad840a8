package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auFile(encoding, sampleRate, channels uint32, body []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{auMagic, auHeaderSize, uint32(len(body)), encoding, sampleRate, channels} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(body)
	return buf.Bytes()
}

func TestULawToLinear(t *testing.T) {
	tests := []struct {
		in   byte
		want int16
	}{
		{0x00, -32124},
		{0x7f, 0},
		{0x80, 32124},
		{0xff, 0},
		{0x0f, -16764},
		{0xf0, 120},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ulawToLinear(tt.in), "ulaw 0x%02x", tt.in)
	}
}

func TestDecodeAU_MonoULaw(t *testing.T) {
	clip, err := DecodeAU(bytes.NewReader(auFile(encodingULaw, 8000, 1, []byte{0x80, 0x00})))
	require.NoError(t, err)

	assert.Equal(t, 8000, clip.SampleRate)
	assert.Equal(t, 2, clip.Frames())

	le := binary.LittleEndian
	// 单声道复制到左右声道
	assert.Equal(t, int16(32124), int16(le.Uint16(clip.PCM[0:])))
	assert.Equal(t, int16(32124), int16(le.Uint16(clip.PCM[2:])))
	assert.Equal(t, int16(-32124), int16(le.Uint16(clip.PCM[4:])))
	assert.Equal(t, int16(-32124), int16(le.Uint16(clip.PCM[6:])))
}

func TestDecodeAU_StereoPCM16(t *testing.T) {
	body := []byte{0x01, 0x00, 0xff, 0xff} // L=256, R=-1
	clip, err := DecodeAU(bytes.NewReader(auFile(encodingPCM16, 44100, 2, body)))
	require.NoError(t, err)

	require.Equal(t, 1, clip.Frames())
	le := binary.LittleEndian
	assert.Equal(t, int16(256), int16(le.Uint16(clip.PCM[0:])))
	assert.Equal(t, int16(-1), int16(le.Uint16(clip.PCM[2:])))
}

func TestDecodeAU_Errors(t *testing.T) {
	badMagic := auFile(encodingULaw, 8000, 1, []byte{0})
	badMagic[0] = 0

	tests := map[string][]byte{
		"too short":      {0x2e, 0x73},
		"bad magic":      badMagic,
		"bad encoding":   auFile(27, 8000, 1, []byte{0}),
		"bad channels":   auFile(encodingULaw, 8000, 6, []byte{0}),
		"bad samplerate": auFile(encodingULaw, 0, 1, []byte{0}),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeAU(bytes.NewReader(data))
			assert.Error(t, err)
		})
	}
}
