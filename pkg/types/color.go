package types

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a straight (non-premultiplied) RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts to an 8-bit image/color value, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// UnmarshalYAML accepts either a channel sequence ([r, g, b] or [r, g, b, a])
// or a hex string ("#rrggbb" / "#rgb", alpha 1).
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var channels []float64
		if err := node.Decode(&channels); err != nil {
			return fmt.Errorf("line %d: color channels: %w", node.Line, err)
		}
		if len(channels) != 3 && len(channels) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", node.Line, len(channels))
		}
		for i, ch := range channels {
			if ch < 0 || ch > 1 {
				return fmt.Errorf("line %d: color channel %d out of range [0,1]: %v", node.Line, i, ch)
			}
		}
		*c = Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
		if len(channels) == 4 {
			c.A = channels[3]
		}
		return nil
	case yaml.ScalarNode:
		hex, err := colorful.Hex(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: color %q: %w", node.Line, node.Value, err)
		}
		*c = Color{R: hex.R, G: hex.G, B: hex.B, A: 1}
		return nil
	}
	return fmt.Errorf("line %d: color must be a sequence or a hex string", node.Line)
}
