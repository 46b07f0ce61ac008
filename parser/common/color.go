/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AlphaThreshold is the value below which alpha is included in CSS output.
// Values >= 0.999 are treated as fully opaque to avoid unnecessary alpha channels.
const AlphaThreshold = 0.999

// ValidColorSpaces lists the color spaces a structured color value may use.
var ValidColorSpaces = map[string]bool{
	"srgb":         true,
	"display-p3":   true,
	"a98-rgb":      true,
	"prophoto-rgb": true,
	"rec2020":      true,
	"xyz-d50":      true,
	"xyz-d65":      true,
	"lab":          true,
	"lch":          true,
	"oklab":        true,
	"oklch":        true,
	"srgb-linear":  true,
	"hsl":          true,
	"hwb":          true,
}

// StructuredColor is a color exported as an object rather than a CSS string,
// e.g. {"colorSpace": "oklch", "components": [0.62, 0.21, 259.8]}.
type StructuredColor struct {
	ColorSpace string
	Components []any // float64 or the "none" keyword
	Alpha      *float64
	Hex        *string
}

// IsStructuredColor reports whether value looks like a structured color object.
func IsStructuredColor(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	_, hasSpace := obj["colorSpace"]
	_, hasComponents := obj["components"]
	return hasSpace && hasComponents
}

// ToCSS returns the CSS representation of the color.
func (o *StructuredColor) ToCSS() string {
	if o.Hex != nil && *o.Hex != "" && !o.hasAlpha() {
		return *o.Hex
	}

	if o.ColorSpace == "srgb" && o.canConvertToHex() {
		return o.toHex()
	}

	var sb strings.Builder
	for i, comp := range o.Components {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch v := comp.(type) {
		case float64:
			sb.WriteString(formatComponent(o.ColorSpace, i, v))
		case string:
			sb.WriteString(v) // "none" keyword
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	compStr := sb.String()

	// Color spaces that have native CSS functions
	switch o.ColorSpace {
	case "hsl", "hwb", "lab", "lch", "oklab", "oklch":
		if o.hasAlpha() {
			return fmt.Sprintf("%s(%s / %.4g)", o.ColorSpace, compStr, *o.Alpha)
		}
		return fmt.Sprintf("%s(%s)", o.ColorSpace, compStr)
	default:
		if o.hasAlpha() {
			return fmt.Sprintf("color(%s %s / %.4g)", o.ColorSpace, compStr, *o.Alpha)
		}
		return fmt.Sprintf("color(%s %s)", o.ColorSpace, compStr)
	}
}

// formatComponent renders one component. OKLCH lightness is written as a
// percentage so the value matches the canonical comparison form.
func formatComponent(space string, index int, v float64) string {
	if space == "oklch" && index == 0 && v <= 1 {
		return fmt.Sprintf("%.4g%%", v*100)
	}
	return fmt.Sprintf("%.4g", v)
}

func (o *StructuredColor) hasAlpha() bool {
	return o.Alpha != nil && *o.Alpha < AlphaThreshold
}

// canConvertToHex returns true if this sRGB color can be converted to hex.
// Requires exactly 3 numeric components and alpha >= threshold.
func (o *StructuredColor) canConvertToHex() bool {
	if len(o.Components) != 3 || o.hasAlpha() {
		return false
	}
	for _, comp := range o.Components {
		if _, ok := comp.(float64); !ok {
			return false
		}
	}
	return true
}

// toHex converts sRGB components to hex format (#RRGGBB).
func (o *StructuredColor) toHex() string {
	r := clamp(int(o.Components[0].(float64)*255+0.5), 0, 255)
	g := clamp(int(o.Components[1].(float64)*255+0.5), 0, 255)
	b := clamp(int(o.Components[2].(float64)*255+0.5), 0, 255)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ParseStructuredColor parses a structured color object.
func ParseStructuredColor(value any) (*StructuredColor, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected structured color object, got %T", value)
	}

	colorSpace, ok := obj["colorSpace"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid colorSpace field")
	}
	if !ValidColorSpaces[colorSpace] {
		return nil, fmt.Errorf("unsupported colorSpace %q", colorSpace)
	}

	components, ok := obj["components"].([]any)
	if !ok {
		return nil, fmt.Errorf("components must be an array")
	}

	for i, comp := range components {
		switch v := comp.(type) {
		case float64:
		case string:
			if v != "none" {
				return nil, fmt.Errorf("component[%d]: invalid string %q; only \"none\" allowed", i, v)
			}
		default:
			return nil, fmt.Errorf("component[%d]: invalid type %T", i, comp)
		}
	}

	color := &StructuredColor{ColorSpace: colorSpace, Components: components}
	if alpha, ok := obj["alpha"].(float64); ok {
		color.Alpha = &alpha
	}
	if hex, ok := obj["hex"].(string); ok {
		color.Hex = &hex
	}
	return color, nil
}

// IsRGBAColor reports whether value is a channel object such as
// {"r": 0.1, "g": 0.2, "b": 0.3, "a": 1} with channels in 0..1.
func IsRGBAColor(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	for _, k := range []string{"r", "g", "b"} {
		if _, ok := obj[k].(float64); !ok {
			return false
		}
	}
	return true
}

// RGBAToCSS renders a channel object as hex, or rgb() with alpha when
// translucent.
func RGBAToCSS(value any) string {
	obj, _ := value.(map[string]any)
	r, _ := obj["r"].(float64)
	g, _ := obj["g"].(float64)
	b, _ := obj["b"].(float64)
	c := colorful.Color{R: r, G: g, B: b}.Clamped()

	alpha, hasAlpha := obj["a"].(float64)
	if !hasAlpha || alpha >= AlphaThreshold {
		return c.Hex()
	}
	r8, g8, b8 := c.RGB255()
	return fmt.Sprintf("rgb(%d %d %d / %.4g)", r8, g8, b8, alpha)
}
