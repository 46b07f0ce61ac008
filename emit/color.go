/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/maruel/natural"
	"github.com/mazznoer/csscolorparser"
	"go.uber.org/zap"

	"bennypowers.dev/stratum/normalize"
	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
)

// ColorFormat selects how literal colors are written.
type ColorFormat string

const (
	// ColorSource keeps colors as authored.
	ColorSource ColorFormat = "source"

	// ColorOKLCH writes colors as oklch().
	ColorOKLCH ColorFormat = "oklch"

	// ColorHex writes colors as hex, with alpha when translucent.
	ColorHex ColorFormat = "hex"
)

// ParseColorFormat parses a color format name. The empty string is source.
func ParseColorFormat(s string) (ColorFormat, error) {
	switch ColorFormat(strings.ToLower(s)) {
	case "", ColorSource:
		return ColorSource, nil
	case ColorOKLCH:
		return ColorOKLCH, nil
	case ColorHex:
		return ColorHex, nil
	default:
		return "", fmt.Errorf("unknown color format %q (want source, oklch or hex)", s)
	}
}

var colorNamespaces = map[string]bool{
	schema.NamespacePrimitiveColor: true,
	schema.NamespaceAliasColor:     true,
	schema.NamespaceColor:          true,
	schema.NamespaceComponent:      true,
}

func isColorNode(n *parser.Node) bool {
	return strings.EqualFold(n.Type, "color") || colorNamespaces[n.Namespace]
}

// formatColor converts a literal color value. Values that are not
// parseable colors are returned unchanged.
func (r *Renderer) formatColor(n *parser.Node, value string, format ColorFormat) string {
	if format == "" || format == ColorSource || !isColorNode(n) || strings.HasPrefix(value, "var(") {
		return value
	}
	c, alpha, ok := ParseColor(value)
	if !ok {
		r.log.Debug("leaving unparseable color as authored", zap.String("name", n.Name), zap.String("value", value))
		return value
	}
	switch format {
	case ColorOKLCH:
		return formatOKLCH(c, alpha)
	case ColorHex:
		return formatHex(c, alpha)
	default:
		return value
	}
}

// ParseColor reads oklch() through the canonicalizer and every other CSS
// color syntax through csscolorparser.
func ParseColor(value string) (colorful.Color, float64, bool) {
	if o, err := normalize.ParseOKLCH(value); err == nil {
		alpha := 1.0
		if o.HasAlpha {
			alpha = o.Alpha
		}
		return colorful.OkLch(o.L/100, o.C, o.H), alpha, true
	}
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, 0, false
	}
	return colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}, parsed.A, true
}

func formatOKLCH(c colorful.Color, alpha float64) string {
	l, ch, h := c.OkLch()
	if ch < 0.0005 {
		h = 0
	}
	out := "oklch(" + normalize.FormatRounded(l*100) + "% " + round(ch, 4) + " " + normalize.FormatRounded(h)
	if alpha < 1 {
		out += " / " + normalize.FormatRounded(alpha)
	}
	return out + ")"
}

func formatHex(c colorful.Color, alpha float64) string {
	hex := c.Clamped().Hex()
	if alpha < 1 {
		hex += fmt.Sprintf("%02x", int(math.Round(alpha*255)))
	}
	return hex
}

func round(v float64, places int) string {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func naturalCompare(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	default:
		return 1
	}
}
