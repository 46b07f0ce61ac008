/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotOKLCH indicates a value that does not parse as oklch().
var ErrNotOKLCH = errors.New("not an oklch() color")

// OKLCH holds parsed oklch() components. L is in percent.
type OKLCH struct {
	L, C, H float64

	// Alpha is the alpha channel; HasAlpha is false when absent.
	Alpha    float64
	HasAlpha bool

	// AlphaPercent is true when alpha was written as a percentage.
	AlphaPercent bool
}

// CanonicalOKLCH rewrites the inside of an oklch() call into
// "oklch(L% C H[ / A])" with every component rounded to two decimals.
// Components that do not parse, or parse to NaN or an infinity, leave the
// call unchanged apart from trimming.
func CanonicalOKLCH(inner string) string {
	unchanged := "oklch(" + strings.TrimSpace(inner) + ")"
	colorPart, alphaPart, hasAlpha := strings.Cut(inner, "/")
	parts := strings.Fields(colorPart)
	if len(parts) < 3 {
		return unchanged
	}

	l, okL := parseFinite(strings.TrimSuffix(parts[0], "%"))
	c, okC := parseFinite(parts[1])
	h, okH := parseFinite(parts[2])
	if !okL || !okC || !okH {
		return unchanged
	}

	out := "oklch(" + FormatRounded(l) + "% " + FormatRounded(c) + " " + FormatRounded(h)
	if alpha := strings.TrimSpace(alphaPart); hasAlpha && alpha != "" {
		a, ok := canonicalAlpha(alpha)
		if !ok {
			return unchanged
		}
		out += " / " + a
	}
	return out + ")"
}

// canonicalAlpha rounds an alpha component. An unparseable alpha is kept
// verbatim; a non-finite one is rejected.
func canonicalAlpha(raw string) (string, bool) {
	pct, isPct := strings.CutSuffix(raw, "%")
	v, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return raw, true
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	if isPct {
		return FormatRounded(v) + "%", true
	}
	return FormatRounded(v), true
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

// FormatRounded formats Round2(v) in its shortest form; negative zero is "0".
func FormatRounded(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}

// ParseOKLCH parses a complete oklch() value.
// Lightness written without a percent sign and at most 1 is read as a fraction.
func ParseOKLCH(value string) (OKLCH, error) {
	m := oklchPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil || !strings.EqualFold(strings.TrimSpace(value), m[0]) {
		return OKLCH{}, ErrNotOKLCH
	}
	colorPart, alphaPart, hasAlpha := strings.Cut(m[1], "/")
	parts := strings.Fields(colorPart)
	if len(parts) < 3 {
		return OKLCH{}, ErrNotOKLCH
	}

	var out OKLCH
	lRaw, pct := strings.CutSuffix(parts[0], "%")
	l, err := strconv.ParseFloat(lRaw, 64)
	if err != nil {
		return OKLCH{}, ErrNotOKLCH
	}
	if !pct && l <= 1 {
		l *= 100
	}
	out.L = l
	if out.C, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return OKLCH{}, ErrNotOKLCH
	}
	if parts[2] == "none" {
		out.H = 0
	} else if out.H, err = strconv.ParseFloat(parts[2], 64); err != nil {
		return OKLCH{}, ErrNotOKLCH
	}

	if hasAlpha {
		raw := strings.TrimSpace(alphaPart)
		aRaw, aPct := strings.CutSuffix(raw, "%")
		a, err := strconv.ParseFloat(aRaw, 64)
		if err != nil {
			return OKLCH{}, ErrNotOKLCH
		}
		out.HasAlpha = true
		out.AlphaPercent = aPct
		if aPct {
			a /= 100
		}
		out.Alpha = a
	}
	return out, nil
}
