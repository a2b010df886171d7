package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// shades derives the five cell colors from background to primary,
// interpolating saturation and lightness in HSL space. The hue only
// transitions gradually when transitionHue is set; otherwise any non-zero
// shade snaps straight to the primary hue.
func shades(background, primary string, transitionHue bool) [5]string {
	h1, s1, l1, ok1 := hexToHSL(background)
	h2, s2, l2, ok2 := hexToHSL(primary)
	if !ok1 || !ok2 {
		return [5]string{
			background,
			"hsl(0, 0%, 70%)",
			"hsl(0, 0%, 50%)",
			"hsl(0, 0%, 35%)",
			"hsl(0, 0%, 20%)",
		}
	}
	var out [5]string
	for i := 0; i < 5; i++ {
		t := float64(i) / 4
		h := h2
		if transitionHue {
			h = h1 + (h2-h1)*t
		} else if i == 0 {
			h = h1
		}
		out[i] = hsl(h, s1+(s2-s1)*t, l1+(l2-l1)*t)
	}
	return out
}

func hsl(h, s, l float64) string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

func hexToRGB(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

func hexToHSL(hex string) (h, s, l float64, ok bool) {
	ri, gi, bi, ok := hexToRGB(hex)
	if !ok {
		return 0, 0, 0, false
	}
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255
	max := maxf(r, maxf(g, b))
	min := minf(r, minf(g, b))
	l = (max + min) / 2
	d := max - min
	if d == 0 {
		return 0, 0, l, true
	}
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l, true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
