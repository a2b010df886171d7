package chart

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var labelFont = func() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}()

// textWidth measures the rendered width of s at the given size in pixels,
// used to reserve gutter space and to drop labels that would overflow.
func textWidth(s string, size int) int {
	scale := fixed.I(size)
	var width fixed.Int26_6
	for _, r := range s {
		width += labelFont.HMetric(scale, labelFont.Index(r)).AdvanceWidth
	}
	return width.Ceil()
}
