package imaging

import (
	"image"
	"image/draw"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/soniakeys/quant/median"
)

// ToRGBA forces an image into 3-channel color (RGBA with opaque alpha for
// fully opaque sources). Returns a new buffer; the input is not modified.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// DominantColors approximates the most dominant colors of an image.
//
// The image is forced to 3-channel color, reduced to at most count palette
// entries with a median-cut quantization, and the entries are ranked by how
// many pixels map to each. The result holds up to count hex strings in
// "#rrggbb" form, most frequent first. Fewer entries are returned when the
// quantized palette has fewer distinct colors. count is clamped to at least 1.
func DominantColors(img image.Image, count int) []string {
	if count < 1 {
		count = 1
	}

	rgb := ToRGBA(img)

	// A median cut with a single box reduces to the box average; the
	// quantizer leaves a lone palette entry uninitialized, so compute it
	// directly.
	if count == 1 {
		return []string{averageHex(rgb)}
	}

	quantized := median.Quantizer(count).Paletted(rgb)

	counts := make([]int, len(quantized.Palette))
	for _, idx := range quantized.Pix {
		counts[idx]++
	}

	type entry struct {
		index int
		n     int
	}
	entries := make([]entry, 0, len(counts))
	for i, n := range counts {
		if n > 0 {
			entries = append(entries, entry{index: i, n: n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].n > entries[j].n
	})
	if len(entries) > count {
		entries = entries[:count]
	}

	hexes := make([]string, 0, len(entries))
	for _, e := range entries {
		c, ok := colorful.MakeColor(quantized.Palette[e.index])
		if !ok {
			continue
		}
		hexes = append(hexes, c.Hex())
	}
	return hexes
}

// averageHex returns the mean color of an image as "#rrggbb".
func averageHex(img *image.RGBA) string {
	bounds := img.Bounds()
	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return "#000000"
	}
	c := colorful.Color{
		R: float64(r) / float64(n) / 255.0,
		G: float64(g) / float64(n) / 255.0,
		B: float64(b) / float64(n) / 255.0,
	}
	return c.Hex()
}
