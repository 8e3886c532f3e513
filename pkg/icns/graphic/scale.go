package graphic

import "math"

const (
	// largestVariant is the pixel size of the biggest icon in an iconset.
	largestVariant = 1024
	// maxRasterDimension bounds the short side of rasterized documents.
	maxRasterDimension = 4 * largestVariant
)

// ScaleFactor returns the multiplier that brings a document of the given size
// near maxDimension on its short side, never treating that side as smaller
// than minDimension.
//
// Raw factors above 2 are floored to an even integer, factors in (1, 2] are
// rounded to an integer and smaller factors are rounded to one decimal.
func ScaleFactor(width, height, minDimension, maxDimension float64) float64 {
	short := math.Max(math.Min(width, height), minDimension)
	if short <= 0 {
		return 0
	}
	raw := maxDimension / short
	switch {
	case raw > 2:
		return math.Floor(raw/2) * 2
	case raw > 1:
		return math.Round(raw)
	default:
		return math.Round(raw*10) / 10
	}
}
