package iconset

import "fmt"

// Dimension is one required icon variant: a nominal edge length in points and
// the pixel density it is rendered at.
type Dimension struct {
	Length int
	Scale  int
}

// Dimensions lists the variants of a complete iconset, in write order.
var Dimensions = []Dimension{
	{Length: 16, Scale: 1},
	{Length: 16, Scale: 2},
	{Length: 32, Scale: 1},
	{Length: 32, Scale: 2},
	{Length: 128, Scale: 1},
	{Length: 128, Scale: 2},
	{Length: 256, Scale: 1},
	{Length: 256, Scale: 2},
	{Length: 512, Scale: 1},
	{Length: 512, Scale: 2},
}

// Size returns the edge length in pixels.
func (d Dimension) Size() int {
	return d.Length * d.Scale
}

// Filename returns the name iconutil expects for the variant.
func (d Dimension) Filename() string {
	if d.Scale == 1 {
		return fmt.Sprintf("icon_%dx%d.png", d.Length, d.Length)
	}
	return fmt.Sprintf("icon_%dx%d@%dx.png", d.Length, d.Length, d.Scale)
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d@%dx", d.Length, d.Length, d.Scale)
}

// Largest returns the variant with the most pixels.
func Largest() Dimension {
	largest := Dimensions[0]
	for _, d := range Dimensions[1:] {
		if d.Size() > largest.Size() {
			largest = d
		}
	}
	return largest
}
