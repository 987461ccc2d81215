package surface

// RGBOrder gives the byte offset of each component within a 3-byte
// pixel.
type RGBOrder struct {
	R, G, B int
}

// RGBAOrder gives the byte offset of each component within a 4-byte
// pixel.
type RGBAOrder struct {
	R, G, B, A int
}

// Component orders for the recognized pixel layouts.
var (
	OrderRGB = RGBOrder{R: 0, G: 1, B: 2}
	OrderBGR = RGBOrder{R: 2, G: 1, B: 0}

	OrderRGBA = RGBAOrder{R: 0, G: 1, B: 2, A: 3}
	OrderBGRA = RGBAOrder{R: 2, G: 1, B: 0, A: 3}
	OrderARGB = RGBAOrder{R: 1, G: 2, B: 3, A: 0}
	OrderABGR = RGBAOrder{R: 3, G: 2, B: 1, A: 0}
)
