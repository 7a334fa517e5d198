package carousel

import "math"

// Point is a top-left placement for one card inside the ring container.
type Point struct {
	X, Y float64
}

// Size is a card's intrinsic width and height.
type Size struct {
	W, H float64
}

// Radius returns the ring radius for a container, clamped to the minimum.
func Radius(w, h, factor, min float64) float64 {
	r := math.Min(w, h) * factor
	if r < min {
		r = min
	}
	return r
}

// Positions places n cards evenly around a circle centered in a w×h container,
// starting at the top and stepping clockwise. Each point is shifted by half the
// card's size so the card is centered on its anchor. Pure function; callers
// recompute on every rotation and on resize.
func Positions(w, h float64, n int, sizes []Size, factor, minRadius float64) []Point {
	if n <= 0 {
		return nil
	}
	r := Radius(w, h, factor, minRadius)
	cx := w / 2
	cy := h / 2
	step := 2 * math.Pi / float64(n)

	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := step*float64(i) - math.Pi/2
		var sz Size
		if i < len(sizes) {
			sz = sizes[i]
		}
		pts[i] = Point{
			X: cx + math.Cos(angle)*r - sz.W/2,
			Y: cy + math.Sin(angle)*r - sz.H/2,
		}
	}
	return pts
}
