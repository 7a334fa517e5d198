package rays

// edgeOutset is how far outside the section edge a ray source sits, as a
// fraction of the section dimension.
const edgeOutset = 0.2

// AnchorAndDir maps a named origin to the ray source point and its
// perpendicular unit direction. Unknown names fall back to top-center.
func AnchorAndDir(origin string, w, h float64) (anchor, dir [2]float64) {
	switch origin {
	case "top-left":
		return [2]float64{0, -edgeOutset * h}, [2]float64{0, 1}
	case "top-right":
		return [2]float64{w, -edgeOutset * h}, [2]float64{0, 1}
	case "left":
		return [2]float64{-edgeOutset * w, 0.5 * h}, [2]float64{1, 0}
	case "right":
		return [2]float64{(1 + edgeOutset) * w, 0.5 * h}, [2]float64{-1, 0}
	case "bottom-left":
		return [2]float64{0, (1 + edgeOutset) * h}, [2]float64{0, -1}
	case "bottom-center":
		return [2]float64{0.5 * w, (1 + edgeOutset) * h}, [2]float64{0, -1}
	case "bottom-right":
		return [2]float64{w, (1 + edgeOutset) * h}, [2]float64{0, -1}
	case "top-center":
		fallthrough
	default:
		return [2]float64{0.5 * w, -edgeOutset * h}, [2]float64{0, 1}
	}
}
