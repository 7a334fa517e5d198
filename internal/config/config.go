package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Testimonial ring
	MinVisibleCards  = 10 // rotation order is padded by whole passes up to this floor
	RingRadiusFactor = 0.38
	RingMinRadius    = 140.0
	AutoAdvanceDelay = 3500 * time.Millisecond
	RingResizeBounce = 150 * time.Millisecond

	// Video-testimonial slider
	SlideTransition    = 450 * time.Millisecond
	DragCommitFraction = 3 // commit when |delta| exceeds cardWidth / DragCommitFraction
	SliderGap          = 24.0

	// Ray background
	RayVisibleRatio = 0.1
	MouseSmoothing  = 0.92

	// Language switch
	RebindSettle     = 100 * time.Millisecond
	RebindRetryEvery = 250 * time.Millisecond
	RebindRetryMax   = 20
)

// Slider breakpoints: window widths below the bound use the paired per-view.
var SliderBreakpoints = []struct {
	MaxWidth int
	PerView  int
}{
	{640, 1},
	{900, 2},
	{1200, 3},
	{1600, 4},
	{1 << 31, 5},
}
