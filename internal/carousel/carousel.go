package carousel

import "time"

// Direction selects which way the rotation order moves.
type Direction int

const (
	Next Direction = iota
	Prev
)

// Item is one testimonial card in the rotation order.
type Item struct {
	Index int // index into the original sequence
	Clone bool
	Size  Size
}

// Carousel keeps a fixed-length rotation order of cards placed on a ring and
// advances it on a timer. Rotation is the only mutation of the order: one pop
// from the end pushed to the front, or the inverse. The auto-advance timer is
// gated by window visibility and pointer hover, and manual navigation resets
// it to a full delay.
type Carousel struct {
	order []Item
	n     int // original card count

	w, h              float64
	factor, minRadius float64

	delay    time.Duration
	deadline time.Time // zero while the timer is stopped
	hovered  bool

	// image gate: positioning and auto-advance wait for every card image to
	// report loaded-or-errored exactly once
	imgTotal int
	imgDone  int
}

// New builds a carousel from the original card sizes. The rotation order is
// padded by whole cyclic passes until it reaches floor cards. A zero-length
// source disables the carousel: every method becomes a no-op.
func New(sizes []Size, floor int, delay time.Duration, factor, minRadius float64) *Carousel {
	c := &Carousel{
		n:         len(sizes),
		factor:    factor,
		minRadius: minRadius,
		delay:     delay,
	}
	if c.n == 0 {
		return c
	}
	c.order = padOrder(sizes, floor)
	return c
}

// padOrder clones full passes of the source until the order reaches the floor.
func padOrder(sizes []Size, floor int) []Item {
	n := len(sizes)
	passes := 1
	for n*passes < floor {
		passes++
	}
	order := make([]Item, 0, n*passes)
	for p := 0; p < passes; p++ {
		for i, sz := range sizes {
			order = append(order, Item{Index: i, Clone: p > 0, Size: sz})
		}
	}
	return order
}

// SetImageCount arms the image gate. Zero means no images: the carousel is
// ready immediately.
func (c *Carousel) SetImageCount(total int) {
	c.imgTotal = total
}

// ImageDone records one image having loaded or errored. Each image must be
// counted exactly once; callers own that guarantee.
func (c *Carousel) ImageDone(now time.Time) {
	if c.n == 0 || c.imgDone >= c.imgTotal {
		return
	}
	c.imgDone++
	if c.Ready() && c.deadline.IsZero() && !c.hovered {
		c.deadline = now.Add(c.delay)
	}
}

// Ready reports whether initial positioning and auto-advance may begin.
func (c *Carousel) Ready() bool {
	return c.n > 0 && c.imgDone >= c.imgTotal
}

// Start arms the auto-advance timer if the image gate has passed.
func (c *Carousel) Start(now time.Time) {
	if !c.Ready() || c.hovered {
		return
	}
	c.deadline = now.Add(c.delay)
}

// Rotate moves the order one step and resets the auto-advance timer so the
// next tick is a full delay away.
func (c *Carousel) Rotate(dir Direction, now time.Time) {
	if c.n == 0 || !c.Ready() {
		return
	}
	c.rotate(dir)
	if !c.hovered {
		c.deadline = now.Add(c.delay)
	}
}

func (c *Carousel) rotate(dir Direction) {
	last := len(c.order) - 1
	if dir == Next {
		tail := c.order[last]
		copy(c.order[1:], c.order[:last])
		c.order[0] = tail
	} else {
		head := c.order[0]
		copy(c.order[:last], c.order[1:])
		c.order[last] = head
	}
}

// Tick fires the auto-advance when its deadline passes. The deadline is
// re-armed regardless of visibility; the rotation itself is suppressed while
// the window is hidden, matching an interval that keeps firing but checks a
// visibility flag.
func (c *Carousel) Tick(now time.Time, visible bool) bool {
	if c.n == 0 || c.deadline.IsZero() || now.Before(c.deadline) {
		return false
	}
	c.deadline = now.Add(c.delay)
	if !visible || !c.Ready() {
		return false
	}
	c.rotate(Next)
	return true
}

// SetHover stops the timer on enter and restarts it with a full delay on
// leave. This is a stop/restart, not a skipped tick.
func (c *Carousel) SetHover(hovered bool, now time.Time) {
	if c.n == 0 || hovered == c.hovered {
		return
	}
	c.hovered = hovered
	if hovered {
		c.deadline = time.Time{}
	} else if c.Ready() {
		c.deadline = now.Add(c.delay)
	}
}

// Resize records the container size used for placement.
func (c *Carousel) Resize(w, h float64) {
	c.w, c.h = w, h
}

// Order returns the current rotation order. The slice is live; callers must
// not mutate it.
func (c *Carousel) Order() []Item { return c.order }

// Len returns the padded order length.
func (c *Carousel) Len() int { return len(c.order) }

// Positions places every card in the current order around the ring. Returns
// nil until the image gate has passed or when the container has no size.
func (c *Carousel) Positions() []Point {
	if !c.Ready() || c.w <= 0 || c.h <= 0 {
		return nil
	}
	sizes := make([]Size, len(c.order))
	for i, it := range c.order {
		sizes[i] = it.Size
	}
	return Positions(c.w, c.h, len(c.order), sizes, c.factor, c.minRadius)
}
