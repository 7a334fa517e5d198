package slider

import "time"

// DragController converts a pointer gesture into a live track offset and, on
// release, either commits one step or snaps back. Drag state exists only
// between Begin and End; every handler is guarded by the dragging flag.
type DragController struct {
	track *Track

	dragging    bool
	startX      float64
	startOffset float64

	commitFraction float64 // commit when |delta| exceeds cardWidth / commitFraction
}

// NewDrag wires a controller to its track.
func NewDrag(track *Track, commitFraction float64) *DragController {
	if commitFraction <= 0 {
		commitFraction = 3
	}
	return &DragController{track: track, commitFraction: commitFraction}
}

// Dragging reports whether a gesture is in flight.
func (d *DragController) Dragging() bool { return d.dragging }

// Begin starts a gesture: captures the start coordinate and the live offset,
// cancels any running transition, and pauses autoplay.
func (d *DragController) Begin(x float64, now time.Time) {
	if d.dragging || d.track.Len() == 0 {
		return
	}
	d.dragging = true
	d.startX = x
	d.startOffset = d.track.Offset(now)
	d.track.setLive(d.startOffset)
	d.track.PauseAutoplay()
}

// Move applies the pointer delta to the track immediately. Every move event
// writes; there is no debounce.
func (d *DragController) Move(x float64) {
	if !d.dragging {
		return
	}
	d.track.setLive(d.startOffset + (x - d.startX))
}

// End finishes the gesture. A delta past one commitFraction-th of a card
// width commits one step in the indicated direction (flipped under
// right-to-left layout); anything less snaps back animated. Autoplay resumes
// with a full delay either way.
func (d *DragController) End(x float64, now time.Time) {
	if !d.dragging {
		return
	}
	d.dragging = false
	delta := x - d.startX
	threshold := d.track.CardWidth() / d.commitFraction

	if abs(delta) > threshold {
		forward := delta < 0
		if d.track.RTL() {
			forward = !forward
		}
		if forward {
			d.track.Next(now)
		} else {
			d.track.Prev(now)
		}
	} else {
		d.track.Update(true, now)
	}
	d.track.StartAutoplay(now)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
