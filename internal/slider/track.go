package slider

import "time"

// Breakpoint pairs a window width bound with a per-view card count.
type Breakpoint struct {
	MaxWidth int
	PerView  int
}

// Track is the video-testimonial slider model: a linear track of 3N entries
// (a reversed clone pass, the originals, a forward clone pass) with an integer
// cursor into the padded sequence. The cursor stays in [N, 2N) at every
// settle; transient overshoot into a clone region is re-homed to the
// equivalent original position without animation once the tween completes, so
// the wraparound is never visible.
type Track struct {
	n       int
	current int

	perView float64
	cardW   float64
	gap     float64
	rtl     bool

	duration     time.Duration
	animating    bool
	animStart    time.Time
	animFrom     float64
	animTo       float64
	offset       float64 // settled or drag-live translate
	pendingCheck bool

	delay    time.Duration
	deadline time.Time // zero while autoplay is stopped
}

// New builds a track over n original slides. n == 0 disables the slider.
func New(n int, duration, delay time.Duration, gap float64) *Track {
	return &Track{
		n:        n,
		current:  n,
		duration: duration,
		delay:    delay,
		gap:      gap,
		perView:  1,
	}
}

// Len returns the original slide count.
func (t *Track) Len() int { return t.n }

// Current returns the cursor into the padded 3N sequence.
func (t *Track) Current() int { return t.current }

// CardWidth returns the current responsive card width.
func (t *Track) CardWidth() float64 { return t.cardW }

// Gap returns the spacing between cards.
func (t *Track) Gap() float64 { return t.gap }

// PerView returns the current cards-per-view.
func (t *Track) PerView() float64 { return t.perView }

// RTL reports the layout direction.
func (t *Track) RTL() bool { return t.rtl }

// SetDirection flips the layout between left-to-right and right-to-left and
// re-applies the current position without animation.
func (t *Track) SetDirection(rtl bool, now time.Time) {
	if t.rtl == rtl {
		return
	}
	t.rtl = rtl
	t.Update(false, now)
}

// SetPerView recomputes the responsive layout for a viewport width using the
// breakpoint table, then re-applies the current position without animation.
// Called on every resize.
func (t *Track) SetPerView(viewportW float64, breakpoints []Breakpoint, now time.Time) {
	if t.n == 0 {
		return
	}
	per := 1
	for _, bp := range breakpoints {
		if int(viewportW) < bp.MaxWidth {
			per = bp.PerView
			break
		}
	}
	t.perView = float64(per)
	t.cardW = (viewportW - t.gap*(t.perView-1)) / t.perView
	t.Update(false, now)
}

// step is the pixel distance between adjacent cursor values.
func (t *Track) step() float64 { return t.cardW + t.gap }

// Period returns the pixel length of one original pass, the modulus under
// which clone and original positions render identically.
func (t *Track) Period() float64 { return t.step() * float64(t.n) }

// translateFor converts a cursor into the track translate. The track moves
// opposite to the cursor under left-to-right layout; the sign flips under
// right-to-left.
func (t *Track) translateFor(cursor int) float64 {
	shift := t.step() * float64(cursor)
	if t.rtl {
		return shift
	}
	return -shift
}

// Update moves the rendered track to the cursor's position, with or without
// the timed transition.
func (t *Track) Update(animate bool, now time.Time) {
	if t.n == 0 {
		return
	}
	target := t.translateFor(t.current)
	if !animate || t.duration <= 0 {
		t.animating = false
		t.offset = target
		return
	}
	t.animFrom = t.Offset(now)
	t.animTo = target
	t.animStart = now
	t.animating = true
}

// Offset returns the live translate at now: the tween position while
// animating, the settled or drag offset otherwise.
func (t *Track) Offset(now time.Time) float64 {
	if !t.animating {
		return t.offset
	}
	elapsed := now.Sub(t.animStart)
	if elapsed >= t.duration {
		return t.animTo
	}
	p := float64(elapsed) / float64(t.duration)
	p = p * p * (3 - 2*p) // smoothstep ease
	return t.animFrom + (t.animTo-t.animFrom)*p
}

// Next advances one slide, resets autoplay to a full delay, and schedules the
// loop check for when the transition settles.
func (t *Track) Next(now time.Time) {
	if t.n == 0 {
		return
	}
	t.current++
	t.Update(true, now)
	t.pendingCheck = true
	t.resetAutoplay(now)
}

// Prev steps one slide back; otherwise identical to Next.
func (t *Track) Prev(now time.Time) {
	if t.n == 0 {
		return
	}
	t.current--
	t.Update(true, now)
	t.pendingCheck = true
	t.resetAutoplay(now)
}

// GoToSlide jumps straight to original slide i (i in [0, N)), animated. The
// target is inside the safe zone, so the scheduled check cannot re-home.
func (t *Track) GoToSlide(i int, now time.Time) {
	if t.n == 0 || i < 0 || i >= t.n {
		return
	}
	t.current = i + t.n
	t.Update(true, now)
	t.pendingCheck = true
	t.resetAutoplay(now)
}

// Step drives the tween. When a transition finishes it runs the loop check:
// a cursor that drifted into a clone region is re-homed into the original
// region at the pixel-identical position, without animation. Settle is the
// tween's own completion, never a timer guess.
func (t *Track) Step(now time.Time) {
	if t.n == 0 {
		return
	}
	if t.animating {
		elapsed := now.Sub(t.animStart)
		if elapsed < t.duration {
			return
		}
		t.animating = false
		t.offset = t.animTo
	}
	if t.pendingCheck {
		t.pendingCheck = false
		t.checkLoop(now)
	}
}

func (t *Track) checkLoop(now time.Time) {
	if t.current >= 2*t.n {
		t.current = t.n
		t.Update(false, now)
	} else if t.current < t.n {
		t.current = 2*t.n - 1
		t.Update(false, now)
	}
}

// Settled reports whether no transition or pending check is outstanding.
func (t *Track) Settled() bool { return !t.animating && !t.pendingCheck }

// ActiveDot maps the cursor to its pagination dot: one dot per original slide.
func (t *Track) ActiveDot() int {
	if t.n == 0 {
		return 0
	}
	return ((t.current-t.n)%t.n + t.n) % t.n
}

// setLive overrides the rendered offset directly, cancelling any tween. Used
// by the drag controller while a gesture is in flight.
func (t *Track) setLive(offset float64) {
	t.animating = false
	t.offset = offset
}

// StartAutoplay arms the advance timer.
func (t *Track) StartAutoplay(now time.Time) {
	if t.n == 0 || t.delay <= 0 {
		return
	}
	t.deadline = now.Add(t.delay)
}

// PauseAutoplay stops the advance timer until the next start or reset.
func (t *Track) PauseAutoplay() {
	t.deadline = time.Time{}
}

func (t *Track) resetAutoplay(now time.Time) {
	if !t.deadline.IsZero() {
		t.deadline = now.Add(t.delay)
	}
}

// Tick advances one slide when the autoplay deadline passes. Hidden windows
// keep the timer running but suppress the advance.
func (t *Track) Tick(now time.Time, visible bool) bool {
	if t.n == 0 || t.deadline.IsZero() || now.Before(t.deadline) {
		return false
	}
	t.deadline = now.Add(t.delay)
	if !visible {
		return false
	}
	t.current++
	t.Update(true, now)
	t.pendingCheck = true
	return true
}
