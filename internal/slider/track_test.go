package slider

import (
	"math"
	"testing"
	"time"
)

const (
	testDuration = 450 * time.Millisecond
	testDelay    = 5 * time.Second
	testGap      = 24.0
)

func newTestTrack(n int) *Track {
	t := New(n, testDuration, testDelay, testGap)
	t.SetPerView(1200, []Breakpoint{{1 << 31, 3}}, time.Unix(0, 0))
	return t
}

// settle advances past the transition so the loop check runs.
func settle(tr *Track, now time.Time) time.Time {
	now = now.Add(testDuration)
	tr.Step(now)
	return now
}

func TestInitialCursor(t *testing.T) {
	tr := newTestTrack(4)
	if tr.Current() != 4 {
		t.Errorf("initial cursor = %d, want N = 4", tr.Current())
	}
	if tr.ActiveDot() != 0 {
		t.Errorf("initial dot = %d, want 0", tr.ActiveDot())
	}
}

// A full pass of Next calls must keep the settled cursor inside [N, 2N) and
// the re-homed offset must render identically to the pre-rehome offset modulo
// the track period.
func TestWraparoundInvisible(t *testing.T) {
	const n = 4
	tr := newTestTrack(n)
	now := time.Unix(0, 0)
	period := tr.Period()

	virtual := n // cursor had no re-homing ever happened
	for i := 0; i < 2*n; i++ {
		tr.Next(now)
		virtual++
		now = settle(tr, now)

		if tr.Current() < n || tr.Current() >= 2*n {
			t.Fatalf("step %d: settled cursor %d outside [%d, %d)", i, tr.Current(), n, 2*n)
		}

		got := tr.Offset(now)
		want := tr.translateFor(virtual)
		diff := math.Mod(got-want, period)
		if diff < 0 {
			diff += period
		}
		if diff > 1e-9 && math.Abs(diff-period) > 1e-9 {
			t.Fatalf("step %d: offset %v not congruent to %v mod %v", i, got, want, period)
		}
	}
}

func TestWraparoundBackward(t *testing.T) {
	const n = 5
	tr := newTestTrack(n)
	now := time.Unix(0, 0)

	tr.Prev(now)
	if tr.Current() != n-1 {
		t.Fatalf("transient cursor = %d, want %d", tr.Current(), n-1)
	}
	now = settle(tr, now)
	if tr.Current() != 2*n-1 {
		t.Errorf("lower re-home landed at %d, want %d", tr.Current(), 2*n-1)
	}
	if tr.ActiveDot() != n-1 {
		t.Errorf("dot after backward wrap = %d, want %d", tr.ActiveDot(), n-1)
	}
}

func TestRehomeWaitsForTransition(t *testing.T) {
	const n = 3
	tr := newTestTrack(n)
	now := time.Unix(0, 0)

	// walk to the upper boundary
	for i := 0; i < n-1; i++ {
		tr.Next(now)
		now = settle(tr, now)
	}
	tr.Next(now) // cursor now at 2N
	if tr.Current() != 2*n {
		t.Fatalf("cursor = %d, want boundary %d", tr.Current(), 2*n)
	}

	// mid-transition: no re-home yet
	mid := now.Add(testDuration / 2)
	tr.Step(mid)
	if tr.Current() != 2*n {
		t.Error("re-homed before the transition finished")
	}
	if tr.Settled() {
		t.Error("settled mid-transition")
	}

	now = settle(tr, now)
	if tr.Current() != n {
		t.Errorf("cursor after settle = %d, want %d", tr.Current(), n)
	}
	if !tr.Settled() {
		t.Error("not settled after the check ran")
	}
}

func TestPaginationMapping(t *testing.T) {
	const n = 6
	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"first real slide", n, 0},
		{"middle", n + 3, 3},
		{"last real slide", 2*n - 1, n - 1},
		{"transient below lower bound", n - 1, n - 1},
		{"transient at upper bound", 2 * n, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTrack(n)
			tr.current = tt.current
			if got := tr.ActiveDot(); got != tt.want {
				t.Errorf("ActiveDot() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGoToSlide(t *testing.T) {
	const n = 5
	tr := newTestTrack(n)
	now := time.Unix(0, 0)

	tr.GoToSlide(3, now)
	if tr.Current() != n+3 {
		t.Errorf("cursor = %d, want %d", tr.Current(), n+3)
	}
	now = settle(tr, now)
	if tr.Current() != n+3 {
		t.Errorf("safe-zone jump re-homed: cursor = %d", tr.Current())
	}

	// out of range is a no-op
	tr.GoToSlide(-1, now)
	tr.GoToSlide(n, now)
	if tr.Current() != n+3 {
		t.Errorf("out-of-range jump moved the cursor to %d", tr.Current())
	}
}

func TestSetPerViewBreakpoints(t *testing.T) {
	breakpoints := []Breakpoint{
		{640, 1},
		{900, 2},
		{1200, 3},
		{1600, 4},
		{1 << 31, 5},
	}
	tests := []struct {
		width float64
		want  float64
	}{
		{480, 1},
		{800, 2},
		{1100, 3},
		{1280, 4},
		{1920, 5},
	}
	for _, tt := range tests {
		tr := New(4, testDuration, testDelay, testGap)
		tr.SetPerView(tt.width, breakpoints, time.Unix(0, 0))
		if tr.PerView() != tt.want {
			t.Errorf("width %v: perView = %v, want %v", tt.width, tr.PerView(), tt.want)
		}
		wantCard := (tt.width - testGap*(tt.want-1)) / tt.want
		if math.Abs(tr.CardWidth()-wantCard) > 1e-9 {
			t.Errorf("width %v: cardW = %v, want %v", tt.width, tr.CardWidth(), wantCard)
		}
	}
}

func TestDirectionFlipsOffsetSign(t *testing.T) {
	tr := newTestTrack(4)
	now := time.Unix(0, 0)
	ltr := tr.Offset(now)
	tr.SetDirection(true, now)
	rtl := tr.Offset(now)
	if ltr >= 0 || rtl <= 0 {
		t.Errorf("offset signs: ltr %v, rtl %v; want negative then positive", ltr, rtl)
	}
	if math.Abs(ltr+rtl) > 1e-9 {
		t.Errorf("magnitudes differ across direction flip: %v vs %v", ltr, rtl)
	}
}

func TestAutoplayTick(t *testing.T) {
	tr := newTestTrack(4)
	now := time.Unix(0, 0)
	tr.StartAutoplay(now)

	if tr.Tick(now.Add(testDelay-time.Millisecond), true) {
		t.Error("ticked before the deadline")
	}
	if !tr.Tick(now.Add(testDelay), true) {
		t.Error("did not tick at the deadline")
	}
	if tr.Current() != 5 {
		t.Errorf("cursor after tick = %d, want 5", tr.Current())
	}

	tr.PauseAutoplay()
	if tr.Tick(now.Add(10*testDelay), true) {
		t.Error("ticked while paused")
	}
}

func TestTickSuppressedHidden(t *testing.T) {
	tr := newTestTrack(4)
	now := time.Unix(0, 0)
	tr.StartAutoplay(now)
	if tr.Tick(now.Add(testDelay), false) {
		t.Error("advanced while hidden")
	}
	if tr.Current() != 4 {
		t.Error("cursor moved while hidden")
	}
}

func TestDisabledTrack(t *testing.T) {
	tr := New(0, testDuration, testDelay, testGap)
	now := time.Unix(0, 0)
	tr.Next(now)
	tr.Prev(now)
	tr.GoToSlide(0, now)
	tr.StartAutoplay(now)
	if tr.Tick(now.Add(testDelay), true) {
		t.Error("disabled track ticked")
	}
	if tr.Current() != 0 {
		t.Errorf("disabled track moved to %d", tr.Current())
	}
}
