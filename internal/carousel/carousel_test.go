package carousel

import (
	"testing"
	"time"
)

func timeZero() time.Time { return time.Unix(0, 0) }

func sizesOf(n int) []Size {
	s := make([]Size, n)
	for i := range s {
		s[i] = Size{W: 100, H: 80}
	}
	return s
}

func TestPadOrderFloor(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		floor    int
		expected int
	}{
		{"three cards need four passes", 3, 10, 12},
		{"five cards need two passes", 5, 10, 10},
		{"ten cards need one pass", 10, 10, 10},
		{"twelve cards already above floor", 12, 10, 12},
		{"seven cards need two passes", 7, 10, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(sizesOf(tt.n), tt.floor, 0, 0.38, 140)
			if c.Len() != tt.expected {
				t.Errorf("order length = %d, want %d", c.Len(), tt.expected)
			}
		})
	}
}

func TestPadOrderMarksClones(t *testing.T) {
	c := New(sizesOf(3), 10, 0, 0.38, 140)
	order := c.Order()
	for i, it := range order {
		wantClone := i >= 3
		if it.Clone != wantClone {
			t.Errorf("item %d: clone = %v, want %v", i, it.Clone, wantClone)
		}
		if it.Index != i%3 {
			t.Errorf("item %d: index = %d, want %d", i, it.Index, i%3)
		}
	}
}

func TestRotateIsPureRotation(t *testing.T) {
	c := New(sizesOf(5), 5, 0, 0.38, 140)
	base := append([]Item(nil), c.Order()...)

	c.Rotate(Next, timeZero())
	got := c.Order()
	if got[0].Index != base[4].Index {
		t.Errorf("next: head = %d, want former tail %d", got[0].Index, base[4].Index)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Index != base[i-1].Index {
			t.Errorf("next: slot %d = %d, want %d", i, got[i].Index, base[i-1].Index)
		}
	}

	c.Rotate(Prev, timeZero())
	for i, it := range c.Order() {
		if it.Index != base[i].Index {
			t.Errorf("prev did not undo next at slot %d: %d != %d", i, it.Index, base[i].Index)
		}
	}

	if c.Len() != len(base) {
		t.Errorf("order length changed across rotations")
	}
}

func TestAutoAdvanceTiming(t *testing.T) {
	delay := 3500 * time.Millisecond
	c := New(sizesOf(5), 10, delay, 0.38, 140)
	now := timeZero()
	c.Start(now)

	if c.Tick(now.Add(delay-time.Millisecond), true) {
		t.Error("ticked before the deadline")
	}
	if !c.Tick(now.Add(delay), true) {
		t.Error("did not tick at the deadline")
	}
	// deadline re-armed: a second immediate tick must not fire
	if c.Tick(now.Add(delay+time.Millisecond), true) {
		t.Error("double tick after re-arm")
	}
}

func TestTickSuppressedWhileHidden(t *testing.T) {
	delay := time.Second
	c := New(sizesOf(4), 4, delay, 0.38, 140)
	now := timeZero()
	c.Start(now)

	head := c.Order()[0].Index
	if c.Tick(now.Add(delay), false) {
		t.Error("rotated while hidden")
	}
	if c.Order()[0].Index != head {
		t.Error("order changed while hidden")
	}
	// the interval kept firing: next visible tick is one delay later
	if !c.Tick(now.Add(2*delay), true) {
		t.Error("did not resume after becoming visible")
	}
}

func TestHoverStopsAndRestartsTimer(t *testing.T) {
	delay := time.Second
	c := New(sizesOf(4), 4, delay, 0.38, 140)
	now := timeZero()
	c.Start(now)

	c.SetHover(true, now)
	if c.Tick(now.Add(10*delay), true) {
		t.Error("ticked while hovered")
	}

	leave := now.Add(10 * delay)
	c.SetHover(false, leave)
	if c.Tick(leave.Add(delay-time.Millisecond), true) {
		t.Error("hover leave did not restart with a full delay")
	}
	if !c.Tick(leave.Add(delay), true) {
		t.Error("timer not restarted after hover leave")
	}
}

func TestManualRotateResetsTimer(t *testing.T) {
	delay := time.Second
	c := New(sizesOf(4), 4, delay, 0.38, 140)
	now := timeZero()
	c.Start(now)

	// rotate manually just before the deadline
	rotateAt := now.Add(delay - 10*time.Millisecond)
	c.Rotate(Next, rotateAt)
	if c.Tick(rotateAt.Add(delay-time.Millisecond), true) {
		t.Error("auto-advance fired early after manual rotate")
	}
	if !c.Tick(rotateAt.Add(delay), true) {
		t.Error("auto-advance did not fire a full delay after manual rotate")
	}
}

func TestImageGateDefersStart(t *testing.T) {
	c := New(sizesOf(3), 10, time.Second, 0.38, 140)
	c.Resize(800, 600)
	c.SetImageCount(3)
	now := timeZero()
	c.Start(now)

	if c.Ready() {
		t.Fatal("ready before images settled")
	}
	if c.Positions() != nil {
		t.Error("positioned before images settled")
	}
	if c.Tick(now.Add(time.Hour), true) {
		t.Error("auto-advance before images settled")
	}

	c.ImageDone(now)
	c.ImageDone(now)
	if c.Ready() {
		t.Fatal("ready with one image outstanding")
	}
	c.ImageDone(now)
	if !c.Ready() {
		t.Fatal("not ready after every image settled")
	}
	if c.Positions() == nil {
		t.Error("no positions after gate passed")
	}
	if !c.Tick(now.Add(time.Second), true) {
		t.Error("auto-advance did not start after gate passed")
	}
}

func TestNoImagesStartsImmediately(t *testing.T) {
	c := New(sizesOf(3), 10, time.Second, 0.38, 140)
	if !c.Ready() {
		t.Error("carousel with no images must be ready at once")
	}
}

func TestEmptyCarouselIsDisabled(t *testing.T) {
	c := New(nil, 10, time.Second, 0.38, 140)
	now := timeZero()
	c.Start(now)
	c.Rotate(Next, now)
	c.SetHover(true, now)
	if c.Tick(now.Add(time.Hour), true) {
		t.Error("disabled carousel ticked")
	}
	if c.Positions() != nil {
		t.Error("disabled carousel produced positions")
	}
}
