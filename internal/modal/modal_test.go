package modal

import (
	"errors"
	"testing"
)

func TestOpenClosePlaybackAndFocus(t *testing.T) {
	stops := 0
	plays := 0
	m := New(func(source string) (func(), error) {
		plays++
		return func() { stops++ }, nil
	})

	if m.IsOpen() {
		t.Fatal("modal starts open")
	}

	m.Open("assets/media/karim.mp3", "From zero to shipped", 7)
	if !m.IsOpen() || m.Source() != "assets/media/karim.mp3" {
		t.Fatal("modal did not open with the trigger's source")
	}
	if plays != 1 {
		t.Fatalf("plays = %d, want 1", plays)
	}

	if focus := m.Close(); focus != 7 {
		t.Errorf("Close() = %d, want restored focus 7", focus)
	}
	if stops != 1 {
		t.Errorf("stops = %d, want 1", stops)
	}
	if m.IsOpen() || m.Source() != "" {
		t.Error("modal did not reset on close")
	}
}

func TestPlaybackRejectionIgnored(t *testing.T) {
	m := New(func(string) (func(), error) {
		return nil, errors.New("playback policy rejection")
	})
	m.Open("x.mp3", "t", 2)
	if !m.IsOpen() {
		t.Error("rejected playback must still open the modal")
	}
	if focus := m.Close(); focus != 2 {
		t.Errorf("focus restore broken after rejected playback: %d", focus)
	}
}

func TestCloseWhenClosed(t *testing.T) {
	m := New(func(string) (func(), error) { return func() {}, nil })
	if focus := m.Close(); focus != -1 {
		t.Errorf("closing a closed modal returned %d, want -1", focus)
	}
}

func TestReopenStopsPreviousPlayback(t *testing.T) {
	stops := 0
	m := New(func(string) (func(), error) { return func() { stops++ }, nil })
	m.Open("a.mp3", "a", 0)
	m.Open("b.mp3", "b", 1)
	if stops != 1 {
		t.Errorf("previous playback not stopped on reopen: stops = %d", stops)
	}
	if m.Source() != "b.mp3" {
		t.Errorf("source = %q, want b.mp3", m.Source())
	}
}

func TestUnsupportedExtension(t *testing.T) {
	if _, err := beepPlay("testdata/clip.ogg"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
