// Package modal implements the shared media modal: any trigger carrying a
// source path opens it, playback starts immediately, and closing restores
// whatever had focus before.
package modal

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// PlayFunc starts playback of a media source and returns a stop function.
type PlayFunc func(source string) (stop func(), err error)

// Modal is the single shared overlay. One instance serves every trigger on
// the page.
type Modal struct {
	open      bool
	source    string
	title     string
	prevFocus int
	stop      func()

	play PlayFunc // beepPlay in production, stubbed in tests
}

// New returns a closed modal. A nil play falls back to the speaker chain.
func New(play PlayFunc) *Modal {
	if play == nil {
		play = beepPlay
	}
	return &Modal{play: play, prevFocus: -1}
}

// Open sets the media source, remembers the focused widget, and starts
// playback. A playback rejection is logged and ignored: the modal still
// opens, the media simply does not start.
func (m *Modal) Open(source, title string, prevFocus int) {
	if m.open {
		m.stopPlayback()
	}
	m.open = true
	m.source = source
	m.title = title
	m.prevFocus = prevFocus

	stop, err := m.play(source)
	if err != nil {
		log.Printf("modal: playback for %q did not start: %v", source, err)
		return
	}
	m.stop = stop
}

// Close stops playback and returns the widget index to restore focus to.
// Closing an already-closed modal is a no-op returning -1.
func (m *Modal) Close() int {
	if !m.open {
		return -1
	}
	m.stopPlayback()
	m.open = false
	m.source = ""
	focus := m.prevFocus
	m.prevFocus = -1
	return focus
}

func (m *Modal) stopPlayback() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool { return m.open }

// Source returns the current media source.
func (m *Modal) Source() string { return m.source }

// Title returns the current media title.
func (m *Modal) Title() string { return m.title }

var speakerOnce sync.Once

// beepPlay decodes the source by extension and plays it through the speaker.
func beepPlay(source string) (func(), error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := filepath.Ext(source); ext {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported media type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	var initErr error
	speakerOnce.Do(func() {
		initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20))
	})
	if initErr != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, initErr
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	done := make(chan struct{})
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		_ = streamer.Close()
		_ = f.Close()
		close(done)
	})))

	return func() {
		speaker.Lock()
		select {
		case <-done:
		default:
			ctrl.Streamer = nil
		}
		speaker.Unlock()
	}, nil
}
