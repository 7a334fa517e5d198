// Package app assembles the landing page: a vertically scrolled column of
// sections whose interactive behavior is owned by the component packages.
package app

import (
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/course-landing/internal/carousel"
	"github.com/iburimskiy/course-landing/internal/config"
	"github.com/iburimskiy/course-landing/internal/locale"
	"github.com/iburimskiy/course-landing/internal/modal"
	"github.com/iburimskiy/course-landing/internal/rays"
	"github.com/iburimskiy/course-landing/internal/slider"
	"github.com/iburimskiy/course-landing/internal/store"
)

// Section heights; the page is their vertical concatenation.
const (
	heroH      = 620.0
	ringH      = 680.0
	sliderH    = 420.0
	pricingH   = 400.0
	faqH       = 420.0
	contactH   = 460.0
	cardW      = 240.0
	cardH      = 150.0
	scrollStep = 48.0
)

type section struct {
	name string
	y, h float64
}

type avatarResult struct {
	path string
	img  *ebiten.Image
}

type contactForm struct {
	name, email, message string
	active               int // -1 none, 0 name, 1 email, 2 message
}

// showAlert surfaces a blocking validation alert. Overridden in tests.
var showAlert = func(msg string) {
	if err := zenity.Error(msg, zenity.Title("Contact form")); err != nil {
		log.Printf("app: alert: %v", err)
	}
}

// App is the ebiten.Game for the whole page.
type App struct {
	settings *store.Store
	lang     locale.Lang
	content  locale.Content
	lastErr  error

	sections []section
	pageH    float64
	scrollY  float64

	winW, winH float64
	resizeAt   time.Time // debounced relayout deadline; zero when idle
	bps        []slider.Breakpoint

	ring     *carousel.Carousel
	track    *slider.Track
	drag     *slider.DragController
	heroRays *rays.Renderer
	player   *modal.Modal

	avatars  map[string]*ebiten.Image
	avatarCh chan avatarResult

	// simple widget state, projected onto presentation at draw time
	yearly     bool
	faqOpen    int
	focus      int
	form       contactForm
	langMenu   bool
	alertBusy  bool
	alertDone  chan struct{}

	// deferred re-bind after a language switch, bounded retry
	pendingLang *locale.Lang
	rebindAt    time.Time
	rebindTries int

	// drag vs click discrimination on the slider
	pressX, pressY float64
}

// New restores the persisted language and builds the page.
func New(settings *store.Store) *App {
	a := &App{
		settings:  settings,
		faqOpen:   -1,
		focus:     -1,
		avatars:   map[string]*ebiten.Image{},
		alertDone: make(chan struct{}, 1),
	}
	a.form.active = -1
	a.winW, a.winH = config.WindowWidth, config.WindowHeight

	saved, err := settings.Load()
	if err != nil {
		log.Printf("app: settings: %v", err)
		a.lastErr = err
	}
	a.lang = locale.Match(saved.SelectedLanguage)

	a.loadContent()
	a.layout()
	a.bind(time.Now())
	return a
}

// loadContent pulls the current language's document, falling back to the
// built-in defaults when it cannot be read.
func (a *App) loadContent() {
	c, err := locale.Load(a.lang.Code)
	if err != nil {
		log.Printf("app: %v; using defaults", err)
		a.content = locale.Default()
		return
	}
	a.content = c
}

func (a *App) layout() {
	a.sections = []section{
		{name: "hero", h: heroH},
		{name: "testimonials", h: ringH},
		{name: "videos", h: sliderH},
		{name: "pricing", h: pricingH},
		{name: "faq", h: faqH},
		{name: "contact", h: contactH},
	}
	y := 0.0
	for i := range a.sections {
		a.sections[i].y = y
		y += a.sections[i].h
	}
	a.pageH = y
}

// bind builds the interactive components for the current content. Called at
// boot and again after every language switch.
func (a *App) bind(now time.Time) {
	sizes := make([]carousel.Size, len(a.content.Testimonials))
	for i := range sizes {
		sizes[i] = carousel.Size{W: cardW, H: cardH}
	}
	a.ring = carousel.New(sizes, config.MinVisibleCards, config.AutoAdvanceDelay,
		config.RingRadiusFactor, config.RingMinRadius)
	a.ring.Resize(a.winW-80, ringH-140)

	imgPaths := make([]string, 0, len(a.content.Testimonials))
	for _, tm := range a.content.Testimonials {
		if tm.Avatar != "" {
			imgPaths = append(imgPaths, tm.Avatar)
		}
	}
	a.ring.SetImageCount(len(imgPaths))
	a.loadAvatars(imgPaths)
	a.ring.Start(now)

	a.track = slider.New(len(a.content.Videos), config.SlideTransition,
		config.AutoAdvanceDelay, config.SliderGap)
	a.bps = make([]slider.Breakpoint, len(config.SliderBreakpoints))
	for i, bp := range config.SliderBreakpoints {
		a.bps[i] = slider.Breakpoint{MaxWidth: bp.MaxWidth, PerView: bp.PerView}
	}
	a.track.SetPerView(a.winW-120, a.bps, now)
	a.track.SetDirection(a.lang.RTL, now)
	a.track.StartAutoplay(now)
	a.drag = slider.NewDrag(a.track, config.DragCommitFraction)

	if a.heroRays == nil {
		a.heroRays = rays.New(rays.Config{
			Origin:         "top-center",
			Color:          color.RGBA{R: 120, G: 160, B: 255, A: 255},
			Speed:          1.2,
			Spread:         0.9,
			Length:         1.6,
			Pulsating:      false,
			FadeDistance:   1.1,
			Saturation:     1.0,
			FollowMouse:    true,
			MouseInfluence: 0.15,
			Noise:          0.08,
			Distortion:     0.04,
			VisibleRatio:   config.RayVisibleRatio,
			Smoothing:      config.MouseSmoothing,
		}, a.winW, heroH)
	}
	if a.player == nil {
		a.player = modal.New(nil)
	}
}

// loadAvatars decodes card images off the loop; each path reports done
// exactly once, loaded or errored.
func (a *App) loadAvatars(paths []string) {
	a.avatarCh = make(chan avatarResult, len(paths))
	for _, p := range paths {
		go func(path string) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				a.avatarCh <- avatarResult{path: path}
				return
			}
			a.avatarCh <- avatarResult{path: path, img: img}
		}(p)
	}
}

func (a *App) drainAvatars(now time.Time) {
	for {
		select {
		case res := <-a.avatarCh:
			if res.img != nil {
				a.avatars[res.path] = res.img
			}
			a.ring.ImageDone(now)
		default:
			return
		}
	}
}

// switchLanguage persists the choice and schedules the deferred re-bind.
func (a *App) switchLanguage(l locale.Lang, now time.Time) {
	if l.Code == a.lang.Code {
		return
	}
	a.lang = l
	if err := a.settings.Save(store.Settings{
		SelectedLanguage:     l.Code,
		SelectedLanguageName: l.Name,
	}); err != nil {
		log.Printf("app: saving language: %v", err)
		a.lastErr = err
	}
	a.pendingLang = &l
	a.rebindAt = now.Add(config.RebindSettle)
	a.rebindTries = 0
}

// rebindTick replaces section content in place once the settle delay passes,
// retrying on a bounded schedule and falling back to a full rebuild with the
// built-in defaults when the retries run out.
func (a *App) rebindTick(now time.Time) {
	if a.pendingLang == nil || now.Before(a.rebindAt) {
		return
	}
	c, err := locale.Load(a.pendingLang.Code)
	if err != nil {
		a.rebindTries++
		if a.rebindTries >= config.RebindRetryMax {
			log.Printf("app: %v; falling back to full rebuild", err)
			a.lastErr = err
			a.content = locale.Default()
			a.pendingLang = nil
			a.bind(now)
			return
		}
		a.rebindAt = now.Add(config.RebindRetryEvery)
		return
	}
	a.content = c
	a.pendingLang = nil
	a.lastErr = nil
	a.bind(now)
}

func (a *App) sectionTop(name string) float64 {
	for _, s := range a.sections {
		if s.name == name {
			return s.y
		}
	}
	return 0
}

// visibleRatio is the fraction of a section inside the scrolled viewport.
func (a *App) visibleRatio(s section) float64 {
	top := s.y - a.scrollY
	bottom := top + s.h
	visTop := max(top, 0)
	visBottom := min(bottom, a.winH)
	if visBottom <= visTop {
		return 0
	}
	return (visBottom - visTop) / s.h
}

func (a *App) validateForm() string {
	var problems []string
	if strings.TrimSpace(a.form.name) == "" {
		problems = append(problems, "name is required")
	}
	email := strings.TrimSpace(a.form.email)
	if email == "" {
		problems = append(problems, "email is required")
	} else if !strings.Contains(email, "@") {
		problems = append(problems, "email is not valid")
	}
	if strings.TrimSpace(a.form.message) == "" {
		problems = append(problems, "message is required")
	}
	return strings.Join(problems, "\n")
}

func (a *App) submitForm() {
	if msg := a.validateForm(); msg != "" {
		if a.alertBusy {
			return
		}
		a.alertBusy = true
		go func() {
			showAlert(msg)
			a.alertDone <- struct{}{}
		}()
		return
	}
	a.form = contactForm{active: -1}
	a.lastErr = nil
}

// Layout implements ebiten.Game. A changed window size arms the debounced
// relayout; re-arming overwrites the previous deadline, so only the last
// resize in a burst fires.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != a.winW || h != a.winH {
		a.winW, a.winH = w, h
		a.resizeAt = time.Now().Add(config.RingResizeBounce)
	}
	return outsideWidth, outsideHeight
}

// relayout re-derives every size-dependent placement after the resize
// debounce settles.
func (a *App) relayout(now time.Time) {
	a.ring.Resize(a.winW-80, ringH-140)
	a.track.SetPerView(a.winW-120, a.bps, now)
	a.heroRays.Resize(a.winW, heroH)
}
