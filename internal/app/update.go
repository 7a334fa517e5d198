package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/course-landing/internal/carousel"
	"github.com/iburimskiy/course-landing/internal/locale"
)

// clickSlop separates a tap on a slider card from a drag.
const clickSlop = 6.0

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

// Fixed header widgets (not scrolled).
func (a *App) langButtonRect() rect { return rect{a.winW - 170, 12, 150, 34} }

func (a *App) langItemRect(i int) rect {
	b := a.langButtonRect()
	return rect{b.x, b.y + b.h + float64(i)*36, b.w, 34}
}

// Scrolled section widgets; all in screen coordinates.
func (a *App) ringRect() rect {
	top := a.sectionTop("testimonials") - a.scrollY
	return rect{40, top + 70, a.winW - 80, ringH - 140}
}

func (a *App) ringPrevRect() rect {
	r := a.ringRect()
	return rect{r.x, r.y + r.h/2 - 24, 48, 48}
}

func (a *App) ringNextRect() rect {
	r := a.ringRect()
	return rect{r.x + r.w - 48, r.y + r.h/2 - 24, 48, 48}
}

func (a *App) sliderRect() rect {
	top := a.sectionTop("videos") - a.scrollY
	return rect{60, top + 70, a.winW - 120, 260}
}

func (a *App) dotRect(i int) rect {
	s := a.sliderRect()
	n := a.track.Len()
	total := float64(n)*20 - 8
	x := s.x + s.w/2 - total/2 + float64(i)*20
	return rect{x, s.y + s.h + 20, 12, 12}
}

// cardAt returns the original-slide index of the visible card under the
// pointer, or -1.
func (a *App) cardAt(px, py float64) int {
	s := a.sliderRect()
	if !s.contains(px, py) {
		return -1
	}
	now := time.Now()
	for i := 0; i < 3*a.track.Len(); i++ {
		x := a.cardX(i, now)
		if px >= x && px <= x+a.track.CardWidth() {
			return i % a.track.Len()
		}
	}
	return -1
}

// cardX places padded-track entry i on screen for the current offset.
func (a *App) cardX(i int, now time.Time) float64 {
	s := a.sliderRect()
	step := a.track.CardWidth() + a.track.Gap()
	if a.track.RTL() {
		return s.x + s.w - a.track.CardWidth() - float64(i)*step + a.track.Offset(now)
	}
	return s.x + float64(i)*step + a.track.Offset(now)
}

func (a *App) pricingToggleRect() rect {
	top := a.sectionTop("pricing") - a.scrollY
	return rect{a.winW/2 - 60, top + 70, 120, 32}
}

func (a *App) planRect(i int) rect {
	top := a.sectionTop("pricing") - a.scrollY
	return rect{a.winW/2 - 270 + float64(i)*280, top + 130, 260, 220}
}

func (a *App) faqRowRect(i int) rect {
	top := a.sectionTop("faq") - a.scrollY
	return rect{120, top + 80 + float64(i)*80, a.winW - 240, 64}
}

func (a *App) formFieldRect(i int) rect {
	top := a.sectionTop("contact") - a.scrollY
	return rect{a.winW/2 - 260, top + 80 + float64(i)*70, 520, 48}
}

func (a *App) sendButtonRect() rect {
	top := a.sectionTop("contact") - a.scrollY
	return rect{a.winW/2 - 70, top + 300, 140, 44}
}

func (a *App) modalPanelRect() rect {
	return rect{a.winW/2 - 300, a.winH/2 - 180, 600, 360}
}

func (a *App) modalCloseRect() rect {
	p := a.modalPanelRect()
	return rect{p.x + p.w - 40, p.y + 8, 32, 32}
}

// Update implements ebiten.Game; it is the page's single event-routing pass.
func (a *App) Update() error {
	now := time.Now()
	visible := ebiten.IsFocused()

	a.drainAvatars(now)
	a.rebindTick(now)

	if !a.resizeAt.IsZero() && !now.Before(a.resizeAt) {
		a.resizeAt = time.Time{}
		a.relayout(now)
	}

	select {
	case <-a.alertDone:
		a.alertBusy = false
	default:
	}

	mxInt, myInt := ebiten.CursorPosition()
	mx, my := float64(mxInt), float64(myInt)

	// wheel scroll, clamped to the page
	_, wy := ebiten.Wheel()
	if wy != 0 {
		a.scrollY -= wy * scrollStep
		a.scrollY = max(0, min(a.scrollY, a.pageH-a.winH))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch {
		case a.player.IsOpen():
			a.focus = a.player.Close()
		case a.langMenu:
			a.langMenu = false
		}
	}

	if a.player.IsOpen() {
		a.updateModal(mx, my)
	} else {
		a.updatePage(mx, my, now)
	}

	// component clocks run regardless of what the pointer is doing
	ringHover := !a.player.IsOpen() && a.ringRect().contains(mx, my)
	a.ring.SetHover(ringHover, now)
	a.ring.Tick(now, visible)
	a.track.Tick(now, visible)
	a.track.Step(now)

	a.stepRays(mx, my, now)
	a.typeIntoForm()
	return nil
}

func (a *App) updateModal(mx, my float64) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	panel := a.modalPanelRect()
	if a.modalCloseRect().contains(mx, my) || !panel.contains(mx, my) {
		a.focus = a.player.Close()
	}
}

func (a *App) updatePage(mx, my float64, now time.Time) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.pressX, a.pressY = mx, my
		a.handlePress(mx, my, now)
	}
	if a.drag.Dragging() {
		a.drag.Move(mx)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.handleRelease(mx, my, now)
	}
}

func (a *App) handlePress(mx, my float64, now time.Time) {
	// header
	if a.langButtonRect().contains(mx, my) {
		a.langMenu = !a.langMenu
		return
	}
	if a.langMenu {
		for i, l := range locale.Supported {
			if a.langItemRect(i).contains(mx, my) {
				a.langMenu = false
				a.switchLanguage(l, now)
				return
			}
		}
		a.langMenu = false
	}

	// testimonial ring navigation
	if a.ringPrevRect().contains(mx, my) {
		a.ring.Rotate(carousel.Prev, now)
		return
	}
	if a.ringNextRect().contains(mx, my) {
		a.ring.Rotate(carousel.Next, now)
		return
	}

	// slider surface: every press may become a drag
	if a.sliderRect().contains(mx, my) {
		a.drag.Begin(mx, now)
		return
	}
	for i := 0; i < a.track.Len(); i++ {
		if a.dotRect(i).contains(mx, my) {
			a.track.GoToSlide(i, now)
			return
		}
	}

	// pricing toggle
	if a.pricingToggleRect().contains(mx, my) {
		a.yearly = !a.yearly
		return
	}

	// faq accordion
	for i := range a.content.FAQ {
		if a.faqRowRect(i).contains(mx, my) {
			if a.faqOpen == i {
				a.faqOpen = -1
			} else {
				a.faqOpen = i
			}
			return
		}
	}

	// contact form
	for i := 0; i < 3; i++ {
		if a.formFieldRect(i).contains(mx, my) {
			a.form.active = i
			return
		}
	}
	if a.sendButtonRect().contains(mx, my) {
		a.form.active = -1
		a.submitForm()
		return
	}
	a.form.active = -1
}

func (a *App) handleRelease(mx, my float64, now time.Time) {
	if !a.drag.Dragging() {
		return
	}
	dx := mx - a.pressX
	dy := my - a.pressY
	if dx*dx+dy*dy <= clickSlop*clickSlop {
		// a tap, not a drag: snap back and open the card's media
		a.drag.End(a.pressX, now)
		if i := a.cardAt(mx, my); i >= 0 && i < len(a.content.Videos) {
			v := a.content.Videos[i]
			prev := a.focus
			if prev < 0 {
				prev = i
			}
			a.focus = -1
			a.player.Open(v.Source, v.Title, prev)
		}
		return
	}
	a.drag.End(mx, now)
}

func (a *App) stepRays(mx, my float64, now time.Time) {
	hero := a.sections[0]
	a.heroRays.SetVisible(a.visibleRatio(hero), now)
	heroTop := hero.y - a.scrollY
	nx := min(1, max(0, mx/a.winW))
	ny := min(1, max(0, (my-heroTop)/hero.h))
	a.heroRays.SetMouse(nx, ny)
	a.heroRays.Step(now)
}

// typeIntoForm routes typed runes and backspace into the active field.
func (a *App) typeIntoForm() {
	if a.form.active < 0 {
		return
	}
	field := []*string{&a.form.name, &a.form.email, &a.form.message}[a.form.active]
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= ' ' {
			*field += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(*field) > 0 {
		runes := []rune(*field)
		*field = string(runes[:len(runes)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.form.active = (a.form.active + 1) % 3
	}
}
