package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/course-landing/internal/locale"
)

var (
	pageBg      = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	panelBg     = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	panelBorder = color.RGBA{R: 60, G: 70, B: 95, A: 255}
	accent      = color.RGBA{R: 120, G: 160, B: 255, A: 255}
	textBright  = color.RGBA{R: 230, G: 235, B: 245, A: 255}
)

var heading = basicfont.Face7x13

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	now := time.Now()
	screen.Fill(pageBg)

	a.drawHero(screen)
	a.drawRing(screen)
	a.drawSlider(screen, now)
	a.drawPricing(screen)
	a.drawFAQ(screen)
	a.drawContact(screen)
	a.drawHeader(screen)
	a.drawModal(screen)

	if a.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+a.lastErr.Error(), 12, int(a.winH)-20)
	}
}

func (a *App) drawHero(screen *ebiten.Image) {
	top := a.sections[0].y - a.scrollY
	if top > a.winH || top+heroH < 0 {
		return
	}
	a.heroRays.Draw(screen, 0, top)

	cx := int(a.winW) / 2
	title := a.content.HeroTitle
	text.Draw(screen, title, heading, cx-len(title)*7/2, int(top)+260, textBright)
	sub := a.content.HeroSubtitle
	ebitenutil.DebugPrintAt(screen, sub, cx-len(sub)*6/2, int(top)+290)
}

func (a *App) drawRing(screen *ebiten.Image) {
	r := a.ringRect()
	if r.y > a.winH || r.y+r.h < 0 {
		return
	}
	title := a.content.Label("testimonials.title")
	text.Draw(screen, title, heading, int(r.x), int(r.y)-30, textBright)

	pts := a.ring.Positions()
	order := a.ring.Order()
	for i, p := range pts {
		it := order[i]
		x := r.x + p.X
		y := r.y + p.Y
		a.drawTestimonialCard(screen, x, y, it.Index, it.Size.W, it.Size.H)
	}
	if pts == nil && a.ring.Len() > 0 {
		ebitenutil.DebugPrintAt(screen, "Loading...", int(r.x+r.w/2)-30, int(r.y+r.h/2))
	}

	a.drawNavButton(screen, a.ringPrevRect(), "<")
	a.drawNavButton(screen, a.ringNextRect(), ">")
}

func (a *App) drawTestimonialCard(screen *ebiten.Image, x, y float64, idx int, w, h float64) {
	if idx >= len(a.content.Testimonials) {
		return
	}
	tm := a.content.Testimonials[idx]

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, panelBorder, false)

	if img, ok := a.avatars[tm.Avatar]; ok {
		op := &ebiten.DrawImageOptions{}
		bounds := img.Bounds()
		scale := 40.0 / float64(bounds.Dy())
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+12, y+12)
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledCircle(screen, float32(x+32), float32(y+32), 20, panelBorder, false)
	}

	ebitenutil.DebugPrintAt(screen, tm.Name, int(x)+60, int(y)+18)
	ebitenutil.DebugPrintAt(screen, tm.Role, int(x)+60, int(y)+34)
	ebitenutil.DebugPrintAt(screen, truncate(tm.Quote, 34), int(x)+12, int(y)+70)
	ebitenutil.DebugPrintAt(screen, truncate(rest(tm.Quote, 34), 34), int(x)+12, int(y)+88)
}

func (a *App) drawNavButton(screen *ebiten.Image, r rect, label string) {
	mx, my := ebiten.CursorPosition()
	bg := panelBg
	if r.contains(float64(mx), float64(my)) {
		bg = panelBorder
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, accent, false)
	ebitenutil.DebugPrintAt(screen, label, int(r.x+r.w/2)-3, int(r.y+r.h/2)-8)
}

func (a *App) drawSlider(screen *ebiten.Image, now time.Time) {
	s := a.sliderRect()
	if s.y > a.winH || s.y+s.h+60 < 0 {
		return
	}
	title := a.content.Label("videos.title")
	text.Draw(screen, title, heading, int(s.x), int(s.y)-30, textBright)

	cw := a.track.CardWidth()
	for i := 0; i < 3*a.track.Len(); i++ {
		x := a.cardX(i, now)
		if x+cw < s.x-cw || x > s.x+s.w+cw {
			continue
		}
		a.drawVideoCard(screen, x, s.y, i%a.track.Len(), cw, s.h)
	}

	for i := 0; i < a.track.Len(); i++ {
		d := a.dotRect(i)
		c := panelBorder
		if i == a.track.ActiveDot() {
			c = accent
		}
		vector.DrawFilledCircle(screen, float32(d.x+d.w/2), float32(d.y+d.h/2), 6, c, false)
	}
}

func (a *App) drawVideoCard(screen *ebiten.Image, x, y float64, idx int, w, h float64) {
	if idx >= len(a.content.Videos) {
		return
	}
	v := a.content.Videos[idx]

	border := panelBorder
	if idx == a.focus {
		border = accent
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelBg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, border, false)

	// play glyph
	cx, cy := float32(x+w/2), float32(y+h/2-20)
	vector.DrawFilledCircle(screen, cx, cy, 26, panelBorder, false)
	ebitenutil.DebugPrintAt(screen, ">", int(cx)-3, int(cy)-8)

	ebitenutil.DebugPrintAt(screen, v.Name, int(x)+14, int(y+h)-52)
	ebitenutil.DebugPrintAt(screen, truncate(v.Title, int(w/7)), int(x)+14, int(y+h)-32)
}

func (a *App) drawPricing(screen *ebiten.Image) {
	top := a.sectionTop("pricing") - a.scrollY
	if top > a.winH || top+pricingH < 0 {
		return
	}
	title := a.content.Label("pricing.title")
	text.Draw(screen, title, heading, int(a.winW)/2-len(title)*7/2, int(top)+40, textBright)

	t := a.pricingToggleRect()
	vector.DrawFilledRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), panelBg, false)
	vector.StrokeRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), 1, panelBorder, false)
	knobX := t.x + 4
	if a.yearly {
		knobX = t.x + t.w/2
	}
	vector.DrawFilledRect(screen, float32(knobX), float32(t.y+4), float32(t.w/2-8), float32(t.h-8), accent, false)
	ebitenutil.DebugPrintAt(screen, a.content.Label("pricing.monthly"), int(t.x)-70, int(t.y)+10)
	ebitenutil.DebugPrintAt(screen, a.content.Label("pricing.yearly"), int(t.x+t.w)+10, int(t.y)+10)

	for i, plan := range a.content.Plans {
		r := a.planRect(i)
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), panelBg, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
		text.Draw(screen, plan.Name, heading, int(r.x)+20, int(r.y)+36, textBright)

		price := plan.Monthly
		suffix := a.content.Label("pricing.monthly")
		if a.yearly {
			price = plan.Yearly
			suffix = a.content.Label("pricing.yearly")
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("$%.0f / %s", price, suffix), int(r.x)+20, int(r.y)+70)
	}
}

func (a *App) drawFAQ(screen *ebiten.Image) {
	top := a.sectionTop("faq") - a.scrollY
	if top > a.winH || top+faqH < 0 {
		return
	}
	title := a.content.Label("faq.title")
	text.Draw(screen, title, heading, 120, int(top)+50, textBright)

	for i, qa := range a.content.FAQ {
		r := a.faqRowRect(i)
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), panelBg, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
		marker := "+"
		if a.faqOpen == i {
			marker = "-"
		}
		ebitenutil.DebugPrintAt(screen, marker+" "+qa.Question, int(r.x)+16, int(r.y)+14)
		if a.faqOpen == i {
			ebitenutil.DebugPrintAt(screen, qa.Answer, int(r.x)+32, int(r.y)+38)
		}
	}
}

func (a *App) drawContact(screen *ebiten.Image) {
	top := a.sectionTop("contact") - a.scrollY
	if top > a.winH || top+contactH < 0 {
		return
	}
	title := a.content.Label("contact.title")
	text.Draw(screen, title, heading, int(a.winW)/2-len(title)*7/2, int(top)+50, textBright)

	labels := []string{
		a.content.Label("contact.name"),
		a.content.Label("contact.email"),
		a.content.Label("contact.message"),
	}
	values := []string{a.form.name, a.form.email, a.form.message}
	for i := 0; i < 3; i++ {
		r := a.formFieldRect(i)
		border := panelBorder
		if a.form.active == i {
			border = accent
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), panelBg, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border, false)
		if values[i] == "" && a.form.active != i {
			ebitenutil.DebugPrintAt(screen, labels[i], int(r.x)+12, int(r.y)+16)
		} else {
			ebitenutil.DebugPrintAt(screen, values[i], int(r.x)+12, int(r.y)+16)
		}
	}

	b := a.sendButtonRect()
	a.drawNavButton(screen, b, "")
	send := a.content.Label("contact.send")
	ebitenutil.DebugPrintAt(screen, send, int(b.x+b.w/2)-len(send)*3, int(b.y+b.h/2)-8)
}

func (a *App) drawHeader(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.winW), 56, pageBg, false)
	vector.StrokeLine(screen, 0, 56, float32(a.winW), 56, 1, panelBorder, false)
	ebitenutil.DebugPrintAt(screen, "course-landing", 20, 20)

	b := a.langButtonRect()
	a.drawNavButton(screen, b, "")
	ebitenutil.DebugPrintAt(screen, a.lang.Name, int(b.x)+12, int(b.y)+10)

	if a.langMenu {
		for i := range a.languageItems() {
			r := a.langItemRect(i)
			vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), panelBg, false)
			vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
			ebitenutil.DebugPrintAt(screen, a.languageItems()[i], int(r.x)+12, int(r.y)+10)
		}
	}
}

func (a *App) drawModal(screen *ebiten.Image) {
	if !a.player.IsOpen() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(a.winW), float32(a.winH),
		color.RGBA{A: 180}, false)

	p := a.modalPanelRect()
	vector.DrawFilledRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), panelBg, false)
	vector.StrokeRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), 1, accent, false)

	c := a.modalCloseRect()
	ebitenutil.DebugPrintAt(screen, "x", int(c.x)+12, int(c.y)+8)

	text.Draw(screen, a.player.Title(), heading, int(p.x)+24, int(p.y)+48, textBright)
	ebitenutil.DebugPrintAt(screen, a.player.Source(), int(p.x)+24, int(p.y)+70)
	vector.DrawFilledCircle(screen, float32(p.x+p.w/2), float32(p.y+p.h/2+20), 40, panelBorder, false)
	ebitenutil.DebugPrintAt(screen, ">", int(p.x+p.w/2)-3, int(p.y+p.h/2)+12)
}

func (a *App) languageItems() []string {
	names := make([]string, 0, len(locale.Supported))
	for _, l := range locale.Supported {
		names = append(names, l.Name)
	}
	return names
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func rest(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return ""
	}
	return string(r[n:])
}
