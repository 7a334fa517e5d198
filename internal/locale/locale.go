// Package locale holds the two page languages, their direction, and the
// per-language page content.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed content/*.json
var contentFS embed.FS

// Lang identifies one supported page language.
type Lang struct {
	Code string
	Name string
	Tag  language.Tag
	RTL  bool
}

// Supported lists the page languages; the first entry is the default.
var Supported = []Lang{
	{Code: "en", Name: "English", Tag: language.English, RTL: false},
	{Code: "ar", Name: "العربية", Tag: language.Arabic, RTL: true},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(Supported))
	for i, l := range Supported {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// Match resolves a persisted language code to a supported language, falling
// back to the default for anything unrecognized.
func Match(code string) Lang {
	tag, err := language.Parse(code)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Testimonial is one card in the circular carousel.
type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar"` // image path, may be empty
}

// VideoTestimonial is one slide in the infinite slider. Source points at the
// media the modal plays.
type VideoTestimonial struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

// QA is one FAQ accordion entry.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Plan is one pricing card with both billing cycles.
type Plan struct {
	Name    string  `json:"name"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Content is everything the page renders for one language.
type Content struct {
	HeroTitle    string             `json:"heroTitle"`
	HeroSubtitle string             `json:"heroSubtitle"`
	Testimonials []Testimonial      `json:"testimonials"`
	Videos       []VideoTestimonial `json:"videos"`
	FAQ          []QA               `json:"faq"`
	Plans        []Plan             `json:"plans"`
	Labels       map[string]string  `json:"labels"`
}

// Load reads the embedded content document for a language code. Callers fall
// back to Default on error, mirroring the full-navigation fallback in the
// language-switch contract.
func Load(code string) (Content, error) {
	data, err := contentFS.ReadFile("content/" + code + ".json")
	if err != nil {
		return Content{}, fmt.Errorf("locale: no content for %q: %w", code, err)
	}
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("locale: content for %q: %w", code, err)
	}
	return c, nil
}

// Default is the built-in English content used when loading fails.
func Default() Content {
	return Content{
		HeroTitle:    "Master the Craft",
		HeroSubtitle: "A complete course, from first principles to production.",
		Testimonials: []Testimonial{
			{Name: "Sara", Role: "Student", Quote: "Changed how I work."},
			{Name: "Omar", Role: "Engineer", Quote: "Worth every minute."},
			{Name: "Lina", Role: "Designer", Quote: "Clear and practical."},
		},
		FAQ: []QA{
			{Question: "How long is the course?", Answer: "Twelve weeks, self-paced."},
		},
		Plans: []Plan{
			{Name: "Standard", Monthly: 29, Yearly: 290},
		},
		Labels: map[string]string{"pricing.monthly": "Monthly", "pricing.yearly": "Yearly"},
	}
}

// Label looks up a UI string with a graceful fallback to the key itself.
func (c Content) Label(key string) string {
	if v, ok := c.Labels[key]; ok {
		return v
	}
	return key
}
