package locale

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
		rtl  bool
	}{
		{"english", "en", "en", false},
		{"arabic", "ar", "ar", true},
		{"regional arabic matches arabic", "ar-EG", "ar", true},
		{"unknown falls back to default", "fr", "en", false},
		{"garbage falls back to default", "???", "en", false},
		{"empty falls back to default", "", "en", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.code)
			if got.Code != tt.want {
				t.Errorf("Match(%q).Code = %q, want %q", tt.code, got.Code, tt.want)
			}
			if got.RTL != tt.rtl {
				t.Errorf("Match(%q).RTL = %v, want %v", tt.code, got.RTL, tt.rtl)
			}
		})
	}
}

func TestLoadBothLanguages(t *testing.T) {
	for _, l := range Supported {
		c, err := Load(l.Code)
		if err != nil {
			t.Fatalf("Load(%q): %v", l.Code, err)
		}
		if c.HeroTitle == "" {
			t.Errorf("%s: empty hero title", l.Code)
		}
		if len(c.Testimonials) == 0 || len(c.Videos) == 0 {
			t.Errorf("%s: missing testimonial content", l.Code)
		}
		if len(c.FAQ) == 0 || len(c.Plans) == 0 {
			t.Errorf("%s: missing faq or pricing content", l.Code)
		}
	}
}

func TestLoadUnknownLanguageFails(t *testing.T) {
	if _, err := Load("xx"); err == nil {
		t.Error("expected an error for an unknown language")
	}
}

func TestLabelFallback(t *testing.T) {
	c := Content{Labels: map[string]string{"a": "b"}}
	if c.Label("a") != "b" {
		t.Error("known label not returned")
	}
	if c.Label("missing.key") != "missing.key" {
		t.Error("missing label must fall back to the key")
	}
}
