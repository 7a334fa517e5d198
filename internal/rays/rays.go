package rays

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config is the immutable per-instance ray setup. Only the time and smoothed
// mouse uniforms change after construction.
type Config struct {
	Origin         string
	Color          color.RGBA
	Speed          float64
	Spread         float64
	Length         float64
	Pulsating      bool
	FadeDistance   float64
	Saturation     float64
	FollowMouse    bool
	MouseInfluence float64
	Noise          float64
	Distortion     float64

	// VisibleRatio is the on-screen fraction at which the instance activates.
	VisibleRatio float64
	// Smoothing is the exponential factor applied to the raw pointer.
	Smoothing float64
}

// Renderer draws a decorative light-ray background behind one page section.
// It is dormant until its section is sufficiently visible, compiles its
// program on activation, and releases everything on exit; re-entry recompiles
// from scratch. Instances are fully independent.
type Renderer struct {
	cfg  Config
	w, h float64

	active   bool
	shader   *ebiten.Shader
	uniforms map[string]any
	start    time.Time

	mouseX, mouseY   float64 // raw pointer, normalized to the section
	smoothX, smoothY float64

	cleanups []func()

	// seams for headless tests
	compile func(src []byte) (*ebiten.Shader, error)
	release func(s *ebiten.Shader)
}

// New builds a dormant renderer for a section of the given size.
func New(cfg Config, w, h float64) *Renderer {
	if cfg.VisibleRatio <= 0 {
		cfg.VisibleRatio = 0.1
	}
	if cfg.Smoothing <= 0 {
		cfg.Smoothing = 0.92
	}
	return &Renderer{
		cfg:     cfg,
		w:       w,
		h:       h,
		smoothX: 0.5,
		smoothY: 0.5,
		compile: ebiten.NewShader,
		release: func(s *ebiten.Shader) { s.Deallocate() },
	}
}

// Active reports whether the frame loop is running.
func (r *Renderer) Active() bool { return r.active }

// OnCleanup registers a callback run when the instance goes dormant.
func (r *Renderer) OnCleanup(fn func()) {
	r.cleanups = append(r.cleanups, fn)
}

// SetVisible drives the dormant/active lifecycle from the section's on-screen
// ratio. Compile failure logs and leaves the instance dormant; nothing is
// retried.
func (r *Renderer) SetVisible(ratio float64, now time.Time) {
	if !r.active && ratio >= r.cfg.VisibleRatio {
		r.activate(now)
		return
	}
	if r.active && ratio < r.cfg.VisibleRatio {
		r.deactivate()
	}
}

func (r *Renderer) activate(now time.Time) {
	if r.w <= 0 || r.h <= 0 {
		log.Printf("rays: missing container, not activating")
		return
	}
	s, err := r.compile([]byte(shaderSrc))
	if err != nil {
		log.Printf("rays: shader compile failed: %v", err)
		return
	}
	r.shader = s
	r.start = now
	r.uniforms = r.staticUniforms()
	r.active = true
}

func (r *Renderer) deactivate() {
	r.active = false
	if r.shader != nil {
		r.release(r.shader)
		r.shader = nil
	}
	r.uniforms = nil
	for _, fn := range r.cleanups {
		fn()
	}
	r.cleanups = nil
}

// staticUniforms is built once per activation; Step only rewrites Time and
// Mouse.
func (r *Renderer) staticUniforms() map[string]any {
	anchor, dir := AnchorAndDir(r.cfg.Origin, r.w, r.h)
	boolF := func(b bool) float32 {
		if b {
			return 1
		}
		return 0
	}
	return map[string]any{
		"Resolution":     []float32{float32(r.w), float32(r.h)},
		"RaysPos":        []float32{float32(anchor[0]), float32(anchor[1])},
		"RaysDir":        []float32{float32(dir[0]), float32(dir[1])},
		"RaysColor":      []float32{float32(r.cfg.Color.R) / 255, float32(r.cfg.Color.G) / 255, float32(r.cfg.Color.B) / 255},
		"Speed":          float32(r.cfg.Speed),
		"Spread":         float32(r.cfg.Spread),
		"RayLength":      float32(r.cfg.Length),
		"Pulsating":      boolF(r.cfg.Pulsating),
		"FadeDistance":   float32(r.cfg.FadeDistance),
		"Saturation":     float32(r.cfg.Saturation),
		"FollowMouse":    boolF(r.cfg.FollowMouse),
		"MouseInfluence": float32(r.cfg.MouseInfluence),
		"NoiseAmount":    float32(r.cfg.Noise),
		"Distortion":     float32(r.cfg.Distortion),
		"Time":           float32(0),
		"Mouse":          []float32{0.5, 0.5},
		"Offset":         []float32{0, 0},
	}
}

// Resize updates the section size. An active instance recomputes its anchor
// and resolution uniforms in place, keeping the dynamic ones.
func (r *Renderer) Resize(w, h float64) {
	r.w, r.h = w, h
	if !r.active {
		return
	}
	t, m := r.uniforms["Time"], r.uniforms["Mouse"]
	r.uniforms = r.staticUniforms()
	r.uniforms["Time"] = t
	r.uniforms["Mouse"] = m
}

// SetMouse records the raw pointer position in section-normalized
// coordinates. The smoothed position catches up in Step.
func (r *Renderer) SetMouse(x, y float64) {
	r.mouseX, r.mouseY = x, y
}

// Smoothed returns the pointer position the shader currently sees.
func (r *Renderer) Smoothed() (float64, float64) { return r.smoothX, r.smoothY }

// Step advances one frame: time uniform from the animation clock and, when
// following is on, the exponentially smoothed pointer.
func (r *Renderer) Step(now time.Time) {
	if !r.active {
		return
	}
	r.uniforms["Time"] = float32(now.Sub(r.start).Seconds())
	if r.cfg.FollowMouse {
		k := r.cfg.Smoothing
		r.smoothX = r.smoothX*k + r.mouseX*(1-k)
		r.smoothY = r.smoothY*k + r.mouseY*(1-k)
		r.uniforms["Mouse"] = []float32{float32(r.smoothX), float32(r.smoothY)}
	}
}

// Draw renders the fullscreen-quad pass for this section at (x, y).
func (r *Renderer) Draw(screen *ebiten.Image, x, y float64) {
	if !r.active || r.shader == nil {
		return
	}
	r.uniforms["Offset"] = []float32{float32(x), float32(y)}
	op := &ebiten.DrawRectShaderOptions{Uniforms: r.uniforms}
	op.GeoM.Translate(x, y)
	screen.DrawRectShader(int(r.w), int(r.h), r.shader, op)
}
