package gui

import (
	"context"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/mobile"
	"github.com/san-kum/folio/internal/render"
)

const (
	phoneW    = 390
	phoneH    = 844
	tiltRate  = 60.0
	shakeKick = 20.0
)

// MobileApp runs the mobile variant in a phone-sized window. Arrow keys tilt
// the simulated device, A/D turn it and Space shakes it.
type MobileApp struct {
	Arena   *mobile.Arena
	Scheme  config.Scheme
	Surface *surface

	ctx                context.Context
	rng                *rand.Rand
	beta, gamma, alpha float64
	start, last        float64
}

func NewMobileApp(ctx context.Context, cfg config.MobileConfig, scheme config.Scheme, seed int64) *MobileApp {
	rng := rand.New(rand.NewSource(seed))
	return &MobileApp{
		Arena:   mobile.New(cfg, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), rng),
		Scheme:  scheme,
		Surface: &surface{font: loadFont()},
		ctx:     ctx,
		rng:     rng,
		start:   rl.GetTime(),
	}
}

// RunMobile opens the mobile window and blocks until it is closed.
func RunMobile(ctx context.Context, cfg *config.Config, scheme config.Scheme) {
	initWindow(phoneW, phoneH, "folio mobile")
	defer rl.CloseWindow()
	app := NewMobileApp(ctx, cfg.Mobile, scheme, cfg.Seed)
	for !rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyQ) {
		app.Update()
		app.Draw()
	}
}

func (a *MobileApp) Update() {
	now := rl.GetTime() - a.start
	dt := now - a.last
	a.last = now

	if rl.IsWindowResized() {
		a.Arena.OnResize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		pos := geom.V(float64(m.X), float64(m.Y))
		if a.Arena.PromptHit(pos) {
			go a.Arena.RequestPermission(a.ctx, desktopSensor{})
		} else if url, ok := a.Arena.Tap(pos); ok {
			rl.OpenURL(url)
		}
	}

	a.gamma = keyAxis(a.gamma, rl.KeyLeft, rl.KeyRight, tiltRate, dt, 90)
	a.beta = keyAxis(a.beta, rl.KeyUp, rl.KeyDown, tiltRate, dt, 90)
	a.alpha = keyAxis(a.alpha, rl.KeyA, rl.KeyD, tiltRate, dt, 360)
	a.Arena.OnOrientation(a.beta, a.gamma, a.alpha)

	if rl.IsKeyPressed(rl.KeySpace) {
		kick := geom.Polar(shakeKick, a.rng.Float64()*2*math.Pi)
		a.Arena.OnMotion(kick.X, kick.Y, 0)
	}

	a.Arena.Tick(now)
}

func (a *MobileApp) Draw() {
	rl.BeginDrawing()
	render.PaintMobile(a.Surface, a.Arena.Frame(), a.Scheme)
	rl.EndDrawing()
}
