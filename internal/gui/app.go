// Package gui hosts the arena in a raylib window, as the desktop page or as
// the phone-sized mobile variant.
package gui

import (
	"context"
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/render"
	"github.com/san-kum/folio/internal/session"
)

const (
	windowW     = 1280
	windowH     = 828
	scrollSpeed = 40.0
	fontPath    = "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"
	fontSize    = 64
)

// App is the desktop window around one session.
type App struct {
	Session *session.Session
	Scheme  config.Scheme
	Surface *surface
	ShowHUD bool

	start float64
}

// initWindow opens a resizable window and disables the default exit key so
// Escape can close the gallery.
func initWindow(w, h int32, title string) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads a system font with the glyphs the page uses, falling back to
// raylib's built-in font.
func loadFont() rl.Font {
	runes := make([]rune, 0, 128)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, '→', '×', '▶', '☺', '’', '‘', '“', '”')

	font := rl.LoadFontEx(fontPath, fontSize, runes)
	if font.Texture.ID == 0 {
		log.Printf("gui: font %s unavailable, using default", fontPath)
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, catalog *projects.Catalog, scheme config.Scheme) *App {
	return &App{
		Session: session.New(cfg, catalog, nil, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())),
		Scheme:  scheme,
		Surface: &surface{font: loadFont()},
		start:   rl.GetTime(),
	}
}

// Run opens the desktop window and blocks until it is closed.
func Run(cfg *config.Config, catalog *projects.Catalog, scheme config.Scheme, hud bool) {
	initWindow(windowW, windowH, "folio")
	defer rl.CloseWindow()
	app := NewApp(cfg, catalog, scheme)
	app.ShowHUD = hud
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) now() float64 { return rl.GetTime() - a.start }

// Update feeds this frame's input into the session and ticks it. It returns
// false when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	s := a.Session

	if rl.IsWindowResized() {
		s.OnResize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	m := rl.GetMousePosition()
	pointer := geom.V(float64(m.X), float64(m.Y))
	s.OnPointerMove(pointer)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.OnPointerDown(pointer)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.OnScroll(-float64(wheel) * scrollSpeed)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		s.OnGalleryClosed()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	s.OnTick(a.now())
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	render.Paint(a.Surface, a.Session.Frame(a.now()), a.Scheme)
	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s := a.Session
	f := s.Frame(a.now())
	col := a.Scheme.Outline
	h := float64(rl.GetScreenHeight())

	a.drawText(fmt.Sprintf("%d FPS  %s  %s  letters %d/%d  round %d",
		rl.GetFPS(), f.Panel, f.Indicator.Mode, s.Letters().Cursor(), s.Letters().Len(), s.Letters().Rounds()),
		geom.V(12, h-40), 14, col)
	a.drawText("[CLICK] SPAWN  [WHEEL] SCROLL  [ESC] CLOSE  [H] HUD  [Q] QUIT", geom.V(12, h-22), 14, col)
}

// drawText draws left-aligned text at its top-left corner.
func (a *App) drawText(text string, at geom.Vec, size float64, c config.Color) {
	m := a.Surface.MeasureText(text, size)
	a.Surface.Text(text, geom.V(at.X+m.X/2, at.Y+m.Y/2), size, 0, c)
}

// desktopSensor stands in for a phone's permission prompt; a desktop has no
// motion sensors to gate.
type desktopSensor struct{}

func (desktopSensor) RequestPermission(context.Context) (bool, error) { return true, nil }

// keyAxis integrates a pair of keys into an angle in degrees, clamped to
// ±limit.
func keyAxis(v float64, neg, pos int32, rate, dt, limit float64) float64 {
	if rl.IsKeyDown(neg) {
		v -= rate * dt
	}
	if rl.IsKeyDown(pos) {
		v += rate * dt
	}
	return math.Max(-limit, math.Min(limit, v))
}
