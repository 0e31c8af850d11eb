// Package tui hosts the desktop arena in a terminal: the page is painted
// onto a braille canvas and the mouse or a keyboard cursor stands in for the
// pointer.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/render"
	"github.com/san-kum/folio/internal/session"
)

const (
	frameRate   = 30
	statusRows  = 3
	scrollStep  = 60.0
	defaultCols = 120
	defaultRows = 40
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model around one session.
type Model struct {
	session *session.Session
	catalog *projects.Catalog
	scheme  config.Scheme
	styles  styles
	canvas  *Canvas

	cursor   geom.Vec
	start    time.Time
	now      float64
	showHelp bool
}

// NewModel starts a session sized for a default terminal; the first
// WindowSizeMsg corrects it.
func NewModel(cfg *config.Config, catalog *projects.Catalog, scheme config.Scheme, start time.Time) *Model {
	canvas := NewCanvas(defaultCols, defaultRows-statusRows)
	size := canvas.Size()
	m := &Model{
		session: session.New(cfg, catalog, nil, size.X, size.Y),
		catalog: catalog,
		scheme:  scheme,
		styles:  newStyles(scheme),
		canvas:  canvas,
		start:   start,
	}
	m.home()
	return m
}

// home parks the cursor in the lower half of the arena.
func (m *Model) home() {
	a := m.session.Layout().Arena()
	m.cursor = geom.V(a.X+a.W/2, a.Y+a.H*0.75)
	m.session.OnPointerMove(m.cursor)
}

func (m *Model) Session() *session.Session { return m.session }
func (m *Model) Cursor() geom.Vec          { return m.cursor }

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		m.now = time.Time(msg).Sub(m.start).Seconds()
		m.session.OnTick(m.now)
		return m, tick()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	if cols <= 0 || rows <= statusRows {
		return
	}
	m.canvas.Resize(cols, rows-statusRows)
	size := m.canvas.Size()
	m.session.OnResize(size.X, size.Y)
	m.home()
}

// cellCenter maps a terminal cell to arena pixels.
func cellCenter(x, y int) geom.Vec {
	return geom.V((float64(x)+0.5)*CellW, (float64(y)+0.5)*CellH)
}

func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.session.OnScroll(-scrollStep)
		return
	case tea.MouseButtonWheelDown:
		m.session.OnScroll(scrollStep)
		return
	}
	m.cursor = cellCenter(msg.X, msg.Y)
	m.session.OnPointerMove(m.cursor)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.session.OnPointerDown(m.cursor)
	}
}

func (m *Model) move(dx, dy float64) {
	size := m.canvas.Size()
	m.cursor = geom.Rect{W: size.X - 1, H: size.Y - 1}.Clamp(m.cursor.Add(geom.V(dx*CellW, dy*CellH)))
	m.session.OnPointerMove(m.cursor)
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch k := msg.String(); k {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.session.OnGalleryClosed()
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "K":
		m.move(0, -4)
	case "J":
		m.move(0, 4)
	case "H":
		m.move(-4, 0)
	case "L":
		m.move(4, 0)
	case "enter", " ":
		m.session.OnPointerDown(m.cursor)
	case "pgup":
		m.session.OnScroll(-scrollStep)
	case "pgdown":
		m.session.OnScroll(scrollStep)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if p, ok := m.catalog.At(int(k[0] - '1')); ok {
				m.session.OnProjectSelected(p.ID)
			}
		}
	}
	return nil
}

func (m *Model) View() string {
	f := m.session.Frame(m.now)
	render.Paint(m.canvas, f, m.scheme)
	m.canvas.Text("+", m.cursor, 0, 0, m.scheme.PhraseText)

	if m.showHelp {
		return lipgloss.Place(m.canvas.Width, m.canvas.Height+statusRows, lipgloss.Center, lipgloss.Center, m.help())
	}
	return m.canvas.String() + m.status(f)
}

func (m *Model) status(f session.Frame) string {
	s, st := m.session, m.styles
	fields := []string{
		st.field("panel", f.Panel.String()),
		st.field("arrow", f.Indicator.Mode.String()),
		st.field("letters", fmt.Sprintf("%d/%d", s.Letters().Cursor(), s.Letters().Len())),
		st.field("round", fmt.Sprint(s.Letters().Rounds())),
	}
	if f.Title != "" {
		fields = append(fields, st.accent.Render(f.Title))
	}
	line := strings.Join(fields, "   ")
	hints := st.keyHint("ENTER", "spawn", "1-9", "project", "ESC", "close", "?", "help", "Q", "quit")
	return st.bar.Width(max(m.canvas.Width, 1)).Render(line + "\n" + hints)
}

func (m *Model) help() string {
	st := m.styles
	rows := []string{
		st.accent.Render("KEYS"),
		"",
		st.keyHint("ARROWS/HJKL", "move cursor"),
		st.keyHint("SHIFT+HJKL", "move faster"),
		st.keyHint("ENTER/SPACE", "click at cursor"),
		st.keyHint("MOUSE", "point and click"),
		st.keyHint("1-9", "open project"),
		st.keyHint("ESC", "close gallery"),
		st.keyHint("PGUP/PGDN", "scroll gallery"),
		st.keyHint("?", "toggle help"),
		st.keyHint("Q", "quit"),
	}
	return st.help.Render(strings.Join(rows, "\n"))
}

// Run starts the terminal viewer and blocks until the user quits.
func Run(cfg *config.Config, catalog *projects.Catalog, scheme config.Scheme) error {
	m := NewModel(cfg, catalog, scheme, time.Now())
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
