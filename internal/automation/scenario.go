package automation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/folio/internal/geom"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

var (
	ErrNoSteps     = errors.New("automation: scenario has no steps")
	ErrBadWindow   = errors.New("automation: window must be positive")
	ErrStepAction  = errors.New("automation: step must name exactly one action")
	ErrStepOrder   = errors.New("automation: steps must be in time order")
	ErrBadDuration = errors.New("automation: duration ends before the last step")
)

// Scenario is a scripted sequence of input events.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Window      Window  `yaml:"window"`
	Duration    float64 `yaml:"duration"`
	Steps       []Step  `yaml:"steps"`
}

type Window struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Point is a position in window pixels, or in fractions of the arena when
// Arena is set.
type Point struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Arena bool    `yaml:"arena"`
}

// Step fires one action at time At.
type Step struct {
	At      float64 `yaml:"at"`
	Pointer *Point  `yaml:"pointer,omitempty"`
	Click   *Point  `yaml:"click,omitempty"`
	Select  string  `yaml:"select,omitempty"`
	Close   bool    `yaml:"close,omitempty"`
	Scroll  float64 `yaml:"scroll,omitempty"`
	Resize  *Window `yaml:"resize,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Pointer != nil, s.Click != nil, s.Select != "", s.Close, s.Scroll != 0, s.Resize != nil} {
		if set {
			n++
		}
	}
	return n
}

// Action names what the step does, for logs and traces.
func (s Step) Action() string {
	switch {
	case s.Pointer != nil:
		return "pointer"
	case s.Click != nil:
		return "click"
	case s.Select != "":
		return "select " + s.Select
	case s.Close:
		return "close"
	case s.Scroll != 0:
		return "scroll"
	case s.Resize != nil:
		return "resize"
	}
	return "none"
}

// resolve maps p into window pixels given the current arena.
func (p Point) resolve(arena geom.Rect) geom.Vec {
	if !p.Arena {
		return geom.V(p.X, p.Y)
	}
	return geom.V(arena.X+p.X*arena.W, arena.Y+p.Y*arena.H)
}

// End is the scenario length: Duration, or one second past the last step.
func (sc *Scenario) End() float64 {
	if sc.Duration > 0 {
		return sc.Duration
	}
	if len(sc.Steps) == 0 {
		return 0
	}
	return sc.Steps[len(sc.Steps)-1].At + 1
}

func (sc *Scenario) Validate() error {
	if sc.Window.W <= 0 || sc.Window.H <= 0 {
		return fmt.Errorf("%gx%g: %w", sc.Window.W, sc.Window.H, ErrBadWindow)
	}
	if len(sc.Steps) == 0 {
		return ErrNoSteps
	}
	last := 0.0
	for i, st := range sc.Steps {
		if st.actions() != 1 {
			return fmt.Errorf("step %d: %w", i+1, ErrStepAction)
		}
		if st.At < last {
			return fmt.Errorf("step %d at %g: %w", i+1, st.At, ErrStepOrder)
		}
		if st.Resize != nil && (st.Resize.W <= 0 || st.Resize.H <= 0) {
			return fmt.Errorf("step %d: %w", i+1, ErrBadWindow)
		}
		last = st.At
	}
	if sc.Duration > 0 && sc.Duration < last {
		return fmt.Errorf("%g < %g: %w", sc.Duration, last, ErrBadDuration)
	}
	return nil
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Demo is the built-in scenario run when no file is given.
func Demo() *Scenario {
	sc, err := ParseScenario(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("automation: embedded demo: %v", err))
	}
	return sc
}
