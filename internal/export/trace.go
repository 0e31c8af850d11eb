package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/folio/internal/automation"
)

type TraceData struct {
	Scenario string             `json:"scenario"`
	Seed     int64              `json:"seed"`
	FPS      int                `json:"fps"`
	Ticks    int                `json:"ticks"`
	Times    []float64          `json:"times"`
	Angles   []float64          `json:"angles"`
	Letters  []int              `json:"letters"`
	Energy   []float64          `json:"energy"`
	Panel    []string           `json:"panel"`
	Events   []EventData        `json:"events"`
	Metrics  map[string]float64 `json:"metrics"`
}

type EventData struct {
	Time   float64 `json:"time"`
	Action string  `json:"action"`
	OK     bool    `json:"ok"`
}

func traceData(t *automation.Trace, seed int64, fps int) TraceData {
	d := TraceData{
		Scenario: t.Name,
		Seed:     seed,
		FPS:      fps,
		Ticks:    len(t.Samples),
		Times:    make([]float64, len(t.Samples)),
		Angles:   make([]float64, len(t.Samples)),
		Letters:  make([]int, len(t.Samples)),
		Energy:   make([]float64, len(t.Samples)),
		Panel:    make([]string, len(t.Samples)),
		Events:   make([]EventData, len(t.Events)),
		Metrics:  t.Metrics,
	}
	for i, s := range t.Samples {
		d.Times[i] = s.Time
		d.Angles[i] = s.Angle
		d.Letters[i] = s.Letters
		d.Energy[i] = s.Energy
		d.Panel[i] = s.Panel.String()
	}
	for i, e := range t.Events {
		d.Events[i] = EventData{Time: e.Time, Action: e.Action, OK: e.OK}
	}
	return d
}

// TraceJSON writes the run as one indented JSON document.
func TraceJSON(w io.Writer, t *automation.Trace, seed int64, fps int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(traceData(t, seed, fps)); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}

// TraceCSV writes one row per tick.
func TraceCSV(w io.Writer, t *automation.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "angle", "indicator", "letters", "bodies", "rounds", "energy", "panel"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, s := range t.Samples {
		row := []string{
			f(s.Time), f(s.Angle), s.Indicator.String(),
			strconv.Itoa(s.Letters), strconv.Itoa(s.Bodies), strconv.Itoa(s.Rounds),
			f(s.Energy), s.Panel.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
