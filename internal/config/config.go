package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPhrase    = "Hey, I’m Ada Park, a \nmultidisciplinary designer.\n\nLooking for a place to grow."
	DefaultHighlight = "AdaPark"

	DefaultGravity     = 0.8
	DefaultFriction    = 0.01
	DefaultAirDrag     = 0.0
	DefaultDensity     = 0.01
	DefaultRestitution = 0.8

	DefaultLetterRadius = 24.0
	DefaultLaunchSpeed  = 7.0
	DefaultAngleMin     = -120.0
	DefaultAngleMax     = -70.0

	DefaultRoundFade    = 0.1
	DefaultEase         = 0.5
	DefaultLetterFadeIn = 0.15
	DefaultCoverFade    = 0.4
	DefaultMount        = 0.5
	DefaultSwitch       = 0.8
	DefaultClose        = 0.4
)

var (
	ErrEmptyPhrase     = errors.New("config: phrase is empty")
	ErrInvalidDuration = errors.New("config: duration must be positive")
	ErrInvalidRange    = errors.New("config: range minimum exceeds maximum")
	ErrUnknownScheme   = errors.New("config: unknown colour scheme")
)

type Config struct {
	Phrase    string          `yaml:"phrase"`
	Highlight string          `yaml:"highlight"`
	Scheme    string          `yaml:"scheme"`
	Seed      int64           `yaml:"seed"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Letters   LetterConfig    `yaml:"letters"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Ghost     GhostConfig     `yaml:"ghost"`
	Timing    TimingConfig    `yaml:"timing"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	Mobile    MobileConfig    `yaml:"mobile"`
}

type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Friction    float64 `yaml:"friction"`
	AirDrag     float64 `yaml:"air_drag"`
	Density     float64 `yaml:"density"`
	Restitution float64 `yaml:"restitution"`
	WallThick   float64 `yaml:"wall_thickness"`
}

// LetterConfig sizes and launches letter bodies. Lengths are in reference
// pixels and are multiplied by the layout scale; angles are in degrees.
type LetterConfig struct {
	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	Speed       float64 `yaml:"speed"`
	AngleMin    float64 `yaml:"angle_min"`
	AngleMax    float64 `yaml:"angle_max"`
	SpawnOffset Offset  `yaml:"spawn_offset"`
}

type IndicatorConfig struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
	Glyph       string  `yaml:"glyph"`
}

type GhostConfig struct {
	Radius      float64 `yaml:"radius"`
	DrawRadius  float64 `yaml:"draw_radius"`
	Restitution float64 `yaml:"restitution"`
	Offset      Offset  `yaml:"offset"`
	ScaleRate   float64 `yaml:"scale_rate"`
}

// Offset is subtracted from the pointer position, in reference pixels.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TimingConfig holds every timer length, in seconds.
type TimingConfig struct {
	RoundFade    float64 `yaml:"round_fade"`
	Ease         float64 `yaml:"ease"`
	LetterFadeIn float64 `yaml:"letter_fade_in"`
	CoverFade    float64 `yaml:"cover_fade"`
	Mount        float64 `yaml:"mount"`
	Switch       float64 `yaml:"switch"`
	Close        float64 `yaml:"close"`
}

type GalleryConfig struct {
	IncomingOffset float64 `yaml:"incoming_offset"`
	OutgoingOffset float64 `yaml:"outgoing_offset"`
	ItemGap        float64 `yaml:"item_gap"`
}

type MobileConfig struct {
	Letters        string  `yaml:"letters"`
	Repeats        int     `yaml:"repeats"`
	Interval       float64 `yaml:"interval"`
	LetterRadius   float64 `yaml:"letter_radius"`
	LetterSize     float64 `yaml:"letter_size"`
	Restitution    float64 `yaml:"restitution"`
	AirDrag        float64 `yaml:"air_drag"`
	CenterRadius   float64 `yaml:"center_radius"`
	CenterText     string  `yaml:"center_text"`
	PromptText     string  `yaml:"prompt_text"`
	TextSize       float64 `yaml:"text_size"`
	ContactURL     string  `yaml:"contact_url"`
	TiltRange      float64 `yaml:"tilt_range"`
	GravityRange   float64 `yaml:"gravity_range"`
	ShakeThreshold float64 `yaml:"shake_threshold"`
	ShakeForce     float64 `yaml:"shake_force"`
	WallThick      float64 `yaml:"wall_thickness"`
}

func DefaultConfig() *Config {
	return &Config{
		Phrase:    DefaultPhrase,
		Highlight: DefaultHighlight,
		Scheme:    SchemeClassic.Name,
		Physics: PhysicsConfig{
			Gravity:     DefaultGravity,
			Friction:    DefaultFriction,
			AirDrag:     DefaultAirDrag,
			Density:     DefaultDensity,
			Restitution: DefaultRestitution,
			WallThick:   100,
		},
		Letters: LetterConfig{
			RadiusMin:   DefaultLetterRadius,
			RadiusMax:   DefaultLetterRadius,
			Speed:       DefaultLaunchSpeed,
			AngleMin:    DefaultAngleMin,
			AngleMax:    DefaultAngleMax,
			SpawnOffset: Offset{X: 7, Y: 7},
		},
		Indicator: IndicatorConfig{
			Radius:      40,
			Restitution: 2,
			Glyph:       "→",
		},
		Ghost: GhostConfig{
			Radius:      35,
			DrawRadius:  30,
			Restitution: 1.5,
			Offset:      Offset{X: 10, Y: 10},
			ScaleRate:   0.15,
		},
		Timing: TimingConfig{
			RoundFade:    DefaultRoundFade,
			Ease:         DefaultEase,
			LetterFadeIn: DefaultLetterFadeIn,
			CoverFade:    DefaultCoverFade,
			Mount:        DefaultMount,
			Switch:       DefaultSwitch,
			Close:        DefaultClose,
		},
		Gallery: GalleryConfig{
			IncomingOffset: 40,
			OutgoingOffset: -40,
			ItemGap:        16,
		},
		Mobile: MobileConfig{
			Letters:        "ADAPARK",
			Repeats:        3,
			Interval:       0.05,
			LetterRadius:   40,
			LetterSize:     32,
			Restitution:    0.95,
			AirDrag:        0.00001,
			CenterRadius:   180,
			CenterText:     "This site is best viewed on a desktop device\n\n☺\n\nClick here to contact!",
			PromptText:     "Enable Motion",
			TextSize:       20,
			ContactURL:     "mailto:hello@example.com",
			TiltRange:      90,
			GravityRange:   0.7,
			ShakeThreshold: 5,
			ShakeForce:     0.0005,
			WallThick:      200,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects configurations the arena cannot run with.
func (c *Config) Validate() error {
	if c.Phrase == "" {
		return ErrEmptyPhrase
	}
	durations := map[string]float64{
		"timing.round_fade":     c.Timing.RoundFade,
		"timing.ease":           c.Timing.Ease,
		"timing.letter_fade_in": c.Timing.LetterFadeIn,
		"timing.cover_fade":     c.Timing.CoverFade,
		"timing.mount":          c.Timing.Mount,
		"timing.switch":         c.Timing.Switch,
		"timing.close":          c.Timing.Close,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s = %g: %w", name, d, ErrInvalidDuration)
		}
	}
	if c.Letters.RadiusMin > c.Letters.RadiusMax {
		return fmt.Errorf("letters.radius_min %g > radius_max %g: %w", c.Letters.RadiusMin, c.Letters.RadiusMax, ErrInvalidRange)
	}
	if c.Letters.AngleMin > c.Letters.AngleMax {
		return fmt.Errorf("letters.angle_min %g > angle_max %g: %w", c.Letters.AngleMin, c.Letters.AngleMax, ErrInvalidRange)
	}
	if _, err := LookupScheme(c.Scheme); err != nil {
		return err
	}
	return nil
}
