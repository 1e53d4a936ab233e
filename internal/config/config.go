// Package config handles stairgen configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/stairgen/pkg/stairs"
)

// Staircase kinds.
const (
	KindStraight = "straight"
	KindCurved   = "curved"
)

// Config holds all generator settings.
type Config struct {
	Stairs  StairsConfig  `yaml:"stairs"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// StairsConfig holds the staircase parameters shared by both kinds plus
// the kind-specific sections.
type StairsConfig struct {
	Kind       string         `yaml:"kind"`      // straight or curved
	StepType   string         `yaml:"step_type"` // num_steps or step_height
	NumSteps   int            `yaml:"num_steps"`
	StepHeight float64        `yaml:"step_height"`
	Height     float64        `yaml:"height"`
	Sides      bool           `yaml:"sides"`
	Straight   StraightConfig `yaml:"straight"`
	Curved     CurvedConfig   `yaml:"curved"`
}

// StraightConfig holds straight-run settings.
type StraightConfig struct {
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// CurvedConfig holds helical-run settings.
type CurvedConfig struct {
	StepWidth   float64 `yaml:"step_width"`
	Curvature   float64 `yaml:"curvature"` // degrees
	InnerRadius float64 `yaml:"inner_radius"`
	CCW         bool    `yaml:"ccw"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // obj or stl; empty infers from Path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the generators' default parameters.
func Default() *Config {
	straight := stairs.DefaultStraight()
	curved := stairs.DefaultCurved()
	return &Config{
		Stairs: StairsConfig{
			Kind:       KindStraight,
			StepType:   "num_steps",
			NumSteps:   6,
			StepHeight: stairs.DefaultStepHeight,
			Height:     straight.Height,
			Sides:      true,
			Straight: StraightConfig{
				Width: straight.Width,
				Depth: straight.Depth,
			},
			Curved: CurvedConfig{
				StepWidth:   curved.StepWidth,
				Curvature:   curved.Curvature,
				InnerRadius: curved.InnerRadius,
				CCW:         false,
			},
		},
		Output: OutputConfig{
			Path:   "stairs.obj",
			Format: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StraightParams converts the stairs section into generator parameters.
func (s StairsConfig) StraightParams() (stairs.StraightParams, error) {
	sizing, err := stairs.ParseStepSizing(s.StepType, s.NumSteps, s.StepHeight)
	if err != nil {
		return stairs.StraightParams{}, err
	}
	return stairs.StraightParams{
		Width:  s.Straight.Width,
		Height: s.Height,
		Depth:  s.Straight.Depth,
		Steps:  sizing,
		Sides:  s.Sides,
	}, nil
}

// CurvedParams converts the stairs section into generator parameters.
func (s StairsConfig) CurvedParams() (stairs.CurvedParams, error) {
	sizing, err := stairs.ParseStepSizing(s.StepType, s.NumSteps, s.StepHeight)
	if err != nil {
		return stairs.CurvedParams{}, err
	}
	return stairs.CurvedParams{
		Height:      s.Height,
		StepWidth:   s.Curved.StepWidth,
		Steps:       sizing,
		Curvature:   s.Curved.Curvature,
		InnerRadius: s.Curved.InnerRadius,
		CCW:         s.Curved.CCW,
		Sides:       s.Sides,
	}, nil
}

// Generate runs the generator selected by Kind.
func (s StairsConfig) Generate() (*stairs.Stairs, error) {
	switch s.Kind {
	case KindStraight:
		p, err := s.StraightParams()
		if err != nil {
			return nil, err
		}
		return stairs.Straight(p)
	case KindCurved:
		p, err := s.CurvedParams()
		if err != nil {
			return nil, err
		}
		return stairs.Curved(p)
	default:
		return nil, fmt.Errorf("unknown stairs kind %q (want %s or %s)", s.Kind, KindStraight, KindCurved)
	}
}
