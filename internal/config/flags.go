package config

import (
	"errors"
	"flag"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagKind        = flag.String("kind", "", "Staircase kind: straight or curved")
	flagSteps       = flag.Int("steps", 0, "Number of steps (num_steps mode; excludes -step-height)")
	flagStepHeight  = flag.Float64("step-height", 0, "Fixed step height (step_height mode; excludes -steps)")
	flagHeight      = flag.Float64("height", 0, "Total height")
	flagWidth       = flag.Float64("width", 0, "Straight run width")
	flagDepth       = flag.Float64("depth", 0, "Straight run depth")
	flagStepWidth   = flag.Float64("step-width", 0, "Curved tread width")
	flagCurvature   = flag.Float64("curvature", 0, "Curved sweep in degrees")
	flagInnerRadius = flag.Float64("inner-radius", 0, "Curved inner radius")
	flagCCW         = flag.Bool("ccw", false, "Sweep counter-clockwise")
	flagNoSides     = flag.Bool("no-sides", false, "Omit side, bottom and back faces")
	flagOut         = flag.String("out", "", "Output file path")
	flagFormat      = flag.String("format", "", "Output format: obj, stl or stl-ascii (default: from -out extension)")
	flagSaveConfig  = flag.String("save-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// ErrConflictingFlags is returned when flags select both step sizing modes.
var ErrConflictingFlags = errors.New("config: -steps and -step-height are mutually exclusive")

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagSteps > 0 && *flagStepHeight > 0 {
		return ErrConflictingFlags
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagKind != "" {
		cfg.Stairs.Kind = *flagKind
	}
	if *flagSteps > 0 {
		cfg.Stairs.StepType = "num_steps"
		cfg.Stairs.NumSteps = *flagSteps
	}
	if *flagStepHeight > 0 {
		cfg.Stairs.StepType = "step_height"
		cfg.Stairs.StepHeight = *flagStepHeight
	}
	if *flagHeight > 0 {
		cfg.Stairs.Height = *flagHeight
	}
	if *flagWidth > 0 {
		cfg.Stairs.Straight.Width = *flagWidth
	}
	if *flagDepth > 0 {
		cfg.Stairs.Straight.Depth = *flagDepth
	}
	if *flagStepWidth > 0 {
		cfg.Stairs.Curved.StepWidth = *flagStepWidth
	}
	if *flagCurvature > 0 {
		cfg.Stairs.Curved.Curvature = *flagCurvature
	}
	if *flagInnerRadius > 0 {
		cfg.Stairs.Curved.InnerRadius = *flagInnerRadius
	}
	if *flagCCW {
		cfg.Stairs.Curved.CCW = true
	}
	if *flagNoSides {
		cfg.Stairs.Sides = false
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	return nil
}
