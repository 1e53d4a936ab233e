package stairs

import (
	"fmt"
	"math"
)

// MaxSteps bounds the number of steps a single run may resolve to.
const MaxSteps = 100000

// DefaultStepHeight is the riser height new configurations start from.
const DefaultStepHeight = 0.5

// StepSizing decides how a run's height is divided into steps. It is either
// NumSteps or StepHeight.
type StepSizing interface {
	resolve(height float64) (Layout, error)
}

// NumSteps divides the requested height into exactly n equal steps.
type NumSteps int

// StepHeight uses a fixed riser height and snaps the total height down to a
// whole number of steps (at least one).
type StepHeight float64

// Layout is the resolved step arrangement of a run.
type Layout struct {
	NumSteps   int
	StepHeight float64
	StepDepth  float64
	// Height is the effective total height. In StepHeight mode it may be
	// lower than requested.
	Height float64
	// DeltaAngle is the sweep per step in radians. Zero for straight runs.
	DeltaAngle float64
}

func (n NumSteps) resolve(height float64) (Layout, error) {
	if n < 1 || n > MaxSteps {
		return Layout{}, fmt.Errorf("%w: number of steps must be in [1, %d], got %d", ErrInvalidParameter, MaxSteps, int(n))
	}
	l := Layout{
		NumSteps:   int(n),
		StepHeight: height / float64(n),
		Height:     height,
	}
	if err := requireUsable("step height", l.StepHeight); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (h StepHeight) resolve(height float64) (Layout, error) {
	if err := requirePositive("step height", float64(h)); err != nil {
		return Layout{}, err
	}
	count := math.Max(math.Floor(height/float64(h)), 1)
	if count > MaxSteps {
		return Layout{}, fmt.Errorf("%w: height %v at step height %v needs %v steps, limit is %d",
			ErrInvalidParameter, height, float64(h), count, MaxSteps)
	}
	n := int(count)
	l := Layout{
		NumSteps:   n,
		StepHeight: float64(h),
		Height:     float64(h) * float64(n),
	}
	if err := requireUsable("height", l.Height); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// ParseStepSizing builds a StepSizing from a mode name as used in config
// files: "num_steps" or "step_height".
func ParseStepSizing(mode string, numSteps int, stepHeight float64) (StepSizing, error) {
	switch mode {
	case "", "num_steps":
		return NumSteps(numSteps), nil
	case "step_height":
		return StepHeight(stepHeight), nil
	default:
		return nil, fmt.Errorf("%w: unknown step type %q", ErrInvalidParameter, mode)
	}
}
