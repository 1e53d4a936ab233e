package stairs

import (
	"errors"
	"testing"
)

func TestParseStepSizing(t *testing.T) {
	tests := []struct {
		mode string
		want StepSizing
		err  error
	}{
		{"num_steps", NumSteps(6), nil},
		{"", NumSteps(6), nil},
		{"step_height", StepHeight(0.5), nil},
		{"stairs", nil, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := ParseStepSizing(tt.mode, 6, 0.5)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNumStepsResolve(t *testing.T) {
	l, err := NumSteps(4).resolve(3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if l.NumSteps != 4 || l.StepHeight != 0.75 || l.Height != 3 {
		t.Errorf("unexpected layout %+v", l)
	}
}

func TestStepHeightNeverBelowOneStep(t *testing.T) {
	l, err := StepHeight(5).resolve(1)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if l.NumSteps != 1 {
		t.Errorf("expected 1 step, got %d", l.NumSteps)
	}
	// The run grows to one full step rather than shrinking the step.
	if l.Height != 5 {
		t.Errorf("expected height 5, got %v", l.Height)
	}
}
