package stairs

import (
	"errors"
	"fmt"
	"math"
)

// Parameter validation errors. Returned errors wrap one of these and name
// the violated constraint.
var (
	ErrInvalidParameter   = errors.New("stairs: invalid parameter")
	ErrDegenerateGeometry = errors.New("stairs: degenerate geometry")
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fitsFloat32 reports whether v stays finite and non-zero once stored in a
// float32 mesh buffer.
func fitsFloat32(v float64) bool {
	f := float64(float32(v))
	return f != 0 && !math.IsInf(f, 0)
}

// requirePositive rejects zero, negative and non-finite values, and values
// a float32 buffer cannot hold.
func requirePositive(name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidParameter, name, v)
	}
	if !fitsFloat32(v) {
		return fmt.Errorf("%w: %s %v is out of float32 range", ErrInvalidParameter, name, v)
	}
	return nil
}

// requireUsable rejects derived quantities that collapsed to zero or
// overflowed, in float64 or in float32.
func requireUsable(name string, v float64) error {
	if !isFinite(v) || !fitsFloat32(v) {
		return fmt.Errorf("%w: derived %s is %v", ErrDegenerateGeometry, name, v)
	}
	return nil
}
