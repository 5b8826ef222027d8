package arithmetic

import (
	"context"
	"math"

	"github.com/vk/blockforge/internal/handlers"
)

// Pack implements the handlers.Pack interface for this package.
type Pack struct{}

// Add sums two numeric slots.
func Add(ctx context.Context, a, b float64) (any, error) {
	return a + b, nil
}

// IsDivisible reports whether n divides evenly by d. A zero divisor is
// simply false rather than an error; predicates have no error slot in the
// palette.
func IsDivisible(ctx context.Context, n, d float64) (any, error) {
	if d == 0 {
		return false, nil
	}
	return math.Mod(n, d) == 0, nil
}

// Clamp limits value to the inclusive [min, max] range.
func Clamp(ctx context.Context, value, min, max float64) (any, error) {
	if min > max {
		min, max = max, min
	}
	return math.Min(math.Max(value, min), max), nil
}

// Register registers the handlers with the engine.
func (p *Pack) Register(h *handlers.Handlers) {
	h.Register("add", Add)
	h.Register("is_divisible", IsDivisible)
	h.Register("clamp", Clamp)
}
