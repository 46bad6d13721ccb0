package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Uniform is a continuous uniform distribution over [Min, Max] of simulated time.
type Uniform struct {
	Min time.Duration
	Max time.Duration
}

// Around returns the distribution mean±spread
func Around(mean, spread time.Duration) Uniform {
	return Uniform{Min: mean - spread, Max: mean + spread}
}

// Sample draws a duration from the distribution
func (u Uniform) Sample(rng *rand.Rand) time.Duration {
	if u.Max <= u.Min {
		return u.Min
	}
	return u.Min + time.Duration(rng.Float64()*float64(u.Max-u.Min))
}

// Validate checks that the interval is well formed
func (u Uniform) Validate() error {
	if u.Min < 0 {
		return fmt.Errorf("min must not be negative, got %s", u.Min)
	}
	if u.Max < u.Min {
		return fmt.Errorf("max %s must not be below min %s", u.Max, u.Min)
	}
	return nil
}

func (u Uniform) String() string {
	return fmt.Sprintf("U[%s, %s]", u.Min, u.Max)
}
