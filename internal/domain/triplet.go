package domain

import (
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// Step sizes around a boundary literal. Integer boundaries probe the
// adjacent integers; float boundaries probe a tenth either side.
const (
	intStep   = int64(1)
	floatStep = 0.1
)

// buildTriplet computes the three critical values around a literal:
// (value - step, value, value + step). The middle element always equals the
// literal and the triplet is strictly increasing. Integer neighbors are
// computed in int64 so literals beyond 2^53 keep exact adjacent values; float
// arithmetic is plain float64 and callers comparing float triplets must use a
// tolerance.
func buildTriplet(value m.Number) m.Triplet {
	if value.IsInt {
		return m.Triplet{
			m.NewInt(value.Int - intStep),
			value,
			m.NewInt(value.Int + intStep),
		}
	}

	return m.Triplet{
		m.NewFloat(value.Real - floatStep),
		value,
		m.NewFloat(value.Real + floatStep),
	}
}
