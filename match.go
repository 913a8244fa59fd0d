package spatialhash

import (
	"math"

	"github.com/hupe1980/spatialhash/quantize"
)

// Machine epsilons of the two float widths, 2^-23 and 2^-52.
const (
	epsilonFloat32 = 1.1920928955078125e-07
	epsilonFloat64 = 2.220446049250313e-16
)

type scalarKind uint8

const (
	kindInteger scalarKind = iota
	kindFloat32
	kindFloat64
)

// kindOf classifies the coordinate type without reflection. Converting 0.5
// to an integer type truncates to zero; converting 1e-300 to float32
// underflows to zero. Both probes use runtime conversions of variables, so
// they stay legal for every type in the Number set.
func kindOf[C quantize.Number]() scalarKind {
	half := 0.5
	if C(half) == 0 {
		return kindInteger
	}
	tiny := 1e-300
	if C(tiny) != 0 {
		return kindFloat64
	}
	return kindFloat32
}

// pointsMatch compares two points of equal length under the coordinate-match
// policy: exact equality for integer types, absolute machine-epsilon
// tolerance for floating point types.
//
// The tolerance is absolute, not scaled to magnitude. For large coordinates
// it degenerates to exact comparison; for values near zero it is permissive.
func pointsMatch[C quantize.Number](a, b []C) bool {
	switch kindOf[C]() {
	case kindFloat32:
		return floatsMatch(a, b, epsilonFloat32)
	case kindFloat64:
		return floatsMatch(a, b, epsilonFloat64)
	default:
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
}

func floatsMatch[C quantize.Number](a, b []C, epsilon float64) bool {
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > epsilon {
			return false
		}
	}
	return true
}
