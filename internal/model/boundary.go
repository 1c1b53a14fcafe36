// Package model defines the data structures for boundary scanning.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a comparison operator as it appears in a boundary finding.
type Op string

// The six comparison operators a boundary can carry.
const (
	OpGT  Op = ">"
	OpGTE Op = ">="
	OpLT  Op = "<"
	OpLTE Op = "<="
	OpEQ  Op = "=="
	OpNEQ Op = "!="
)

// Number is a numeric literal value that remembers whether it was written as
// an integer or a floating-point constant. The distinction drives the triplet
// step size and the textual rendering in reports and generated tests. Integer
// literals keep their exact int64 value; a float64 cannot represent integers
// beyond 2^53 (nanosecond timestamps land there) without collapsing adjacent
// values.
type Number struct {
	Int   int64
	Real  float64
	IsInt bool
}

// NewInt builds an integer Number.
func NewInt(v int64) Number {
	return Number{Int: v, IsInt: true}
}

// NewFloat builds a floating-point Number.
func NewFloat(v float64) Number {
	return Number{Real: v, IsInt: false}
}

// Float returns the numeric value as a float64, for cross-kind comparison.
func (n Number) Float() float64 {
	if n.IsInt {
		return float64(n.Int)
	}

	return n.Real
}

// Neg returns the arithmetic negation, preserving the kind.
func (n Number) Neg() Number {
	if n.IsInt {
		return NewInt(-n.Int)
	}

	return NewFloat(-n.Real)
}

// String renders the number the way it would appear in source: integers
// without a fraction, floats in shortest form.
func (n Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}

	return strconv.FormatFloat(n.Real, 'g', -1, 64)
}

// MarshalJSON emits the value as a bare JSON number, keeping integers free of
// a fractional part. Part of the stable report contract.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON restores a Number, recovering the int/float kind from the
// token shape.
func (n *Number) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))

	if !strings.ContainsAny(token, ".eE") {
		v, err := strconv.ParseInt(token, 10, 64)
		if err == nil {
			*n = NewInt(v)
			return nil
		}
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", token, err)
	}

	*n = NewFloat(v)

	return nil
}

// Triplet holds the three critical values around a boundary literal:
// just below, at, and just above.
type Triplet [3]Number

// Boundary is a single extracted comparison finding. Records are immutable
// once produced and are never deduplicated: the same (variable, operator,
// value) at two source locations is two findings.
//
// Field order matches the external JSON contract:
// file, line, var, op, value, triplet, expr.
type Boundary struct {
	File       Path    `json:"file"`
	Line       int     `json:"line"`
	Variable   string  `json:"var"`
	Operator   Op      `json:"op"`
	Value      Number  `json:"value"`
	Triplet    Triplet `json:"triplet"`
	Expression string  `json:"expr"`
}
