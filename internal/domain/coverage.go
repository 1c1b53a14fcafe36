package domain

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"math"
	"sort"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// floatTolerance bounds the representation error accepted when matching
// float triplet values against observed test literals.
const floatTolerance = 1e-6

// ExtractTestValues collects every plain numeric literal mentioned anywhere
// in a test unit. This is a degenerate literal scan: no comparison structure
// is required, any constant counts. A negated literal contributes both the
// negated value and the bare magnitude.
func (e *extractor) ExtractTestValues(ctx context.Context, src []byte) ([]m.Number, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	file, err := e.Parse(fset, "test-source", src)
	if err != nil {
		return nil, fmt.Errorf("parse test source: %w", err)
	}

	values := make([]m.Number, 0)

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.BasicLit:
			if v, ok := basicLitValue(node); ok {
				values = append(values, v)
			}
		case *ast.UnaryExpr:
			if v, ok := literalValue(node); ok {
				values = append(values, v)
			}
		}

		return true
	})

	return values, nil
}

// ValueSet is the set of numeric literals observed in test sources. Values
// of either kind compare numerically, so an observed 3.0 covers an integer
// boundary at 3.
type ValueSet struct {
	sorted []float64
}

// NewValueSet builds a ValueSet from observed literals.
func NewValueSet(values []m.Number) *ValueSet {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		sorted = append(sorted, v.Float())
	}

	sort.Float64s(sorted)

	return &ValueSet{sorted: sorted}
}

// Empty reports whether no literal was observed.
func (s *ValueSet) Empty() bool {
	return len(s.sorted) == 0
}

// Contains reports whether the value was observed, within floatTolerance.
func (s *ValueSet) Contains(n m.Number) bool {
	v := n.Float()
	i := sort.SearchFloat64s(s.sorted, v-floatTolerance)

	return i < len(s.sorted) && math.Abs(s.sorted[i]-v) <= floatTolerance
}

// FindUncovered partitions boundaries against the observed value set and
// returns those with at least one triplet value absent. A boundary is
// covered only when all three values appear somewhere in the set; there is
// no requirement that they appear in the same test or near the code path
// containing the boundary, so coverage here is a coarse syntactic proxy.
func FindUncovered(boundaries []m.Boundary, values *ValueSet) []m.Boundary {
	uncovered := make([]m.Boundary, 0)

	for _, b := range boundaries {
		if !tripletCovered(b.Triplet, values) {
			uncovered = append(uncovered, b)
		}
	}

	return uncovered
}

func tripletCovered(triplet m.Triplet, values *ValueSet) bool {
	for _, v := range triplet {
		if !values.Contains(v) {
			return false
		}
	}

	return true
}
