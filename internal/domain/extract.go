// Package domain contains the core boundary extraction workflow and logic.
package domain

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"

	"boundsmith.dev/pkg/boundsmith/internal/adapter"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// compOps maps the Go comparison tokens to boundary operators. Any other
// binary operator (including && and ||, which the traversal descends
// through) yields no boundary.
var compOps = map[token.Token]m.Op{
	token.GTR: m.OpGT,
	token.GEQ: m.OpGTE,
	token.LSS: m.OpLT,
	token.LEQ: m.OpLTE,
	token.EQL: m.OpEQ,
	token.NEQ: m.OpNEQ,
}

// flipped gives the operator for the mirrored reading of a comparison, so
// `3 < x` resolves as `x > 3`. Equality operators are their own mirror.
var flipped = map[m.Op]m.Op{
	m.OpGT:  m.OpLT,
	m.OpLT:  m.OpGT,
	m.OpGTE: m.OpLTE,
	m.OpLTE: m.OpGTE,
	m.OpEQ:  m.OpEQ,
	m.OpNEQ: m.OpNEQ,
}

// Extractor defines the boundary extraction interface consumed by the
// workflow layer.
type Extractor interface {
	// ExtractSource parses one source unit and returns its boundaries in
	// source order. A unit that fails to parse yields an error and zero
	// boundaries; callers decide whether that is fatal.
	ExtractSource(ctx context.Context, src []byte, label m.Path) ([]m.Boundary, error)

	// ExtractTestValues parses one test unit and returns every numeric
	// literal it mentions.
	ExtractTestValues(ctx context.Context, src []byte) ([]m.Number, error)
}

// extractor handles pure extraction logic on top of the parsing adapter.
type extractor struct {
	adapter.GoFileAdapter
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(goFiles adapter.GoFileAdapter) Extractor {
	return &extractor{GoFileAdapter: goFiles}
}

func (e *extractor) ExtractSource(ctx context.Context, src []byte, label m.Path) ([]m.Boundary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	file, err := e.Parse(fset, string(label), src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", label, err)
	}

	return ExtractBoundaries(fset, file, label), nil
}

// ExtractBoundaries walks a parsed file and emits one Boundary per
// resolvable comparison pair, in the order a single top-to-bottom traversal
// encounters them. The walk descends through boolean combinations, nested
// statement bodies, and switch guards, so every comparison sub-expression is
// visited exactly once.
func ExtractBoundaries(fset *token.FileSet, file *ast.File, label m.Path) []m.Boundary {
	boundaries := make([]m.Boundary, 0)

	ast.Inspect(file, func(n ast.Node) bool {
		binExpr, ok := n.(*ast.BinaryExpr)
		if !ok {
			return true
		}

		op, ok := compOps[binExpr.Op]
		if !ok {
			return true
		}

		line := fset.Position(binExpr.Pos()).Line
		expr := renderExpr(fset, binExpr)

		// Forward reading: subject on the left, literal on the right.
		if b, ok := resolvePair(fset, binExpr.X, op, binExpr.Y, label, line, expr); ok {
			boundaries = append(boundaries, b)
		}

		// Mirrored reading: literal on the left, subject on the right. Both
		// attempts are evaluated independently; unresolvable pairs are
		// silently dropped, never emitted with placeholder values.
		if b, ok := resolvePair(fset, binExpr.Y, flipped[op], binExpr.X, label, line, expr); ok {
			boundaries = append(boundaries, b)
		}

		return true
	})

	return boundaries
}

// resolvePair attempts to read one comparison as (subject op literal). It
// succeeds only when both the subject name and the literal value resolve.
func resolvePair(fset *token.FileSet, subjectExpr ast.Expr, op m.Op, literalExpr ast.Expr, label m.Path, line int, expr string) (m.Boundary, bool) {
	name, ok := subjectName(fset, subjectExpr)
	if !ok {
		return m.Boundary{}, false
	}

	value, ok := literalValue(literalExpr)
	if !ok {
		return m.Boundary{}, false
	}

	return m.Boundary{
		File:       label,
		Line:       line,
		Variable:   name,
		Operator:   op,
		Value:      value,
		Triplet:    buildTriplet(value),
		Expression: expr,
	}, true
}

// subjectName resolves the compared subject to a canonical textual name. A
// bare identifier resolves to itself; calls, selectors, and index
// expressions resolve to a deterministic rendering of the expression so
// `len(items)` and `obj.Attr` become stable string keys. Any other shape is
// not a usable subject.
func subjectName(fset *token.FileSet, expr ast.Expr) (string, bool) {
	switch node := expr.(type) {
	case *ast.Ident:
		return node.Name, true
	case *ast.CallExpr, *ast.SelectorExpr, *ast.IndexExpr:
		return renderExpr(fset, node), true
	}

	return "", false
}

// literalValue resolves a plain or unary-negated numeric constant. No
// partial evaluation is attempted: arithmetic expressions, named constants,
// and non-numeric literals are not resolvable.
func literalValue(expr ast.Expr) (m.Number, bool) {
	switch node := expr.(type) {
	case *ast.BasicLit:
		return basicLitValue(node)
	case *ast.UnaryExpr:
		if node.Op != token.SUB {
			return m.Number{}, false
		}

		lit, ok := node.X.(*ast.BasicLit)
		if !ok {
			return m.Number{}, false
		}

		value, ok := basicLitValue(lit)
		if !ok {
			return m.Number{}, false
		}

		return value.Neg(), true
	}

	return m.Number{}, false
}

func basicLitValue(lit *ast.BasicLit) (m.Number, bool) {
	switch lit.Kind {
	case token.INT:
		v, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return m.Number{}, false
		}

		return m.NewInt(v), true

	case token.FLOAT:
		v, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return m.Number{}, false
		}

		return m.NewFloat(v), true
	}

	return m.Number{}, false
}

// renderExpr prints an expression node back to source text. The rendering
// depends only on the static expression shape, so it is reproducible across
// scans of the same source.
func renderExpr(fset *token.FileSet, node ast.Node) string {
	var buf bytes.Buffer

	if err := printer.Fprint(&buf, fset, node); err != nil {
		return ""
	}

	return buf.String()
}
