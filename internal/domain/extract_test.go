package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boundsmith.dev/pkg/boundsmith/internal/adapter"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

func newTestExtractor() Extractor {
	return NewExtractor(adapter.NewLocalGoFileAdapter())
}

// extractSnippet wraps a statement in a minimal compilable file and extracts
// its boundaries.
func extractSnippet(t *testing.T, body string) []m.Boundary {
	t.Helper()

	src := "package probe\n\nfunc probe() {\n\t" + body + "\n}\n"

	boundaries, err := newTestExtractor().ExtractSource(context.Background(), []byte(src), "probe.go")
	require.NoError(t, err)

	return boundaries
}

func TestExtractSimpleGreaterThan(t *testing.T) {
	boundaries := extractSnippet(t, "if x > 3 {\n\t\t_ = x\n\t}")

	require.Len(t, boundaries, 1)

	b := boundaries[0]
	assert.Equal(t, "x", b.Variable)
	assert.Equal(t, m.OpGT, b.Operator)
	assert.Equal(t, m.NewInt(3), b.Value)
	assert.Equal(t, m.Triplet{m.NewInt(2), m.NewInt(3), m.NewInt(4)}, b.Triplet)
	assert.Equal(t, "x > 3", b.Expression)
	assert.Equal(t, m.Path("probe.go"), b.File)
	assert.Equal(t, 4, b.Line)
}

func TestExtractAllOperators(t *testing.T) {
	boundaries := extractSnippet(t,
		"_ = a >= 10\n\t_ = b < 0\n\t_ = c == 5\n\t_ = d != -1")

	require.Len(t, boundaries, 4)

	ops := map[string]m.Op{}
	for _, b := range boundaries {
		ops[b.Variable] = b.Operator
	}

	assert.Equal(t, m.OpGTE, ops["a"])
	assert.Equal(t, m.OpLT, ops["b"])
	assert.Equal(t, m.OpEQ, ops["c"])
	assert.Equal(t, m.OpNEQ, ops["d"])
}

// The Go spelling of a chained comparison is two &&-joined pairs; the
// mirrored resolution attempt turns `0 < x` into a boundary for x at 0.
func TestExtractChainedComparison(t *testing.T) {
	boundaries := extractSnippet(t, "if 0 < x && x < 100 {\n\t\t_ = x\n\t}")

	require.Len(t, boundaries, 2)

	assert.Equal(t, "x", boundaries[0].Variable)
	assert.Equal(t, m.OpGT, boundaries[0].Operator)
	assert.Equal(t, m.NewInt(0), boundaries[0].Value)

	assert.Equal(t, "x", boundaries[1].Variable)
	assert.Equal(t, m.OpLT, boundaries[1].Operator)
	assert.Equal(t, m.NewInt(100), boundaries[1].Value)
}

func TestExtractCallSubject(t *testing.T) {
	boundaries := extractSnippet(t, "if len(items) == 0 {\n\t\treturn\n\t}")

	require.Len(t, boundaries, 1)

	b := boundaries[0]
	assert.Contains(t, b.Variable, "len")
	assert.Equal(t, "len(items)", b.Variable)
	assert.Equal(t, m.NewInt(0), b.Value)
	assert.Equal(t, m.Triplet{m.NewInt(-1), m.NewInt(0), m.NewInt(1)}, b.Triplet)
}

func TestExtractSelectorAndIndexSubjects(t *testing.T) {
	boundaries := extractSnippet(t, "_ = cfg.Limit >= 10\n\t_ = xs[0] > 7")

	require.Len(t, boundaries, 2)
	assert.Equal(t, "cfg.Limit", boundaries[0].Variable)
	assert.Equal(t, "xs[0]", boundaries[1].Variable)
}

func TestExtractNegativeLiteral(t *testing.T) {
	boundaries := extractSnippet(t, "if temp <= -10 {\n\t\treturn\n\t}")

	require.Len(t, boundaries, 1)

	b := boundaries[0]
	assert.Equal(t, m.NewInt(-10), b.Value)
	assert.Equal(t, m.Triplet{m.NewInt(-11), m.NewInt(-10), m.NewInt(-9)}, b.Triplet)
}

func TestExtractFloatBoundary(t *testing.T) {
	boundaries := extractSnippet(t, "if ratio > 0.5 {\n\t\treturn\n\t}")

	require.Len(t, boundaries, 1)

	b := boundaries[0]
	assert.False(t, b.Value.IsInt)
	assert.InDelta(t, 0.5, b.Value.Real, 1e-9)
	assert.InDelta(t, 0.4, b.Triplet[0].Real, 1e-6)
	assert.InDelta(t, 0.5, b.Triplet[1].Real, 1e-6)
	assert.InDelta(t, 0.6, b.Triplet[2].Real, 1e-6)
}

func TestExtractLargeIntegerBoundary(t *testing.T) {
	boundaries := extractSnippet(t, "if ts > 1700000000000000001 {\n\t\treturn\n\t}")

	require.Len(t, boundaries, 1)

	b := boundaries[0]
	assert.Equal(t, m.NewInt(1700000000000000001), b.Value)
	assert.Equal(t, m.Triplet{
		m.NewInt(1700000000000000000),
		m.NewInt(1700000000000000001),
		m.NewInt(1700000000000000002),
	}, b.Triplet)
}

func TestExtractTripletInvariants(t *testing.T) {
	boundaries := extractSnippet(t,
		"_ = a > 3\n\t_ = b <= -10\n\t_ = c == 0\n\t_ = ratio < 2.5")

	require.Len(t, boundaries, 4)

	for _, b := range boundaries {
		assert.Equal(t, b.Value, b.Triplet[1], "middle triplet value must equal the literal")
		assert.Less(t, b.Triplet[0].Float(), b.Triplet[1].Float())
		assert.Less(t, b.Triplet[1].Float(), b.Triplet[2].Float())
		assert.Contains(t, []m.Op{m.OpGT, m.OpGTE, m.OpLT, m.OpLTE, m.OpEQ, m.OpNEQ}, b.Operator)
	}
}

func TestExtractUnresolvablePairs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"both literals", "_ = 3 > 2"},
		{"both subjects", "_ = x > y"},
		{"arithmetic literal", "_ = x > 2+1"},
		{"string literal", "_ = name == \"root\""},
		{"boolean literal", "_ = ok == true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, extractSnippet(t, tt.body))
		})
	}
}

func TestExtractDescendsNestedBodies(t *testing.T) {
	boundaries := extractSnippet(t,
		"if x > 3 {\n\t\tif y < 2 {\n\t\t\t_ = y\n\t\t}\n\t}\n\tswitch {\n\tcase z >= 5:\n\t}")

	require.Len(t, boundaries, 3)
	assert.Equal(t, "x", boundaries[0].Variable)
	assert.Equal(t, "y", boundaries[1].Variable)
	assert.Equal(t, "z", boundaries[2].Variable)
}

func TestExtractBooleanCombination(t *testing.T) {
	boundaries := extractSnippet(t, "if x > 0 || y < 10 {\n\t\t_ = x\n\t}")

	vars := make([]string, 0, len(boundaries))
	for _, b := range boundaries {
		vars = append(vars, b.Variable)
	}

	assert.Contains(t, vars, "x")
	assert.Contains(t, vars, "y")
}

func TestExtractNoBoundariesInPlainCode(t *testing.T) {
	boundaries := extractSnippet(t, "x := 1\n\ty := x + 2\n\t_ = y")

	assert.Empty(t, boundaries)
}

func TestExtractIsIdempotent(t *testing.T) {
	src := []byte("package probe\n\nfunc probe(x int, ratio float64) {\n\t_ = x > 3\n\t_ = ratio <= 0.5\n\t_ = 0 < x && x < 100\n}\n")
	ex := newTestExtractor()

	first, err := ex.ExtractSource(context.Background(), src, "probe.go")
	require.NoError(t, err)

	second, err := ex.ExtractSource(context.Background(), src, "probe.go")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractEmptyFileYieldsNoBoundaries(t *testing.T) {
	boundaries, err := newTestExtractor().ExtractSource(context.Background(), []byte("package probe\n"), "probe.go")

	require.NoError(t, err)
	assert.Empty(t, boundaries)
}

func TestExtractMalformedSourceReturnsError(t *testing.T) {
	boundaries, err := newTestExtractor().ExtractSource(context.Background(), []byte("package probe\n\nfunc {"), "broken.go")

	require.Error(t, err)
	assert.ErrorContains(t, err, "parse broken.go")
	assert.Nil(t, boundaries)
}

func TestExtractRepeatedBoundariesAreDistinctFindings(t *testing.T) {
	boundaries := extractSnippet(t, "_ = x > 3\n\t_ = x > 3")

	require.Len(t, boundaries, 2)
	assert.Equal(t, boundaries[0].Variable, boundaries[1].Variable)
	assert.Equal(t, boundaries[0].Value, boundaries[1].Value)
	assert.NotEqual(t, boundaries[0].Line, boundaries[1].Line)
}
