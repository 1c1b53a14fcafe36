package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

func TestExtractTestValues(t *testing.T) {
	src := []byte(`package probe_test

import "testing"

func TestThing(t *testing.T) {
	if thing(0) != 42 {
		t.Fatal("unexpected")
	}

	_ = thing(-10)
	_ = scale(0.5)
}
`)

	values, err := newTestExtractor().ExtractTestValues(context.Background(), src)
	require.NoError(t, err)

	set := NewValueSet(values)
	assert.True(t, set.Contains(m.NewInt(0)))
	assert.True(t, set.Contains(m.NewInt(42)))
	assert.True(t, set.Contains(m.NewInt(-10)))
	assert.True(t, set.Contains(m.NewFloat(0.5)))
	assert.False(t, set.Contains(m.NewInt(7)))
}

func TestExtractTestValuesMalformedSource(t *testing.T) {
	values, err := newTestExtractor().ExtractTestValues(context.Background(), []byte("func {"))

	require.Error(t, err)
	assert.Nil(t, values)
}

func TestValueSetContainsWithTolerance(t *testing.T) {
	set := NewValueSet([]m.Number{m.NewFloat(0.4), m.NewFloat(0.6)})

	// 0.5 - 0.1 carries float64 representation error; membership must still
	// hold within tolerance.
	assert.True(t, set.Contains(m.NewFloat(0.5-0.1)))
	assert.False(t, set.Contains(m.NewFloat(0.5)))
}

func TestValueSetCrossKindEquality(t *testing.T) {
	set := NewValueSet([]m.Number{m.NewFloat(3.0)})

	assert.True(t, set.Contains(m.NewInt(3)), "an observed 3.0 covers an integer boundary at 3")
}

func TestFindUncoveredDetectsGap(t *testing.T) {
	boundaries := extractSnippet(t, "if retry > 3 {\n\t\treturn\n\t}")
	require.Len(t, boundaries, 1)

	uncovered := FindUncovered(boundaries, NewValueSet([]m.Number{m.NewInt(0), m.NewInt(10)}))

	require.Len(t, uncovered, 1)
	assert.Equal(t, m.NewInt(3), uncovered[0].Value)
}

func TestFindUncoveredFullTripletIsCovered(t *testing.T) {
	boundaries := extractSnippet(t, "if x > 3 {\n\t\treturn\n\t}")

	uncovered := FindUncovered(boundaries, NewValueSet([]m.Number{m.NewInt(2), m.NewInt(3), m.NewInt(4)}))

	assert.Empty(t, uncovered)
}

func TestFindUncoveredPartialTripletIsUncovered(t *testing.T) {
	boundaries := extractSnippet(t, "if x > 3 {\n\t\treturn\n\t}")

	// Two of three critical values observed: still a gap.
	uncovered := FindUncovered(boundaries, NewValueSet([]m.Number{m.NewInt(3), m.NewInt(4)}))

	assert.Len(t, uncovered, 1)
}

func TestFindUncoveredEmptySetLeavesAllUncovered(t *testing.T) {
	boundaries := extractSnippet(t, "_ = x > 3\n\t_ = y < 10")

	uncovered := FindUncovered(boundaries, NewValueSet(nil))

	assert.Equal(t, boundaries, uncovered)
}
