package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		name     string
		number   Number
		expected string
	}{
		{"positive int", NewInt(3), "3"},
		{"negative int", NewInt(-10), "-10"},
		{"zero", NewInt(0), "0"},
		{"beyond float64 precision", NewInt(1700000000000000001), "1700000000000000001"},
		{"float", NewFloat(0.5), "0.5"},
		{"negative float", NewFloat(-0.5), "-0.5"},
		{"whole float", NewFloat(5.0), "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.number.String())
		})
	}
}

func TestNumberJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		number Number
	}{
		{"int", NewInt(42)},
		{"negative int", NewInt(-11)},
		{"int beyond float64 precision", NewInt(1700000000000000001)},
		{"float", NewFloat(0.1)},
		{"scientific range float", NewFloat(1e-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.number)
			require.NoError(t, err)

			var decoded Number
			require.NoError(t, json.Unmarshal(data, &decoded))

			assert.Equal(t, tt.number, decoded)
		})
	}
}

// TestBoundaryJSONContract pins the external record shape: field names and
// order are a stable contract for downstream tooling.
func TestBoundaryJSONContract(t *testing.T) {
	b := Boundary{
		File:       "pkg/retry.go",
		Line:       12,
		Variable:   "retries",
		Operator:   OpGT,
		Value:      NewInt(3),
		Triplet:    Triplet{NewInt(2), NewInt(3), NewInt(4)},
		Expression: "retries > 3",
	}

	data, err := EncodeJSON(b)
	require.NoError(t, err)

	expected := `{"file":"pkg/retry.go","line":12,"var":"retries","op":">","value":3,"triplet":[2,3,4],"expr":"retries > 3"}`
	assert.JSONEq(t, expected, string(data))
	assert.Equal(t, expected, string(data), "field order and unescaped operators are part of the contract")
	assert.NotContains(t, string(data), `\u003e`)
}

func TestBoundaryJSONFloatValue(t *testing.T) {
	b := Boundary{
		File:     "ratio.go",
		Line:     3,
		Variable: "ratio",
		Operator: OpGT,
		Value:    NewFloat(0.5),
		Triplet:  Triplet{NewFloat(0.4), NewFloat(0.5), NewFloat(0.6)},
	}

	data, err := EncodeJSON(b)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"value":0.5`)
	assert.Contains(t, string(data), `"triplet":[0.4,0.5,0.6]`)
}

func TestReportCovered(t *testing.T) {
	report := Report{
		Boundaries: make([]Boundary, 5),
		Uncovered:  make([]Boundary, 2),
	}

	assert.Equal(t, 3, report.Covered())
}
