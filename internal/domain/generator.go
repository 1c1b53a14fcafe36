package domain

import (
	"fmt"
	"strings"
	"text/template"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// testFileTemplate renders one table-driven smoke test per boundary. The
// generated assertion only checks that the comparison is evaluable at each
// critical value; callers are expected to replace it with domain checks.
const testFileTemplate = `// Generated by boundsmith. Each test probes one boundary at its critical
// values; replace the smoke assertions with domain-specific checks.
package boundaries_test

import "testing"
{{range .}}
// {{.Name}} probes {{printf "%q" .Expression}} ({{.File}}:{{.Line}}).
func {{.Name}}(t *testing.T) {
	for _, val := range []float64{{"{"}}{{.Values}}{{"}"}} {
		result := val {{.Operator}} {{.Value}}
		if _, ok := any(result).(bool); !ok {
			t.Fatalf("boundary %s not evaluable at %v", {{printf "%q" .Expression}}, val)
		}
	}
}
{{end}}`

var testFileTmpl = template.Must(template.New("boundary-tests").Parse(testFileTemplate))

// stubData is the per-boundary view rendered by testFileTemplate.
type stubData struct {
	Name       string
	Expression string
	File       m.Path
	Line       int
	Values     string
	Operator   m.Op
	Value      string
}

// GenerateTestFile renders parametrized test stubs for the given boundaries,
// one per record. Stub names combine the sanitized subject with the
// boundary's position in the sequence, so repeated subjects stay unique.
// Rendering is pure string templating; no scanned code is executed.
func GenerateTestFile(boundaries []m.Boundary) (string, error) {
	stubs := make([]stubData, 0, len(boundaries))

	for i, b := range boundaries {
		values := make([]string, 0, len(b.Triplet))
		for _, v := range b.Triplet {
			values = append(values, v.String())
		}

		stubs = append(stubs, stubData{
			Name:       fmt.Sprintf("TestBoundary_%s_%d", sanitizeIdentifier(b.Variable), i),
			Expression: b.Expression,
			File:       b.File,
			Line:       b.Line,
			Values:     strings.Join(values, ", "),
			Operator:   b.Operator,
			Value:      b.Value.String(),
		})
	}

	var out strings.Builder
	if err := testFileTmpl.Execute(&out, stubs); err != nil {
		return "", fmt.Errorf("render test stubs: %w", err)
	}

	return out.String(), nil
}

// sanitizeIdentifier turns a subject rendering like `len(items)` or
// `obj.Attr` into an identifier-safe token: dots become underscores, every
// other character that cannot appear in a Go identifier is dropped.
func sanitizeIdentifier(subject string) string {
	var b strings.Builder

	for _, r := range subject {
		switch {
		case r == '.':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}
