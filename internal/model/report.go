package model

// Report is the outcome of one scan invocation: every boundary found plus
// the subset whose triplet is not fully exercised by observed test literals.
type Report struct {
	Boundaries []Boundary `json:"boundaries"`
	Uncovered  []Boundary `json:"uncovered"`

	// HasTests records whether a test path contributed observed literals.
	// Without one every boundary is trivially uncovered and the scan must
	// not be treated as a coverage failure.
	HasTests bool `json:"has_tests"`
}

// Covered reports how many boundaries had all three triplet values observed.
func (r Report) Covered() int {
	return len(r.Boundaries) - len(r.Uncovered)
}
