package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayReport prints the scan summary and one warning block per uncovered
// boundary.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("BoundSmith: %d boundaries, %d uncovered\n\n", len(report.Boundaries), len(report.Uncovered))

	for _, b := range report.Uncovered {
		s.printf("  !  %s:%d  %s\n", b.File, b.Line, b.Expression)
		s.printf("     test with: %s\n\n", formatTriplet(b.Triplet))
	}

	return nil
}

// DisplayJSON emits the boundary records as indented JSON.
func (s *SimpleUI) DisplayJSON(ctx context.Context, boundaries []m.Boundary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := m.EncodeJSONIndent(boundaries)
	if err != nil {
		return fmt.Errorf("encode boundaries: %w", err)
	}

	s.printf("%s\n", data)

	return nil
}

// DisplayCounts renders per-file boundary counts as a table.
func (s *SimpleUI) DisplayCounts(ctx context.Context, counts []m.FileCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCountsTable(counts))

	return nil
}

// DisplayGenerated reports where test stubs were written.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, count int, target m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generated %d tests -> %s\n", count, target)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// formatTriplet renders a triplet the way reports show it: (below, at, above).
func formatTriplet(t m.Triplet) string {
	return fmt.Sprintf("(%s, %s, %s)", t[0], t[1], t[2])
}

// renderCountsTable builds the per-file counts table shared by the plain and
// interactive front-ends.
func renderCountsTable(counts []m.FileCount) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Boundaries"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, c := range counts {
		table.Append([]string{string(c.Path), fmt.Sprintf("%d", c.Count)})

		total += c.Count
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}
