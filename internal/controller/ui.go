// Package controller provides output front-ends for displaying scan results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// UI defines the interface for displaying scan output. Implementations can
// use different output methods (simple text, TUI).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)

	// DisplayReport renders a scan summary and its uncovered boundaries.
	DisplayReport(ctx context.Context, report m.Report) error

	// DisplayJSON emits the ordered boundary record sequence as JSON. This
	// output shape is a stable contract for external tooling.
	DisplayJSON(ctx context.Context, boundaries []m.Boundary) error

	// DisplayCounts renders per-file boundary counts.
	DisplayCounts(ctx context.Context, counts []m.FileCount) error

	// DisplayGenerated reports where test stubs were written.
	DisplayGenerated(ctx context.Context, count int, target m.Path)
}

// NewUI picks the interactive TUI on a terminal and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
