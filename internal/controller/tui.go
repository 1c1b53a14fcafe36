package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// paginationThreshold is the number of report lines above which the report
// opens in the scrollable viewer instead of printing straight through.
const paginationThreshold = 30

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tripletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed. The report viewer already blocks
// inside DisplayReport, so there is nothing left to wait for.
func (t *TUI) Wait(_ context.Context) {}

// DisplayReport renders the scan summary, opening a scrollable viewer when
// the uncovered list is long.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderReport(report)

	if strings.Count(content, "\n") <= paginationThreshold {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(newReportModel(content), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("report viewer: %w", err)
	}

	return nil
}

// DisplayJSON emits plain JSON; the structured contract is never styled.
func (t *TUI) DisplayJSON(ctx context.Context, boundaries []m.Boundary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := m.EncodeJSONIndent(boundaries)
	if err != nil {
		return fmt.Errorf("encode boundaries: %w", err)
	}

	_, err = fmt.Fprintf(t.output, "%s\n", data)

	return err
}

// DisplayCounts renders per-file boundary counts as a table.
func (t *TUI) DisplayCounts(ctx context.Context, counts []m.FileCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s", renderCountsTable(counts))

	return err
}

// DisplayGenerated reports where test stubs were written.
func (t *TUI) DisplayGenerated(ctx context.Context, count int, target m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "Generated %d tests -> %s\n", count, target)
}

func renderReport(report m.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"BoundSmith: %d boundaries, %d uncovered", len(report.Boundaries), len(report.Uncovered))))
	b.WriteString("\n\n")

	for _, boundary := range report.Uncovered {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  !  %s", boundary.Expression)))
		b.WriteString(locationStyle.Render(fmt.Sprintf("  %s:%d", boundary.File, boundary.Line)))
		b.WriteString("\n")
		b.WriteString(tripletStyle.Render(fmt.Sprintf("     test with: %s", formatTriplet(boundary.Triplet))))
		b.WriteString("\n\n")
	}

	return b.String()
}

// reportModel is the Bubble Tea model backing the scrollable report viewer.
type reportModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newReportModel(content string) reportModel {
	return reportModel{content: content}
}

// Init implements tea.Model.
func (rm reportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Reserve one line for the help footer.
		if !rm.ready {
			rm.viewport = viewport.New(msg.Width, msg.Height-1)
			rm.viewport.SetContent(rm.content)
			rm.ready = true
		} else {
			rm.viewport.Width = msg.Width
			rm.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

// View implements tea.Model.
func (rm reportModel) View() string {
	if !rm.ready {
		return "loading report..."
	}

	return rm.viewport.View() + "\n" + helpStyle.Render("  ↑/↓ scroll · q quit")
}
