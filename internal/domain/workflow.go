package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"boundsmith.dev/pkg/boundsmith/internal/adapter"
	"boundsmith.dev/pkg/boundsmith/internal/controller"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
	boundsmithpkg "boundsmith.dev/pkg/boundsmith/pkg"
)

// Sentinel errors the CLI layer maps to exit codes.
var (
	// ErrBadInput marks a missing or unrecognized input path.
	ErrBadInput = errors.New("invalid input path")

	// ErrUncovered signals that a scan with a test path found boundaries
	// whose triplet is not fully exercised.
	ErrUncovered = errors.New("uncovered boundaries found")
)

// Workflow drives the scan/list/view/generate use cases on behalf of the
// CLI commands.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Generate(ctx context.Context, args GenerateArgs) error
}

// ScanArgs configures a scan invocation.
type ScanArgs struct {
	Source   m.Path
	Tests    m.Path
	Generate m.Path
	JSON     bool
	Exclude  []string
	Threads  int
	Reports  m.Path
}

// ListArgs configures a per-file boundary count listing.
type ListArgs struct {
	Source  m.Path
	Exclude []string
	Threads int
}

// ViewArgs configures re-rendering of a persisted report.
type ViewArgs struct {
	Reports m.Path
}

// GenerateArgs configures stub generation from a persisted report.
type GenerateArgs struct {
	Reports m.Path
	Target  m.Path
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Extractor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	ex Extractor,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Extractor:       ex,
	}
}

// Scan extracts boundaries from the source path, cross-references observed
// test literals, persists the report, and renders it. Returns ErrUncovered
// when a test path was supplied and gaps remain.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	if err := w.Start(ctx); err != nil {
		slog.Error("failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	report, err := w.buildReport(ctx, args)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.Save(args.Reports, report); err != nil {
			slog.Error("failed to persist report", "dir", args.Reports, "error", err)
			return err
		}
	}

	if args.JSON {
		err = w.DisplayJSON(ctx, report.Uncovered)
	} else {
		err = w.DisplayReport(ctx, report)
	}

	if err != nil {
		slog.Error("failed to display report", "error", err)
		return err
	}

	if args.Generate != "" && len(report.Uncovered) > 0 {
		if err := w.generateStubs(ctx, report.Uncovered, args.Generate); err != nil {
			return err
		}
	}

	w.Wait(ctx)

	if report.HasTests && len(report.Uncovered) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUncovered, len(report.Uncovered), len(report.Boundaries))
	}

	return nil
}

// List renders per-file boundary counts for the source path.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	units, err := w.collectSourceUnits(args.Source, args.Exclude)
	if err != nil {
		return err
	}

	perUnit, err := w.extractUnits(ctx, units, args.Threads)
	if err != nil {
		return err
	}

	counts := make([]m.FileCount, 0, len(units))
	for i, unit := range units {
		counts = append(counts, m.FileCount{Path: unit, Count: len(perUnit[i])})
	}

	if err := w.DisplayCounts(ctx, counts); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// View re-renders the persisted report from the reports directory.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	report, err := w.Load(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// Generate renders test stubs for the uncovered boundaries of the persisted
// report into the target file.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	report, err := w.Load(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.generateStubs(ctx, report.Uncovered, args.Target)
}

func (w *workflow) generateStubs(ctx context.Context, boundaries []m.Boundary, target m.Path) error {
	content, err := GenerateTestFile(boundaries)
	if err != nil {
		return err
	}

	if err := w.WriteFile(target, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write generated tests %s: %w", target, err)
	}

	slog.Info("generated boundary test stubs", "target", target, "count", len(boundaries))
	w.DisplayGenerated(ctx, len(boundaries), target)

	return nil
}

// buildReport runs the extraction and coverage matching for one scan.
func (w *workflow) buildReport(ctx context.Context, args ScanArgs) (m.Report, error) {
	boundaries, err := w.collectBoundaries(ctx, args)
	if err != nil {
		return m.Report{}, err
	}

	values, err := w.collectTestValues(ctx, args.Tests)
	if err != nil {
		return m.Report{}, err
	}

	set := NewValueSet(values)

	uncovered := boundaries
	if !set.Empty() {
		uncovered = FindUncovered(boundaries, set)
	}

	return m.Report{
		Boundaries: boundaries,
		Uncovered:  uncovered,
		HasTests:   !set.Empty(),
	}, nil
}

func (w *workflow) collectBoundaries(ctx context.Context, args ScanArgs) ([]m.Boundary, error) {
	info, err := w.FileInfo(args.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadInput, args.Source)
	}

	// Single-unit scans are strict: a parse failure is terminal.
	if !info.IsDir() {
		if !isSourceUnit(string(args.Source)) {
			return nil, fmt.Errorf("%w: %s is not a Go source file", ErrBadInput, args.Source)
		}

		src, err := w.ReadFile(args.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadInput, args.Source)
		}

		return w.ExtractSource(ctx, src, args.Source)
	}

	units, err := w.collectSourceUnits(args.Source, args.Exclude)
	if err != nil {
		return nil, err
	}

	perUnit, err := w.extractUnits(ctx, units, args.Threads)
	if err != nil {
		return nil, err
	}

	return mergeBoundaries(perUnit)
}

// extractUnits fans the per-unit extraction out over an errgroup while
// keeping the deterministic walk order of the results. A unit that fails to
// read or parse contributes zero boundaries and does not abort its siblings.
func (w *workflow) extractUnits(ctx context.Context, units []m.Path, threads int) ([][]m.Boundary, error) {
	if threads <= 0 {
		threads = 1
	}

	perUnit := make([][]m.Boundary, len(units))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, unit := range units {
		i, unit := i, unit
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			src, err := w.ReadFile(unit)
			if err != nil {
				slog.Warn("skipping unreadable unit", "path", unit, "error", err)
				return nil
			}

			boundaries, err := w.ExtractSource(groupCtx, src, unit)
			if err != nil {
				slog.Warn("skipping unparsable unit", "path", unit, "error", err)
				return nil
			}

			perUnit[i] = boundaries

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return perUnit, nil
}

// mergeBoundaries flattens per-unit results in walk order through a disk
// spill, keeping large directory scans off the heap.
func mergeBoundaries(perUnit [][]m.Boundary) ([]m.Boundary, error) {
	spill, err := boundsmithpkg.NewFileSpill[m.Boundary]()
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = spill.Close()
	}()

	for _, boundaries := range perUnit {
		if err := spill.AppendBatch(boundaries); err != nil {
			return nil, err
		}
	}

	merged := make([]m.Boundary, 0, spill.Len())

	err = spill.Range(func(_ uint64, b m.Boundary) error {
		merged = append(merged, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// collectSourceUnits enumerates scannable Go files under root, excluding
// test files, fixture directories, and user-excluded patterns.
func (w *workflow) collectSourceUnits(root m.Path, exclude []string) ([]m.Path, error) {
	info, err := w.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadInput, root)
	}

	if !info.IsDir() {
		if !isSourceUnit(string(root)) {
			return nil, fmt.Errorf("%w: %s is not a Go source file", ErrBadInput, root)
		}

		return []m.Path{root}, nil
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var units []m.Path

	err = w.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if skipDir(filepath.Base(path)) && path != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isSourceUnit(path) || matchesAny(patterns, path) {
			return nil
		}

		units = append(units, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return units, nil
}

// collectTestValues walks the test path and merges every numeric literal
// from its test units into one observed set. A missing test path is fatal;
// an unparsable test unit is skipped. A non-test source file resolves to
// its companion _test.go when one exists.
func (w *workflow) collectTestValues(ctx context.Context, tests m.Path) ([]m.Number, error) {
	if tests == "" {
		return nil, nil
	}

	info, err := w.FileInfo(tests)
	if err != nil {
		return nil, fmt.Errorf("%w: test path %s", ErrBadInput, tests)
	}

	var units []m.Path

	if !info.IsDir() {
		if isTestUnit(string(tests)) {
			units = append(units, tests)
		} else if companion, err := w.DetectTestFile(tests); err == nil && companion != "" {
			// A source file as the test path links to its companion test.
			units = append(units, companion)
		}
	} else {
		err = w.Walk(tests, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && isTestUnit(path) {
				units = append(units, m.Path(path))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	var values []m.Number

	for _, unit := range units {
		src, err := w.ReadFile(unit)
		if err != nil {
			slog.Warn("skipping unreadable test unit", "path", unit, "error", err)
			continue
		}

		unitValues, err := w.ExtractTestValues(ctx, src)
		if err != nil {
			slog.Warn("skipping unparsable test unit", "path", unit, "error", err)
			continue
		}

		values = append(values, unitValues...)
	}

	return values, nil
}

func isSourceUnit(path string) bool {
	return strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go")
}

func isTestUnit(path string) bool {
	return strings.HasSuffix(path, "_test.go")
}

func skipDir(base string) bool {
	return base == "testdata" || base == "vendor" || strings.HasPrefix(base, ".")
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
