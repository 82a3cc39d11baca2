package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/schemasite/internal/config"
	"github.com/ziadkadry99/schemasite/internal/logfields"
	"github.com/ziadkadry99/schemasite/internal/model"
	"github.com/ziadkadry99/schemasite/internal/progress"
)

// SiteGenerator renders a schema into a static HTML report.
type SiteGenerator struct {
	OutputDir string
	Config    *config.Config
	Version   string
	Logger    *slog.Logger
	Reporter  progress.Reporter
	Now       func() time.Time
}

// NewSiteGenerator creates a SiteGenerator writing into outputDir.
func NewSiteGenerator(outputDir string, cfg *config.Config) *SiteGenerator {
	return &SiteGenerator{
		OutputDir: outputDir,
		Config:    cfg,
		Version:   "dev",
		Logger:    slog.Default(),
		Now:       time.Now,
	}
}

// pageJob is one page to write, relative to the output root.
type pageJob struct {
	relPath string
	kind    PageKind
	table   string
	render  func(out *LineWriter) error
}

// Generate writes every page of the report. The capability snapshot and the
// routing table are resolved before the first page is rendered. A page that
// fails is logged and skipped; the returned error joins all page failures.
// Returns the number of pages written.
func (g *SiteGenerator) Generate(ctx context.Context, db *model.Database) (int, error) {
	runID := uuid.NewString()
	logger := g.Logger.With(logfields.RunID(runID))
	start := time.Now()

	rep := newReport(db, g.Now().Format("Monday Jan 2 2006 15:04 MST"))
	caps := g.Config.Capabilities(len(rep.orphans) > 0, len(db.Routines) > 0)

	composer := NewComposer(caps, DefaultRoutes())
	composer.Version = g.Version
	composer.Logger = logger

	if err := os.MkdirAll(filepath.Join(g.OutputDir, TablesDir), 0o755); err != nil {
		return 0, err
	}
	if err := g.writeAssets(); err != nil {
		return 0, err
	}
	if err := WriteSearchIndex(BuildSearchIndex(composer, db), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	jobs := g.plan(composer, rep)

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(jobs))

	limit := g.Config.MaxConcurrency
	if limit < 1 {
		limit = 1
	}

	var (
		eg      errgroup.Group
		mu      sync.Mutex
		done    int
		written int
		errs    []error
	)
	eg.SetLimit(limit)
	for _, job := range jobs {
		eg.Go(func() error {
			err := ctx.Err()
			if err == nil {
				err = g.writePage(job)
			}

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				attrs := []any{
					logfields.Page(job.relPath),
					logfields.PageKind(job.kind.String()),
					logfields.Error(err),
				}
				if job.table != "" {
					attrs = append(attrs, logfields.Table(job.table))
				}
				logger.Error("Page generation failed", attrs...)
				reporter.Failed(job.relPath)
				errs = append(errs, fmt.Errorf("rendering %s: %w", job.relPath, err))
			} else {
				written++
			}
			reporter.Update(done, job.relPath)
			return nil
		})
	}
	_ = eg.Wait()
	reporter.Finish()

	logger.Info("Report generated",
		logfields.Path(g.OutputDir),
		logfields.Count(written),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))

	return written, errors.Join(errs...)
}

// plan lists the pages of the report. Gated pages are only planned when the
// snapshot enables their navigation entry.
func (g *SiteGenerator) plan(c *Composer, rep *report) []pageJob {
	routes := c.Routes()
	caps := c.Capabilities()

	jobs := []pageJob{
		{routes.Fragment(PageMainIndex), PageMainIndex, "", func(out *LineWriter) error { return writeIndexPage(c, out, rep) }},
		{routes.Fragment(PageRelationships), PageRelationships, "", func(out *LineWriter) error { return writeRelationshipsPage(c, out, rep) }},
		{routes.Fragment(PageConstraints), PageConstraints, "", func(out *LineWriter) error { return writeConstraintsPage(c, out, rep) }},
		{routes.Fragment(PageAnomalies), PageAnomalies, "", func(out *LineWriter) error { return writeAnomaliesPage(c, out, rep) }},
	}
	if caps.HasOrphans {
		jobs = append(jobs, pageJob{routes.Fragment(PageOrphans), PageOrphans, "", func(out *LineWriter) error { return writeOrphansPage(c, out, rep) }})
	}
	if caps.HasRoutines {
		jobs = append(jobs, pageJob{routes.Fragment(PageRoutines), PageRoutines, "", func(out *LineWriter) error { return writeRoutinesPage(c, out, rep) }})
	}
	for _, s := range ColumnSorts {
		jobs = append(jobs, pageJob{ColumnsFile(s.Key), PageColumns, "", func(out *LineWriter) error { return writeColumnsPage(c, out, rep, s) }})
	}
	for _, t := range rep.db.Tables {
		jobs = append(jobs, pageJob{TablesDir + "/" + c.TableFile(t.Name), PageTableDetail, t.Name, func(out *LineWriter) error { return writeTablePage(c, out, rep, t) }})
	}
	return jobs
}

// writePage acquires the page's sink, renders into it and always releases it.
func (g *SiteGenerator) writePage(job pageJob) error {
	out, err := CreatePage(filepath.Join(g.OutputDir, filepath.FromSlash(job.relPath)))
	if err != nil {
		return err
	}
	err = job.render(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func (g *SiteGenerator) writeAssets() error {
	assets := map[string]string{
		StylesheetFile: cssContent,
		LibraryFile:    libContent,
		ScriptFile:     jsContent,
	}
	for name, content := range assets {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
