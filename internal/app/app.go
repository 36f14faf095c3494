// Package app wires the pipeline together: load the saved listing page once,
// run one extraction pass, then hand the finished record sequence to the
// tabulation and export collaborators.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stayscan/stayscan/internal/extract"
	"github.com/stayscan/stayscan/internal/htmldoc"
	"github.com/stayscan/stayscan/internal/summary"
	"github.com/stayscan/stayscan/internal/tabulate"
)

// ErrNoRows is returned when the row selector matched nothing at all. The
// artifacts are still written (header-only dataset) before this surfaces, so
// downstream tooling always sees a complete file; the CLI maps it to a
// distinct exit code.
var ErrNoRows = errors.New("no row segments matched")

type App struct {
	cfg  Config
	tree extract.Tree
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// WithTree supplies an already-loaded document, skipping the file load. Used
// when the caller parsed the page itself.
func (a *App) WithTree(t extract.Tree) *App {
	a.tree = t
	return a
}

// Run executes one extraction pass and writes the configured artifacts. The
// only fatal condition is an unloadable document; per-field extraction
// problems have already degraded to sentinels inside the pass.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	tree := a.tree
	if tree == nil {
		doc, err := htmldoc.Load(a.cfg.InputPath)
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}
		tree = doc
		log.Debug().Str("input", a.cfg.InputPath).Msg("document loaded")
	}

	ex := &extract.Extractor{
		Selectors:       resolveSelectors(a.cfg.Selectors),
		InitialRoomType: a.cfg.FirstRoomType,
	}
	records := ex.Extract(tree)
	log.Info().Int("records", len(records)).Dur("elapsed", time.Since(start)).Msg("extraction pass complete")

	if !a.cfg.NoTable {
		if err := tabulate.RenderTable(os.Stdout, records); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	if a.cfg.OutputCSV != "" {
		if err := tabulate.WriteCSVFile(a.cfg.OutputCSV, records); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputCSV).Msg("dataset written")
	}
	if a.cfg.OutputPDF != "" {
		if err := writeTablePDF(a.cfg.OutputPDF, records); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDF).Msg("pdf report written")
	}

	summary.Build(records).Print(os.Stdout)

	if len(records) == 0 {
		return ErrNoRows
	}
	return nil
}
