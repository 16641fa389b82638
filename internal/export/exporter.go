package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/druarnfield/careerpath/internal/chart"
	"github.com/druarnfield/careerpath/internal/page"
)

// ChartSource supplies the SVG charts embedded in the document.
type ChartSource interface {
	SVG() (radar, line string)
}

// PageExporter exports an element of a page.Page to a PDF file.
type PageExporter struct {
	Page     *page.Page
	Charts   ChartSource // optional
	Renderer PDFRenderer
	Theme    chart.Theme
	Logger   *slog.Logger
	Now      func() time.Time
}

// ExportToPDF renders the element's inner HTML into a document, prints it and
// writes the PDF to filename, creating parent directories as needed.
func (e *PageExporter) ExportToPDF(ctx context.Context, elementID, filename string) error {
	el, err := e.Page.Lookup(elementID)
	if err != nil {
		return err
	}

	data := DocumentData{Results: el.InnerHTML, Theme: e.Theme}
	if e.Now != nil {
		data.Generated = e.Now()
	}
	if e.Charts != nil {
		data.Radar, data.Line = e.Charts.SVG()
	}

	doc, err := Document(data)
	if err != nil {
		return fmt.Errorf("building document: %w", err)
	}

	start := time.Now()
	pdf, err := e.Renderer.RenderHTMLToPDF(ctx, doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
	}
	if err := os.WriteFile(filename, pdf, 0644); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	if e.Logger != nil {
		e.Logger.Info("pdf written",
			slog.String("file", filename),
			slog.Int("bytes", len(pdf)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return nil
}
