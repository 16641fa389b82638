// Package export turns the results container into a standalone HTML document
// and prints it to PDF with headless Chrome.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/druarnfield/careerpath/internal/exec"
)

// ErrChromeNotFound is returned when no Chrome-compatible browser is installed.
var ErrChromeNotFound = errors.New("no Chrome or Chromium executable found; install one or set export.chrome_path")

// PDFRenderer prints an HTML document to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromedpRenderer drives a headless Chrome through chromedp.
type ChromedpRenderer struct {
	// ChromePath overrides executable discovery.
	ChromePath string
	// Timeout bounds browser start-up and printing.
	Timeout time.Duration
	// Runner resolves executables. Defaults to exec.DefaultRunner.
	Runner exec.Runner
}

// NewChromedpRenderer creates a renderer with the given explicit browser path
// (may be empty) and timeout.
func NewChromedpRenderer(chromePath string, timeout time.Duration) *ChromedpRenderer {
	return &ChromedpRenderer{ChromePath: chromePath, Timeout: timeout, Runner: &exec.DefaultRunner{}}
}

// Available reports the browser that would be used, or ErrChromeNotFound.
func (r *ChromedpRenderer) Available() (string, error) {
	runner := r.Runner
	if runner == nil {
		runner = &exec.DefaultRunner{}
	}
	path := exec.FindChrome(runner, r.ChromePath)
	if path == "" {
		return "", ErrChromeNotFound
	}
	return path, nil
}

// RenderHTMLToPDF satisfies PDFRenderer.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	chromePath, err := r.Available()
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "careerpath-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(htmlPath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27 x 11.69 inches.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("printing to pdf: %w", err)
	}
	return pdf, nil
}
