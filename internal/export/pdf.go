// Package export produces PDF files from parsed resume documents by
// printing a rendered HTML template in a headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultTimeout bounds a single PDF export, browser startup included.
const DefaultTimeout = 30 * time.Second

// A4 paper size in inches, the CDP print unit.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.4
)

// Options configures a PDF export.
type Options struct {
	// Template is the rendering template name (classic, modern, functional).
	Template string
	// Timeout bounds the whole export. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Error represents a PDF export failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ToPDF renders the document with the named template and prints it to PDF.
func ToPDF(ctx context.Context, doc *types.ResumeDocument, opts Options) ([]byte, error) {
	html, err := rendering.RenderHTML(doc, opts.Template)
	if err != nil {
		return nil, &Error{Message: "failed to render HTML", Cause: err}
	}
	return PrintHTML(ctx, html, opts.Timeout)
}

// PrintHTML prints an HTML string to PDF in a headless browser.
func PrintHTML(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &Error{Message: "headless browser print failed", Cause: err}
	}

	return pdf, nil
}
