// Package pdfrender rasterizes report HTML to PDF through a headless
// Chromium instance driven by go-rod.
package pdfrender

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Rasterizer turns HTML into PDF bytes. The interface seam keeps the
// browser out of service tests.
type Rasterizer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// BrowserRasterizer drives a shared headless browser. Pages are opened and
// closed per render call.
type BrowserRasterizer struct {
	browser *rod.Browser
	launch  *launcher.Launcher
}

// NewBrowserRasterizer launches headless Chromium. bin may be empty to use
// the launcher's auto-detected binary.
func NewBrowserRasterizer(bin string) (*BrowserRasterizer, error) {
	l := launcher.New().Headless(true)
	if bin != "" {
		l = l.Bin(bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching headless browser: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to headless browser: %w", err)
	}
	return &BrowserRasterizer{browser: browser, launch: l}, nil
}

// RenderPDF loads the HTML into a fresh page and prints it to PDF with
// backgrounds enabled (report templates rely on cell shading).
func (r *BrowserRasterizer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("setting page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for page load: %w", err)
	}

	printBackground := true
	stream, err := page.PDF(&proto.PagePrintToPDF{PrintBackground: printBackground})
	if err != nil {
		return nil, fmt.Errorf("printing to pdf: %w", err)
	}
	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading pdf stream: %w", err)
	}
	return pdf, nil
}

// Close shuts the browser down and cleans up the launcher's temp profile.
func (r *BrowserRasterizer) Close() error {
	err := r.browser.Close()
	r.launch.Cleanup()
	return err
}

var _ Rasterizer = (*BrowserRasterizer)(nil)
