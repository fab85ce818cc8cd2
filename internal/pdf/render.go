// Package pdf renders saved trips into PDF documents using a headless
// browser. Requires Chrome/Chromium to be installed on the system.
package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/travel-planner/internal/db"
)

// DefaultTimeout bounds a single render, including browser startup.
const DefaultTimeout = 60 * time.Second

var tripTemplate = template.Must(template.New("trip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #1a1a1a; }
  h1 { font-size: 28px; border-bottom: 2px solid #2b6cb0; padding-bottom: 8px; }
  table.summary { border-collapse: collapse; margin: 24px 0; }
  table.summary td { padding: 6px 16px 6px 0; }
  table.summary td.label { font-weight: bold; color: #555; }
  ul.activities li { margin: 4px 0; }
  .footer { margin-top: 48px; font-size: 11px; color: #888; }
</style>
</head>
<body>
  <h1>Trip to {{.Destination}}</h1>
  <table class="summary">
    <tr><td class="label">Duration</td><td>{{.Duration}} days</td></tr>
    <tr><td class="label">Budget</td><td>{{.Budget}}</td></tr>
    <tr><td class="label">Companions</td><td>{{.Companions}}</td></tr>
  </table>
  <h2>Planned activities</h2>
  <ul class="activities">
    {{range .Activities}}<li>{{.}}</li>
    {{end}}
  </ul>
  <div class="footer">Saved on {{.CreatedAt.Format "January 2, 2006"}}</div>
</body>
</html>`))

// buildTripHTML renders the printable HTML for a trip.
func buildTripHTML(trip *db.Trip) (string, error) {
	var buf bytes.Buffer
	if err := tripTemplate.Execute(&buf, trip); err != nil {
		return "", fmt.Errorf("failed to render trip template: %w", err)
	}
	return buf.String(), nil
}

// Renderer renders trips to PDF via headless Chrome.
type Renderer struct {
	timeout time.Duration
}

// NewRenderer creates a renderer with the default timeout.
func NewRenderer() *Renderer {
	return &Renderer{timeout: DefaultTimeout}
}

// RenderTrip renders the trip summary as a PDF document.
func (r *Renderer) RenderTrip(ctx context.Context, trip *db.Trip) ([]byte, error) {
	html, err := buildTripHTML(trip)
	if err != nil {
		return nil, err
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

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdfBytes []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBytes, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // A4
				WithPaperHeight(11.69). // A4
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	return pdfBytes, nil
}
