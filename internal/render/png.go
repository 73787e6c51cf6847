package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/chromedp/chromedp"
)

// PNG renders a frame to a PNG by loading the SVG in a headless
// browser and screenshotting the svg element. Requires a Chrome or
// Chromium binary on the host.
func PNG(ctx context.Context, frame Frame, style Style, out io.Writer) error {
	svg := SVG(frame, style)
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshot, chromedp.ByQuery),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("rendering png: %w", err)
	}
	if len(screenshot) == 0 {
		return fmt.Errorf("rendering png: empty screenshot")
	}

	if _, err := out.Write(screenshot); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}
