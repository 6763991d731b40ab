package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer produces rendered listing markup for one state. The grid is
// rendered server-side from a form post, so implementations must drive
// the search form, not just GET the page.
type Renderer interface {
	Render(ctx context.Context, state State) (string, error)
}

// ErrRenderTimeout signals that the listing grid never became visible
// within the configured wait. Recovered by the caller per state, never
// fatal to a batch.
var ErrRenderTimeout = errors.New("listing table never became visible")

// BrowserRenderer drives a headless browser session per call: select
// the state in the dropdown, click the search button, wait for the
// grid, return the page markup. The session is always released before
// returning, including on timeout.
type BrowserRenderer struct {
	baseURL string
	timeout time.Duration
}

// NewBrowserRenderer creates a renderer for the given base URL. The
// timeout bounds the wait for the listing grid to appear.
func NewBrowserRenderer(baseURL string, timeout time.Duration) *BrowserRenderer {
	return &BrowserRenderer{baseURL: baseURL, timeout: timeout}
}

// Render implements Renderer.
func (b *BrowserRenderer) Render(ctx context.Context, state State) (string, error) {
	browser := rod.New().Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connecting browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: b.baseURL})
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", b.baseURL, err)
	}
	defer page.Close()

	dropdown, err := page.Element("#" + StateSelectID)
	if err != nil {
		return "", fmt.Errorf("finding state dropdown: %w", err)
	}
	if err := dropdown.Select([]string{state.Name}, true, rod.SelectorTypeText); err != nil {
		return "", fmt.Errorf("selecting state %q: %w", state.Name, err)
	}

	button, err := page.Element("#" + SubmitButtonID)
	if err != nil {
		return "", fmt.Errorf("finding submit button: %w", err)
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return "", fmt.Errorf("submitting search: %w", err)
	}

	if _, err := page.Timeout(b.timeout).Element("#" + ListingTableID); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("state %q: %w", state.Name, ErrRenderTimeout)
		}
		return "", fmt.Errorf("waiting for listing table: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading page markup: %w", err)
	}
	return html, nil
}
