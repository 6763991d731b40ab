package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// State is one scrapeable partition of the NCRDB: the visible dropdown
// name and the option value the form posts for it.
type State struct {
	Name  string
	Value string
}

// selectPlaceholder is the dropdown's non-state first option.
const selectPlaceholder = "(Select)"

// Scraper fetches the static pages of the NCRDB site.
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a Scraper against the given base URL.
func New(baseURL string, timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: "usga-golf-courses/1.0 (github.com/jbaviation/usga-golf-courses)",
	}
}

// FetchStates returns every state offered by the search form's
// dropdown, in page order.
func (s *Scraper) FetchStates(ctx context.Context) ([]State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseStates(resp.Body)
}

// ParseStates extracts the state dropdown options from base-page
// markup, skipping the "(Select)" placeholder.
func ParseStates(r io.Reader) ([]State, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	dropdown := doc.Find("#" + StateSelectID)
	if dropdown.Length() == 0 {
		return nil, fmt.Errorf("state dropdown #%s not found", StateSelectID)
	}

	var states []State
	dropdown.Find("option").Each(func(_ int, opt *goquery.Selection) {
		name := strings.TrimSpace(opt.Text())
		if name == "" || name == selectPlaceholder {
			return
		}
		value, _ := opt.Attr("value")
		states = append(states, State{Name: name, Value: value})
	})

	return states, nil
}
