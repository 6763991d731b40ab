package course

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fetches course tee detail pages from the NCRDB. The listing
// side of the database needs a browser render; detail pages are static
// HTML behind a plain GET, no authentication required.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a detail-page client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: "usga-golf-courses/1.0 (github.com/jbaviation/usga-golf-courses)",
	}
}

// FetchTeeInfo returns the rendered markup of the courseTeeInfo page
// for one course id.
func (c *Client) FetchTeeInfo(ctx context.Context, courseID string) (string, error) {
	detailURL := fmt.Sprintf("%s/courseTeeInfo?CourseID=%s", c.BaseURL, courseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching tee info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}
