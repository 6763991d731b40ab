package scraper

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbaviation/usga-golf-courses/internal/course"
)

// DOM ids on the NCRDB search page.
const (
	ListingTableID = "gvCourses"
	StateSelectID  = "ddState"
	SubmitButtonID = "myButton"
)

// ErrTableMissing signals that the expected table element is absent
// from the page. Distinct from a table that exists but has no body
// rows, which extracts as an empty record set.
var ErrTableMissing = errors.New("expected table not found in markup")

var (
	courseIDPattern = regexp.MustCompile(`CourseID=(\d+)`)
	headerRuns      = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeHeader turns raw header cell text into a sql-like column
// name: lowercased, runs of non-alphanumerics collapsed to "_".
func NormalizeHeader(text string) string {
	return headerRuns.ReplaceAllString(strings.ToLower(text), "_")
}

// linkInfo is the always-defined result of link extraction for one
// listing row. Both fields empty means no usable anchor was found.
type linkInfo struct {
	url      string
	courseID string
}

// extractLink finds the first anchor with an href in the row, resolves
// it to an absolute URL by concatenation with the base URL, and pulls
// the numeric course id out of the link.
func extractLink(row *goquery.Selection, baseURL string) linkInfo {
	href, ok := row.Find("a[href]").First().Attr("href")
	if !ok {
		return linkInfo{}
	}
	m := courseIDPattern.FindStringSubmatch(href)
	if m == nil {
		return linkInfo{}
	}
	return linkInfo{url: baseURL + href, courseID: m[1]}
}

// ExtractCourses parses a rendered listing page into a table whose
// header is the discovered schema: url, course_id and last_updated
// followed by the normalized header cells of the grid. Remaining cells
// populate positionally against that schema. A page without the grid
// yields ErrTableMissing; a grid with no body rows yields an empty
// table. Duplicate course ids within one page keep the first row only.
func ExtractCourses(r io.Reader, baseURL string, now time.Time) (*course.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	grid := doc.Find("#" + ListingTableID)
	if grid.Length() == 0 {
		return nil, ErrTableMissing
	}

	header := []string{course.FieldURL, course.FieldCourseID, course.FieldLastUpdated}
	grid.Find("thead div").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, NormalizeHeader(cell.Text()))
	})

	tbl := course.NewTable(header)
	stamp := now.UTC().Format(course.TimeFormat)
	seen := make(map[string]bool)

	grid.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		link := extractLink(row, baseURL)
		if link.courseID != "" && seen[link.courseID] {
			return
		}

		rec := course.Record{
			course.FieldURL:         link.url,
			course.FieldCourseID:    link.courseID,
			course.FieldLastUpdated: stamp,
		}

		row.Find("td").Each(func(i int, cell *goquery.Selection) {
			// Offset by the three synthesized columns.
			if i+3 < len(header) {
				rec[header[i+3]] = cell.Text()
			}
		})

		if link.courseID != "" {
			seen[link.courseID] = true
		}
		tbl.Append(rec)
	})

	return tbl, nil
}
