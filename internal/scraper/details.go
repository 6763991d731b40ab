package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbaviation/usga-golf-courses/internal/course"
)

var (
	detailHeaderRuns = regexp.MustCompile(`[^a-z0-9._/]+`)
	detailCellRuns   = regexp.MustCompile(`[^a-z0-9./]+`)
)

// NormalizeDetailHeader turns raw tee-table header text into a column
// name: trimmed, lowercased, runs outside [a-z0-9._/] collapsed to
// "_", trailing "_" removed.
func NormalizeDetailHeader(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = detailHeaderRuns.ReplaceAllString(s, "_")
	return strings.TrimRight(s, "_")
}

// cleanDetailCell lowercases cell text and strips every character
// outside [a-z0-9./].
func cleanDetailCell(text string) string {
	return detailCellRuns.ReplaceAllString(strings.ToLower(text), "")
}

// ExtractTees parses a course detail page into tee records tagged with
// the owning course id. The first table row supplies the header; the
// remaining rows become records. Post-extraction the sentinel unnamed
// column and the "ch" column are dropped and course_id is moved to the
// front. A page without a table yields ErrTableMissing.
func ExtractTees(r io.Reader, courseID string) (*course.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	teeTable := doc.Find("table").First()
	if teeTable.Length() == 0 {
		return nil, ErrTableMissing
	}

	rows := teeTable.Find("tr")
	if rows.Length() == 0 {
		return course.NewTable([]string{course.FieldCourseID}), nil
	}

	var raw []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		raw = append(raw, NormalizeDetailHeader(cell.Text()))
	})

	var recs []course.Record
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		rec := course.Record{course.FieldCourseID: courseID}
		row.Find("td").Each(func(i int, cell *goquery.Selection) {
			if i < len(raw) {
				rec[raw[i]] = cleanDetailCell(cell.Text())
			}
		})
		recs = append(recs, rec)
	})

	// Drop the unnamed sentinel column and "ch", course_id first.
	header := []string{course.FieldCourseID}
	for _, col := range raw {
		if col == "" || col == "ch" || col == course.FieldCourseID {
			continue
		}
		header = append(header, col)
	}

	tbl := course.NewTable(header)
	for _, rec := range recs {
		delete(rec, "")
		delete(rec, "ch")
		tbl.Append(rec)
	}
	return tbl, nil
}
