package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jbaviation/usga-golf-courses/internal/course"
)

// DateFormat is the canonical 8-digit date stamp used in filenames.
const DateFormat = "20060102"

// acceptedDateLayouts are the representations NormalizeDate accepts.
var acceptedDateLayouts = []string{DateFormat, "2006-01-02", "01/02/2006", time.RFC3339}

// NormalizeDate canonicalizes any accepted date representation to an
// 8-digit YYYYMMDD string. An empty input defaults to the current
// date.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format(DateFormat), nil
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateFormat), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// Store handles persistence of course and detail snapshots.
type Store struct {
	root string
}

// New creates a Store rooted at the given folder, creating it if
// needed.
func New(root string) (*Store, error) {
	if strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		root = filepath.Join(home, root[2:])
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{root: root}, nil
}

func (s *Store) coursesPath(date string) string {
	return filepath.Join(s.root, fmt.Sprintf("courses_%s.csv", date))
}

func (s *Store) bucketPath(name course.Bucket, date string) string {
	return filepath.Join(s.root, fmt.Sprintf("%s_course_details_%s.csv", name, date))
}

// SaveCourses writes the listing table under the given date.
func (s *Store) SaveCourses(t *course.Table, date string) error {
	date, err := NormalizeDate(date)
	if err != nil {
		return err
	}
	return writeTable(s.coursesPath(date), t)
}

// LoadCourses reads back the listing table for the given date. A
// missing or unparsable file yields a nil table, never an error.
func (s *Store) LoadCourses(date string) (*course.Table, error) {
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	return readTable(s.coursesPath(date)), nil
}

// SaveBuckets writes one file per bucket under the given date. Absent
// buckets are written as zero-byte placeholders so a fixed five-file
// set always exists per date.
func (s *Store) SaveBuckets(b *course.Buckets, date string) error {
	date, err := NormalizeDate(date)
	if err != nil {
		return err
	}
	for _, name := range course.BucketNames {
		if err := writeTable(s.bucketPath(name, date), b.Get(name)); err != nil {
			return fmt.Errorf("writing %s bucket: %w", name, err)
		}
	}
	return nil
}

// LoadBuckets reads back the named buckets. dates carries either one
// date shared by all buckets or exactly one date per bucket; anything
// else is rejected before any file is touched, as is an unknown bucket
// name. A missing or unparsable file loads as an absent bucket.
func (s *Store) LoadBuckets(names []course.Bucket, dates []string) (*course.Buckets, error) {
	if len(dates) == 0 {
		dates = []string{""}
	}
	if len(dates) != 1 && len(dates) != len(names) {
		return nil, fmt.Errorf("got %d dates for %d buckets", len(dates), len(names))
	}

	norm := make([]string, len(dates))
	for i, d := range dates {
		nd, err := NormalizeDate(d)
		if err != nil {
			return nil, err
		}
		norm[i] = nd
	}
	for _, name := range names {
		if !course.ValidBucket(name) {
			return nil, fmt.Errorf("unknown bucket %q", name)
		}
	}

	out := &course.Buckets{}
	for i, name := range names {
		date := norm[0]
		if len(norm) > 1 {
			date = norm[i]
		}
		out.Set(name, readTable(s.bucketPath(name, date)))
	}
	return out, nil
}

// writeTable writes header and records as CSV; a nil table produces a
// zero-byte placeholder.
func writeTable(path string, t *course.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if t == nil {
		return nil
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, rec := range t.Records {
		row := make([]string, len(t.Header))
		for i, col := range t.Header {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// readTable loads a CSV snapshot. Any miss (absent file, zero-byte
// placeholder, malformed CSV) yields nil.
func readTable(path string) *course.Table {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	tbl := course.NewTable(rows[0])
	for _, row := range rows[1:] {
		rec := course.Record{}
		for i, col := range tbl.Header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		tbl.Append(rec)
	}
	return tbl
}
