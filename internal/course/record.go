package course

import "time"

// Synthesized listing columns. The extractor prepends these to every
// listing schema ahead of the columns discovered on the page.
const (
	FieldURL         = "url"
	FieldCourseID    = "course_id"
	FieldLastUpdated = "last_updated"
	FieldCity        = "city"
)

// TimeFormat is the serialization format for last_updated values.
const TimeFormat = time.RFC3339

// Record is one extracted row, keyed by normalized column name.
type Record map[string]string

// Table pairs an ordered header with the records that share it.
//
// A nil *Table marks known absence of data (the source never produced
// a table); a non-nil Table with zero Records is an empty result. The
// two persist differently, so callers must not collapse one into the
// other.
type Table struct {
	Header  []string
	Records []Record
}

// NewTable creates an empty table with the given header.
func NewTable(header []string) *Table {
	return &Table{Header: header}
}

// Append adds records to the table.
func (t *Table) Append(recs ...Record) {
	t.Records = append(t.Records, recs...)
}

// Len returns the record count. Safe on a nil table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Absent reports whether the table marks known absence of data.
func (t *Table) Absent() bool {
	return t == nil
}

// Bucket names one of the five output partitions of a detail run.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketNew      Bucket = "new"
	BucketFailed   Bucket = "failed"
	BucketModified Bucket = "modified"
	BucketSkipped  Bucket = "skipped"
)

// BucketNames lists every bucket in persistence order.
var BucketNames = []Bucket{BucketAll, BucketNew, BucketFailed, BucketModified, BucketSkipped}

// ValidBucket reports whether name is one of the five known buckets.
func ValidBucket(name Bucket) bool {
	for _, b := range BucketNames {
		if b == name {
			return true
		}
	}
	return false
}

// Buckets is the result of one detail aggregation run, persisted as a
// unit under one date stamp. Each table is nil when the run produced
// no data for that bucket; the bucket itself is always present.
type Buckets struct {
	All      *Table
	New      *Table
	Failed   *Table
	Modified *Table
	Skipped  *Table
}

func (b *Buckets) slot(name Bucket) **Table {
	switch name {
	case BucketAll:
		return &b.All
	case BucketNew:
		return &b.New
	case BucketFailed:
		return &b.Failed
	case BucketModified:
		return &b.Modified
	case BucketSkipped:
		return &b.Skipped
	}
	return nil
}

// Get returns the table for a bucket, nil when absent or unknown.
func (b *Buckets) Get(name Bucket) *Table {
	if p := b.slot(name); p != nil {
		return *p
	}
	return nil
}

// Set replaces the table for a bucket. Unknown names are ignored.
func (b *Buckets) Set(name Bucket, t *Table) {
	if p := b.slot(name); p != nil {
		*p = t
	}
}

// Add appends records to a bucket, creating its table with the given
// header on first use. Appending zero records leaves an absent bucket
// absent.
func (b *Buckets) Add(name Bucket, header []string, recs ...Record) {
	p := b.slot(name)
	if p == nil || len(recs) == 0 {
		return
	}
	if *p == nil {
		*p = NewTable(header)
	}
	(*p).Append(recs...)
}
