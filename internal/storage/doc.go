// Package storage persists pull results as dated CSV snapshots.
//
// One run writes a courses file (courses_YYYYMMDD.csv) and a fixed
// five-file detail set, one {bucket}_course_details_YYYYMMDD.csv per
// bucket, under a single root folder. Absent buckets are
// written as zero-byte placeholders so every date owns the full file
// set; reading a missing or unparsable file yields an absent table
// rather than an error. The column set is schema-on-read: whatever the
// header row of the file declares.
package storage
