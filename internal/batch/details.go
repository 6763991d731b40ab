package batch

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jbaviation/usga-golf-courses/internal/course"
	"github.com/jbaviation/usga-golf-courses/internal/logger"
	"github.com/jbaviation/usga-golf-courses/internal/scraper"
)

// TeeFetcher fetches rendered markup for one course's detail page.
type TeeFetcher interface {
	FetchTeeInfo(ctx context.Context, courseID string) (string, error)
}

// Progress observes aggregation progress after each processed item.
// Purely observational side channel; it has no effect on bucketing.
type Progress func(current, total int, label string)

// Aggregator fetches tee detail rows for a set of course listings and
// buckets the outcomes.
type Aggregator struct {
	fetcher  TeeFetcher
	limiter  *rate.Limiter
	progress Progress
}

// NewAggregator creates an aggregator. progress may be nil.
func NewAggregator(f TeeFetcher, pacing time.Duration, progress Progress) *Aggregator {
	return &Aggregator{
		fetcher:  f,
		limiter:  newLimiter(pacing),
		progress: progress,
	}
}

// Run visits each listing record in order and produces the five-bucket
// result set:
//
//   - ids already present in existing go to skipped, with their stored
//     detail rows carried into all unfetched
//   - a fetch or parse failure routes the listing record to failed
//   - a page that renders without a tee table routes it to skipped
//   - extracted rows land in both all and new
//
// The modified bucket is part of the output contract but is never
// populated: detail-level change detection has no agreed comparison
// policy yet, so the bucket stays present and empty rather than being
// silently dropped.
//
// The same fixed pacing delay applies after every attempt, whatever
// its outcome.
func (a *Aggregator) Run(ctx context.Context, listings *course.Table, existing *course.Archive) (*course.Buckets, error) {
	buckets := &course.Buckets{}
	if listings == nil {
		return buckets, nil
	}

	exclude := existing.IDs()
	total := len(listings.Records)

	for i, rec := range listings.Records {
		id := rec[course.FieldCourseID]

		if _, cached := exclude[id]; cached {
			// Short-circuit known courses: keep their archived rows
			// instead of re-scraping.
			buckets.Add(course.BucketSkipped, listings.Header, rec)
			buckets.Add(course.BucketAll, existing.Header(), existing.DetailsFor(id)...)
			logger.IncrCounter("details.cached")
		} else {
			a.fetchOne(ctx, buckets, listings.Header, rec, id)
		}

		if a.progress != nil {
			a.progress(i+1, total, id)
		}
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return buckets, nil
}

func (a *Aggregator) fetchOne(ctx context.Context, buckets *course.Buckets, listingHeader []string, rec course.Record, id string) {
	html, err := a.fetcher.FetchTeeInfo(ctx, id)
	if err != nil {
		logger.Warn("tee fetch failed", logger.Fields{
			"course_id": id,
			"error":     err.Error(),
		})
		buckets.Add(course.BucketFailed, listingHeader, rec)
		logger.IncrCounter("details.failed")
		return
	}

	tees, err := scraper.ExtractTees(strings.NewReader(html), id)
	switch {
	case errors.Is(err, scraper.ErrTableMissing):
		// Known absence of data for this course, not an error.
		buckets.Add(course.BucketSkipped, listingHeader, rec)
		logger.IncrCounter("details.no_table")
	case err != nil:
		logger.Warn("tee extraction failed", logger.Fields{
			"course_id": id,
			"error":     err.Error(),
		})
		buckets.Add(course.BucketFailed, listingHeader, rec)
		logger.IncrCounter("details.failed")
	default:
		buckets.Add(course.BucketAll, tees.Header, tees.Records...)
		buckets.Add(course.BucketNew, tees.Header, tees.Records...)
		logger.IncrCounter("details.fetched")
	}
}
