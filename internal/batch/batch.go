package batch

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jbaviation/usga-golf-courses/internal/course"
	"github.com/jbaviation/usga-golf-courses/internal/logger"
	"github.com/jbaviation/usga-golf-courses/internal/scraper"
)

// Orchestrator pulls course listings one state at a time, strictly in
// input order, pacing successive renders to respect the upstream
// server's rate.
type Orchestrator struct {
	renderer scraper.Renderer
	baseURL  string
	limiter  *rate.Limiter
	now      func() time.Time
}

// NewOrchestrator creates an orchestrator. A zero pacing delay
// disables pacing (used by tests).
func NewOrchestrator(r scraper.Renderer, baseURL string, pacing time.Duration) *Orchestrator {
	return &Orchestrator{
		renderer: r,
		baseURL:  baseURL,
		limiter:  newLimiter(pacing),
		now:      time.Now,
	}
}

func newLimiter(pacing time.Duration) *rate.Limiter {
	if pacing <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(pacing), 1)
}

// Run renders and extracts each state in input order and concatenates
// the per-state record sets, preserving order. A state that times out
// or renders without the listing grid is logged with its name and
// skipped; it does not appear in the aggregate, not even as an empty
// placeholder. With an archive supplied, every record is reconciled
// and Skip-classified rows are dropped before aggregation.
func (o *Orchestrator) Run(ctx context.Context, states []scraper.State, archive *course.Archive) (*course.Table, error) {
	agg := &course.Table{}

	for _, st := range states {
		// Fixed pacing between successive state calls, regardless of
		// the previous outcome.
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		started := time.Now()
		html, err := o.renderer.Render(ctx, st)
		logger.RecordTiming("pull.render", time.Since(started))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("state produced no listing, skipping", logger.Fields{
				"state": st.Name,
				"error": err.Error(),
			})
			logger.IncrCounter("pull.states.skipped")
			continue
		}

		tbl, err := scraper.ExtractCourses(strings.NewReader(html), o.baseURL, o.now())
		if err != nil {
			logger.Warn("state produced no listing, skipping", logger.Fields{
				"state": st.Name,
				"error": err.Error(),
			})
			logger.IncrCounter("pull.states.skipped")
			continue
		}

		kept := reconcile(tbl.Records, archive)
		if len(kept) == 0 {
			continue
		}
		if len(agg.Header) == 0 {
			agg.Header = tbl.Header
		}
		agg.Append(kept...)
		logger.IncrCounter("pull.states.ok")
	}

	return agg, nil
}

// reconcile classifies each fresh record against the archive and keeps
// everything except exact matches. A nil archive keeps every record
// without emitting signals.
func reconcile(recs []course.Record, archive *course.Archive) []course.Record {
	if archive == nil {
		return recs
	}
	kept := make([]course.Record, 0, len(recs))
	for _, rec := range recs {
		switch course.Classify(rec, archive) {
		case course.Skip:
		case course.KeepWarn:
			logger.Warn("course contains modified data", logger.Fields{
				"course_id": rec[course.FieldCourseID],
			})
			kept = append(kept, rec)
		case course.KeepNew:
			logger.Info("new course", logger.Fields{
				"course_id": rec[course.FieldCourseID],
			})
			kept = append(kept, rec)
		}
	}
	return kept
}
