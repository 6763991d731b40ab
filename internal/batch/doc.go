// Package batch runs the sequential pull passes: the per-state listing
// orchestration and the per-course detail aggregation. Both paces
// upstream calls with a fixed courtesy delay, recover scoped failures
// locally, and accumulate results in memory so snapshot files are only
// written after a completed pass.
package batch
