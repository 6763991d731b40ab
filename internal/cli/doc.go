// Package cli wires the pull pipeline behind a cobra command: state
// enumeration, per-state listing orchestration, per-course detail
// aggregation, and dated CSV snapshots. A states subcommand lists the
// available scope values without scraping anything.
package cli
