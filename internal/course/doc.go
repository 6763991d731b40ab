// Package course provides the data model for NCRDB course listings and
// tee details: extracted records, the five-bucket result set of a
// detail run, the archive abstraction used as the comparison baseline
// for incremental pulls, and the reconciliation logic that classifies
// fresh records against it.
package course
