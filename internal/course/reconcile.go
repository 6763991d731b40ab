package course

// Outcome is the reconciliation result for one freshly extracted
// record, computed once against the full archive and never revised.
type Outcome int

const (
	// KeepNew means no archived record matched on any criterion.
	KeepNew Outcome = iota
	// KeepWarn means a partial match: the record is kept, but the
	// caller should surface a warning naming its course id.
	KeepWarn
	// Skip means the record matched the archive on every criterion
	// and carries nothing new.
	Skip
)

// String returns the outcome name for log output.
func (o Outcome) String() string {
	switch o {
	case KeepNew:
		return "new"
	case KeepWarn:
		return "modified"
	case Skip:
		return "skip"
	}
	return "unknown"
}

// Classify evaluates three match criteria independently:
//
//   - url: any archived record has an identical url
//   - id: any archived record has an identical course_id
//   - city: the id matched and every archived record sharing that
//     course_id has the same city as the new record
//
// All three true yields Skip, all false KeepNew, anything in between
// KeepWarn. This is a cheap membership-and-consistency check, not a
// deep diff; callers needing full change detection must diff KeepWarn
// records themselves.
//
// A nil archive classifies every record KeepNew.
func Classify(rec Record, archive *Archive) Outcome {
	if archive == nil {
		return KeepNew
	}

	urlMatch := archive.Exists(FieldURL, rec[FieldURL])
	idMatch := archive.Exists(FieldCourseID, rec[FieldCourseID])
	cityMatch := false
	if idMatch {
		cityMatch = archive.AllEqual(rec[FieldCourseID], FieldCity, rec[FieldCity])
	}

	matches := 0
	for _, m := range []bool{urlMatch, idMatch, cityMatch} {
		if m {
			matches++
		}
	}

	switch matches {
	case 3:
		return Skip
	case 0:
		return KeepNew
	default:
		return KeepWarn
	}
}
