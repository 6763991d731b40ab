package course

// Archive is a previously persisted snapshot used as the comparison
// baseline for incremental runs. The typed accessors are the only
// lookup surface; callers never index columns directly, so any tabular
// backend that can produce a Table works the same way.
type Archive struct {
	table *Table
	byID  map[string][]Record
}

// NewArchive wraps a loaded table for reconciliation lookups. A nil
// table yields a nil Archive, which every accessor treats as "no
// archive supplied".
func NewArchive(t *Table) *Archive {
	if t == nil {
		return nil
	}
	a := &Archive{table: t, byID: make(map[string][]Record)}
	for _, rec := range t.Records {
		if id := rec[FieldCourseID]; id != "" {
			a.byID[id] = append(a.byID[id], rec)
		}
	}
	return a
}

// Exists reports whether any archived record carries the given value
// in the given field.
func (a *Archive) Exists(field, value string) bool {
	if a == nil {
		return false
	}
	for _, rec := range a.table.Records {
		if rec[field] == value {
			return true
		}
	}
	return false
}

// AllEqual reports whether every archived record with the given
// course_id carries the given value in the given field. False when the
// id is unknown.
func (a *Archive) AllEqual(courseID, field, value string) bool {
	if a == nil {
		return false
	}
	recs := a.byID[courseID]
	if len(recs) == 0 {
		return false
	}
	for _, rec := range recs {
		if rec[field] != value {
			return false
		}
	}
	return true
}

// IDs returns the set of archived course ids.
func (a *Archive) IDs() map[string]struct{} {
	set := make(map[string]struct{})
	if a == nil {
		return set
	}
	for id := range a.byID {
		set[id] = struct{}{}
	}
	return set
}

// DetailsFor returns the archived records tagged with the course id,
// in their stored order.
func (a *Archive) DetailsFor(courseID string) []Record {
	if a == nil {
		return nil
	}
	return a.byID[courseID]
}

// Header returns the stored column order of the underlying table.
func (a *Archive) Header() []string {
	if a == nil {
		return nil
	}
	return a.table.Header
}
