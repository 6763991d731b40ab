package course

import "testing"

func sampleArchive() *Archive {
	tbl := NewTable([]string{FieldURL, FieldCourseID, FieldLastUpdated, "course_name", FieldCity})
	tbl.Append(
		Record{
			FieldURL:      "https://ncrdb.usga.org/courseTeeInfo?CourseID=100",
			FieldCourseID: "100",
			"course_name": "Pumpkin Ridge GC",
			FieldCity:     "North Plains",
		},
		Record{
			FieldURL:      "https://ncrdb.usga.org/courseTeeInfo?CourseID=200",
			FieldCourseID: "200",
			"course_name": "Bandon Dunes",
			FieldCity:     "Bandon",
		},
		Record{
			FieldURL:      "https://ncrdb.usga.org/courseTeeInfo?CourseID=200",
			FieldCourseID: "200",
			"course_name": "Bandon Trails",
			FieldCity:     "Bandon",
		},
	)
	return NewArchive(tbl)
}

func TestNewArchiveNilTable(t *testing.T) {
	if a := NewArchive(nil); a != nil {
		t.Errorf("NewArchive(nil) = %v, want nil", a)
	}
}

func TestArchiveExists(t *testing.T) {
	a := sampleArchive()

	tests := []struct {
		name  string
		field string
		value string
		want  bool
	}{
		{"known id", FieldCourseID, "100", true},
		{"unknown id", FieldCourseID, "999", false},
		{"known url", FieldURL, "https://ncrdb.usga.org/courseTeeInfo?CourseID=200", true},
		{"known city", FieldCity, "Bandon", true},
		{"unknown city", FieldCity, "Portland", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Exists(tt.field, tt.value); got != tt.want {
				t.Errorf("Exists(%q, %q) = %v, want %v", tt.field, tt.value, got, tt.want)
			}
		})
	}
}

func TestArchiveAllEqual(t *testing.T) {
	a := sampleArchive()

	if !a.AllEqual("200", FieldCity, "Bandon") {
		t.Error("AllEqual should hold when every record with the id shares the value")
	}
	if a.AllEqual("200", "course_name", "Bandon Dunes") {
		t.Error("AllEqual should fail when records with the id disagree")
	}
	if a.AllEqual("999", FieldCity, "Bandon") {
		t.Error("AllEqual should fail for an unknown id")
	}
}

func TestArchiveNilReceivers(t *testing.T) {
	var a *Archive

	if a.Exists(FieldCourseID, "100") {
		t.Error("nil archive Exists = true, want false")
	}
	if a.AllEqual("100", FieldCity, "Bandon") {
		t.Error("nil archive AllEqual = true, want false")
	}
	if ids := a.IDs(); len(ids) != 0 {
		t.Errorf("nil archive IDs = %v, want empty", ids)
	}
	if recs := a.DetailsFor("100"); recs != nil {
		t.Errorf("nil archive DetailsFor = %v, want nil", recs)
	}
	if h := a.Header(); h != nil {
		t.Errorf("nil archive Header = %v, want nil", h)
	}
}

func TestArchiveIDsAndDetails(t *testing.T) {
	a := sampleArchive()

	ids := a.IDs()
	if len(ids) != 2 {
		t.Fatalf("IDs() has %d entries, want 2", len(ids))
	}
	for _, id := range []string{"100", "200"} {
		if _, ok := ids[id]; !ok {
			t.Errorf("IDs() missing %q", id)
		}
	}

	recs := a.DetailsFor("200")
	if len(recs) != 2 {
		t.Fatalf("DetailsFor(200) has %d records, want 2", len(recs))
	}
	if recs[0]["course_name"] != "Bandon Dunes" || recs[1]["course_name"] != "Bandon Trails" {
		t.Errorf("DetailsFor(200) out of stored order: %v", recs)
	}
}
