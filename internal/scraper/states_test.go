package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

const statesPage = `<html><body><form>
	<select id="ddState">
		<option value="">(Select)</option>
		<option value="OR">Oregon</option>
		<option value="WA">Washington</option>
		<option value="AB">Alberta</option>
	</select>
</form></body></html>`

func TestParseStates(t *testing.T) {
	states, err := ParseStates(strings.NewReader(statesPage))
	if err != nil {
		t.Fatalf("ParseStates() error = %v", err)
	}

	want := []State{
		{Name: "Oregon", Value: "OR"},
		{Name: "Washington", Value: "WA"},
		{Name: "Alberta", Value: "AB"},
	}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("states = %v, want %v", states, want)
	}
}

func TestParseStatesMissingDropdown(t *testing.T) {
	page := `<html><body><p>maintenance</p></body></html>`
	if _, err := ParseStates(strings.NewReader(page)); err == nil {
		t.Fatal("ParseStates() error = nil, want missing-dropdown error")
	}
}

func TestFetchStates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statesPage))
	}))
	defer srv.Close()

	sc := New(srv.URL, 5*time.Second)
	states, err := sc.FetchStates(context.Background())
	if err != nil {
		t.Fatalf("FetchStates() error = %v", err)
	}
	if len(states) != 3 {
		t.Errorf("state count = %d, want 3", len(states))
	}
}

func TestFetchStatesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sc := New(srv.URL, 5*time.Second)
	if _, err := sc.FetchStates(context.Background()); err == nil {
		t.Fatal("FetchStates() error = nil, want status error")
	}
}
