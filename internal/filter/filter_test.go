package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atikulmunna/loglens/internal/model"
)

func records(paths ...string) []model.Record {
	var out []model.Record
	for _, p := range paths {
		out = append(out, model.Record{IP: "10.0.0.1", Method: model.MethodGet, Path: p, Status: "200"})
	}
	return out
}

func paths(rs []model.Record) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Path)
	}
	return out
}

func TestNoPatternsKeepsAll(t *testing.T) {
	f, err := NewPathFilter(nil)
	if err != nil {
		t.Fatal(err)
	}

	in := records("/index.html", "/api/login")
	if got := f.Apply(in); len(got) != 2 {
		t.Errorf("expected all records kept, got %d", len(got))
	}
}

func TestRecursivePattern(t *testing.T) {
	f, err := NewPathFilter([]string{"/api/**"})
	if err != nil {
		t.Fatal(err)
	}

	got := paths(f.Apply(records("/index.html", "/api/login", "/dashboard", "/api/user/5")))
	want := []string{"/api/login", "/api/user/5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filtered paths mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiplePatterns(t *testing.T) {
	f, err := NewPathFilter([]string{"/*.html", "/dashboard"})
	if err != nil {
		t.Fatal(err)
	}

	if !f.Match("/index.html") {
		t.Error("expected /index.html to match")
	}
	if !f.Match("/dashboard") {
		t.Error("expected /dashboard to match")
	}
	if f.Match("/api/data") {
		t.Error("expected /api/data not to match")
	}
}

func TestInvalidPattern(t *testing.T) {
	_, err := NewPathFilter([]string{"/api/**", "/api/[unclosed"})
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected ErrBadPattern, got %v", err)
	}
}
