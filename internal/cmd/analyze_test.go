package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/atikulmunna/loglens/internal/aggregator"
	"github.com/atikulmunna/loglens/internal/filter"
	"github.com/atikulmunna/loglens/internal/parser"
	"github.com/atikulmunna/loglens/internal/source"
)

func testSettings(t *testing.T, patterns ...string) settings {
	t.Helper()
	pf, err := filter.NewPathFilter(patterns)
	if err != nil {
		t.Fatal(err)
	}
	return settings{top: 3, filter: pf}
}

func TestAnalyzeSample(t *testing.T) {
	var buf bytes.Buffer
	if err := analyze(&buf, source.Sample, testSettings(t)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total Requests : 6\n",
		"Unique IPs     : 4\n",
		"  192.168.1.1        2 requests\n",
		"  10.0.0.2           2 requests\n",
		"Errors (3):\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	// Status codes are listed in ascending order.
	i200 := strings.Index(out, "HTTP 200")
	i401 := strings.Index(out, "HTTP 401")
	i403 := strings.Index(out, "HTTP 403")
	i500 := strings.Index(out, "HTTP 500")
	if !(i200 < i401 && i401 < i403 && i403 < i500) {
		t.Errorf("status codes not ascending:\n%s", out)
	}
}

func TestAnalyzeNoEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := analyze(&buf, "nothing useful\n", testSettings(t)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No log entries found.\n" {
		t.Errorf("expected only the no-entries message, got %q", buf.String())
	}
}

func TestAnalyzeFilteredToNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := analyze(&buf, source.Sample, testSettings(t, "/static/**")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No log entries found.\n" {
		t.Errorf("expected no-entries message, got %q", buf.String())
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	cfg := testSettings(t)

	if err := analyze(&first, source.Sample, cfg); err != nil {
		t.Fatal(err)
	}
	if err := analyze(&second, source.Sample, cfg); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("expected identical reports for identical input")
	}
}

// countingRenderer records which Renderer methods were called.
type countingRenderer struct {
	reports int
	empties int
	last    aggregator.Stats
}

func (r *countingRenderer) Render(stats aggregator.Stats) error {
	r.reports++
	r.last = stats
	return nil
}

func (r *countingRenderer) RenderEmpty() error {
	r.empties++
	return nil
}

func TestAnalyzeWithRenderer(t *testing.T) {
	r := &countingRenderer{}
	if err := analyzeWith(parser.NewAccessParser(), r, source.Sample, testSettings(t)); err != nil {
		t.Fatal(err)
	}
	if r.reports != 1 || r.empties != 0 {
		t.Errorf("expected one report, got reports=%d empties=%d", r.reports, r.empties)
	}
	if r.last.Total != 6 {
		t.Errorf("expected 6 total, got %d", r.last.Total)
	}

	r = &countingRenderer{}
	if err := analyzeWith(parser.NewAccessParser(), r, "junk\n", testSettings(t)); err != nil {
		t.Fatal(err)
	}
	if r.reports != 0 || r.empties != 1 {
		t.Errorf("expected one empty report, got reports=%d empties=%d", r.reports, r.empties)
	}
}

func TestLoadSettingsWrapsFilterError(t *testing.T) {
	viper.Set("paths", []string{"/api/[unclosed"})
	t.Cleanup(func() { viper.Set("paths", []string{}) })

	_, err := loadSettings()
	if !errors.Is(err, filter.ErrBadPattern) {
		t.Fatalf("expected ErrBadPattern, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "path filter: ") {
		t.Errorf("expected path filter context, got %q", err.Error())
	}
}

func TestLoadSettingsRejectsTop(t *testing.T) {
	viper.Set("top", 0)
	t.Cleanup(func() { viper.Set("top", 3) })

	if _, err := loadSettings(); err == nil || !strings.Contains(err.Error(), "invalid top count 0") {
		t.Errorf("expected invalid top error, got %v", err)
	}
}
