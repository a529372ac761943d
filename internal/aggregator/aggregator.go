package aggregator

import (
	"errors"

	"github.com/atikulmunna/loglens/internal/model"
)

// ErrNoEntries is returned by Summarize when there is nothing to analyze.
var ErrNoEntries = errors.New("no log entries found")

const defaultTop = 3

// Stats holds the summary of one analysis pass.
type Stats struct {
	Total       int
	UniqueIPs   int
	TopIPs      []Count
	StatusCodes []Count // ascending by code
	Methods     []Count // first-seen order
	TopPaths    []Count // empty unless WithTopPaths is set
	Errors      []model.Record
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTop sets how many IPs are reported in Stats.TopIPs.
func WithTop(n int) Option {
	return func(a *Aggregator) {
		a.top = n
	}
}

// WithTopPaths enables Stats.TopPaths with the n most requested paths.
func WithTopPaths(n int) Option {
	return func(a *Aggregator) {
		a.topPaths = n
	}
}

// Aggregator builds frequency tables over a sequence of records.
type Aggregator struct {
	top      int
	topPaths int
	total    int
	ips      *FrequencyTable
	statuses *FrequencyTable
	methods  *FrequencyTable
	paths    *FrequencyTable
	errors   []model.Record
}

// New creates an empty Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		top:      defaultTop,
		ips:      NewFrequencyTable(),
		statuses: NewFrequencyTable(),
		methods:  NewFrequencyTable(),
		paths:    NewFrequencyTable(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add counts a record.
func (a *Aggregator) Add(r model.Record) {
	a.total++
	a.ips.Add(r.IP)
	a.statuses.Add(r.Status)
	a.methods.Add(string(r.Method))
	a.paths.Add(r.Path)
	if r.IsError() {
		a.errors = append(a.errors, r)
	}
}

// Snapshot returns the current statistics.
func (a *Aggregator) Snapshot() Stats {
	s := Stats{
		Total:       a.total,
		UniqueIPs:   a.ips.Len(),
		TopIPs:      a.ips.MostCommon(a.top),
		StatusCodes: a.statuses.ByValue(),
		Methods:     a.methods.Entries(),
		Errors:      append([]model.Record(nil), a.errors...),
	}
	if a.topPaths > 0 {
		s.TopPaths = a.paths.MostCommon(a.topPaths)
	}
	return s
}

// Summarize aggregates records in a single pass.
// It returns ErrNoEntries when records is empty.
func Summarize(records []model.Record, opts ...Option) (Stats, error) {
	if len(records) == 0 {
		return Stats{}, ErrNoEntries
	}

	a := New(opts...)
	for _, r := range records {
		a.Add(r)
	}
	return a.Snapshot(), nil
}
