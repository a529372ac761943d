package aggregator

import (
	"sort"
)

// Count pairs a field value with its number of occurrences.
type Count struct {
	Value string
	N     int
}

// FrequencyTable counts occurrences per distinct value and remembers the
// order in which values were first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add records one occurrence of value.
func (f *FrequencyTable) Add(value string) {
	if _, seen := f.counts[value]; !seen {
		f.order = append(f.order, value)
	}
	f.counts[value]++
}

// Count returns the number of occurrences of value.
func (f *FrequencyTable) Count(value string) int {
	return f.counts[value]
}

// Len returns the number of distinct values.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Entries returns all counts in first-seen order.
func (f *FrequencyTable) Entries() []Count {
	out := make([]Count, 0, len(f.order))
	for _, v := range f.order {
		out = append(out, Count{Value: v, N: f.counts[v]})
	}
	return out
}

// MostCommon returns the n most frequent values, highest count first.
// Equal counts keep first-seen order. n <= 0 returns every value.
func (f *FrequencyTable) MostCommon(n int) []Count {
	out := f.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].N > out[j].N
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// ByValue returns all counts ordered by value, ascending.
func (f *FrequencyTable) ByValue() []Count {
	out := f.Entries()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out
}
