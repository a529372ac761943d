package model

// Method is an HTTP request method recognized by the access-log grammar.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// Record represents a single parsed access-log line.
type Record struct {
	IP        string
	Timestamp string // raw bracketed text, e.g. [24/Feb/2026:08:00:01]
	Method    Method
	Path      string
	Status    string // three-digit HTTP status
	Size      string // response bytes or "-"
}

// IsError reports whether the record carries a 4xx or 5xx status.
func (r Record) IsError() bool {
	if len(r.Status) == 0 {
		return false
	}
	switch r.Status[0] {
	case '4', '5':
		return true
	default:
		return false
	}
}
