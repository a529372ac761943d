package parser

import (
	"regexp"
	"strings"

	"github.com/atikulmunna/loglens/internal/model"
)

// Parser converts a raw log line into a structured Record.
// The second return value is false when the line does not fit the grammar.
type Parser interface {
	Parse(line string) (model.Record, bool)
}

// ---------------------------------------------------------------------------
// Access-log grammar
// ---------------------------------------------------------------------------

// accessPattern matches lines of the form
//
//	192.168.1.1 [24/Feb/2026:08:00:01] "GET /index.html HTTP/1.1" 200 4523
//
// Matching is case-insensitive. The timestamp is kept as raw bracketed text.
var accessPattern = regexp.MustCompile(`(?i)` +
	`(?P<ip>\d+\.\d+\.\d+\.\d+)\s+` +
	`(?P<timestamp>\[.+?\])\s+` +
	`"?(?P<method>GET|POST|PUT|DELETE|PATCH)\s+(?P<path>/\S*)\s+HTTP/\S+` +
	`\s*"\s*(?P<status>\d{3})\s+(?P<size>\d+|-)`)

// ---------------------------------------------------------------------------
// Access Parser
// ---------------------------------------------------------------------------

var _ Parser = (*AccessParser)(nil)

// AccessParser extracts Records from access-log text.
type AccessParser struct {
	re *regexp.Regexp

	// submatch indexes of the named groups
	ip, timestamp, method, path, status, size int
}

func NewAccessParser() *AccessParser {
	re := accessPattern
	return &AccessParser{
		re:        re,
		ip:        re.SubexpIndex("ip"),
		timestamp: re.SubexpIndex("timestamp"),
		method:    re.SubexpIndex("method"),
		path:      re.SubexpIndex("path"),
		status:    re.SubexpIndex("status"),
		size:      re.SubexpIndex("size"),
	}
}

func (p *AccessParser) Parse(line string) (model.Record, bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return model.Record{}, false
	}

	return model.Record{
		IP:        m[p.ip],
		Timestamp: m[p.timestamp],
		Method:    model.Method(strings.ToUpper(m[p.method])),
		Path:      m[p.path],
		Status:    m[p.status],
		Size:      m[p.size],
	}, true
}

// ParseAll parses every line of text and returns the records in input order.
// Lines that do not match are dropped.
func (p *AccessParser) ParseAll(text string) []model.Record {
	var records []model.Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := p.Parse(line); ok {
			records = append(records, rec)
		}
	}
	return records
}
