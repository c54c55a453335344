package message

import (
	"github.com/shapestone/shape-serve/internal/reqparser"
)

// ParseResult holds a parsed request plus any non-fatal issues found while
// parsing it.
type ParseResult struct {
	Request  *Request
	Warnings []string // human-readable, for the log sink; never fatal
}

// UnmarshalRequest performs best-effort parsing of one request buffer.
// It never fails: malformed input degrades field by field (empty method or
// path, dropped header lines) and every issue is reported in Warnings.
//
// The buffer is expected to hold the entire request — request line, header
// lines, blank line, body — exactly as read from the connection. Bodies are
// taken verbatim from whatever follows the first blank line; there is no
// Content-Length framing, so a body cut off by the read buffer stays cut
// off here.
func UnmarshalRequest(data []byte) *ParseResult {
	p := reqparser.New(data)
	internal := p.Parse()

	return &ParseResult{
		Request: &Request{
			Method:  internal.Method,
			Path:    internal.Path,
			Headers: Headers(internal.Headers),
			Body:    internal.Body,
		},
		Warnings: internal.Warnings,
	}
}
