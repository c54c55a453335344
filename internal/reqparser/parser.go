// Package reqparser turns one raw buffer of request bytes into a structured
// request. Parsing is total: any byte sequence, including an empty one,
// yields a result. Malformed pieces degrade (empty method, dropped header
// line) and are reported as warnings rather than errors.
package reqparser

import (
	"fmt"
	"strings"
)

// Result holds the outcome of parsing one request buffer.
type Result struct {
	Method   string
	Path     string
	Headers  map[string]string
	Body     string
	Warnings []string
}

// headerSep is the literal two-byte key/value separator. A colon without a
// following space does not split a header line.
const headerSep = ": "

// Parser walks the lines of a single request buffer.
type Parser struct {
	lines    []string
	pos      int
	warnings []string
}

// New creates a parser for the given raw bytes. Invalid UTF-8 sequences are
// replaced with U+FFFD, never rejected.
func New(data []byte) *Parser {
	text := strings.ToValidUTF8(string(data), "�")
	return &Parser{lines: splitLines(text)}
}

// Parse extracts method, path, headers, and body.
//
// The request line is split on whitespace: first token is the method,
// second the path; both degrade to "" when absent and any protocol-version
// token is ignored. Header lines run until the first empty line; each must
// contain ": " and a repeated key keeps its last value. Everything after
// the first empty line is rejoined with "\n" and returned verbatim — there
// is no Content-Length framing. When no empty line exists the body stays
// empty and trailing separator-less lines are dropped as unterminated
// headers.
func (p *Parser) Parse() *Result {
	res := &Result{Headers: map[string]string{}}

	if len(p.lines) == 0 {
		p.warn("empty request buffer")
		res.Warnings = p.warnings
		return res
	}

	res.Method, res.Path = p.parseRequestLine(p.lines[0])
	p.pos = 1

	res.Headers = p.parseHeaders()
	res.Body = p.parseBody()
	res.Warnings = p.warnings
	return res
}

func (p *Parser) parseRequestLine(line string) (method, path string) {
	parts := strings.Fields(line)
	switch len(parts) {
	case 0:
		p.warn("empty request line")
		return "", ""
	case 1:
		p.warn("request line has a method but no path")
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

func (p *Parser) parseHeaders() map[string]string {
	headers := map[string]string{}
	for ; p.pos < len(p.lines); p.pos++ {
		line := p.lines[p.pos]
		if line == "" {
			p.pos++ // start of body
			return headers
		}
		key, value, ok := strings.Cut(line, headerSep)
		if !ok {
			p.warn(fmt.Sprintf("malformed header line (no %q), dropped: %s", headerSep, line))
			continue
		}
		headers[key] = value
	}
	return headers
}

func (p *Parser) parseBody() string {
	if p.pos >= len(p.lines) {
		return ""
	}
	return strings.Join(p.lines[p.pos:], "\n")
}

func (p *Parser) warn(msg string) {
	p.warnings = append(p.warnings, msg)
}

// splitLines splits on LF and strips one trailing CR per line, so both
// CRLF and bare-LF requests parse the same way. A trailing newline does
// not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
