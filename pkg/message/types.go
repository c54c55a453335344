// Package message defines the HTTP/1.1 request and response records used by
// shape-serve and their wire-format serialization.
//
// The request side is deliberately lenient: UnmarshalRequest is a total
// function that extracts whatever it can from arbitrary bytes and reports
// issues as warnings instead of errors. The response side is deliberately
// rigid: a Response always serializes to exactly a status line, Content-Type,
// Content-Length, and the body.
//
// # Thread Safety
//
// Requests and Responses are plain records with no shared state. Each
// connection builds its own; all functions in this package are safe for
// concurrent use by multiple goroutines.
package message

// Request represents one parsed HTTP/1.1 request.
//
// A Request is built once by UnmarshalRequest and never mutated afterwards.
// Missing request-line tokens degrade to empty strings rather than errors.
type Request struct {
	Method  string  // "GET", "POST", ... ("" if the request line was empty)
	Path    string  // request-target "/static/style.css" ("" if absent)
	Headers Headers // header fields as received
	Body    string  // everything after the first blank line, verbatim
}

// Response represents one HTTP/1.1 response.
//
// Content-Length is not stored: Marshal derives it from len(Body), so the
// two can never disagree.
type Response struct {
	StatusCode  int    // 200, 404, ...
	Reason      string // "OK", "NOT FOUND", ...
	ContentType string // value of the Content-Type header
	Body        []byte // raw body
}

// Headers holds request header fields keyed exactly as they appeared on the
// wire. Keys are case-sensitive and a repeated key keeps the last value.
//
// Real HTTP header names are case-insensitive; this type intentionally is
// not. shape-serve looks fields up by their canonical spelling only, so
// "content-type: application/json" is a different field than
// "Content-Type: application/json".
type Headers map[string]string

// Get returns the value for key, or "" if the key is absent.
// The lookup is an exact, case-sensitive match.
func (h Headers) Get(key string) string {
	return h[key]
}

// Has reports whether key is present, using an exact match.
func (h Headers) Has(key string) bool {
	_, ok := h[key]
	return ok
}

// Clone returns a copy of the headers. A nil receiver yields nil.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// Status codes used by the router and handlers.
const (
	StatusOK                   = 200
	StatusNotFound             = 404
	StatusMethodNotAllowed     = 405
	StatusUnsupportedMediaType = 415
)

// reasonPhrases are spelled the way the server has always sent them.
// They are not the RFC 9110 capitalizations.
var reasonPhrases = map[int]string{
	StatusOK:                   "OK",
	StatusNotFound:             "NOT FOUND",
	StatusMethodNotAllowed:     "METHOD NOT ALLOWED",
	StatusUnsupportedMediaType: "UNSUPPORTED MEDIA TYPE",
}

// ReasonPhrase returns the reason phrase for a status code, or "UNKNOWN"
// for codes the server never produces.
func ReasonPhrase(code int) string {
	if r, ok := reasonPhrases[code]; ok {
		return r
	}
	return "UNKNOWN"
}

// NewResponse builds a Response for code with the given content type and
// body, filling in the server's reason phrase.
func NewResponse(code int, contentType string, body string) *Response {
	return &Response{
		StatusCode:  code,
		Reason:      ReasonPhrase(code),
		ContentType: contentType,
		Body:        []byte(body),
	}
}

// PlainText builds a text/plain Response, the shape every error response
// and the homepage share.
func PlainText(code int, body string) *Response {
	return NewResponse(code, "text/plain", body)
}
