// Package static serves files from a single root directory.
package static

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-serve/internal/mimetype"
	"github.com/shapestone/shape-serve/pkg/message"
)

// Prefix is the URL path prefix the router hands to this package.
const Prefix = "/static/"

const notFoundBody = "404 File Not Found"

// Server reads files under a root directory and builds responses for them.
//
// Every failure mode — missing file, unreadable file, non-text content, or
// a path that escapes the root — collapses to the same 404 response. The
// containment check is deliberate hardening: a request such as
// GET /static/../secret.txt must never read outside the root.
type Server struct {
	root string
}

// NewServer returns a Server rooted at dir. dir is used as given; a
// relative dir resolves against the process working directory, matching
// the historical layout where /static/x maps to ./static/x.
func NewServer(dir string) *Server {
	return &Server{root: dir}
}

// Serve builds the response for a request path beginning with Prefix.
//
// On success the response is a 200 with the content type resolved from the
// file extension and the file contents as the body. Files must be valid
// UTF-8 text; binary content is treated the same as a missing file.
func (s *Server) Serve(reqPath string) *message.Response {
	name, ok := s.resolve(reqPath)
	if !ok {
		return message.PlainText(message.StatusNotFound, notFoundBody)
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return message.PlainText(message.StatusNotFound, notFoundBody)
	}
	if !utf8.Valid(content) {
		return message.PlainText(message.StatusNotFound, notFoundBody)
	}

	return &message.Response{
		StatusCode:  message.StatusOK,
		Reason:      message.ReasonPhrase(message.StatusOK),
		ContentType: mimetype.Resolve(reqPath),
		Body:        content,
	}
}

// resolve maps a request path to a filesystem path under the root, or
// reports false if the path is not contained by the root.
func (s *Server) resolve(reqPath string) (string, bool) {
	rel := strings.TrimPrefix(reqPath, Prefix)
	if rel == "" || rel == reqPath {
		return "", false
	}

	// Clean in slash form before touching the filesystem. A path that is
	// absolute or still points upward after cleaning escapes the root.
	rel = path.Clean(rel)
	if rel == "." || rel == ".." || path.IsAbs(rel) || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), true
}
