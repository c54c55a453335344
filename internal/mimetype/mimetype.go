// Package mimetype maps file extensions to content-type strings.
package mimetype

import "strings"

// DefaultType is returned for unknown or missing extensions.
const DefaultType = "application/octet-stream"

// byExtension covers the types the server has always served. Matching is
// exact and case-sensitive: "HTML" is not "html".
var byExtension = map[string]string{
	"html": "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"json": "application/json",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"txt":  "text/plain",
}

// Resolve returns the content type for the given file path, keyed on the
// substring after the last dot. Paths without a dot, and extensions outside
// the table, resolve to DefaultType. Pure lookup, no I/O.
func Resolve(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return DefaultType
	}
	if t, ok := byExtension[path[idx+1:]]; ok {
		return t
	}
	return DefaultType
}
