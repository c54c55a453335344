// Package routing dispatches parsed requests to their handlers.
//
// Route is a total function: every request, however malformed, maps to
// exactly one response. There is no error path out of this package.
package routing

import (
	"strings"

	"github.com/shapestone/shape-serve/internal/static"
	"github.com/shapestone/shape-serve/pkg/message"
)

const homepageBody = "Welcome to the homepage!"

// Router owns the route table.
type Router struct {
	files *static.Server
}

// NewRouter returns a router serving static assets from files.
func NewRouter(files *static.Server) *Router {
	return &Router{files: files}
}

// Route maps a request to its response:
//
//	GET  /            homepage
//	GET  /static/...  static file server
//	GET  other        404
//	POST /submit      submission handler
//	POST other        404
//	other method      405
func (rt *Router) Route(req *message.Request) *message.Response {
	switch req.Method {
	case "GET":
		return rt.routeGet(req.Path)
	case "POST":
		return handleSubmit(req.Path, req.Headers, req.Body)
	default:
		return message.PlainText(message.StatusMethodNotAllowed, "405 Method Not Allowed")
	}
}

func (rt *Router) routeGet(path string) *message.Response {
	switch {
	case path == "/":
		return message.PlainText(message.StatusOK, homepageBody)
	case strings.HasPrefix(path, static.Prefix):
		return rt.files.Serve(path)
	default:
		return message.PlainText(message.StatusNotFound, "404 Not Found")
	}
}
