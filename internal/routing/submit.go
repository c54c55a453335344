package routing

import (
	"github.com/shapestone/shape-serve/pkg/message"
)

// SubmitPath is the only POST endpoint.
const SubmitPath = "/submit"

// contentTypeKey is looked up exactly as spelled. Lowercase variants are
// not recognized; the divergence from case-insensitive HTTP field names is
// long-standing behavior and covered by tests.
const contentTypeKey = "Content-Type"

// handleSubmit inspects the submission's content type and echoes the body
// back in a plain-text description. The body is never parsed or validated
// and has no size limit beyond the connection read buffer.
func handleSubmit(path string, headers message.Headers, body string) *message.Response {
	if path != SubmitPath {
		return message.PlainText(message.StatusNotFound, "404 Not Found")
	}

	switch headers.Get(contentTypeKey) {
	case "application/json":
		return message.PlainText(message.StatusOK, "Received JSON: "+body)
	case "application/x-www-form-urlencoded":
		return message.PlainText(message.StatusOK, "Received form data: "+body)
	default:
		return message.PlainText(message.StatusUnsupportedMediaType, "Unsupported Content-Type")
	}
}
