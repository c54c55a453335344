package message

import (
	"fmt"
	"strconv"
	"sync"
)

// bufPool pools []byte slices for response serialization.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of resp.
//
// The encoding is exactly:
//
//	HTTP/1.1 <code> <reason>\r\n
//	Content-Type: <type>\r\n
//	Content-Length: <n>\r\n
//	\r\n
//	<body>
//
// Content-Length is always len(resp.Body); no other headers are emitted.
func Marshal(resp *Response) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("message: Marshal(nil)")
	}
	if resp.StatusCode == 0 {
		return nil, fmt.Errorf("message: Marshal: response has no status code")
	}

	bp := bufPool.Get().(*[]byte)
	buf := appendResponse((*bp)[:0], resp)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}

// appendResponse serializes resp into buf.
func appendResponse(buf []byte, resp *Response) []byte {
	reason := resp.Reason
	if reason == "" {
		reason = ReasonPhrase(resp.StatusCode)
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	buf = append(buf, "HTTP/1.1 "...)
	buf = strconv.AppendInt(buf, int64(resp.StatusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	buf = appendCRLF(buf)

	buf = append(buf, "Content-Type: "...)
	buf = append(buf, contentType...)
	buf = appendCRLF(buf)

	buf = append(buf, "Content-Length: "...)
	buf = strconv.AppendInt(buf, int64(len(resp.Body)), 10)
	buf = appendCRLF(buf)

	buf = appendCRLF(buf)
	buf = append(buf, resp.Body...)
	return buf
}

func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}
