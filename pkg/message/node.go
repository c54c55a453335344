package message

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a Request to a shape-core AST node, the
// representation shape tooling consumes:
//
//	{ "type": "request", "method": "GET", "path": "/",
//	  "headers": {"Host": "example.com", ...}, "body": "..." }
//
// Headers map to an ObjectNode keyed by the exact header spelling, matching
// the case-sensitive Headers type.
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"path":    ast.NewLiteralNode(req.Path, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Body != "" {
		props["body"] = ast.NewLiteralNode(req.Body, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a Response to a shape-core AST node:
//
//	{ "type": "response", "statusCode": 200, "reason": "OK",
//	  "contentType": "text/plain", "body": "..." }
func ResponseToNode(resp *Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":        ast.NewLiteralNode("response", zeroPos),
		"statusCode":  ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":      ast.NewLiteralNode(resp.Reason, zeroPos),
		"contentType": ast.NewLiteralNode(resp.ContentType, zeroPos),
	}
	if len(resp.Body) > 0 {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToValue converts an AST node to native Go values: literals to their
// values, arrays to []interface{}, objects to map[string]interface{}.
// Useful for feeding a node into structured log fields or a JSON encoder.
func NodeToValue(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToValue(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToValue(v)
		}
		return m
	default:
		return nil
	}
}

func headersToNode(headers Headers) ast.SchemaNode {
	props := make(map[string]ast.SchemaNode, len(headers))
	for k, v := range headers {
		props[k] = ast.NewLiteralNode(v, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}
