package message

import (
	"reflect"
	"testing"
)

func TestRequestToNode(t *testing.T) {
	req := &Request{
		Method:  "POST",
		Path:    "/submit",
		Headers: Headers{"Content-Type": "application/json"},
		Body:    `{"a":1}`,
	}

	value := NodeToValue(RequestToNode(req))
	m, ok := value.(map[string]interface{})
	if !ok {
		t.Fatalf("NodeToValue = %T, want map", value)
	}

	if m["type"] != "request" {
		t.Errorf("type = %v, want request", m["type"])
	}
	if m["method"] != "POST" {
		t.Errorf("method = %v, want POST", m["method"])
	}
	if m["path"] != "/submit" {
		t.Errorf("path = %v, want /submit", m["path"])
	}
	if m["body"] != `{"a":1}` {
		t.Errorf("body = %v", m["body"])
	}

	headers, ok := m["headers"].(map[string]interface{})
	if !ok {
		t.Fatalf("headers = %T, want map", m["headers"])
	}
	want := map[string]interface{}{"Content-Type": "application/json"}
	if !reflect.DeepEqual(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
}

func TestRequestToNodeOmitsEmptyBody(t *testing.T) {
	m := NodeToValue(RequestToNode(&Request{Method: "GET", Path: "/", Headers: Headers{}})).(map[string]interface{})

	if _, ok := m["body"]; ok {
		t.Error("empty body must not appear in the node")
	}
}

func TestResponseToNode(t *testing.T) {
	resp := PlainText(StatusNotFound, "404 Not Found")

	m, ok := NodeToValue(ResponseToNode(resp)).(map[string]interface{})
	if !ok {
		t.Fatal("expected a map")
	}
	if m["type"] != "response" {
		t.Errorf("type = %v, want response", m["type"])
	}
	if m["statusCode"] != int64(404) {
		t.Errorf("statusCode = %v (%T), want int64 404", m["statusCode"], m["statusCode"])
	}
	if m["reason"] != "NOT FOUND" {
		t.Errorf("reason = %v, want NOT FOUND", m["reason"])
	}
	if m["contentType"] != "text/plain" {
		t.Errorf("contentType = %v, want text/plain", m["contentType"])
	}
	if m["body"] != "404 Not Found" {
		t.Errorf("body = %v", m["body"])
	}
}

func TestNodeToValueNil(t *testing.T) {
	if got := NodeToValue(nil); got != nil {
		t.Errorf("NodeToValue(nil) = %v, want nil", got)
	}
}
