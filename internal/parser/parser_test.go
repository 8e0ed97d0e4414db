package parser

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httparse/internal/fastparser"
)

func TestParse_Request(t *testing.T) {
	data := []byte("GET /api/users HTTP/1.1\r\nHost: example.com\r\n\r\n")
	p := NewParser(data, 256, fastparser.Config{})
	node, st, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if st != fastparser.Complete {
		t.Fatalf("Parse() status = %v, want complete", st)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "request" {
		t.Errorf("type = %v, want 'request'", props["type"])
	}

	methodLit, ok := props["method"].(*ast.LiteralNode)
	if !ok || methodLit.Value() != "GET" {
		t.Errorf("method = %v, want 'GET'", props["method"])
	}

	pathLit, ok := props["path"].(*ast.LiteralNode)
	if !ok || pathLit.Value() != "/api/users" {
		t.Errorf("path = %v, want '/api/users'", props["path"])
	}

	versionLit, ok := props["version"].(*ast.LiteralNode)
	if !ok || versionLit.Value() != int64(1) {
		t.Errorf("version = %v, want 1", props["version"])
	}

	bodyStart, ok := props["bodyStart"].(*ast.LiteralNode)
	if !ok || bodyStart.Value() != int64(len(data)) {
		t.Errorf("bodyStart = %v, want %d", props["bodyStart"], len(data))
	}

	headers, ok := props["headers"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("headers expected ArrayDataNode, got %T", props["headers"])
	}
	if len(headers.Elements()) != 1 {
		t.Fatalf("headers count = %d, want 1", len(headers.Elements()))
	}
	h := headers.Elements()[0].(*ast.ObjectNode).Properties()
	if h["name"].(*ast.LiteralNode).Value() != "Host" {
		t.Errorf("header name = %v, want Host", h["name"])
	}
	if h["value"].(*ast.LiteralNode).Value() != "example.com" {
		t.Errorf("header value = %v, want example.com", h["value"])
	}
}

func TestParse_Incomplete(t *testing.T) {
	p := NewParser([]byte("GET / HTTP/1.1\r\nHost: exa"), 256, fastparser.Config{})
	node, st, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if st != fastparser.Incomplete || node != nil {
		t.Errorf("Parse() = (%v, %v), want (nil, incomplete)", node, st)
	}
}

func TestParse_Error(t *testing.T) {
	p := NewParser([]byte("GET / HTTP/2.0\r\n\r\n"), 256, fastparser.Config{})
	node, _, err := p.Parse()
	if err == nil {
		t.Fatal("expected error for HTTP/2.0")
	}
	if node != nil {
		t.Errorf("node = %v, want nil", node)
	}
}

func TestNodeToRequest_RoundTrip(t *testing.T) {
	data := []byte("POST /api HTTP/1.0\r\nHost: example.com\r\nContent-Length: 4\r\nX-A: 1\r\nX-A: 2\r\n\r\ntest")
	p := NewParser(data, 256, fastparser.Config{})
	node, _, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	req, err := NodeToRequest(node)
	if err != nil {
		t.Fatalf("NodeToRequest() error = %v", err)
	}

	if string(req.Method) != "POST" {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if string(req.Path) != "/api" {
		t.Errorf("Path = %q, want /api", req.Path)
	}
	if req.Version != 0 {
		t.Errorf("Version = %d, want 0", req.Version)
	}
	if req.BodyStart != len(data)-len("test") {
		t.Errorf("BodyStart = %d, want %d", req.BodyStart, len(data)-len("test"))
	}
	if len(req.Headers) != 4 {
		t.Fatalf("Headers count = %d, want 4", len(req.Headers))
	}
	if got := req.Headers.Values("x-a"); len(got) != 2 || string(got[1]) != "2" {
		t.Errorf("Values(x-a) = %q, want [1 2]", got)
	}
}

func TestNodeToRequest_Invalid(t *testing.T) {
	if _, err := NodeToRequest(ast.NewLiteralNode("x", zeroPos)); err == nil {
		t.Error("expected error for literal node")
	}

	resp := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type": ast.NewLiteralNode("response", zeroPos),
	}, zeroPos)
	if _, err := NodeToRequest(resp); err == nil {
		t.Error("expected error for response node")
	}

	bad := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"headers": ast.NewLiteralNode("Host: x", zeroPos),
	}, zeroPos)
	if _, err := NodeToRequest(bad); err == nil {
		t.Error("expected error for non-array headers")
	}
}
