// Package parser maps parsed HTTP/1.x request heads onto shape-core AST
// nodes.
//
// A request head becomes an ObjectNode:
//
//	{ "type": "request", "method": "GET", "path": "/api",
//	  "version": 1,
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "bodyStart": 37 }
//
// Unlike the scanner's views, node values are owned strings and outlive the
// parsed buffer.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httparse/internal/fastparser"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data.
type Parser struct {
	data       []byte
	maxHeaders int
	cfg        fastparser.Config
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte, maxHeaders int, cfg fastparser.Config) *Parser {
	return &Parser{data: data, maxHeaders: maxHeaders, cfg: cfg}
}

// Parse scans the request head and returns its node. The node is nil unless
// the status is Complete.
func (p *Parser) Parse() (ast.SchemaNode, fastparser.Status, error) {
	var req fastparser.Request
	st, err := fastparser.ParseRequest(p.data, &req, p.maxHeaders, p.cfg)
	if err != nil || st != fastparser.Complete {
		return nil, st, err
	}
	return RequestToNode(&req), st, nil
}

// RequestToNode converts a parsed request head to an ObjectNode.
func RequestToNode(req *fastparser.Request) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":      ast.NewLiteralNode("request", zeroPos),
		"method":    ast.NewLiteralNode(string(req.Method), zeroPos),
		"path":      ast.NewLiteralNode(string(req.Path), zeroPos),
		"version":   ast.NewLiteralNode(int64(req.Version), zeroPos),
		"headers":   headersToNode(req.Headers),
		"bodyStart": ast.NewLiteralNode(int64(req.BodyStart), zeroPos),
	}, zeroPos)
}

func headersToNode(headers fastparser.Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"name":  ast.NewLiteralNode(string(h.Name), zeroPos),
			"value": ast.NewLiteralNode(string(h.Value), zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToRequest converts an ObjectNode back to a request head. The returned
// slices are fresh copies.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if typ := literalString(props["type"]); typ != "request" {
		return nil, fmt.Errorf("expected request node, got type %q", typ)
	}

	req := &fastparser.Request{
		Method:    []byte(literalString(props["method"])),
		Path:      []byte(literalString(props["path"])),
		Version:   uint8(literalInt(props["version"])),
		BodyStart: int(literalInt(props["bodyStart"])),
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}
	return req, nil
}

func nodeToHeaders(node ast.SchemaNode) (fastparser.Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make(fastparser.Headers, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		headers = append(headers, fastparser.Header{
			Name:  []byte(literalString(props["name"])),
			Value: []byte(literalString(props["value"])),
		})
	}
	return headers, nil
}

func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func literalInt(node ast.SchemaNode) int64 {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return 0
	}
	switch n := lit.Value().(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case int:
		return int64(n)
	}
	return 0
}
