package httparse

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httparse/internal/parser"
)

// ParseNode parses buf and returns the head as a shape-core AST:
//
//	{ "type": "request", "method": "GET", "path": "/api",
//	  "version": 1,
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "bodyStart": 37 }
//
// The node is nil unless the status is Complete. Node values are copies and
// do not alias buf.
func ParseNode(buf []byte, opts ...Option) (ast.SchemaNode, Status, error) {
	p := NewParser(opts...)
	return parser.NewParser(buf, p.opts.maxHeaders, p.opts.scan).Parse()
}

// RequestToNode converts a parsed request to an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return parser.RequestToNode(req)
}

// NodeToRequest converts an AST ObjectNode produced by RequestToNode or
// ParseNode back to a Request holding its own copies of every field.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	return parser.NodeToRequest(node)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}
