package httparse

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from ParseNode) back to HTTP wire format bytes.
//
// The node must be an ObjectNode with a "type" property of "request", as
// produced by ParseNode or RequestToNode. Response nodes are not supported.
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("httparse: Render: expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	typeProp, ok := props["type"]
	if !ok {
		return nil, fmt.Errorf("httparse: Render: missing 'type' property")
	}

	typeLit, ok := typeProp.(*ast.LiteralNode)
	if !ok {
		return nil, fmt.Errorf("httparse: Render: 'type' is not a literal")
	}

	msgType, ok := typeLit.Value().(string)
	if !ok {
		return nil, fmt.Errorf("httparse: Render: 'type' is not a string")
	}

	switch msgType {
	case "request":
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, fmt.Errorf("httparse: Render: %w", err)
		}
		return AppendRequest(nil, req), nil

	case "response":
		return nil, fmt.Errorf("httparse: Render: response messages are not supported")

	default:
		return nil, fmt.Errorf("httparse: Render: unknown message type %q", msgType)
	}
}
