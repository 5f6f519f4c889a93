// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON input is accepted everywhere since YAML is a superset of it, which
// lets translation message files be read in either format.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 4MB).
var MaxInputSize = 4 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrKeyNotFound    = errors.New("yamlutil: key not found")
)

// Kind is the shape of a decoded YAML node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Node is a parsed YAML subtree that decodes without being re-encoded,
// so scalar text reaches the caller byte for byte.
type Node struct {
	node ast.Node
}

// Kind reports the shape of the node.
func (n Node) Kind() Kind {
	node := unwrap(n.node)
	if node == nil {
		return KindNull
	}
	switch node.Type() {
	case ast.NullType:
		return KindNull
	case ast.SequenceType:
		return KindSequence
	case ast.MappingType, ast.MappingValueType:
		return KindMapping
	default:
		return KindScalar
	}
}

// unwrap skips tag and anchor wrappers down to the tagged value.
func unwrap(node ast.Node) ast.Node {
	for {
		switch v := node.(type) {
		case *ast.TagNode:
			node = v.Value
		case *ast.AnchorNode:
			node = v.Value
		default:
			return node
		}
	}
}

// DecodeStrict decodes the node into v, rejecting unknown fields.
func (n Node) DecodeStrict(v any) error {
	if v == nil {
		return ErrNilDestination
	}
	if n.node == nil {
		return nil
	}
	if err := yaml.NodeToValue(n.node, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// KindOf reports the shape of the top-level node in data.
func KindOf(data []byte) (Kind, error) {
	n, err := Select(data, "")
	if err != nil {
		return KindNull, err
	}
	return n.Kind(), nil
}

// Select returns the node at a dotted key path (e.g. "aboutPage.biography").
// An empty path selects the whole document. Only mappings can be traversed.
func Select(data []byte, path string) (Node, error) {
	if len(data) == 0 {
		return Node{}, ErrNilData
	}
	if len(data) > MaxInputSize {
		return Node{}, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return Node{}, fmt.Errorf("yamlutil: %w", err)
	}

	if path == "" {
		for _, doc := range file.Docs {
			if doc.Body != nil && doc.Body.Type() != ast.DirectiveType {
				return Node{node: doc.Body}, nil
			}
		}
		return Node{}, nil
	}

	b := (&yaml.PathBuilder{}).Root()
	for _, part := range strings.Split(path, ".") {
		b = b.Child(part)
	}
	node, err := b.Build().FilterFile(file)
	switch {
	case yaml.IsNotFoundNodeError(err), errors.Is(err, yaml.ErrInvalidQuery):
		return Node{}, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
	case err != nil:
		return Node{}, fmt.Errorf("yamlutil: %w", err)
	}
	return Node{node: node}, nil
}
