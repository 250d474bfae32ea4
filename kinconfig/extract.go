package kinconfig

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"

	"go.viam.com/relaxedik/logging"
)

// extractor converts the value of one top-level key at a time.
type extractor struct {
	field  string
	strict bool
	logger logging.Logger
}

func (ex *extractor) errorf(path, format string, args ...interface{}) error {
	reason := fmt.Sprintf(format, args...)
	if path != "" {
		reason = path + ": " + reason
	}
	return NewSchemaError(ex.field, reason)
}

func (ex *extractor) unexpected(node *yaml.Node, path, expected string) error {
	return ex.errorf(path, "expected %s but got %s (line %d)", expected, describe(node), node.Line)
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// describe names the kind of value a node holds, for error messages.
func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return fmt.Sprintf("string %q", node.Value)
		case "!!int":
			return "integer " + node.Value
		case "!!float":
			return "float " + node.Value
		case "!!bool":
			return "boolean " + node.Value
		case "!!null":
			return "null"
		default:
			return node.ShortTag() + " " + node.Value
		}
	case yaml.DocumentNode, yaml.AliasNode:
	}
	return "an unsupported node"
}

func (ex *extractor) scalarString(node *yaml.Node, path string) (string, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", ex.unexpected(node, path, "a string")
	}
	return node.Value, nil
}

// nonEmptyString is the rule for top-level string fields.
func (ex *extractor) nonEmptyString(node *yaml.Node) (string, error) {
	s, err := ex.scalarString(node, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", ex.errorf("", "must not be empty")
	}
	return s, nil
}

// scalarFloat accepts float and integer literals; anything else, including numeric-looking
// quoted strings, is an error.
func (ex *extractor) scalarFloat(node *yaml.Node, path string) (float64, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return 0, ex.unexpected(node, path, "a number")
	}
	switch node.ShortTag() {
	case "!!float", "!!int":
	default:
		return 0, ex.unexpected(node, path, "a number")
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, ex.errorf(path, "invalid number %q (line %d): %v", node.Value, node.Line, err)
	}
	return f, nil
}

func (ex *extractor) sequence(node *yaml.Node, path string) ([]*yaml.Node, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return nil, ex.unexpected(node, path, "a sequence")
	}
	return node.Content, nil
}

func (ex *extractor) stringList(node *yaml.Node, path string) ([]string, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := ex.scalarString(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (ex *extractor) floatList(node *yaml.Node, path string) ([]float64, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(items))
	for i, item := range items {
		f, err := ex.scalarFloat(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (ex *extractor) nestedStrings(node *yaml.Node, path string) ([][]string, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(items))
	for i, item := range items {
		inner, err := ex.stringList(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, inner)
	}
	return out, nil
}

// tuple reads the first arity numbers of a sequence positionally.
func (ex *extractor) tuple(node *yaml.Node, path string, arity int) ([]float64, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	if len(items) < arity {
		return nil, ex.errorf(path, "expected at least %d numbers but got %d (line %d)", arity, len(items), resolveAlias(node).Line)
	}
	if len(items) > arity {
		if ex.strict {
			return nil, ex.errorf(path, "expected exactly %d numbers but got %d (line %d)", arity, len(items), resolveAlias(node).Line)
		}
		ex.logger.Debugw("ignoring extra tuple elements", "field", ex.field, "path", path, "want", arity, "got", len(items))
	}
	out := make([]float64, arity)
	for i := 0; i < arity; i++ {
		if out[i], err = ex.scalarFloat(items[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (ex *extractor) limits(node *yaml.Node, path string) ([]Limit, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([]Limit, 0, len(items))
	for i, item := range items {
		pair, err := ex.tuple(item, fmt.Sprintf("%s[%d]", path, i), 2)
		if err != nil {
			return nil, err
		}
		out = append(out, Limit{Min: pair[0], Max: pair[1]})
	}
	return out, nil
}

func (ex *extractor) vectors(node *yaml.Node, path string) ([]r3.Vector, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([]r3.Vector, 0, len(items))
	for i, item := range items {
		xyz, err := ex.tuple(item, fmt.Sprintf("%s[%d]", path, i), 3)
		if err != nil {
			return nil, err
		}
		out = append(out, r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return out, nil
}

func (ex *extractor) nestedVectors(node *yaml.Node, path string) ([][]r3.Vector, error) {
	items, err := ex.sequence(node, path)
	if err != nil {
		return nil, err
	}
	out := make([][]r3.Vector, 0, len(items))
	for i, item := range items {
		inner, err := ex.vectors(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, inner)
	}
	return out, nil
}
