package kinconfig

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalConfig encodes cfg as an info file. Loading the result yields a config equal to cfg.
func MarshalConfig(cfg *RobotKinematicsConfig) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range infoFileSchema {
		root.Content = append(root.Content, stringNode(field.key), field.encode(cfg))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, "failed to encode info file")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode info file")
	}
	return buf.Bytes(), nil
}

// WriteConfigFile encodes cfg and writes it to path.
func WriteConfigFile(cfg *RobotKinematicsConfig, path string) error {
	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}
	//nolint:gosec
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write info file %q", path)
	}
	return nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// floatNode always writes a decimal point or exponent so the value reads back as a float.
func floatNode(f float64) *yaml.Node {
	var s string
	switch {
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	case math.IsNaN(f):
		s = ".nan"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}

func sequenceNode(style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: style}
}

func stringsNode(v []string, style yaml.Style) *yaml.Node {
	seq := sequenceNode(style)
	for _, s := range v {
		seq.Content = append(seq.Content, stringNode(s))
	}
	return seq
}

func floatsNode(v []float64) *yaml.Node {
	seq := sequenceNode(yaml.FlowStyle)
	for _, f := range v {
		seq.Content = append(seq.Content, floatNode(f))
	}
	return seq
}

func vectorsNode(v []r3.Vector, style yaml.Style) *yaml.Node {
	seq := sequenceNode(style)
	for _, vec := range v {
		seq.Content = append(seq.Content, floatsNode([]float64{vec.X, vec.Y, vec.Z}))
	}
	return seq
}
