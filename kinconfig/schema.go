package kinconfig

import (
	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"
)

// shapeKind is the shape a top-level value must have.
type shapeKind int

const (
	kindString shapeKind = iota
	kindStringList
	kindFloatList
	kindNestedStrings
	kindLimits
	kindVectors
	kindNestedVectors
)

func (k shapeKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindStringList:
		return "list of strings"
	case kindFloatList:
		return "list of numbers"
	case kindNestedStrings:
		return "list of lists of strings"
	case kindLimits:
		return "list of [lower, upper] pairs"
	case kindVectors:
		return "list of [x, y, z] vectors"
	case kindNestedVectors:
		return "list of lists of [x, y, z] vectors"
	}
	return "unknown"
}

// keyRule binds one top-level key to a config field, with the rules to decode and encode it.
type keyRule struct {
	key    string
	kind   shapeKind
	decode func(ex *extractor, node *yaml.Node, cfg *RobotKinematicsConfig) error
	encode func(cfg *RobotKinematicsConfig) *yaml.Node
}

func newField[T any](
	key string,
	kind shapeKind,
	ref func(*RobotKinematicsConfig) *T,
	dec func(ex *extractor, node *yaml.Node) (T, error),
	enc func(T) *yaml.Node,
) keyRule {
	return keyRule{
		key:  key,
		kind: kind,
		decode: func(ex *extractor, node *yaml.Node, cfg *RobotKinematicsConfig) error {
			v, err := dec(ex, node)
			if err != nil {
				return err
			}
			*ref(cfg) = v
			return nil
		},
		encode: func(cfg *RobotKinematicsConfig) *yaml.Node {
			return enc(*ref(cfg))
		},
	}
}

func stringField(key string, ref func(*RobotKinematicsConfig) *string) keyRule {
	return newField(key, kindString, ref,
		func(ex *extractor, node *yaml.Node) (string, error) { return ex.nonEmptyString(node) },
		stringNode)
}

func stringListField(key string, ref func(*RobotKinematicsConfig) *[]string) keyRule {
	return newField(key, kindStringList, ref,
		func(ex *extractor, node *yaml.Node) ([]string, error) { return ex.stringList(node, "") },
		func(v []string) *yaml.Node { return stringsNode(v, yaml.FlowStyle) })
}

func floatListField(key string, ref func(*RobotKinematicsConfig) *[]float64) keyRule {
	return newField(key, kindFloatList, ref,
		func(ex *extractor, node *yaml.Node) ([]float64, error) { return ex.floatList(node, "") },
		func(v []float64) *yaml.Node { return floatsNode(v) })
}

func nestedStringsField(key string, ref func(*RobotKinematicsConfig) *[][]string) keyRule {
	return newField(key, kindNestedStrings, ref,
		func(ex *extractor, node *yaml.Node) ([][]string, error) { return ex.nestedStrings(node, "") },
		func(v [][]string) *yaml.Node {
			seq := sequenceNode(0)
			for _, inner := range v {
				seq.Content = append(seq.Content, stringsNode(inner, yaml.FlowStyle))
			}
			return seq
		})
}

func limitsField(key string, ref func(*RobotKinematicsConfig) *[]Limit) keyRule {
	return newField(key, kindLimits, ref,
		func(ex *extractor, node *yaml.Node) ([]Limit, error) { return ex.limits(node, "") },
		func(v []Limit) *yaml.Node {
			seq := sequenceNode(0)
			for _, l := range v {
				seq.Content = append(seq.Content, floatsNode([]float64{l.Min, l.Max}))
			}
			return seq
		})
}

func vectorsField(key string, ref func(*RobotKinematicsConfig) *[]r3.Vector) keyRule {
	return newField(key, kindVectors, ref,
		func(ex *extractor, node *yaml.Node) ([]r3.Vector, error) { return ex.vectors(node, "") },
		func(v []r3.Vector) *yaml.Node { return vectorsNode(v, 0) })
}

func nestedVectorsField(key string, ref func(*RobotKinematicsConfig) *[][]r3.Vector) keyRule {
	return newField(key, kindNestedVectors, ref,
		func(ex *extractor, node *yaml.Node) ([][]r3.Vector, error) { return ex.nestedVectors(node, "") },
		func(v [][]r3.Vector) *yaml.Node {
			seq := sequenceNode(0)
			for _, inner := range v {
				seq.Content = append(seq.Content, vectorsNode(inner, yaml.FlowStyle))
			}
			return seq
		})
}

// infoFileSchema lists every key of an info file in document order.
var infoFileSchema = []keyRule{
	stringField("urdf_file_name", func(c *RobotKinematicsConfig) *string { return &c.URDFFileName }),
	stringField("fixed_frame", func(c *RobotKinematicsConfig) *string { return &c.FixedFrame }),
	nestedStringsField("joint_names", func(c *RobotKinematicsConfig) *[][]string { return &c.JointNames }),
	stringListField("joint_ordering", func(c *RobotKinematicsConfig) *[]string { return &c.JointOrdering }),
	stringListField("ee_fixed_joints", func(c *RobotKinematicsConfig) *[]string { return &c.EEFixedJoints }),
	floatListField("starting_config", func(c *RobotKinematicsConfig) *[]float64 { return &c.StartingConfig }),
	stringField("collision_file_name", func(c *RobotKinematicsConfig) *string { return &c.CollisionFileName }),
	stringField("collision_nn_file", func(c *RobotKinematicsConfig) *string { return &c.CollisionNNFile }),
	stringField("path_to_src", func(c *RobotKinematicsConfig) *string { return &c.PathToSrc }),
	nestedStringsField("axis_types", func(c *RobotKinematicsConfig) *[][]string { return &c.AxisTypes }),
	floatListField("velocity_limits", func(c *RobotKinematicsConfig) *[]float64 { return &c.VelocityLimits }),
	limitsField("joint_limits", func(c *RobotKinematicsConfig) *[]Limit { return &c.JointLimits }),
	nestedVectorsField("displacements", func(c *RobotKinematicsConfig) *[][]r3.Vector { return &c.Displacements }),
	vectorsField("disp_offsets", func(c *RobotKinematicsConfig) *[]r3.Vector { return &c.DispOffsets }),
	nestedStringsField("joint_types", func(c *RobotKinematicsConfig) *[][]string { return &c.JointTypes }),
	stringField("joint_state_define_func_file", func(c *RobotKinematicsConfig) *string { return &c.JointStateDefineFuncFile }),
}

// Keys returns the required top-level keys of an info file in document order.
func Keys() []string {
	keys := make([]string, 0, len(infoFileSchema))
	for _, field := range infoFileSchema {
		keys = append(keys, field.key)
	}
	return keys
}
