package kinconfig

import (
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go.viam.com/relaxedik/logging"
)

// LoadConfig reads the info file at path and extracts its first YAML document into a
// RobotKinematicsConfig. Any further documents in the file are ignored.
func LoadConfig(path string, opts ...Option) (*RobotKinematicsConfig, error) {
	o := newLoadOptions(opts)
	docs, err := ReadDocuments(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debugw("read info file", "path", path, "documents", len(docs))
	return fromDocuments(docs, o)
}

// UnmarshalConfig is LoadConfig for info file contents already in memory.
func UnmarshalConfig(data []byte, opts ...Option) (*RobotKinematicsConfig, error) {
	o := newLoadOptions(opts)
	docs, err := ParseDocuments(data)
	if err != nil {
		return nil, err
	}
	return fromDocuments(docs, o)
}

// FromDocument extracts a RobotKinematicsConfig from a parsed YAML document.
func FromDocument(root *yaml.Node, opts ...Option) (*RobotKinematicsConfig, error) {
	return extract(root, newLoadOptions(opts))
}

func fromDocuments(docs []*yaml.Node, o loadOptions) (*RobotKinematicsConfig, error) {
	if len(docs) == 0 {
		return nil, &ParseError{Err: ErrNoDocuments}
	}
	if len(docs) > 1 {
		o.logger.Debugw("ignoring trailing documents", "count", len(docs)-1)
	}
	return extract(docs[0], o)
}

func extract(root *yaml.Node, o loadOptions) (*RobotKinematicsConfig, error) {
	values, err := topLevelValues(root, o.logger)
	if err != nil {
		return nil, err
	}

	ex := &extractor{strict: o.strictArity, logger: o.logger}
	cfg := &RobotKinematicsConfig{}
	var errs error
	for _, field := range infoFileSchema {
		ex.field = field.key
		fieldErr := values.err[field.key]
		if fieldErr == nil {
			node, ok := values.nodes[field.key]
			if !ok {
				fieldErr = NewMissingKeyError(field.key, field.kind.String())
			} else {
				fieldErr = field.decode(ex, node, cfg)
			}
		}
		if fieldErr != nil {
			if !o.collectErrors {
				return nil, fieldErr
			}
			errs = multierr.Append(errs, fieldErr)
		}
	}
	if errs != nil {
		return nil, errs
	}

	if o.validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	o.logger.Debugw("loaded info file", "urdf", cfg.URDFFileName, "chains", cfg.NumChains(), "joints", cfg.NumJoints())
	return cfg, nil
}

type keyedValues struct {
	nodes map[string]*yaml.Node
	err   map[string]error
}

// topLevelValues indexes the root mapping by key, recording duplicate keys as errors on that key.
func topLevelValues(root *yaml.Node, logger logging.Logger) (keyedValues, error) {
	if root == nil {
		return keyedValues{}, NewSchemaError("", "empty document")
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return keyedValues{}, NewSchemaError("", "empty document")
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return keyedValues{}, NewSchemaError("", "document root must be a mapping but got "+describe(root))
	}

	values := keyedValues{nodes: map[string]*yaml.Node{}, err: map[string]error{}}
	known := map[string]bool{}
	for _, field := range infoFileSchema {
		known[field.key] = true
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := resolveAlias(root.Content[i]), root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		key := keyNode.Value
		if !known[key] {
			logger.Debugw("ignoring unknown key", "key", key, "line", keyNode.Line)
			continue
		}
		if _, dup := values.nodes[key]; dup {
			values.err[key] = NewDuplicateKeyError(key, keyNode.Line)
			continue
		}
		values.nodes[key] = valueNode
	}
	return values, nil
}
