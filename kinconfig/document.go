package kinconfig

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadDocuments reads the file at path and parses every YAML document it contains, in order.
func ReadDocuments(path string) ([]*yaml.Node, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer func() {
		//nolint:errcheck
		f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Path: path, Err: errors.Wrap(err, "read failed")}
	}
	return ParseDocuments(data)
}

// ParseDocuments parses every YAML document in data, in order. An empty stream yields no
// documents and no error.
func ParseDocuments(data []byte) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []*yaml.Node
	for {
		doc := &yaml.Node{}
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, &ParseError{Err: errors.Wrapf(err, "document %d", len(docs))}
		}
		docs = append(docs, doc)
	}
}
