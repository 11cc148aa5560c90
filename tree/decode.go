package tree

import (
	"io"

	"github.com/KEDIT2007/dispatch"
	"gopkg.in/yaml.v2"
)

// A node is the YAML shape of one tree: a label plus nested branches.
//
//	label: 1
//	branches:
//	  - label: 2
//	  - label: 3
//	    branches:
//	      - label: 4
type node struct {
	Label    any    `yaml:"label"`
	Branches []node `yaml:"branches"`
}

// Decode reads one YAML document from r and builds the tree it describes.
func Decode(r io.Reader) (*dispatch.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes builds the tree described by one YAML document.
func DecodeBytes(data []byte) (*dispatch.Object, error) {
	var n node
	if err := yaml.UnmarshalStrict(data, &n); err != nil {
		return nil, err
	}
	return n.build()
}

func (n node) build() (*dispatch.Object, error) {
	branches := make([]*dispatch.Object, 0, len(n.Branches))
	for _, b := range n.Branches {
		o, err := b.build()
		if err != nil {
			return nil, err
		}
		branches = append(branches, o)
	}
	return Tree.New(n.Label, branches)
}
