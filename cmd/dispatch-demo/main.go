// Command dispatch-demo walks a vending machine through a purchase and
// reports on a tree, both built as dictionary objects. With a file argument,
// the tree is decoded from that YAML document instead of the built-in one.
package main

import (
	"fmt"
	"os"

	"github.com/KEDIT2007/dispatch"
	"github.com/KEDIT2007/dispatch/machine"
	"github.com/KEDIT2007/dispatch/tree"
)

const defaultTree = `
label: 1
branches:
  - label: 2
  - label: 3
    branches:
      - label: 4
      - label: 5
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	m, err := machine.Machine.New(75)
	if err != nil {
		return err
	}
	for _, step := range []struct {
		op   string
		args []any
	}{
		{"vend", nil},
		{"insert", []any{50}},
		{"insert", []any{50}},
		{"vend", nil},
		{"refund", nil},
	} {
		r, err := do(m, step.op, step.args...)
		if err != nil {
			return err
		}
		fmt.Printf("%s%v -> %v\n", step.op, step.args, r)
	}

	doc := []byte(defaultTree)
	if len(args) > 0 {
		doc, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	root, err := tree.DecodeBytes(doc)
	if err != nil {
		return err
	}
	label, err := tree.Label(root)
	if err != nil {
		return err
	}
	leaves, err := tree.Leaves(root)
	if err != nil {
		return err
	}
	fmt.Printf("tree %v has %d leaves\n", label, leaves)
	return nil
}

// do resolves an operation through the object and calls its bound form.
func do(o *dispatch.Object, name string, args ...any) (any, error) {
	v, err := o.Get(name)
	if err != nil {
		return nil, err
	}
	return dispatch.Call(v, args...)
}
