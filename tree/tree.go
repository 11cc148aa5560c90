// Package tree is the tree illustration: labeled nodes as dictionary
// objects, with leafness decided by dispatch through a shared table rather
// than by a method on a concrete type.
package tree

import (
	"fmt"

	"github.com/KEDIT2007/dispatch"
)

// Tree is the shared operation table for tree nodes. Each node carries a
// label field and a branches field holding its child nodes.
var Tree = dispatch.NewTable("Tree", dispatch.Ops{
	dispatch.InitName: treeInit,
	"is_leaf":         treeIsLeaf,
	"leaves":          treeLeaves,
})

// New creates a node. Branches may be omitted, leaving a leaf.
func New(label any, branches ...*dispatch.Object) (*dispatch.Object, error) {
	if branches == nil {
		return Tree.New(label)
	}
	return Tree.New(label, branches)
}

// treeInit stores the label and branches. A missing branches argument
// defaults to no branches.
func treeInit(self *dispatch.Object, args ...any) (any, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("tree: missing label argument")
	}
	self.Set("label", args[0])
	branches := []*dispatch.Object{}
	if len(args) > 1 && args[1] != nil {
		var ok bool
		branches, ok = args[1].([]*dispatch.Object)
		if !ok {
			return nil, fmt.Errorf("tree: branches argument is %T, not []*dispatch.Object", args[1])
		}
	}
	self.Set("branches", branches)
	return nil, nil
}

// treeIsLeaf reports whether the node has no branches.
func treeIsLeaf(self *dispatch.Object, args ...any) (any, error) {
	branches, err := Branches(self)
	if err != nil {
		return nil, err
	}
	return len(branches) == 0, nil
}

// treeLeaves counts the leaves under the node, itself included.
func treeLeaves(self *dispatch.Object, args ...any) (any, error) {
	branches, err := Branches(self)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return 1, nil
	}
	n := 0
	for _, b := range branches {
		v, err := treeLeaves(b)
		if err != nil {
			return nil, err
		}
		n += v.(int)
	}
	return n, nil
}

// Label reads a node's label field.
func Label(o *dispatch.Object) (any, error) {
	return o.Get("label")
}

// Branches reads a node's branches field.
func Branches(o *dispatch.Object) ([]*dispatch.Object, error) {
	v, err := o.Get("branches")
	if err != nil {
		return nil, err
	}
	branches, ok := v.([]*dispatch.Object)
	if !ok {
		return nil, fmt.Errorf("tree: field branches is %T, not []*dispatch.Object", v)
	}
	return branches, nil
}

// IsLeaf dispatches the node's is_leaf operation.
func IsLeaf(o *dispatch.Object) (bool, error) {
	v, err := o.Get("is_leaf")
	if err != nil {
		return false, err
	}
	r, err := dispatch.Call(v)
	if err != nil {
		return false, err
	}
	return r.(bool), nil
}

// Leaves dispatches the node's leaves operation.
func Leaves(o *dispatch.Object) (int, error) {
	v, err := o.Get("leaves")
	if err != nil {
		return 0, err
	}
	r, err := dispatch.Call(v)
	if err != nil {
		return 0, err
	}
	return r.(int), nil
}
