package dispatch

import "sort"

// InitName is the reserved initializer name. A table defining an operation
// under this name has it invoked by New on every object the table creates,
// with the construction arguments.
const InitName = "init"

// An Operation is behavior shared through a Table. It receives the object it
// was reached through as its explicit first argument.
type Operation func(self *Object, args ...any) (any, error)

// Ops is the mapping of operation names to implementations held by a Table.
type Ops map[string]Operation

// A Table stores operations once, shared by reference across every object
// created from it. Only data fields vary per instance; the table itself
// holds no per-object state.
type Table struct {
	// Name identifies the table in error messages and object descriptions.
	Name string

	ops Ops
}

// NewTable creates a table holding the given operations. ops may be nil.
func NewTable(name string, ops Ops) *Table {
	t := &Table{Name: name, ops: make(Ops, len(ops))}
	for n, op := range ops {
		t.ops[n] = op
	}
	return t
}

// Define stores op under name, replacing any previous definition. Objects
// already created from the table see the new definition on their next
// lookup, since the table is shared by reference.
func (t *Table) Define(name string, op Operation) {
	t.ops[name] = op
}

// Lookup returns the operation stored under name. The operation comes back
// exactly as defined, with no receiver bound; binding happens only when a
// name is resolved through an object.
func (t *Table) Lookup(name string) (Operation, bool) {
	op, ok := t.ops[name]
	return op, ok
}

// OpNames returns the names of the table's operations in sorted order.
func (t *Table) OpNames() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates an object associated with t. If t defines an operation under
// InitName, New invokes it with the new object and args before returning.
// Without an initializer the object comes back with no fields set, which is
// a valid state, and args go unused.
func (t *Table) New(args ...any) (*Object, error) {
	o := &Object{fields: Fields{}, table: t}
	if init, ok := t.Lookup(InitName); ok {
		if _, err := init(o, args...); err != nil {
			return nil, err
		}
	}
	return o, nil
}
