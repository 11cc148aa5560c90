package dispatch

import (
	"fmt"
	"sort"
)

// Fields is the mapping of field names to values owned by a single Object.
// Values are ordinary data or, under the closure-capture strategy, bare
// functions of type func(args ...any) (any, error).
type Fields map[string]any

// An Object is a bundle of named state and, optionally, shared behavior: a
// field mapping of its own plus a reference to the Table it was created from.
// Lookups check the object's own mapping first and fall back to the table,
// binding the receiver on the fallback path only.
//
// Objects are not safe for concurrent use. The model assumes a single
// goroutine; a concurrent variant would guard the field mapping with one
// mutex per object.
type Object struct {
	fields Fields
	table  *Table
}

// ObjectWith creates a table-less object holding the given fields, which may
// be nil. This is the entry point for the closure-capture construction
// strategy: a factory stores closures over its own locals as fields, so the
// captured state is reachable only through the exposed operations. Every
// object built this way carries its own closure per operation; when that
// cost matters, define the operations once in a Table and create instances
// with Table.New instead.
func ObjectWith(fields Fields) *Object {
	if fields == nil {
		fields = Fields{}
	}
	return &Object{fields: fields}
}

// Table returns the table the object was created from, or nil for an object
// built with ObjectWith.
func (o *Object) Table() *Table {
	return o.table
}

// Get resolves name on the object. An own field is returned unchanged,
// whether or not its value is callable. A name found only in the table
// resolves to a Bound form with o as the receiver. A name found in neither
// place is an *AttributeError; Get never substitutes a default value.
func (o *Object) Get(name string) (any, error) {
	if v, ok := o.fields[name]; ok {
		return v, nil
	}
	if o.table != nil {
		if op, ok := o.table.Lookup(name); ok {
			return Bound{Op: op, Recv: o}, nil
		}
	}
	return nil, &AttributeError{Name: name, On: o.describe()}
}

// GetLocal checks only the object's own fields, never the table.
func (o *Object) GetLocal(name string) (any, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Set writes value into the object's own field mapping unconditionally. The
// write is visible to every holder of the same object reference. A field may
// shadow a table operation of the same name; the shadowing value is then
// returned unbound by Get.
func (o *Object) Set(name string, value any) {
	if o.fields == nil {
		o.fields = Fields{}
	}
	o.fields[name] = value
}

// Remove deletes fields from the object's own mapping, if present. Removing
// a field unshadows any table operation of the same name.
func (o *Object) Remove(names ...string) {
	for _, name := range names {
		delete(o.fields, name)
	}
}

// ForeachField calls exec for each of the object's own fields. If exec
// returns false, the iteration ceases. Table operations are not visited.
func (o *Object) ForeachField(exec func(name string, value any) bool) {
	for name, value := range o.fields {
		if !exec(name, value) {
			return
		}
	}
}

// FieldNames returns the names of the object's own fields in sorted order.
func (o *Object) FieldNames() []string {
	names := make([]string, 0, len(o.fields))
	for name := range o.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// describe names the object for error messages: the table name if there is
// one, "object" otherwise.
func (o *Object) describe() string {
	if o.table != nil {
		return o.table.Name
	}
	return "object"
}

// String returns a short description of the object.
func (o *Object) String() string {
	return fmt.Sprintf("%s_%p", o.describe(), o)
}
