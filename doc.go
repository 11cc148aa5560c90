/*
Package dispatch implements objects as dictionaries.

An object here is nothing more than a mapping from names to values, plus an
optional reference to a shared table of operations. There is no class
mechanism, no inheritance graph, and no descriptor machinery; the entire model
is a two-tier lookup over two ordinary maps. The package exists to make that
model precise and testable, not to compete with Go's own type system.

Model

Every Object owns a Fields map. Ordinary data lives there: numbers, strings,
slices, other objects. Behavior lives in a Table, a mapping from operation
names to functions that take the object as their explicit first argument:

	Account := dispatch.NewTable("Account", dispatch.Ops{
		"init": func(self *dispatch.Object, args ...any) (any, error) {
			self.Set("balance", args[0])
			return nil, nil
		},
		"deposit": func(self *dispatch.Object, args ...any) (any, error) {
			v, _ := self.Get("balance")
			self.Set("balance", v.(int)+args[0].(int))
			return nil, nil
		},
	})

A table is shared by reference: every object created from it sees the same
operations, and they are stored exactly once. Only data fields vary per
instance.

Lookup

Get resolves a name in two tiers. The object's own fields are checked first,
and an own field is always returned unchanged, even when it happens to be
callable. Only when the name is missing from the object's fields does lookup
fall back to the table, and only on that path is the result bound: the
operation comes back as a Bound value with the object pre-filled as its first
argument, so that

	b, _ := acct.Get("deposit")
	dispatch.Call(b, 50)

invokes the table's function as deposit(acct, 50). Looking the operation up on
the table directly never binds anything. A name found in neither place is an
*AttributeError; lookup never substitutes a default.

Set writes into the object's own fields unconditionally. Nothing stops a field
from shadowing a table operation of the same name, and the shadowing value is
then returned unbound by Get until it is removed again.

Construction

Table.New allocates an object with empty fields. If the table defines an
operation under the reserved name InitName, it runs with the new object and
the construction arguments before New returns; if not, the object comes back
with no fields set, which is a perfectly valid state.

There is a second way to build objects that needs no table at all. A factory
can capture its state in locals and expose closures over them as fields:

	func NewCounter() *dispatch.Object {
		n := 0
		o := dispatch.ObjectWith(nil)
		o.Set("next", func(args ...any) (any, error) {
			n++
			return n, nil
		})
		return o
	}

Here the count is unreachable except through the exposed operation. The price
is that every counter carries its own closure for every operation, where a
table stores each operation once no matter how many instances exist. Prefer
the table form when the number of objects grows; the closure form when hiding
state matters more than allocation count.

Objects are not safe for concurrent use. The model is single-threaded by
design; a concurrent variant would put one mutex in front of each object's
field map, and nothing more, but this package does not do so.
*/
package dispatch
