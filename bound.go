package dispatch

import "fmt"

// A Bound is the bound form of an operation: the operation paired with the
// object it was resolved through. It is an explicit partial application; the
// receiver is pre-filled, and calling the bound form supplies it as the
// operation's first argument.
type Bound struct {
	// Op is the operation exactly as stored in the table.
	Op Operation
	// Recv is the object the operation was resolved through.
	Recv *Object
}

// Call invokes the underlying operation as Op(Recv, args...).
func (b Bound) Call(args ...any) (any, error) {
	return b.Op(b.Recv, args...)
}

// Call invokes a value produced by Object.Get. A Bound form calls its
// operation with the pre-bound receiver. A bare function stored as a field,
// as the closure-capture strategy does, is called directly with no receiver
// supplied. Any other value is not callable and yields an error.
func Call(v any, args ...any) (any, error) {
	switch f := v.(type) {
	case Bound:
		return f.Call(args...)
	case func(args ...any) (any, error):
		return f(args...)
	default:
		return nil, fmt.Errorf("dispatch: cannot call %T", v)
	}
}
