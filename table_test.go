package dispatch

import (
	"testing"

	"github.com/go-test/deep"
)

// greet is a shared test operation with observable arguments.
func greet(self *Object, args ...any) (any, error) {
	return append([]any{self}, args...), nil
}

// TestBindingCorrectness tests that calling the bound form of an operation
// is the same as calling the table's function directly with the object as
// its first argument.
func TestBindingCorrectness(t *testing.T) {
	tbl := NewTable("Greeter", Ops{"greet": greet})
	o, err := tbl.New()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	v, err := o.Get("greet")
	if err != nil {
		t.Fatalf("get greet failed: %v", err)
	}
	bound, err := Call(v, "a", "b")
	if err != nil {
		t.Fatalf("bound call failed: %v", err)
	}
	op, ok := tbl.Lookup("greet")
	if !ok {
		t.Fatal("table lost its operation")
	}
	direct, err := op(o, "a", "b")
	if err != nil {
		t.Fatalf("direct call failed: %v", err)
	}
	if diff := deep.Equal(bound, direct); diff != nil {
		t.Error(diff)
	}
}

// TestInitSugar tests that construction with arguments is the same as
// constructing an empty object and invoking the initializer by hand.
func TestInitSugar(t *testing.T) {
	tbl := NewTable("Pair", Ops{
		InitName: func(self *Object, args ...any) (any, error) {
			self.Set("label", args[0])
			self.Set("branches", args[1])
			return nil, nil
		},
	})
	branches := []any{"t1", "t2"}
	sugared, err := tbl.New(1, branches)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	manual := &Object{fields: Fields{}, table: tbl}
	init, ok := tbl.Lookup(InitName)
	if !ok {
		t.Fatal("table has no initializer")
	}
	if _, err := init(manual, 1, branches); err != nil {
		t.Fatalf("manual init failed: %v", err)
	}
	for _, name := range []string{"label", "branches"} {
		a, err := sugared.Get(name)
		if err != nil {
			t.Fatalf("get %s on sugared object failed: %v", name, err)
		}
		b, err := manual.Get(name)
		if err != nil {
			t.Fatalf("get %s on manual object failed: %v", name, err)
		}
		if diff := deep.Equal(a, b); diff != nil {
			t.Error(name, diff)
		}
	}
}

// TestNewWithoutInit tests that a table without an initializer produces an
// empty object, which is a valid state, with any arguments ignored.
func TestNewWithoutInit(t *testing.T) {
	tbl := NewTable("Plain", nil)
	o, err := tbl.New(1, 2, 3)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if n := len(o.FieldNames()); n != 0 {
		t.Errorf("object has %d fields, want 0", n)
	}
	if o.Table() != tbl {
		t.Error("object is associated with the wrong table")
	}
}

// TestTableSharedByReference tests that operations are stored once: a
// definition added after construction is visible to existing instances, and
// no instance carries operation fields of its own.
func TestTableSharedByReference(t *testing.T) {
	tbl := NewTable("Shared", nil)
	o1, err := tbl.New()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	o2, err := tbl.New()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	tbl.Define("greet", greet)
	for name, o := range map[string]*Object{"First": o1, "Second": o2} {
		t.Run(name, func(t *testing.T) {
			v, err := o.Get("greet")
			if err != nil {
				t.Fatalf("late definition not visible: %v", err)
			}
			if _, ok := v.(Bound); !ok {
				t.Errorf("late definition not bound: have %T", v)
			}
			if _, ok := o.GetLocal("greet"); ok {
				t.Error("operation was copied into instance fields")
			}
		})
	}
}

// TestLookupUnbound tests that going through the table directly never binds
// a receiver.
func TestLookupUnbound(t *testing.T) {
	tbl := NewTable("Raw", Ops{"greet": greet})
	op, ok := tbl.Lookup("greet")
	if !ok {
		t.Fatal("lookup failed")
	}
	other := ObjectWith(nil)
	r, err := op(other, "x")
	if err != nil {
		t.Fatalf("raw call failed: %v", err)
	}
	got, ok := r.([]any)
	if !ok || got[0] != other {
		t.Errorf("raw operation saw wrong receiver: have %v", r)
	}
}

// TestInitFailure tests that an initializer error propagates out of New
// uncaught.
func TestInitFailure(t *testing.T) {
	tbl := NewTable("Failing", Ops{
		InitName: func(self *Object, args ...any) (any, error) {
			return nil, &AttributeError{Name: "boom", On: "Failing"}
		},
	})
	o, err := tbl.New()
	if err == nil {
		t.Fatal("create succeeded with a failing initializer")
	}
	if o != nil {
		t.Errorf("failed create produced an object: %v", o)
	}
}

// TestCallNotCallable tests that Call rejects plain data.
func TestCallNotCallable(t *testing.T) {
	cases := map[string]any{
		"Int":    7,
		"String": "f",
		"Nil":    nil,
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Call(v); err == nil {
				t.Errorf("calling %T succeeded", v)
			}
		})
	}
}
