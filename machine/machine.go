// Package machine is a vending machine built as a dictionary object, twice:
// once as closures over hidden state and once as data fields driven by a
// shared operation table. The two forms behave the same; they differ in
// where the state lives and in how many callables each machine carries.
package machine

import (
	"fmt"
	"time"

	"github.com/KEDIT2007/dispatch"
	"gitlab.com/variadico/lctime"
)

// Vended is the message a machine produces when a purchase succeeds.
const Vended = "Here is your item."

// now is replaceable for tests.
var now = time.Now

// Machine is the shared operation table for vending machines. Behavior is
// stored here exactly once; each instance carries only its price, balance,
// and log fields.
var Machine = dispatch.NewTable("VendingMachine", dispatch.Ops{
	dispatch.InitName: machineInit,
	"insert":          machineInsert,
	"vend":            machineVend,
	"refund":          machineRefund,
})

// machineInit sets up the per-instance fields. The one argument is the price
// of an item in cents.
func machineInit(self *dispatch.Object, args ...any) (any, error) {
	price, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	self.Set("price", price)
	self.Set("balance", 0)
	self.Set("log", []string{})
	return nil, nil
}

// machineInsert adds the given amount to the balance and returns the new
// balance.
func machineInsert(self *dispatch.Object, args ...any) (any, error) {
	amount, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	balance, err := intField(self, "balance")
	if err != nil {
		return nil, err
	}
	balance += amount
	self.Set("balance", balance)
	return balance, nil
}

// machineVend dispenses one item if the balance covers the price, deducting
// the price and recording the sale; otherwise it reports the shortfall and
// changes nothing.
func machineVend(self *dispatch.Object, args ...any) (any, error) {
	price, err := intField(self, "price")
	if err != nil {
		return nil, err
	}
	balance, err := intField(self, "balance")
	if err != nil {
		return nil, err
	}
	if balance < price {
		return Shortfall(price - balance), nil
	}
	self.Set("balance", balance-price)
	v, err := self.Get("log")
	if err != nil {
		return nil, err
	}
	log, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("machine: field log is %T, not []string", v)
	}
	self.Set("log", append(log, lctime.Strftime("%Y-%m-%d %H:%M:%S", now())+" vend"))
	return Vended, nil
}

// machineRefund returns the current balance and zeroes it.
func machineRefund(self *dispatch.Object, args ...any) (any, error) {
	balance, err := intField(self, "balance")
	if err != nil {
		return nil, err
	}
	self.Set("balance", 0)
	return balance, nil
}

// New builds a machine with the closure-capture strategy. The balance is a
// local captured by the operations below, so it is unreachable except
// through them; there is no balance field to read or overwrite. Every
// machine built this way carries its own three closures, where Machine
// stores the same behavior once for any number of instances.
func New(price int) *dispatch.Object {
	balance := 0
	o := dispatch.ObjectWith(nil)
	o.Set("insert", func(args ...any) (any, error) {
		amount, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		balance += amount
		return balance, nil
	})
	o.Set("vend", func(args ...any) (any, error) {
		if balance < price {
			return Shortfall(price - balance), nil
		}
		balance -= price
		return Vended, nil
	})
	o.Set("refund", func(args ...any) (any, error) {
		r := balance
		balance = 0
		return r, nil
	})
	return o
}

// Shortfall is the message a machine produces when the balance does not
// cover the price.
func Shortfall(missing int) string {
	return fmt.Sprintf("Please insert %d more.", missing)
}

// intField reads an integer field off an object.
func intField(o *dispatch.Object, name string) (int, error) {
	v, err := o.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("machine: field %s is %T, not int", name, v)
	}
	return n, nil
}

// intArg reads an integer argument by position.
func intArg(args []any, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("machine: missing argument %d", i)
	}
	n, ok := args[i].(int)
	if !ok {
		return 0, fmt.Errorf("machine: argument %d is %T, not int", i, args[i])
	}
	return n, nil
}
