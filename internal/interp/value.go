// Package interp implements a tree-walking evaluator:
// environment-based evaluation of a mutable object model over the
// type-checked AST.
package interp

import "fmt"

// Value is the tagged union of runtime values: Integer, StringValue,
// BooleanValue, *Object, ClassRef, or Null.
type Value interface {
	valueNode()
}

// Integer is a 64-bit signed integer runtime value.
type Integer int64

func (Integer) valueNode() {}

// StringValue is a runtime string value.
type StringValue string

func (StringValue) valueNode() {}

// BooleanValue is a runtime boolean value.
type BooleanValue bool

func (BooleanValue) valueNode() {}

// ClassRef is a handle to a declared class, used both for bare class
// identifiers in globals and as the receiver of
// static-call-style method invocations.
type ClassRef struct {
	Name string
}

func (ClassRef) valueNode() {}

// Object is a heap-allocated instance of a declared class: its class
// name plus a mutable field map.
type Object struct {
	ClassName string
	Fields    map[string]Value
}

func (*Object) valueNode() {}

// nullValue is the sole instance of the Null variant.
type nullValue struct{}

func (nullValue) valueNode() {}

// Null is the single Null value, returned wherever  calls
// for "Null" (uninitialized fields, an absent initializer, an absent
// return value).
var Null Value = nullValue{}

// IsNull reports whether v is the Null value.
func IsNull(v Value) bool {
	_, ok := v.(nullValue)
	return ok
}

// Stringify renders v using the value-to-string rule,
// used by both `print` and string concatenation.
func Stringify(v Value) string {
	switch val := v.(type) {
	case Integer:
		return fmt.Sprintf("%d", int64(val))
	case StringValue:
		return string(val)
	case BooleanValue:
		if val {
			return "true"
		}
		return "false"
	case *Object:
		return fmt.Sprintf("<%s object>", val.ClassName)
	case nullValue:
		return "null"
	case ClassRef:
		return fmt.Sprintf("<%s class>", val.Name)
	default:
		return ""
	}
}

// Truthy implements the truthiness rule: Integer is
// truthy iff non-zero, BooleanValue by its boolean value. Any other
// value is not a valid condition; ok reports whether v was one of
// those two kinds.
func Truthy(v Value) (truth bool, ok bool) {
	switch val := v.(type) {
	case Integer:
		return val != 0, true
	case BooleanValue:
		return bool(val), true
	default:
		return false, false
	}
}
