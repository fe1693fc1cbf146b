/*
File    : loxgo/object/object.go
*/

// Package object defines the Lox runtime value model: the tagged variants
// Nil, Boolean, Number, String, Function, Class, and Instance, each
// implementing the same Type/String shape, with Lox's truthiness,
// equality, and stringification rules layered on top.
package object

import (
	"math"
	"strconv"
	"strings"
)

// Type identifies a Value's runtime variant, used for type-checking in the
// interpreter and for error messages.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	FunctionType Type = "function"
	ClassType    Type = "class"
	InstanceType Type = "instance"
)

// Value is any runtime Lox value.
type Value interface {
	// Type returns the value's runtime variant.
	Type() Type
	// String renders the value the way `print` and string concatenation do.
	String() string
}

// Truthy is Lox's truthiness law: nil and boolean false are falsy,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// Equal is Lox's equality rule: nil equals nil; same variant and equal
// payload for primitives (numbers as IEEE doubles, strings byte-wise,
// booleans directly); identity for callables and instances.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && float64(av) == float64(bv)
	case String:
		bv, ok := b.(String)
		return ok && string(av) == string(bv)
	default:
		// Callables and instances are reference types in this model
		// (always held behind a pointer); identity compares the
		// pointers packed into the interface values directly.
		return a == b
	}
}

// Nil is Lox's `nil` value.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Boolean is Lox's `true`/`false`.
type Boolean bool

func (b Boolean) Type() Type { return BooleanType }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is Lox's sole numeric type, an IEEE-754 double.
type Number float64

func (Number) Type() Type { return NumberType }

// String renders the number in its shortest round-trippable decimal form,
// with a trailing ".0" for integral values. Magnitudes below 1e-4 or at
// least 1e16 use exponent form (e.g. "1e+16").
func (n Number) String() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	var s string
	if abs := math.Abs(f); abs >= 1e-4 && abs < 1e16 {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String is Lox's string type.
type String string

func (String) Type() Type       { return StringType }
func (s String) String() string { return string(s) }
