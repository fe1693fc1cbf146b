/*
File    : loxgo/object/class.go
*/
package object

import "fmt"

// Class is a Lox class value: a name, an optional superclass, and its own
// (non-inherited) methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() Type     { return ClassType }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name on this class, then walks the superclass chain.
// Returns nil if no class in the chain declares it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of `init` if the class (or an ancestor) declares one,
// else 0 — calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class has an `init` method
// (own or inherited), binds it to the instance and invokes it with args.
// The constructed instance — not whatever `init` returns — is always the
// result.
func (c *Class) Call(in Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a Lox object: a class pointer plus a mutable field map.
// Fields are added on first write.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) Type() Type     { return InstanceType }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a property: fields shadow methods. A method hit is bound to
// the instance before being returned so later calls see the right `this`.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set writes a field, creating it if it doesn't already exist.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
