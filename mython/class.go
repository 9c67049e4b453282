package mython

import "errors"

// Method is a named body with positional formal parameters. self is bound
// implicitly on every call and does not count toward arity.
type Method struct {
	Name         string
	FormalParams []string
	Body         Statement
}

// Class is an immutable descriptor. The method index is flattened at
// construction: the parent's index is copied first, then own methods
// override entries with the same name.
type Class struct {
	name    string
	methods []Method
	parent  *Class
	index   map[string]*Method
}

func NewClass(name string, methods []Method, parent *Class) *Class {
	c := &Class{name: name, methods: methods, parent: parent, index: make(map[string]*Method)}
	if parent != nil {
		for methodName, m := range parent.index {
			c.index[methodName] = m
		}
	}
	for i := range c.methods {
		c.index[c.methods[i].Name] = &c.methods[i]
	}
	return c
}

func (c *Class) Name() string { return c.name }

func (c *Class) Parent() *Class { return c.parent }

// GetMethod resolves a name through the flattened index; nil means absent.
func (c *Class) GetMethod(name string) *Method {
	return c.index[name]
}

// Instance is an object of a class with its own field scope. The field scope
// is owned by the instance for its lifetime.
type Instance struct {
	class  *Class
	fields *Closure
}

func NewInstanceOf(cls *Class) *Instance {
	return &Instance{class: cls, fields: NewClosure()}
}

func (i *Instance) Class() *Class { return i.class }

func (i *Instance) Fields() *Closure { return i.fields }

// HasMethod reports whether name resolves to a method taking exactly arity
// formal parameters.
func (i *Instance) HasMethod(name string, arity int) bool {
	m := i.class.GetMethod(name)
	return m != nil && len(m.FormalParams) == arity
}

// Call dispatches a method on the instance. A fresh closure binds self to
// the receiver and each formal parameter positionally; the result is the
// value delivered by return unwinding, or whatever the body produces when it
// completes without returning.
func (i *Instance) Call(name string, args []Value, ctx Context) (Value, error) {
	if !i.HasMethod(name, len(args)) {
		return NewNone(), &AttributeError{Class: i.class.Name(), Method: name, Arity: len(args)}
	}
	m := i.class.GetMethod(name)

	closure := NewClosure()
	closure.Set("self", NewInstanceValue(i))
	for idx, param := range m.FormalParams {
		closure.Set(param, args[idx])
	}

	val, err := m.Body.Execute(closure, ctx)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		return NewNone(), err
	}
	return val, nil
}
