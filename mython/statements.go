package mython

import (
	"errors"
	"fmt"
)

func (s *Constant) Execute(closure *Closure, ctx Context) (Value, error) {
	return s.Value, nil
}

func (s *Assignment) Execute(closure *Closure, ctx Context) (Value, error) {
	val, err := s.RV.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	closure.Set(s.Var, val)
	return val, nil
}

func (s *VariableValue) Execute(closure *Closure, ctx Context) (Value, error) {
	if len(s.DottedIDs) == 0 {
		return NewNone(), newTypeError("empty variable reference")
	}

	scope := closure
	var result Value
	for i, name := range s.DottedIDs {
		val, ok := scope.Get(name)
		if !ok {
			return NewNone(), &NameError{Name: name}
		}
		result = val
		if i+1 < len(s.DottedIDs) {
			inst := val.Instance()
			if inst == nil {
				return NewNone(), newTypeError("cannot access attribute %s of %s value", s.DottedIDs[i+1], val.Kind())
			}
			scope = inst.Fields()
		}
	}
	return result, nil
}

func (s *FieldAssignment) Execute(closure *Closure, ctx Context) (Value, error) {
	obj, err := s.Object.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil {
		return NewNone(), newTypeError("cannot assign field %s on %s value", s.FieldName, obj.Kind())
	}

	val, err := s.RV.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst.Fields().Set(s.FieldName, val)
	return val, nil
}

func (s *Print) Execute(closure *Closure, ctx Context) (Value, error) {
	out := ctx.Output()
	result := NewNone()

	for i, arg := range s.Args {
		if i > 0 {
			if _, err := fmt.Fprint(out, " "); err != nil {
				return NewNone(), err
			}
		}
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return NewNone(), err
		}
		if err := PrintValue(val, ctx); err != nil {
			return NewNone(), err
		}
		result = val
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return NewNone(), err
	}
	return result, nil
}

func (s *Stringify) Execute(closure *Closure, ctx Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	dummy := NewDummyContext()
	if err := PrintValue(val, dummy); err != nil {
		return NewNone(), err
	}
	return NewString(dummy.String()), nil
}

func (s *Add) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalPair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}

	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return NewNumber(lhs.Number() + rhs.Number()), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return NewString(lhs.Text() + rhs.Text()), nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(addMethod, 1) {
		return inst.Call(addMethod, []Value{rhs}, ctx)
	}
	return NewNone(), newTypeError("unsupported operand types for +: %s and %s", lhs.Kind(), rhs.Kind())
}

func (s *Sub) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalNumberPair("-", s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewNumber(lhs - rhs), nil
}

func (s *Mult) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalNumberPair("*", s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewNumber(lhs * rhs), nil
}

func (s *Div) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalNumberPair("/", s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if rhs == 0 {
		return NewNone(), &ZeroDivisionError{}
	}
	return NewNumber(lhs / rhs), nil
}

func (s *Or) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalPair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(IsTrue(lhs) || IsTrue(rhs)), nil
}

func (s *And) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalPair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(IsTrue(lhs) && IsTrue(rhs)), nil
}

func (s *Not) Execute(closure *Closure, ctx Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(!IsTrue(val)), nil
}

func (s *Comparison) Execute(closure *Closure, ctx Context) (Value, error) {
	lhs, rhs, err := evalPair(s.LHS, s.RHS, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	res, err := s.Cmp(lhs, rhs, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewBool(res), nil
}

func (s *MethodCall) Execute(closure *Closure, ctx Context) (Value, error) {
	obj, err := s.Object.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	inst := obj.Instance()
	if inst == nil {
		return NewNone(), newTypeError("cannot call method %s on %s value", s.Method, obj.Kind())
	}

	args, err := evalArgs(s.Args, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return inst.Call(s.Method, args, ctx)
}

func (s *NewInstance) Execute(closure *Closure, ctx Context) (Value, error) {
	inst := NewInstanceOf(s.Class)

	args, err := evalArgs(s.Args, closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if inst.HasMethod(initMethod, len(args)) {
		if _, err := inst.Call(initMethod, args, ctx); err != nil {
			return NewNone(), err
		}
	}
	return NewInstanceValue(inst), nil
}

func (s *IfElse) Execute(closure *Closure, ctx Context) (Value, error) {
	cond, err := s.Condition.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	if IsTrue(cond) {
		return s.IfBody.Execute(closure, ctx)
	}
	if s.ElseBody != nil {
		return s.ElseBody.Execute(closure, ctx)
	}
	return NewNone(), nil
}

func (s *Compound) Execute(closure *Closure, ctx Context) (Value, error) {
	for _, stmt := range s.Stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return NewNone(), err
		}
	}
	return NewNone(), nil
}

func (s *ClassDefinition) Execute(closure *Closure, ctx Context) (Value, error) {
	cls := s.Cls.Class()
	if cls == nil {
		return NewNone(), newTypeError("class definition holds a %s value", s.Cls.Kind())
	}
	closure.Set(cls.Name(), s.Cls)
	return NewNone(), nil
}

func (s *Return) Execute(closure *Closure, ctx Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return NewNone(), err
	}
	return NewNone(), &returnSignal{value: val}
}

func (s *MethodBody) Execute(closure *Closure, ctx Context) (Value, error) {
	_, err := s.Body.Execute(closure, ctx)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		return NewNone(), err
	}
	return NewNone(), nil
}

func evalPair(lhs, rhs Statement, closure *Closure, ctx Context) (Value, Value, error) {
	l, err := lhs.Execute(closure, ctx)
	if err != nil {
		return NewNone(), NewNone(), err
	}
	r, err := rhs.Execute(closure, ctx)
	if err != nil {
		return NewNone(), NewNone(), err
	}
	return l, r, nil
}

func evalNumberPair(op string, lhs, rhs Statement, closure *Closure, ctx Context) (int64, int64, error) {
	l, r, err := evalPair(lhs, rhs, closure, ctx)
	if err != nil {
		return 0, 0, err
	}
	if l.Kind() != KindNumber || r.Kind() != KindNumber {
		return 0, 0, newTypeError("unsupported operand types for %s: %s and %s", op, l.Kind(), r.Kind())
	}
	return l.Number(), r.Number(), nil
}

func evalArgs(args []Statement, closure *Closure, ctx Context) ([]Value, error) {
	values := make([]Value, len(args))
	for i, arg := range args {
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		values[i] = val
	}
	return values, nil
}
