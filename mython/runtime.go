package mython

import "fmt"

const (
	initMethod = "__init__"
	addMethod  = "__add__"
	eqMethod   = "__eq__"
	ltMethod   = "__lt__"
	strMethod  = "__str__"
)

// IsTrue converts a value to its boolean interpretation: nonzero numbers and
// nonempty strings are true; None, classes and instances are false.
func IsTrue(v Value) bool {
	switch v.Kind() {
	case KindBool:
		return v.Bool()
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.Text() != ""
	default:
		return false
	}
}

// PrintValue writes the printed form of v to the context's output stream.
// Instances defer to a zero-argument __str__ when one is defined.
func PrintValue(v Value, ctx Context) error {
	out := ctx.Output()
	switch v.Kind() {
	case KindNone:
		_, err := fmt.Fprint(out, "None")
		return err
	case KindNumber:
		_, err := fmt.Fprintf(out, "%d", v.Number())
		return err
	case KindString:
		_, err := fmt.Fprint(out, v.Text())
		return err
	case KindBool:
		text := "False"
		if v.Bool() {
			text = "True"
		}
		_, err := fmt.Fprint(out, text)
		return err
	case KindClass:
		_, err := fmt.Fprintf(out, "Class %s", v.Class().Name())
		return err
	case KindInstance:
		inst := v.Instance()
		if inst.HasMethod(strMethod, 0) {
			res, err := inst.Call(strMethod, nil, ctx)
			if err != nil {
				return err
			}
			return PrintValue(res, ctx)
		}
		_, err := fmt.Fprintf(out, "<%s object at %p>", inst.Class().Name(), inst)
		return err
	default:
		return newTypeError("cannot print %s value", v.Kind())
	}
}

// Comparator is the shape shared by Equal, Less and their derivations.
type Comparator func(lhs, rhs Value, ctx Context) (bool, error)

// Equal compares same-kind numbers, strings and bools by their natural
// equality. None equals None. An instance on the left delegates to its
// __eq__(other), which must return a bool. Anything else is a TypeError;
// in particular two instances without __eq__ do not compare equal by
// identity.
func Equal(lhs, rhs Value, ctx Context) (bool, error) {
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Number() == rhs.Number(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Text() == rhs.Text(), nil
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return lhs.Bool() == rhs.Bool(), nil
	case lhs.IsNone() && rhs.IsNone():
		return true, nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(eqMethod, 1) {
		return callBoolDunder(inst, eqMethod, rhs, ctx)
	}
	return false, newTypeError("cannot compare %s and %s for equality", lhs.Kind(), rhs.Kind())
}

// Less orders same-kind numbers, strings and bools; an instance on the left
// delegates to __lt__(other).
func Less(lhs, rhs Value, ctx Context) (bool, error) {
	switch {
	case lhs.Kind() == KindNumber && rhs.Kind() == KindNumber:
		return lhs.Number() < rhs.Number(), nil
	case lhs.Kind() == KindString && rhs.Kind() == KindString:
		return lhs.Text() < rhs.Text(), nil
	case lhs.Kind() == KindBool && rhs.Kind() == KindBool:
		return !lhs.Bool() && rhs.Bool(), nil
	}
	if inst := lhs.Instance(); inst != nil && inst.HasMethod(ltMethod, 1) {
		return callBoolDunder(inst, ltMethod, rhs, ctx)
	}
	return false, newTypeError("cannot compare %s and %s for less", lhs.Kind(), rhs.Kind())
}

func NotEqual(lhs, rhs Value, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	return !eq, err
}

// Greater and the remaining comparators are derived from Equal and Less.
// Guest __eq__ and __lt__ must be mutually consistent for the derivations to
// describe a total order.
func Greater(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less && !eq, nil
}

func LessOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	greater, err := Greater(lhs, rhs, ctx)
	return !greater, err
}

func GreaterOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	return !less, err
}

func callBoolDunder(inst *Instance, method string, arg Value, ctx Context) (bool, error) {
	res, err := inst.Call(method, []Value{arg}, ctx)
	if err != nil {
		return false, err
	}
	if res.Kind() != KindBool {
		return false, newTypeError("%s must return a bool, got %s", method, res.Kind())
	}
	return res.Bool(), nil
}
