package mython

import (
	"errors"
	"strings"
	"testing"
)

func TestIsTrue(t *testing.T) {
	cases := []struct {
		val  Value
		want bool
	}{
		{NewNone(), false},
		{NewNumber(0), false},
		{NewNumber(7), true},
		{NewNumber(-1), true},
		{NewString(""), false},
		{NewString("x"), true},
		{NewBool(true), true},
		{NewBool(false), false},
		{NewClassValue(NewClass("C", nil, nil)), false},
		{NewInstanceValue(NewInstanceOf(NewClass("C", nil, nil))), false},
	}
	for _, tc := range cases {
		if got := IsTrue(tc.val); got != tc.want {
			t.Errorf("IsTrue(%s) = %t, want %t", FormatValue(tc.val), got, tc.want)
		}
	}
}

func TestPrintValuePrimitives(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NewNumber(42), "42"},
		{NewNumber(-3), "-3"},
		{NewString("hi there"), "hi there"},
		{NewBool(true), "True"},
		{NewBool(false), "False"},
		{NewNone(), "None"},
		{NewClassValue(NewClass("Point", nil, nil)), "Class Point"},
	}
	for _, tc := range cases {
		ctx := NewDummyContext()
		if err := PrintValue(tc.val, ctx); err != nil {
			t.Fatalf("print failed: %v", err)
		}
		if ctx.String() != tc.want {
			t.Errorf("printed %q, want %q", ctx.String(), tc.want)
		}
	}
}

func TestPrintInstanceWithoutStrUsesIdentity(t *testing.T) {
	inst := NewInstanceOf(NewClass("Point", nil, nil))
	ctx := NewDummyContext()
	if err := PrintValue(NewInstanceValue(inst), ctx); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !strings.Contains(ctx.String(), "Point") {
		t.Fatalf("identity string %q does not mention the class", ctx.String())
	}
}

func TestPrintInstanceWithStr(t *testing.T) {
	cls := NewClass("Greeter", []Method{{
		Name: strMethod,
		Body: NewMethodBody(NewReturn(NewConstant(NewString("hello")))),
	}}, nil)
	ctx := NewDummyContext()
	if err := PrintValue(NewInstanceValue(NewInstanceOf(cls)), ctx); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if ctx.String() != "hello" {
		t.Fatalf("printed %q, want %q", ctx.String(), "hello")
	}
}

func TestEqualSameKinds(t *testing.T) {
	ctx := NewDummyContext()
	cases := []struct {
		lhs, rhs Value
		want     bool
	}{
		{NewNumber(3), NewNumber(3), true},
		{NewNumber(3), NewNumber(4), false},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewString("b"), false},
		{NewBool(true), NewBool(true), true},
		{NewBool(true), NewBool(false), false},
		{NewNone(), NewNone(), true},
	}
	for _, tc := range cases {
		got, err := Equal(tc.lhs, tc.rhs, ctx)
		if err != nil {
			t.Fatalf("Equal(%s, %s) failed: %v", FormatValue(tc.lhs), FormatValue(tc.rhs), err)
		}
		if got != tc.want {
			t.Errorf("Equal(%s, %s) = %t, want %t", FormatValue(tc.lhs), FormatValue(tc.rhs), got, tc.want)
		}
	}
}

func TestEqualMismatchedKindsIsTypeError(t *testing.T) {
	ctx := NewDummyContext()
	if _, err := Equal(NewNumber(1), NewString("1"), ctx); err == nil {
		t.Fatalf("expected type error")
	}

	// None equals None, but an instance without __eq__ never compares.
	inst := NewInstanceValue(NewInstanceOf(NewClass("Bare", nil, nil)))
	if _, err := Equal(inst, inst, ctx); err == nil {
		t.Fatalf("expected type error for instance without __eq__")
	}
}

func TestEqualDelegatesToDunder(t *testing.T) {
	cls := NewClass("Box", []Method{{
		Name:         eqMethod,
		FormalParams: []string{"other"},
		Body: NewMethodBody(NewReturn(NewComparison(Equal,
			NewVariableValue([]string{"self", "v"}),
			NewVariableValue([]string{"other", "v"})))),
	}}, nil)

	a := NewInstanceOf(cls)
	a.Fields().Set("v", NewNumber(5))
	b := NewInstanceOf(cls)
	b.Fields().Set("v", NewNumber(5))
	c := NewInstanceOf(cls)
	c.Fields().Set("v", NewNumber(6))

	ctx := NewDummyContext()
	if eq, err := Equal(NewInstanceValue(a), NewInstanceValue(b), ctx); err != nil || !eq {
		t.Fatalf("a == b: got %t, %v", eq, err)
	}
	if eq, err := Equal(NewInstanceValue(a), NewInstanceValue(c), ctx); err != nil || eq {
		t.Fatalf("a == c: got %t, %v", eq, err)
	}
}

func TestDerivedComparators(t *testing.T) {
	ctx := NewDummyContext()
	pairs := []struct{ lhs, rhs Value }{
		{NewNumber(1), NewNumber(2)},
		{NewNumber(2), NewNumber(2)},
		{NewNumber(3), NewNumber(2)},
		{NewString("a"), NewString("b")},
		{NewBool(false), NewBool(true)},
	}
	for _, pc := range pairs {
		eq, err := Equal(pc.lhs, pc.rhs, ctx)
		if err != nil {
			t.Fatal(err)
		}
		less, err := Less(pc.lhs, pc.rhs, ctx)
		if err != nil {
			t.Fatal(err)
		}

		ne, _ := NotEqual(pc.lhs, pc.rhs, ctx)
		if ne != !eq {
			t.Errorf("NotEqual inconsistent for %s, %s", FormatValue(pc.lhs), FormatValue(pc.rhs))
		}
		gt, _ := Greater(pc.lhs, pc.rhs, ctx)
		if gt != (!less && !eq) {
			t.Errorf("Greater inconsistent for %s, %s", FormatValue(pc.lhs), FormatValue(pc.rhs))
		}
		le, _ := LessOrEqual(pc.lhs, pc.rhs, ctx)
		if le != !gt {
			t.Errorf("LessOrEqual inconsistent for %s, %s", FormatValue(pc.lhs), FormatValue(pc.rhs))
		}
		ge, _ := GreaterOrEqual(pc.lhs, pc.rhs, ctx)
		if ge != !less {
			t.Errorf("GreaterOrEqual inconsistent for %s, %s", FormatValue(pc.lhs), FormatValue(pc.rhs))
		}
	}
}

func TestClassMethodIndexFlattening(t *testing.T) {
	speak := func(text string) Method {
		return Method{Name: "speak", Body: NewMethodBody(NewReturn(NewConstant(NewString(text))))}
	}
	base := NewClass("A", []Method{speak("A"), {Name: "only_a", Body: NewMethodBody(NewCompound())}}, nil)
	mid := NewClass("B", []Method{speak("B")}, base)
	leaf := NewClass("C", nil, mid)

	if m := leaf.GetMethod("speak"); m == nil {
		t.Fatalf("speak not found on C")
	}
	if m := leaf.GetMethod("only_a"); m == nil {
		t.Fatalf("grandparent method not reachable through flattened index")
	}
	if m := leaf.GetMethod("missing"); m != nil {
		t.Fatalf("unexpected method resolution")
	}

	// Override wins: B's speak shadows A's.
	inst := NewInstanceOf(leaf)
	res, err := inst.Call("speak", nil, NewDummyContext())
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if res.Text() != "B" {
		t.Fatalf("speak returned %q, want %q", res.Text(), "B")
	}
}

func TestHasMethodChecksArity(t *testing.T) {
	cls := NewClass("C", []Method{{
		Name:         "pair",
		FormalParams: []string{"a", "b"},
		Body:         NewMethodBody(NewCompound()),
	}}, nil)
	inst := NewInstanceOf(cls)

	if !inst.HasMethod("pair", 2) {
		t.Fatalf("pair/2 should resolve")
	}
	if inst.HasMethod("pair", 1) || inst.HasMethod("pair", 3) {
		t.Fatalf("arity mismatch should not resolve")
	}
	if inst.HasMethod("missing", 0) {
		t.Fatalf("missing method should not resolve")
	}
}

func TestCallBindsSelfAndParams(t *testing.T) {
	cls := NewClass("Adder", []Method{{
		Name:         "add",
		FormalParams: []string{"amount"},
		Body: NewMethodBody(NewReturn(NewAdd(
			NewVariableValue([]string{"self", "base"}),
			NewVariableName("amount")))),
	}}, nil)
	inst := NewInstanceOf(cls)
	inst.Fields().Set("base", NewNumber(40))

	res, err := inst.Call("add", []Value{NewNumber(2)}, NewDummyContext())
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if res.Number() != 42 {
		t.Fatalf("got %d, want 42", res.Number())
	}
}

func TestCallUnknownMethodIsAttributeError(t *testing.T) {
	inst := NewInstanceOf(NewClass("C", nil, nil))
	_, err := inst.Call("nope", nil, NewDummyContext())
	var attrErr *AttributeError
	if !errors.As(err, &attrErr) {
		t.Fatalf("expected AttributeError, got %v", err)
	}
}

func TestCallWithoutReturnYieldsNone(t *testing.T) {
	cls := NewClass("C", []Method{{
		Name: "noop",
		Body: NewMethodBody(NewCompound(NewAssignment("tmp", NewConstant(NewNumber(1))))),
	}}, nil)
	res, err := NewInstanceOf(cls).Call("noop", nil, NewDummyContext())
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if !res.IsNone() {
		t.Fatalf("got %s, want None", FormatValue(res))
	}
}
