package mython

// Statement is the uniform evaluation contract for AST nodes. Expressions
// and statements share it: every node produces a value, with None standing
// in where a statement has nothing to say.
type Statement interface {
	Execute(closure *Closure, ctx Context) (Value, error)
}

// Constant evaluates to a fixed value.
type Constant struct {
	Value Value
}

func NewConstant(v Value) *Constant { return &Constant{Value: v} }

// Assignment binds the result of RV to Var in the executing closure.
type Assignment struct {
	Var string
	RV  Statement
}

func NewAssignment(name string, rv Statement) *Assignment {
	return &Assignment{Var: name, RV: rv}
}

// VariableValue resolves a dotted identifier chain: the head in the current
// closure, each tail segment in the field scope of the instance produced by
// the previous one.
type VariableValue struct {
	DottedIDs []string
}

func NewVariableValue(dottedIDs []string) *VariableValue {
	return &VariableValue{DottedIDs: dottedIDs}
}

func NewVariableName(name string) *VariableValue {
	return &VariableValue{DottedIDs: []string{name}}
}

// FieldAssignment stores a value into a field of the instance Object
// resolves to.
type FieldAssignment struct {
	Object    *VariableValue
	FieldName string
	RV        Statement
}

func NewFieldAssignment(object *VariableValue, fieldName string, rv Statement) *FieldAssignment {
	return &FieldAssignment{Object: object, FieldName: fieldName, RV: rv}
}

// Print evaluates its arguments left to right and prints them separated by
// single spaces, terminated by a newline.
type Print struct {
	Args []Statement
}

func NewPrint(args ...Statement) *Print { return &Print{Args: args} }

func NewPrintVariable(name string) *Print {
	return NewPrint(NewVariableName(name))
}

// Stringify captures the printed form of its argument as a String value.
type Stringify struct {
	Arg Statement
}

func NewStringify(arg Statement) *Stringify { return &Stringify{Arg: arg} }

type Add struct{ LHS, RHS Statement }

func NewAdd(lhs, rhs Statement) *Add { return &Add{LHS: lhs, RHS: rhs} }

type Sub struct{ LHS, RHS Statement }

func NewSub(lhs, rhs Statement) *Sub { return &Sub{LHS: lhs, RHS: rhs} }

type Mult struct{ LHS, RHS Statement }

func NewMult(lhs, rhs Statement) *Mult { return &Mult{LHS: lhs, RHS: rhs} }

type Div struct{ LHS, RHS Statement }

func NewDiv(lhs, rhs Statement) *Div { return &Div{LHS: lhs, RHS: rhs} }

// Or and And evaluate both operands eagerly; there is no short circuit.
type Or struct{ LHS, RHS Statement }

func NewOr(lhs, rhs Statement) *Or { return &Or{LHS: lhs, RHS: rhs} }

type And struct{ LHS, RHS Statement }

func NewAnd(lhs, rhs Statement) *And { return &And{LHS: lhs, RHS: rhs} }

type Not struct{ Arg Statement }

func NewNot(arg Statement) *Not { return &Not{Arg: arg} }

// Comparison applies a Comparator to both operand results.
type Comparison struct {
	Cmp Comparator
	LHS Statement
	RHS Statement
}

func NewComparison(cmp Comparator, lhs, rhs Statement) *Comparison {
	return &Comparison{Cmp: cmp, LHS: lhs, RHS: rhs}
}

// MethodCall dispatches Method on the instance Object evaluates to.
type MethodCall struct {
	Object Statement
	Method string
	Args   []Statement
}

func NewMethodCall(object Statement, method string, args []Statement) *MethodCall {
	return &MethodCall{Object: object, Method: method, Args: args}
}

// NewInstance creates a fresh instance of Class on every evaluation and
// invokes __init__ when the class defines or inherits one matching the
// argument count.
type NewInstance struct {
	Class *Class
	Args  []Statement
}

func NewNewInstance(cls *Class, args []Statement) *NewInstance {
	return &NewInstance{Class: cls, Args: args}
}

type IfElse struct {
	Condition Statement
	IfBody    Statement
	ElseBody  Statement
}

func NewIfElse(condition, ifBody, elseBody Statement) *IfElse {
	return &IfElse{Condition: condition, IfBody: ifBody, ElseBody: elseBody}
}

// Compound executes statements in order and produces None.
type Compound struct {
	Stmts []Statement
}

func NewCompound(stmts ...Statement) *Compound { return &Compound{Stmts: stmts} }

func (c *Compound) Add(stmt Statement) { c.Stmts = append(c.Stmts, stmt) }

// ClassDefinition binds the class value under its own name in the enclosing
// closure.
type ClassDefinition struct {
	Cls Value
}

func NewClassDefinition(cls Value) *ClassDefinition { return &ClassDefinition{Cls: cls} }

// Return unwinds with its argument's value; nothing after it executes in the
// current method.
type Return struct {
	Arg Statement
}

func NewReturn(arg Statement) *Return { return &Return{Arg: arg} }

// MethodBody is the catching scope for Return. It yields the unwound value,
// or None when the body completes without returning.
type MethodBody struct {
	Body Statement
}

func NewMethodBody(body Statement) *MethodBody { return &MethodBody{Body: body} }
