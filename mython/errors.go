package mython

import "fmt"

// LexError aborts tokenization; nothing after the offending character is
// processed.
type LexError struct {
	Pos       Position
	Msg       string
	CodeFrame string
}

func (e *LexError) Error() string {
	msg := fmt.Sprintf("lex error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if e.CodeFrame != "" {
		msg += "\n" + e.CodeFrame
	}
	return msg
}

// ParseError reports a malformed token sequence at the token the parser
// could not accept.
type ParseError struct {
	Pos       Position
	Msg       string
	CodeFrame string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if e.CodeFrame != "" {
		msg += "\n" + e.CodeFrame
	}
	return msg
}

// NameError reports an identifier with no binding in the accessed scope.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q is not defined", e.Name)
}

// TypeError reports operand kinds incompatible with the attempted operation.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

func newTypeError(format string, args ...any) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// AttributeError reports a method missing at the requested arity.
type AttributeError struct {
	Class  string
	Method string
	Arity  int
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no method %s/%d", e.Class, e.Method, e.Arity)
}

// ZeroDivisionError reports integer division by zero.
type ZeroDivisionError struct{}

func (e *ZeroDivisionError) Error() string { return "division by zero" }

// returnSignal carries a return value up through nested statements until the
// enclosing method body catches it. It satisfies error so it can ride the
// ordinary error path, but it is control flow, never a failure.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return outside of function" }
