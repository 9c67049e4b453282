package mython

import (
	"errors"
	"io"
	"os"
)

// Config controls where guest program output goes.
type Config struct {
	Output io.Writer
}

// Engine runs Mython programs: lex, parse, execute.
type Engine struct {
	output io.Writer
}

func NewEngine(cfg Config) *Engine {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Engine{output: cfg.Output}
}

// Run executes a complete program in a fresh root closure.
func (e *Engine) Run(source string) error {
	_, err := e.NewSession().Eval(source)
	return err
}

// Session keeps the root closure and the declared classes alive between
// evaluations, so the REPL can feed it one input at a time.
type Session struct {
	engine  *Engine
	root    *Closure
	classes map[string]*Class
}

func (e *Engine) NewSession() *Session {
	return &Session{
		engine:  e,
		root:    NewClosure(),
		classes: make(map[string]*Class),
	}
}

// Eval lexes, parses and executes source against the session state and
// returns the value of the last top-level statement. A return at top level
// has no enclosing method body to catch it and is reported as an error.
func (s *Session) Eval(source string) (Value, error) {
	lx, err := NewLexer(source)
	if err != nil {
		return NewNone(), err
	}
	program, err := parseProgram(lx, s.classes)
	if err != nil {
		return NewNone(), err
	}

	ctx := NewSimpleContext(s.engine.output)
	result := NewNone()
	for _, stmt := range program.Stmts {
		val, err := stmt.Execute(s.root, ctx)
		if err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return NewNone(), errors.New("return outside of function")
			}
			return NewNone(), err
		}
		result = val
	}
	return result, nil
}

// Globals returns a snapshot of the session's top-level bindings.
func (s *Session) Globals() map[string]Value {
	return s.root.Snapshot()
}

// FormatValue renders a value the way print would, capturing the text.
// Instances without __str__ fall back to their identity string; a failing
// __str__ surfaces as an error marker rather than an error.
func FormatValue(v Value) string {
	dummy := NewDummyContext()
	if err := PrintValue(v, dummy); err != nil {
		return "<error: " + err.Error() + ">"
	}
	return dummy.String()
}
