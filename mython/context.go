package mython

import (
	"bytes"
	"io"
)

// Context supplies the output sink the evaluator writes to. The interpreter
// never closes the sink.
type Context interface {
	Output() io.Writer
}

// SimpleContext wraps an arbitrary writer.
type SimpleContext struct {
	out io.Writer
}

func NewSimpleContext(out io.Writer) *SimpleContext {
	return &SimpleContext{out: out}
}

func (c *SimpleContext) Output() io.Writer { return c.out }

// DummyContext collects output in memory. Stringify evaluates its argument
// against one of these to capture the printed text.
type DummyContext struct {
	buf bytes.Buffer
}

func NewDummyContext() *DummyContext { return &DummyContext{} }

func (c *DummyContext) Output() io.Writer { return &c.buf }

func (c *DummyContext) String() string { return c.buf.String() }
