// Package mython implements an interpreter for Mython, a small
// dynamically-typed object-oriented language with significant indentation,
// classes with single inheritance, and Python-style special methods.
//
// The pipeline is Lexer (source text to tokens, with synthetic
// Indent/Dedent block markers) -> parser (tokens to AST) -> evaluation
// (tree walk over Statement nodes against a Closure and an output Context).
// Engine ties the stages together; Session adds persistent state for
// interactive use.
package mython
