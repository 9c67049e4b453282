package mython

import "fmt"

// parser builds AST nodes from the lexer's token cursor. Class descriptors
// are constructed at parse time, so the classes table survives across
// parses that share it (the REPL relies on this).
type parser struct {
	lx      *Lexer
	classes map[string]*Class

	// Instantiations of the class currently being defined (its descriptor
	// does not exist yet while its methods parse) are patched once the
	// descriptor is built.
	pendingName   string
	pendingFixups []*NewInstance
}

// ParseProgram parses a whole source text into a top-level Compound.
func ParseProgram(lx *Lexer) (*Compound, error) {
	return parseProgram(lx, make(map[string]*Class))
}

func parseProgram(lx *Lexer, classes map[string]*Class) (*Compound, error) {
	p := &parser{lx: lx, classes: classes}
	program := NewCompound()

	for {
		tok := p.cur()
		if tok.Kind == TokenEof {
			return program, nil
		}
		if tok.Kind == TokenNewline || tok.Kind == TokenIndent || tok.Kind == TokenDedent {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Add(stmt)
	}
}

func (p *parser) cur() Token { return p.lx.Current() }

func (p *parser) advance() Token { return p.lx.Advance() }

func (p *parser) errorf(format string, args ...any) error {
	pos := p.cur().Pos
	return &ParseError{
		Pos:       pos,
		Msg:       fmt.Sprintf(format, args...),
		CodeFrame: formatCodeFrame(p.lx.src, pos),
	}
}

func (p *parser) expectKind(kind TokenKind) error {
	if p.cur().Kind != kind {
		return p.errorf("expected %s", kind)
	}
	p.advance()
	return nil
}

func (p *parser) expectChar(c byte) error {
	tok := p.cur()
	if tok.Kind != TokenChar || tok.Ch != c {
		return p.errorf("expected %q", c)
	}
	p.advance()
	return nil
}

func (p *parser) atChar(c byte) bool {
	tok := p.cur()
	return tok.Kind == TokenChar && tok.Ch == c
}

func (p *parser) parseStatement() (Statement, error) {
	switch p.cur().Kind {
	case TokenClass:
		return p.parseClassDefinition()
	case TokenIf:
		return p.parseIf()
	case TokenPrint:
		return p.parsePrint()
	case TokenReturn:
		return p.parseReturn()
	case TokenDef:
		return nil, p.errorf("method definition outside of class")
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement handles assignment, field assignment and bare
// expression statements, all terminated by Newline.
func (p *parser) parseSimpleStatement() (Statement, error) {
	var stmt Statement

	if p.cur().Kind == TokenId {
		mark := p.lx.pos
		ids, ok := p.tryDottedIDs()
		if ok && p.atChar('=') {
			p.advance()
			rv, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			if len(ids) == 1 {
				stmt = NewAssignment(ids[0], rv)
			} else {
				object := NewVariableValue(ids[:len(ids)-1])
				stmt = NewFieldAssignment(object, ids[len(ids)-1], rv)
			}
		} else {
			p.lx.pos = mark
		}
	}

	if stmt == nil {
		expr, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		stmt = expr
	}

	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	return stmt, nil
}

// tryDottedIDs consumes Id {"." Id} and reports whether the chain was
// well-formed. The caller rewinds the cursor on any non-assignment outcome.
func (p *parser) tryDottedIDs() ([]string, bool) {
	ids := []string{p.cur().Text}
	p.advance()

	for p.atChar('.') {
		p.advance()
		if p.cur().Kind != TokenId {
			return nil, false
		}
		ids = append(ids, p.cur().Text)
		p.advance()
	}
	return ids, true
}

func (p *parser) parseClassDefinition() (Statement, error) {
	p.advance()
	if p.cur().Kind != TokenId {
		return nil, p.errorf("expected class name")
	}
	name := p.cur().Text
	p.advance()

	var parent *Class
	if p.atChar('(') {
		p.advance()
		if p.cur().Kind != TokenId {
			return nil, p.errorf("expected parent class name")
		}
		parentName := p.cur().Text
		parent = p.classes[parentName]
		if parent == nil {
			return nil, p.errorf("unknown parent class %s", parentName)
		}
		p.advance()
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenIndent); err != nil {
		return nil, err
	}

	p.pendingName = name
	p.pendingFixups = nil

	var methods []Method
	for p.cur().Kind != TokenDedent && p.cur().Kind != TokenEof {
		if p.cur().Kind == TokenNewline {
			p.advance()
			continue
		}
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if p.cur().Kind == TokenDedent {
		p.advance()
	}

	cls := NewClass(name, methods, parent)
	p.classes[name] = cls
	for _, node := range p.pendingFixups {
		node.Class = cls
	}
	p.pendingName = ""
	p.pendingFixups = nil
	return NewClassDefinition(NewClassValue(cls)), nil
}

func (p *parser) parseMethod() (Method, error) {
	if err := p.expectKind(TokenDef); err != nil {
		return Method{}, err
	}
	if p.cur().Kind != TokenId {
		return Method{}, p.errorf("expected method name")
	}
	name := p.cur().Text
	p.advance()

	if err := p.expectChar('('); err != nil {
		return Method{}, err
	}
	var params []string
	for !p.atChar(')') {
		if len(params) > 0 {
			if err := p.expectChar(','); err != nil {
				return Method{}, err
			}
		}
		if p.cur().Kind != TokenId {
			return Method{}, p.errorf("expected parameter name")
		}
		params = append(params, p.cur().Text)
		p.advance()
	}
	p.advance()

	// A leading explicit self is tolerated and dropped: the call mechanism
	// binds self regardless, and arity counts only the real parameters.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	if err := p.expectChar(':'); err != nil {
		return Method{}, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return Method{}, err
	}
	return Method{Name: name, FormalParams: params, Body: NewMethodBody(body)}, nil
}

// parseSuite parses Newline Indent statements Dedent.
func (p *parser) parseSuite() (Statement, error) {
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenIndent); err != nil {
		return nil, err
	}

	suite := NewCompound()
	for p.cur().Kind != TokenDedent && p.cur().Kind != TokenEof {
		if p.cur().Kind == TokenNewline {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		suite.Add(stmt)
	}
	// Eof closes any open block; the lexer only synthesizes Dedent after a
	// physical newline.
	if p.cur().Kind == TokenEof {
		return suite, nil
	}
	if err := p.expectKind(TokenDedent); err != nil {
		return nil, err
	}
	return suite, nil
}

func (p *parser) parseIf() (Statement, error) {
	p.advance()
	condition, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	ifBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	var elseBody Statement
	if p.cur().Kind == TokenElse {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return NewIfElse(condition, ifBody, elseBody), nil
}

func (p *parser) parsePrint() (Statement, error) {
	p.advance()

	var args []Statement
	for p.cur().Kind != TokenNewline && p.cur().Kind != TokenEof {
		if len(args) > 0 {
			if err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	return NewPrint(args...), nil
}

func (p *parser) parseReturn() (Statement, error) {
	p.advance()
	arg, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	return NewReturn(arg), nil
}

// Expression grammar, loosest binding first:
// test -> or_test; or_test -> and_test {or and_test};
// and_test -> not_test {and not_test}; not_test -> not not_test | comparison.
func (p *parser) parseTest() (Statement, error) {
	lhs, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokenOr {
		p.advance()
		rhs, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		lhs = NewOr(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseAndTest() (Statement, error) {
	lhs, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokenAnd {
		p.advance()
		rhs, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		lhs = NewAnd(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseNotTest() (Statement, error) {
	if p.cur().Kind == TokenNot {
		p.advance()
		arg, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return NewNot(arg), nil
	}
	return p.parseComparison()
}

// parseComparison parses expr [comp_op expr]; a single comparison, not a
// chain.
func (p *parser) parseComparison() (Statement, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var cmp Comparator
	switch {
	case p.cur().Kind == TokenEq:
		cmp = Equal
	case p.cur().Kind == TokenNotEq:
		cmp = NotEqual
	case p.cur().Kind == TokenLessOrEq:
		cmp = LessOrEqual
	case p.cur().Kind == TokenGreaterOrEq:
		cmp = GreaterOrEqual
	case p.atChar('<'):
		cmp = Less
	case p.atChar('>'):
		cmp = Greater
	default:
		return lhs, nil
	}
	p.advance()

	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return NewComparison(cmp, lhs, rhs), nil
}

func (p *parser) parseExpr() (Statement, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		op := p.cur().Ch
		p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			lhs = NewAdd(lhs, rhs)
		} else {
			lhs = NewSub(lhs, rhs)
		}
	}
	return lhs, nil
}

func (p *parser) parseTerm() (Statement, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		op := p.cur().Ch
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			lhs = NewMult(lhs, rhs)
		} else {
			lhs = NewDiv(lhs, rhs)
		}
	}
	return lhs, nil
}

// parseUnary rewrites unary minus as subtraction from zero; number literals
// themselves are always nonnegative.
func (p *parser) parseUnary() (Statement, error) {
	if p.atChar('-') {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NewSub(NewConstant(NewNumber(0)), operand), nil
	}
	if p.atChar('+') {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any number of .method(...)
// dispatches.
func (p *parser) parsePostfix() (Statement, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.atChar('.') {
		p.advance()
		if p.cur().Kind != TokenId {
			return nil, p.errorf("expected method name after '.'")
		}
		method := p.cur().Text
		p.advance()
		if !p.atChar('(') {
			return nil, p.errorf("expected call after .%s", method)
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		expr = NewMethodCall(expr, method, args)
	}
	return expr, nil
}

func (p *parser) parsePrimary() (Statement, error) {
	tok := p.cur()
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return NewConstant(NewNumber(tok.Num)), nil
	case TokenString:
		p.advance()
		return NewConstant(NewString(tok.Text)), nil
	case TokenTrue:
		p.advance()
		return NewConstant(NewBool(true)), nil
	case TokenFalse:
		p.advance()
		return NewConstant(NewBool(false)), nil
	case TokenNone:
		p.advance()
		return NewConstant(NewNone()), nil
	case TokenId:
		return p.parseNameExpression()
	case TokenChar:
		if tok.Ch == '(' {
			p.advance()
			inner, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, p.errorf("unexpected token")
}

// parseNameExpression resolves an identifier chain into str(...), a class
// instantiation, a method call or a plain variable reference.
func (p *parser) parseNameExpression() (Statement, error) {
	name := p.cur().Text
	p.advance()

	if name == "str" && p.atChar('(') {
		p.advance()
		arg, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return NewStringify(arg), nil
	}

	ids := []string{name}
	for p.atChar('.') {
		p.advance()
		if p.cur().Kind != TokenId {
			return nil, p.errorf("expected attribute name after '.'")
		}
		ids = append(ids, p.cur().Text)
		p.advance()
	}

	if p.atChar('(') {
		if len(ids) == 1 {
			cls := p.classes[name]
			if cls == nil && name != p.pendingName {
				return nil, p.errorf("unknown class %s", name)
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			node := NewNewInstance(cls, args)
			if cls == nil {
				p.pendingFixups = append(p.pendingFixups, node)
			}
			return node, nil
		}
		object := NewVariableValue(ids[:len(ids)-1])
		method := ids[len(ids)-1]
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return NewMethodCall(object, method, args), nil
	}

	return NewVariableValue(ids), nil
}

func (p *parser) parseCallArgs() ([]Statement, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []Statement
	for !p.atChar(')') {
		if len(args) > 0 {
			if err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance()
	return args, nil
}
