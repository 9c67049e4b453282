package mython

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	TokenEof TokenKind = iota

	// Valued kinds carry a payload in the Token.
	TokenNumber
	TokenString
	TokenId
	TokenChar

	TokenClass
	TokenReturn
	TokenIf
	TokenElse
	TokenDef
	TokenNewline
	TokenPrint
	TokenIndent
	TokenDedent
	TokenAnd
	TokenOr
	TokenNot
	TokenEq
	TokenNotEq
	TokenLessOrEq
	TokenGreaterOrEq
	TokenNone
	TokenTrue
	TokenFalse
)

var tokenKindNames = map[TokenKind]string{
	TokenEof:         "Eof",
	TokenNumber:      "Number",
	TokenString:      "String",
	TokenId:          "Id",
	TokenChar:        "Char",
	TokenClass:       "Class",
	TokenReturn:      "Return",
	TokenIf:          "If",
	TokenElse:        "Else",
	TokenDef:         "Def",
	TokenNewline:     "Newline",
	TokenPrint:       "Print",
	TokenIndent:      "Indent",
	TokenDedent:      "Dedent",
	TokenAnd:         "And",
	TokenOr:          "Or",
	TokenNot:         "Not",
	TokenEq:          "Eq",
	TokenNotEq:       "NotEq",
	TokenLessOrEq:    "LessOrEq",
	TokenGreaterOrEq: "GreaterOrEq",
	TokenNone:        "None",
	TokenTrue:        "True",
	TokenFalse:       "False",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Position identifies where a token starts in the source text. Lines and
// columns are 1-based.
type Position struct {
	Line   int
	Column int
}

// Token is a tagged variant: Kind selects which payload field, if any, is
// meaningful. Unused payload fields stay zero. Pos records where the token
// was lexed and is ignored by Equal.
type Token struct {
	Kind TokenKind
	Text string
	Num  int64
	Ch   byte
	Pos  Position
}

// Equal compares kind and, for valued kinds, the payload.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenNumber:
		return t.Num == other.Num
	case TokenString, TokenId:
		return t.Text == other.Text
	case TokenChar:
		return t.Ch == other.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return fmt.Sprintf("Number{%d}", t.Num)
	case TokenString:
		return fmt.Sprintf("String{%s}", t.Text)
	case TokenId:
		return fmt.Sprintf("Id{%s}", t.Text)
	case TokenChar:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return t.Kind.String()
	}
}

func KindToken(kind TokenKind) Token { return Token{Kind: kind} }
func NumberToken(n int64) Token      { return Token{Kind: TokenNumber, Num: n} }
func StringToken(s string) Token     { return Token{Kind: TokenString, Text: s} }
func IdToken(name string) Token      { return Token{Kind: TokenId, Text: name} }
func CharToken(c byte) Token         { return Token{Kind: TokenChar, Ch: c} }

func lookupKeyword(ident string) (TokenKind, bool) {
	switch ident {
	case "class":
		return TokenClass, true
	case "return":
		return TokenReturn, true
	case "if":
		return TokenIf, true
	case "else":
		return TokenElse, true
	case "def":
		return TokenDef, true
	case "print":
		return TokenPrint, true
	case "or":
		return TokenOr, true
	case "None":
		return TokenNone, true
	case "and":
		return TokenAnd, true
	case "not":
		return TokenNot, true
	case "True":
		return TokenTrue, true
	case "False":
		return TokenFalse, true
	}
	return TokenId, false
}
