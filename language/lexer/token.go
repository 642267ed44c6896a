// File: lexer/token.go
package lexer

// Position is a 1-based line/column location in the input stream.
type Position struct {
	Line   int
	Column int
}

// TokenKind represents the kind of a token
type TokenKind int

// Token kinds
const (
	TokenString TokenKind = iota
	TokenIdentifier
	TokenComment

	// Single-character symbols
	TokenDot        // .
	TokenAtSign     // @
	TokenHashSign   // #
	TokenDollarSign // $
	TokenAsterisk   // *
	TokenColon      // :
	TokenSemicolon  // ;
	TokenLeftBrace  // {
	TokenRightBrace // }

	TokenEOF
)

// symbolKinds maps each symbol character to its token kind.
var symbolKinds = map[rune]TokenKind{
	'.': TokenDot,
	'@': TokenAtSign,
	'#': TokenHashSign,
	'$': TokenDollarSign,
	'*': TokenAsterisk,
	':': TokenColon,
	';': TokenSemicolon,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
}

func (k TokenKind) String() string {
	switch k {
	case TokenString:
		return "string"
	case TokenIdentifier:
		return "identifier"
	case TokenComment:
		return "comment"
	case TokenDot:
		return "."
	case TokenAtSign:
		return "@"
	case TokenHashSign:
		return "#"
	case TokenDollarSign:
		return "$"
	case TokenAsterisk:
		return "*"
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenEOF:
		return "end of file"
	}
	return "unknown"
}

// Token is a classified, positioned unit of lexical input. Value is only
// meaningful for string, identifier and comment tokens; symbol and EOF
// tokens carry an empty value.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   Position
}
