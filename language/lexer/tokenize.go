// File: lexer/tokenize.go
package lexer

// Tokenize lexes a complete input buffer and returns every token up to and
// including the EOF token. The first invalid construct aborts the scan.
func Tokenize(input string) ([]Token, error) {
	l := New(input)

	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
