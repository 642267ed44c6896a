// File: lexer/lexer.go
package lexer

import (
	"fmt"
	"unicode"
)

// Lexer tokenizes a Tinta input stream. It is constructed once per input
// buffer and mutated in place by every cursor-advancing operation; it is not
// safe for concurrent use.
type Lexer struct {
	stream []rune
	length int
	offset int // index of the next unread character
	line   int
	column int
}

// New creates a Lexer over a fully materialized input buffer. An empty
// buffer is legal and is immediately at end of stream.
func New(stream string) *Lexer {
	runes := []rune(stream)
	return &Lexer{
		stream: runes,
		length: len(runes),
		line:   1,
		column: 1,
	}
}

// isLetter returns true if the character is an ASCII letter. Accented and
// other non-ASCII letters do not count.
func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit returns true if the character is an ASCII decimal digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isIdentStart returns true if the character can open an identifier.
func isIdentStart(ch rune) bool {
	return isLetter(ch) || ch == '_'
}

// isIdentChar returns true if the character can continue an identifier.
func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// isIdentCharOrHyphen additionally admits the interior hyphen.
func isIdentCharOrHyphen(ch rune) bool {
	return isIdentChar(ch) || ch == '-'
}

// AtEOF returns true once the cursor has passed the last character.
func (l *Lexer) AtEOF() bool {
	return l.offset >= l.length
}

// Offset returns the index of the next unread character.
func (l *Lexer) Offset() int {
	return l.offset
}

// Position returns the current line/column of the cursor.
func (l *Lexer) Position() Position {
	return Position{Line: l.line, Column: l.column}
}

// peekChar returns the character at the cursor without consuming it, or the
// zero rune past the end of the stream.
func (l *Lexer) peekChar() rune {
	if l.offset >= l.length {
		return 0
	}
	return l.stream[l.offset]
}

// peekChar2 returns the character one past the cursor without consuming
// anything, or the zero rune past the end of the stream.
func (l *Lexer) peekChar2() rune {
	if l.offset+1 >= l.length {
		return 0
	}
	return l.stream[l.offset+1]
}

// popChar advances the cursor by one character, unconditionally.
//
// The line/column update keys on the character the cursor lands on, not the
// one just consumed: when the new offset points at a newline the line is
// incremented and the column reset immediately. Diagnostics depend on this
// exact behavior, so the first character after a newline reports column 2.
func (l *Lexer) popChar() {
	l.offset++
	l.column++

	if l.offset < l.length && l.stream[l.offset] == '\n' {
		l.line++
		l.column = 1
	}
}

// nextChar consumes and returns the character at the cursor, or the zero
// rune without advancing when the stream is exhausted.
func (l *Lexer) nextChar() rune {
	if l.offset >= l.length {
		return 0
	}

	ch := l.stream[l.offset]
	l.popChar()
	return ch
}

// skipWhitespace consumes characters up to the next non-whitespace
// character or the end of the stream.
func (l *Lexer) skipWhitespace() {
	for !l.AtEOF() && unicode.IsSpace(l.peekChar()) {
		l.popChar()
	}
}

// errorf builds an *Error pinned to the current cursor position.
func (l *Lexer) errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: l.Position()}
}

// readIdentifier scans an identifier: a letter or underscore followed by any
// mix of letters, digits, underscores and interior hyphens. A hyphen must be
// followed by another identifier character; identifiers can neither start
// nor end with one, and cannot start with a digit.
func (l *Lexer) readIdentifier() (Token, error) {
	pos := l.Position()
	var value []rune

	ch := l.nextChar()
	if isDigit(ch) {
		return Token{}, l.errorf("identifiers cannot start with a digit `%c`", ch)
	}
	if ch == '-' {
		return Token{}, l.errorf("identifiers cannot start with a hyphen `%c`", ch)
	}

	value = append(value, ch)

	for !l.AtEOF() {
		lookahead := l.peekChar()
		if lookahead == '-' {
			if !isIdentCharOrHyphen(l.peekChar2()) {
				return Token{}, l.errorf("identifiers cannot end with a hyphen `%c`", lookahead)
			}
			l.popChar()
			value = append(value, lookahead)
			continue
		}
		if isIdentChar(lookahead) {
			l.popChar()
			value = append(value, lookahead)
			continue
		}
		break
	}

	return Token{Kind: TokenIdentifier, Value: string(value), Pos: pos}, nil
}

// readEscapeChar scans one backslash escape sequence and returns the decoded
// character. Recognized sequences are `\\`, `\n`, `\t` and `\r`.
func (l *Lexer) readEscapeChar() (rune, error) {
	ch := l.nextChar()
	if ch != '\\' {
		return 0, l.errorf("expected `\\`, but found `%s`", charString(ch))
	}

	if l.AtEOF() {
		return 0, l.errorf("unterminated escape sequence at end of input")
	}

	switch ch = l.nextChar(); ch {
	case '\\':
		return '\\', nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	}

	return 0, l.errorf("invalid escape sequence `\\%c`", ch)
}

// readString scans a double-quoted string literal, decoding escape
// sequences. The returned value excludes both quotes.
func (l *Lexer) readString() (Token, error) {
	pos := l.Position()
	var value []rune

	ch := l.nextChar()
	if ch != '"' {
		return Token{}, l.errorf("expected `\"`, but found `%s`", charString(ch))
	}

	for !l.AtEOF() {
		lookahead := l.peekChar()
		if lookahead == '"' {
			break
		}
		if lookahead == '\\' {
			decoded, err := l.readEscapeChar()
			if err != nil {
				return Token{}, err
			}
			value = append(value, decoded)
			continue
		}
		l.popChar()
		value = append(value, lookahead)
	}

	if l.AtEOF() {
		return Token{}, l.errorf("unterminated string: expected `\"`, but found end of input")
	}

	// Closing quote
	l.popChar()

	return Token{Kind: TokenString, Value: string(value), Pos: pos}, nil
}

// readComment scans a `--` comment running to the end of the line. The
// returned value excludes the two leading hyphens and the terminating
// newline, if any.
func (l *Lexer) readComment() (Token, error) {
	pos := l.Position()
	var value []rune

	ch := l.nextChar()
	if ch != '-' {
		return Token{}, l.errorf("expected `-`, but found `%s`", charString(ch))
	}

	ch = l.nextChar()
	if ch != '-' {
		return Token{}, l.errorf("expected `-`, but found `%s`", charString(ch))
	}

	for !l.AtEOF() {
		ch = l.nextChar()
		if ch == '\n' {
			break
		}
		value = append(value, ch)
	}

	return Token{Kind: TokenComment, Value: string(value), Pos: pos}, nil
}

// readSymbol scans one single-character symbol token.
func (l *Lexer) readSymbol() (Token, error) {
	pos := l.Position()

	ch := l.nextChar()
	kind, ok := symbolKinds[ch]
	if !ok {
		return Token{}, l.errorf("unexpected character `%c`", ch)
	}

	return Token{Kind: kind, Pos: pos}, nil
}

// NextToken reads the stream and returns the next recognized token,
// skipping whitespace between tokens. Once the stream is exhausted it keeps
// returning EOF tokens.
func (l *Lexer) NextToken() (Token, error) {
	for {
		if l.AtEOF() {
			return Token{Kind: TokenEOF, Pos: l.Position()}, nil
		}

		lookahead := l.peekChar()
		switch {
		case isIdentStart(lookahead):
			return l.readIdentifier()
		case lookahead == '-':
			// A top-level hyphen can only open a comment.
			return l.readComment()
		case lookahead == '"':
			return l.readString()
		case unicode.IsSpace(lookahead):
			l.skipWhitespace()
			continue
		}

		if _, ok := symbolKinds[lookahead]; ok {
			return l.readSymbol()
		}

		return Token{}, l.errorf("unexpected character `%c`", lookahead)
	}
}

// charString renders a character for error messages; the zero rune (no
// character) renders as the empty string.
func charString(ch rune) string {
	if ch == 0 {
		return ""
	}
	return string(ch)
}
