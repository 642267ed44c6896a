// File: lexer/error.go
package lexer

import "fmt"

// Error is raised the moment the lexer detects an invalid construct. Pos is
// the cursor position at the time of detection, which for most constructs is
// the character immediately after the offending one (the cursor has already
// advanced past the culprit when the check runs).
type Error struct {
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}
