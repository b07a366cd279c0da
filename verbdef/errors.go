package verbdef

import "fmt"

// RejectError describes why a token sequence was rejected: the state whose
// required category was missing and what the cursor held instead.
type RejectError struct {
	State    State
	Expected Category
	Got      *Token // nil when the cursor ran past the last token
	Cursor   int
}

func (e *RejectError) Error() string {
	got := "end of input"
	if e.Got != nil {
		got = fmt.Sprintf("%s (%q)", e.Got.Category, e.Got.Lexeme)
	}
	return fmt.Sprintf("token %d: in %s: expected %s, got %s", e.Cursor, e.State, e.Expected, got)
}
