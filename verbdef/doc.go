// Package verbdef recognizes verb-definition fragments: a verb signature line,
// a define block of numbered branch clauses, each followed by a true action and
// a false action, and a closing end marker.
//
//	min.is.ints.give.int
//	min.define.
//	  branch0..ints_0.less,ints_1
//	  true..int.set.ints_0
//	  false..int.set.ints_1
//	end
//
// The package is structured as three layers:
//
//   - Tokenizer: applies an ordered rule table to the whole text, one rule at a
//     time. Tokens are grouped by rule first and by position second, and rules
//     overlap, so ID and NUMBER tokens re-match text already claimed by the
//     keyword rules.
//   - Recognizer: a table-driven state machine over the token sequence with a
//     single forward-only cursor. It reports acceptance; it builds no tree.
//   - Interpreter: tokenizes one input, runs a fresh recognizer and writes the
//     verdict line.
//
// Usage:
//
//	ok := verbdef.Recognize(verbdef.Tokenize(src))
//	if !ok {
//	    fmt.Println("Parsing failed")
//	}
package verbdef
