package verbdef

import "regexp"

// Word and digit classes cover all Unicode letters and numbers, so comment
// text in any script still yields ID tokens.
const (
	word  = `[\p{L}\p{N}_]`
	digit = `\p{Nd}`
)

// Rule pairs a category with the pattern that produces it.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
}

// rules is the fixed tokenizer table. Order matters: it decides the order of
// the token sequence.
var rules = []Rule{
	{CategoryVerb, regexp.MustCompile(`min\.is\.ints\.give\.int`)},
	{CategoryDefine, regexp.MustCompile(`min\.define\.`)},
	{CategoryBranch, regexp.MustCompile(`branch` + digit + `+\.\.` + word + `+\.` + word + `+,.*`)},
	{CategoryTrue, regexp.MustCompile(`true\.\.` + word + `+\.` + word + `+`)},
	{CategoryFalse, regexp.MustCompile(`false\.\.` + word + `+\.` + word + `+`)},
	{CategoryEnd, regexp.MustCompile(`end`)},
	{CategoryID, regexp.MustCompile(word + `+`)},
	{CategoryNumber, regexp.MustCompile(digit + `+`)},
}

// Rules returns a copy of the tokenizer's ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Tokenize converts src into a token sequence. Each rule, in table order,
// scans the entire text and appends one token per non-overlapping match in
// the order found. Rules do not consume text, so later rules re-match
// substrings already claimed by earlier ones.
//
// Tokenize never fails; text that matches no rule produces no token.
func Tokenize(src string) []Token {
	var tokens []Token
	for _, r := range rules {
		for _, m := range r.Pattern.FindAllString(src, -1) {
			tokens = append(tokens, Token{Category: r.Category, Lexeme: m})
		}
	}
	return tokens
}
