package verbdef

import "fmt"

// Category identifies the lexical class of a token.
type Category int

const (
	CategoryVerb   Category = iota // min.is.ints.give.int
	CategoryDefine                 // min.define.
	CategoryBranch                 // branch<digits>..<word>.<word>,<rest of line>
	CategoryTrue                   // true..<word>.<word>
	CategoryFalse                  // false..<word>.<word>
	CategoryEnd                    // end
	CategoryID                     // any run of word characters
	CategoryNumber                 // any run of digits
)

var categoryNames = map[Category]string{
	CategoryVerb:   "VERB",
	CategoryDefine: "DEFINE",
	CategoryBranch: "BRANCH",
	CategoryTrue:   "TRUE",
	CategoryFalse:  "FALSE",
	CategoryEnd:    "END",
	CategoryID:     "ID",
	CategoryNumber: "NUMBER",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory returns the category with the given stable name, e.g. "BRANCH".
func ParseCategory(name string) (Category, error) {
	if c, ok := categoriesByName[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown token category %q", name)
}

// Token is a single lexical match. Tokens carry no source positions.
type Token struct {
	Category Category
	Lexeme   string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Category, t.Lexeme)
}
