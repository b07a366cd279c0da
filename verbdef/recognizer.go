package verbdef

// State is a recognizer state. The machine starts in StateVerb and halts in
// StateAccept or StateReject.
type State int

const (
	StateVerb   State = iota // S0: require VERB
	StateDefine              // S1: require DEFINE
	StateBranch              // S2: branch loop head
	StateTrue                // optional TRUE after a BRANCH
	StateFalse               // optional FALSE after a TRUE
	StateEnd                 // S3: require END
	StateAccept
	StateReject
)

var stateNames = map[State]string{
	StateVerb:   "verb",
	StateDefine: "define",
	StateBranch: "branch",
	StateTrue:   "true-branch",
	StateFalse:  "false-branch",
	StateEnd:    "end",
	StateAccept: "accept",
	StateReject: "reject",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether s halts the machine.
func (s State) Terminal() bool {
	return s == StateAccept || s == StateReject
}

// transition is one row of the state table. Every non-terminal state tests a
// single category: on a match the token is consumed and the machine moves to
// onMatch, otherwise it moves to otherwise without consuming.
type transition struct {
	want      Category
	onMatch   State
	otherwise State
}

// A missing TRUE or FALSE after a BRANCH falls back to the loop head instead
// of rejecting, so the branch body is effectively optional.
var table = map[State]transition{
	StateVerb:   {want: CategoryVerb, onMatch: StateDefine, otherwise: StateReject},
	StateDefine: {want: CategoryDefine, onMatch: StateBranch, otherwise: StateReject},
	StateBranch: {want: CategoryBranch, onMatch: StateTrue, otherwise: StateEnd},
	StateTrue:   {want: CategoryTrue, onMatch: StateFalse, otherwise: StateBranch},
	StateFalse:  {want: CategoryFalse, onMatch: StateBranch, otherwise: StateBranch},
	StateEnd:    {want: CategoryEnd, onMatch: StateAccept, otherwise: StateReject},
}

// Step records a single transition taken by the recognizer.
type Step struct {
	From    State
	Cursor  int
	Want    Category
	Got     *Token // nil when the cursor is past the last token
	Matched bool
	To      State
}

// Result is the outcome of one recognition pass.
type Result struct {
	Accepted bool
	Consumed int // tokens consumed; trailing tokens after END are ignored
	Steps    []Step
	Err      *RejectError // non-nil iff !Accepted
}

// Recognize reports whether tokens form a well-formed verb definition.
func Recognize(tokens []Token) bool {
	return Check(tokens).Accepted
}

// Check runs the recognizer over tokens and returns the verdict together with
// a trace of the transitions taken. Each call uses fresh state.
func Check(tokens []Token) Result {
	r := &recognizer{tokens: tokens, state: StateVerb}
	return r.run()
}

type recognizer struct {
	tokens []Token
	cursor int
	state  State
	steps  []Step
	reject *RejectError
}

// at returns the token under the cursor, or nil when the cursor is out of
// bounds.
func (r *recognizer) at() *Token {
	if r.cursor < 0 || r.cursor >= len(r.tokens) {
		return nil
	}
	return &r.tokens[r.cursor]
}

func (r *recognizer) match(c Category) bool {
	tok := r.at()
	return tok != nil && tok.Category == c
}

func (r *recognizer) consume() {
	r.cursor++
}

func (r *recognizer) run() Result {
	for !r.state.Terminal() {
		r.step()
	}
	return Result{
		Accepted: r.state == StateAccept,
		Consumed: r.cursor,
		Steps:    r.steps,
		Err:      r.reject,
	}
}

func (r *recognizer) step() {
	tr := table[r.state]
	s := Step{From: r.state, Cursor: r.cursor, Want: tr.want, Got: r.at()}

	if r.match(tr.want) {
		r.consume()
		s.Matched = true
		s.To = tr.onMatch
	} else {
		s.To = tr.otherwise
	}

	if s.To == StateReject {
		r.reject = &RejectError{
			State:    r.state,
			Expected: tr.want,
			Got:      s.Got,
			Cursor:   r.cursor,
		}
	}

	r.steps = append(r.steps, s)
	r.state = s.To
}
