package casefile

import (
	"fmt"

	"github.com/martinemde/verbdef/verbdef"
)

// CaseResult is the outcome of running a single case.
type CaseResult struct {
	ID       string
	Passed   bool
	Accepted bool
	Tokens   []verbdef.Token
	Reason   string // why the case failed; empty when it passed
	Reject   *verbdef.RejectError
}

// Report summarizes a suite run.
type Report struct {
	Suite   string
	Results []CaseResult
	Passed  int
	Failed  int
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Run tokenizes and checks every case in order.
func (s *Suite) Run() Report {
	rep := Report{Suite: s.Name, Results: make([]CaseResult, 0, len(s.Cases))}
	for _, c := range s.Cases {
		res := c.run()
		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Results = append(rep.Results, res)
	}
	return rep
}

func (c Case) run() CaseResult {
	tokens := verbdef.Tokenize(c.Input)
	check := verbdef.Check(tokens)
	res := CaseResult{
		ID:       c.ID,
		Accepted: check.Accepted,
		Tokens:   tokens,
		Reject:   check.Err,
	}

	leading, err := c.leadingCategories()
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	if c.Expect != ExpectAccept && c.Expect != ExpectReject {
		res.Reason = fmt.Sprintf("expect must be %q or %q, got %q", ExpectAccept, ExpectReject, c.Expect)
		return res
	}
	if want := c.Expect == ExpectAccept; want != check.Accepted {
		res.Reason = fmt.Sprintf("expected %s, got %s", c.Expect, verdict(check.Accepted))
		return res
	}
	if len(leading) > len(tokens) {
		res.Reason = fmt.Sprintf("expected at least %d tokens, got %d", len(leading), len(tokens))
		return res
	}
	for i, want := range leading {
		if tokens[i].Category != want {
			res.Reason = fmt.Sprintf("token %d: expected %s, got %s", i, want, tokens[i])
			return res
		}
	}
	res.Passed = true
	return res
}

func verdict(accepted bool) string {
	if accepted {
		return ExpectAccept
	}
	return ExpectReject
}
