package verbdef

import (
	"fmt"
	"io"
	"os"
)

// Verdict lines written by Interpret.
const (
	MsgSuccess = "Parsing successful"
	MsgFailure = "Parsing failed"
)

// Sample is the reference verb definition: the minimum of two ints.
const Sample = `
    # 定义最小值操作
    min.is.ints.give.int

    # 开始定义最小值操作
    min.define.
      # 定义条件分支
      branch0..ints_0.less,ints_1
      # 如果条件为真
      true..int.set.ints_0
      # 如果条件为假
      false..int.set.ints_1
    end
    `

// Interpreter owns one input and reports whether it is well formed.
type Interpreter struct {
	Source string
	Out    io.Writer // defaults to os.Stdout

	last Result
}

// NewInterpreter creates an Interpreter that writes its verdict to out.
// A nil out writes to os.Stdout.
func NewInterpreter(src string, out io.Writer) *Interpreter {
	return &Interpreter{Source: src, Out: out}
}

// Interpret tokenizes the source, runs a fresh recognizer over the tokens and
// writes MsgSuccess or MsgFailure on its own line. It returns the verdict.
func (in *Interpreter) Interpret() bool {
	in.last = Check(Tokenize(in.Source))

	out := in.Out
	if out == nil {
		out = os.Stdout
	}
	if in.last.Accepted {
		fmt.Fprintln(out, MsgSuccess)
	} else {
		fmt.Fprintln(out, MsgFailure)
	}
	return in.last.Accepted
}

// Result returns the outcome of the most recent Interpret call.
func (in *Interpreter) Result() Result {
	return in.last
}
