package casefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const regression = `
name: regression
cases:
  - id: minimal
    input: "min.is.ints.give.int min.define. end"
    expect: accept
    leading: [VERB, DEFINE, END]
  - id: priority-over-position
    input: "end min.is.ints.give.int"
    expect: reject
    leading: [VERB, END]
  - id: single-branch
    input: |
      min.is.ints.give.int
      min.define.
      branch0..a.less,b
      true..int.set.a
      false..int.set.b
      end
    expect: accept
  - id: empty
    input: ""
    expect: reject
`

func TestParseSuite(t *testing.T) {
	s, err := Parse([]byte(regression))
	require.NoError(t, err)
	assert.Equal(t, "regression", s.Name)
	require.Len(t, s.Cases, 4)
	assert.Equal(t, "minimal", s.Cases[0].ID)
	assert.Equal(t, []string{"VERB", "DEFINE", "END"}, s.Cases[0].Leading)
	assert.Empty(t, s.Cases[3].Leading)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"no cases", "name: x\n", "suite has no cases"},
		{"missing id", "cases:\n  - input: end\n    expect: accept\n", "has no id"},
		{"duplicate id", "cases:\n  - id: a\n    expect: accept\n  - id: a\n    expect: reject\n", "duplicate case id"},
		{"bad expect", "cases:\n  - id: a\n    expect: maybe\n", "expect must be"},
		{"bad category", "cases:\n  - id: a\n    expect: accept\n    leading: [verb]\n", "unknown token category"},
		{"bad yaml", "cases: [", "parse suite YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRunSuite(t *testing.T) {
	s, err := Parse([]byte(regression))
	require.NoError(t, err)

	rep := s.Run()
	assert.True(t, rep.OK(), "%+v", rep.Results)
	assert.Equal(t, 4, rep.Passed)
	assert.Zero(t, rep.Failed)
	assert.Equal(t, "regression", rep.Suite)
	assert.NotNil(t, rep.Results[1].Reject)
}

func TestRunSuiteFailures(t *testing.T) {
	s, err := Parse([]byte(`
cases:
  - id: wrong-verdict
    input: "min.is.ints.give.int end"
    expect: accept
  - id: wrong-leading
    input: "min.is.ints.give.int min.define. end"
    expect: accept
    leading: [VERB, END]
  - id: too-short
    input: "end"
    expect: reject
    leading: [END, ID, ID]
`))
	require.NoError(t, err)

	rep := s.Run()
	assert.False(t, rep.OK())
	assert.Equal(t, 3, rep.Failed)
	assert.Equal(t, "expected accept, got reject", rep.Results[0].Reason)
	assert.Equal(t, `token 1: expected END, got DEFINE("min.define.")`, rep.Results[1].Reason)
	assert.Equal(t, "expected at least 3 tokens, got 2", rep.Results[2].Reason)
}

func TestRunSuiteBuiltInCode(t *testing.T) {
	s := &Suite{Cases: []Case{
		{ID: "wrong-leading", Input: "min.is.ints.give.int min.define. end", Expect: ExpectAccept, Leading: []string{"END", "END", "END"}},
		{ID: "unknown-category", Input: "min.is.ints.give.int min.define. end", Expect: ExpectAccept, Leading: []string{"verb"}},
		{ID: "no-expect", Input: "min.is.ints.give.int min.define. end"},
		{ID: "good", Input: "min.is.ints.give.int min.define. end", Expect: ExpectAccept, Leading: []string{"VERB", "DEFINE"}},
	}}

	rep := s.Run()
	require.Len(t, rep.Results, 4)
	assert.Equal(t, 3, rep.Failed)
	assert.Equal(t, 1, rep.Passed)

	assert.False(t, rep.Results[0].Passed)
	assert.Equal(t, `token 0: expected END, got VERB("min.is.ints.give.int")`, rep.Results[0].Reason)
	assert.False(t, rep.Results[1].Passed)
	assert.Contains(t, rep.Results[1].Reason, "unknown token category")
	assert.False(t, rep.Results[2].Passed)
	assert.Contains(t, rep.Results[2].Reason, "expect must be")
	assert.True(t, rep.Results[3].Passed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(regression), 0o644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Cases, 4)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read suite file")
}

func TestRegressionSuite(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "regression.yaml"))
	require.NoError(t, err)

	rep := s.Run()
	for _, r := range rep.Results {
		assert.True(t, r.Passed, "%s: %s", r.ID, r.Reason)
	}
	assert.Equal(t, len(s.Cases), rep.Passed)
}
