package verbdef

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSample(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(Sample, &out)
	assert.True(t, in.Interpret())
	assert.Equal(t, "Parsing successful\n", out.String())
	assert.Nil(t, in.Result().Err)
}

func TestInterpretFailure(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter("min.is.ints.give.int\nmin.define.\n", &out)
	assert.False(t, in.Interpret())
	assert.Equal(t, "Parsing failed\n", out.String())

	res := in.Result()
	require.NotNil(t, res.Err)
	assert.Equal(t, StateEnd, res.Err.State)
}

func TestInterpretRepeatable(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(singleBranch, &out)
	assert.True(t, in.Interpret())
	assert.True(t, in.Interpret())
	assert.Equal(t, "Parsing successful\nParsing successful\n", out.String())
}

func TestInterpretEmpty(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, NewInterpreter("", &out).Interpret())
	assert.Equal(t, MsgFailure+"\n", out.String())
}
