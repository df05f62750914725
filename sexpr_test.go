package sexpr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `(test)`,
			Out: `(test)`,
		},
		{
			In:  "(module\n  (memory 0 0)) ; trailing\n(module (memory 0 1))",
			Out: `(module (memory 0 0)) (module (memory 0 1))`,
		},
		{
			In:  `(assert_invalid (module (memory 1 0)) "initial memory size must be less than maximum")`,
			Out: `(assert_invalid (module (memory 1 0)) "initial memory size must be less than maximum")`,
		},
	}

	for i := range testCases {
		forest, err := Parse([]byte(testCases[i].In))
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(forest...)))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`test`, parser.ErrUnexpectedText},
		{`)`, parser.ErrUnexpectedCloseBracket},
		{`(`, parser.ErrUnclosedBracket},
	}

	for i := range testCases {
		forest, err := Parse([]byte(testCases[i].In))
		assert.Nil(t, forest)
		assert.True(t, errors.Is(err, testCases[i].Err))
	}
}

func TestReaderOnForm(t *testing.T) {
	heads := []string{}

	forest, err := NewReader(strings.NewReader(MemoryTest)).OnForm(func(node *ast.Node) {
		heads = append(heads, node.Elements[0].Text())
	}).Parse()
	require.NoError(t, err)

	assert.Len(t, heads, len(forest))
	assert.Len(t, forest, 47)
	assert.Equal(t, "module", heads[0])
	assert.Contains(t, heads, "assert_invalid")
	assert.Contains(t, heads, "assert_return")
}
