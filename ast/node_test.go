package ast

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	node := New()
	node.PushText("test")
	node.PushNode(New(NewText("hello")))

	assert.Equal(t, 2, node.Len())
	assert.True(t, node.Elements[0].IsText())
	assert.Equal(t, "test", node.Elements[0].Text())
	assert.Nil(t, node.Elements[0].Node())

	assert.True(t, node.Elements[1].IsNode())
	assert.Equal(t, ElementNode, node.Elements[1].Kind())
	assert.Equal(t, "", node.Elements[1].Text())
	assert.Equal(t, 1, node.Elements[1].Node().Len())
}

func TestElementKind(t *testing.T) {
	assert.Equal(t, "text", ElementText.String())
	assert.Equal(t, "node", ElementNode.String())
	assert.Equal(t, "invalid", ElementKind(99).String())
	assert.Equal(t, ElementInvalid, Element{}.Kind())
}

func TestNodeEqual(t *testing.T) {
	a := New(NewText("a"), NewChild(New(NewText("b"))))
	b := New(NewText("a"), NewChild(New(NewText("b"))))

	assert.True(t, a.Equal(b))
	assert.False(t, a == b)

	assert.False(t, a.Equal(New(NewText("a"))))
	assert.False(t, a.Equal(New(NewText("a"), NewText("b"))))
	assert.False(t, a.Equal(New(NewText("a"), NewChild(New(NewText("c"))))))
	assert.False(t, a.Equal(nil))

	var none *Node
	assert.True(t, none.Equal(nil))

	assert.True(t, EqualForest([]*Node{a, New()}, []*Node{b, New()}))
	assert.False(t, EqualForest([]*Node{a}, []*Node{b, New()}))
	assert.False(t, EqualForest([]*Node{a}, []*Node{New()}))
}

func TestNodeDepth(t *testing.T) {
	testCases := []struct {
		In    *Node
		Depth int
	}{
		{
			In:    New(),
			Depth: 1,
		},
		{
			In:    New(NewText("a"), NewText("b")),
			Depth: 1,
		},
		{
			In:    New(NewChild(New())),
			Depth: 2,
		},
		{
			In:    New(NewChild(New()), NewChild(New(NewChild(New(NewText("x")))))),
			Depth: 3,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Depth, testCases[i].In.Depth())
	}
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  []*Node
		Out string
	}{
		{
			In:  nil,
			Out: ``,
		},
		{
			In:  []*Node{New()},
			Out: `()`,
		},
		{
			In:  []*Node{New(NewText("test"), NewText(`"a b"`))},
			Out: `(test "a b")`,
		},
		{
			In: []*Node{
				New(NewText("a"), NewChild(New(NewText("b"))), NewChild(New(NewText("c"), NewText("d")))),
				New(),
			},
			Out: `(a (b) (c d)) ()`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In...)))
	}

	assert.Equal(t, `(x (y))`, New(NewText("x"), NewChild(New(NewText("y")))).String())
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer

	node := New(NewText("module"), NewChild(New(NewText("memory"), NewText("0"))))
	err := Fprint(&buf, node)
	assert.NoError(t, err)

	expected := "(node)[2]\n" +
		"    (text): module\n" +
		"    (node)[2]\n" +
		"        (text): memory\n" +
		"        (text): 0\n"
	assert.Equal(t, expected, buf.String())
}

func TestMarshalJSON(t *testing.T) {
	node := New(NewText("a"), NewChild(New(NewText(`"b c"`))), NewChild(New()))

	buf, err := json.Marshal(node)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"elements":[{"text":"a"},{"node":{"elements":[{"text":"\"b c\""}]}},{"node":{"elements":[]}}]}`, string(buf))
}
