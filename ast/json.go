package ast

import "encoding/json"

type jsonNode struct {
	Elements []jsonElement `json:"elements"`
}

type jsonElement struct {
	Text *string   `json:"text,omitempty"`
	Node *jsonNode `json:"node,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Elements: make([]jsonElement, 0, len(n.Elements)),
	}
	for _, e := range n.Elements {
		jn.Elements = append(jn.Elements, e.toJSON())
	}
	return jn
}

func (e Element) toJSON() jsonElement {
	if e.IsNode() {
		return jsonElement{Node: e.node.toJSON()}
	}
	text := e.text
	return jsonElement{Text: &text}
}
