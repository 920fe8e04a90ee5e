package web

import (
	"bytes"
	"fmt"
	"strconv"

	"slidedeck/internal/render"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// roleTags maps render roles onto HTML elements. Headings are chosen by
// level instead.
var roleTags = map[render.Role]atom.Atom{
	render.RoleDeck:         atom.Main,
	render.RoleMeta:         atom.Header,
	render.RoleProgress:     atom.Div,
	render.RoleCounter:      atom.Div,
	render.RoleSlide:        atom.Section,
	render.RoleControls:     atom.Footer,
	render.RoleButton:       atom.Button,
	render.RoleContent:      atom.Div,
	render.RoleTag:          atom.Div,
	render.RoleSubheading:   atom.P,
	render.RoleParagraph:    atom.P,
	render.RoleList:         atom.Ul,
	render.RoleItem:         atom.Li,
	render.RoleColumns:      atom.Div,
	render.RoleColumn:       atom.Div,
	render.RoleTree:         atom.Div,
	render.RoleTreeNode:     atom.Div,
	render.RoleTreeLabel:    atom.Div,
	render.RoleTreeChildren: atom.Div,
	render.RoleTreeLeaf:     atom.Div,
}

var headingTags = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// HTMLNode converts a render tree into an HTML node tree. Returns nil for a
// nil input.
func HTMLNode(n *render.Node) *html.Node {
	if n == nil {
		return nil
	}
	tag, ok := roleTags[n.Role]
	if n.Role == render.RoleHeading {
		level := min(max(n.Level, 1), len(headingTags))
		tag, ok = headingTags[level-1], true
	}
	if !ok {
		tag = atom.Div
	}
	el := element(tag)
	if n.Class != "" {
		el.Attr = append(el.Attr, attr("class", n.Class))
	}
	if n.Key != "" {
		el.Attr = append(el.Attr, attr("data-key", n.Key))
	}
	for _, k := range sortedKeys(n.Attrs) {
		el.Attr = append(el.Attr, attr(k, n.Attrs[k]))
	}

	switch n.Role {
	case render.RoleProgress:
		el.AppendChild(element(atom.Div,
			attr("class", "deck__progress-bar"),
			attr("style", fmt.Sprintf("width: %d%%", n.Value)),
		))
		el.Attr = append(el.Attr, attr("data-progress", strconv.Itoa(n.Value)))
	case render.RoleButton:
		el.Attr = append(el.Attr,
			attr("type", "button"),
			attr("class", "deck__button deck__button--"+n.Key),
			attr("data-action", n.Key),
		)
		if n.Disabled {
			el.Attr = append(el.Attr, attr("disabled", ""))
		}
	}

	if n.Text != "" {
		el.AppendChild(textNode(n.Text))
	}
	for _, c := range n.Children {
		if hc := HTMLNode(c); hc != nil {
			el.AppendChild(hc)
		}
	}
	return el
}

// RenderHTML serializes a render tree as an HTML fragment.
func RenderHTML(n *render.Node) (string, error) {
	hn := HTMLNode(n)
	if hn == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, hn); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
