// Package render turns slides and deck state into a host-neutral render tree.
//
// A Node carries a structural role, the CSS class vocabulary of the deck
// stylesheet, and a stable identity key. Hosts (the terminal painter in
// package ui, the HTML painter in package web) map roles onto their own
// output; tests assert against the tree instead of concrete markup.
package render

// Role is the structural meaning of a node.
type Role string

const (
	RoleDeck         Role = "deck"
	RoleMeta         Role = "meta"
	RoleProgress     Role = "progress"
	RoleCounter      Role = "counter"
	RoleSlide        Role = "slide"
	RoleControls     Role = "controls"
	RoleButton       Role = "button"
	RoleContent      Role = "content"
	RoleTag          Role = "tag"
	RoleHeading      Role = "heading"
	RoleSubheading   Role = "subheading"
	RoleParagraph    Role = "paragraph"
	RoleList         Role = "list"
	RoleItem         Role = "item"
	RoleColumns      Role = "columns"
	RoleColumn       Role = "column"
	RoleTree         Role = "tree"
	RoleTreeNode     Role = "tree-node"
	RoleTreeLabel    Role = "tree-label"
	RoleTreeChildren Role = "tree-children"
	RoleTreeLeaf     Role = "tree-leaf"
)

// Node is one element of a render tree.
type Node struct {
	Role     Role
	Class    string
	Key      string // identity among siblings
	Text     string
	Level    int  // heading level
	Value    int  // progress percentage
	Disabled bool // buttons
	Attrs    map[string]string
	Children []*Node
}

func el(role Role, class string, children ...*Node) *Node {
	return &Node{Role: role, Class: class, Children: children}
}

func text(role Role, class, s string) *Node {
	return &Node{Role: role, Class: class, Text: s}
}

func heading(level int, s string) *Node {
	return &Node{Role: RoleHeading, Level: level, Text: s}
}

// bullets renders a list where each entry is both its text and its key.
func bullets(class string, entries []string) *Node {
	list := el(RoleList, class)
	for _, e := range entries {
		list.Children = append(list.Children, &Node{Role: RoleItem, Key: e, Text: e})
	}
	return list
}

// Find returns the first node with role in a pre-order walk, or nil.
func (n *Node) Find(role Role) *Node {
	if n == nil {
		return nil
	}
	if n.Role == role {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(role); f != nil {
			return f
		}
	}
	return nil
}

// Child returns the direct child with the given key, or nil.
func (n *Node) Child(key string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}
