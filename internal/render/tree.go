package render

import "slidedeck/internal/deck"

// Tree renders a diagram tree in pre-order. A leaf becomes a single marked
// node; an internal node becomes its label followed by a container holding
// each child in order. Children are keyed by name.
func Tree(n *deck.TreeNode) *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return &Node{
			Role:  RoleTreeLeaf,
			Class: "tree__node tree__node--leaf",
			Key:   n.Name,
			Text:  n.Name,
		}
	}
	children := el(RoleTreeChildren, "tree__children")
	for _, c := range n.Children {
		if rc := Tree(c); rc != nil {
			children.Children = append(children.Children, rc)
		}
	}
	node := el(RoleTreeNode, "tree__node",
		text(RoleTreeLabel, "tree__label", n.Name),
		children,
	)
	node.Key = n.Name
	return node
}

// TreeLabel returns the label of a rendered tree node, leaf or internal.
func TreeLabel(n *Node) string {
	switch n.Role {
	case RoleTreeLeaf:
		return n.Text
	case RoleTreeNode:
		if l := n.Find(RoleTreeLabel); l != nil {
			return l.Text
		}
	}
	return ""
}

// TreeChildren returns the rendered children of an internal tree node.
func TreeChildren(n *Node) []*Node {
	if n.Role != RoleTreeNode {
		return nil
	}
	for _, c := range n.Children {
		if c.Role == RoleTreeChildren {
			return c.Children
		}
	}
	return nil
}
