package deck

// TreeNode is a labeled node of a diagram tree. A node with nil Children is a
// leaf; sibling names are expected to be unique because renderers key on them.
type TreeNode struct {
	Name     string
	Children []*TreeNode
}

// IsLeaf reports whether the node has no children slice at all.
// A non-nil empty slice still counts as an internal node.
func (n *TreeNode) IsLeaf() bool {
	return n.Children == nil
}

func leaf(name string) *TreeNode {
	return &TreeNode{Name: name}
}

func branch(name string, children ...*TreeNode) *TreeNode {
	if children == nil {
		children = []*TreeNode{}
	}
	return &TreeNode{Name: name, Children: children}
}

// DemoTree builds the directory layout shown on diagram slides. Only the root
// label comes from rootDN; the organizational units below it are fixed
// demonstration content.
func DemoTree(rootDN string) *TreeNode {
	return branch(rootDN,
		branch("ou=users",
			leaf("cn=Max Muster (User)"),
			leaf("cn=Lehrkräfte (Group)"),
		),
		branch("ou=devices",
			leaf("cn=Laptop-01 (Device)"),
			leaf("cn=Drucker-02 (Device)"),
		),
		branch("ou=policies",
			leaf("cn=PasswortPolicy"),
			leaf("cn=NetzwerkZugriff"),
		),
	)
}
