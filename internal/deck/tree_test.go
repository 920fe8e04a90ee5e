package deck

import "testing"

func TestDemoTree_Shape(t *testing.T) {
	root := DemoTree("dc=example,dc=org")

	if root.Name != "dc=example,dc=org" {
		t.Errorf("root name: got %q", root.Name)
	}
	if root.IsLeaf() {
		t.Fatal("root should not be a leaf")
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 organizational units, got %d", len(root.Children))
	}
	for _, ou := range root.Children {
		if len(ou.Children) != 2 {
			t.Errorf("%s: expected 2 children, got %d", ou.Name, len(ou.Children))
		}
		for _, c := range ou.Children {
			if !c.IsLeaf() {
				t.Errorf("%s/%s: expected leaf", ou.Name, c.Name)
			}
		}
	}
}

func TestDemoTree_FreshEachCall(t *testing.T) {
	a := DemoTree("dc=a")
	b := DemoTree("dc=a")
	a.Children[0].Name = "changed"
	if b.Children[0].Name != "ou=users" {
		t.Error("trees must not share nodes")
	}
}

func TestTreeNode_EmptyChildrenIsInternal(t *testing.T) {
	n := &TreeNode{Name: "x", Children: []*TreeNode{}}
	if n.IsLeaf() {
		t.Error("non-nil empty children should not be a leaf")
	}
	if (&TreeNode{Name: "y"}).IsLeaf() == false {
		t.Error("nil children should be a leaf")
	}
}

func TestDiagramSlide_Tree(t *testing.T) {
	s := DiagramSlide{RootDN: "dc=schule,dc=de"}
	if got := s.Tree().Name; got != "dc=schule,dc=de" {
		t.Errorf("tree root: got %q", got)
	}
}
