package vdom

import "testing"

func TestTextf(t *testing.T) {
	node := Textf("%d items", 3)
	if node.Kind != KindText || node.Text != "3 items" {
		t.Errorf("Textf() = %+v", node)
	}
}

func TestComment(t *testing.T) {
	node := Comment("marker")
	if node.Kind != KindComment || node.Text != "marker" {
		t.Errorf("Comment() = %+v", node)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(nil, P(), "text", []*VNode{Span(), nil})

	if node.Kind != KindFragment {
		t.Fatalf("Kind = %v, want Fragment", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(node.Children))
	}
	if node.Children[1].Kind != KindText {
		t.Errorf("Children[1].Kind = %v, want Text", node.Children[1].Kind)
	}
}

func TestIf(t *testing.T) {
	node := P()
	if got := If(true, node); got != node {
		t.Error("If(true) should return the node")
	}
	if got := If(false, node); got != nil {
		t.Error("If(false) should return nil")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Key(i), s)
	})

	if len(nodes) != 2 {
		t.Fatalf("len(Range()) = %d, want 2", len(nodes))
	}
	if nodes[1].Key != "2" {
		t.Errorf("nodes[1].Key = %q, want 2", nodes[1].Key)
	}
}
