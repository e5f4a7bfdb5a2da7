package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const traverseSrc = `
enum Color { Red = 0; Green = 1; }
sequence Point {
  x: i32;
  tags: [u8];
  shape: oneof { circle: f64; square: f64; };
}
`

func label(n *Node) string {
	if n.Name != "" {
		return n.Kind.String() + ":" + n.Name
	}
	return n.Kind.String()
}

func TestChildNodes(t *testing.T) {
	root := mustParse(t, traverseSrc)

	var topLevel []string
	for c := range root.ChildNodes() {
		topLevel = append(topLevel, label(c))
	}
	want := []string{"Enum:Color", "Sequence:Point"}
	if diff := cmp.Diff(want, topLevel); diff != "" {
		t.Errorf("file children mismatch (-want +got):\n%s", diff)
	}

	// Field nodes yield exactly their type child.
	point := root.Children[1]
	x := point.Children[0]
	var xKids []string
	for c := range x.ChildNodes() {
		xKids = append(xKids, label(c))
	}
	if diff := cmp.Diff([]string{"Type:i32"}, xKids); diff != "" {
		t.Errorf("field children mismatch (-want +got):\n%s", diff)
	}

	// Leaves yield nothing.
	for c := range x.Children[0].ChildNodes() {
		t.Errorf("Type node yielded child %s", label(c))
	}
}

func TestDepthFirst(t *testing.T) {
	root := mustParse(t, traverseSrc)
	var got []string
	for n := range root.DepthFirst() {
		got = append(got, label(n))
	}
	want := []string{
		"File",
		"Enum:Color",
		"EnumEntry:Red",
		"EnumEntry:Green",
		"Sequence:Point",
		"Field:x",
		"Type:i32",
		"Field:tags",
		"Array",
		"Type:u8",
		"Field:shape",
		"OneOf",
		"Field:circle",
		"Type:f64",
		"Field:square",
		"Type:f64",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("depth-first order mismatch (-want +got):\n%s", diff)
	}
}

func TestBreadthFirst(t *testing.T) {
	root := mustParse(t, traverseSrc)
	var got []string
	for n := range root.BreadthFirst() {
		got = append(got, label(n))
	}
	want := []string{
		"File",
		"Enum:Color",
		"Sequence:Point",
		"EnumEntry:Red",
		"EnumEntry:Green",
		"Field:x",
		"Field:tags",
		"Field:shape",
		"Type:i32",
		"Array",
		"OneOf",
		"Type:u8",
		"Field:circle",
		"Field:square",
		"Type:f64",
		"Type:f64",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("breadth-first order mismatch (-want +got):\n%s", diff)
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	root := mustParse(t, traverseSrc)
	count := 0
	for range root.DepthFirst() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("early stop visited %d nodes, want 3", count)
	}
}
