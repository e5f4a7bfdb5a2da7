package ast

import "iter"

// ChildNodes iterates the node's direct children in declaration order. File,
// Sequence, Enum and OneOf nodes yield their child list; Field and Array
// yield their single child; EnumEntry and Type yield nothing.
func (n *Node) ChildNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		switch n.Kind {
		case FileNode, SequenceNode, EnumNode, OneOfNode:
			for _, c := range n.Children {
				if !yield(c) {
					return
				}
			}
		case FieldNode, ArrayNode:
			if len(n.Children) > 0 {
				yield(n.Children[0])
			}
		case EnumEntryNode, TypeNode:
		}
	}
}

// DepthFirst iterates the subtree rooted at n in depth-first order, visiting
// children in declaration order. The tree must not be mutated during
// iteration.
func (n *Node) DepthFirst() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			// push children in reverse so the first child pops first
			kids := childList(cur)
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}

// BreadthFirst iterates the subtree rooted at n level by level.
func (n *Node) BreadthFirst() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			queue = append(queue, childList(cur)...)
		}
	}
}

func childList(n *Node) []*Node {
	switch n.Kind {
	case FileNode, SequenceNode, EnumNode, OneOfNode:
		return n.Children
	case FieldNode, ArrayNode:
		if len(n.Children) > 0 {
			return n.Children[:1]
		}
	}
	return nil
}
