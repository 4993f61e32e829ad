package Trees

import "github.com/g-m-twostay/go-containers/Stacks"

// A node in the tree.
// l and r own the subtrees below the node. p only points back up for
// navigation; it is nil for the root and for detached nodes.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

func newNode[T any](v T, p *node[T]) *node[T] {
	return &node[T]{v: v, p: p}
}

// link returns the parent's pointer that owns n, or nil if n has no parent.
func (n *node[T]) link() **node[T] {
	switch {
	case n.p == nil:
		return nil
	case n.p.l == n:
		return &n.p.l
	default:
		return &n.p.r
	}
}

// detach unlinks n from its parent. The subtree below n stays intact.
func (n *node[T]) detach() {
	if l := n.link(); l != nil {
		*l = nil
	}
	n.p = nil
}

func (n *node[T]) leaf() bool {
	return n.l == nil && n.r == nil
}

func (n *node[T]) numChildren() int {
	c := 0
	if n.l != nil {
		c++
	}
	if n.r != nil {
		c++
	}
	return c
}

// count the nodes of the subtree rooted at n.
// Time: O(size of subtree); Space: O(height of subtree)
func count[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	st := Stacks.MakeArrayStack[*node[T]]()
	st.Push(n)
	var c uint
	for !st.Empty() {
		cur, _ := st.Pop()
		c++
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return c
}
