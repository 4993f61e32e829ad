package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Stacks"
)

// The walks below use explicit stacks and queues instead of recursion, so a
// degenerate tree (a chain) costs heap memory rather than goroutine stack.
// Each of them visits every node of the subtree at n exactly once, and returns
// an empty, non-nil slice when n is nil.

// preorder visits node, left subtree, right subtree.
// Time: O(n); Space: O(D)
func preorder[T any](n *node[T]) []T {
	out := make([]T, 0)
	if n == nil {
		return out
	}
	st := Stacks.MakeArrayStack[*node[T]]()
	st.Push(n)
	for !st.Empty() {
		cur, _ := st.Pop()
		out = append(out, cur.v)
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return out
}

// inorder visits left subtree, node, right subtree.
// Time: O(n); Space: O(D)
func inorder[T any](n *node[T]) []T {
	out := make([]T, 0)
	st := Stacks.MakeArrayStack[*node[T]]()
	for cur := n; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		cur, _ = st.Pop()
		out = append(out, cur.v)
		cur = cur.r
	}
	return out
}

// postorder visits left subtree, right subtree, node. It walks node, right,
// left and reverses the result.
// Time: O(n); Space: O(n)
func postorder[T any](n *node[T]) []T {
	out := make([]T, 0)
	if n == nil {
		return out
	}
	st := Stacks.MakeArrayStack[*node[T]]()
	st.Push(n)
	for !st.Empty() {
		cur, _ := st.Pop()
		out = append(out, cur.v)
		if cur.l != nil {
			st.Push(cur.l)
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
	}
	slices.Reverse(out)
	return out
}

// bfs visits the subtree level by level, left to right.
// Time: O(n); Space: O(width)
func bfs[T any](n *node[T]) []T {
	out := make([]T, 0)
	walkLevels(n, func(_ int, cur *node[T]) bool {
		out = append(out, cur.v)
		return true
	})
	return out
}

// walkLevels runs a breadth-first walk from n, calling f with the level of
// each node relative to n. The walk stops early when f returns false.
// Returns the number of levels fully or partially visited.
func walkLevels[T any](n *node[T], f func(level int, cur *node[T]) bool) int {
	if n == nil {
		return 0
	}
	q := Queues.MakeLinkedQueue[*node[T]]()
	q.Push(n)
	level := 0
	for ; !q.Empty(); level++ {
		for width := q.Size(); width > 0; width-- {
			cur, _ := q.Pop()
			if !f(level, cur) {
				return level + 1
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return level
}

// height of n in edges, -1 if n is nil.
// Time: O(n); Space: O(width)
func height[T any](n *node[T]) int {
	return walkLevels(n, func(int, *node[T]) bool { return true }) - 1
}

// depth of n in edges, following parent links; -1 if n is nil.
// Time: O(D); Space: O(1)
func depth[T any](n *node[T]) int {
	d := -1
	for ; n != nil; n = n.p {
		d++
	}
	return d
}

// atLevel collects the elements exactly level edges below n, left to right.
func atLevel[T any](n *node[T], level int) []T {
	out := make([]T, 0)
	if level < 0 {
		return out
	}
	walkLevels(n, func(l int, cur *node[T]) bool {
		if l == level {
			out = append(out, cur.v)
		}
		return l <= level
	})
	return out
}

// walk dispatches to one of the four traversals.
func walk[T any](n *node[T], t Traversal) []T {
	switch t {
	case PreOrder:
		return preorder(n)
	case InOrder:
		return inorder(n)
	case PostOrder:
		return postorder(n)
	case BreadthFirst:
		return bfs(n)
	default:
		panic("Trees: traversal choice not recognized: " + t.String())
	}
}

// snapshot drains a breadth-first walk of n into a queue and returns a
// closure popping from it.
func snapshot[T comparable](n *node[T]) func() (T, bool) {
	vs := bfs(n)
	q := Queues.MakeArrayQueue[T](uint(len(vs)))
	for _, v := range vs {
		q.Push(v)
	}
	return func() (T, bool) {
		v, err := q.Pop()
		return v, err == nil
	}
}
