package Trees

import (
	"github.com/cockroachdb/errors"
)

// base holds what BinaryTree and BinarySearchTree share: the node graph, its
// size, and the lookup used by every by-value receiver.
// find is only called on a non-empty tree; it returns the node holding e or
// nil. BinaryTree searches depth first, BinarySearchTree by ordered descent.
type base[T comparable] struct {
	root *node[T]
	sz   uint
	find func(e T) *node[T]
}

// lookup e. The second return value is false when the tree is empty, in which
// case the first is always nil.
func (u *base[T]) lookup(e T) (*node[T], bool) {
	if u.root == nil {
		return nil, false
	}
	return u.find(e), true
}

// Root [Tree.Root]
// Time: O(1)
func (u *base[T]) Root() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.v, true
}

// Parent [Tree.Parent]
func (u *base[T]) Parent(e T) (T, bool) {
	if n, _ := u.lookup(e); n != nil && n.p != nil {
		return n.p.v, true
	}
	return *new(T), false
}

// Children [Tree.Children]
func (u *base[T]) Children(e T) ([]T, bool) {
	n, nonEmpty := u.lookup(e)
	if !nonEmpty {
		return []T{}, true
	} else if n == nil {
		return nil, false
	}
	out := make([]T, 0, 2)
	if n.l != nil {
		out = append(out, n.l.v)
	}
	if n.r != nil {
		out = append(out, n.r.v)
	}
	return out, true
}

// NumChildren [Tree.NumChildren]
func (u *base[T]) NumChildren(e T) int {
	n, nonEmpty := u.lookup(e)
	if !nonEmpty {
		return 0
	} else if n == nil {
		return -1
	}
	return n.numChildren()
}

// NodesAtLevel [Tree.NodesAtLevel]
// Time: O(n)
func (u *base[T]) NodesAtLevel(level int) []T {
	return atLevel(u.root, level)
}

// Level [Tree.Level]
// Time: O(n)
func (u *base[T]) Level() int {
	return height(u.root) + 1
}

// IsRoot [Tree.IsRoot]
// Time: O(1)
func (u *base[T]) IsRoot(e T) bool {
	return u.root != nil && u.root.v == e
}

// IsInternal [Tree.IsInternal]
func (u *base[T]) IsInternal(e T) bool {
	n, _ := u.lookup(e)
	return n != nil && !n.leaf()
}

// IsExternal [Tree.IsExternal]
// Note that this is a test on the parent link: every node except the root is
// external, whether it has children or not.
func (u *base[T]) IsExternal(e T) bool {
	n, _ := u.lookup(e)
	return n != nil && n.p != nil
}

// Height [Tree.Height]
func (u *base[T]) Height(e T) int {
	n, _ := u.lookup(e)
	return height(n)
}

// Depth [Tree.Depth]
// Time: O(lookup + D)
func (u *base[T]) Depth(e T) int {
	n, _ := u.lookup(e)
	return depth(n)
}

// Size [Tree.Size]
// Time: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

func (u *base[T]) Empty() bool {
	return u.sz == 0
}

// Has [Tree.Has]
func (u *base[T]) Has(e T) bool {
	n, _ := u.lookup(e)
	return n != nil
}

// Clear drops every node. The tree can be used again afterwards.
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
}

// RemoveChildren [Tree.RemoveChildren]
// The left subtree is detached before the right one; each detach leaves the
// tree well formed with a matching size.
func (u *base[T]) RemoveChildren(e T) ([]T, bool) {
	n, nonEmpty := u.lookup(e)
	if !nonEmpty {
		return []T{}, true
	} else if n == nil {
		return nil, false
	}
	out := make([]T, 0, 2)
	for _, c := range [2]*node[T]{n.l, n.r} {
		if c != nil {
			out = append(out, c.v)
			u.cut(c)
		}
	}
	return out, true
}

// cut detaches the subtree at n and subtracts its size.
func (u *base[T]) cut(n *node[T]) {
	sz := count(n)
	if n == u.root {
		u.root = nil
	} else {
		n.detach()
	}
	u.sz -= sz
}

// PreOrder [Tree.PreOrder]
func (u *base[T]) PreOrder(e T) ([]T, bool) {
	return u.Subtree(e, PreOrder)
}

// InOrder [Tree.InOrder]
func (u *base[T]) InOrder(e T) ([]T, bool) {
	return u.Subtree(e, InOrder)
}

// PostOrder [Tree.PostOrder]
func (u *base[T]) PostOrder(e T) ([]T, bool) {
	return u.Subtree(e, PostOrder)
}

// BFS [Tree.BFS]
func (u *base[T]) BFS(e T) ([]T, bool) {
	return u.Subtree(e, BreadthFirst)
}

// Subtree [Tree.Subtree]
// It panics if e is found and t isn't one of the four declared traversals.
// Time: O(lookup + size of subtree)
func (u *base[T]) Subtree(e T, t Traversal) ([]T, bool) {
	n, nonEmpty := u.lookup(e)
	if !nonEmpty {
		return []T{}, true
	} else if n == nil {
		return nil, false
	}
	return walk(n, t), true
}

// Iterator [Tree.Iterator]
// Time: O(n) to build the snapshot, then O(1) per call.
func (u *base[T]) Iterator() func() (T, bool) {
	return snapshot(u.root)
}

// check the structure shared by all variants: parent links agree with child
// links and the number of reachable nodes equals the size.
func (u *base[T]) check() error {
	if u.root == nil {
		if u.sz != 0 {
			return errors.AssertionFailedf("empty tree has size %d", u.sz)
		}
		return nil
	}
	if u.root.p != nil {
		return errors.AssertionFailedf("root %v has parent %v", u.root.v, u.root.p.v)
	}
	var seen uint
	st := []*node[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if seen++; seen > u.sz {
			return errors.AssertionFailedf("more than %d nodes reachable", u.sz)
		}
		for _, c := range [2]*node[T]{cur.l, cur.r} {
			if c == nil {
				continue
			}
			if c.p != cur {
				return errors.AssertionFailedf("child %v of %v has a different parent", c.v, cur.v)
			}
			st = append(st, c)
		}
	}
	if seen != u.sz {
		return errors.AssertionFailedf("%d nodes reachable, size is %d", seen, u.sz)
	}
	return nil
}
