package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-containers/Stacks"
)

// BinaryTree is a general binary tree. The caller decides where every element
// goes: the root is set with AddRoot and other elements are attached below an
// existing element with AddAsChild, AddLeftChild or AddRightChild.
// Elements are located by equality with a depth-first search that looks at a
// node, then its left subtree, then its right subtree, and stops at the first
// match. Repeated elements are allowed; by-value receivers act on that first
// match.
// The zero value isn't usable, create it with NewBinaryTree.
type BinaryTree[T comparable] struct {
	base[T]
}

func NewBinaryTree[T comparable]() *BinaryTree[T] {
	u := new(BinaryTree[T])
	u.find = u.search
	return u
}

// NewBinaryTreeWithRoot returns a tree of size 1 holding e at the root.
func NewBinaryTreeWithRoot[T comparable](e T) *BinaryTree[T] {
	u := NewBinaryTree[T]()
	u.root, u.sz = newNode[T](e, nil), 1
	return u
}

// search for the first node holding e in pre-order.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) search(e T) *node[T] {
	st := Stacks.MakeArrayStack[*node[T]]()
	st.Push(u.root)
	for !st.Empty() {
		cur, _ := st.Pop()
		if cur.v == e {
			return cur
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return nil
}

// AddRoot [Mutator.AddRoot]
// The size grows only when the tree was empty. The error is always nil.
// Time: O(1)
func (u *BinaryTree[T]) AddRoot(e T) (T, bool, error) {
	if u.root == nil {
		u.root = newNode[T](e, nil)
		u.sz++
		return *new(T), false, nil
	}
	prev := u.root.v
	u.root.v = e
	return prev, true, nil
}

// side picks which link of a parent node attach writes to. It returns nil when
// there's no room.
type side[T comparable] func(p *node[T]) **node[T]

func anySide[T comparable](p *node[T]) **node[T] {
	if p.l == nil {
		return &p.l
	} else if p.r == nil {
		return &p.r
	}
	return nil
}

func leftSide[T comparable](p *node[T]) **node[T] {
	if p.l == nil {
		return &p.l
	}
	return nil
}

func rightSide[T comparable](p *node[T]) **node[T] {
	if p.r == nil {
		return &p.r
	}
	return nil
}

func (u *BinaryTree[T]) attach(op string, parent, child T, s side[T]) (bool, error) {
	p, nonEmpty := u.lookup(parent)
	if !nonEmpty {
		return false, errors.Wrap(ErrNoRoot, op)
	} else if p == nil {
		return false, nil
	}
	slot := s(p)
	if slot == nil {
		return false, nil
	}
	*slot = newNode[T](child, p)
	u.sz++
	return true, nil
}

// AddAsChild [Mutator.AddAsChild]
// Returns false if parent isn't found or already has two children, and
// ErrNoRoot if the tree is empty.
// Time: O(n)
func (u *BinaryTree[T]) AddAsChild(parent, child T) (bool, error) {
	return u.attach("AddAsChild", parent, child, anySide[T])
}

// AddLeftChild [Mutator.AddLeftChild]
// Returns false if parent isn't found or already has a left child, and
// ErrNoRoot if the tree is empty.
// Time: O(n)
func (u *BinaryTree[T]) AddLeftChild(parent, child T) (bool, error) {
	return u.attach("AddLeftChild", parent, child, leftSide[T])
}

// AddRightChild is the mirror of AddLeftChild.
func (u *BinaryTree[T]) AddRightChild(parent, child T) (bool, error) {
	return u.attach("AddRightChild", parent, child, rightSide[T])
}

// Set [Mutator.Set]
// Returns ErrNoRoot if the tree is empty.
// Time: O(n)
func (u *BinaryTree[T]) Set(e, newElement T) (bool, error) {
	n, nonEmpty := u.lookup(e)
	if !nonEmpty {
		return false, errors.Wrap(ErrNoRoot, "Set")
	} else if n == nil {
		return false, nil
	}
	n.v = newElement
	return true, nil
}

// Remove the first occurrence of e together with everything below it. The
// size drops by the number of nodes removed. Removing the root empties the
// tree. Returns false if e isn't found or the tree is empty.
// Time: O(n)
func (u *BinaryTree[T]) Remove(e T) bool {
	n, _ := u.lookup(e)
	if n == nil {
		return false
	}
	u.cut(n)
	return true
}
