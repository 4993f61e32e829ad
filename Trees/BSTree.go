package Trees

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// BinarySearchTree is a BinaryTree that decides where elements go. For every
// node, the elements in its left subtree compare strictly less than the node's
// element and the elements in its right subtree compare greater or equal.
// Equal elements are therefore allowed and pile up on the right.
// The tree is never rebalanced: lookups are O(D) where D is the height, which
// is O(log n) for random insertion orders and O(n) for sorted ones.
// AddRoot, AddAsChild, AddLeftChild, AddRightChild and Set would let a caller
// break the ordering, so they only return ErrUnsupported.
// The zero value isn't usable, create it with one of the constructors.
type BinarySearchTree[T comparable] struct {
	base[T]
	cmp func(a, b T) int
}

// NewBinarySearchTree orders elements by their natural order.
func NewBinarySearchTree[T constraints.Ordered]() *BinarySearchTree[T] {
	return NewBinarySearchTreeFunc[T](cmp.Compare[T])
}

// NewBinarySearchTreeWithRoot returns a tree of size 1 holding e.
func NewBinarySearchTreeWithRoot[T constraints.Ordered](e T) *BinarySearchTree[T] {
	u := NewBinarySearchTree[T]()
	u.Add(e)
	return u
}

// NewBinarySearchTreeFunc orders elements with c, which returns a negative
// number when a<b, zero when a==b and a positive number when a>b. Lookups
// use c, so elements that c considers equal are found by each other.
func NewBinarySearchTreeFunc[T comparable](c func(a, b T) int) *BinarySearchTree[T] {
	u := &BinarySearchTree[T]{cmp: c}
	u.find = u.search
	return u
}

// search descends from the root by comparison.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) search(e T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(e, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// insert v into the subtree at *curPtr, whose parent is p. Recursive.
func (u *BinarySearchTree[T]) insert(curPtr **node[T], p *node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = newNode[T](v, p)
	} else if u.cmp(v, cur.v) >= 0 {
		u.insert(&cur.r, cur, v)
	} else {
		u.insert(&cur.l, cur, v)
	}
}

// Add e at its ordered position. Always succeeds.
// Time: O(D)
func (u *BinarySearchTree[T]) Add(e T) bool {
	u.insert(&u.root, nil, e)
	u.sz++
	return true
}

// remove one node holding v from the subtree at *curPtr. Recursive.
// A node with two children takes the minimum of its right subtree, and that
// minimum is then removed from the right subtree instead.
func (u *BinarySearchTree[T]) remove(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		splice(curPtr, cur.r, cur.p)
	} else if cur.r == nil {
		splice(curPtr, cur.l, cur.p)
	} else {
		m := cur.r
		for m.l != nil {
			m = m.l
		}
		cur.v = m.v
		return u.remove(&cur.r, m.v)
	}
	return true
}

// splice puts c where *at was and hangs it below p.
func splice[T any](at **node[T], c, p *node[T]) {
	*at = c
	if c != nil {
		c.p = p
	}
}

// Remove one occurrence of e. Returns false if e isn't in the tree or the
// tree is empty.
// Time: O(D)
func (u *BinarySearchTree[T]) Remove(e T) bool {
	if u.remove(&u.root, e) {
		u.sz--
		return true
	}
	return false
}

// Min returns the smallest element, or ErrNoRoot if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Min() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), errors.Wrap(ErrNoRoot, "Min")
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, nil
}

// Max returns the greatest element, or ErrNoRoot if the tree is empty. With
// repeated elements it is the last one in in-order.
// Time: O(D); Space: O(1)
func (u *BinarySearchTree[T]) Max() (T, error) {
	cur := u.root
	if cur == nil {
		return *new(T), errors.Wrap(ErrNoRoot, "Max")
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, nil
}

// AddRoot always returns ErrUnsupported.
func (u *BinarySearchTree[T]) AddRoot(T) (T, bool, error) {
	return *new(T), false, errors.Wrap(ErrUnsupported, "AddRoot")
}

// AddAsChild always returns ErrUnsupported.
func (u *BinarySearchTree[T]) AddAsChild(_, _ T) (bool, error) {
	return false, errors.Wrap(ErrUnsupported, "AddAsChild")
}

// AddLeftChild always returns ErrUnsupported.
func (u *BinarySearchTree[T]) AddLeftChild(_, _ T) (bool, error) {
	return false, errors.Wrap(ErrUnsupported, "AddLeftChild")
}

// AddRightChild always returns ErrUnsupported.
func (u *BinarySearchTree[T]) AddRightChild(_, _ T) (bool, error) {
	return false, errors.Wrap(ErrUnsupported, "AddRightChild")
}

// Set always returns ErrUnsupported.
func (u *BinarySearchTree[T]) Set(_, _ T) (bool, error) {
	return false, errors.Wrap(ErrUnsupported, "Set")
}

// Corrupt returns whether the tree has corrupt structures: a broken parent
// link, a size that doesn't match the nodes, or an element on the wrong side
// of one of its ancestors.
// Time: O(n)
func (u *BinarySearchTree[T]) Corrupt() bool {
	return u.check() != nil
}

func (u *BinarySearchTree[T]) check() error {
	if err := u.base.check(); err != nil {
		return err
	}
	// lo is an inclusive lower bound inherited from going right, hi an
	// exclusive upper bound inherited from going left.
	type frame struct {
		n      *node[T]
		lo, hi *node[T]
	}
	st := []frame{{u.root, nil, nil}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n == nil {
			continue
		}
		if f.lo != nil && u.cmp(f.n.v, f.lo.v) < 0 {
			return errors.AssertionFailedf("%v is in the right subtree of %v", f.n.v, f.lo.v)
		}
		if f.hi != nil && u.cmp(f.n.v, f.hi.v) >= 0 {
			return errors.AssertionFailedf("%v is in the left subtree of %v", f.n.v, f.hi.v)
		}
		st = append(st, frame{f.n.l, f.lo, f.n}, frame{f.n.r, f.n, f.hi})
	}
	return nil
}
