package Trees

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNoRoot is returned by operations that need an existing root, such as
	// attaching a child or taking the minimum, when the tree is empty.
	ErrNoRoot = errors.New("tree has no root")
	// ErrUnsupported is returned by BinarySearchTree for structural mutations
	// that would let the caller break the ordering of the tree.
	ErrUnsupported = errors.New("operation not supported by binary search tree")
)

// Traversal selects one of the four linearizations of a subtree.
type Traversal uint8

const (
	PreOrder Traversal = iota + 1
	InOrder
	PostOrder
	BreadthFirst
)

func (t Traversal) String() string {
	switch t {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case BreadthFirst:
		return "bfs"
	default:
		return "unknown"
	}
}

// Tree represents a binary tree whose elements are looked up by value.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined: a false means the element asked about
// isn't in the tree. This is to be distinguished from an empty, non-nil slice
// with true, which means the element exists but has nothing to report (no
// children, for example). On an empty tree the slice returning receivers give
// an empty slice and true.
// When elements repeat, by-value receivers act on the first match of the
// lookup, which is the pre-order first match for BinaryTree and the first
// match of the ordered descent for BinarySearchTree.
// None of the implementations are safe for concurrent use.
type Tree[T comparable] interface {
	//Root element of the tree.
	Root() (T, bool)
	//Parent of e. Undefined for the root.
	Parent(e T) (T, bool)
	//Children of e, left before right.
	Children(e T) ([]T, bool)
	//NumChildren of e; -1 if e isn't in the tree and 0 if the tree is empty.
	NumChildren(e T) int
	//NodesAtLevel returns the elements at depth level, left to right.
	NodesAtLevel(level int) []T
	//Level is the number of levels of the tree, 0 when empty.
	Level() int
	IsRoot(e T) bool
	//IsInternal reports whether e has at least one child.
	IsInternal(e T) bool
	//IsExternal reports whether e hangs below another node.
	IsExternal(e T) bool
	//Height of e in edges; -1 if e isn't in the tree.
	Height(e T) int
	//Depth of e in edges; -1 if e isn't in the tree.
	Depth(e T) int
	Size() uint
	Empty() bool
	Has(e T) bool
	Clear()
	//Remove e. Exact behavior depend on implementation.
	Remove(e T) bool
	//RemoveChildren detaches both subtrees of e and returns their roots.
	RemoveChildren(e T) ([]T, bool)
	PreOrder(e T) ([]T, bool)
	InOrder(e T) ([]T, bool)
	PostOrder(e T) ([]T, bool)
	BFS(e T) ([]T, bool)
	//Subtree rooted at e, linearized by t.
	Subtree(e T, t Traversal) ([]T, bool)
	//Iterator returns a closure acting like an iterator over a breadth-first
	//snapshot of the tree: val, valid=f(). val is meaningful only if valid is
	//true, and valid can't turn true after it first became false. Changes
	//made to the tree after the call aren't seen by f.
	Iterator() func() (T, bool)
}

// Mutator is the set of free-form structural mutations. Errors report an
// invalid state (ErrNoRoot) or an unsupported operation (ErrUnsupported);
// a false with a nil error means the target wasn't found or had no room.
type Mutator[T comparable] interface {
	//AddRoot creates the root, or replaces the element of the existing root
	//and returns the previous one.
	AddRoot(e T) (T, bool, error)
	//AddAsChild attaches child on the first free side of parent, left first.
	AddAsChild(parent, child T) (bool, error)
	AddLeftChild(parent, child T) (bool, error)
	AddRightChild(parent, child T) (bool, error)
	//Set replaces the first occurrence of e with newElement.
	Set(e, newElement T) (bool, error)
}

var (
	_ Tree[int]    = (*BinaryTree[int])(nil)
	_ Mutator[int] = (*BinaryTree[int])(nil)
	_ Tree[int]    = (*BinarySearchTree[int])(nil)
	_ Mutator[int] = (*BinarySearchTree[int])(nil)
)
