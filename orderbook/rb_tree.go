package orderbook

import "github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/price"

type color uint8

const (
	red   color = 0
	black color = 1
)

type node struct {
	key    price.Ticks
	level  *PriceLevel
	color  color
	left   *node
	right  *node
	parent *node
}

// RBTree is an ordered map from price ticks to PriceLevel, balanced
// so that best-level access, insert, and delete are all O(log n),
// the bound the side book requires. A book holds two
// trees, one per side; which end counts as "best" is the SideBook's
// concern, not the tree's.
type RBTree struct {
	root *node
	nilN *node // sentinel, always black
	size int
}

// NewRBTree builds an empty tree.
func NewRBTree() *RBTree {
	sentinel := &node{color: black}
	return &RBTree{root: sentinel, nilN: sentinel}
}

// Size reports the number of distinct price levels.
func (t *RBTree) Size() int { return t.size }

// FindLevel returns the level at price, or nil if absent.
func (t *RBTree) FindLevel(p price.Ticks) *PriceLevel {
	n := t.searchNode(p)
	if n == t.nilN {
		return nil
	}
	return n.level
}

// UpsertLevel returns the level at price, creating an empty one if
// none exists yet. Implementations must not permit two levels at the
// same tick; the tree enforces this by construction.
func (t *RBTree) UpsertLevel(p price.Ticks) *PriceLevel {
	y := t.nilN
	x := t.root
	for x != t.nilN {
		y = x
		switch {
		case p < x.key:
			x = x.left
		case p > x.key:
			x = x.right
		default:
			return x.level
		}
	}

	pl := &PriceLevel{Price: p}
	z := &node{key: p, level: pl, color: red, left: t.nilN, right: t.nilN, parent: y}
	if y == t.nilN {
		t.root = z
	} else if z.key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return pl
}

// DeleteLevel removes the level at price. Callers must only do this
// once the level is empty (side books must contain no empty
// levels).
func (t *RBTree) DeleteLevel(p price.Ticks) bool {
	z := t.searchNode(p)
	if z == t.nilN {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// MinLevel returns the level with the lowest price, or nil if empty.
func (t *RBTree) MinLevel() *PriceLevel {
	n := t.minNode(t.root)
	if n == t.nilN {
		return nil
	}
	return n.level
}

// MaxLevel returns the level with the highest price, or nil if empty.
func (t *RBTree) MaxLevel() *PriceLevel {
	n := t.maxNode(t.root)
	if n == t.nilN {
		return nil
	}
	return n.level
}

// ForEachAscending visits levels from lowest to highest price until
// fn returns false.
func (t *RBTree) ForEachAscending(fn func(*PriceLevel) bool) {
	for n := t.minNode(t.root); n != t.nilN; n = t.next(n) {
		if !fn(n.level) {
			return
		}
	}
}

// ForEachDescending visits levels from highest to lowest price until
// fn returns false.
func (t *RBTree) ForEachDescending(fn func(*PriceLevel) bool) {
	for n := t.maxNode(t.root); n != t.nilN; n = t.prev(n) {
		if !fn(n.level) {
			return
		}
	}
}

// ---- internal helpers ----

func (t *RBTree) searchNode(p price.Ticks) *node {
	n := t.root
	for n != t.nilN {
		switch {
		case p < n.key:
			n = n.left
		case p > n.key:
			n = n.right
		default:
			return n
		}
	}
	return t.nilN
}

func (t *RBTree) minNode(n *node) *node {
	for n != t.nilN && n.left != t.nilN {
		n = n.left
	}
	return n
}

func (t *RBTree) maxNode(n *node) *node {
	for n != t.nilN && n.right != t.nilN {
		n = n.right
	}
	return n
}

func (t *RBTree) next(n *node) *node {
	if n.right != t.nilN {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nilN && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *RBTree) prev(n *node) *node {
	if n.left != t.nilN {
		return t.maxNode(n.left)
	}
	p := n.parent
	for p != t.nilN && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (t *RBTree) leftRotate(x *node) {
	y := x.right
	x.right = y.left
	if y.left != t.nilN {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilN {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *RBTree) rightRotate(y *node) {
	x := y.left
	y.left = x.right
	if x.right != t.nilN {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nilN {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *RBTree) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *RBTree) transplant(u, v *node) {
	if u.parent == t.nilN {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *RBTree) deleteNode(z *node) {
	y := z
	yOrigColor := y.color
	var x *node

	if z.left == t.nilN {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nilN {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *RBTree) deleteFixup(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
