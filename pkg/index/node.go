package index

import "sort"

// edge links a node to one child through a single byte.
type edge struct {
	label byte
	child *node
}

// node is one position in the suffix trie. Edges are kept sorted by label so
// lookups can binary search; ids is the sorted, duplicate free set of word
// indexes whose suffixes pass through this node.
type node struct {
	edges []edge
	ids   []int
}

// search returns the position of c in the edge list and whether it exists.
func (n *node) search(c byte) (int, bool) {
	i := sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label >= c
	})
	return i, i < len(n.edges) && n.edges[i].label == c
}

// child returns the node reached through c, or nil.
func (n *node) child(c byte) *node {
	if i, ok := n.search(c); ok {
		return n.edges[i].child
	}
	return nil
}

// childOrCreate returns the node reached through c, inserting a new one
// in label order when absent.
func (n *node) childOrCreate(c byte) *node {
	i, ok := n.search(c)
	if ok {
		return n.edges[i].child
	}
	next := &node{}
	n.edges = append(n.edges, edge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = edge{label: c, child: next}
	return next
}

// add records word index id. Words are inserted in ascending order, so
// comparing against the last element is enough to keep ids sorted and unique.
func (n *node) add(id int) {
	if last := len(n.ids) - 1; last >= 0 && n.ids[last] == id {
		return
	}
	n.ids = append(n.ids, id)
}
