// SPDX-License-Identifier: MIT

package clip

// none marks the end of a rowList.
const none = -1

// rowList is an order-preserving doubly linked list over row indices
// 0..n-1 with O(1) removal. It starts as n-1, n-2, …, 0.
type rowList struct {
	head       int
	next, prev []int
	size       int
}

func newRowList(n int) *rowList {
	l := &rowList{head: none, next: make([]int, n), prev: make([]int, n), size: n}
	for r := 0; r < n; r++ {
		// descending order: successor of r is r-1, predecessor is r+1
		l.next[r] = r - 1
		if r+1 < n {
			l.prev[r] = r + 1
		} else {
			l.prev[r] = none
		}
	}
	if n > 0 {
		l.head = n - 1
	}

	return l
}

func (l *rowList) empty() bool { return l.size == 0 }

// remove unlinks r. r must currently be in the list.
func (l *rowList) remove(r int) {
	p, nx := l.prev[r], l.next[r]
	if p == none {
		l.head = nx
	} else {
		l.next[p] = nx
	}
	if nx != none {
		l.prev[nx] = p
	}
	l.size--
}
