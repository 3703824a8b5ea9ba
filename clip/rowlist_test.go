// SPDX-License-Identifier: MIT
package clip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func walk(l *rowList) []int {
	var out []int
	for r := l.head; r != none; r = l.next[r] {
		out = append(out, r)
	}

	return out
}

func TestRowListOrderAndRemoval(t *testing.T) {
	t.Parallel()

	l := newRowList(5)
	require.Equal(t, []int{4, 3, 2, 1, 0}, walk(l))

	l.remove(2) // middle
	require.Equal(t, []int{4, 3, 1, 0}, walk(l))
	l.remove(4) // head
	require.Equal(t, []int{3, 1, 0}, walk(l))
	l.remove(0) // tail
	require.Equal(t, []int{3, 1}, walk(l))
	require.False(t, l.empty())

	l.remove(3)
	l.remove(1)
	require.True(t, l.empty())
	require.Equal(t, none, l.head)

	require.True(t, newRowList(0).empty())
}
