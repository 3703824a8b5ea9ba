// SPDX-License-Identifier: MIT

// Package tableau - storage & substrate operations.
//
// Purpose:
//   - Keep rows as pauli.Operator values so a row swap is a struct swap and a
//     row merge is two word-wide XORs plus (optionally) one ProductPhase call.
//   - Expose unchecked hot-path accessors (Entry, Swap, Merge) for the
//     canonicalizers and checked ones (At, Row) for callers.
//
// Complexity quicksheet:
//   - Entry/At: O(1); Swap: O(1); Merge: O(n/64); Clone: O(r*n/64).

package tableau

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qstab/pauli"
)

const commentPrefix = "#"

// Tableau is an ordered list of Pauli rows over a fixed number of qubits.
type Tableau struct {
	n    int              // qubit count
	rows []pauli.Operator // generators, each of width n
}

// New builds a tableau over n qubits from the given rows (copied).
// Every row must act on exactly n qubits.
// Errors: ErrEmpty when n <= 0; ErrWidthMismatch on a row of another width.
func New(n int, rows ...pauli.Operator) (*Tableau, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(n=%d): %w", n, ErrEmpty)
	}
	t := &Tableau{n: n, rows: make([]pauli.Operator, len(rows))}
	for i := range rows {
		if rows[i].N() != n {
			return nil, fmt.Errorf("New: row %d has %d qubits, want %d: %w", i, rows[i].N(), n, ErrWidthMismatch)
		}
		t.rows[i] = rows[i].Clone()
	}

	return t, nil
}

// Parse builds a tableau from Pauli strings, one per row. The qubit count is
// taken from the first row.
func Parse(lines ...string) (*Tableau, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmpty)
	}
	ops := make([]pauli.Operator, 0, len(lines))
	for i, l := range lines {
		op, err := pauli.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("Parse: row %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	return New(ops[0].N(), ops...)
}

// MustParse is Parse that panics on error. Intended for fixtures and examples.
func MustParse(lines ...string) *Tableau {
	t, err := Parse(lines...)
	if err != nil {
		panic(err)
	}

	return t
}

// Read parses a tableau from text: one Pauli string per line; blank lines and
// lines starting with '#' are skipped.
func Read(r io.Reader) (*Tableau, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return Parse(lines...)
}

// N returns the number of qubits (columns).
func (t *Tableau) N() int { return t.n }

// Len returns the number of rows (generators).
func (t *Tableau) Len() int { return len(t.rows) }

// Row returns row i for in-place access, or ErrOutOfRange.
func (t *Tableau) Row(i int) (*pauli.Operator, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return &t.rows[i], nil
}

// At returns the (x, z) bit pair at (row, col) with bounds checking.
func (t *Tableau) At(row, col int) (x, z bool, err error) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= t.n {
		return false, false, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	x, z = t.rows[row].At(col).XZ()

	return x, z, nil
}

// Entry returns the Pauli letter at (row, col). Indices are not checked.
func (t *Tableau) Entry(row, col int) pauli.Pauli {
	return t.rows[row].At(col)
}

// Swap exchanges rows i and j. Indices are not checked.
func (t *Tableau) Swap(i, j int) {
	if i != j {
		t.rows[i], t.rows[j] = t.rows[j], t.rows[i]
	}
}

// Merge replaces row target with row source · row target. When phases is
// false the sign bookkeeping is skipped and target keeps its phase.
// Indices are not checked; target must differ from source.
func (t *Tableau) Merge(target, source int, phases bool) {
	t.rows[target].MulLeft(&t.rows[source], phases)
}

// Clone returns a deep copy.
func (t *Tableau) Clone() *Tableau {
	out := &Tableau{n: t.n, rows: make([]pauli.Operator, len(t.rows))}
	for i := range t.rows {
		out.rows[i] = t.rows[i].Clone()
	}

	return out
}

// Strings renders every row with Operator.String.
func (t *Tableau) Strings() []string {
	out := make([]string, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i].String()
	}

	return out
}

// String renders one row per line.
func (t *Tableau) String() string {
	return strings.Join(t.Strings(), "\n")
}
