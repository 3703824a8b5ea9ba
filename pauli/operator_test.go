// SPDX-License-Identifier: MIT
package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstab/pauli"
)

// mat2 is a 2×2 complex matrix used as ground truth for the sign rule.
type mat2 [2][2]complex128

func (a mat2) mul(b mat2) mat2 {
	var c mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return c
}

func (a mat2) scale(s complex128) mat2 {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a[i][j] *= s
		}
	}

	return a
}

var letterMatrix = map[pauli.Pauli]mat2{
	pauli.I: {{1, 0}, {0, 1}},
	pauli.X: {{0, 1}, {1, 0}},
	pauli.Y: {{0, -1i}, {1i, 0}},
	pauli.Z: {{1, 0}, {0, -1}},
}

var phaseFactor = [4]complex128{1, 1i, -1, -1i}

// TestProductPhase_SingleQubitTable checks ProductPhase against explicit
// matrix multiplication for all 16 ordered letter pairs.
func TestProductPhase_SingleQubitTable(t *testing.T) {
	t.Parallel()

	letters := []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z}
	for _, a := range letters {
		for _, b := range letters {
			opA := pauli.FromLetters(pauli.PhasePlus, a)
			opB := pauli.FromLetters(pauli.PhasePlus, b)
			got, err := pauli.Product(&opA, &opB)
			require.NoError(t, err)

			want := letterMatrix[a].mul(letterMatrix[b])
			have := letterMatrix[got.At(0)].scale(phaseFactor[got.Phase()])
			require.Equalf(t, want, have, "%v·%v gave %v", a, b, got.String())
			require.Equal(t, a^b, got.At(0), "letter of the product is the XOR of codes")
		}
	}
}

func TestProductPhase_MultiQubitAccumulates(t *testing.T) {
	t.Parallel()

	// (XX)(YY) = (XY)(XY) = (iZ)(iZ) = -ZZ
	a := pauli.MustParse("XX")
	b := pauli.MustParse("YY")
	p, err := pauli.Product(&a, &b)
	require.NoError(t, err)
	require.Equal(t, "-ZZ", p.String())

	// (-iXZ)(+iZX) = (-i)(i)(XZ)(ZX) = (XZ)(ZX) = (-iY)(iY) = YY
	c := pauli.MustParse("-iXZ")
	d := pauli.MustParse("+iZX")
	q, err := pauli.Product(&c, &d)
	require.NoError(t, err)
	require.Equal(t, "+YY", q.String())
}

func TestProductPhase_WideOperators(t *testing.T) {
	t.Parallel()

	// 70 qubits span two words; X on every qubit times Z on every qubit
	// gives (-iY)^⊗70 = (-i)^70 Y^⊗70 = (-1)^35 Y^⊗70.
	const n = 70
	xs := make([]pauli.Pauli, n)
	zs := make([]pauli.Pauli, n)
	for q := range xs {
		xs[q] = pauli.X
		zs[q] = pauli.Z
	}
	a := pauli.FromLetters(pauli.PhasePlus, xs...)
	b := pauli.FromLetters(pauli.PhasePlus, zs...)
	p, err := pauli.Product(&a, &b)
	require.NoError(t, err)
	require.Equal(t, pauli.PhaseMinus, p.Phase())
	require.Equal(t, n, p.Weight())
	for q := 0; q < n; q++ {
		require.Equal(t, pauli.Y, p.At(q))
	}
}

func TestCommutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"XX", "ZZ", true},
		{"XI", "ZI", false},
		{"XYZ", "ZYX", true},
		{"Y_", "X_", false},
		{"___", "XYZ", true},
	}
	for _, tc := range tests {
		a, b := pauli.MustParse(tc.a), pauli.MustParse(tc.b)
		require.Equalf(t, tc.want, pauli.Commutes(&a, &b), "%s vs %s", tc.a, tc.b)
		require.Equal(t, pauli.Commutes(&a, &b), pauli.Commutes(&b, &a))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"XYZ", "+XYZ", false},
		{"-IX", "-_X", false},
		{"+iZ_", "+iZ_", false},
		{"-iY", "-iY", false},
		{"iX", "+iX", false},
		{"  ZZ_ ", "+ZZ_", false},
		{"", "", true},
		{"-", "", true},
		{"XQ", "", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			op, err := pauli.Parse(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, pauli.ErrParse)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, op.String())
		})
	}
}

func TestSupportAndIdentity(t *testing.T) {
	t.Parallel()

	op := pauli.MustParse("__X_Z_")
	first, last := op.Support()
	require.Equal(t, 2, first)
	require.Equal(t, 4, last)
	require.False(t, op.IsIdentity())
	require.Equal(t, 2, op.Weight())

	id := pauli.MustParse("-____")
	first, last = id.Support()
	require.Equal(t, -1, first)
	require.Equal(t, -1, last)
	require.True(t, id.IsIdentity())

	require.ErrorIs(t, op.Set(6, pauli.X), pauli.ErrOutOfRange)
	require.NoError(t, op.Set(0, pauli.Y))
	first, _ = op.Support()
	require.Equal(t, 0, first)
}

func TestMulLeftWithoutPhases(t *testing.T) {
	t.Parallel()

	o := pauli.MustParse("-ZZ")
	l := pauli.MustParse("XX")
	o.MulLeft(&l, false)
	require.Equal(t, "-YY", o.String(), "phase must be untouched when tracking is off")

	o = pauli.MustParse("ZZ")
	o.MulLeft(&l, true)
	// (XX)(ZZ) = (XZ)(XZ) = (-iY)(-iY) = -YY
	require.Equal(t, "-YY", o.String())
}

func TestProductLengthMismatch(t *testing.T) {
	t.Parallel()

	a, b := pauli.MustParse("X"), pauli.MustParse("XX")
	_, err := pauli.Product(&a, &b)
	require.ErrorIs(t, err, pauli.ErrLengthMismatch)
}
