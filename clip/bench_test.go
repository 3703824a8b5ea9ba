// SPDX-License-Identifier: MIT
package clip_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qstab/clip"
	"github.com/katalvlaran/qstab/internal/fixture"
)

// BenchmarkCanonicalize measures both sweeps on a scrambled 128-qubit state.
// Complexity: O(n²·r/64) per call.
func BenchmarkCanonicalize(b *testing.B) {
	const n = 128
	src := fixture.Random(rand.New(rand.NewSource(42)), n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tab := src.Clone()
		b.StartTimer()
		if _, err := clip.Canonicalize(tab); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBigramClipped measures endpoint extraction alone.
func BenchmarkBigramClipped(b *testing.B) {
	const n = 128
	tab := fixture.Random(rand.New(rand.NewSource(7)), n)
	if _, err := clip.Canonicalize(tab); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clip.Bigram(tab, clip.WithClip(false)); err != nil {
			b.Fatal(err)
		}
	}
}
