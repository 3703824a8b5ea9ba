// SPDX-License-Identifier: MIT
package entropy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qstab/entropy"
	"github.com/katalvlaran/qstab/internal/fixture"
)

// benchAlgorithm measures a half-system cut on a 64-qubit random state.
func benchAlgorithm(b *testing.B, alg entropy.Algorithm) {
	const n = 64
	tab := fixture.Random(rand.New(rand.NewSource(1)), n)
	sub := entropy.Span(0, n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.Entropy(tab, sub, alg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEntropyClip(b *testing.B)  { benchAlgorithm(b, entropy.Clip) }
func BenchmarkEntropyGraph(b *testing.B) { benchAlgorithm(b, entropy.Graph) }
func BenchmarkEntropyRREF(b *testing.B)  { benchAlgorithm(b, entropy.RREF) }
