// SPDX-License-Identifier: MIT
package entropy_test

import (
	"fmt"

	"github.com/katalvlaran/qstab/entropy"
	"github.com/katalvlaran/qstab/tableau"
)

// ExampleEntropy compares the three algorithms on the 3-qubit GHZ state.
// Every non-trivial cut of a GHZ state carries one bit.
func ExampleEntropy() {
	ghz := tableau.MustParse("XXX", "ZZ_", "_ZZ")
	for _, alg := range []entropy.Algorithm{entropy.Clip, entropy.Graph, entropy.RREF} {
		S, err := entropy.Entropy(ghz, entropy.Span(0, 1), alg)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d\n", alg, S)
	}

	// Output:
	// clip: 1
	// graph: 1
	// rref: 1
}

// ExampleMutualInformation: qubit 0 shares two bits with the rest.
func ExampleMutualInformation() {
	ghz := tableau.MustParse("XXX", "ZZ_", "_ZZ")
	I, err := entropy.MutualInformation(ghz, entropy.Span(0, 1), entropy.Span(1, 3), entropy.Clip)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(I)

	// Output:
	// 2
}

// ExampleProfile prints the entropy of every left block of a GHZ chain.
func ExampleProfile() {
	prof, _ := entropy.Profile(tableau.MustParse("XXXX", "ZZ__", "_ZZ_", "__ZZ"))
	fmt.Println(prof)

	// Output:
	// [0 1 1 1 0]
}
