// SPDX-License-Identifier: MIT
package graphstate_test

import (
	"fmt"

	"github.com/katalvlaran/qstab/graphstate"
	"github.com/katalvlaran/qstab/tableau"
)

// ExampleFromGraph prints the generators of the 4-qubit linear cluster state.
func ExampleFromGraph() {
	adj, _ := graphstate.Build(graphstate.Path(4))
	tab, err := graphstate.FromGraph(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tab)

	// Output:
	// +XZ__
	// +ZXZ_
	// +_ZXZ
	// +__ZX
}

// ExampleToGraph converts the Bell pair {XX, ZZ} into graph form: a single
// edge after a Hadamard on qubit 1.
func ExampleToGraph() {
	st, err := graphstate.ToGraph(tableau.MustParse("XX", "ZZ"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(st.Adjacency)
	fmt.Println("H on", st.Hadamard, "S on", st.Phase, "signs", st.Signs)

	// Output:
	// 01
	// 10
	// H on [1] S on [] signs [false false]
}
