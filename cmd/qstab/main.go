// SPDX-License-Identifier: MIT

// Command qstab canonicalizes stabilizer tableaux and reports their
// entanglement structure.
//
// Usage:
//
//	qstab canon   FILE            clipped-gauge generators
//	qstab bigram  FILE            (left,right) endpoints per row
//	qstab entropy FILE --sub 0:3  entanglement entropy of a subsystem
//	qstab mi      FILE --a 0:1 --b 1:3
//	qstab profile FILE            S([0,x)) for every cut x
//	qstab graph   FILE            graph form and local-Clifford record
//	qstab gen     path 5          generators of a graph state
//
// FILE holds one Pauli string per line ('#' comments allowed); "-" reads stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qstab:", err)
		os.Exit(1)
	}
}
