// Package qstab is a toolkit for stabilizer states: bring a set of
// generators into the clipped gauge, read off its bigram, and compute
// entanglement entropy and mutual information of qubit subsystems.
//
// 🚀 What is qstab?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Pauli strings: packed X/Z bit planes with phase tracking
//		• Tableaux: generator sets with Swap/Merge row operations
//		• Clipped gauge: two-sweep canonicalization and the (left,right) bigram
//		• Graph states: local-Clifford reduction to an adjacency matrix
//		• Entropy: three algorithms (clip, graph, rref) that agree on pure states
//		• Mutual information and left-block entropy profiles
//
// Under the hood, everything is organized under these subpackages:
//
//	gf2/        dense bit matrices and vectors over GF(2), rank and elimination
//	pauli/      single-qubit letters, n-qubit Pauli operators, products and phases
//	tableau/    stabilizer generator sets, parsing, validation, partial trace
//	clip/       Canonicalize, Bigram, endpoint balance checks
//	graphstate/ ToGraph/FromGraph, local Cliffords, graph builders, components
//	entropy/    Entropy, EntropyRange, MutualInformation, Profile
//	cmd/qstab/  command-line front end (cobra + viper)
//
// Quick example, the three-qubit GHZ state:
//
//	+XXX      bigram (0,2) (0,1) (1,2)
//	+ZZ_      every qubit is an endpoint twice
//	+_ZZ      S([0,1)) = 1
//
// Qubits are 0-based and ranges are half-open: "0:2" is qubits 0 and 1.
//
//	go install github.com/katalvlaran/qstab/cmd/qstab@latest
package qstab
