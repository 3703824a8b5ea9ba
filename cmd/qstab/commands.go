// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qstab/clip"
	"github.com/katalvlaran/qstab/entropy"
	"github.com/katalvlaran/qstab/graphstate"
)

func (a *app) canonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon FILE",
		Short: "Rewrite the generators into the clipped gauge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			if _, err := clip.Canonicalize(t, a.clipOptions()...); err != nil {
				return err
			}

			return a.render(cmd, tableauResult{Qubits: t.N(), Rows: t.Strings()})
		},
	}
}

func (a *app) bigramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bigram FILE",
		Short: "Print the (left,right) support endpoints of every row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			pairs, err := clip.Bigram(t, a.clipOptions()...)
			if err != nil {
				return err
			}
			res := bigramResult{Clipped: clip.IsClipped(pairs, t.N())}
			for _, p := range pairs {
				res.Pairs = append(res.Pairs, pairResult{Left: p.Left, Right: p.Right})
			}

			return a.render(cmd, res)
		},
	}
}

func (a *app) entropyCmd() *cobra.Command {
	var (
		sub  string
		pure bool
	)
	cmd := &cobra.Command{
		Use:   "entropy FILE --sub RANGE|LIST",
		Short: "Entanglement entropy of a subsystem, in bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := entropy.ParseSubsystem(sub)
			if err != nil {
				return err
			}
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			alg := a.cfg.AlgorithmTag()
			S, err := entropy.Entropy(t, A, alg, a.entropyOptions(cmd, pure)...)
			if err != nil {
				return err
			}
			a.log.Info("entropy", "algorithm", alg, "subsystem", subsystemString(A), "S", S)

			return a.render(cmd, entropyResult{Algorithm: alg.String(), Subsystem: A, Entropy: S})
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", `subsystem: half-open range "0:3" or list "0,2,5"`)
	cmd.Flags().BoolVar(&pure, "pure", true, "state is pure (rref only; inferred from the rank when unset)")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}

func (a *app) miCmd() *cobra.Command {
	var (
		subA, subB string
		pure       bool
	)
	cmd := &cobra.Command{
		Use:   "mi FILE --a RANGE|LIST --b RANGE|LIST",
		Short: "Mutual information I(A:B) = S(A) + S(B) - S(A∪B)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := entropy.ParseSubsystem(subA)
			if err != nil {
				return err
			}
			B, err := entropy.ParseSubsystem(subB)
			if err != nil {
				return err
			}
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			alg := a.cfg.AlgorithmTag()
			I, err := entropy.MutualInformation(t, A, B, alg, a.entropyOptions(cmd, pure)...)
			if err != nil {
				return err
			}

			return a.render(cmd, miResult{Algorithm: alg.String(), A: A, B: B, MutualInformation: I})
		},
	}
	cmd.Flags().StringVar(&subA, "a", "", "subsystem A")
	cmd.Flags().StringVar(&subB, "b", "", "subsystem B")
	cmd.Flags().BoolVar(&pure, "pure", true, "state is pure (rref only; inferred from the rank when unset)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// entropyOptions maps configuration and flags onto entropy options. The
// library canonicalizes for the clip algorithm after its subsystem checks.
func (a *app) entropyOptions(cmd *cobra.Command, pure bool) []entropy.Option {
	opts := []entropy.Option{
		entropy.WithPhases(a.cfg.Phases),
		entropy.WithClip(a.cfg.Clip),
		entropy.WithOnMerge(a.logMerge),
	}
	if cmd.Flags().Changed("pure") {
		opts = append(opts, entropy.WithPure(pure))
	}

	return opts
}

func (a *app) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile FILE",
		Short: "Entropy S([0,x)) of every left block, from one clipped gauge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			prof, err := entropy.Profile(t,
				entropy.WithPhases(a.cfg.Phases),
				entropy.WithClip(a.cfg.Clip),
				entropy.WithOnMerge(a.logMerge))
			if err != nil {
				return err
			}

			return a.render(cmd, profileResult{Profile: prof})
		},
	}
}

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph FILE",
		Short: "Convert a pure state to graph form plus local Cliffords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTableau(cmd, args[0])
			if err != nil {
				return err
			}
			st, err := graphstate.ToGraph(t)
			if err != nil {
				return err
			}
			comps, err := graphstate.Components(st.Adjacency)
			if err != nil {
				return err
			}
			res := graphResult{
				Hadamard:   orEmpty(st.Hadamard),
				Phase:      orEmpty(st.Phase),
				Components: comps,
			}
			for i := 0; i < st.Adjacency.Rows(); i++ {
				res.Adjacency = append(res.Adjacency, st.Adjacency.Row(i).String())
				if st.Signs[i] {
					res.Signs = append(res.Signs, i)
				}
			}
			res.Signs = orEmpty(res.Signs)

			return a.render(cmd, res)
		},
	}
}

func (a *app) genCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen FAMILY SIZE...",
		Short: "Print the generators of a graph state: path N, cycle N, star N, complete N, grid R C",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]int, 0, len(args)-1)
			for _, s := range args[1:] {
				k, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("gen: size %q: %w", s, err)
				}
				sizes = append(sizes, k)
			}
			cons, err := family(args[0], sizes)
			if err != nil {
				return err
			}
			adj, err := graphstate.Build(cons)
			if err != nil {
				return err
			}
			t, err := graphstate.FromGraph(adj)
			if err != nil {
				return err
			}

			return a.render(cmd, tableauResult{Qubits: t.N(), Rows: t.Strings()})
		},
	}
}

// family maps a gen FAMILY name and its sizes to a constructor.
func family(name string, sizes []int) (graphstate.Constructor, error) {
	want := 1
	if strings.EqualFold(name, "grid") {
		want = 2
	}
	if len(sizes) != want {
		return nil, fmt.Errorf("gen %s: want %d size argument(s), got %d", name, want, len(sizes))
	}
	switch strings.ToLower(name) {
	case "path":
		return graphstate.Path(sizes[0]), nil
	case "cycle":
		return graphstate.Cycle(sizes[0]), nil
	case "star":
		return graphstate.Star(sizes[0]), nil
	case "complete":
		return graphstate.Complete(sizes[0]), nil
	case "grid":
		return graphstate.Grid(sizes[0], sizes[1]), nil
	}

	return nil, fmt.Errorf("gen: unknown family %q", name)
}

// subsystemString prints a contiguous subsystem as "a:b", otherwise as a list.
func subsystemString(s entropy.Subsystem) string {
	if r, ok := s.AsRange(); ok && len(s) > 0 {
		return r.String()
	}
	parts := make([]string, len(s))
	for i, q := range s {
		parts[i] = strconv.Itoa(q)
	}

	return strings.Join(parts, ",")
}

func orEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
