// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qstab/entropy"
	"github.com/katalvlaran/qstab/internal/config"
)

// Results carry yaml and json tags; text rendering is per type.
type (
	tableauResult struct {
		Qubits int      `yaml:"qubits" json:"qubits"`
		Rows   []string `yaml:"rows" json:"rows"`
	}
	pairResult struct {
		Left  int `yaml:"left" json:"left"`
		Right int `yaml:"right" json:"right"`
	}
	bigramResult struct {
		Pairs   []pairResult `yaml:"pairs" json:"pairs"`
		Clipped bool         `yaml:"clipped" json:"clipped"`
	}
	entropyResult struct {
		Algorithm string            `yaml:"algorithm" json:"algorithm"`
		Subsystem entropy.Subsystem `yaml:"subsystem" json:"subsystem"`
		Entropy   int               `yaml:"entropy" json:"entropy"`
	}
	miResult struct {
		Algorithm         string            `yaml:"algorithm" json:"algorithm"`
		A                 entropy.Subsystem `yaml:"a" json:"a"`
		B                 entropy.Subsystem `yaml:"b" json:"b"`
		MutualInformation int               `yaml:"mutual_information" json:"mutual_information"`
	}
	profileResult struct {
		Profile []int `yaml:"profile" json:"profile"`
	}
	graphResult struct {
		Adjacency  []string `yaml:"adjacency" json:"adjacency"`
		Hadamard   []int    `yaml:"hadamard" json:"hadamard"`
		Phase      []int    `yaml:"phase" json:"phase"`
		Signs      []int    `yaml:"minus_signs" json:"minus_signs"`
		Components [][]int  `yaml:"components" json:"components"`
	}
)

// render writes v in the configured format to the command's stdout.
func (a *app) render(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	switch strings.ToLower(a.cfg.Format) {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return renderText(w, v)
	}
}

// textStyles are bound to the destination so colour is only emitted on terminals.
type textStyles struct {
	label, value, muted lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)

	return textStyles{
		label: r.NewStyle().Bold(true),
		value: r.NewStyle().Foreground(lipgloss.Color("6")),
		muted: r.NewStyle().Faint(true),
	}
}

func renderText(w io.Writer, v any) error {
	st := newTextStyles(w)
	var out string
	switch res := v.(type) {
	case tableauResult:
		// plain lines so the output can be fed back as input
		out = strings.Join(res.Rows, "\n")
	case bigramResult:
		lines := make([]string, 0, len(res.Pairs)+1)
		for i, p := range res.Pairs {
			lines = append(lines, fmt.Sprintf("%s %s", st.muted.Render(fmt.Sprintf("%3d", i)), st.value.Render(fmt.Sprintf("(%d,%d)", p.Left, p.Right))))
		}
		lines = append(lines, st.label.Render("clipped: ")+st.value.Render(strconv.FormatBool(res.Clipped)))
		out = strings.Join(lines, "\n")
	case entropyResult:
		out = fmt.Sprintf("%s %s %s",
			st.label.Render(fmt.Sprintf("S(%s) =", subsystemString(res.Subsystem))),
			st.value.Render(strconv.Itoa(res.Entropy)),
			st.muted.Render("["+res.Algorithm+"]"))
	case miResult:
		out = fmt.Sprintf("%s %s %s",
			st.label.Render(fmt.Sprintf("I(%s : %s) =", subsystemString(res.A), subsystemString(res.B))),
			st.value.Render(strconv.Itoa(res.MutualInformation)),
			st.muted.Render("["+res.Algorithm+"]"))
	case profileResult:
		cells := make([]string, len(res.Profile))
		for i, s := range res.Profile {
			cells[i] = strconv.Itoa(s)
		}
		out = st.label.Render("profile: ") + st.value.Render(strings.Join(cells, " "))
	case graphResult:
		adj := lipgloss.JoinVertical(lipgloss.Left,
			append([]string{st.label.Render("adjacency")}, res.Adjacency...)...)
		info := lipgloss.JoinVertical(lipgloss.Left,
			st.label.Render("local Cliffords"),
			"H  "+st.value.Render(intsString(res.Hadamard)),
			"S† "+st.value.Render(intsString(res.Phase)),
			"Z  "+st.value.Render(intsString(res.Signs)),
			st.label.Render("components"),
			st.value.Render(componentsString(res.Components)),
		)
		out = lipgloss.JoinHorizontal(lipgloss.Top, adj, "    ", info)
	default:
		return fmt.Errorf("render: unsupported result %T", v)
	}
	_, err := fmt.Fprintln(w, out)

	return err
}

func intsString(s []int) string {
	parts := make([]string, len(s))
	for i, q := range s {
		parts[i] = strconv.Itoa(q)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func componentsString(comps [][]int) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = intsString(c)
	}

	return strings.Join(parts, " ")
}
