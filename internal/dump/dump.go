// Package dump formats a CPU's register file for human inspection.
package dump

import (
	"fmt"
	"io"

	"github.com/sarchlab/arm7pipe/cpu"
)

// labels lists, in print order, each register index paired with its
// dump label. Indices 13 and 14 are skipped.
var labels = []struct {
	index uint8
	label string
}{
	{0, "$0"}, {1, "$1"}, {2, "$2"}, {3, "$3"}, {4, "$4"},
	{5, "$5"}, {6, "$6"}, {7, "$7"}, {8, "$8"}, {9, "$9"},
	{10, "$10"}, {11, "$11"}, {12, "$12"},
	{cpu.PCIndex, "$PC"},
	{cpu.CPSRIndex, "$CPSR"},
}

// Write prints one line per register in r to w, in the format
// "<label> (0x<8-hex>)".
func Write(w io.Writer, r *cpu.RegisterFile) error {
	for _, l := range labels {
		if _, err := fmt.Fprintf(w, "%s (0x%08X)\n", l.label, r.Reg(l.index)); err != nil {
			return err
		}
	}
	return nil
}
