package cli

import (
	"fmt"
	"io"

	chem "github.com/rmera/vsepr"
	"github.com/rmera/vsepr/chemgraph"
	"github.com/rmera/vsepr/place"
	v3 "github.com/rmera/vsepr/v3"
	"github.com/spf13/cobra"
)

func (c *CLI) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build SCRIPT.toml",
		Short: "Replay a placement script and print the resulting molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loggerFromContext(cmd.Context())
			t, err := c.loadTable(l)
			if err != nil {
				return err
			}
			s, err := ReadScriptFile(args[0])
			if err != nil {
				return err
			}
			mol := chem.NewStructure(t)
			opts := []place.Option{place.WithLogger(l)}
			if e := c.v.GetString(keyElement); e != "" {
				opts = append(opts, place.WithElement(e))
			}
			s.Run(place.NewBuilder(mol, opts...), l)
			l.Info("built molecule", "steps", len(s.Steps), "atoms", mol.Len(), "bonds", len(mol.Bonds()))
			printStructure(cmd.OutOrStdout(), mol)
			return nil
		},
	}
	cmd.Flags().String(keyElement, "", "element selected before the first step (default: the first in the table)")
	c.bound(keyElement, c.v.BindPFlag(keyElement, cmd.Flags().Lookup(keyElement)))
	return cmd
}

// printStructure writes the atoms, bonds and fragments of mol.
func printStructure(w io.Writer, mol *chem.MolecularStructure) {
	printTitle(w, "Atoms (%d)", mol.Len())
	printHeader(w, "  idx el          x          y          z  empty")
	for _, a := range mol.Atoms() {
		fmt.Fprintf(w, "%5d %-2s %10.4f %10.4f %10.4f %6d\n", a.Index, a.Symbol, a.Pos.X, a.Pos.Y, a.Pos.Z, a.EmptyBonds())
	}
	bonds := mol.Bonds()
	printTitle(w, "Bonds (%d)", len(bonds))
	printHeader(w, "  idx  atoms     order  length")
	for _, b := range bonds {
		ends := b.At1.String() + "-" + b.At2.String()
		fmt.Fprintf(w, "%5d  %-9s %5d  %6.4f\n", b.Index, ends, b.Order, v3.Distance(b.At1.Pos, b.At2.Pos))
	}
	if mol.Len() > 0 {
		c := mol.Coords().Centroid()
		fmt.Fprintf(w, "centroid %10.4f %10.4f %10.4f\n", c.X, c.Y, c.Z)
	}
	frags := chemgraph.FromStructure(mol).Fragments()
	printTitle(w, "Fragments (%d)", len(frags))
	for i, f := range frags {
		fmt.Fprintf(w, "%5d ", i)
		for _, a := range f {
			fmt.Fprintf(w, " %s", a)
		}
		fmt.Fprintln(w)
	}
}
