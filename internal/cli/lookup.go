package cli

import (
	"fmt"
	"strconv"

	chem "github.com/rmera/vsepr"
	"github.com/rmera/vsepr/guide"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

func (c *CLI) guideCommand() *cobra.Command {
	var pose []float64
	var with string
	cmd := &cobra.Command{
		Use:   "guide ELEMENT",
		Short: "Print the guideline directions around a lone atom of ELEMENT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loggerFromContext(cmd.Context())
			t, err := c.loadTable(l)
			if err != nil {
				return err
			}
			var p *r3.Vec
			if len(pose) > 0 {
				if len(pose) != 3 {
					return fmt.Errorf("--pose needs 3 coordinates, got %d", len(pose))
				}
				p = &r3.Vec{X: pose[0], Y: pose[1], Z: pose[2]}
			}
			mol := chem.NewStructure(t)
			core := mol.AddAtom(args[0], r3.Vec{})
			g := guide.Calculate(mol, []*chem.Atom{core}, with, p)[0]
			l.Debug("guidelines", "core", core, "steric", guide.EffectiveSteric(core), "directions", len(g.Directions))
			w := cmd.OutOrStdout()
			printTitle(w, "%s guidelines for %s (%d)", core.Symbol, with, len(g.Directions))
			printHeader(w, "          dx         dy         dz           x          y          z")
			for i, d := range g.Directions {
				q := g.Positions[i]
				fmt.Fprintf(w, "%3d %10.4f %10.4f %10.4f  %10.4f %10.4f %10.4f\n", i, d.X, d.Y, d.Z, q.X, q.Y, q.Z)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&pose, "pose", nil, "point x,y,z that fixes the free rotation (default: above the atom)")
	cmd.Flags().StringVar(&with, "with", "H", "element of the atom to be bonded")
	return cmd
}

func (c *CLI) bondLengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bondlength A B [ORDER]",
		Short: "Print the ideal length of a bond between elements A and B",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTable(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			order := 1
			if len(args) == 3 {
				order, err = strconv.Atoi(args[2])
				if err != nil || order < 1 {
					return fmt.Errorf("invalid bond order %q", args[2])
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s(%d) %.4f A %.4f nm\n", args[0], args[1], order,
				t.BondLength(args[0], args[1], order), t.IdealBondLength(args[0], args[1], order))
			return nil
		},
	}
}

func (c *CLI) elementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the elements available, in selection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTable(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			symbols := t.Symbols()
			printTitle(w, "Elements (%d)", len(symbols))
			printHeader(w, "el  name          valence  steric  radius  color")
			for _, s := range symbols {
				e := t.Spec(s)
				fmt.Fprintf(w, "%-3s %-13s %7d %7d %7.3f  #%06x\n", e.Symbol, e.Name, e.Valence, e.Steric, e.VdwRadius, e.Color)
			}
			return nil
		},
	}
}
