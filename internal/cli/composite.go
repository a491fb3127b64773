package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pattern-gateway/composite"
	"pattern-gateway/internal/logger"
)

func compositeCmd() *cobra.Command {
	var file string
	var unit string

	c := &cobra.Command{
		Use:   "composite",
		Short: "Print a shipment tree and its total weight",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var root composite.Component = composite.Shipment()
			if file != "" {
				loaded, err := composite.LoadFile(file)
				if err != nil {
					return err
				}
				root = loaded
			}
			logger.L().Debug("composite.loaded", "root", root.Name(), "file", file, "leaves", composite.Leaves(root))

			out := cmd.OutOrStdout()
			if err := printTree(out, root, unit); err != nil {
				return err
			}
			fmt.Fprintf(out, "Total Weight of Shipment: %s %s\n", formatValue(root.Value()), unit)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "YAML tree file (optional; defaults to the built-in shipment)")
	c.Flags().StringVar(&unit, "unit", "kg", "unit printed after values")
	return c
}

func printTree(w io.Writer, root composite.Component, unit string) error {
	return composite.Walk(root, func(c composite.Component, depth int) error {
		indent := strings.Repeat("  ", depth)
		if _, ok := c.(*composite.Container); ok {
			_, err := fmt.Fprintf(w, "%s%s/ (%s %s)\n", indent, c.Name(), formatValue(c.Value()), unit)
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s: %s %s\n", indent, c.Name(), formatValue(c.Value()), unit)
		return err
	})
}

// formatValue mostra ao menos uma casa decimal (7 vira "7.0") sem perder
// precisão (3.25 continua "3.25").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
