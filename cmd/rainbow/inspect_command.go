package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-rainbow/fits"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the header/data units of a FITS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			f, err := fits.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			sums, err := fits.Summarize(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			size := humanize.IBytes(uint64(f.Size()))
			if codec := f.Codec(); codec != "" {
				size += " (" + codec + ")"
			}
			fmt.Fprintf(out, "%s: %d HDUs, %s\n", f.Path(), len(sums), size)

			rows := make([][]string, 0, len(sums))
			for _, s := range sums {
				rows = append(rows, []string{
					strconv.Itoa(s.Index),
					s.Name,
					strconv.Itoa(s.Version),
					s.Kind.String(),
					dataShape(s),
					strings.Join(s.Columns, " "),
				})
			}
			fmt.Fprintln(out, renderTable(
				tableStyle(cfg.Output.Style, out),
				[]string{"#", "Name", "Ver", "Type", "Shape", "Columns"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

// dataShape renders table rows or image axes for listing.
func dataShape(s fits.Summary) string {
	if s.Kind == fits.KindBinaryTable || s.Kind == fits.KindASCIITable {
		return humanize.Comma(s.Rows) + " rows"
	}
	if len(s.Axes) == 0 {
		return "-"
	}
	parts := make([]string, len(s.Axes))
	for i, n := range s.Axes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "x")
}
