package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-rainbow/rainbow"
	"github.com/robert-malhotra/go-rainbow/readers"
)

func newReadCommand(ctx *commandContext) *cobra.Command {
	var format string
	var order int
	var strict bool

	cmd := &cobra.Command{
		Use:   "read <path|glob>",
		Short: "Read spectra into a Rainbow and summarise it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = cfg.Reader.Format
			}
			if !cmd.Flags().Changed("order") {
				order = cfg.Reader.Order
			}
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Reader.Strict
			}

			opts := []readers.Option{
				readers.WithLogger(logger),
				readers.WithOrder(order),
			}
			if format != "" && format != "auto" {
				opts = append(opts, readers.WithFormat(readers.Format(format)))
			}
			if strict {
				opts = append(opts, readers.WithStrictFormat())
			}

			r, err := readers.Read(rainbow.New(), args[0], opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			nwave, ntime := r.Shape()
			wlo, whi := r.WavelengthRange()
			tlo, thi := r.TimeRange()
			fmt.Fprintf(out, "Shape: %d wavelengths x %d times\n", nwave, ntime)
			fmt.Fprintf(out, "Wavelength: %s .. %s %v\n", formatFloat(wlo), formatFloat(whi), r.Metadata["wave_unit"])
			fmt.Fprintf(out, "Time: %s .. %s %v\n", formatFloat(tlo), formatFloat(thi), r.Metadata["time_unit"])

			keys := make([]string, 0, len(r.Metadata))
			for k := range r.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, fmt.Sprint(r.Metadata[k])})
			}
			fmt.Fprintln(out, renderTable(
				tableStyle(cfg.Output.Style, out),
				[]string{"Key", "Value"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Product format (auto, atoca, x1dints)")
	cmd.Flags().IntVar(&order, "order", readers.DefaultOrder, "Spectral order to read")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the header does not match the format")
	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
