package main

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/readers"
)

type synthOptions struct {
	format       readers.Format
	nwave        int
	ntime        int
	noExtract1D  bool
	transitDepth float64
}

func newSynthCommand(ctx *commandContext) *cobra.Command {
	var format string
	opts := synthOptions{transitDepth: 0.01}

	cmd := &cobra.Command{
		Use:   "synth <out.fits>",
		Short: "Write a synthetic atoca or x1dints product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			opts.format = readers.Format(format)
			if err := writeSynthetic(args[0], opts); err != nil {
				return err
			}
			logger.Debug("wrote synthetic product", "path", args[0], "format", format)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s product to %s\n", format, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(readers.FormatX1DInts), "Product format (atoca, x1dints)")
	cmd.Flags().IntVar(&opts.nwave, "nwave", 50, "Number of wavelengths")
	cmd.Flags().IntVar(&opts.ntime, "ntime", 10, "Number of integrations")
	cmd.Flags().BoolVar(&opts.noExtract1D, "no-extract1d", false, "Write only the primary header")
	return cmd
}

// writeSynthetic writes a product with one EXTRACT1D table per integration
// and a box-shaped transit over the middle third of the integrations.
func writeSynthetic(path string, opts synthOptions) error {
	if opts.format != readers.FormatAtoca && opts.format != readers.FormatX1DInts {
		return fmt.Errorf("%w: %q", readers.ErrUnknownFormat, opts.format)
	}
	if opts.nwave < 1 || opts.ntime < 1 {
		return errors.New("nwave and ntime must be positive")
	}

	w, err := fits.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WritePrimary(synthPrimary(path, opts)...); err != nil {
		return err
	}
	if opts.noExtract1D {
		return w.Close()
	}

	wave := []float64{0.6}
	if opts.nwave > 1 {
		wave = floats.Span(make([]float64, opts.nwave), 0.6, 2.8)
	}
	unc := make([]float64, opts.nwave)
	for i := range unc {
		unc[i] = 1e-3
	}
	for j := 0; j < opts.ntime; j++ {
		flux := make([]float64, opts.nwave)
		depth := 0.0
		if 3*j >= opts.ntime && 3*j < 2*opts.ntime {
			depth = opts.transitDepth
		}
		for i, wl := range wave {
			// Slightly deeper at short wavelengths
			flux[i] = 1 - depth*(1+0.1*math.Cos(wl))
		}
		cols := []fits.Column{
			{Name: readers.ColumnWavelength, Unit: "um", Values: wave},
			{Name: readers.ColumnFlux, Unit: "Jy", Values: flux},
			{Name: readers.ColumnFluxError, Unit: "Jy", Values: unc},
		}
		err := w.WriteTable(readers.ExtensionExtract1D, cols,
			fits.WithVersion(j+1),
			fits.WithCards(
				fits.Card{Name: "SPORDER", Value: 1, Comment: "spectral order"},
				fits.Card{Name: "INT_NUM", Value: j + 1, Comment: "integration number"},
			),
		)
		if err != nil {
			return err
		}
	}

	if opts.format == readers.FormatX1DInts {
		numbers := make([]float64, opts.ntime)
		mids := make([]float64, opts.ntime)
		for j := range mids {
			numbers[j] = float64(j + 1)
			mids[j] = 59761 + (float64(j)+0.5)*10/86400
		}
		err := w.WriteTable(readers.ExtensionIntTimes, []fits.Column{
			{Name: "integration_number", Values: numbers},
			{Name: "int_mid_BJD_TDB", Unit: "d", Values: mids},
		})
		if err != nil {
			return err
		}
	}

	return w.Close()
}

func synthPrimary(path string, opts synthOptions) []fits.Card {
	cards := []fits.Card{
		{Name: "TELESCOP", Value: "JWST"},
		{Name: "INSTRUME", Value: "NIRISS"},
		{Name: "EXP_TYPE", Value: "NIS_SOSS"},
		{Name: "DATE-OBS", Value: "2022-07-01", Comment: "UTC date at start of exposure"},
		{Name: "TIME-OBS", Value: "00:00:00.000", Comment: "UTC time at start of exposure"},
		{Name: "TFRAME", Value: 2.0, Comment: "[s] time between frames"},
		{Name: "NFRAMES", Value: 1},
		{Name: "NGROUPS", Value: 4},
		{Name: "NINTS", Value: opts.ntime},
	}
	if opts.format == readers.FormatX1DInts {
		cards = append(cards,
			fits.Card{Name: "FILENAME", Value: filepath.Base(path)},
			fits.Card{Name: "INTSTART", Value: 1},
			fits.Card{Name: "INTEND", Value: opts.ntime},
		)
	}
	return cards
}
