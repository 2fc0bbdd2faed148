package readers

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/internal/logging"
)

// Extension and column names shared by the JWST spectral products.
const (
	ExtensionExtract1D = "EXTRACT1D"
	ExtensionIntTimes  = "INT_TIMES"

	ColumnWavelength = "WAVELENGTH"
	ColumnFlux       = "FLUX"
	ColumnFluxError  = "FLUX_ERROR"
)

// spectrum is one EXTRACT1D table: a single integration of one order.
type spectrum struct {
	hdu         int
	wavelength  []float64
	flux        []float64
	uncertainty []float64
}

// extraction holds the spectra of one file and the units of their columns.
type extraction struct {
	spectra  []spectrum
	waveUnit string
	fluxUnit string
}

// readExtract1D reads every EXTRACT1D table of f that belongs to the
// requested spectral order. Tables without SPORDER belong to every order.
// When f has no EXTRACT1D extension the locator's error is returned as is.
func readExtract1D(f *fits.File, order int, logger *slog.Logger) (*extraction, error) {
	exts, err := f.Extensions(ExtensionExtract1D)
	if err != nil {
		return nil, err
	}

	out := &extraction{}
	for _, ext := range exts {
		hdr := ext.Header()
		if hdr.Has("SPORDER") {
			sporder, err := hdr.Int("SPORDER")
			if err != nil {
				return nil, fmt.Errorf("%s HDU %d: %w", f.Path(), ext.Index(), err)
			}
			if sporder != order {
				continue
			}
		}

		s, err := readSpectrum(ext)
		if err != nil {
			return nil, fmt.Errorf("%s HDU %d: %w", f.Path(), ext.Index(), err)
		}
		if len(out.spectra) == 0 {
			out.waveUnit = ext.ColumnUnit(ColumnWavelength)
			out.fluxUnit = ext.ColumnUnit(ColumnFlux)
		}
		out.spectra = append(out.spectra, s)

		logger.Debug("located spectrum", logging.Args(
			logging.Path(f.Path()),
			logging.Int(logging.FieldHDU, ext.Index()),
			logging.Int("extver", ext.Version()),
			logging.Int("nwave", len(s.wavelength)),
		)...)
	}

	if len(out.spectra) == 0 {
		return nil, fmt.Errorf("%w: order %d in %s", ErrNoSpectra, order, f.Path())
	}
	return out, nil
}

func readSpectrum(ext *fits.Extension) (spectrum, error) {
	names := []string{ColumnWavelength, ColumnFlux}
	hasErr := ext.HasColumn(ColumnFluxError)
	if hasErr {
		names = append(names, ColumnFluxError)
	}

	cols, err := ext.Float64Columns(names...)
	if err != nil {
		return spectrum{}, err
	}

	s := spectrum{
		hdu:        ext.Index(),
		wavelength: cols[ColumnWavelength],
		flux:       cols[ColumnFlux],
	}
	if hasErr {
		s.uncertainty = cols[ColumnFluxError]
	} else {
		s.uncertainty = make([]float64, len(s.flux))
		for i := range s.uncertainty {
			s.uncertainty[i] = math.NaN()
		}
	}
	return s, nil
}
