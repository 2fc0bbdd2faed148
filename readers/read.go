package readers

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/internal/logging"
	"github.com/robert-malhotra/go-rainbow/rainbow"
)

// Time units recorded in the "time_unit" metadata entry.
const (
	TimeUnitMJD         = "MJD_UTC"
	TimeUnitBJD         = "BJD_TDB"
	TimeUnitIntegration = "integration"
)

// timeFunc returns one time per spectrum of a file and the unit of those
// times.
type timeFunc func(f *fits.File, n int, o *options) ([]float64, string, error)

// fileResult is everything read from one input file.
type fileResult struct {
	path     string
	ext      *extraction
	times    []float64
	timeUnit string
	header   map[string]interface{}
}

// Primary header keywords copied into the Rainbow metadata.
var metadataKeys = []string{
	"TELESCOP", "INSTRUME", "DETECTOR", "FILTER", "PUPIL", "GRATING",
	"SUBARRAY", "EXP_TYPE", "TARGNAME", "PROGRAM", "DATE-OBS", "TIME-OBS",
	"NINTS", "NGROUPS", "NFRAMES", "TFRAME",
}

// read runs the reader pipeline for format. All files are decoded before
// the Rainbow is touched, so a failure at any step leaves r unchanged.
func read(r *rainbow.Rainbow, path string, format Format, opts []Option) (*rainbow.Rainbow, error) {
	if r == nil {
		r = rainbow.New()
	}
	o := applyOptions(opts)

	spec, ok := lookupSpec(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	paths, err := expandPaths(path)
	if err != nil {
		return nil, err
	}

	results := make([]*fileResult, 0, len(paths))
	for _, p := range paths {
		res, err := readFile(p, format, spec, o)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	payload, err := assemble(results, format, o)
	if err != nil {
		return nil, err
	}
	if err := r.Populate(payload); err != nil {
		return nil, err
	}
	dropStaleMetadata(r, payload.Metadata)

	nwave, ntime := r.Shape()
	o.logger.Info("read complete", logging.Args(
		logging.String(logging.FieldFormat, string(format)),
		logging.Int("files", len(paths)),
		logging.Int("nwave", nwave),
		logging.Int("ntime", ntime),
	)...)
	return r, nil
}

// readerKeys lists every metadata entry a read may set.
func readerKeys() []string {
	keys := []string{"format", "spectral_order", "nfiles", "time_unit", "wave_unit", "flux_unit"}
	for _, key := range metadataKeys {
		keys = append(keys, metadataKey(key))
	}
	return keys
}

// dropStaleMetadata removes reader entries left in r by an earlier read
// that the latest read did not set. Other entries are kept.
func dropStaleMetadata(r *rainbow.Rainbow, latest map[string]any) {
	for _, key := range readerKeys() {
		if _, ok := latest[key]; !ok {
			delete(r.Metadata, key)
		}
	}
}

func metadataKey(keyword string) string {
	return strings.ToLower(strings.ReplaceAll(keyword, "-", "_"))
}

// readFile opens path, checks its header against format and extracts its
// spectra and times. The file is closed on every path.
func readFile(path string, format Format, spec formatSpec, o *options) (*fileResult, error) {
	f, err := fits.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := f.PrimaryHeader()
	if reason := spec.check(path, hdr); reason != "" {
		mismatch := &FormatMismatchError{Format: format, Path: path, Reason: reason}
		if o.strict {
			return nil, mismatch
		}
		o.logger.Warn("header does not match format", logging.Args(
			logging.Path(path),
			logging.String(logging.FieldFormat, string(format)),
			logging.String("reason", reason),
		)...)
	}

	ext, err := readExtract1D(f, o.order, o.logger)
	if err != nil {
		return nil, err
	}

	times, unit, err := spec.times(f, len(ext.spectra), o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(times) != len(ext.spectra) {
		return nil, fmt.Errorf("%s: %w: %d times for %d spectra", path, rainbow.ErrShapeMismatch, len(times), len(ext.spectra))
	}

	return &fileResult{
		path:     path,
		ext:      ext,
		times:    times,
		timeUnit: unit,
		header:   hdr.Scalars(),
	}, nil
}

// assemble joins the per-file results into one payload with a shared
// wavelength grid.
func assemble(results []*fileResult, format Format, o *options) (rainbow.Payload, error) {
	first := results[0]
	wavelength := first.ext.spectra[0].wavelength
	nwave := len(wavelength)

	var flux, unc [][]float64
	var times []float64
	for _, res := range results {
		if res.timeUnit != first.timeUnit {
			return rainbow.Payload{}, fmt.Errorf("%s: time unit %s differs from %s in %s", res.path, res.timeUnit, first.timeUnit, first.path)
		}
		for _, s := range res.ext.spectra {
			if len(s.wavelength) != nwave || len(s.flux) != nwave || len(s.uncertainty) != nwave {
				return rainbow.Payload{}, fmt.Errorf("%s HDU %d: %w: %d samples, expected %d", res.path, s.hdu, rainbow.ErrShapeMismatch, len(s.flux), nwave)
			}
			if !floats.Same(s.wavelength, wavelength) {
				return rainbow.Payload{}, fmt.Errorf("%s HDU %d: %w: wavelength grid differs from %s HDU %d", res.path, s.hdu, rainbow.ErrShapeMismatch, first.path, first.ext.spectra[0].hdu)
			}
			flux = append(flux, s.flux)
			unc = append(unc, s.uncertainty)
		}
		times = append(times, res.times...)
	}

	meta := map[string]any{
		"format":         string(format),
		"spectral_order": o.order,
		"nfiles":         len(results),
		"time_unit":      first.timeUnit,
	}
	if first.ext.waveUnit != "" {
		meta["wave_unit"] = first.ext.waveUnit
	}
	if first.ext.fluxUnit != "" {
		meta["flux_unit"] = first.ext.fluxUnit
	}
	for _, key := range metadataKeys {
		if v, ok := first.header[key]; ok {
			meta[metadataKey(key)] = v
		}
	}

	return rainbow.Payload{
		Wavelength:  wavelength,
		Time:        times,
		Flux:        rainbow.Stack(flux),
		Uncertainty: rainbow.Stack(unc),
		Metadata:    meta,
	}, nil
}

// integrationNumbers numbers n spectra from INTSTART (default 1).
func integrationNumbers(hdr *fits.Header, n int) []float64 {
	start := intOr(hdr, "INTSTART", 1)
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(start + k)
	}
	return out
}

func intOr(hdr *fits.Header, key string, def int) int {
	if v, err := hdr.Int(key); err == nil {
		return v
	}
	return def
}
