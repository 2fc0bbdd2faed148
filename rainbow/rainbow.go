package rainbow

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-rainbow/internal/convert"
)

// Common errors
var (
	ErrShapeMismatch     = errors.New("array shape mismatch")
	ErrEmptyPayload      = errors.New("empty payload")
	ErrNonScalarMetadata = errors.New("metadata value is not a scalar")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Rainbow is a spectroscopic time series. Flux and Uncertainty have one
// row per wavelength and one column per time.
type Rainbow struct {
	Wavelength  []float64
	Time        []float64
	Flux        *mat.Dense
	Uncertainty *mat.Dense
	Metadata    map[string]any
}

// Payload carries the arrays a reader extracted from a file.
// A nil Uncertainty is stored as NaN.
type Payload struct {
	Wavelength  []float64
	Time        []float64
	Flux        *mat.Dense
	Uncertainty *mat.Dense
	Metadata    map[string]any
}

// New returns an empty Rainbow.
func New() *Rainbow {
	return &Rainbow{
		Metadata: make(map[string]any),
	}
}

// IsEmpty reports whether no data has been populated.
func (r *Rainbow) IsEmpty() bool {
	return r.Flux == nil && len(r.Wavelength) == 0 && len(r.Time) == 0
}

// Shape returns the number of wavelengths and times.
func (r *Rainbow) Shape() (nwave, ntime int) {
	return len(r.Wavelength), len(r.Time)
}

// Populate replaces the arrays of r with copies of those in p and merges
// p.Metadata into r.Metadata. Existing keys absent from p.Metadata are
// kept; callers that own a set of keys must remove stale ones themselves.
// Nothing is written unless the payload is valid as a whole.
func (r *Rainbow) Populate(p Payload) error {
	meta, err := validate(p)
	if err != nil {
		return err
	}

	nwave, ntime := len(p.Wavelength), len(p.Time)
	unc := mat.NewDense(nwave, ntime, nil)
	if p.Uncertainty != nil {
		unc.Copy(p.Uncertainty)
	} else {
		fill(unc, math.NaN())
	}

	r.Wavelength = append([]float64(nil), p.Wavelength...)
	r.Time = append([]float64(nil), p.Time...)
	r.Flux = mat.DenseCopyOf(p.Flux)
	r.Uncertainty = unc
	if r.Metadata == nil {
		r.Metadata = make(map[string]any, len(meta))
	}
	for k, v := range meta {
		r.Metadata[k] = v
	}
	return nil
}

// validate checks p and returns its metadata normalised to scalar types.
func validate(p Payload) (map[string]any, error) {
	nwave, ntime := len(p.Wavelength), len(p.Time)
	if nwave == 0 || ntime == 0 || p.Flux == nil {
		return nil, fmt.Errorf("%w: %d wavelengths, %d times", ErrEmptyPayload, nwave, ntime)
	}
	if rows, cols := p.Flux.Dims(); rows != nwave || cols != ntime {
		return nil, fmt.Errorf("%w: flux is %dx%d, expected %dx%d", ErrShapeMismatch, rows, cols, nwave, ntime)
	}
	if p.Uncertainty != nil {
		if rows, cols := p.Uncertainty.Dims(); rows != nwave || cols != ntime {
			return nil, fmt.Errorf("%w: uncertainty is %dx%d, expected %dx%d", ErrShapeMismatch, rows, cols, nwave, ntime)
		}
	}

	meta := make(map[string]any, len(p.Metadata))
	for k, v := range p.Metadata {
		s, ok := convert.Scalar(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s (%T)", ErrNonScalarMetadata, k, v)
		}
		meta[k] = s
	}
	return meta, nil
}

// Clone returns a deep copy of r.
func (r *Rainbow) Clone() *Rainbow {
	c := &Rainbow{
		Wavelength: append([]float64(nil), r.Wavelength...),
		Time:       append([]float64(nil), r.Time...),
		Metadata:   make(map[string]any, len(r.Metadata)),
	}
	if r.Flux != nil {
		c.Flux = mat.DenseCopyOf(r.Flux)
	}
	if r.Uncertainty != nil {
		c.Uncertainty = mat.DenseCopyOf(r.Uncertainty)
	}
	for k, v := range r.Metadata {
		c.Metadata[k] = v
	}
	return c
}

// Equal reports whether r and other hold the same data. NaN values compare
// equal to each other.
func (r *Rainbow) Equal(other *Rainbow) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !sameSlice(r.Wavelength, other.Wavelength) || !sameSlice(r.Time, other.Time) {
		return false
	}
	if !sameDense(r.Flux, other.Flux) || !sameDense(r.Uncertainty, other.Uncertainty) {
		return false
	}
	if len(r.Metadata) != len(other.Metadata) {
		return false
	}
	return len(r.Metadata) == 0 || reflect.DeepEqual(r.Metadata, other.Metadata)
}

// Spectrum returns the flux at time index t across all wavelengths.
func (r *Rainbow) Spectrum(t int) ([]float64, error) {
	if r.Flux == nil || t < 0 || t >= len(r.Time) {
		return nil, fmt.Errorf("%w: time %d of %d", ErrIndexOutOfRange, t, len(r.Time))
	}
	return mat.Col(nil, t, r.Flux), nil
}

// LightCurve returns the flux at wavelength index w across all times.
func (r *Rainbow) LightCurve(w int) ([]float64, error) {
	if r.Flux == nil || w < 0 || w >= len(r.Wavelength) {
		return nil, fmt.Errorf("%w: wavelength %d of %d", ErrIndexOutOfRange, w, len(r.Wavelength))
	}
	return mat.Row(nil, w, r.Flux), nil
}

func sameSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || floats.Same(a, b)
}

func sameDense(a, b *mat.Dense) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		if !floats.Same(a.RawRowView(i), b.RawRowView(i)) {
			return false
		}
	}
	return true
}

func fill(m *mat.Dense, v float64) {
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = v
		}
	}
}
