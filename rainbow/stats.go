package rainbow

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MedianSpectrum returns, for every wavelength, the median flux over time.
// NaN samples are ignored; a wavelength with no finite samples gives NaN.
func (r *Rainbow) MedianSpectrum() []float64 {
	nwave, _ := r.Shape()
	out := make([]float64, nwave)
	if r.Flux == nil {
		return out
	}
	for i := 0; i < nwave; i++ {
		out[i] = median(r.Flux.RawRowView(i))
	}
	return out
}

// Normalize returns a copy of r with every wavelength divided by its median
// flux over time. Uncertainties are scaled by the same factor.
func (r *Rainbow) Normalize() *Rainbow {
	n := r.Clone()
	if n.Flux == nil {
		return n
	}
	med := r.MedianSpectrum()
	for i, m := range med {
		if m == 0 || math.IsNaN(m) {
			continue
		}
		floats.Scale(1/m, n.Flux.RawRowView(i))
		if n.Uncertainty != nil {
			floats.Scale(1/m, n.Uncertainty.RawRowView(i))
		}
	}
	n.Metadata["normalized"] = true
	return n
}

// TimeRange returns the first and last time, or NaN for an empty Rainbow.
func (r *Rainbow) TimeRange() (float64, float64) {
	if len(r.Time) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(r.Time), floats.Max(r.Time)
}

// WavelengthRange returns the smallest and largest wavelength.
func (r *Rainbow) WavelengthRange() (float64, float64) {
	if len(r.Wavelength) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(r.Wavelength), floats.Max(r.Wavelength)
}

// Stack joins spectra given per time into an nwave x ntime matrix.
// All spectra must have the same length.
func Stack(spectra [][]float64) *mat.Dense {
	if len(spectra) == 0 || len(spectra[0]) == 0 {
		return nil
	}
	m := mat.NewDense(len(spectra[0]), len(spectra), nil)
	for j, s := range spectra {
		m.SetCol(j, s)
	}
	return m
}

func median(values []float64) float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return math.NaN()
	}
	sort.Float64s(finite)
	return stat.Quantile(0.5, stat.Empirical, finite, nil)
}
