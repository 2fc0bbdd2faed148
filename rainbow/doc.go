// Package rainbow holds spectroscopic time series: flux and uncertainty
// sampled on a wavelength grid at a sequence of times.
//
// A Rainbow is filled by readers through Populate, which validates the
// whole payload before touching the container. A failed Populate leaves
// the Rainbow exactly as it was.
//
// Flux and uncertainty are stored as gonum matrices with one row per
// wavelength and one column per time:
//
//	r := rainbow.New()
//	err := r.Populate(rainbow.Payload{
//	    Wavelength: wave,
//	    Time:       times,
//	    Flux:       mat.NewDense(len(wave), len(times), flux),
//	})
package rainbow
