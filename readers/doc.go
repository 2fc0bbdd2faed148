// Package readers fills a rainbow.Rainbow from JWST spectroscopic time-series
// products stored as FITS.
//
// Two product conventions are supported:
//
//   - atoca: spectra extracted with the ATOCA algorithm. Times are derived
//     from the exposure start and the integration duration in the primary
//     header.
//   - x1dints: pipeline stage-2 products with one EXTRACT1D table per
//     integration and spectral order, plus an INT_TIMES table.
//
// Both readers locate the EXTRACT1D extensions through fits.File. A file
// without them fails with the *fits.MissingExtensionError returned by the
// locator, unwrapped, and the Rainbow passed in is left untouched. Nothing is
// written to the Rainbow until every input file has been read.
//
// Use Read to detect the format from the file itself:
//
//	r, err := readers.Read(rainbow.New(), "jw01366*_x1dints.fits")
package readers
