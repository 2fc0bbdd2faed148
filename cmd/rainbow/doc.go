// Command rainbow inspects JWST spectroscopic time-series FITS products and
// reads them into a Rainbow.
//
//	rainbow inspect jw01366_nis_x1dints.fits
//	rainbow detect jw01366_nis_x1dints.fits
//	rainbow read 'jw01366-seg*_nis_x1dints.fits' --order 2
//	rainbow synth out_x1dints.fits --format x1dints --ntime 20
//	rainbow config init
package main
