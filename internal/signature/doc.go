// Package signature recognises the FITS primary header.
//
// A FITS file is a sequence of 2880-byte blocks. The first block opens the
// primary header, whose first 80-character card must be the SIMPLE keyword:
//
//	SIMPLE  =                    T / file conforms to FITS standard
//
// The keyword occupies columns 1-8, the value indicator "= " columns 9-10,
// and the logical value T is right-justified to column 30.
//
// # Usage
//
//	info, err := signature.Read(file, size)
//	if errors.Is(err, signature.ErrNotFITS) {
//	    // Not a FITS file
//	}
//
// # Errors
//
//   - [ErrNotFITS]: the first card is not a SIMPLE card
//   - [ErrTruncated]: the input is shorter than one FITS block
//   - [ErrNonConforming]: SIMPLE is F (file declares itself non-standard)
package signature
