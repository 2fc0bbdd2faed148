// Package compress implements decompression of compressed FITS inputs.
//
// Archives commonly distribute FITS products compressed as a whole file
// (for example "jw01366_x1dints.fits.gz"). This package selects a codec
// from the file name suffix and restores the raw FITS byte stream before
// it is handed to the FITS parser.
//
// # Supported Codecs
//
//   - Gzip (".gz"): via [Gzip], using Go's standard compress/gzip package.
//
//   - Zstandard (".zst", ".zstd"): via [Zstd], using github.com/DataDog/zstd.
//
// Files without a recognized suffix are passed through unchanged.
//
// # Usage
//
//	codec := compress.ForPath(path)
//	if codec != nil {
//	    raw, err = codec.Decode(raw)
//	}
//
// # Key Types
//
//   - [Codec]: Interface implemented by all codecs (Name and Decode methods)
//   - [Gzip]: gzip decompression codec
//   - [Zstd]: Zstandard decompression codec
package compress
