package readers

import (
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/internal/compress"
)

// Format names a product convention.
type Format string

const (
	FormatAtoca   Format = "atoca"
	FormatX1DInts Format = "x1dints"
)

// Detect inspects the file name and primary header of path and returns the
// format it follows. A name mentioning "atoca" wins; otherwise x1dints
// naming or an INTSTART keyword selects x1dints, and the ATOCA timing
// keywords select atoca.
func Detect(path string) (Format, error) {
	f, err := fits.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return detectHeader(path, f.PrimaryHeader())
}

func detectHeader(path string, hdr *fits.Header) (Format, error) {
	base := strings.ToLower(filepath.Base(compress.TrimSuffix(path)))
	if strings.Contains(base, string(FormatAtoca)) {
		return FormatAtoca, nil
	}
	if checkX1DInts(path, hdr) == "" {
		return FormatX1DInts, nil
	}
	if checkAtoca(path, hdr) == "" {
		return FormatAtoca, nil
	}
	return "", &FormatMismatchError{
		Path:   path,
		Reason: "neither x1dints naming, INTSTART nor TFRAME/NGROUPS/NINTS present",
	}
}
