package readers

import (
	"errors"
	"strings"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/internal/compress"
	"github.com/robert-malhotra/go-rainbow/internal/logging"
	"github.com/robert-malhotra/go-rainbow/rainbow"
)

const x1dintsSuffix = "x1dints.fits"

// INT_TIMES columns, in order of preference, and the unit each implies.
var intTimesColumns = []struct {
	name string
	unit string
}{
	{"int_mid_BJD_TDB", TimeUnitBJD},
	{"int_mid_MJD_UTC", TimeUnitMJD},
}

const columnIntegrationNumber = "integration_number"

// FromX1DInts reads the x1dints product(s) at path into r and returns r.
// path may be a glob matching several segments.
func FromX1DInts(r *rainbow.Rainbow, path string, opts ...Option) (*rainbow.Rainbow, error) {
	return read(r, path, FormatX1DInts, opts)
}

func checkX1DInts(path string, hdr *fits.Header) string {
	if hasX1DIntsName(path, hdr) || hdr.Has("INTSTART") {
		return ""
	}
	return "no INTSTART keyword and name does not end in " + x1dintsSuffix
}

func hasX1DIntsName(path string, hdr *fits.Header) bool {
	if strings.HasSuffix(strings.ToLower(compress.TrimSuffix(path)), x1dintsSuffix) {
		return true
	}
	name, err := hdr.String("FILENAME")
	return err == nil && strings.HasSuffix(strings.ToLower(name), x1dintsSuffix)
}

var errNoIntTimes = errors.New("no usable INT_TIMES")

// x1dintsTimes looks up the mid-integration time of integrations
// INTSTART..INTSTART+n-1 in the INT_TIMES table. Files without a usable
// table fall back to integration numbers.
func x1dintsTimes(f *fits.File, n int, o *options) ([]float64, string, error) {
	hdr := f.PrimaryHeader()

	times, unit, err := intTimes(f, intOr(hdr, "INTSTART", 1), n)
	if err == nil {
		return times, unit, nil
	}

	o.logger.Warn("using integration numbers as times", logging.Args(
		logging.Path(f.Path()),
		logging.Error(err),
	)...)
	return integrationNumbers(hdr, n), TimeUnitIntegration, nil
}

func intTimes(f *fits.File, start, n int) ([]float64, string, error) {
	ext, err := f.Extension(ExtensionIntTimes)
	if err != nil {
		return nil, "", err
	}

	var col, unit string
	for _, c := range intTimesColumns {
		if ext.HasColumn(c.name) {
			col, unit = c.name, c.unit
			break
		}
	}
	if col == "" {
		return nil, "", errNoIntTimes
	}

	names := []string{col}
	numbered := ext.HasColumn(columnIntegrationNumber)
	if numbered {
		names = append(names, columnIntegrationNumber)
	}
	cols, err := ext.Float64Columns(names...)
	if err != nil {
		return nil, "", err
	}

	byNumber := make(map[int]float64, len(cols[col]))
	for i, t := range cols[col] {
		num := i + 1
		if numbered {
			num = int(cols[columnIntegrationNumber][i])
		}
		byNumber[num] = t
	}

	times := make([]float64, n)
	for k := range times {
		t, ok := byNumber[start+k]
		if !ok {
			return nil, "", errNoIntTimes
		}
		times[k] = t
	}
	return times, unit, nil
}
