package readers

import (
	"fmt"
	"strings"
	"time"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/internal/logging"
	"github.com/robert-malhotra/go-rainbow/rainbow"
)

// mjdUnixEpoch is the Modified Julian Date of 1970-01-01T00:00:00 UTC.
const mjdUnixEpoch = 40587.0

// atocaTimingKeys are the primary keywords needed to derive ATOCA times.
var atocaTimingKeys = []string{"TFRAME", "NGROUPS", "NINTS"}

// FromAtoca reads the ATOCA product(s) at path into r and returns r.
// path may be a glob matching several segments.
func FromAtoca(r *rainbow.Rainbow, path string, opts ...Option) (*rainbow.Rainbow, error) {
	return read(r, path, FormatAtoca, opts)
}

func checkAtoca(path string, hdr *fits.Header) string {
	var missing []string
	for _, key := range atocaTimingKeys {
		if !hdr.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "missing " + strings.Join(missing, ", ")
}

// atocaTimes derives mid-integration times in MJD from the exposure start
// and the integration duration TFRAME * NFRAMES * (NGROUPS + 1). Without the
// timing keywords the integration numbers are returned instead.
func atocaTimes(f *fits.File, n int, o *options) ([]float64, string, error) {
	hdr := f.PrimaryHeader()

	start, err := exposureStart(hdr)
	if err == nil {
		var dur float64
		dur, err = integrationDuration(hdr)
		if err == nil {
			first := intOr(hdr, "INTSTART", 1) - 1
			times := make([]float64, n)
			for k := range times {
				times[k] = start + (float64(first+k)+0.5)*dur/86400
			}
			return times, TimeUnitMJD, nil
		}
	}

	o.logger.Warn("using integration numbers as times", logging.Args(
		logging.Path(f.Path()),
		logging.Error(err),
	)...)
	return integrationNumbers(hdr, n), TimeUnitIntegration, nil
}

// exposureStart returns the exposure start from DATE-OBS and TIME-OBS as
// an MJD. DATE-OBS may also carry the full ISO timestamp.
func exposureStart(hdr *fits.Header) (float64, error) {
	date, err := hdr.String("DATE-OBS")
	if err != nil {
		return 0, err
	}
	stamp := strings.TrimSpace(date)
	if !strings.Contains(stamp, "T") {
		clock, err := hdr.String("TIME-OBS")
		if err != nil {
			return 0, err
		}
		stamp += "T" + strings.TrimSpace(clock)
	}

	t, err := time.Parse("2006-01-02T15:04:05.999999999", stamp)
	if err != nil {
		return 0, fmt.Errorf("parsing exposure start %q: %w", stamp, err)
	}
	return toMJD(t), nil
}

// integrationDuration returns the length of one integration in seconds.
func integrationDuration(hdr *fits.Header) (float64, error) {
	tframe, err := hdr.Float("TFRAME")
	if err != nil {
		return 0, err
	}
	ngroups, err := hdr.Int("NGROUPS")
	if err != nil {
		return 0, err
	}
	nframes := intOr(hdr, "NFRAMES", 1)
	return tframe * float64(nframes) * float64(ngroups+1), nil
}

func toMJD(t time.Time) float64 {
	t = t.UTC()
	return mjdUnixEpoch + float64(t.Unix())/86400 + float64(t.Nanosecond())/86400e9
}
