package readers

import (
	"testing"

	"github.com/robert-malhotra/go-rainbow/fits"
)

// specTable is one EXTRACT1D table of a fixture. A zero sporder omits the
// SPORDER card and a nil errs omits the FLUX_ERROR column.
type specTable struct {
	sporder int
	wave    []float64
	flux    []float64
	errs    []float64
}

type intTimesTable struct {
	column  string
	numbers []float64
	values  []float64
}

// writeFixture writes a product with the given primary cards, EXTRACT1D
// tables and optional INT_TIMES table.
func writeFixture(t *testing.T, path string, primary []fits.Card, tables []specTable, times *intTimesTable) {
	t.Helper()

	w, err := fits.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.WritePrimary(primary...); err != nil {
		t.Fatalf("WritePrimary failed: %v", err)
	}
	for i, tbl := range tables {
		cols := []fits.Column{
			{Name: ColumnWavelength, Unit: "um", Values: tbl.wave},
			{Name: ColumnFlux, Unit: "Jy", Values: tbl.flux},
		}
		if tbl.errs != nil {
			cols = append(cols, fits.Column{Name: ColumnFluxError, Unit: "Jy", Values: tbl.errs})
		}
		opts := []fits.TableOption{fits.WithVersion(i + 1)}
		if tbl.sporder > 0 {
			opts = append(opts, fits.WithCards(fits.Card{Name: "SPORDER", Value: tbl.sporder}))
		}
		if err := w.WriteTable(ExtensionExtract1D, cols, opts...); err != nil {
			t.Fatalf("WriteTable failed: %v", err)
		}
	}
	if times != nil {
		cols := []fits.Column{{Name: times.column, Values: times.values}}
		if times.numbers != nil {
			cols = append(cols, fits.Column{Name: columnIntegrationNumber, Values: times.numbers})
		}
		if err := w.WriteTable(ExtensionIntTimes, cols); err != nil {
			t.Fatalf("WriteTable(INT_TIMES) failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

// atocaCards describes a generic exposure: 2 s frames, 4 groups, so each
// integration lasts 10 s.
func atocaCards() []fits.Card {
	return []fits.Card{
		{Name: "TELESCOP", Value: "JWST"},
		{Name: "INSTRUME", Value: "NIRISS"},
		{Name: "DATE-OBS", Value: "2022-07-01"},
		{Name: "TIME-OBS", Value: "00:00:00.000"},
		{Name: "TFRAME", Value: 2.0},
		{Name: "NFRAMES", Value: 1},
		{Name: "NGROUPS", Value: 4},
		{Name: "NINTS", Value: 3},
	}
}

func x1dintsCards(filename string, intstart, intend int) []fits.Card {
	return []fits.Card{
		{Name: "TELESCOP", Value: "JWST"},
		{Name: "INSTRUME", Value: "NIRISS"},
		{Name: "FILENAME", Value: filename},
		{Name: "INTSTART", Value: intstart},
		{Name: "INTEND", Value: intend},
	}
}
