package fits

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"
)

// Writer creates a FITS file unit by unit. The primary unit must be
// written first.
type Writer struct {
	path    string
	osFile  *os.File
	fits    *fitsio.File
	primary bool
	closed  bool
}

// Create creates a new FITS file at the given path.
func Create(path string) (*Writer, error) {
	osFile, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	ff, err := fitsio.Create(osFile)
	if err != nil {
		osFile.Close()
		os.Remove(path)
		return nil, fmt.Errorf("creating FITS stream: %w", err)
	}

	return &Writer{
		path:   path,
		osFile: osFile,
		fits:   ff,
	}, nil
}

// Path returns the file path.
func (w *Writer) Path() string {
	return w.path
}

// WritePrimary writes a data-less primary unit carrying the given cards.
func (w *Writer) WritePrimary(cards ...Card) error {
	if w.closed {
		return ErrClosed
	}
	if w.primary {
		return fmt.Errorf("primary HDU already written")
	}

	fcards, err := toFitsioCards(cards)
	if err != nil {
		return err
	}

	hdr := fitsio.NewHeader(fcards, fitsio.IMAGE_HDU, 8, []int{})
	phdu, err := fitsio.NewPrimaryHDU(hdr)
	if err != nil {
		return fmt.Errorf("creating primary HDU: %w", err)
	}
	defer phdu.Close()

	if err := w.fits.Write(phdu); err != nil {
		return fmt.Errorf("writing primary HDU: %w", err)
	}
	w.primary = true
	return nil
}

// WriteTable writes a binary table extension named name. Every column must
// hold the same number of values.
func (w *Writer) WriteTable(name string, cols []Column, opts ...TableOption) error {
	if w.closed {
		return ErrClosed
	}
	if !w.primary {
		return fmt.Errorf("primary HDU must be written before %q", name)
	}
	if len(cols) == 0 {
		return fmt.Errorf("table %q has no columns", name)
	}

	options := defaultTableOptions()
	for _, opt := range opts {
		opt(options)
	}

	nrows := len(cols[0].Values)
	fcols := make([]fitsio.Column, len(cols))
	for i, c := range cols {
		if len(c.Values) != nrows {
			return fmt.Errorf("table %q: column %q has %d rows, expected %d", name, c.Name, len(c.Values), nrows)
		}
		fcols[i] = fitsio.Column{
			Name:   c.Name,
			Format: "D",
			Unit:   c.Unit,
			Bscale: 1,
		}
	}

	tbl, err := fitsio.NewTable(name, fcols, fitsio.BINARY_TBL)
	if err != nil {
		return fmt.Errorf("creating table %q: %w", name, err)
	}
	defer tbl.Close()

	cards := options.cards
	if options.version > 0 {
		cards = append([]Card{{Name: "EXTVER", Value: options.version, Comment: "extension version"}}, cards...)
	}
	if len(cards) > 0 {
		fcards, err := toFitsioCards(cards)
		if err != nil {
			return err
		}
		if err := tbl.Header().Append(fcards...); err != nil {
			return fmt.Errorf("adding cards to table %q: %w", name, err)
		}
	}

	row := make([]interface{}, len(cols))
	for r := 0; r < nrows; r++ {
		for j := range cols {
			v := cols[j].Values[r]
			row[j] = &v
		}
		if err := tbl.Write(row...); err != nil {
			return fmt.Errorf("writing row %d of table %q: %w", r, name, err)
		}
	}

	if err := w.fits.Write(tbl); err != nil {
		return fmt.Errorf("writing table %q: %w", name, err)
	}
	return nil
}

// Close finishes the FITS stream and closes the file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.fits.Close()
	if cerr := w.osFile.Close(); err == nil {
		err = cerr
	}
	return err
}

// toFitsioCards converts cards and normalises numeric values to the
// types the FITS encoder understands.
func toFitsioCards(cards []Card) ([]fitsio.Card, error) {
	out := make([]fitsio.Card, len(cards))
	for i, c := range cards {
		var v interface{}
		switch x := c.Value.(type) {
		case string, bool, int, float64:
			v = x
		case int8:
			v = int(x)
		case int16:
			v = int(x)
		case int32:
			v = int(x)
		case int64:
			v = int(x)
		case uint8:
			v = int(x)
		case uint16:
			v = int(x)
		case uint32:
			v = int(x)
		case float32:
			v = float64(x)
		default:
			return nil, fmt.Errorf("card %q: %w: value type %T", c.Name, ErrUnsupported, c.Value)
		}
		out[i] = fitsio.Card{Name: c.Name, Value: v, Comment: c.Comment}
	}
	return out, nil
}
