package fits

import (
	"fmt"

	"github.com/astrogo/fitsio"

	"github.com/robert-malhotra/go-rainbow/internal/convert"
)

// IsTable returns true if the unit holds an ASCII or binary table.
func (e *Extension) IsTable() bool {
	_, ok := e.hdu.(*fitsio.Table)
	return ok
}

// table returns the underlying table or ErrNotTable.
func (e *Extension) table() (*fitsio.Table, error) {
	tbl, ok := e.hdu.(*fitsio.Table)
	if !ok {
		return nil, fmt.Errorf("%w: HDU %d (%s)", ErrNotTable, e.index, e.Name())
	}
	return tbl, nil
}

// NumRows returns the number of table rows, or 0 for non-table units.
func (e *Extension) NumRows() int64 {
	tbl, err := e.table()
	if err != nil {
		return 0
	}
	return tbl.NumRows()
}

// Columns returns the column names of a table unit.
func (e *Extension) Columns() []string {
	tbl, err := e.table()
	if err != nil {
		return nil
	}
	cols := tbl.Cols()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the table has a column called name.
func (e *Extension) HasColumn(name string) bool {
	tbl, err := e.table()
	if err != nil {
		return false
	}
	return tbl.Index(name) >= 0
}

// ColumnUnit returns the TUNIT of column name, or "" if unset.
func (e *Extension) ColumnUnit(name string) string {
	tbl, err := e.table()
	if err != nil {
		return ""
	}
	i := tbl.Index(name)
	if i < 0 {
		return ""
	}
	return tbl.Col(i).Unit
}

// Float64Column reads a whole numeric column as float64 values.
func (e *Extension) Float64Column(name string) ([]float64, error) {
	cols, err := e.Float64Columns(name)
	if err != nil {
		return nil, err
	}
	return cols[name], nil
}

// Float64Columns reads several numeric columns in one pass over the rows.
// Every requested column must exist.
func (e *Extension) Float64Columns(names ...string) (map[string][]float64, error) {
	tbl, err := e.table()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if tbl.Index(name) < 0 {
			return nil, fmt.Errorf("%w: %q in HDU %d (%s)", ErrColumnNotFound, name, e.index, e.Name())
		}
	}

	nrows := tbl.NumRows()
	out := make(map[string][]float64, len(names))
	if nrows == 0 {
		for _, name := range names {
			out[name] = []float64{}
		}
		return out, nil
	}

	cells := make(map[string][]interface{}, len(names))
	for _, name := range names {
		cells[name] = make([]interface{}, 0, nrows)
	}

	rows, err := tbl.Read(0, nrows)
	if err != nil {
		return nil, fmt.Errorf("reading rows of HDU %d: %w", e.index, err)
	}
	defer rows.Close()

	var irow int64
	for rows.Next() {
		data := make(map[string]interface{}, len(names))
		for _, name := range names {
			data[name] = nil
		}
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning row %d of HDU %d: %w", irow, e.index, err)
		}
		for _, name := range names {
			cells[name] = append(cells[name], data[name])
		}
		irow++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows of HDU %d: %w", e.index, err)
	}

	for _, name := range names {
		vals, err := convert.Float64s(cells[name])
		if err != nil {
			return nil, fmt.Errorf("column %q of HDU %d: %w", name, e.index, err)
		}
		out[name] = vals
	}
	return out, nil
}
