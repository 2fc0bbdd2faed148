package fits

// WalkFunc is called for each header/data unit during traversal.
// Return nil to continue walking, or an error to stop.
type WalkFunc func(ext *Extension) error

// Walk visits every unit of f in file order, primary first.
//
// Example:
//
//	Walk(f, func(ext *Extension) error {
//	    fmt.Println(ext.Index(), ext.Name(), ext.Kind())
//	    return nil
//	})
func Walk(f *File, fn WalkFunc) error {
	for i := 0; i < f.NumHDUs(); i++ {
		ext, err := f.HDU(i)
		if err != nil {
			return err
		}
		if err := fn(ext); err != nil {
			return err
		}
	}
	return nil
}

// Summary describes a unit for listing tools.
type Summary struct {
	Index   int
	Name    string
	Version int
	Kind    Kind
	Rows    int64
	Columns []string
	Axes    []int
}

// Summarize returns a Summary for every unit of f.
func Summarize(f *File) ([]Summary, error) {
	var out []Summary
	err := Walk(f, func(ext *Extension) error {
		s := Summary{
			Index:   ext.Index(),
			Name:    ext.Name(),
			Version: ext.Version(),
			Kind:    ext.Kind(),
		}
		if ext.IsTable() {
			s.Rows = ext.NumRows()
			s.Columns = ext.Columns()
		} else if ext.header.hdr != nil {
			s.Axes = ext.header.hdr.Axes()
		}
		out = append(out, s)
		return nil
	})
	return out, err
}
