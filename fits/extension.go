package fits

import (
	"github.com/astrogo/fitsio"
)

// Kind identifies the payload type of a header/data unit.
type Kind int

const (
	KindImage Kind = iota
	KindBinaryTable
	KindASCIITable
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "IMAGE"
	case KindBinaryTable:
		return "BINTABLE"
	case KindASCIITable:
		return "TABLE"
	default:
		return "UNKNOWN"
	}
}

// Extension represents one header/data unit of a FITS file. The primary
// unit is exposed as an Extension with index 0.
type Extension struct {
	file   *File
	index  int
	hdu    fitsio.HDU
	header *Header
}

func newExtension(f *File, index int, hdu fitsio.HDU) *Extension {
	return &Extension{
		file:   f,
		index:  index,
		hdu:    hdu,
		header: &Header{hdr: hdu.Header()},
	}
}

// Index returns the position of the unit in the file (0 = primary).
func (e *Extension) Index() int {
	return e.index
}

// IsPrimary returns true for the primary unit.
func (e *Extension) IsPrimary() bool {
	return e.index == 0
}

// Name returns the EXTNAME of the unit. The primary unit without an
// EXTNAME card is named "PRIMARY".
func (e *Extension) Name() string {
	if s, err := e.header.String("EXTNAME"); err == nil {
		return s
	}
	if e.index == 0 {
		return "PRIMARY"
	}
	return ""
}

// Version returns the EXTVER of the unit, defaulting to 1.
func (e *Extension) Version() int {
	if v, err := e.header.Int("EXTVER"); err == nil {
		return v
	}
	return 1
}

// Kind returns the payload type of the unit.
func (e *Extension) Kind() Kind {
	switch e.hdu.Type() {
	case fitsio.IMAGE_HDU:
		return KindImage
	case fitsio.BINARY_TBL:
		return KindBinaryTable
	case fitsio.ASCII_TBL:
		return KindASCIITable
	default:
		return KindUnknown
	}
}

// Header returns the header of the unit.
func (e *Extension) Header() *Header {
	return e.header
}

// File returns the file that owns this unit.
func (e *Extension) File() *File {
	return e.file
}

// Extension returns the first unit whose EXTNAME equals name exactly.
// The comparison is case-sensitive and never falls back to a partial or
// case-folded match. When no unit matches, the returned error is a
// *MissingExtensionError carrying the file path.
func (f *File) Extension(name string) (*Extension, error) {
	if f.closed {
		return nil, ErrClosed
	}
	for _, ext := range f.extensions {
		if ext.Name() == name {
			return ext, nil
		}
	}
	return nil, &MissingExtensionError{Extension: name, Path: f.path}
}

// Extensions returns every unit whose EXTNAME equals name exactly, in file
// order. Products such as x1dints repeat EXTRACT1D once per integration.
func (f *File) Extensions(name string) ([]*Extension, error) {
	if f.closed {
		return nil, ErrClosed
	}
	var out []*Extension
	for _, ext := range f.extensions {
		if ext.Name() == name {
			out = append(out, ext)
		}
	}
	if len(out) == 0 {
		return nil, &MissingExtensionError{Extension: name, Path: f.path}
	}
	return out, nil
}

// ExtensionVersion returns the unit matching both name and EXTVER.
func (f *File) ExtensionVersion(name string, version int) (*Extension, error) {
	exts, err := f.Extensions(name)
	if err != nil {
		return nil, err
	}
	for _, ext := range exts {
		if ext.Version() == version {
			return ext, nil
		}
	}
	return nil, &MissingExtensionError{Extension: name, Path: f.path}
}

// HasExtension reports whether a unit named name exists.
func (f *File) HasExtension(name string) bool {
	_, err := f.Extension(name)
	return err == nil
}

// Names returns the EXTNAME of every unit in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.extensions))
	for i, ext := range f.extensions {
		names[i] = ext.Name()
	}
	return names
}
