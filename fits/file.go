package fits

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/astrogo/fitsio"

	"github.com/robert-malhotra/go-rainbow/internal/compress"
	"github.com/robert-malhotra/go-rainbow/internal/signature"
)

// File represents an open FITS file.
type File struct {
	path       string
	osFile     *os.File // nil when the input was decompressed into memory
	fits       *fitsio.File
	extensions []*Extension
	codec      string
	size       int64
	closed     bool
}

// Open opens a FITS file for reading. Files ending in a registered
// compression suffix (.gz, .zst) are decompressed in memory first.
func Open(path string) (*File, error) {
	if err := compress.Check(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, ErrUnsupported, err)
	}

	osFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	f := &File{path: path}

	var src io.ReadSeeker
	var srcAt io.ReaderAt
	if codec := compress.ForPath(path); codec != nil {
		// Compressed input is read fully and the OS handle released
		raw, err := io.ReadAll(osFile)
		osFile.Close()
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		decoded, err := codec.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
		r := bytes.NewReader(decoded)
		src, srcAt = r, r
		f.codec = codec.Name()
		f.size = int64(len(decoded))
	} else {
		stat, err := osFile.Stat()
		if err != nil {
			osFile.Close()
			return nil, fmt.Errorf("stat file: %w", err)
		}
		src, srcAt = osFile, osFile
		f.osFile = osFile
		f.size = stat.Size()
	}

	// Verify the primary header signature
	if _, err := signature.Read(srcAt, f.size); err != nil {
		f.release()
		return nil, fmt.Errorf("reading signature: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		f.release()
		return nil, fmt.Errorf("rewinding file: %w", err)
	}

	ff, err := fitsio.Open(src)
	if err != nil {
		f.release()
		return nil, fmt.Errorf("parsing FITS structure: %w", err)
	}
	f.fits = ff

	hdus := ff.HDUs()
	f.extensions = make([]*Extension, len(hdus))
	for i, hdu := range hdus {
		f.extensions[i] = newExtension(f, i, hdu)
	}

	return f, nil
}

// Close closes the FITS file and releases the underlying OS handle.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var err error
	if f.fits != nil {
		err = f.fits.Close()
	}
	if cerr := f.release(); err == nil {
		err = cerr
	}
	return err
}

// release closes the OS handle if one is held.
func (f *File) release() error {
	if f.osFile == nil {
		return nil
	}
	err := f.osFile.Close()
	f.osFile = nil
	return err
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Size returns the size in bytes of the (decompressed) FITS stream.
func (f *File) Size() int64 {
	return f.size
}

// Codec returns the name of the codec used to decompress the input, or ""
// for plain files.
func (f *File) Codec() string {
	return f.codec
}

// NumHDUs returns the number of header/data units, primary included.
func (f *File) NumHDUs() int {
	return len(f.extensions)
}

// HDUs returns all header/data units in file order.
func (f *File) HDUs() []*Extension {
	out := make([]*Extension, len(f.extensions))
	copy(out, f.extensions)
	return out
}

// HDU returns the unit at index i.
func (f *File) HDU(i int) (*Extension, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(f.extensions) {
		return nil, fmt.Errorf("%w: HDU index %d out of range [0, %d)", ErrNotFound, i, len(f.extensions))
	}
	return f.extensions[i], nil
}

// Primary returns the primary header/data unit.
func (f *File) Primary() *Extension {
	if len(f.extensions) == 0 {
		return nil
	}
	return f.extensions[0]
}

// PrimaryHeader returns the primary header.
func (f *File) PrimaryHeader() *Header {
	p := f.Primary()
	if p == nil {
		return nil
	}
	return p.Header()
}
