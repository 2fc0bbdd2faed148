package signature

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

const (
	// BlockSize is the FITS logical record length.
	BlockSize = 2880

	// CardSize is the length of one header card.
	CardSize = 80
)

// Keyword expected in columns 1-8 of the first card.
var Keyword = []byte("SIMPLE  ")

// Errors
var (
	ErrNotFITS       = errors.New("not a FITS file: SIMPLE card not found")
	ErrTruncated     = errors.New("truncated FITS file: shorter than one block")
	ErrNonConforming = errors.New("FITS file declares SIMPLE = F")
)

// Info describes what was learned from the start of the file.
type Info struct {
	// Size is the total byte length of the input.
	Size int64

	// Blocks is the number of complete 2880-byte blocks.
	Blocks int64

	// Aligned reports whether Size is a whole number of blocks.
	Aligned bool
}

// Read checks the first card of r and returns block statistics.
// size is the total length of the input.
func Read(r io.ReaderAt, size int64) (*Info, error) {
	if size < CardSize {
		if size == 0 {
			return nil, ErrNotFITS
		}
		// A short input that starts like a SIMPLE card was cut off
		head := make([]byte, size)
		if _, err := r.ReadAt(head, 0); err != nil && err != io.EOF {
			return nil, err
		}
		if bytes.HasPrefix(Keyword, head) || bytes.HasPrefix(head, Keyword) {
			return nil, ErrTruncated
		}
		return nil, ErrNotFITS
	}

	card := make([]byte, CardSize)
	if _, err := r.ReadAt(card, 0); err != nil && err != io.EOF {
		return nil, err
	}

	if !bytes.Equal(card[:8], Keyword) || string(card[8:10]) != "= " {
		return nil, ErrNotFITS
	}

	value := strings.TrimSpace(string(card[10:]))
	if i := strings.Index(value, "/"); i != -1 {
		value = strings.TrimSpace(value[:i])
	}
	switch value {
	case "T":
	case "F":
		return nil, ErrNonConforming
	default:
		return nil, ErrNotFITS
	}

	if size < BlockSize {
		return nil, ErrTruncated
	}

	return &Info{
		Size:    size,
		Blocks:  size / BlockSize,
		Aligned: size%BlockSize == 0,
	}, nil
}
