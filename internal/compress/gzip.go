package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// Gzip implements the gzip whole-file codec.
type Gzip struct{}

// NewGzip creates a new gzip codec.
func NewGzip() *Gzip {
	return &Gzip{}
}

func (c *Gzip) Name() string {
	return "gzip"
}

func (c *Gzip) Decode(input []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer r.Close()

	output, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}

	return output, nil
}
