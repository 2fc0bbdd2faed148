package compress

import (
	"fmt"

	"github.com/DataDog/zstd"
)

// Zstd implements the Zstandard whole-file codec.
type Zstd struct{}

// NewZstd creates a new Zstandard codec.
func NewZstd() *Zstd {
	return &Zstd{}
}

func (c *Zstd) Name() string {
	return "zstd"
}

func (c *Zstd) Decode(input []byte) ([]byte, error) {
	output, err := zstd.Decompress(nil, input)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return output, nil
}
