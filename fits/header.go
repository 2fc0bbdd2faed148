package fits

import (
	"fmt"

	"github.com/astrogo/fitsio"

	"github.com/robert-malhotra/go-rainbow/internal/convert"
)

// Header provides typed access to the cards of a header/data unit.
type Header struct {
	hdr *fitsio.Header
}

// Keys returns the keywords of the header in card order.
func (h *Header) Keys() []string {
	if h.hdr == nil {
		return nil
	}
	return h.hdr.Keys()
}

// Has reports whether keyword key is present.
func (h *Header) Has(key string) bool {
	return h.card(key) != nil
}

// Value returns the raw value of keyword key.
func (h *Header) Value(key string) (interface{}, error) {
	card := h.card(key)
	if card == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return card.Value, nil
}

// Comment returns the comment of keyword key.
func (h *Header) Comment(key string) string {
	card := h.card(key)
	if card == nil {
		return ""
	}
	return card.Comment
}

// String returns keyword key as a string.
func (h *Header) String(key string) (string, error) {
	v, err := h.Value(key)
	if err != nil {
		return "", err
	}
	s, err := convert.String(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrKeyType, key, err)
	}
	return s, nil
}

// Int returns keyword key as an int.
func (h *Header) Int(key string) (int, error) {
	v, err := h.Value(key)
	if err != nil {
		return 0, err
	}
	n, err := convert.Int(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrKeyType, key, err)
	}
	return n, nil
}

// Float returns keyword key as a float64. Integer cards are widened.
func (h *Header) Float(key string) (float64, error) {
	v, err := h.Value(key)
	if err != nil {
		return 0, err
	}
	f, err := convert.Float64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrKeyType, key, err)
	}
	return f, nil
}

// Bool returns keyword key as a bool.
func (h *Header) Bool(key string) (bool, error) {
	v, err := h.Value(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: %T to bool", ErrKeyType, key, v)
	}
	return b, nil
}

// Scalars returns every keyword whose value is a scalar, normalised to
// string, int64, float64 or bool. Structural keywords are skipped.
func (h *Header) Scalars() map[string]interface{} {
	out := make(map[string]interface{})
	for _, key := range h.Keys() {
		if structural(key) {
			continue
		}
		card := h.card(key)
		if card == nil {
			continue
		}
		if v, ok := convert.Scalar(card.Value); ok {
			out[key] = v
		}
	}
	return out
}

func (h *Header) card(key string) *fitsio.Card {
	if h == nil || h.hdr == nil {
		return nil
	}
	return h.hdr.Get(key)
}

// structural reports keywords that describe the data layout rather than
// the observation.
func structural(key string) bool {
	switch key {
	case "SIMPLE", "XTENSION", "BITPIX", "NAXIS", "PCOUNT", "GCOUNT",
		"TFIELDS", "EXTEND", "END", "COMMENT", "HISTORY", "":
		return true
	}
	for _, prefix := range []string{"NAXIS", "TFORM", "TTYPE", "TUNIT", "TDISP", "TSCAL", "TZERO", "TNULL", "TDIM"} {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
