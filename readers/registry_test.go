package readers

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robert-malhotra/go-rainbow/rainbow"
)

func TestFormats(t *testing.T) {
	formats := Formats()
	joined := make([]string, len(formats))
	for i, f := range formats {
		joined[i] = string(f)
	}
	got := strings.Join(joined, ",")
	if !strings.Contains(got, "atoca") || !strings.Contains(got, "x1dints") {
		t.Errorf("Formats = %v, want atoca and x1dints", formats)
	}
	if _, ok := Lookup(FormatAtoca); !ok {
		t.Error("Lookup(atoca) failed")
	}
	if _, ok := Lookup("csv"); ok {
		t.Error("Lookup(csv) should fail")
	}
}

func TestReadDispatch(t *testing.T) {
	tmpDir := t.TempDir()
	wave := []float64{1, 2}
	atocaPath := filepath.Join(tmpDir, "d_atoca.fits")
	writeFixture(t, atocaPath, atocaCards(), []specTable{{wave: wave, flux: []float64{1, 2}}}, nil)

	r, err := Read(rainbow.New(), atocaPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if r.Metadata["format"] != "atoca" {
		t.Errorf("format = %v, want atoca", r.Metadata["format"])
	}

	r, err = Read(rainbow.New(), atocaPath, WithFormat(FormatX1DInts))
	if err != nil {
		t.Fatalf("Read with format failed: %v", err)
	}
	if r.Metadata["format"] != "x1dints" {
		t.Errorf("format = %v, want x1dints", r.Metadata["format"])
	}

	if _, err := Read(rainbow.New(), atocaPath, WithFormat("csv")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format err = %v, want ErrUnknownFormat", err)
	}
}

func TestRegisterCustomReader(t *testing.T) {
	const custom Format = "test-custom"
	var called string
	Register(custom, func(r *rainbow.Rainbow, path string, opts ...Option) (*rainbow.Rainbow, error) {
		called = path
		return r, nil
	})

	r := rainbow.New()
	got, err := Read(r, "anything.fits", WithFormat(custom))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != r || called != "anything.fits" {
		t.Errorf("custom reader not used: called=%q", called)
	}
}
