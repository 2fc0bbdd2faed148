package rainbow

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testPayload() Payload {
	return Payload{
		Wavelength: []float64{1.0, 2.0},
		Time:       []float64{60000.1, 60000.2, 60000.3},
		Flux: mat.NewDense(2, 3, []float64{
			1, 2, 3,
			10, 20, 30,
		}),
		Metadata: map[string]any{"instrument": "NIRISS", "nints": 3},
	}
}

func TestNewIsEmpty(t *testing.T) {
	r := New()
	if !r.IsEmpty() {
		t.Error("new Rainbow should be empty")
	}
	nw, nt := r.Shape()
	if nw != 0 || nt != 0 {
		t.Errorf("Shape = (%d, %d), want (0, 0)", nw, nt)
	}
}

func TestPopulate(t *testing.T) {
	r := New()
	r.Metadata["source"] = "test"
	p := testPayload()

	if err := r.Populate(p); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if r.IsEmpty() {
		t.Fatal("Rainbow should not be empty after Populate")
	}
	nw, nt := r.Shape()
	if nw != 2 || nt != 3 {
		t.Errorf("Shape = (%d, %d), want (2, 3)", nw, nt)
	}
	if r.Flux.At(1, 2) != 30 {
		t.Errorf("Flux[1,2] = %v, want 30", r.Flux.At(1, 2))
	}
	if !math.IsNaN(r.Uncertainty.At(0, 0)) {
		t.Errorf("missing uncertainty should be NaN, got %v", r.Uncertainty.At(0, 0))
	}
	if r.Metadata["source"] != "test" {
		t.Error("existing metadata should be kept")
	}
	if r.Metadata["nints"] != int64(3) {
		t.Errorf("nints = %#v, want int64(3)", r.Metadata["nints"])
	}

	// The Rainbow owns copies of the payload arrays
	p.Wavelength[0] = -1
	p.Flux.Set(0, 0, -1)
	if r.Wavelength[0] != 1 || r.Flux.At(0, 0) != 1 {
		t.Error("Populate should copy payload arrays")
	}
}

func TestPopulateErrorsLeaveRainbowUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Payload)
		wantErr error
	}{
		{"no wavelengths", func(p *Payload) { p.Wavelength = nil }, ErrEmptyPayload},
		{"no times", func(p *Payload) { p.Time = nil }, ErrEmptyPayload},
		{"no flux", func(p *Payload) { p.Flux = nil }, ErrEmptyPayload},
		{"flux shape", func(p *Payload) { p.Flux = mat.NewDense(3, 2, nil) }, ErrShapeMismatch},
		{"uncertainty shape", func(p *Payload) { p.Uncertainty = mat.NewDense(2, 2, nil) }, ErrShapeMismatch},
		{"slice metadata", func(p *Payload) { p.Metadata["bad"] = []int{1} }, ErrNonScalarMetadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			if err := r.Populate(testPayload()); err != nil {
				t.Fatalf("Populate failed: %v", err)
			}
			before := r.Clone()

			p := testPayload()
			p.Time = []float64{1, 2, 3}
			tt.mutate(&p)
			err := r.Populate(p)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Populate err = %v, want %v", err, tt.wantErr)
			}
			if !r.Equal(before) {
				t.Error("Rainbow changed after failed Populate")
			}
		})
	}
}

func TestCloneEqual(t *testing.T) {
	r := New()
	p := testPayload()
	p.Uncertainty = mat.NewDense(2, 3, []float64{0.1, math.NaN(), 0.3, 1, 2, 3})
	if err := r.Populate(p); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	c := r.Clone()
	if !r.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Flux.Set(0, 0, 99)
	if r.Equal(c) {
		t.Error("modified clone should differ")
	}
	if r.Flux.At(0, 0) != 1 {
		t.Error("Clone should not share flux storage")
	}

	if !New().Equal(New()) {
		t.Error("empty Rainbows should be equal")
	}
	if New().Equal(r) {
		t.Error("empty Rainbow should not equal populated one")
	}
}

func TestSpectrumLightCurve(t *testing.T) {
	r := New()
	if err := r.Populate(testPayload()); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	spec, err := r.Spectrum(1)
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}
	if spec[0] != 2 || spec[1] != 20 {
		t.Errorf("Spectrum(1) = %v, want [2 20]", spec)
	}
	lc, err := r.LightCurve(1)
	if err != nil {
		t.Fatalf("LightCurve failed: %v", err)
	}
	if lc[0] != 10 || lc[2] != 30 {
		t.Errorf("LightCurve(1) = %v, want [10 20 30]", lc)
	}

	if _, err := r.Spectrum(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Spectrum(3) err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := r.LightCurve(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("LightCurve(-1) err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := New().Spectrum(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("empty Spectrum err = %v, want ErrIndexOutOfRange", err)
	}
}
