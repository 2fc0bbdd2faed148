package convert

import (
	"errors"
	"math"
	"testing"
)

func TestFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 1.25, 1.25},
		{"float32", float32(0.5), 0.5},
		{"int", 3, 3},
		{"int16", int16(-7), -7},
		{"int32", int32(1 << 20), 1 << 20},
		{"int64", int64(-42), -42},
		{"uint8", uint8(255), 255},
		{"uint64", uint64(10), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float64(tt.in)
			if err != nil {
				t.Fatalf("Float64 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFloat64Unsupported(t *testing.T) {
	for _, v := range []interface{}{"1.0", true, nil, []float64{1}} {
		if _, err := Float64(v); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Float64(%#v): expected ErrUnsupportedType, got %v", v, err)
		}
	}
}

func TestInt(t *testing.T) {
	if n, err := Int(4.0); err != nil || n != 4 {
		t.Errorf("Int(4.0) = %d, %v", n, err)
	}
	if n, err := Int(int32(-9)); err != nil || n != -9 {
		t.Errorf("Int(int32(-9)) = %d, %v", n, err)
	}
	for _, v := range []interface{}{4.5, math.NaN(), math.Inf(1), uint64(math.MaxUint64), "4"} {
		if _, err := Int(v); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Int(%#v): expected ErrUnsupportedType, got %v", v, err)
		}
	}
}

func TestString(t *testing.T) {
	if s, err := String("NIRISS"); err != nil || s != "NIRISS" {
		t.Errorf("String = %q, %v", s, err)
	}
	if _, err := String(1); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFloat64s(t *testing.T) {
	got, err := Float64s([]interface{}{float32(1), 2.0, int32(3)})
	if err != nil {
		t.Fatalf("Float64s failed: %v", err)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if _, err := Float64s([]interface{}{1.0, "x"}); err == nil {
		t.Error("expected error for string element")
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		in   interface{}
		want interface{}
		ok   bool
	}{
		{"a", "a", true},
		{true, true, true},
		{3, int64(3), true},
		{int32(3), int64(3), true},
		{float32(1.5), 1.5, true},
		{2.5, 2.5, true},
		{[]int{1}, nil, false},
		{nil, nil, false},
	}

	for _, tt := range tests {
		got, ok := Scalar(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Scalar(%#v) = %#v, %v; want %#v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
