package bubble

import (
	"errors"
	"math"
	"testing"
)

func TestStyleValidate(t *testing.T) {
	if err := DefaultStyle.Validate(); err != nil {
		t.Fatalf("default style is invalid: %v", err)
	}
	if err := (Style{}).Validate(); err != nil {
		t.Fatalf("zero style is invalid: %v", err)
	}
	for _, s := range []Style{
		{CornerRadius: -1},
		{TailWidth: math.NaN()},
		{TailHeight: math.Inf(1)},
		{TailCurveControlOffset: -0.5},
	} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%+v: got %v, want ErrInvalidArgument", s, err)
		}
	}
}

func TestTailSide(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want TailSide
	}{
		{"", TailNone},
		{"none", TailNone},
		{"Left", TailLeft},
		{" right ", TailRight},
	} {
		got, err := ParseTailSide(tc.in)
		if err != nil {
			t.Errorf("ParseTailSide(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTailSide(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseTailSide("up"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}

	diff(t, TailRight, TailLeft.Mirror())
	diff(t, TailLeft, TailRight.Mirror())
	diff(t, TailNone, TailNone.Mirror())

	var s TailSide
	if err := s.UnmarshalText([]byte("right")); err != nil || s != TailRight {
		t.Errorf("UnmarshalText: got %s, %v", s, err)
	}
	b, err := TailLeft.MarshalText()
	if err != nil || string(b) != "left" {
		t.Errorf("MarshalText: got %q, %v", b, err)
	}
	if _, err := TailSide(7).MarshalText(); err == nil {
		t.Error("expected an error for an out-of-range tail side")
	}
}
