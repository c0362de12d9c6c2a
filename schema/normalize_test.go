package schema

import (
	"errors"
	"testing"
)

func TestNormalizeTagName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: " 1 ", want: "1", ok: true},
		{in: "web", want: "web", ok: true},
		{in: "   ", ok: false},
		{in: "a\x00b", ok: false},
	}
	for _, tc := range cases {
		got, err := NormalizeTagName(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("NormalizeTagName(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeTagName(%q) = %q, want %q", tc.in, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("NormalizeTagName(%q): expected invalid request, got %v", tc.in, err)
		}
	}
}

func TestNormalizeOutputNameRejectsWhitespace(t *testing.T) {
	if _, err := NormalizeOutputName("DP 1"); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	name, err := NormalizeOutputName(" HDMI-A-1 ")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if name != "HDMI-A-1" {
		t.Fatalf("unexpected name %q", name)
	}
}

func TestSetActiveModeApply(t *testing.T) {
	if !SetActiveSet.Apply(false) || !SetActiveSet.Apply(true) {
		t.Fatalf("set must yield true")
	}
	if SetActiveUnset.Apply(true) || SetActiveUnset.Apply(false) {
		t.Fatalf("unset must yield false")
	}
	for _, start := range []bool{true, false} {
		if SetActiveToggle.Apply(SetActiveToggle.Apply(start)) != start {
			t.Fatalf("toggle twice must restore %v", start)
		}
	}
	if SetActiveUnspecified.Valid() {
		t.Fatalf("unspecified must be invalid")
	}
}

func TestSignalKindRoundTripsName(t *testing.T) {
	for _, kind := range SignalKinds {
		parsed, err := ParseSignalKind(kind.String())
		if err != nil {
			t.Fatalf("parse %s: %v", kind, err)
		}
		if parsed != kind {
			t.Fatalf("parse %s: got %s", kind, parsed)
		}
	}
	if _, err := ParseSignalKind("nope"); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestErrorsWrapNotFound(t *testing.T) {
	for _, err := range []error{ErrTagNotFound, ErrOutputNotFound, ErrWindowNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%v does not wrap ErrNotFound", err)
		}
	}
}
