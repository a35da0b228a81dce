package validator

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2026-01", "2025-12", "1999-06"}
	invalid := []string{"2026-13", "2026-00", "2026-1", "2026", "01-2026", "", "2026-01-15"}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-7.7598) || !IsFinite(110.3953) {
		t.Error("finite values must pass")
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(f) {
			t.Errorf("IsFinite(%v) = true, want false", f)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"budi", "pkl.2026", "a_b-c", "Abc123"}
	invalid := []string{"ab", "", "nama dengan spasi", "user!", string(make([]byte, 51))}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2026-01-06") {
		t.Error("valid date rejected")
	}
	for _, d := range []string{"2026-1-6", "06-01-2026", "not-a-date", ""} {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) accepted", d)
		}
	}
}
