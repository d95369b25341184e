package attendance

import (
	"testing"
)

func TestNormalizeClock(t *testing.T) {
	if got := normalizeClock(nil); got != nil {
		t.Errorf("normalizeClock(nil) = %v, want nil", got)
	}

	short := "09:30"
	if got := normalizeClock(&short); got == nil || *got != "09:30:00" {
		t.Errorf("normalizeClock(09:30) = %v, want 09:30:00", got)
	}

	full := "09:30:15"
	if got := normalizeClock(&full); got == nil || *got != "09:30:15" {
		t.Errorf("normalizeClock(09:30:15) = %v, want unchanged", got)
	}

	junk := "nonsense"
	if got := normalizeClock(&junk); got == nil || *got != "nonsense" {
		t.Errorf("normalizeClock(nonsense) = %v, want passthrough", got)
	}
}

func TestWorkedHours(t *testing.T) {
	in := "09:00:00"
	out := "17:30:00"
	if got := workedHours(&in, &out, 0); got != 8.5 {
		t.Errorf("workedHours(09:00, 17:30) = %v, want 8.5", got)
	}

	nightIn := "22:00:00"
	nightOut := "06:00:00"
	if got := workedHours(&nightIn, &nightOut, 0); got != 8 {
		t.Errorf("workedHours(22:00, 06:00) = %v, want 8 (overnight)", got)
	}

	if got := workedHours(nil, &out, 4.25); got != 4.25 {
		t.Errorf("workedHours(nil, out) = %v, want fallback 4.25", got)
	}
	if got := workedHours(&in, nil, 0); got != 0 {
		t.Errorf("workedHours(in, nil) = %v, want fallback 0", got)
	}
}
