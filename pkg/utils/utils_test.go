package utils

import "testing"

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		4:    "IV",
		6:    "VI",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		99:   "XCIX",
		1994: "MCMXCIV",
	}
	for in, want := range tests {
		if got := ToRoman(in); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	if got := WaveLabel(0, 6); got != "-/VI" {
		t.Errorf("WaveLabel(0, 6) = %q", got)
	}
	if got := WaveLabel(3, 6); got != "III/VI" {
		t.Errorf("WaveLabel(3, 6) = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(1.5, 0, 1) != 1 || Clamp(-2, 0, 1) != 0 || Clamp(0.25, 0, 1) != 0.25 {
		t.Fatal("Clamp out of range")
	}
	if Clamp(7, 0, 10) != 7 {
		t.Fatal("Clamp changed an in-range int")
	}
}
