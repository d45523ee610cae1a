package mathutil

import "testing"

func TestIntClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int
	}{
		{-5, 0, 50, 0},
		{0, 0, 50, 0},
		{17, 0, 50, 17},
		{50, 0, 50, 50},
		{99, 0, 50, 50},
	}
	for _, tt := range tests {
		if got := IntClamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("IntClamp(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestIntMinMaxAbsWrap(t *testing.T) {
	if IntMin(3, -2) != -2 || IntMax(3, -2) != 3 {
		t.Fatal("IntMin/IntMax wrong")
	}
	if IntAbs(-7) != 7 || IntAbs(7) != 7 {
		t.Fatal("IntAbs wrong")
	}
	if IntWrap(-1, 64) != 63 || IntWrap(64, 64) != 0 || IntWrap(5, 64) != 5 || IntWrap(-129, 64) != 63 {
		t.Fatal("IntWrap wrong")
	}
}
