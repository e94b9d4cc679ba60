package app

import "testing"

func TestToMinorUnits_Truncates(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{13.74, 1374},
		{25.00, 2500},
		{1, 100},
		{10.555, 1055},
		{0.999, 99},
		// 0.29*100 is 28.999... in binary floating point; the cast keeps 28.
		{0.29, 28},
	}
	for _, tc := range cases {
		if got := ToMinorUnits(tc.amount); got != tc.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
