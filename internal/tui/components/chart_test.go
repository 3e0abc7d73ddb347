package components

import "testing"

func TestChartTickStep(t *testing.T) {
	cases := []struct {
		maxVal float64
		want   float64
	}{
		{100, 20},
		{1000, 200},
		{2_154_400, 500_000},
		{50, 10},
		{7, 1},
	}
	for _, c := range cases {
		if got := chartTickStep(c.maxVal); got != c.want {
			t.Fatalf("chartTickStep(%v) = %v, want %v", c.maxVal, got, c.want)
		}
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		widths := LayoutRow(100, n)
		if len(widths) != n {
			t.Fatalf("LayoutRow(100, %d) returned %d widths", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Fatalf("LayoutRow(100, %d) sums to %d, want 100", n, sum)
		}
	}
}

func TestXAxisLabelsSkipsCollisions(t *testing.T) {
	labels := []string{"1", "2", "3", "4"}
	out := xAxisLabels(labels, 2, 1, 11)
	if out == "" {
		t.Fatal("xAxisLabels returned empty string")
	}
	if out[0] != '1' {
		t.Fatalf("first label = %q, want to start with 1", out)
	}
}
