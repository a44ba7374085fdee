package enclosures

import "testing"

func TestOccupancyPercent(t *testing.T) {
	cases := []struct {
		name              string
		current, capacity int
		want              int
	}{
		{"empty", 0, 10, 0},
		{"ninety percent", 9, 10, 90},
		{"full", 10, 10, 100},
		{"over capacity clamps", 15, 10, 100},
		{"zero capacity", 5, 0, 0},
		{"negative capacity", 5, -3, 0},
		{"negative current", -2, 10, 0},
		{"rounds half up", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OccupancyPercent(tc.current, tc.capacity); got != tc.want {
				t.Errorf("OccupancyPercent(%d, %d) = %d, want %d", tc.current, tc.capacity, got, tc.want)
			}
		})
	}
}

func TestOccupancyPercentBounds(t *testing.T) {
	for current := -5; current <= 30; current++ {
		for capacity := -5; capacity <= 20; capacity++ {
			pct := OccupancyPercent(current, capacity)
			if pct < 0 || pct > 100 {
				t.Fatalf("OccupancyPercent(%d, %d) = %d, out of [0,100]", current, capacity, pct)
			}
		}
	}
}
