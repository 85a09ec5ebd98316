package interval

import "testing"

func TestIndexIsBijectiveOverValidCells(t *testing.T) {
	for n := 2; n <= 12; n++ {
		m := New[int](n)
		seen := make(map[int]bool)
		count := 0
		for z := 0; z < n; z++ {
			for tt := z + 1; tt < n; tt++ {
				idx := m.index(z, tt)
				if idx < 0 || idx >= len(m.cells) {
					t.Fatalf("n=%d index(%d,%d)=%d out of range [0,%d)", n, z, tt, idx, len(m.cells))
				}
				if seen[idx] {
					t.Fatalf("n=%d index(%d,%d)=%d collides with a previous cell", n, z, tt, idx)
				}
				seen[idx] = true
				count++
			}
		}
		if count != len(m.cells) {
			t.Fatalf("n=%d visited %d cells, want %d", n, count, len(m.cells))
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	m := New[string](5)
	cases := []struct {
		z, t int
		val  string
	}{
		{0, 1, "a"},
		{0, 4, "b"},
		{2, 3, "c"},
		{3, 4, "d"},
	}
	for _, c := range cases {
		m.Set(c.z, c.t, c.val)
	}
	for _, c := range cases {
		if got := m.Get(c.z, c.t); got != c.val {
			t.Errorf("Get(%d,%d) = %q, want %q", c.z, c.t, got, c.val)
		}
	}
}

func TestSizeReportsDimension(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		m := New[int](n)
		if got := m.Size(); got != n {
			t.Errorf("Size() = %d, want %d", got, n)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		z, t, n int
		want    bool
	}{
		{0, 1, 2, true},
		{1, 0, 2, false},
		{0, 2, 2, false},
		{0, 0, 2, false},
		{3, 5, 6, true},
	}
	for _, tc := range tests {
		if got := Valid(tc.z, tc.t, tc.n); got != tc.want {
			t.Errorf("Valid(%d,%d,%d) = %v, want %v", tc.z, tc.t, tc.n, got, tc.want)
		}
	}
}
